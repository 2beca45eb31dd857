// internal/words/words.go
//
// Word list management for the game.
//
// Responsibilities:
//   - Parse a raw line-delimited word source into a canonical List
//     (trimmed, length-filtered, accent-stripped, uppercased).
//   - Fetch the source over HTTP at startup.
//   - Provide a small built-in fallback list so the game stays
//     playable when the remote source is unreachable.
//   - Random selection and membership testing against the list.
//
// Constraints:
//   • Only entries whose raw trimmed length is 5–10 characters are kept
//     (the filter runs before normalization, matching the source list's
//     own conventions).
//   • The List is built once at startup and never mutated afterwards,
//     so concurrent reads need no locking.

package words

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"math/big"
	"net/http"
	"strings"
	"unicode/utf8"
)

// Raw entries shorter or longer than this range are dropped at parse time.
const (
	minRawLen = 5
	maxRawLen = 10
)

// ErrEmptyList is returned by Pick when the list holds no words.
var ErrEmptyList = errors.New("words: list is empty")

// List is an immutable collection of canonical-form words.
// Duplicates are permitted; membership and selection treat them as
// independent entries.
type List []string

// Parse splits a raw line-delimited blob into a List.
// Each line is trimmed, length-filtered on its raw form, then normalized.
func Parse(raw string) List {
	var out List
	for _, line := range strings.Split(raw, "\n") {
		w := strings.TrimSpace(line)
		if n := utf8.RuneCountInString(w); n < minRawLen || n > maxRawLen {
			continue
		}
		out = append(out, Normalize(w))
	}
	return out
}

// Fetch downloads a line-delimited word source and parses it.
// Any transport failure or non-2xx status is an error; the caller
// decides whether to fall back.
func Fetch(ctx context.Context, client *http.Client, url string) (List, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	res, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch word list: %w", err)
	}
	defer res.Body.Close()
	if res.StatusCode < 200 || res.StatusCode > 299 {
		return nil, fmt.Errorf("fetch word list: unexpected status %s", res.Status)
	}
	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("read word list: %w", err)
	}
	list := Parse(string(body))
	if len(list) == 0 {
		return nil, errors.New("fetch word list: no usable entries")
	}
	return list, nil
}

// Fallback returns the built-in list used when the remote source
// cannot be reached. Small, but enough to keep the game playable.
func Fallback() List {
	return List{"POMME", "TERRE", "LIVRE", "MONDE", "SALUT"}
}

// Pick returns a cryptographically random word from the list.
func (l List) Pick() (string, error) {
	if len(l) == 0 {
		return "", ErrEmptyList
	}
	nBig, err := rand.Int(rand.Reader, big.NewInt(int64(len(l))))
	if err != nil {
		return "", err
	}
	return l[nBig.Int64()], nil
}

// Contains reports whether w (already canonical-form) is in the list.
func (l List) Contains(w string) bool {
	for _, x := range l {
		if x == w {
			return true
		}
	}
	return false
}
