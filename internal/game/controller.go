// internal/game/controller.go
//
// Session and request orchestration.
// Responsibilities:
//   - Validate guess shape (length, dictionary membership) before scoring.
//   - Score valid guesses against the shared session's secret.
//   - Replace the secret on demand (new game) and automatically after a
//     win, following a short delay.
//
// The server is stateless across guesses: it tracks only the secret,
// never how many attempts a given client has made. After a win the
// renewal timer is not cancelled and the secret stays in place until it
// fires, so other in-flight players can still score against (and even
// re-solve) the just-won word. That overlap window is part of the
// game's behavior, not an accident.

package game

import (
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/evanl44730/tusmo/internal/words"
)

// DefaultRenewalDelay is how long a won word stays active before the
// session rolls over to a fresh one.
const DefaultRenewalDelay = 2 * time.Second

// ErrNotReady is returned when no secret is active, typically because
// the word list never loaded.
var ErrNotReady = errors.New("game: no active word")

// LengthError rejects a guess whose length differs from the secret's.
type LengthError struct {
	Want int
}

func (e *LengthError) Error() string {
	return fmt.Sprintf("word must be %d letters long", e.Want)
}

// Controller mediates between the HTTP layer, the word list, and the
// shared session.
type Controller struct {
	list    words.List
	session *Session
	delay   time.Duration

	// pick is swappable in tests to control or count selections.
	pick func(words.List) (string, error)
}

// NewController builds a controller over an immutable word list.
// The session starts empty; call NewGame to activate a secret.
func NewController(list words.List, delay time.Duration) *Controller {
	if delay <= 0 {
		delay = DefaultRenewalDelay
	}
	return &Controller{
		list:    list,
		session: &Session{},
		delay:   delay,
		pick:    words.List.Pick,
	}
}

// WordInfo exposes the active secret's first letter and length.
func (c *Controller) WordInfo() (Info, error) {
	w, ok := c.session.Peek()
	if !ok {
		return Info{}, ErrNotReady
	}
	return infoFor(w), nil
}

// NewGame picks a fresh secret and installs it, unconditionally
// replacing the current one even if other players are mid-round.
func (c *Controller) NewGame() (Info, error) {
	w, err := c.pick(c.list)
	if err != nil {
		if errors.Is(err, words.ErrEmptyList) {
			return Info{}, ErrNotReady
		}
		return Info{}, err
	}
	c.session.Reset(w)
	return infoFor(w), nil
}

// SubmitGuess normalizes and validates a raw guess, scores it, and on a
// win schedules the session renewal.
//
// Validation outcomes:
//   - length mismatch → *LengthError (a client-correctable fault)
//   - not a dictionary word → Outcome{Valid: false} (a normal rejection,
//     no scoring performed, session untouched)
func (c *Controller) SubmitGuess(raw string) (Outcome, error) {
	secret, ok := c.session.Peek()
	if !ok {
		return Outcome{}, ErrNotReady
	}

	guess := words.Normalize(raw)
	if len([]rune(guess)) != len([]rune(secret)) {
		return Outcome{}, &LengthError{Want: len([]rune(secret))}
	}
	if !c.list.Contains(guess) {
		return Outcome{Valid: false, Message: "Word not in dictionary"}, nil
	}

	res := Score(secret, guess)
	won := Won(res)
	if won {
		c.scheduleRenewal()
	}
	return Outcome{Valid: true, Result: res, Won: won}, nil
}

// scheduleRenewal arms a one-shot timer that replaces the secret after
// the configured delay. The timer is deliberately never cancelled.
func (c *Controller) scheduleRenewal() {
	time.AfterFunc(c.delay, func() {
		if _, err := c.NewGame(); err != nil {
			log.Warn().Err(err).Msg("scheduled renewal failed")
		}
	})
}

func infoFor(w string) Info {
	r := []rune(w)
	return Info{FirstLetter: string(r[0]), Length: len(r)}
}
