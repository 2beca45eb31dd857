package words

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestParse(t *testing.T) {
	raw := "pomme\n  terre \nabc\nsupercalifragilistique\nété\nmontagne\n\n"
	list := Parse(raw)

	want := List{"POMME", "TERRE", "MONTAGNE"}
	if len(list) != len(want) {
		t.Fatalf("Parse kept %d words %v, want %d", len(list), list, len(want))
	}
	for i, w := range want {
		if list[i] != w {
			t.Errorf("list[%d] = %q, want %q", i, list[i], w)
		}
	}
}

func TestParseFiltersOnRawLength(t *testing.T) {
	// "été" is three letters; its byte length must not sneak it past
	// the five-letter minimum.
	if list := Parse("été"); len(list) != 0 {
		t.Errorf("Parse(%q) = %v, want empty", "été", list)
	}
	// Ten accented letters is still within range.
	if list := Parse("délétères"); len(list) != 1 || list[0] != "DELETERES" {
		t.Errorf("Parse(%q) = %v, want [DELETERES]", "délétères", list)
	}
}

func TestFetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("pomme\nterre\nab\n"))
	}))
	defer srv.Close()

	list, err := Fetch(context.Background(), srv.Client(), srv.URL)
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if len(list) != 2 || list[0] != "POMME" || list[1] != "TERRE" {
		t.Errorf("Fetch = %v, want [POMME TERRE]", list)
	}
}

func TestFetchErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	if _, err := Fetch(context.Background(), srv.Client(), srv.URL); err == nil {
		t.Error("expected error on 500 response")
	}
	if _, err := Fetch(context.Background(), http.DefaultClient, "http://127.0.0.1:1"); err == nil {
		t.Error("expected error on unreachable source")
	}
}

func TestFallbackPlayable(t *testing.T) {
	list := Fallback()
	if len(list) != 5 {
		t.Fatalf("fallback has %d words, want 5", len(list))
	}
	for _, w := range list {
		if Normalize(w) != w {
			t.Errorf("fallback word %q is not canonical", w)
		}
	}
	w, err := list.Pick()
	if err != nil {
		t.Fatalf("Pick on fallback: %v", err)
	}
	if !list.Contains(w) {
		t.Errorf("picked word %q not in fallback list", w)
	}
}

func TestPickEmpty(t *testing.T) {
	var empty List
	if _, err := empty.Pick(); !errors.Is(err, ErrEmptyList) {
		t.Errorf("Pick on empty list = %v, want ErrEmptyList", err)
	}
}

func TestContains(t *testing.T) {
	list := List{"POMME", "TERRE"}
	if !list.Contains("POMME") {
		t.Error("expected POMME to be a member")
	}
	if list.Contains("pomme") {
		t.Error("membership is canonical-form only; lowercase must not match")
	}
	if list.Contains("SALUT") {
		t.Error("SALUT should not be a member")
	}
}
