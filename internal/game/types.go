// internal/game/types.go
//
// Core type definitions for the guessing game.
// Defines:
//   - Status: per-letter result of a guess (correct/present/absent).
//   - LetterResult: one position of a scored guess.
//   - Outcome: the full response to a submitted guess.

package game

// Status represents the evaluation result for a single letter in a guess.
// Possible values:
//   - "correct": letter is in the secret at this exact position.
//   - "present": letter exists in the secret but at a different position.
//   - "absent":  letter has no remaining occurrence in the secret.
type Status string

const (
	StatusCorrect Status = "correct"
	StatusPresent Status = "present"
	StatusAbsent  Status = "absent"
)

// LetterResult is one position of a scored guess, aligned with the
// submitted guess (not the secret).
type LetterResult struct {
	Letter string `json:"letter"`
	Status Status `json:"status"`
}

// Outcome is what a submitted guess produces.
// Valid is false when the guess is not a dictionary word; in that case
// Result is empty, Message explains the rejection, and no scoring ran.
type Outcome struct {
	Valid   bool           `json:"valid"`
	Message string         `json:"message,omitempty"`
	Result  []LetterResult `json:"result,omitempty"`
	Won     bool           `json:"won"`
}

// Info describes the active secret without revealing it: its first
// letter (the hint shown to players) and its length.
type Info struct {
	FirstLetter string `json:"firstLetter"`
	Length      int    `json:"length"`
}
