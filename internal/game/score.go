// internal/game/score.go
//
// Guess scoring: the two-pass algorithm that handles repeated letters
// correctly.
//
// Pass 1 resolves exact-position matches and removes those letters from
// both working copies, so pass 2 can never re-match them. Pass 2 walks
// the unresolved guess positions and consumes the first remaining
// occurrence of each letter from the secret pool, so a letter that
// appears once in the secret can never yield two "present" marks.
//
// The pools live on the stack of a single call; scoring keeps no state
// between calls.

package game

// consumed marks a working-copy slot as used up by an earlier pass.
const consumed rune = 0

// Score compares guess against secret and returns one LetterResult per
// position of the guess. Both strings must be canonical-form and of
// equal length; enforcing that is the caller's job.
func Score(secret, guess string) []LetterResult {
	secretPool := []rune(secret)
	guessPool := []rune(guess)
	n := len(guessPool)

	res := make([]LetterResult, n)
	for i := 0; i < n; i++ {
		res[i] = LetterResult{Letter: string(guessPool[i]), Status: StatusAbsent}
	}

	// Pass 1: exact positions.
	for i := 0; i < n; i++ {
		if guessPool[i] == secretPool[i] {
			res[i].Status = StatusCorrect
			secretPool[i] = consumed
			guessPool[i] = consumed
		}
	}

	// Pass 2: displaced letters, each secret occurrence usable once.
	for i := 0; i < n; i++ {
		if guessPool[i] == consumed {
			continue
		}
		for j := 0; j < n; j++ {
			if secretPool[j] == guessPool[i] {
				res[i].Status = StatusPresent
				secretPool[j] = consumed
				break
			}
		}
	}
	return res
}

// Won reports whether every position of a scored guess is correct.
func Won(res []LetterResult) bool {
	for _, r := range res {
		if r.Status != StatusCorrect {
			return false
		}
	}
	return len(res) > 0
}
