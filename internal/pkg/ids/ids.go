package ids

import (
	gonanoid "github.com/matoous/go-nanoid/v2"
)

const alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

// Prefixes namespace identifiers per origin so user-created IDs can never
// collide with feed IDs.
const (
	PrefixUser       = "user"
	PrefixWorkout    = "workout"
	PrefixPlan       = "plan"
	PrefixAI         = "ai"
	PrefixSuggestion = "sug"
)

// New returns a prefixed random identifier. The random suffix (not a
// timestamp) guarantees uniqueness even for IDs minted in the same
// millisecond.
func New(prefix string) string {
	id, err := gonanoid.Generate(alphabet, 7)
	if err != nil {
		// gonanoid only fails when the system randomness source does;
		// nothing sensible to do but surface it loudly.
		panic(err)
	}
	return prefix + "-" + id
}
