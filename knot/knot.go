package knot

import (
	"fmt"
	"unicode/utf8"
)

// Hash computes the knot hash of key over the given number of rounds.
// Each rune of key must have a code point in [0,255]; it contributes that
// code to the length sequence, followed by the fixed suffix.
//
// Returns ErrInvalidRounds if rounds <= 0 and ErrInvalidKeyEncoding for
// runes outside [0,255] or invalid UTF-8.
//
// Complexity: O(rounds × (len(key)+5) × 256) time, O(256) memory.
func Hash(key string, rounds int) (Digest, error) {
	if rounds <= 0 {
		return Digest{}, fmt.Errorf("%w: %d", ErrInvalidRounds, rounds)
	}
	lengths, err := Lengths(key)
	if err != nil {
		return Digest{}, err
	}

	return tie(lengths, rounds), nil
}

// HashBytes is Hash over raw byte codes; every byte is a valid length.
func HashBytes(key []byte, rounds int) (Digest, error) {
	if rounds <= 0 {
		return Digest{}, fmt.Errorf("%w: %d", ErrInvalidRounds, rounds)
	}

	return tie(byteLengths(key), rounds), nil
}

// Sum is Hash(key, Rounds).
func Sum(key string) (Digest, error) {
	return Hash(key, Rounds)
}

// Lengths returns the full-variant length sequence for key: the code
// point of every rune followed by 17, 31, 73, 47, 23.
func Lengths(key string) ([]int, error) {
	lengths := make([]int, 0, len(key)+len(suffix))
	for i, c := range key {
		if c == utf8.RuneError {
			if _, w := utf8.DecodeRuneInString(key[i:]); w == 1 {
				return nil, fmt.Errorf("%w: invalid UTF-8 at byte %d", ErrInvalidKeyEncoding, i)
			}
		}
		if c > 0xff {
			return nil, fmt.Errorf("%w: %q at byte %d", ErrInvalidKeyEncoding, c, i)
		}
		lengths = append(lengths, int(c))
	}

	return append(lengths, suffix[:]...), nil
}

func byteLengths(key []byte) []int {
	lengths := make([]int, 0, len(key)+len(suffix))
	for _, b := range key {
		lengths = append(lengths, int(b))
	}

	return append(lengths, suffix[:]...)
}

// tie runs rounds over lengths on a fresh full-size ring and folds it.
// Every length must lie in [0, Size].
func tie(lengths []int, rounds int) Digest {
	r := newRing(Size)
	for i := 0; i < rounds; i++ {
		r.round(lengths)
	}

	return r.dense()
}
