// Package knot implements the knot hash: a small, deterministic, keyed
// mixing function built from circular reversals over a 256-byte ring.
//
// What:
//
//   - Ring holds the identity permutation 0..size-1 plus a cursor and skip size.
//   - One round walks a length sequence; each length L reverses the L elements
//     starting at the cursor (wrapping), then advances cursor by L+skip and skip by 1.
//   - Hash derives the length sequence from the key's byte codes followed by
//     the fixed suffix 17,31,73,47,23, runs Rounds rounds and XOR-folds the ring into a 16-byte Digest.
//
// Why:
//
//   - Reproducible fingerprints of short keys (the disk package derives one
//     128-bit grid row per digest).
//   - Not cryptographic; do not use it where collisions matter.
//
// Complexity:
//
//   - Hash: O(rounds × len(lengths) × 256) time, O(256) memory.
//   - Every call owns its Ring, so concurrent calls never share state.
//
// Errors:
//
//   - ErrInvalidRounds: rounds <= 0.
//   - ErrInvalidLength: a length exceeds the ring size (or is negative).
//   - ErrInvalidKeyEncoding: a key rune lies outside [0,255].
//   - ErrInvalidSize: NewRing called with a size outside 1..256.
//   - ErrInvalidDigest: ParseHex input is not 32 hex characters.
//
// Every error is raised before the ring is touched.
package knot
