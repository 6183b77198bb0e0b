// SPDX-License-Identifier: MIT

// Package segment - RNG policy for the randomized initialization path.
//
// Goals:
//   - Determinism: same seed ⇒ identical centroids across platforms.
//   - Encapsulation: a single RNG factory; no time-based sources anywhere.
//
// Concurrency: math/rand.Rand is not goroutine-safe; each Segment call
// builds its own generator and never shares it.
package segment

import "math/rand"

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ defaultRNGSeed; otherwise the seed is used verbatim.
//
// Complexity: O(1).
func rngFromSeed(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultRNGSeed
	}

	return rand.New(rand.NewSource(s))
}
