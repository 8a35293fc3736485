package game

import (
	"fmt"
	"hash/fnv"
	"math/rand/v2"
)

// Roller yields uniform draws in [0,1). *rand.Rand satisfies it.
type Roller interface {
	Float64() float64
}

func seededRNG(seed int64) *rand.Rand {
	// #nosec G404
	return rand.New(rand.NewPCG(seedWord(seed, "a"), seedWord(seed, "b")))
}

func seedWord(seed int64, salt string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(fmt.Sprintf("%d:%s", seed, salt)))
	return h.Sum64()
}

func rollExceeds(r Roller, threshold float64) bool {
	return r.Float64() > threshold
}
