package board

import (
	crypto_rand "crypto/rand"
	"encoding/binary"
	math_rand "math/rand"
)

func init() {
	// Seed math/rand's global source from a cryptographically secure
	// source so draws from it aren't reproducible across process
	// restarts. The engine's own random draws (hash keys, bot move
	// selection) come from lukechampine.com/frand, not math/rand.
	var b [8]byte
	_, err := crypto_rand.Read(b[:])
	if err != nil {
		panic("board: cannot seed math/rand package with cryptographically secure random number")
	}
	math_rand.Seed(int64(binary.LittleEndian.Uint64(b[:])))
}
