// Package sampling implements deterministic generation of random bytes
// and scalars from a keyed pseudo-random stream.
package sampling

import (
	"io"
	"sync"

	"golang.org/x/crypto/blake2b"
)

// PRNG is an interface for the generation of random bytes.
type PRNG interface {
	io.Reader
}

// KeyedPRNG generates a deterministic sequence of pseudo-random bytes
// from a blake2b XOF seeded with a key. Two KeyedPRNG instantiated with
// the same key produce the same stream.
type KeyedPRNG struct {
	mutex sync.Mutex
	key   []byte
	xof   blake2b.XOF
}

// NewKeyedPRNG creates a new KeyedPRNG from the given key. A nil key is
// treated as an empty one.
func NewKeyedPRNG(key []byte) (*KeyedPRNG, error) {
	var err error
	prng := new(KeyedPRNG)
	prng.key = key
	prng.xof, err = blake2b.NewXOF(blake2b.OutputLengthUnknown, key)
	return prng, err
}

// Key returns a copy of the key used to seed the PRNG.
func (prng *KeyedPRNG) Key() (key []byte) {
	key = make([]byte, len(prng.key))
	copy(key, prng.key)
	return
}

// Read fills sum with bytes from the pseudo-random stream.
func (prng *KeyedPRNG) Read(sum []byte) (n int, err error) {
	prng.mutex.Lock()
	defer prng.mutex.Unlock()
	return prng.xof.Read(sum)
}

// Reset rewinds the PRNG to the start of its stream.
func (prng *KeyedPRNG) Reset() {
	prng.mutex.Lock()
	defer prng.mutex.Unlock()
	prng.xof.Reset()
}
