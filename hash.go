//go:generate go run github.com/dmarkham/enumer -trimprefix=HashFamily -type=HashFamily -transform=lower -text

package dhash

import (
	"github.com/cespare/xxhash/v2"
)

const (
	// DefaultPrime1 and DefaultPrime2 seed the two positional hashes of
	// PolynomialHasher. Both exceed the byte alphabet.
	DefaultPrime1 = 151
	DefaultPrime2 = 163
)

// Hasher produces the double-hashing probe parameters for a key.
//
// For size >= 2, start must lie in [0, size) and step in [1, size-1]. With a
// prime size this makes the sequence start, start+step, ... (mod size) visit
// every slot exactly once.
type Hasher interface {
	Probe(key string, size int) (start, step int)
}

// PolynomialHasher reads the key as a base-P numeral over its bytes. P1
// seeds the probe start and P2 seeds the step.
type PolynomialHasher struct {
	P1 uint64
	P2 uint64
}

// DefaultHasher returns the polynomial hasher with the default primes.
func DefaultHasher() PolynomialHasher {
	return PolynomialHasher{P1: DefaultPrime1, P2: DefaultPrime2}
}

func (h PolynomialHasher) Probe(key string, size int) (int, int) {
	if size < 2 {
		return 0, 1
	}
	start := polyHash(key, h.P1, uint64(size))
	step := polyHash(key, h.P2, uint64(size-1)) + 1
	return int(start), int(step)
}

// polyHash evaluates key in base `base` with Horner's rule, reducing modulo m
// at every step so the accumulator never exceeds m*base.
func polyHash(key string, base, m uint64) uint64 {
	var hash uint64
	for i := 0; i < len(key); i++ {
		hash = (hash*base + uint64(key[i])) % m
	}
	return hash
}

// XXHasher derives both probe parameters from a single 64-bit xxHash digest.
type XXHasher struct{}

func (XXHasher) Probe(key string, size int) (int, int) {
	if size < 2 {
		return 0, 1
	}
	h := xxhash.Sum64String(key)
	n := uint64(size)
	return int(h % n), int(1 + (h/n)%(n-1))
}

// HashFamily names a built-in Hasher.
type HashFamily int

const (
	HashFamilyPolynomial HashFamily = iota
	HashFamilyXXHash
)

// Hasher returns the family's Hasher.
func (f HashFamily) Hasher() Hasher {
	switch f {
	case HashFamilyXXHash:
		return XXHasher{}
	default:
		return DefaultHasher()
	}
}
