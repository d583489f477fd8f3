//go:generate go run github.com/dmarkham/enumer -trimprefix=Primality -type=Primality -text

package dhash

// Primality is the result of a primality test.
type Primality int

const (
	// PrimalityUndefined is reported for values below 2.
	PrimalityUndefined Primality = iota
	PrimalityComposite
	PrimalityPrime
)

// IsPrime classifies x by trial division over odd divisors up to its square root.
func IsPrime(x int) Primality {
	if x < 2 {
		return PrimalityUndefined
	}
	if x < 4 {
		return PrimalityPrime
	}
	if x%2 == 0 {
		return PrimalityComposite
	}
	for i := 3; i*i <= x; i += 2 {
		if x%i == 0 {
			return PrimalityComposite
		}
	}
	return PrimalityPrime
}

// NextPrime returns the smallest prime greater than or equal to x.
func NextPrime(x int) int {
	if x < 2 {
		return 2
	}
	for IsPrime(x) != PrimalityPrime {
		x++
	}
	return x
}
