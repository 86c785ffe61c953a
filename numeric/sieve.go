package numeric

import "math"

// Sieve runs a Sieve of Eratosthenes over the integers 1..n and returns a
// mask of length n where mask[i] reports whether the integer i+1 is
// "prime" for the purposes of the strength kernel.
//
// Index 0 (representing the integer 1) is forced true after sieving: 1 is
// not prime, but the fundamental must always contribute a harmonic to the
// kernel, so the reference implementation hacks it in as if it were.
func Sieve(n int) []bool {
	isPrime := make([]bool, n)
	for i := range isPrime {
		isPrime[i] = true
	}
	if n == 0 {
		return isPrime
	}
	isPrime[0] = false

	limit := int(math.Floor(math.Sqrt(float64(n))))
	for i := 1; i < limit; i++ {
		if isPrime[i] {
			for j := i + i + 1; j < n; j += i + 1 {
				isPrime[j] = false
			}
		}
	}

	isPrime[0] = true // the fundamental always contributes
	return isPrime
}
