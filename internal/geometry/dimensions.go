// Copyright ©2015 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package geometry factors a total Hilbert space dimension D into the
// (depth, quantity) pair a mode needs, and builds the fixed swap
// (permutation) matrices the multipartite modes pre-rotate by.
package geometry

import (
	"fmt"
	"math"
)

// Dimensions holds a detected (depth, quantity) pair: depth d is the size
// of a single qu(d)it, quantity n is how many of them compose the system.
type Dimensions struct {
	Depth    int
	Quantity int
}

// UndefinedSystemSizeError is returned when a total dimension cannot be
// factored consistently with the requested mode.
type UndefinedSystemSizeError struct {
	Reason string
}

func (e *UndefinedSystemSizeError) Error() string {
	return fmt.Sprintf("cssfinder: couldn't determine size of system: %s", e.Reason)
}

// primesUpTo sieves ascending primes up to n on demand, rather than
// carrying a static precomputed table.
func primesUpTo(n int) []int {
	if n < 2 {
		return nil
	}
	sieve := make([]bool, n+1)
	var primes []int
	for p := 2; p <= n; p++ {
		if sieve[p] {
			continue
		}
		primes = append(primes, p)
		for m := p * p; m <= n; m += p {
			sieve[m] = true
		}
	}
	return primes
}

// maxPrimeSearch bounds how far the ascending prime search goes before the
// system size is declared fatally undefined.
const maxPrimeSearch = 10000

// DetectFullySeparable factors total (the matrix dimension D) as d^n for
// the smallest prime d with an exactly-integral n = log_d(total), the
// tie-break used by FSnQd.
func DetectFullySeparable(total int) (Dimensions, error) {
	for _, d := range primesUpTo(maxPrimeSearch) {
		n := math.Log(float64(total)) / math.Log(float64(d))
		rounded := math.Round(n)
		if rounded >= 1 && intPow(d, int(rounded)) == total {
			return Dimensions{Depth: d, Quantity: int(rounded)}, nil
		}
	}
	return Dimensions{}, &UndefinedSystemSizeError{Reason: "prime number range exceeded"}
}

// DetectBipartite returns d = sqrt(D) when D is a perfect square, otherwise
// the smallest prime divisor d of D with quantity = D/d.
func DetectBipartite(total int) (Dimensions, error) {
	root := math.Sqrt(float64(total))
	flo := int(root)
	if flo*flo == total {
		return Dimensions{Depth: flo, Quantity: flo}, nil
	}
	for _, d := range primesUpTo(maxPrimeSearch) {
		if total%d == 0 {
			return Dimensions{Depth: d, Quantity: total / d}, nil
		}
	}
	return Dimensions{}, &UndefinedSystemSizeError{Reason: "prime number range exceeded"}
}

// DetectTripartite returns d = D^(1/3) when that root is an integer, for
// the G3PaE3qD mode (three equal-depth parties).
func DetectTripartite(total int) (Dimensions, error) {
	d := int(math.Round(math.Cbrt(float64(total))))
	if d >= 1 && intPow(d, 3) == total {
		return Dimensions{Depth: d, Quantity: 3}, nil
	}
	return Dimensions{}, &UndefinedSystemSizeError{Reason: "dimension is not a perfect cube"}
}

// DetectQuadripartite returns d = D^(1/4) when that root is an integer, for
// the G4PaE3qD mode (four equal-depth parties).
func DetectQuadripartite(total int) (Dimensions, error) {
	d := int(math.Round(math.Sqrt(math.Sqrt(float64(total)))))
	if d >= 1 && intPow(d, 4) == total {
		return Dimensions{Depth: d, Quantity: 4}, nil
	}
	return Dimensions{}, &UndefinedSystemSizeError{Reason: "dimension is not a perfect fourth power"}
}

func intPow(base, exp int) int {
	r := 1
	for i := 0; i < exp; i++ {
		r *= base
	}
	return r
}
