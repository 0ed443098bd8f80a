package utils

import (
	"crypto/rand"
	"crypto/subtle"
	"errors"
	"io"
	"runtime"
)

var RandReader io.Reader = rand.Reader

// SecureRandomBytes generates n cryptographically secure random bytes.
// It uses crypto/rand, which relies on the operating system's CSPRNG.
func SecureRandomBytes(n int) ([]byte, error) {
	buf := make([]byte, n)
	_, err := RandReader.Read(buf)
	if err != nil {
		return nil, err
	}
	return buf, nil
}

// ValidateSeedEntropy checks if a seed has sufficient entropy.
// It performs basic statistical tests to reject obviously weak seeds (e.g., all zeros, sequential).
// This is a sanity check, not a rigorous randomness test.
func ValidateSeedEntropy(seed []byte) error {
	if len(seed) < 32 {
		return errors.New("seed must be at least 32 bytes")
	}

	// Check for all bytes identical
	first := seed[0]
	allSame := true
	for i := 1; i < len(seed); i++ {
		if seed[i] != first {
			allSame = false
			break
		}
	}
	if allSame {
		return errors.New("seed has low entropy: all bytes are identical")
	}

	// Check for sequential patterns
	isAscending := true
	isDescending := true
	for i := 1; i < len(seed); i++ {
		if seed[i] != byte((int(seed[i-1])+1)%256) {
			isAscending = false
		}
		if seed[i] != byte((int(seed[i-1])-1+256)%256) {
			isDescending = false
		}
		if !isAscending && !isDescending {
			break
		}
	}
	if isAscending || isDescending {
		return errors.New("seed has low entropy: sequential pattern detected")
	}

	// Check for low byte diversity
	unique := make(map[byte]struct{})
	for _, b := range seed {
		unique[b] = struct{}{}
		if len(unique) >= 8 {
			break
		}
	}
	if len(unique) < 8 {
		return errors.New("seed has low entropy: insufficient byte diversity")
	}

	return nil
}

// ConstantTimeEqual compares two byte slices in constant time.
// It returns true if the slices are equal, false otherwise.
// This function leaks only the length of the slices.
func ConstantTimeEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	if len(a) == 0 {
		return true
	}
	return subtle.ConstantTimeCompare(a, b) == 1
}

// ConstantTimeSelect returns a if condition is 1, b if condition is 0.
// condition must be 0 or 1.
// a and b must have the same length.
func ConstantTimeSelect(condition int, a, b []byte) []byte {
	if len(a) != len(b) {
		panic("arrays must have same length")
	}
	result := make([]byte, len(a))
	for i := range a {
		result[i] = byte(subtle.ConstantTimeSelect(condition, int(a[i]), int(b[i])))
	}
	return result
}

// Zeroize overwrites a byte slice with zeros.
// This is used to clear sensitive data from memory.
// Uses runtime.KeepAlive to prevent compiler optimization from eliminating the stores.
func Zeroize(b []byte) {
	for i := range b {
		b[i] = 0
	}
	// Prevent the compiler from optimizing away the zeroing.
	// runtime.KeepAlive ensures the slice is considered "live" until this point.
	runtime.KeepAlive(b)
}
