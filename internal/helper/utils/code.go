package utils

import (
	"crypto/rand"
	"errors"
	"math/big"
	"strconv"
)

// GenerateVerificationCode returns a 6-digit code drawn uniformly from
// [100000, 999999]. crypto/rand keeps successive codes unpredictable; a seeded
// math/rand generator would let one observed code predict the next.
func GenerateVerificationCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", errors.New("failed to generate verification code")
	}
	return strconv.FormatInt(n.Int64()+100000, 10), nil
}
