package auth

import (
	"crypto/rand"
	"math/big"
	"strings"

	"github.com/trinex-it/blackout/internal/errors"
)

const (
	recoveryCodeAlphabet  = "abcdefghijklmnopqrstuvwxyz0123456789"
	recoveryCodeGroups    = 4
	recoveryCodeGroupSize = 4
)

// generateRecoveryCodes returns n distinct codes shaped like "xxxx-xxxx-xxxx-xxxx".
func generateRecoveryCodes(n int, randomIndex func(int) (int, error)) ([]string, error) {
	if n <= 0 {
		return nil, errors.Errorf("recovery code count must be positive, got %d", n)
	}
	if randomIndex == nil {
		randomIndex = cryptoRandomIndex
	}

	codes := make([]string, 0, n)
	seen := make(map[string]struct{}, n)
	for len(codes) < n {
		code, err := newRecoveryCode(randomIndex)
		if err != nil {
			return nil, err
		}
		if _, dup := seen[code]; dup {
			continue
		}
		seen[code] = struct{}{}
		codes = append(codes, code)
	}

	return codes, nil
}

func newRecoveryCode(randomIndex func(int) (int, error)) (string, error) {
	var b strings.Builder
	b.Grow(recoveryCodeGroups*recoveryCodeGroupSize + recoveryCodeGroups - 1)

	for group := range recoveryCodeGroups {
		if group > 0 {
			b.WriteByte('-')
		}
		for range recoveryCodeGroupSize {
			i, err := randomIndex(len(recoveryCodeAlphabet))
			if err != nil {
				return "", errors.Wrap(err, "read random index")
			}
			b.WriteByte(recoveryCodeAlphabet[i])
		}
	}

	return b.String(), nil
}

func cryptoRandomIndex(max int) (int, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(int64(max)))
	if err != nil {
		return 0, err
	}

	return int(n.Int64()), nil
}
