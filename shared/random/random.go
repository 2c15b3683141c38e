package random

import (
	"crypto/rand"
	"fmt"
	"math/big"

	"manzil/shared/constant"
)

// ConfirmationCode generates a short uppercase alphanumeric code used as a
// human-readable booking reference.
func ConfirmationCode() (string, error) {
	code := make([]byte, constant.ConfirmationLen)
	max := big.NewInt(int64(len(constant.ConfirmationChars)))

	for i := range code {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("failed to generate confirmation code: %w", err)
		}

		code[i] = constant.ConfirmationChars[n.Int64()]
	}

	return string(code), nil
}
