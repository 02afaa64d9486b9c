package random

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"
)

// QRCodeBytes gives 128 bits of entropy per ticket token.
const QRCodeBytes = 16

func QRCode() (string, error) {
	return Code(QRCodeBytes)
}

// Code returns n random bytes as an upper-case hex string.
func Code(n int) (string, error) {
	byt := make([]byte, n)

	if _, err := rand.Read(byt); err != nil {
		return "", fmt.Errorf("random.Code: %w", err)
	}

	return strings.ToUpper(hex.EncodeToString(byt)), nil
}
