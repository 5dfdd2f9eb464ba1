package auth

import (
	"crypto/rand"
	"encoding/base64"

	appErrors "github.com/arpitsharma-bit/peextrap/internal/errors"
)

// OAuth accounts never use their password; a random one satisfies the
// not-null column and keeps password login impossible for them.
func generateSecurePassword() (string, error) {
	const passwordLength = 32
	bytes := make([]byte, passwordLength)
	if _, err := rand.Read(bytes); err != nil {
		return "", appErrors.ErrInternalServer.WithError(err)
	}
	return base64.URLEncoding.EncodeToString(bytes), nil
}
