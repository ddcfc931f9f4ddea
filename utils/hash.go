package utils

import (
	"crypto/sha256"
	"encoding/hex"
)

func CreateSHA256Hash(data []byte) string {
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}

// CreateAuditKey identifies an audit input. Parts are separated with a zero
// byte so that ("ab","c") and ("a","bc") produce different keys.
func CreateAuditKey(parts ...string) string {
	h := sha256.New()
	for i, p := range parts {
		if i > 0 {
			h.Write([]byte{0})
		}
		h.Write([]byte(p))
	}
	return hex.EncodeToString(h.Sum(nil))
}
