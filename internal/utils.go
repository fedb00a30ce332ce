package internal

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"time"
)

// GenerateEntryID creates a unique ID for a saved word when the caller
// did not supply one. Format: epochMillis_md5(text)[:8]
func GenerateEntryID(text string) string {
	epochMillis := time.Now().UnixNano() / 1000000
	hash := md5.Sum([]byte(text))
	return fmt.Sprintf("%d_%s", epochMillis, hex.EncodeToString(hash[:])[:8])
}
