package translation

import (
	"crypto/sha256"
	"encoding/hex"
	"strconv"
	"strings"
)

// Sign derives the request signature the provider validates: an uppercase hex
// SHA-256 over the UTF-8 bytes of appKey + truncate(text) + salt + curtime +
// appSecret.
func Sign(appKey, text, salt, curtime, appSecret string) string {
	sum := sha256.Sum256([]byte(appKey + truncate(text) + salt + curtime + appSecret))
	return strings.ToUpper(hex.EncodeToString(sum[:]))
}

// truncate applies the provider-mandated canonicalization of the concatenated
// query text before signing: inputs of up to 20 characters pass through
// unchanged, longer inputs become first-10 + decimal character count +
// last-10. Counting is by Unicode code points, matching the provider's own
// convention.
func truncate(text string) string {
	runes := []rune(text)
	if len(runes) <= 20 {
		return text
	}
	return string(runes[:10]) + strconv.Itoa(len(runes)) + string(runes[len(runes)-10:])
}
