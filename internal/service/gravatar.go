package service

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"strings"
)

// gravatarURL derives a deterministic avatar URL from an email address:
// hex md5 of the trimmed, lowercased email, 200px, PG-rated, with a default
// image for addresses that have no gravatar.
func gravatarURL(email string) string {
	normalized := strings.ToLower(strings.TrimSpace(email))
	sum := md5.Sum([]byte(normalized))
	return fmt.Sprintf("https://www.gravatar.com/avatar/%s?s=200&r=pg&d=mm", hex.EncodeToString(sum[:]))
}
