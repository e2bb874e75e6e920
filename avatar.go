package authcore

import (
	"crypto/md5"
	"fmt"
	"strings"
)

// avatarURL derives a deterministic Gravatar URL from the email: MD5 of the
// trimmed, lowercased address, sized 200px, PG-rated, with the "mystery man"
// default image.
func avatarURL(email string) string {
	normalized := strings.ToLower(strings.TrimSpace(email))
	digest := md5.Sum([]byte(normalized))

	return fmt.Sprintf("https://www.gravatar.com/avatar/%x?s=200&r=pg&d=mm", digest)
}
