package usecase

import (
	"math/rand/v2"
	"strconv"
	"strings"
	"unicode"
)

// maxUsernameAttempts bounds the insert-retry loop in Register. The
// suffix space is 9000 values per name, so five collisions in a row
// means something is wrong beyond bad luck.
const maxUsernameAttempts = 5

// GenerateUsername derives a candidate handle from the user's names:
// the lowercased concatenation stripped to alphanumerics, plus a random
// four-digit suffix in [1000, 9999]. Uniqueness is not checked here;
// the store's unique constraint is the only arbiter.
func GenerateUsername(firstName, lastName string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(firstName + lastName) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	b.WriteString(strconv.Itoa(1000 + rand.IntN(9000)))
	return b.String()
}
