package helpers

import (
	"math/rand"
	"regexp"
	"strings"
	"time"
)

type contextKey string

const (
	ContextKeyUserID    contextKey = "userID"
	ContextKeyStaffRole contextKey = "staffRole"
)

var (
	slugSpaces  = regexp.MustCompile(` `)
	slugInvalid = regexp.MustCompile(`[^\w-]+`)
)

// Slugify derives the URL identifier from a display name: lowercase,
// spaces become hyphens, everything outside [A-Za-z0-9_-] is stripped.
// Deterministic, so re-saving a product with the same name keeps its
// URL. Collisions are not deduplicated; lookup takes the last write.
func Slugify(name string) string {
	slug := strings.ToLower(strings.TrimSpace(name))
	slug = slugSpaces.ReplaceAllString(slug, "-")
	return slugInvalid.ReplaceAllString(slug, "")
}

const base36 = "0123456789abcdefghijklmnopqrstuvwxyz"

var orderRand = rand.New(rand.NewSource(time.Now().UnixNano()))

// NewOrderID returns "ORD-" plus nine uppercase base36 characters,
// the token format customers quote when asking about an order.
func NewOrderID() string {
	b := make([]byte, 9)
	for i := range b {
		b[i] = base36[orderRand.Intn(len(base36))]
	}
	return "ORD-" + strings.ToUpper(string(b))
}

// NowISO is the timestamp format used on submissions and reviews.
func NowISO() string {
	return time.Now().UTC().Format(time.RFC3339)
}

// NowDate is the short date stamped on orders.
func NowDate() string {
	return time.Now().Format("2006-01-02")
}
