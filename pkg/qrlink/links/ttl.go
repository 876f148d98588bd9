package links

import "time"

// TTL is a named lifetime preset. It is resolved into an absolute expiry
// exactly once, at link creation, and never re-evaluated.
type TTL string

const (
	TTLOneWeek  TTL = "1_week"
	TTLOneMonth TTL = "1_month"
	TTLOneYear  TTL = "1_year"
	TTLNever    TTL = "never"
)

// DefaultTTL applies when a create request omits the ttl field.
const DefaultTTL = TTLOneWeek

// ParseTTL validates a ttl request value. The empty string selects DefaultTTL.
func ParseTTL(s string) (TTL, error) {
	if s == "" {
		return DefaultTTL, nil
	}
	switch TTL(s) {
	case TTLOneWeek, TTLOneMonth, TTLOneYear, TTLNever:
		return TTL(s), nil
	}
	return "", &ValidationError{"ttl must be one of 1_week, 1_month, 1_year, never"}
}

// ExpiresAt resolves the preset against now. Nil means the link never expires.
func (t TTL) ExpiresAt(now time.Time) *time.Time {
	var d time.Duration
	switch t {
	case TTLOneWeek:
		d = 7 * 24 * time.Hour
	case TTLOneMonth:
		d = 30 * 24 * time.Hour
	case TTLOneYear:
		d = 365 * 24 * time.Hour
	default:
		return nil
	}
	expires := now.Add(d)
	return &expires
}
