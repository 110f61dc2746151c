package holiday

import "time"

// Holiday is a single non-working calendar date with a display name.
type Holiday struct {
	ID        string
	Date      time.Time // day precision
	Name      string
	CreatedAt time.Time
}

// Set is a date-keyed lookup over holidays, built once per calculation so the
// calendar rules stay pure functions of (date, set).
type Set map[string]struct{}

const dateKey = "2006-01-02"

// NewSet builds a Set from a holiday list.
func NewSet(holidays []Holiday) Set {
	s := make(Set, len(holidays))
	for _, h := range holidays {
		s[h.Date.Format(dateKey)] = struct{}{}
	}
	return s
}

// Contains reports whether the calendar day of t is a holiday.
func (s Set) Contains(t time.Time) bool {
	_, ok := s[t.Format(dateKey)]
	return ok
}
