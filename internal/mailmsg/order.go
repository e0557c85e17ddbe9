package mailmsg

import (
	"net/mail"
	"sort"
	"time"
)

// SortByDate orders records most recent first, by their parsed Date header.
// Records with a missing or unparseable date sort as oldest. The sort is
// stable, so relative order of ties is preserved.
func SortByDate(records []Record) {
	sort.SliceStable(records, func(i, j int) bool {
		return parseDate(records[i].Date).After(parseDate(records[j].Date))
	})
}

// parseDate parses an RFC 5322 date header, returning the zero time when the
// header is absent or malformed.
func parseDate(date string) time.Time {
	if date == "" {
		return time.Time{}
	}
	t, err := mail.ParseDate(date)
	if err != nil {
		return time.Time{}
	}
	return t
}
