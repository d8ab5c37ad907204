package domain

// ISO date comparison in this package is lexicographic, which is exact for
// full YYYY-MM-DD values. Truncated dates (year or year-month, common in
// fuzzy TEI datings) are padded to the widest matching full date first, so
// "1810" overlaps the whole of 1810 instead of comparing as a shorter
// string.

// PadDateLower expands a truncated ISO date to its earliest day.
func PadDateLower(date string) string {
	switch len(date) {
	case 4:
		return date + "-01-01"
	case 7:
		return date + "-01"
	default:
		return date
	}
}

// PadDateUpper expands a truncated ISO date to its latest day. Day 31 is a
// valid lexicographic upper bound even for shorter months.
func PadDateUpper(date string) string {
	switch len(date) {
	case 4:
		return date + "-12-31"
	case 7:
		return date + "-31"
	default:
		return date
	}
}

// DateWithin reports whether an ISO date falls inside the inclusive
// [notBefore, notAfter] range. Empty bounds are open; an empty date only
// matches a fully open range.
func DateWithin(date, notBefore, notAfter string) bool {
	if date == "" {
		return notBefore == "" && notAfter == ""
	}
	d := PadDateLower(date)
	if notBefore != "" && d < PadDateLower(notBefore) {
		return false
	}
	if notAfter != "" && PadDateUpper(date) > PadDateUpper(notAfter) {
		return false
	}
	return true
}
