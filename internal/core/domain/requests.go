package domain

// SearchMode selects how multiple search terms are combined.
type SearchMode string

const (
	SearchAny SearchMode = "any"
	SearchAll SearchMode = "all"
)

// SearchRequest describes a full-text query across one or more collections.
type SearchRequest struct {
	Terms             []string
	Mode              SearchMode
	IncludeCommentary bool
	DocTypes          []string
	Years             []string
	DateFrom          string
	DateTo            string
	Limit             int
}

// LetterFilter narrows the letter snapshot by correspondent, place and date.
// Empty fields match everything.
type LetterFilter struct {
	Sender   string
	Receiver string
	Place    string
	DateFrom string
	DateTo   string
	Limit    int
}
