package domain

// editionBaseURL is the canonical host of the online edition. Citation
// URLs are derived from the document id and nothing else; assembling them
// from other record fields would produce non-citable links.
const editionBaseURL = "https://schleiermacher-digital.de"

// CitationURL returns the canonical citation URL for a document id.
func CitationURL(documentID string) string {
	return editionBaseURL + "/" + documentID
}
