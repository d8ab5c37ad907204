package domain

// RawDocument is an unparsed XML document fetched from the store.
type RawDocument struct {
	ID   string `json:"id"`
	XML  string `json:"xml"`
	Path string `json:"path,omitempty"`
}

// Document is a generic edition document (letter, diary, lecture, other).
// Constructed fresh on every successful retrieval, never mutated after.
type Document struct {
	ID       string            `json:"id"`
	DocType  string            `json:"doc_type"`
	Title    string            `json:"title"`
	Date     string            `json:"date,omitempty"`
	Author   string            `json:"author,omitempty"`
	AuthorID string            `json:"author_id,omitempty"`
	Editor   string            `json:"editor,omitempty"`
	Abstract string            `json:"abstract,omitempty"`
	Content  string            `json:"content,omitempty"`
	TEI      string            `json:"tei_xml,omitempty"`
	Source   string            `json:"source,omitempty"`
	URL      string            `json:"url,omitempty"`
	Metadata map[string]string `json:"metadata,omitempty"`
}

// CorrespAction is one correspondence action (sending or receiving) from
// a TEI correspDesc.
type CorrespAction struct {
	PersonName string `json:"person_name,omitempty"`
	PersonKey  string `json:"person_key,omitempty"`
	PlaceName  string `json:"place_name,omitempty"`
	PlaceKey   string `json:"place_key,omitempty"`
	Date       string `json:"date,omitempty"`
	DateCert   string `json:"date_cert,omitempty"`
}

// Editor is an editor credit from a TEI header.
type Editor struct {
	Surname  string `json:"surname,omitempty"`
	Forename string `json:"forename,omitempty"`
	GND      string `json:"gnd,omitempty"`
}

// SourceDesc describes the holding manuscript of a document.
type SourceDesc struct {
	Institution string `json:"institution,omitempty"`
	Repository  string `json:"repository,omitempty"`
	Collection  string `json:"collection,omitempty"`
	Idno        string `json:"idno,omitempty"`
}

// NameRef pairs a register id with a display name.
type NameRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Letter is the full parsed form of a TEI letter.
type Letter struct {
	ID               string         `json:"id"`
	Idno             string         `json:"idno,omitempty"`
	Title            string         `json:"title"`
	Sender           *CorrespAction `json:"sender,omitempty"`
	Receiver         *CorrespAction `json:"receiver,omitempty"`
	Editors          []Editor       `json:"editors,omitempty"`
	Source           *SourceDesc    `json:"source,omitempty"`
	Note             string         `json:"note,omitempty"`
	Abstract         string         `json:"abstract,omitempty"`
	ManuscriptStatus string         `json:"manuscript_status,omitempty"`
	Opener           string         `json:"opener,omitempty"`
	BodyText         string         `json:"body_text,omitempty"`
	Closer           string         `json:"closer,omitempty"`
	ReferencedPeople []NameRef      `json:"referenced_persons,omitempty"`
	ReferencedPlaces []NameRef      `json:"referenced_places,omitempty"`
	EditorialNotes   []string       `json:"editorial_notes,omitempty"`
	Facsimiles       []string       `json:"facsimiles,omitempty"`

	// CitationURL is derived from the document id and nothing else.
	CitationURL string `json:"citation_url"`
}

// RetrievedDocument is the result of a by-id fetch. Exactly one of
// Letter or Document is set, according to the store's doc-type marker.
type RetrievedDocument struct {
	DocType  string    `json:"doc_type"`
	Letter   *Letter   `json:"letter,omitempty"`
	Document *Document `json:"document,omitempty"`
}

// LetterSummary is the compact letter view produced by cache filtering.
type LetterSummary struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Date        string `json:"date,omitempty"`
	Sender      string `json:"sender,omitempty"`
	SenderID    string `json:"sender_id,omitempty"`
	Receiver    string `json:"receiver,omitempty"`
	ReceiverID  string `json:"receiver_id,omitempty"`
	SendPlace   string `json:"send_place,omitempty"`
	SendPlaceID string `json:"send_place_id,omitempty"`
	CitationURL string `json:"citation_url"`
}

// Passage is a located excerpt of a document. Position reflects encounter
// order in the source, not relevance.
type Passage struct {
	Position int    `json:"position"`
	Text     string `json:"text"`
	DivN     string `json:"div_n,omitempty"`
	PageN    string `json:"page_n,omitempty"`
	ParaNum  int    `json:"para_num,omitempty"`

	// Degraded is set when the KWIC payload could not be parsed as XML
	// and the text fell back to tag stripping.
	Degraded bool `json:"degraded,omitempty"`
}

// SearchResult is one hit from the full-text index.
type SearchResult struct {
	DocumentID   string   `json:"document_id"`
	Title        string   `json:"title"`
	DocType      string   `json:"type,omitempty"`
	Date         string   `json:"date,omitempty"`
	Score        float64  `json:"score,omitempty"`
	KWICSnippets []string `json:"kwic_snippets,omitempty"`
	CitationURL  string   `json:"citation_url"`
}

// ChronologyEntry is one dated event from the chronology register.
type ChronologyEntry struct {
	DateDisplay string `json:"date_display"`
	When        string `json:"when,omitempty"`
	NotBefore   string `json:"not_before,omitempty"`
	NotAfter    string `json:"not_after,omitempty"`
	Cert        string `json:"cert,omitempty"`
	Event       string `json:"event"`
}

// ChronologyYear is the full chronology document for one year.
type ChronologyYear struct {
	Year    int               `json:"year"`
	Heading string            `json:"heading"`
	Entries []ChronologyEntry `json:"entries"`
}

// DiaryEntry is one day from the Tageskalender, split into the left
// (calendar) and right (notes) page sides.
type DiaryEntry struct {
	Date      string `json:"date"`
	LeftSide  string `json:"left_side,omitempty"`
	RightSide string `json:"right_side,omitempty"`
	XML       string `json:"xml,omitempty"`
}

// CorrespondentStat aggregates letter counts for one person.
type CorrespondentStat struct {
	PersonID        string `json:"person_id"`
	LettersSent     int    `json:"letters_sent"`
	LettersReceived int    `json:"letters_received"`
	Total           int    `json:"total"`
}

// CollectionContents lists a collection's files and subcollections.
type CollectionContents struct {
	Path           string   `json:"collection_path"`
	Files          []string `json:"files"`
	Subcollections []string `json:"subcollections"`
}

// StoreStatus reports reachability of one edition backend.
type StoreStatus struct {
	Status   string `json:"status"`
	BaseURL  string `json:"base_url"`
	AppPath  string `json:"app_path"`
	DataPath string `json:"data_path"`
	Version  string `json:"version,omitempty"`
	Error    string `json:"error,omitempty"`
}
