package domain

// RegisterKind discriminates register entry types. The discriminant comes
// from the store's index, never from the XML shape.
type RegisterKind string

const (
	KindPerson RegisterKind = "person"
	KindPlace  RegisterKind = "place"
	KindWork   RegisterKind = "work"
	KindRaw    RegisterKind = "raw"
)

// RegisterEntry is the closed union returned by register lookups. Exactly
// one of Person/Place/Work is set for the typed kinds; Raw carries the
// fetched XML for unrecognized discriminants.
type RegisterEntry struct {
	ID     string       `json:"id"`
	Kind   RegisterKind `json:"kind"`
	Person *PersonEntry `json:"person,omitempty"`
	Place  *PlaceEntry  `json:"place,omitempty"`
	Work   *WorkEntry   `json:"work,omitempty"`
	RawXML string       `json:"raw_xml,omitempty"`
}

// PersonName holds the components of a register person name.
type PersonName struct {
	Surname  string `json:"surname,omitempty"`
	Forename string `json:"forename,omitempty"`
	FullName string `json:"full_name"`
}

// AlternativeName is a persName[@type='alt'] variant.
type AlternativeName struct {
	Surname     string `json:"surname,omitempty"`
	Forename    string `json:"forename,omitempty"`
	FullName    string `json:"full_name"`
	IsBirthname bool   `json:"is_birthname,omitempty"`
}

// PersonEntry is a person from the register.
type PersonEntry struct {
	ID               string            `json:"id"`
	Name             PersonName        `json:"name"`
	Birth            string            `json:"birth,omitempty"`
	Death            string            `json:"death,omitempty"`
	GND              string            `json:"gnd,omitempty"`
	Note             string            `json:"note,omitempty"`
	AlternativeNames []AlternativeName `json:"alternative_names,omitempty"`
	Mentions         *MentionsSummary  `json:"mentions,omitempty"`
}

// PlaceEntry is a place from the register. Sub-places model recursive
// containment (districts, streets, buildings within a city).
type PlaceEntry struct {
	ID               string           `json:"id"`
	Name             string           `json:"name"`
	PlaceType        string           `json:"place_type,omitempty"`
	AuthorityURI     string           `json:"authority_uri,omitempty"`
	AlternativeNames []string         `json:"alternative_names,omitempty"`
	Note             string           `json:"note,omitempty"`
	SubPlaces        []PlaceEntry     `json:"sub_places,omitempty"`
	Mentions         *MentionsSummary `json:"mentions,omitempty"`
}

// WorkAuthor is the structured author of a bibliographic entry.
type WorkAuthor struct {
	Key      string `json:"key,omitempty"`
	Surname  string `json:"surname,omitempty"`
	Forename string `json:"forename,omitempty"`
}

// WorkEntry is a bibliographic work from the register.
type WorkEntry struct {
	ID          string      `json:"id"`
	Author      *WorkAuthor `json:"author,omitempty"`
	Title       string      `json:"title"`
	Date        string      `json:"date,omitempty"`
	PubPlace    string      `json:"pub_place,omitempty"`
	PubPlaceKey string      `json:"pub_place_key,omitempty"`
	Note        string      `json:"note,omitempty"`
}

// RegisterHit is one scored hit from the register full-text index.
type RegisterHit struct {
	ID      string  `json:"id"`
	Title   string  `json:"title,omitempty"`
	Desc    string  `json:"desc,omitempty"`
	DocType string  `json:"type,omitempty"`
	Score   float64 `json:"score,omitempty"`
}

// MentionType says where in a document an entity was mentioned.
type MentionType string

const (
	MentionText    MentionType = "text"
	MentionComment MentionType = "comment"
)

// DocumentMention references a document that mentions an entity.
type DocumentMention struct {
	ID          string      `json:"id"`
	Title       string      `json:"title"`
	Date        string      `json:"date,omitempty"`
	DocType     string      `json:"doc_type"`
	MentionType MentionType `json:"mention_type"`
}

// CorrespondenceSummary counts a person's letters as sender and recipient.
type CorrespondenceSummary struct {
	PersonID           string `json:"person_id"`
	LettersAsSender    int    `json:"letters_as_sender"`
	LettersAsRecipient int    `json:"letters_as_recipient"`
	TotalLetters       int    `json:"total_letters"`
}

// MentionsSummary aggregates mentions of one entity across corpora.
// Totals always cover the unbounded match count and may exceed the
// capped sample lists. Rebuilt fresh per request, never cached.
type MentionsSummary struct {
	Correspondence       *CorrespondenceSummary `json:"correspondence,omitempty"`
	Letters              []DocumentMention      `json:"letters"`
	Diaries              []DocumentMention      `json:"diaries"`
	Lectures             []DocumentMention      `json:"lectures"`
	TotalLetterMentions  int                    `json:"total_letter_mentions"`
	TotalDiaryMentions   int                    `json:"total_diary_mentions"`
	TotalLectureMentions int                    `json:"total_lecture_mentions"`
}

// FamilyRelationKind classifies a biographical family relation.
type FamilyRelationKind string

const (
	RelationParent  FamilyRelationKind = "parent"
	RelationSibling FamilyRelationKind = "sibling"
	RelationSpouse  FamilyRelationKind = "spouse"
	RelationChild   FamilyRelationKind = "child"
	RelationOther   FamilyRelationKind = "other"
)

// FamilyRelation is one relation from a biogram; Label keeps the source
// relation name so unrecognized kinds are never dropped silently.
type FamilyRelation struct {
	Kind        FamilyRelationKind `json:"kind"`
	Label       string             `json:"label"`
	Description string             `json:"description"`
}

// Biogram is a detailed biographical dossier.
type Biogram struct {
	ID           string           `json:"id"`
	Title        string           `json:"title,omitempty"`
	Name         string           `json:"name"`
	Gender       string           `json:"gender,omitempty"`
	Birth        string           `json:"birth,omitempty"`
	Death        string           `json:"death,omitempty"`
	Confession   string           `json:"confession,omitempty"`
	GND          string           `json:"gnd,omitempty"`
	Property     []string         `json:"property,omitempty"`
	CourtOffices []string         `json:"court_offices,omitempty"`
	Education    []string         `json:"education,omitempty"`
	Military     []string         `json:"military,omitempty"`
	Awards       []string         `json:"awards,omitempty"`
	Notes        []string         `json:"notes,omitempty"`
	Relations    []FamilyRelation `json:"family_relations,omitempty"`
}

// ClassifyRelation maps a source relation label onto the fixed taxonomy.
func ClassifyRelation(label string) FamilyRelationKind {
	switch label {
	case "father", "mother":
		return RelationParent
	case "brother", "sister":
		return RelationSibling
	case "wife", "husband", "spouse":
		return RelationSpouse
	case "son", "daughter", "child":
		return RelationChild
	default:
		return RelationOther
	}
}
