package domain

import (
	"encoding/json"
	"strings"
)

// Party is one correspondent from the letter snapshot. The snapshot uses
// role-specific key names, so both pairs are declared and the accessors
// pick whichever is populated.
type Party struct {
	SenderName   string `json:"senderName,omitempty"`
	SenderRef    string `json:"senderRef,omitempty"`
	ReceiverName string `json:"receiverName,omitempty"`
	ReceiverRef  string `json:"receiverRef,omitempty"`
}

func (p Party) Name() string {
	if p.SenderName != "" {
		return p.SenderName
	}
	return p.ReceiverName
}

func (p Party) Ref() string {
	if p.SenderRef != "" {
		return p.SenderRef
	}
	return p.ReceiverRef
}

// PartyList normalizes the snapshot's object-XOR-list correspondent shape
// at the decode boundary. Downstream code always sees a slice.
type PartyList []Party

func (l *PartyList) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "" || trimmed == "null" {
		*l = nil
		return nil
	}
	if strings.HasPrefix(trimmed, "[") {
		var parties []Party
		if err := json.Unmarshal(data, &parties); err != nil {
			return err
		}
		*l = parties
		return nil
	}
	var single Party
	if err := json.Unmarshal(data, &single); err != nil {
		return err
	}
	*l = PartyList{single}
	return nil
}

// HasRef reports whether any party in the list carries the given id.
func (l PartyList) HasRef(id string) bool {
	for _, p := range l {
		if p.Ref() == id {
			return true
		}
	}
	return false
}

// DisplayName joins all party names for presentation.
func (l PartyList) DisplayName() string {
	names := make([]string, 0, len(l))
	for _, p := range l {
		if n := p.Name(); n != "" {
			names = append(names, n)
		}
	}
	return strings.Join(names, ", ")
}

// FirstRef returns the primary party's id, or "".
func (l PartyList) FirstRef() string {
	for _, p := range l {
		if r := p.Ref(); r != "" {
			return r
		}
	}
	return ""
}

// PlaceRef is the sending place of a snapshot entry.
type PlaceRef struct {
	PlaceName string `json:"placeName,omitempty"`
	PlaceRef  string `json:"placeRef,omitempty"`
}

// MentionRef is one entity mention recorded in the snapshot. Type
// "regular" marks a mention in the main text; everything else counts as
// an annotation mention.
type MentionRef struct {
	ID   string `json:"id"`
	Type string `json:"type,omitempty"`
}

// MentionRefList tolerates the same object-XOR-list inconsistency as
// PartyList.
type MentionRefList []MentionRef

func (l *MentionRefList) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "" || trimmed == "null" {
		*l = nil
		return nil
	}
	if strings.HasPrefix(trimmed, "[") {
		var refs []MentionRef
		if err := json.Unmarshal(data, &refs); err != nil {
			return err
		}
		*l = refs
		return nil
	}
	var single MentionRef
	if err := json.Unmarshal(data, &single); err != nil {
		return err
	}
	*l = MentionRefList{single}
	return nil
}

// CacheMentions holds the per-letter mention lists. The snapshot nests
// them one level deep (mentions.persons.person), mirrored here.
type CacheMentions struct {
	Persons struct {
		Person MentionRefList `json:"person"`
	} `json:"persons"`
	Places struct {
		Place MentionRefList `json:"place"`
	} `json:"places"`
}

// LetterCacheEntry is one row of the precomputed letter snapshot. Entries
// are never mutated after load; filtering only selects and projects.
type LetterCacheEntry struct {
	ID          string         `json:"id"`
	Idno        string         `json:"idno,omitempty"`
	Sender      PartyList      `json:"sender,omitempty"`
	Receiver    PartyList      `json:"receiver,omitempty"`
	Place       *PlaceRef      `json:"place,omitempty"`
	DateISO     string         `json:"date_iso,omitempty"`
	DateDisplay string         `json:"dateDisplay,omitempty"`
	Mentions    *CacheMentions `json:"mentions,omitempty"`
}

// MentionsFor returns the entry's mention refs for the given entity kind.
func (e *LetterCacheEntry) MentionsFor(kind RegisterKind) MentionRefList {
	if e.Mentions == nil {
		return nil
	}
	switch kind {
	case KindPerson:
		return e.Mentions.Persons.Person
	case KindPlace:
		return e.Mentions.Places.Place
	default:
		return nil
	}
}
