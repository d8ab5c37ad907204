package domain

import (
	"fmt"
	"strings"
)

const defaultFilterLimit = 100

// FilterLetters evaluates the filter predicates over the snapshot and projects
// matching entries into letter summaries. Entries are never mutated.
func FilterLetters(entries []LetterCacheEntry, filter LetterFilter) []LetterSummary {
	limit := filter.Limit
	if limit <= 0 {
		limit = defaultFilterLimit
	}

	var results []LetterSummary
	for i := range entries {
		entry := &entries[i]
		if !letterMatches(entry, filter) {
			continue
		}
		if entry.ID == "" {
			continue
		}
		results = append(results, projectLetter(entry))
		if len(results) >= limit {
			break
		}
	}
	return results
}

func letterMatches(entry *LetterCacheEntry, filter LetterFilter) bool {
	if filter.Sender != "" && !entry.Sender.HasRef(filter.Sender) {
		return false
	}
	if filter.Receiver != "" && !entry.Receiver.HasRef(filter.Receiver) {
		return false
	}
	if filter.Place != "" && !placeMatches(entry.Place, filter.Place) {
		return false
	}
	if filter.DateFrom != "" || filter.DateTo != "" {
		// DateWithin pads the entry side too, so a year-only snapshot
		// date falls inside a range covering that year. Undated entries
		// never match a date-constrained filter.
		if !DateWithin(entry.DateISO, filter.DateFrom, filter.DateTo) {
			return false
		}
	}
	return true
}

// placeMatches accepts either an identifier substring or a
// case-insensitive substring of the display name.
func placeMatches(place *PlaceRef, wanted string) bool {
	if place == nil {
		return false
	}
	if strings.Contains(place.PlaceRef, wanted) {
		return true
	}
	return strings.Contains(strings.ToLower(place.PlaceName), strings.ToLower(wanted))
}

func projectLetter(entry *LetterCacheEntry) LetterSummary {
	senderName := entry.Sender.DisplayName()
	receiverName := entry.Receiver.DisplayName()

	summary := LetterSummary{
		ID:          entry.ID,
		Title:       fmt.Sprintf("Brief: %s an %s", senderName, receiverName),
		Date:        entry.DateDisplay,
		Sender:      senderName,
		SenderID:    entry.Sender.FirstRef(),
		Receiver:    receiverName,
		ReceiverID:  entry.Receiver.FirstRef(),
		CitationURL: CitationURL(entry.ID),
	}
	if entry.Place != nil {
		summary.SendPlace = entry.Place.PlaceName
		summary.SendPlaceID = entry.Place.PlaceRef
	}
	return summary
}
