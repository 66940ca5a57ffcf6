package filter

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Status is a recognized status keyword. The zero value imposes no constraint.
type Status string

// Recognized status keywords.
const (
	StatusAny              Status = ""
	StatusUpcoming         Status = "upcoming"
	StatusOngoing          Status = "ongoing"
	StatusFinished         Status = "finished"
	StatusRegistrationOpen Status = "registration-open"
)

// keywords maps folded user-facing keywords (English and the Spanish labels
// shown by the listing page) to a Status.
var keywords = map[string]Status{ //nolint:gochecknoglobals // read-only lookup table
	"upcoming":               StatusUpcoming,
	"proximos":               StatusUpcoming,
	"ongoing":                StatusOngoing,
	"en curso":               StatusOngoing,
	"finished":               StatusFinished,
	"finalizados":            StatusFinished,
	"registration-open":      StatusRegistrationOpen,
	"inscripciones abiertas": StatusRegistrationOpen,
}

// ParseStatus maps a keyword to a Status, ignoring case, accents and
// surrounding spaces. Unrecognized keywords return StatusAny and false.
func ParseStatus(keyword string) (Status, bool) {
	st, ok := keywords[foldKeyword(keyword)]
	if !ok {
		return StatusAny, false
	}
	return st, true
}

// foldKeyword lowercases s and strips combining marks so "Próximos" and
// "proximos" compare equal.
func foldKeyword(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, strings.TrimSpace(s))
	if err != nil {
		folded = s
	}
	return strings.ToLower(folded)
}
