package dataset

import (
	"errors"
	"strings"
)

var (
	// ErrInvalidDiseaseID is returned when a disease id is not a key of the store.
	ErrInvalidDiseaseID = errors.New("invalid disease id")

	// ErrUnknownFood is returned when a food id does not belong to the disease.
	ErrUnknownFood = errors.New("unknown food")

	// ErrInvalidDataset wraps every validation failure reported by Parse.
	ErrInvalidDataset = errors.New("invalid dataset")
)

// Verdict classifies how suitable a food is for a disease.
type Verdict string

const (
	VerdictSafe     Verdict = "safe"
	VerdictModerate Verdict = "moderate"
	VerdictAvoid    Verdict = "avoid"
)

// AllVerdicts returns the verdicts in display order.
func AllVerdicts() []Verdict {
	return []Verdict{VerdictSafe, VerdictModerate, VerdictAvoid}
}

// ParseVerdict matches s case-insensitively against the known verdicts.
func ParseVerdict(s string) (Verdict, bool) {
	v := Verdict(strings.ToLower(strings.TrimSpace(s)))
	switch v {
	case VerdictSafe, VerdictModerate, VerdictAvoid:
		return v, true
	}
	return "", false
}

// Label is the capitalised option label used by the quiz.
func (v Verdict) Label() string {
	switch v {
	case VerdictSafe:
		return "Safe"
	case VerdictModerate:
		return "Moderate"
	case VerdictAvoid:
		return "Avoid"
	}
	return string(v)
}

// Headline is the banner shown on the food detail overlay.
func (v Verdict) Headline() string {
	switch v {
	case VerdictSafe:
		return "Safe to Consume"
	case VerdictModerate:
		return "Consume in Moderation"
	case VerdictAvoid:
		return "Best to Avoid"
	}
	return ""
}

// Food is a single curated food entry for one disease.
type Food struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	Emoji           string  `json:"emoji"`
	Verdict         Verdict `json:"verdict"`
	Reason          string  `json:"reason"`
	NutritionalInfo string  `json:"nutritionalInfo"`
}

// Disease is a health condition together with its ordered food list.
// Foods order is display and quiz order.
type Disease struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Icon        string `json:"icon"`
	Color       string `json:"color"`
	Description string `json:"description"`
	Foods       []Food `json:"foods"`
}

// VerdictCounts tallies the foods of d per verdict.
func (d Disease) VerdictCounts() map[Verdict]int {
	counts := make(map[Verdict]int, 3)
	for _, f := range d.Foods {
		counts[f.Verdict]++
	}
	return counts
}

// document is the on-disk shape of a dataset file.
type document struct {
	Version  string    `json:"version"`
	Diseases []Disease `json:"diseases"`
}
