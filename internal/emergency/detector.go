package emergency

import (
	"math"
	"strings"
)

// TypeKeywordsDetected is the only category the keyword detector reports.
const TypeKeywordsDetected = "keywords_detected"

// ConfidencePerMatch is the confidence contributed by each matched keyword.
const ConfidencePerMatch = 0.3

// Result is the outcome of a single detection run
type Result struct {
	IsEmergency     bool
	EmergencyType   string // empty when no keyword matched
	Confidence      float64
	MatchedKeywords []string
}

// Detector flags text that describes an urgent or dangerous situation.
//
// Matching is plain substring containment on lowercased text, not whole-word:
// "mortel" triggers "mort" and "violence" triggers both "violence" and "viol".
// Overlapping terms count independently.
//
// A Detector holds no mutable state and is safe for concurrent use.
type Detector struct {
	vocabulary Vocabulary
	fold       bool
	terms      []term
}

// term pairs the form compared against normalized input with the vocabulary
// entry reported when it matches
type term struct {
	match string
	label string
}

// Option configures a Detector
type Option func(*Detector)

// WithDiacriticFolding strips combining accents from both the input and the
// vocabulary before matching, so "harcèlement" matches "harcelement".
func WithDiacriticFolding() Option {
	return func(d *Detector) {
		d.fold = true
	}
}

// NewDetector creates a detector over the given vocabulary
func NewDetector(vocabulary Vocabulary, opts ...Option) *Detector {
	d := &Detector{vocabulary: vocabulary}
	for _, opt := range opts {
		opt(d)
	}

	// Folding can make distinct entries identical; the first one wins.
	seen := make(map[string]struct{}, vocabulary.Len())
	for _, label := range vocabulary.Terms() {
		match := label
		if d.fold {
			match = foldDiacritics(label)
		}
		if _, dup := seen[match]; dup {
			continue
		}
		seen[match] = struct{}{}
		d.terms = append(d.terms, term{match: match, label: label})
	}

	return d
}

// Vocabulary returns the vocabulary the detector scans for
func (d *Detector) Vocabulary() Vocabulary {
	return d.vocabulary
}

// Detect scans text for vocabulary terms in vocabulary order.
// It never fails; empty input yields a non-emergency result.
func (d *Detector) Detect(text string) Result {
	normalized := strings.ToLower(text)
	if d.fold {
		normalized = foldDiacritics(normalized)
	}

	var matched []string
	for _, t := range d.terms {
		if strings.Contains(normalized, t.match) {
			matched = append(matched, t.label)
		}
	}

	if len(matched) == 0 {
		return Result{
			IsEmergency:     false,
			Confidence:      0.0,
			MatchedKeywords: []string{},
		}
	}

	return Result{
		IsEmergency:     true,
		EmergencyType:   TypeKeywordsDetected,
		Confidence:      math.Min(float64(len(matched))*ConfidencePerMatch, 1.0),
		MatchedKeywords: matched,
	}
}
