package util

// Log message constants
const (
	LogStart   = "=== %s START ==="
	LogEnd     = "=== %s END ==="
	LogSection = "--- %s ---"
	LogError   = "ERROR: %s - %v"
	LogWarning = "WARNING: %s - %v"
)

// Urgency levels
const (
	UrgencyLow      = "LOW"
	UrgencyNormal   = "NORMAL"
	UrgencyHigh     = "HIGH"
	UrgencyCritical = "CRITICAL"
)

// urgencyRank orders urgency levels from least to most pressing
var urgencyRank = map[string]int{
	UrgencyLow:      0,
	UrgencyNormal:   1,
	UrgencyHigh:     2,
	UrgencyCritical: 3,
}

// Lead score bounds
const (
	DefaultLeadScore = 50
	MinScore         = 0
	MaxScore         = 100
)

// RAG retrieval limits
const (
	DefaultRAGResults = 5
	MaxRAGResults     = 20
)

// PracticeAreaUnspecified is sent to the provider when the caller gives no practice area
const PracticeAreaUnspecified = "non specifie"

// MaxUrgency returns the more pressing of two urgency levels
func MaxUrgency(a, b string) string {
	if urgencyRank[b] > urgencyRank[a] {
		return b
	}
	return a
}

// ClampScore bounds a lead score to [MinScore, MaxScore]
func ClampScore(score int) int {
	if score < MinScore {
		return MinScore
	}
	if score > MaxScore {
		return MaxScore
	}
	return score
}
