package scoring

import (
	"fmt"
	"math"

	"github.com/Ashi-17-commits/skill-judge-AI/internal/signals"
)

// Category weights for the overall score. They sum to exactly 1.0.
const (
	formatWeight       = 0.20
	keywordWeight      = 0.25
	experienceWeight   = 0.20
	skillsWeight       = 0.15
	achievementsWeight = 0.20
)

// Verdict thresholds use inclusive lower bounds.
const (
	strongThreshold   = 70
	moderateThreshold = 40
)

// Verdict labels.
const (
	VerdictStrong   = "Strong"
	VerdictModerate = "Moderate"
	VerdictLow      = "Low"
)

// Evaluation is the full deterministic result for one document.
type Evaluation struct {
	OverallScore int             `json:"overall_score"`
	Verdict      string          `json:"verdict"`
	Summary      string          `json:"summary"`
	Breakdown    []CategoryScore `json:"score_breakdown"`
}

// Evaluate runs the five category scorers in fixed order and aggregates
// them into the overall score, verdict and summary.
func Evaluate(b *signals.Bundle) *Evaluation {
	breakdown := []CategoryScore{
		scoreFormat(b),
		scoreKeywords(b),
		scoreExperience(b),
		scoreSkills(b),
		scoreAchievements(b),
	}

	overall := int(math.Round(
		formatWeight*float64(breakdown[0].Score) +
			keywordWeight*float64(breakdown[1].Score) +
			experienceWeight*float64(breakdown[2].Score) +
			skillsWeight*float64(breakdown[3].Score) +
			achievementsWeight*float64(breakdown[4].Score)))
	overall = clampScore(overall)

	return &Evaluation{
		OverallScore: overall,
		Verdict:      verdictFor(overall),
		Summary:      summarize(overall, breakdown),
		Breakdown:    breakdown,
	}
}

// verdictFor maps the overall score to its verdict label.
func verdictFor(overall int) string {
	switch {
	case overall >= strongThreshold:
		return VerdictStrong
	case overall >= moderateThreshold:
		return VerdictModerate
	default:
		return VerdictLow
	}
}

// summaryClause is a short sentence emitted when its category score
// crosses a threshold.
type summaryClause struct {
	key      string
	minScore int
	maxScore int // exclusive upper bound; clause fires when min <= score < max
	text     string
}

// summaryClauses are checked in category order, high clause before low.
var summaryClauses = []summaryClause{
	{KeyFormat, 70, 101, "Format and structure are clear."},
	{KeyFormat, 0, 40, "Formatting needs attention."},
	{KeyKeywords, 70, 101, "Keywords align well with the target skill set."},
	{KeyKeywords, 0, 40, "Few target keywords are represented."},
	{KeyExperience, 70, 101, "Work history is easy to follow."},
	{KeyExperience, 0, 40, "Work history is hard to trace."},
	{KeySkills, 70, 101, "Skills are presented clearly."},
	{KeyAchievements, 70, 101, "Achievements are well quantified."},
	{KeyAchievements, 0, 40, "Few achievements include measurable results."},
}

// summarize builds a one-line summary from threshold-gated clauses,
// falling back to the bare overall score when none fire.
func summarize(overall int, breakdown []CategoryScore) string {
	byKey := make(map[string]int, len(breakdown))
	for _, cs := range breakdown {
		byKey[cs.Key] = cs.Score
	}
	summary := ""
	for _, clause := range summaryClauses {
		score := byKey[clause.key]
		if score >= clause.minScore && score < clause.maxScore {
			if summary != "" {
				summary += " "
			}
			summary += clause.text
		}
	}
	if summary == "" {
		return fmt.Sprintf("Overall ATS score: %d/100.", overall)
	}
	return summary
}
