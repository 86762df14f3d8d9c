package roles

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// Readiness weights: required-skill coverage, optional-skill coverage and
// experience sufficiency. They sum to exactly 1.0.
const (
	requiredWeight   = 0.50
	optionalWeight   = 0.20
	experienceWeight = 0.30
)

// Verdict labels with inclusive lower-bound thresholds.
const (
	VerdictJobReady       = "Job Ready"
	VerdictPartiallyReady = "Partially Ready"
	VerdictNotReady       = "Not Ready"

	jobReadyThreshold       = 80
	partiallyReadyThreshold = 60
)

// NonNegotiableItem reports the status of one non-negotiable skill, in the
// role definition's declared order.
type NonNegotiableItem struct {
	Skill  string `json:"skill"`
	Status string `json:"status"` // "good" or "missing"
	Reason string `json:"reason"`
}

// ReadinessResult is the full readiness verdict for one resume against one
// role. Every list field is always present, possibly empty, never nil, so
// callers can render it without null checks.
type ReadinessResult struct {
	TargetRole     string              `json:"target_role"`
	ReadinessScore int                 `json:"readiness_score"`
	Verdict        string              `json:"verdict"`
	Strengths      []string            `json:"strengths"`
	Gaps           []string            `json:"gaps"`
	NonNegotiable  []NonNegotiableItem `json:"non_negotiable"`
	PrioritySkills []string            `json:"priority_skills"`
	ExperienceGap  string              `json:"experience_gap"`
	Explanation    string              `json:"explanation"`
}

// EvaluateReadiness compares an extracted skill set and experience estimate
// against a role definition. The comparison is total: malformed input such
// as negative experience years is clamped, never rejected.
func EvaluateReadiness(resumeSkills []string, resumeYears float64, def Definition, originalRole string) *ReadinessResult {
	if resumeYears < 0 {
		resumeYears = 0
	}
	resumeSet := normalizeSet(resumeSkills)

	requiredRatio := coverage(resumeSet, def.RequiredSkills)
	optionalRatio := coverage(resumeSet, def.OptionalSkills)
	experienceScore := experienceCredit(resumeYears, def.MinExperienceYears)

	score := requiredWeight*requiredRatio*100 +
		optionalWeight*optionalRatio*100 +
		experienceWeight*experienceScore*100
	score = math.Round(score*10) / 10
	readiness := int(math.Round(clamp(score, 0, 100)))

	strengths := intersect(resumeSet, def.RequiredSkills, def.OptionalSkills)
	gaps := missing(resumeSet, def.RequiredSkills)
	experienceGap := experienceGapSentence(resumeYears, def.MinExperienceYears, def.DisplayName)

	result := &ReadinessResult{
		TargetRole:     originalRole,
		ReadinessScore: readiness,
		Verdict:        verdictFor(readiness),
		Strengths:      strengths,
		Gaps:           gaps,
		NonNegotiable:  nonNegotiableItems(resumeSet, def.NonNegotiableSkills),
		PrioritySkills: append([]string{}, gaps...),
		ExperienceGap:  experienceGap,
	}
	result.Explanation = explanation(def.DisplayName, result)
	return result
}

// verdictFor maps a readiness score to its verdict label.
func verdictFor(score int) string {
	switch {
	case score >= jobReadyThreshold:
		return VerdictJobReady
	case score >= partiallyReadyThreshold:
		return VerdictPartiallyReady
	default:
		return VerdictNotReady
	}
}

// coverage returns the fraction of wanted skills present in the resume.
// An empty want list counts as full coverage.
func coverage(resumeSet map[string]bool, wanted []string) float64 {
	if len(wanted) == 0 {
		return 1.0
	}
	wantedSet := normalizeSet(wanted)
	matched := 0
	for skill := range wantedSet {
		if resumeSet[skill] {
			matched++
		}
	}
	return float64(matched) / float64(len(wantedSet))
}

// experienceCredit is 1.0 when the minimum is zero or met, otherwise
// proportional partial credit.
func experienceCredit(resumeYears, minYears float64) float64 {
	if minYears <= 0 || resumeYears >= minYears {
		return 1.0
	}
	return clamp(resumeYears/minYears, 0, 1)
}

// intersect returns the sorted resume skills that the role values, whether
// required or optional.
func intersect(resumeSet map[string]bool, required, optional []string) []string {
	seen := make(map[string]bool)
	for _, group := range [][]string{required, optional} {
		for skill := range normalizeSet(group) {
			if resumeSet[skill] {
				seen[skill] = true
			}
		}
	}
	out := make([]string, 0, len(seen))
	for skill := range seen {
		out = append(out, skill)
	}
	sort.Strings(out)
	return out
}

// missing returns the sorted required skills absent from the resume.
func missing(resumeSet map[string]bool, required []string) []string {
	out := make([]string, 0)
	for skill := range normalizeSet(required) {
		if !resumeSet[skill] {
			out = append(out, skill)
		}
	}
	sort.Strings(out)
	return out
}

// nonNegotiableItems emits one entry per non-negotiable skill in declared
// order, not sorted, so the role author controls presentation.
func nonNegotiableItems(resumeSet map[string]bool, nonNegotiable []string) []NonNegotiableItem {
	items := make([]NonNegotiableItem, 0, len(nonNegotiable))
	for _, skill := range nonNegotiable {
		skill = strings.ToLower(strings.TrimSpace(skill))
		if skill == "" {
			continue
		}
		status := "missing"
		if resumeSet[skill] {
			status = "good"
		}
		items = append(items, NonNegotiableItem{
			Skill:  skill,
			Status: status,
			Reason: "Required for role",
		})
	}
	return items
}

// experienceGapSentence renders the templated experience comparison.
func experienceGapSentence(resumeYears, minYears float64, displayName string) string {
	if minYears <= 0 {
		return "No minimum experience requirement for this role."
	}
	if resumeYears >= minYears {
		return fmt.Sprintf("Meets or exceeds the typical %.0f+ years experience for %s.", minYears, displayName)
	}
	shortfall := minYears - resumeYears
	return fmt.Sprintf(
		"About %.1f years short of the typical %.0f+ years experience for %s. "+
			"Consider highlighting transferable experience or side projects.",
		shortfall, minYears, displayName)
}

// explanation assembles the deterministic explanation string: score and
// verdict, up to 8 strengths, up to 6 gaps, then the experience sentence.
func explanation(displayName string, r *ReadinessResult) string {
	parts := []string{
		fmt.Sprintf("For %s, your readiness score is %d/100 (%s).", displayName, r.ReadinessScore, r.Verdict),
	}
	if len(r.Strengths) > 0 {
		parts = append(parts, fmt.Sprintf(
			"Your profile aligns well in: %s%s.",
			strings.Join(head(r.Strengths, 8), ", "), ellipsis(r.Strengths, 8)))
	}
	if len(r.Gaps) > 0 {
		parts = append(parts, fmt.Sprintf(
			"To strengthen your fit, focus on building or showcasing: %s%s.",
			strings.Join(head(r.Gaps, 6), ", "), ellipsis(r.Gaps, 6)))
	}
	parts = append(parts, r.ExperienceGap)
	return strings.Join(parts, " ")
}

// head returns at most n leading elements.
func head(items []string, n int) []string {
	if len(items) <= n {
		return items
	}
	return items[:n]
}

// ellipsis marks truncated lists in the explanation text.
func ellipsis(items []string, n int) string {
	if len(items) > n {
		return "..."
	}
	return ""
}

// normalizeSet lowercases, trims and deduplicates skill names.
func normalizeSet(skills []string) map[string]bool {
	set := make(map[string]bool, len(skills))
	for _, s := range skills {
		s = strings.ToLower(strings.TrimSpace(s))
		if s != "" {
			set[s] = true
		}
	}
	return set
}

// clamp restricts v to [lo,hi].
func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
