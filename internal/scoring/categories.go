// Package scoring computes deterministic category scores and the overall
// ATS evaluation from a signal bundle. Every function here is pure: the
// same bundle always yields byte-identical scores and reasons.
package scoring

import (
	"fmt"
	"math"
	"strings"

	"github.com/Ashi-17-commits/skill-judge-AI/internal/signals"
)

// CategoryScore is one scored evaluation category with a traceable,
// human-readable reason assembled from the adjustments that fired.
type CategoryScore struct {
	Key    string `json:"key"`
	Label  string `json:"label"`
	Score  int    `json:"score"`
	Reason string `json:"reason"`
}

// Category keys, in the fixed evaluation order.
const (
	KeyFormat       = "format_structure"
	KeyKeywords     = "keyword_optimization"
	KeyExperience   = "experience_clarity"
	KeySkills       = "skills_presentation"
	KeyAchievements = "achievement_metrics"
)

// scoreFormat evaluates layout and structural hygiene. Base 50.
func scoreFormat(b *signals.Bundle) CategoryScore {
	score := 50
	var reasons []string

	if b.HasExperienceSection {
		score += 20
		reasons = append(reasons, "A recognizable experience section was found.")
	} else {
		score -= 25
		reasons = append(reasons, "No experience section header was detected.")
	}

	if b.HasSkillsSection {
		score += 15
		reasons = append(reasons, "A dedicated skills section was found.")
	} else {
		score -= 15
		reasons = append(reasons, "No skills section header was detected.")
	}

	switch {
	case b.PageCount >= 1 && b.PageCount <= 2:
		score += 10
		reasons = append(reasons, fmt.Sprintf("Length of %d page(s) is appropriate.", b.PageCount))
	case b.PageCount > 3:
		score -= 10
		reasons = append(reasons, fmt.Sprintf("At %d pages the resume is longer than recruiters expect.", b.PageCount))
	}

	switch {
	case b.AvgBulletLength >= 5 && b.AvgBulletLength <= 25:
		score += 5
		reasons = append(reasons, "Bullet points have a readable length.")
	case b.AvgBulletLength < 4:
		score -= 10
		reasons = append(reasons, "Bullet points are very short or missing.")
	case b.AvgBulletLength > 40:
		score -= 5
		reasons = append(reasons, "Bullet points run long; consider tightening them.")
	}

	if b.UsesTablesOrColumns {
		score += 5
		reasons = append(reasons, "A table or column layout was detected.")
	}

	return CategoryScore{
		Key:    KeyFormat,
		Label:  "Format & Structure",
		Score:  clampScore(score),
		Reason: strings.Join(reasons, " "),
	}
}

// scoreKeywords maps the keyword match ratio directly onto 0-100.
func scoreKeywords(b *signals.Bundle) CategoryScore {
	score := int(math.Round(b.KeywordMatchRatio * 100))
	reason := fmt.Sprintf("Matched %d of %d target keywords.", len(b.UniqueSkills), len(b.JDKeywords))
	return CategoryScore{
		Key:    KeyKeywords,
		Label:  "Keyword Optimization",
		Score:  clampScore(score),
		Reason: reason,
	}
}

// scoreExperience evaluates how clearly work history is laid out. Base 40.
func scoreExperience(b *signals.Bundle) CategoryScore {
	score := 40
	var reasons []string

	if b.NumberOfRoles >= 1 {
		score += 25
		reasons = append(reasons, fmt.Sprintf("%d role(s) with date ranges were detected.", b.NumberOfRoles))
	} else {
		score -= 20
		reasons = append(reasons, "No dated roles were detected.")
	}

	switch {
	case b.AvgBulletsPerRole >= 2 && b.AvgBulletsPerRole <= 6:
		score += 20
		reasons = append(reasons, "Each role is described with a solid number of bullets.")
	case b.AvgBulletsPerRole > 6:
		score += 10
		reasons = append(reasons, "Roles carry many bullets; the most impactful could stand out more.")
	case b.NumberOfRoles > 0 && b.AvgBulletsPerRole < 1:
		score -= 15
		reasons = append(reasons, "Roles are listed without supporting bullet points.")
	}

	return CategoryScore{
		Key:    KeyExperience,
		Label:  "Experience Clarity",
		Score:  clampScore(score),
		Reason: strings.Join(reasons, " "),
	}
}

// scoreSkills evaluates how skills are presented. Base 40.
func scoreSkills(b *signals.Bundle) CategoryScore {
	score := 40
	var reasons []string

	skillCount := len(b.UniqueSkills)
	switch {
	case skillCount >= 5:
		score += 30
		reasons = append(reasons, fmt.Sprintf("%d recognized skills are listed.", skillCount))
	case skillCount >= 2:
		score += 15
		reasons = append(reasons, fmt.Sprintf("Only %d recognized skills are listed.", skillCount))
	default:
		reasons = append(reasons, "Few or no recognized skills were found.")
	}

	if b.SkillsGrouped {
		score += 15
		reasons = append(reasons, "Skills are grouped together rather than scattered.")
	}

	if b.HasDuplicateSkills() {
		score -= 10
		reasons = append(reasons, "Some skills are mentioned repeatedly.")
	}

	return CategoryScore{
		Key:    KeySkills,
		Label:  "Skills Presentation",
		Score:  clampScore(score),
		Reason: strings.Join(reasons, " "),
	}
}

// scoreAchievements measures the share of bullets carrying quantified
// impact. With no bullets at all the score is zero and the reason says so.
func scoreAchievements(b *signals.Bundle) CategoryScore {
	if len(b.Bullets) == 0 {
		return CategoryScore{
			Key:    KeyAchievements,
			Label:  "Achievement Metrics",
			Score:  0,
			Reason: "No bullet points were found, so quantified achievements could not be assessed.",
		}
	}
	score := int(math.Round(float64(b.BulletsWithNumbers) / float64(len(b.Bullets)) * 100))
	reason := fmt.Sprintf("%d of %d bullets include measurable impact.", b.BulletsWithNumbers, len(b.Bullets))
	return CategoryScore{
		Key:    KeyAchievements,
		Label:  "Achievement Metrics",
		Score:  clampScore(score),
		Reason: reason,
	}
}

// clampScore clamps a score to [0,100].
func clampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
