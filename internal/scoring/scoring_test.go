package scoring

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ashi-17-commits/skill-judge-AI/internal/signals"
)

// strongBundle is a well-formed resume's signals: both sections, one page,
// grouped skills and mostly quantified bullets.
func strongBundle() *signals.Bundle {
	return &signals.Bundle{
		HasExperienceSection: true,
		HasSkillsSection:     true,
		PageCount:            1,
		Bullets:              []string{"b1", "b2", "b3", "b4", "b5", "b6"},
		AvgBulletLength:      12,
		SkillsFound:          []string{"python", "sql", "docker", "aws", "git", "linux"},
		UniqueSkills:         []string{"aws", "docker", "git", "linux", "python", "sql"},
		SkillsGrouped:        true,
		JDKeywords:           make([]string, 21),
		KeywordMatchRatio:    6.0 / 21.0,
		NumberOfRoles:        2,
		AvgBulletsPerRole:    3,
		BulletsWithNumbers:   4,
		MetricsRatio:         4.0 / 6.0,
	}
}

// weakBundle has no sections, no skills, no bullets and no dated roles.
func weakBundle() *signals.Bundle {
	return &signals.Bundle{PageCount: 1}
}

func TestScoreFormat_AllBonuses(t *testing.T) {
	cs := scoreFormat(strongBundle())
	assert.Equal(t, KeyFormat, cs.Key)
	assert.Equal(t, 100, cs.Score)
	assert.Contains(t, cs.Reason, "experience section was found")
}

func TestScoreFormat_AllPenaltiesClampToZero(t *testing.T) {
	b := weakBundle()
	b.PageCount = 5
	cs := scoreFormat(b)
	assert.Equal(t, 0, cs.Score)
	assert.Contains(t, cs.Reason, "No experience section header was detected.")
	assert.Contains(t, cs.Reason, "longer than recruiters expect")
}

func TestScoreFormat_LongBulletsPenalty(t *testing.T) {
	b := strongBundle()
	b.AvgBulletLength = 45
	cs := scoreFormat(b)
	assert.Equal(t, 90, cs.Score)
	assert.Contains(t, cs.Reason, "run long")
}

func TestScoreKeywords_RoundedRatio(t *testing.T) {
	b := strongBundle()
	cs := scoreKeywords(b)
	assert.Equal(t, 29, cs.Score)
	assert.Equal(t, "Matched 6 of 21 target keywords.", cs.Reason)
}

func TestScoreKeywords_Monotonic(t *testing.T) {
	low := strongBundle()
	low.KeywordMatchRatio = 0.2
	high := strongBundle()
	high.KeywordMatchRatio = 0.6
	assert.Less(t, scoreKeywords(low).Score, scoreKeywords(high).Score)
}

func TestScoreExperience(t *testing.T) {
	cs := scoreExperience(strongBundle())
	assert.Equal(t, 85, cs.Score)

	cs = scoreExperience(weakBundle())
	assert.Equal(t, 20, cs.Score)
	assert.Contains(t, cs.Reason, "No dated roles were detected.")
}

func TestScoreExperience_RolesWithoutBullets(t *testing.T) {
	b := weakBundle()
	b.NumberOfRoles = 2
	cs := scoreExperience(b)
	// 40 + 25 - 15
	assert.Equal(t, 50, cs.Score)
	assert.Contains(t, cs.Reason, "without supporting bullet points")
}

func TestScoreSkills(t *testing.T) {
	cs := scoreSkills(strongBundle())
	assert.Equal(t, 85, cs.Score)

	cs = scoreSkills(weakBundle())
	assert.Equal(t, 40, cs.Score)
	assert.Contains(t, cs.Reason, "Few or no recognized skills were found.")
}

func TestScoreSkills_DuplicatePenalty(t *testing.T) {
	b := strongBundle()
	b.SkillsFound = append(b.SkillsFound, "python")
	cs := scoreSkills(b)
	assert.Equal(t, 75, cs.Score)
	assert.Contains(t, cs.Reason, "mentioned repeatedly")
}

func TestScoreAchievements_NoBullets(t *testing.T) {
	cs := scoreAchievements(weakBundle())
	assert.Equal(t, 0, cs.Score)
	assert.Equal(t, "No bullet points were found, so quantified achievements could not be assessed.", cs.Reason)
}

func TestScoreAchievements_Ratio(t *testing.T) {
	cs := scoreAchievements(strongBundle())
	assert.Equal(t, 67, cs.Score)
	assert.Equal(t, "4 of 6 bullets include measurable impact.", cs.Reason)
}

func TestScoreAchievements_FullClamp(t *testing.T) {
	b := strongBundle()
	b.BulletsWithNumbers = len(b.Bullets)
	assert.Equal(t, 100, scoreAchievements(b).Score)
}

func TestWeightsSumToOne(t *testing.T) {
	sum := formatWeight + keywordWeight + experienceWeight + skillsWeight + achievementsWeight
	assert.InDelta(t, 1.0, sum, 1e-9)
}

func TestEvaluate_StrongBundle(t *testing.T) {
	ev := Evaluate(strongBundle())

	// 0.20*100 + 0.25*29 + 0.20*85 + 0.15*85 + 0.20*67 = 70.4
	assert.Equal(t, 70, ev.OverallScore)
	assert.Equal(t, VerdictStrong, ev.Verdict)

	require.Len(t, ev.Breakdown, 5)
	keys := []string{KeyFormat, KeyKeywords, KeyExperience, KeySkills, KeyAchievements}
	for i, key := range keys {
		assert.Equal(t, key, ev.Breakdown[i].Key)
	}

	assert.Contains(t, ev.Summary, "Format and structure are clear.")
	assert.Contains(t, ev.Summary, "Few target keywords are represented.")
	assert.Contains(t, ev.Summary, "Work history is easy to follow.")
	assert.Contains(t, ev.Summary, "Skills are presented clearly.")
}

func TestEvaluate_WeakBundle(t *testing.T) {
	ev := Evaluate(weakBundle())

	// 0.20*10 + 0.20*20 + 0.15*40 = 12
	assert.Equal(t, 12, ev.OverallScore)
	assert.Equal(t, VerdictLow, ev.Verdict)
	assert.Contains(t, ev.Summary, "Formatting needs attention.")
	assert.Contains(t, ev.Summary, "Few achievements include measurable results.")
}

func TestEvaluate_Deterministic(t *testing.T) {
	first := Evaluate(strongBundle())
	second := Evaluate(strongBundle())
	assert.Equal(t, first, second)
}

func TestVerdictFor_Boundaries(t *testing.T) {
	assert.Equal(t, VerdictStrong, verdictFor(70))
	assert.Equal(t, VerdictModerate, verdictFor(69))
	assert.Equal(t, VerdictModerate, verdictFor(40))
	assert.Equal(t, VerdictLow, verdictFor(39))
	assert.Equal(t, VerdictLow, verdictFor(0))
	assert.Equal(t, VerdictStrong, verdictFor(100))
}

func TestSummarize_FallbackWhenNoClauseFires(t *testing.T) {
	breakdown := []CategoryScore{
		{Key: KeyFormat, Score: 55},
		{Key: KeyKeywords, Score: 55},
		{Key: KeyExperience, Score: 55},
		{Key: KeySkills, Score: 55},
		{Key: KeyAchievements, Score: 55},
	}
	assert.Equal(t, "Overall ATS score: 55/100.", summarize(55, breakdown))
}

func TestEvaluateDocument_RejectsBlankText(t *testing.T) {
	ev := NewEvaluator(signals.NewExtractor(signals.DefaultCatalog()))

	for _, text := range []string{"", "   ", "\n\t  \n"} {
		evaluation, bundle, err := ev.EvaluateDocument(text, 1)
		require.Error(t, err)
		var emptyErr *EmptyInputError
		assert.True(t, errors.As(err, &emptyErr))
		assert.Nil(t, evaluation)
		assert.Nil(t, bundle)
	}
}

func TestEvaluateDocument_ScoresNonBlankText(t *testing.T) {
	ev := NewEvaluator(signals.NewExtractor(signals.DefaultCatalog()))

	evaluation, bundle, err := ev.EvaluateDocument("Skills\nPython, SQL, Docker", 1)
	require.NoError(t, err)
	require.NotNil(t, evaluation)
	require.NotNil(t, bundle)
	assert.Equal(t, []string{"docker", "python", "sql"}, bundle.UniqueSkills)
	assert.NotEmpty(t, evaluation.Verdict)
}
