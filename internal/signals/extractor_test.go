package signals

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixedClock pins "present" resolution to 2026 so tenure sums are stable.
func fixedClock() time.Time {
	return time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)
}

func newTestExtractor() *Extractor {
	return NewExtractor(DefaultCatalog()).WithClock(fixedClock)
}

const sampleResume = `John Doe
Software Engineer with 5 years of experience

Experience
Acme Corp 2019-2023
- Improved performance by 30% across services
- Built data pipelines in Python and SQL

Skills
Python, SQL, Docker, AWS
`

func TestExtract_SampleResume(t *testing.T) {
	b := newTestExtractor().Extract(sampleResume, 1)

	assert.True(t, b.HasExperienceSection)
	assert.True(t, b.HasSkillsSection)
	assert.Equal(t, 1, b.PageCount)

	assert.Equal(t, []string{"aws", "docker", "python", "sql"}, b.UniqueSkills)
	assert.InDelta(t, 5.0, b.EstimatedYearsExperience, 0.001)

	require.Len(t, b.Bullets, 2)
	assert.Equal(t, 1, b.BulletsWithNumbers)
	assert.InDelta(t, 0.5, b.MetricsRatio, 0.001)

	assert.Equal(t, 1, b.NumberOfRoles)
	assert.InDelta(t, 2.0, b.AvgBulletsPerRole, 0.001)

	assert.True(t, b.SkillsGrouped)
	assert.InDelta(t, 4.0/21.0, b.KeywordMatchRatio, 0.001)
}

func TestExtract_Idempotent(t *testing.T) {
	e := newTestExtractor()
	first := e.Extract(sampleResume, 1)
	second := e.Extract(sampleResume, 1)
	assert.Equal(t, first, second)
}

func TestExtract_PageCountFloor(t *testing.T) {
	b := newTestExtractor().Extract("some text", 0)
	assert.Equal(t, 1, b.PageCount)
}

func TestExtract_SkillMultisetPreservesDuplicates(t *testing.T) {
	b := newTestExtractor().Extract("python python docker", 1)

	assert.ElementsMatch(t, []string{"python", "python", "docker"}, b.SkillsFound)
	assert.Equal(t, []string{"docker", "python"}, b.UniqueSkills)
	assert.True(t, b.HasDuplicateSkills())
}

func TestExtract_NoSkills(t *testing.T) {
	b := newTestExtractor().Extract("An enthusiastic generalist.", 1)

	assert.Empty(t, b.UniqueSkills)
	assert.False(t, b.HasDuplicateSkills())
	assert.Equal(t, 0.0, b.KeywordMatchRatio)
}

func TestHasSection_HeaderMatching(t *testing.T) {
	assert.True(t, hasSection("Work History\nstuff", experienceHeaders))
	assert.True(t, hasSection("TECHNICAL SKILLS", skillsHeaders))
	assert.False(t, hasSection("Hobbies\nReading", experienceHeaders))
}

func TestHasSection_IgnoresLongLines(t *testing.T) {
	long := "my experience spans a decade of work across many industries and countries alike"
	require.GreaterOrEqual(t, len(long), maxHeaderLineLen)
	assert.False(t, hasSection(long, experienceHeaders))
}

func TestDetectBulletLines_Glyphs(t *testing.T) {
	text := "• shipped feature\n- fixed bug\n* wrote docs\n1. planned roadmap\n2) ran retro\nplain line"
	bullets := detectBulletLines(text)
	assert.Len(t, bullets, 5)
}

func TestDateRanges_DeduplicatedByTokenPair(t *testing.T) {
	text := "2019-2023 Acme\n2019-2023 Acme again\n2015–2018 Initech\n2024-present Hooli"
	ranges := dedupedDateRanges(text)
	require.Len(t, ranges, 3)
	assert.Equal(t, 2019, ranges[0].start)
	assert.Equal(t, "present", ranges[2].end)
}

func TestEstimateYears_MaxOfPhraseAndRanges(t *testing.T) {
	e := newTestExtractor()

	// Phrase beats short tenure
	b := e.Extract("8 years of experience\n2022-2023 Acme", 1)
	assert.InDelta(t, 8.0, b.EstimatedYearsExperience, 0.001)

	// Summed tenure beats modest phrase; present resolves to 2026
	b = e.Extract("3 yrs\n2015-2020 Acme\n2024-present Hooli", 1)
	assert.InDelta(t, 7.0, b.EstimatedYearsExperience, 0.001)

	// Neither estimator fires
	b = e.Extract("no dates here", 1)
	assert.Equal(t, 0.0, b.EstimatedYearsExperience)
}

func TestUsesTablesOrColumns_TabHeavy(t *testing.T) {
	text := "a\tb\nc\td\ne\tf\ng\th\ni\tj\nk\tl"
	assert.True(t, usesTablesOrColumns(text))
}

func TestUsesTablesOrColumns_TooFewLines(t *testing.T) {
	assert.False(t, usesTablesOrColumns("one\ttwo\nthree\tfour"))
}

func TestUsesTablesOrColumns_HighVarianceProse(t *testing.T) {
	text := "short line here\n" +
		"a considerably longer line that talks about many different things at length\n" +
		"mid-length sentence right here\n" +
		"tiny one okay\n" +
		"another quite long line describing responsibilities and a couple of outcomes\n" +
		"middle sized line again\n"
	assert.False(t, usesTablesOrColumns(text))
}

func TestSkillsAppearGrouped_SingleLine(t *testing.T) {
	assert.True(t, skillsAppearGrouped("Python, SQL, Docker", []string{"python", "sql", "docker"}))
}

func TestSkillsAppearGrouped_SlidingWindow(t *testing.T) {
	text := "python services\nsql reporting\ndocker builds"
	assert.True(t, skillsAppearGrouped(text, []string{"python", "sql", "docker"}))
}

func TestSkillsAppearGrouped_Scattered(t *testing.T) {
	text := "python services\nnothing\nnothing\nnothing\nsql reporting\nnothing\nnothing\nnothing\ndocker builds"
	assert.False(t, skillsAppearGrouped(text, []string{"python", "sql", "docker"}))
}

func TestHasMetricSignal(t *testing.T) {
	assert.True(t, hasMetricSignal("- reduced costs meaningfully"))
	assert.True(t, hasMetricSignal("- grew revenue"))
	assert.True(t, hasMetricSignal("- achieved 3x speedup"))
	assert.True(t, hasMetricSignal("- saved $400 per month"))
	assert.False(t, hasMetricSignal("- attended meetings"))
}
