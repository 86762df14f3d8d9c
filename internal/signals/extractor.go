package signals

import (
	"sort"
	"strconv"
	"strings"
	"time"
)

// Extractor turns raw resume text into a Bundle. It is a pure function of
// its inputs apart from the clock, which only resolves "present" in date
// ranges and is injectable for deterministic tests.
type Extractor struct {
	catalog *Catalog
	now     func() time.Time
}

// NewExtractor creates an extractor over the given skill catalog.
func NewExtractor(catalog *Catalog) *Extractor {
	return &Extractor{catalog: catalog, now: time.Now}
}

// WithClock returns a copy of the extractor using the given clock.
func (e *Extractor) WithClock(now func() time.Time) *Extractor {
	return &Extractor{catalog: e.catalog, now: now}
}

// Extract derives the full signal bundle from raw text and a page count.
// It performs no I/O and never fails; callers must reject blank text
// before calling.
func (e *Extractor) Extract(text string, pageCount int) *Bundle {
	if pageCount < 1 {
		pageCount = 1
	}
	normalized := normalizeWhitespace(text)
	lowered := strings.ToLower(normalized)

	skillsFound, uniqueSkills := e.extractSkills(lowered)
	bullets := detectBulletLines(text)
	ranges := dedupedDateRanges(text)

	jdKeywords := e.catalog.Terms()
	matchRatio := 0.0
	if len(jdKeywords) > 0 {
		matchRatio = float64(len(uniqueSkills)) / float64(len(jdKeywords))
	}
	matchRatio = clampRatio(matchRatio)

	bulletsWithNumbers := 0
	for _, b := range bullets {
		if hasMetricSignal(b) {
			bulletsWithNumbers++
		}
	}
	metricsRatio := 0.0
	if len(bullets) > 0 {
		metricsRatio = clampRatio(float64(bulletsWithNumbers) / float64(len(bullets)))
	}

	roleDivisor := len(ranges)
	if roleDivisor < 1 {
		roleDivisor = 1
	}

	return &Bundle{
		HasExperienceSection: hasSection(text, experienceHeaders),
		HasSkillsSection:     hasSection(text, skillsHeaders),
		UsesTablesOrColumns:  usesTablesOrColumns(text),
		PageCount:            pageCount,
		Bullets:              bullets,
		AvgBulletLength:      avgWordCount(bullets),

		SkillsFound:   skillsFound,
		UniqueSkills:  uniqueSkills,
		SkillsGrouped: skillsAppearGrouped(text, uniqueSkills),

		JDKeywords:        jdKeywords,
		KeywordMatchRatio: matchRatio,

		NumberOfRoles:     len(ranges),
		AvgBulletsPerRole: float64(len(bullets)) / float64(roleDivisor),

		BulletsWithNumbers: bulletsWithNumbers,
		MetricsRatio:       metricsRatio,

		EstimatedYearsExperience: e.estimateYears(normalized, ranges),
	}
}

// extractSkills returns the skill multiset (each occurrence counted) and
// the sorted unique set. Matching is case-insensitive substring
// containment against the catalog; skills outside the catalog are never
// detected.
func (e *Extractor) extractSkills(loweredText string) (multiset, unique []string) {
	for _, term := range e.catalog.Terms() {
		n := strings.Count(loweredText, term)
		if n == 0 {
			continue
		}
		for i := 0; i < n; i++ {
			multiset = append(multiset, term)
		}
		unique = append(unique, term)
	}
	sort.Strings(unique)
	return multiset, unique
}

// yearRange is one deduplicated date range detected in the text.
type yearRange struct {
	start int
	end   string // four-digit year or "present"
}

// dedupedDateRanges finds YYYY-YYYY and YYYY-present ranges, deduplicated
// by the exact (start, end) token pair in order of first appearance.
func dedupedDateRanges(text string) []yearRange {
	seen := make(map[string]bool)
	var ranges []yearRange
	for _, m := range dateRange.FindAllStringSubmatch(text, -1) {
		start, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		end := strings.ToLower(m[2])
		key := m[1] + "-" + end
		if seen[key] {
			continue
		}
		seen[key] = true
		ranges = append(ranges, yearRange{start: start, end: end})
	}
	return ranges
}

// estimateYears combines two weak estimators: explicit "N years" phrases
// (maximum found) and summed tenure across date ranges with "present"
// resolved to the current calendar year. The final estimate is the max of
// whichever produced a positive value, so candidates are not penalized
// for providing only one form.
func (e *Extractor) estimateYears(normalized string, ranges []yearRange) float64 {
	fromPhrases := 0.0
	for _, re := range yearPhrases {
		for _, m := range re.FindAllStringSubmatch(normalized, -1) {
			if v, err := strconv.ParseFloat(m[1], 64); err == nil && v > fromPhrases {
				fromPhrases = v
			}
		}
	}

	currentYear := e.now().UTC().Year()
	fromRanges := 0.0
	for _, r := range ranges {
		end := currentYear
		if r.end != "present" {
			v, err := strconv.Atoi(r.end)
			if err != nil {
				continue
			}
			end = v
		}
		if end >= r.start {
			fromRanges += float64(end - r.start)
		}
	}

	if fromPhrases > fromRanges {
		return fromPhrases
	}
	return fromRanges
}

// clampRatio clamps v to [0,1].
func clampRatio(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
