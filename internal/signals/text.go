package signals

import (
	"regexp"
	"strings"
)

// Section header vocabularies. A stripped line shorter than
// maxHeaderLineLen containing any of these (case-insensitive) marks the
// section present.
var (
	experienceHeaders = []string{
		"experience", "work experience", "employment", "professional experience",
		"work history", "career", "positions", "relevant experience",
	}
	skillsHeaders = []string{
		"skills", "technical skills", "core competencies", "technologies",
		"key skills", "expertise", "competencies", "summary of qualifications",
	}
)

const maxHeaderLineLen = 60

// metricKeywords flag bullets and sentences that describe quantified impact.
var metricKeywords = []string{
	"increased", "reduced", "improved", "optimized", "boosted", "decreased",
	"grew", "cut", "%", "percent", "revenue", "cost", "latency",
	"throughput", "performance",
}

var (
	whitespaceRun = regexp.MustCompile(`\s+`)
	bulletStart   = regexp.MustCompile(`^([\x{2022}\x{2023}\x{25E6}\x{2043}*\-\x{2013}\x{2014}]|\d+[.)])\s+`)
	dateRange     = regexp.MustCompile(`(?i)(20\d{2}|19\d{2})\s*[-\x{2013}]\s*(20\d{2}|19\d{2}|present)`)
	metricNumber  = regexp.MustCompile(`\d+%|\$\d+|\d+x`)
	yearPhrases   = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)\s*\+?\s*years? of experience`),
		regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)\s*\+?\s*yrs?`),
	}
)

// normalizeWhitespace collapses all whitespace runs to single spaces.
// Used for pattern matching; line-oriented heuristics keep the raw text.
func normalizeWhitespace(text string) string {
	return strings.TrimSpace(whitespaceRun.ReplaceAllString(text, " "))
}

// nonEmptyLines returns the stripped, non-blank lines of the text.
func nonEmptyLines(text string) []string {
	var lines []string
	for _, ln := range strings.Split(text, "\n") {
		ln = strings.TrimSpace(ln)
		if ln != "" {
			lines = append(lines, ln)
		}
	}
	return lines
}

// hasSection reports whether any short line contains one of the headers.
func hasSection(text string, headers []string) bool {
	for _, line := range nonEmptyLines(text) {
		if len(line) >= maxHeaderLineLen {
			continue
		}
		lowered := strings.ToLower(line)
		for _, h := range headers {
			if strings.Contains(lowered, h) {
				return true
			}
		}
	}
	return false
}

// detectBulletLines returns the lines that start with a bullet glyph or a
// numbered-list marker.
func detectBulletLines(text string) []string {
	var bullets []string
	for _, line := range nonEmptyLines(text) {
		if bulletStart.MatchString(line) {
			bullets = append(bullets, line)
		}
	}
	return bullets
}

// avgWordCount returns the mean word count across the given lines.
func avgWordCount(lines []string) float64 {
	if len(lines) == 0 {
		return 0
	}
	total := 0
	for _, ln := range lines {
		total += len(strings.Fields(ln))
	}
	return float64(total) / float64(len(lines))
}

// hasMetricSignal reports whether a line mentions an impact keyword or
// matches a numeric impact pattern such as "30%", "$2M" or "3x".
func hasMetricSignal(line string) bool {
	lowered := strings.ToLower(line)
	for _, kw := range metricKeywords {
		if strings.Contains(lowered, kw) {
			return true
		}
	}
	return metricNumber.MatchString(line)
}

// Layout heuristic thresholds. The variance cutoff and minimum sample size
// are deliberately left untuned so scores stay comparable across versions.
const (
	layoutMinLines       = 5
	layoutLenVarianceMax = 200.0
	layoutLineLenLow     = 10
	layoutLineLenHigh    = 80
)

// usesTablesOrColumns reports whether the text looks like it was laid out
// in a table or multi-column format: either a meaningful share of lines
// contain tabs, or mid-length lines have suspiciously uniform lengths.
func usesTablesOrColumns(text string) bool {
	lines := nonEmptyLines(text)
	if len(lines) < layoutMinLines {
		return false
	}

	tabLines := 0
	for _, ln := range lines {
		if strings.Contains(ln, "\t") {
			tabLines++
		}
	}
	threshold := len(lines) / 5
	if threshold < 2 {
		threshold = 2
	}
	if tabLines >= threshold {
		return true
	}

	var lengths []int
	for _, ln := range lines {
		if n := len(ln); n > layoutLineLenLow && n < layoutLineLenHigh {
			lengths = append(lengths, n)
		}
	}
	if len(lengths) < layoutMinLines {
		return false
	}
	mean := 0.0
	for _, n := range lengths {
		mean += float64(n)
	}
	mean /= float64(len(lengths))
	variance := 0.0
	for _, n := range lengths {
		d := float64(n) - mean
		variance += d * d
	}
	variance /= float64(len(lengths))
	return variance < layoutLenVarianceMax
}

// groupingWindow is the number of consecutive lines considered one block
// when checking whether skills are listed together.
const (
	groupingWindow    = 3
	groupingMinSkills = 3
)

// skillsAppearGrouped reports whether at least groupingMinSkills distinct
// skills occur on a single line or within a sliding window of consecutive
// lines, which suggests a dedicated skills block rather than prose.
func skillsAppearGrouped(text string, skills []string) bool {
	lines := nonEmptyLines(strings.ToLower(text))
	countIn := func(block string) int {
		n := 0
		for _, s := range skills {
			if strings.Contains(block, s) {
				n++
			}
		}
		return n
	}
	for _, line := range lines {
		if countIn(line) >= groupingMinSkills {
			return true
		}
	}
	for i := 0; i+groupingWindow <= len(lines); i++ {
		block := strings.Join(lines[i:i+groupingWindow], " ")
		if countIn(block) >= groupingMinSkills {
			return true
		}
	}
	return false
}
