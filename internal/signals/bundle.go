package signals

import "sort"

// Bundle holds every signal extracted from one resume's text. It is
// produced once per document and treated as immutable afterwards; callers
// that need to hold onto it across requests should store a Clone.
type Bundle struct {
	// Format and structure
	HasExperienceSection bool     `json:"has_experience_section"`
	HasSkillsSection     bool     `json:"has_skills_section"`
	UsesTablesOrColumns  bool     `json:"uses_tables_or_columns"`
	PageCount            int      `json:"page_count"`
	Bullets              []string `json:"bullets"`
	AvgBulletLength      float64  `json:"avg_bullet_length"`

	// Skills
	SkillsFound   []string `json:"skills_found"`  // multiset, duplicates preserved
	UniqueSkills  []string `json:"unique_skills"` // sorted, deduplicated
	SkillsGrouped bool     `json:"skills_grouped"`

	// Keyword optimization
	JDKeywords        []string `json:"jd_keywords"`
	KeywordMatchRatio float64  `json:"keyword_match_ratio"`

	// Experience clarity
	NumberOfRoles     int     `json:"number_of_roles"`
	AvgBulletsPerRole float64 `json:"avg_bullets_per_role"`

	// Achievement metrics
	BulletsWithNumbers int     `json:"bullets_with_numbers"`
	MetricsRatio       float64 `json:"metrics_ratio"`

	EstimatedYearsExperience float64 `json:"estimated_years_experience"`
}

// Clone returns an independent deep copy of the bundle. Mutating the copy
// never affects the original.
func (b *Bundle) Clone() *Bundle {
	out := *b
	out.Bullets = append([]string(nil), b.Bullets...)
	out.SkillsFound = append([]string(nil), b.SkillsFound...)
	out.UniqueSkills = append([]string(nil), b.UniqueSkills...)
	out.JDKeywords = append([]string(nil), b.JDKeywords...)
	return &out
}

// SkillSet returns the unique skills as a lookup set.
func (b *Bundle) SkillSet() map[string]bool {
	set := make(map[string]bool, len(b.UniqueSkills))
	for _, s := range b.UniqueSkills {
		set[s] = true
	}
	return set
}

// HasDuplicateSkills reports whether any skill is mentioned more than once.
func (b *Bundle) HasDuplicateSkills() bool {
	return len(b.SkillsFound) > len(b.UniqueSkills)
}

// SummarizeSkills returns the unique skills ordered by mention frequency
// (most frequent first, alphabetical on ties). Frequency affects display
// ordering only, never scoring.
func (b *Bundle) SummarizeSkills() []string {
	counts := make(map[string]int, len(b.UniqueSkills))
	for _, s := range b.SkillsFound {
		counts[s]++
	}
	ordered := make([]string, 0, len(counts))
	for s := range counts {
		ordered = append(ordered, s)
	}
	sort.Slice(ordered, func(i, j int) bool {
		if counts[ordered[i]] != counts[ordered[j]] {
			return counts[ordered[i]] > counts[ordered[j]]
		}
		return ordered[i] < ordered[j]
	})
	return ordered
}
