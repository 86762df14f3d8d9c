// Package roles holds the static role catalog and the deterministic
// readiness comparator that checks an extracted skill set against a role.
package roles

import (
	"sort"
	"strings"
)

// Definition describes one target role. Definitions are created at process
// start and never mutated; skill names are lowercase so they compare
// directly against extracted skills.
type Definition struct {
	DisplayName         string
	RequiredSkills      []string
	OptionalSkills      []string
	NonNegotiableSkills []string
	MinExperienceYears  float64
}

// definitions maps normalized role slugs to their definitions.
var definitions = map[string]Definition{
	"senior_software_engineer": {
		DisplayName: "Senior Software Engineer",
		RequiredSkills: []string{
			"python", "javascript", "sql", "git", "docker", "aws", "react", "node.js",
		},
		OptionalSkills: []string{
			"typescript", "kubernetes", "postgresql", "fastapi", "django", "flask",
			"linux", "machine learning",
		},
		NonNegotiableSkills: []string{"python", "sql", "docker", "aws"},
		MinExperienceYears:  5,
	},
	"product_manager": {
		DisplayName:    "Product Manager",
		RequiredSkills: []string{"sql", "data analysis", "aws", "javascript"},
		OptionalSkills: []string{
			"python", "machine learning", "react", "postgresql", "docker",
		},
		NonNegotiableSkills: []string{"sql", "data analysis"},
		MinExperienceYears:  4,
	},
	"data_scientist": {
		DisplayName:    "Data Scientist",
		RequiredSkills: []string{"python", "sql", "machine learning", "data analysis"},
		OptionalSkills: []string{
			"javascript", "aws", "docker", "postgresql", "mongodb", "linux",
		},
		NonNegotiableSkills: []string{"python", "machine learning", "data analysis"},
		MinExperienceYears:  3,
	},
	"ux_designer": {
		DisplayName:         "UX Designer",
		RequiredSkills:      []string{"javascript", "react", "data analysis"},
		OptionalSkills:      []string{"python", "sql", "aws", "docker"},
		NonNegotiableSkills: []string{"javascript", "react", "data analysis"},
		MinExperienceYears:  3,
	},
	"engineering_manager": {
		DisplayName: "Engineering Manager",
		RequiredSkills: []string{
			"python", "javascript", "sql", "docker", "aws", "git",
		},
		OptionalSkills: []string{
			"kubernetes", "react", "node.js", "postgresql", "linux", "machine learning",
		},
		NonNegotiableSkills: []string{"python", "docker", "aws", "git"},
		MinExperienceYears:  6,
	},
	"devops_engineer": {
		DisplayName: "DevOps Engineer",
		RequiredSkills: []string{
			"docker", "kubernetes", "aws", "linux", "git", "python",
		},
		OptionalSkills: []string{
			"javascript", "postgresql", "mongodb", "azure", "gcp", "react",
		},
		NonNegotiableSkills: []string{"docker", "kubernetes", "aws", "linux"},
		MinExperienceYears:  4,
	},
}

// NormalizeKey converts a role name to its lookup slug: lowercase, spaces
// and hyphens to underscores, repeated underscores collapsed, leading and
// trailing underscores removed. All lookups go through this function.
func NormalizeKey(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	s = strings.ReplaceAll(s, " ", "_")
	s = strings.ReplaceAll(s, "-", "_")
	for strings.Contains(s, "__") {
		s = strings.ReplaceAll(s, "__", "_")
	}
	return strings.Trim(s, "_")
}

// Lookup resolves a role name to its definition. Matching is strict: an
// unrecognized role returns false, never a nearest or default role.
func Lookup(name string) (Definition, bool) {
	key := NormalizeKey(name)
	if key == "" {
		return Definition{}, false
	}
	def, ok := definitions[key]
	return def, ok
}

// Info is a catalog listing entry for UI consumption.
type Info struct {
	Key         string `json:"key"`
	DisplayName string `json:"display_name"`
}

// List returns all roles sorted by slug.
func List() []Info {
	out := make([]Info, 0, len(definitions))
	for key, def := range definitions {
		out = append(out, Info{Key: key, DisplayName: def.DisplayName})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}
