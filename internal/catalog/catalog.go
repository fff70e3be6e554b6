// Package catalog holds the static, language-parameterized reference data:
// age groups, milestone text, assessment definitions, and solution cards.
// Loading is a pure function of the language; the data never mutates.
package catalog

import (
	"fmt"

	"github.com/hearttoheart/backend/internal/heart"
)

// Catalog is the full reference data set for one language.
type Catalog struct {
	Language              heart.Language
	AgeGroups             []heart.AgeGroup
	AssessmentsByAgeGroup map[string][]heart.AssessmentDefinition
	MilestonesByAgeGroup  map[string]string
	SolutionCards         []heart.SolutionCard
}

// Load returns the catalog for lang. Each call yields a fresh instance;
// switching language re-derives the whole data set rather than patching it.
func Load(lang heart.Language) *Catalog {
	if lang == heart.LangEN {
		return loadEN()
	}
	return loadZH()
}

// FindAssessment scans every age-group bucket for the given id. Deep links
// resolve by id alone, so the scan is global.
func (c *Catalog) FindAssessment(id string) (heart.AssessmentDefinition, string, bool) {
	for groupID, defs := range c.AssessmentsByAgeGroup {
		for _, d := range defs {
			if d.ID == id {
				return d, groupID, true
			}
		}
	}
	return heart.AssessmentDefinition{}, "", false
}

// AgeGroup returns the group with the given id.
func (c *Catalog) AgeGroup(id string) (heart.AgeGroup, bool) {
	for _, g := range c.AgeGroups {
		if g.ID == id {
			return g, true
		}
	}
	return heart.AgeGroup{}, false
}

// Solution returns the solution card with the given id.
func (c *Catalog) Solution(id string) (heart.SolutionCard, bool) {
	for _, s := range c.SolutionCards {
		if s.ID == id {
			return s, true
		}
	}
	return heart.SolutionCard{}, false
}

// ScaleOptions returns the localized 4-point frequency scale that every
// assessment question is answered on.
func (c *Catalog) ScaleOptions() []string {
	if c.Language == heart.LangEN {
		return []string{"Always", "Sometimes", "Rarely", "Never"}
	}
	return []string{"总是", "有时", "很少", "从不"}
}

// UnsureLabel is the sentinel used for a conceptually-missing answer.
func (c *Catalog) UnsureLabel() string {
	if c.Language == heart.LangEN {
		return "Unsure"
	}
	return "不确定"
}

// Validate checks the structural invariants of the data set. A failure here
// is a defect in the compiled-in data, so it is exercised by tests rather
// than at runtime.
func (c *Catalog) Validate() error {
	groupIDs := make(map[string]bool, len(c.AgeGroups))
	for _, g := range c.AgeGroups {
		if groupIDs[g.ID] {
			return fmt.Errorf("duplicate age group id %q", g.ID)
		}
		groupIDs[g.ID] = true
	}

	if len(c.AssessmentsByAgeGroup) != len(groupIDs) {
		return fmt.Errorf("assessment buckets (%d) do not match age groups (%d)",
			len(c.AssessmentsByAgeGroup), len(groupIDs))
	}
	if len(c.MilestonesByAgeGroup) != len(groupIDs) {
		return fmt.Errorf("milestone entries (%d) do not match age groups (%d)",
			len(c.MilestonesByAgeGroup), len(groupIDs))
	}

	seen := make(map[string]string)
	for groupID, defs := range c.AssessmentsByAgeGroup {
		if !groupIDs[groupID] {
			return fmt.Errorf("assessment bucket %q has no matching age group", groupID)
		}
		for _, d := range defs {
			if prev, ok := seen[d.ID]; ok {
				return fmt.Errorf("assessment id %q appears in both %q and %q", d.ID, prev, groupID)
			}
			seen[d.ID] = groupID
			if len(d.Questions) == 0 {
				return fmt.Errorf("assessment %q has no questions", d.ID)
			}
		}
	}
	for groupID := range c.MilestonesByAgeGroup {
		if !groupIDs[groupID] {
			return fmt.Errorf("milestone entry %q has no matching age group", groupID)
		}
	}

	cardIDs := make(map[string]bool, len(c.SolutionCards))
	for _, s := range c.SolutionCards {
		if cardIDs[s.ID] {
			return fmt.Errorf("duplicate solution card id %q", s.ID)
		}
		cardIDs[s.ID] = true
	}
	return nil
}
