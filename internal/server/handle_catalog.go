package server

import (
	"net/http"

	"github.com/hearttoheart/backend/internal/heart"
)

// CatalogResponse is the full reference data set in the session's language.
type CatalogResponse struct {
	Language              heart.Language                          `json:"language"`
	AgeGroups             []heart.AgeGroup                        `json:"ageGroups"`
	AssessmentsByAgeGroup map[string][]heart.AssessmentDefinition `json:"assessmentsByAgeGroup"`
	MilestonesByAgeGroup  map[string]string                       `json:"milestonesByAgeGroup"`
	SolutionCards         []heart.SolutionCard                    `json:"solutionCards"`
	ScaleOptions          []string                                `json:"scaleOptions"`
	UnsureLabel           string                                  `json:"unsureLabel"`
}

func handleCatalog() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cat := sessionFrom(r).Catalog()
		writeJSON(w, http.StatusOK, CatalogResponse{
			Language:              cat.Language,
			AgeGroups:             cat.AgeGroups,
			AssessmentsByAgeGroup: cat.AssessmentsByAgeGroup,
			MilestonesByAgeGroup:  cat.MilestonesByAgeGroup,
			SolutionCards:         cat.SolutionCards,
			ScaleOptions:          cat.ScaleOptions(),
			UnsureLabel:           cat.UnsureLabel(),
		})
	}
}
