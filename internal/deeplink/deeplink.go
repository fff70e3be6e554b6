// Package deeplink parses the assessment deep-link token grammar that the
// chat surface and the flow engine agree on: an assessment id followed by
// optional query-string profile hints, embedded in generated prose as
// [label](assessment:token). The grammar stays inside this package; only
// the resolved (id, hints) tuple crosses into the engine.
package deeplink

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/hearttoheart/backend/internal/flow"
	"github.com/hearttoheart/backend/internal/heart"
)

// Resolve parses a raw token of the form "id?age=X&gender=Y&role=Z".
// All parameters are optional and order-insensitive; unrecognized keys are
// ignored. Gender and role values outside the enums are dropped to unset
// here rather than propagated into typed fields.
func Resolve(raw string) (string, flow.ProfileHints) {
	id, query, _ := strings.Cut(raw, "?")
	id = strings.TrimSpace(id)

	var hints flow.ProfileHints
	values, err := url.ParseQuery(query)
	if err != nil {
		return id, hints
	}
	hints.ExactAge = values.Get("age")
	if g := values.Get("gender"); heart.ValidGender(g) {
		hints.Gender = heart.Gender(g)
	}
	if r := values.Get("role"); heart.ValidRole(r) {
		hints.Role = heart.Role(r)
	}
	return id, hints
}

// Link is one assessment marker extracted from generated prose.
type Link struct {
	Label        string            `json:"label"`
	AssessmentID string            `json:"assessmentId"`
	Hints        flow.ProfileHints `json:"-"`
	Token        string            `json:"token"`
}

var linkPattern = regexp.MustCompile(`\[(.*?)\]\(assessment:(.*?)\)`)

// ExtractLinks finds every [label](assessment:token) marker in text.
func ExtractLinks(text string) []Link {
	matches := linkPattern.FindAllStringSubmatch(text, -1)
	if len(matches) == 0 {
		return nil
	}
	links := make([]Link, 0, len(matches))
	for _, m := range matches {
		id, hints := Resolve(m[2])
		links = append(links, Link{
			Label:        m[1],
			AssessmentID: id,
			Hints:        hints,
			Token:        m[2],
		})
	}
	return links
}
