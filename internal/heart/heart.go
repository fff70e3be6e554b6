// Package heart defines the core domain types of the parenting-support
// service. It has zero external dependencies — everything here is pure Go.
package heart

// Language selects which localized catalog and generated content to use.
type Language string

const (
	LangZH Language = "zh"
	LangEN Language = "en"
)

// ParseLanguage maps arbitrary input to a supported language,
// defaulting to Chinese.
func ParseLanguage(s string) Language {
	if s == string(LangEN) {
		return LangEN
	}
	return LangZH
}

// Role is who is answering on behalf of the child.
type Role string

const (
	RoleParent  Role = "parent"
	RoleTeacher Role = "teacher"
)

// Gender of the child. Undisclosed is the default.
type Gender string

const (
	GenderBoy         Gender = "boy"
	GenderGirl        Gender = "girl"
	GenderUndisclosed Gender = "prefer_not_to_say"
)

// ValidRole reports whether s is one of the known roles.
func ValidRole(s string) bool {
	return s == string(RoleParent) || s == string(RoleTeacher)
}

// ValidGender reports whether s is one of the known genders.
func ValidGender(s string) bool {
	return s == string(GenderBoy) || s == string(GenderGirl) || s == string(GenderUndisclosed)
}

// ChildProfile is the subject description collected before running an
// assessment. Fields fill in incrementally; ExactAge stays free-form.
type ChildProfile struct {
	AgeGroup string `json:"ageGroup"`
	ExactAge string `json:"exactAge"`
	Gender   Gender `json:"gender"`
	Role     Role   `json:"role"`
}

// AgeGroup is a named developmental band used to bucket assessments.
type AgeGroup struct {
	ID          string `json:"id"`
	Label       string `json:"label"`
	Range       string `json:"range"`
	Description string `json:"description"`
}

// AssessmentDefinition is a questionnaire belonging to one age group.
// IDs are unique across the whole catalog, not just within a group.
type AssessmentDefinition struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Questions   []string `json:"questions"`
	Tags        []string `json:"tags"`
}

// SolutionCard is a behavioral-strategy card from the solution library.
type SolutionCard struct {
	ID                string   `json:"id"`
	Title             string   `json:"title"`
	Subtitle          string   `json:"subtitle"`
	Icon              string   `json:"icon"`
	Description       string   `json:"description"`
	StrategiesParent  []string `json:"strategiesParent"`
	StrategiesTeacher []string `json:"strategiesTeacher"`
	KidSkill          string   `json:"kidSkill"`
}

// QA is one answered question, in question order.
type QA struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// Report is the generated analysis of a completed assessment, paired with
// the title and profile snapshot that produced it. Session-only, never
// persisted.
type Report struct {
	Text            string       `json:"text"`
	AssessmentTitle string       `json:"assessmentTitle"`
	Profile         ChildProfile `json:"profile"`
	Tip             string       `json:"tip,omitempty"`
}
