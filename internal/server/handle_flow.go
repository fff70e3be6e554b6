package server

import (
	"errors"
	"net/http"

	"github.com/hearttoheart/backend/internal/flow"
	"github.com/hearttoheart/backend/internal/gemini"
	"github.com/hearttoheart/backend/internal/heart"
)

// flowError maps engine errors onto HTTP statuses.
func flowError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, flow.ErrInvalidState), errors.Is(err, flow.ErrBusy):
		writeError(w, http.StatusConflict, err.Error())
	case errors.Is(err, flow.ErrIncomplete), errors.Is(err, flow.ErrInvalidOption):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, flow.ErrUnknownID):
		writeError(w, http.StatusNotFound, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}

func handleFlowState() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, sessionFrom(r).Snapshot())
	}
}

// RoleRequest is the request body for POST /api/flow/role.
type RoleRequest struct {
	Role string `json:"role"`
}

func handleSelectRole() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RoleRequest
		if err := readJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if !heart.ValidRole(req.Role) {
			writeError(w, http.StatusBadRequest, "unknown role")
			return
		}
		sess := sessionFrom(r)
		if err := sess.SelectRole(heart.Role(req.Role)); err != nil {
			flowError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, sess.Snapshot())
	}
}

// AgeGroupRequest is the request body for POST /api/flow/age-group.
type AgeGroupRequest struct {
	AgeGroupID string `json:"ageGroupId"`
}

func handleSelectAgeGroup() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req AgeGroupRequest
		if err := readJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		sess := sessionFrom(r)
		if err := sess.SelectAgeGroup(req.AgeGroupID); err != nil {
			flowError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, sess.Snapshot())
	}
}

// ProfileRequest carries partial profile updates. Omitted fields are left
// unchanged.
type ProfileRequest struct {
	Gender   *string `json:"gender,omitempty"`
	ExactAge *string `json:"exactAge,omitempty"`
}

func handleUpdateProfile() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ProfileRequest
		if err := readJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		var gender *heart.Gender
		if req.Gender != nil {
			if !heart.ValidGender(*req.Gender) {
				writeError(w, http.StatusBadRequest, "unknown gender")
				return
			}
			g := heart.Gender(*req.Gender)
			gender = &g
		}
		sess := sessionFrom(r)
		if err := sess.UpdateProfile(gender, req.ExactAge); err != nil {
			flowError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, sess.Snapshot())
	}
}

func handleSubmitProfile() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess := sessionFrom(r)
		if err := sess.SubmitProfile(); err != nil {
			flowError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, sess.Snapshot())
	}
}

// AssessmentRequest is the request body for POST /api/flow/assessment.
type AssessmentRequest struct {
	AssessmentID string `json:"assessmentId"`
}

func handleSelectAssessment() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req AssessmentRequest
		if err := readJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		sess := sessionFrom(r)
		if err := sess.SelectAssessment(req.AssessmentID); err != nil {
			flowError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, sess.Snapshot())
	}
}

// AnswerRequest is the request body for POST /api/flow/answer.
type AnswerRequest struct {
	QuestionIndex int    `json:"questionIndex"`
	Answer        string `json:"answer"`
}

func handleAnswer() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req AnswerRequest
		if err := readJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		sess := sessionFrom(r)
		if err := sess.Answer(req.QuestionIndex, req.Answer); err != nil {
			flowError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, sess.Snapshot())
	}
}

func handleSubmit(client gemini.Client, broker *Broker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess := sessionFrom(r)
		if _, err := sess.Submit(r.Context(), client); err != nil {
			flowError(w, err)
			return
		}
		token := tokenFrom(r)
		broker.Publish(token, SSEEvent{Type: eventReportReady})
		broker.Publish(token, SSEEvent{Type: eventTipUpdated})
		writeJSON(w, http.StatusOK, sess.Snapshot())
	}
}

func handleBack() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess := sessionFrom(r)
		if err := sess.Back(); err != nil {
			flowError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, sess.Snapshot())
	}
}

// ResetRequest is the request body for POST /api/flow/reset.
type ResetRequest struct {
	Full bool `json:"full"`
}

func handleReset() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ResetRequest
		if err := readJSON(r, &req); err != nil && r.ContentLength > 0 {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		sess := sessionFrom(r)
		sess.Reset(req.Full)
		writeJSON(w, http.StatusOK, sess.Snapshot())
	}
}

// LanguageRequest is the request body for POST /api/flow/language.
type LanguageRequest struct {
	Language string `json:"language"`
}

func handleSetLanguage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LanguageRequest
		if err := readJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		sess := sessionFrom(r)
		sess.SetLanguage(heart.ParseLanguage(req.Language))
		writeJSON(w, http.StatusOK, sess.Snapshot())
	}
}
