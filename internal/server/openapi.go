package server

import (
	"encoding/json"
	"net/http"

	openapi "github.com/swaggest/openapi-go"
	"github.com/swaggest/openapi-go/openapi3"

	"github.com/hearttoheart/backend/internal/flow"
)

// ErrorResponse is returned for all error responses.
type ErrorResponse struct {
	Error string `json:"error"`
}

// HealthResponse is returned by the health check.
type HealthResponse struct {
	Status string `json:"status"`
}

func newOpenAPISpec() *openapi3.Spec {
	r := openapi3.NewReflector()
	r.Spec.Info.Title = "HeartToHeart API"
	r.Spec.Info.Version = "0.1.0"
	r.Spec.Info.WithDescription("Backend API for the HeartToHeart parenting assistant.")

	// GET /healthz
	getHealthz, _ := r.NewOperationContext(http.MethodGet, "/healthz")
	getHealthz.SetSummary("Health check")
	getHealthz.SetDescription("Returns the health status of backend dependencies.")
	getHealthz.AddRespStructure(HealthResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	getHealthz.AddRespStructure(HealthResponse{}, openapi.WithHTTPStatus(http.StatusServiceUnavailable))
	_ = r.AddOperation(getHealthz)

	// POST /api/session
	postSession, _ := r.NewOperationContext(http.MethodPost, "/api/session")
	postSession.SetSummary("Start session")
	postSession.SetDescription("Creates a consultation session. Returns a bearer token for all subsequent calls.")
	postSession.AddReqStructure(SessionRequest{})
	postSession.AddRespStructure(SessionResponse{}, openapi.WithHTTPStatus(http.StatusCreated))
	_ = r.AddOperation(postSession)

	// GET /api/catalog
	getCatalog, _ := r.NewOperationContext(http.MethodGet, "/api/catalog")
	getCatalog.SetSummary("Reference catalog")
	getCatalog.SetDescription("Returns age groups, assessments, milestones, and solution cards in the session's language. Requires Bearer token.")
	getCatalog.AddRespStructure(CatalogResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	getCatalog.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusUnauthorized))
	_ = r.AddOperation(getCatalog)

	// GET /api/flow
	getFlow, _ := r.NewOperationContext(http.MethodGet, "/api/flow")
	getFlow.SetSummary("Flow snapshot")
	getFlow.SetDescription("Returns the current wizard state. Requires Bearer token.")
	getFlow.AddRespStructure(flow.Snapshot{}, openapi.WithHTTPStatus(http.StatusOK))
	getFlow.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusUnauthorized))
	_ = r.AddOperation(getFlow)

	// POST /api/flow/role
	postRole, _ := r.NewOperationContext(http.MethodPost, "/api/flow/role")
	postRole.SetSummary("Select role")
	postRole.AddReqStructure(RoleRequest{})
	postRole.AddRespStructure(flow.Snapshot{}, openapi.WithHTTPStatus(http.StatusOK))
	postRole.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusConflict))
	_ = r.AddOperation(postRole)

	// POST /api/flow/age-group
	postAgeGroup, _ := r.NewOperationContext(http.MethodPost, "/api/flow/age-group")
	postAgeGroup.SetSummary("Select age group")
	postAgeGroup.AddReqStructure(AgeGroupRequest{})
	postAgeGroup.AddRespStructure(flow.Snapshot{}, openapi.WithHTTPStatus(http.StatusOK))
	postAgeGroup.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusNotFound))
	_ = r.AddOperation(postAgeGroup)

	// POST /api/flow/profile
	postProfile, _ := r.NewOperationContext(http.MethodPost, "/api/flow/profile")
	postProfile.SetSummary("Update child profile")
	postProfile.SetDescription("Merges gender and exact age field by field. Omitted fields are unchanged.")
	postProfile.AddReqStructure(ProfileRequest{})
	postProfile.AddRespStructure(flow.Snapshot{}, openapi.WithHTTPStatus(http.StatusOK))
	postProfile.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusBadRequest))
	_ = r.AddOperation(postProfile)

	// POST /api/flow/profile/submit
	postProfileSubmit, _ := r.NewOperationContext(http.MethodPost, "/api/flow/profile/submit")
	postProfileSubmit.SetSummary("Submit child profile")
	postProfileSubmit.SetDescription("Leaves profile input. Requires an exact age.")
	postProfileSubmit.AddRespStructure(flow.Snapshot{}, openapi.WithHTTPStatus(http.StatusOK))
	postProfileSubmit.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusBadRequest))
	_ = r.AddOperation(postProfileSubmit)

	// POST /api/flow/assessment
	postAssessment, _ := r.NewOperationContext(http.MethodPost, "/api/flow/assessment")
	postAssessment.SetSummary("Start assessment")
	postAssessment.SetDescription("Starts a questionnaire offered on the dashboard.")
	postAssessment.AddReqStructure(AssessmentRequest{})
	postAssessment.AddRespStructure(flow.Snapshot{}, openapi.WithHTTPStatus(http.StatusOK))
	postAssessment.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusNotFound))
	_ = r.AddOperation(postAssessment)

	// POST /api/flow/answer
	postAnswer, _ := r.NewOperationContext(http.MethodPost, "/api/flow/answer")
	postAnswer.SetSummary("Answer question")
	postAnswer.SetDescription("Records the scale option chosen for one question.")
	postAnswer.AddReqStructure(AnswerRequest{})
	postAnswer.AddRespStructure(flow.Snapshot{}, openapi.WithHTTPStatus(http.StatusOK))
	postAnswer.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusBadRequest))
	_ = r.AddOperation(postAnswer)

	// POST /api/flow/submit
	postSubmit, _ := r.NewOperationContext(http.MethodPost, "/api/flow/submit")
	postSubmit.SetSummary("Submit assessment")
	postSubmit.SetDescription("Generates the report and moves the flow to the report state. All questions must be answered.")
	postSubmit.AddRespStructure(flow.Snapshot{}, openapi.WithHTTPStatus(http.StatusOK))
	postSubmit.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusBadRequest))
	postSubmit.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusConflict))
	_ = r.AddOperation(postSubmit)

	// POST /api/flow/back
	postBack, _ := r.NewOperationContext(http.MethodPost, "/api/flow/back")
	postBack.SetSummary("Step back")
	postBack.AddRespStructure(flow.Snapshot{}, openapi.WithHTTPStatus(http.StatusOK))
	postBack.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusConflict))
	_ = r.AddOperation(postBack)

	// POST /api/flow/reset
	postReset, _ := r.NewOperationContext(http.MethodPost, "/api/flow/reset")
	postReset.SetSummary("Reset flow")
	postReset.SetDescription("Returns to the dashboard keeping the profile, or with full=true restarts at role selection.")
	postReset.AddReqStructure(ResetRequest{})
	postReset.AddRespStructure(flow.Snapshot{}, openapi.WithHTTPStatus(http.StatusOK))
	_ = r.AddOperation(postReset)

	// POST /api/flow/language
	postLanguage, _ := r.NewOperationContext(http.MethodPost, "/api/flow/language")
	postLanguage.SetSummary("Switch language")
	postLanguage.SetDescription("Re-derives the catalog in the new language. A selected assessment and its answers are dropped.")
	postLanguage.AddReqStructure(LanguageRequest{})
	postLanguage.AddRespStructure(flow.Snapshot{}, openapi.WithHTTPStatus(http.StatusOK))
	_ = r.AddOperation(postLanguage)

	// POST /api/flow/deeplink
	postDeepLink, _ := r.NewOperationContext(http.MethodPost, "/api/flow/deeplink")
	postDeepLink.SetSummary("Apply assessment deep link")
	postDeepLink.SetDescription("Preseeds the flow from an assessment link token. Unknown assessment ids leave the flow unchanged.")
	postDeepLink.AddReqStructure(DeepLinkRequest{})
	postDeepLink.AddRespStructure(DeepLinkResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	_ = r.AddOperation(postDeepLink)

	// GET /api/flow/events
	getEvents, _ := r.NewOperationContext(http.MethodGet, "/api/flow/events")
	getEvents.SetSummary("SSE event stream")
	getEvents.SetDescription("Server-Sent Events stream for generation updates. Pass the session token as query parameter.")
	getEvents.AddRespStructure(nil, openapi.WithHTTPStatus(http.StatusOK),
		openapi.WithContentType("text/event-stream"))
	_ = r.AddOperation(getEvents)

	// POST /api/chat
	postChat, _ := r.NewOperationContext(http.MethodPost, "/api/chat")
	postChat.SetSummary("Consultant chat")
	postChat.SetDescription("Sends a free-text message to the AI consultant. Assessment links embedded in the reply are returned parsed.")
	postChat.AddReqStructure(ChatRequest{})
	postChat.AddRespStructure(ChatResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	postChat.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusBadRequest))
	_ = r.AddOperation(postChat)

	// POST /api/tip
	postTip, _ := r.NewOperationContext(http.MethodPost, "/api/tip")
	postTip.SetSummary("Daily tip")
	postTip.AddReqStructure(TipRequest{})
	postTip.AddRespStructure(TipResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	_ = r.AddOperation(postTip)

	// POST /api/solutions/{id}/scenario
	postScenario, _ := r.NewOperationContext(http.MethodPost, "/api/solutions/{id}/scenario")
	postScenario.SetSummary("Role-play scenario")
	postScenario.SetDescription("Generates a positive-discipline role-play script for one solution card.")
	postScenario.AddReqStructure(ScenarioRequest{})
	postScenario.AddRespStructure(ScenarioResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	postScenario.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusNotFound))
	postScenario.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusConflict))
	_ = r.AddOperation(postScenario)

	// POST /api/story
	postStory, _ := r.NewOperationContext(http.MethodPost, "/api/story")
	postStory.SetSummary("Bedtime story")
	postStory.SetDescription("Generates a personalized story with best-effort narration. Non-premium usage is metered per device.")
	postStory.AddReqStructure(StoryRequest{})
	postStory.AddRespStructure(StoryResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	postStory.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusPaymentRequired))
	postStory.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusBadGateway))
	_ = r.AddOperation(postStory)

	// POST /api/admin/login
	postLogin, _ := r.NewOperationContext(http.MethodPost, "/api/admin/login")
	postLogin.SetSummary("Admin login")
	postLogin.SetDescription("Authenticate with email and password. Sets admin_session cookie.")
	postLogin.AddReqStructure(AdminLoginRequest{})
	postLogin.AddRespStructure(AdminMeResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	postLogin.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusUnauthorized))
	_ = r.AddOperation(postLogin)

	// POST /api/admin/logout
	postLogout, _ := r.NewOperationContext(http.MethodPost, "/api/admin/logout")
	postLogout.SetSummary("Admin logout")
	postLogout.SetDescription("Clears admin session and cookie.")
	postLogout.AddRespStructure(nil, openapi.WithHTTPStatus(http.StatusOK))
	_ = r.AddOperation(postLogout)

	// GET /api/admin/me
	getMe, _ := r.NewOperationContext(http.MethodGet, "/api/admin/me")
	getMe.SetSummary("Current admin")
	getMe.SetDescription("Returns the currently authenticated admin. Requires admin_session cookie.")
	getMe.AddRespStructure(AdminMeResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	getMe.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusUnauthorized))
	_ = r.AddOperation(getMe)

	// GET /api/admin/stats
	getStats, _ := r.NewOperationContext(http.MethodGet, "/api/admin/stats")
	getStats.SetSummary("Usage statistics")
	getStats.SetDescription("Returns live session and story usage counters. Requires admin_session cookie.")
	getStats.AddRespStructure(AdminStatsResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	getStats.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusUnauthorized))
	_ = r.AddOperation(getStats)

	return r.Spec
}

func handleOpenAPI() http.HandlerFunc {
	spec := newOpenAPISpec()
	data, _ := json.MarshalIndent(spec, "", "  ")

	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(data)
	}
}
