package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/elmcrest/compass-service/internal/models"
	"github.com/elmcrest/compass-service/internal/services"
	"github.com/elmcrest/compass-service/internal/utils"
)

type SessionHandler struct {
	BaseHandler
	sessionService    services.SessionService
	submissionService services.SubmissionService
}

func NewSessionHandler(
	sessionService services.SessionService,
	submissionService services.SubmissionService,
	logger utils.Logger,
) *SessionHandler {
	return &SessionHandler{
		BaseHandler:       NewBaseHandler(logger),
		sessionService:    sessionService,
		submissionService: submissionService,
	}
}

// StartSession creates a fresh survey session with shuffled question order
// @Summary Start session
// @Description Creates a new assessment session and returns its question order
// @Tags sessions
// @Produce json
// @Success 201 {object} services.SessionResponse
// @Failure 500 {object} ErrorResponse
// @Router /sessions [post]
func (h *SessionHandler) StartSession(c *gin.Context) {
	h.LogRequest(c, "Starting session")

	session, err := h.sessionService.Start(c.Request.Context())
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, session)
}

// GetSession returns the session's progress snapshot
// @Summary Get session
// @Description Returns answer progress and respondent state for a session
// @Tags sessions
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} services.SessionResponse
// @Failure 404 {object} ErrorResponse
// @Router /sessions/{id} [get]
func (h *SessionHandler) GetSession(c *gin.Context) {
	id := ParseStringIDParam(c, "id")
	if id == "" {
		return
	}

	session, err := h.sessionService.Get(c.Request.Context(), id)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, session)
}

// GetQuestions returns the session's questions in its shuffled order
// @Summary Get session questions
// @Description Returns both question groups in the order fixed at session start
// @Tags sessions
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} services.SessionQuestionsResponse
// @Failure 404 {object} ErrorResponse
// @Router /sessions/{id}/questions [get]
func (h *SessionHandler) GetQuestions(c *gin.Context) {
	id := ParseStringIDParam(c, "id")
	if id == "" {
		return
	}

	questions, err := h.sessionService.Questions(c.Request.Context(), id)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, questions)
}

// RecordAnswers upserts a batch of ratings onto the session
// @Summary Record answers
// @Description Validates and stores a batch of Likert ratings
// @Tags sessions
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param answers body services.RecordAnswersRequest true "Answer batch"
// @Success 200 {object} services.SessionResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /sessions/{id}/answers [put]
func (h *SessionHandler) RecordAnswers(c *gin.Context) {
	id := ParseStringIDParam(c, "id")
	if id == "" {
		return
	}

	var req services.RecordAnswersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request payload",
			Details: err.Error(),
		})
		return
	}

	session, err := h.sessionService.RecordAnswers(c.Request.Context(), id, &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, session)
}

// SetRespondent stores the respondent's identity on the session
// @Summary Set respondent
// @Description Stores name, email and role for the session
// @Tags sessions
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param respondent body services.SetRespondentRequest true "Respondent identity"
// @Success 200 {object} services.SessionResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /sessions/{id}/respondent [put]
func (h *SessionHandler) SetRespondent(c *gin.Context) {
	id := ParseStringIDParam(c, "id")
	if id == "" {
		return
	}

	var req services.SetRespondentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request payload",
			Details: err.Error(),
		})
		return
	}

	session, err := h.sessionService.SetRespondent(c.Request.Context(), id, &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, session)
}

// SubmitSession scores the session, records the result and returns the report
// @Summary Submit session
// @Description Scores a complete session, delivers the record to storage and returns the full result
// @Tags sessions
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} services.SubmissionResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /sessions/{id}/submit [post]
func (h *SessionHandler) SubmitSession(c *gin.Context) {
	id := ParseStringIDParam(c, "id")
	if id == "" {
		return
	}

	h.LogRequest(c, "Submitting session", "session_id", id)

	result, err := h.submissionService.Submit(c.Request.Context(), id)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetResult returns the result snapshot without submitting
// @Summary Get result
// @Description Recomputes scores and the narrative report for a complete session
// @Tags sessions
// @Produce json
// @Param id path string true "Session ID"
// @Param format query string false "Set to 'text' for the plain-text report"
// @Success 200 {object} services.ResultResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /sessions/{id}/result [get]
func (h *SessionHandler) GetResult(c *gin.Context) {
	id := ParseStringIDParam(c, "id")
	if id == "" {
		return
	}

	result, err := h.submissionService.Result(c.Request.Context(), id)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	if c.Query("format") == "text" {
		c.Header("Content-Disposition", `attachment; filename="compass-results.txt"`)
		c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(result.Report))
		return
	}

	c.JSON(http.StatusOK, result)
}

// ResetSession clears answers and submission state, keeping identity
// @Summary Reset session
// @Description Clears all ratings so the respondent can retake the survey
// @Tags sessions
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} services.SessionResponse
// @Failure 404 {object} ErrorResponse
// @Router /sessions/{id}/reset [post]
func (h *SessionHandler) ResetSession(c *gin.Context) {
	id := ParseStringIDParam(c, "id")
	if id == "" {
		return
	}

	h.LogRequest(c, "Resetting session", "session_id", id)

	session, err := h.sessionService.Reset(c.Request.Context(), id)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, session)
}

// ListRoles returns the fixed role options
// @Summary List roles
// @Description Returns the selectable role values and display labels
// @Tags sessions
// @Produce json
// @Success 200 {object} SuccessResponse{data=[]models.RoleOption}
// @Router /roles [get]
func (h *SessionHandler) ListRoles(c *gin.Context) {
	c.JSON(http.StatusOK, SuccessResponse{
		Message: "Roles retrieved successfully",
		Data:    models.RoleOptions,
	})
}

func (h *SessionHandler) handleServiceError(c *gin.Context, err error) {
	var validationErrors services.ValidationErrors
	if errors.As(err, &validationErrors) {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Validation failed",
			Details: validationErrors,
		})
		return
	}

	switch {
	case services.IsNotFound(err):
		c.JSON(http.StatusNotFound, ErrorResponse{
			Message: "Session not found",
		})
	case services.IsValidation(err):
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Validation failed",
			Details: err.Error(),
		})
	case services.IsIncomplete(err):
		c.JSON(http.StatusConflict, ErrorResponse{
			Message: "Session is not ready",
			Details: err.Error(),
		})
	case services.IsConflict(err):
		c.JSON(http.StatusConflict, ErrorResponse{
			Message: "Conflict",
			Details: err.Error(),
		})
	default:
		h.LogError(c, err, "Unhandled service error")
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Message: "Internal server error",
		})
	}
}
