package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"latissimus/trainer-app/internal/domain"
	"latissimus/trainer-app/internal/service"
)

type SessionHandler struct {
	sessionService service.SessionService
}

func NewSessionHandler(sessionService service.SessionService) *SessionHandler {
	return &SessionHandler{
		sessionService: sessionService,
	}
}

// --- DTOs for Training Sessions ---

// CreateSessionRequest carries the candidate session fields. Constraints are
// enforced by the scheduling service as a single pass/fail outcome, so no
// per-field binding rules here beyond presence.
type CreateSessionRequest struct {
	Title     string    `json:"title"`
	City      string    `json:"city"`
	Slots     int       `json:"slots"`
	StartDate time.Time `json:"startDate"` // ISO8601, e.g. "2026-09-14T10:00:00Z"
}

type SessionResponse struct {
	ID        string    `json:"id"`
	TrainerID string    `json:"trainerId"`
	Title     string    `json:"title"`
	City      string    `json:"city"`
	Slots     int       `json:"slots"`
	StartDate time.Time `json:"startDate"`
}

// MapSessionToResponse converts domain.TrainingSession to SessionResponse DTO.
func MapSessionToResponse(s *domain.TrainingSession) SessionResponse {
	if s == nil {
		return SessionResponse{}
	}
	return SessionResponse{
		ID:        s.ID.Hex(),
		TrainerID: s.TrainerID.Hex(),
		Title:     s.Title,
		City:      s.City,
		Slots:     s.Slots,
		StartDate: s.StartDate,
	}
}

// MapSessionsToResponse converts a slice of domain.TrainingSession.
func MapSessionsToResponse(sessions []domain.TrainingSession) []SessionResponse {
	responses := make([]SessionResponse, len(sessions))
	for i := range sessions {
		responses[i] = MapSessionToResponse(&sessions[i])
	}
	return responses
}

// --- Handler Methods ---

// CreateSession godoc
// @Summary Open a bookable training session
// @Description Creates a training session for the addressed trainer after field validation and the same-day conflict check.
// @Tags Trainer Sessions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Trainer's ObjectID Hex"
// @Param sessionRequest body CreateSessionRequest true "Session details"
// @Success 201 {object} SessionResponse "Session created"
// @Failure 400 {object} gin.H "Invalid session fields or scheduling conflict"
// @Failure 401 {object} gin.H "Unauthorized"
// @Failure 403 {object} gin.H "Forbidden (not a trainer)"
// @Failure 404 {object} gin.H "Trainer not found"
// @Failure 500 {object} gin.H "Internal Server Error"
// @Router /trainers/{id}/sessions [post]
func (h *SessionHandler) CreateSession(c *gin.Context) {
	trainerID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid trainer ID format in URL path.")
		return
	}

	var req CreateSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	candidate := &domain.TrainingSession{
		Title:     req.Title,
		City:      req.City,
		Slots:     req.Slots,
		StartDate: req.StartDate,
	}

	session, err := h.sessionService.CreateSession(c.Request.Context(), trainerID, candidate)
	if err != nil {
		if errors.Is(err, service.ErrTrainerNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else if errors.Is(err, service.ErrSessionInvalid) || errors.Is(err, service.ErrSessionConflict) {
			abortWithError(c, http.StatusBadRequest, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to create training session.")
		}
		return
	}

	c.JSON(http.StatusCreated, MapSessionToResponse(session))
}

// GetSessions godoc
// @Summary List a trainer's training sessions
// @Tags Trainer Sessions
// @Produce json
// @Security BearerAuth
// @Param id path string true "Trainer's ObjectID Hex"
// @Success 200 {array} SessionResponse "List of sessions"
// @Failure 400 {object} gin.H "Invalid trainer ID format"
// @Failure 401 {object} gin.H "Unauthorized"
// @Failure 403 {object} gin.H "Forbidden (not a trainer)"
// @Failure 500 {object} gin.H "Internal Server Error"
// @Router /trainers/{id}/sessions [get]
func (h *SessionHandler) GetSessions(c *gin.Context) {
	trainerID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid trainer ID format in URL path.")
		return
	}

	sessions, err := h.sessionService.GetSessionsByTrainer(c.Request.Context(), trainerID)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to retrieve training sessions.")
		return
	}

	c.JSON(http.StatusOK, MapSessionsToResponse(sessions))
}

// GetSessionsByDate godoc
// @Summary List a trainer's sessions on a specific date
// @Description Matches at date-only precision; the time component of the query date is ignored.
// @Tags Trainer Sessions
// @Produce json
// @Security BearerAuth
// @Param id path string true "Trainer's ObjectID Hex"
// @Param date query string true "Date, either 2006-01-02 or RFC3339"
// @Success 200 {array} SessionResponse "List of sessions on that date"
// @Failure 400 {object} gin.H "Invalid trainer ID or date format"
// @Failure 401 {object} gin.H "Unauthorized"
// @Failure 403 {object} gin.H "Forbidden (not a trainer)"
// @Failure 500 {object} gin.H "Internal Server Error"
// @Router /trainers/{id}/sessions/by-date [get]
func (h *SessionHandler) GetSessionsByDate(c *gin.Context) {
	trainerID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid trainer ID format in URL path.")
		return
	}

	date, err := parseDateParam(c.Query("date"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid or missing date query parameter.")
		return
	}

	sessions, err := h.sessionService.GetSessionsByDate(c.Request.Context(), trainerID, date)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to retrieve training sessions.")
		return
	}

	c.JSON(http.StatusOK, MapSessionsToResponse(sessions))
}

// parseDateParam accepts a plain date or a full timestamp; either way only the
// date part is used downstream.
func parseDateParam(raw string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, raw)
}
