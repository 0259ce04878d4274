package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"latissimus/trainer-app/internal/domain"
	"latissimus/trainer-app/internal/service"
)

type TrainerHandler struct {
	trainerService service.TrainerService
}

func NewTrainerHandler(trainerService service.TrainerService) *TrainerHandler {
	return &TrainerHandler{
		trainerService: trainerService,
	}
}

// --- DTOs for Trainer Profiles ---

type TrainerRequest struct {
	Name           string `json:"name" binding:"required"`
	Address        string `json:"address"`
	Age            int    `json:"age" binding:"omitempty,min=0"`
	Description    string `json:"description"`
	Motto          string `json:"motto"`
	Gym            string `json:"gym"`
	Specialization string `json:"specialization"`
	ProfileImage   string `json:"profileImage"`
}

type TrainerResponse struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Address        string `json:"address,omitempty"`
	Age            int    `json:"age,omitempty"`
	Description    string `json:"description,omitempty"`
	Motto          string `json:"motto,omitempty"`
	Gym            string `json:"gym,omitempty"`
	Specialization string `json:"specialization,omitempty"`
	ProfileImage   string `json:"profileImage,omitempty"`
}

// MapTrainerToResponse converts domain.Trainer to TrainerResponse DTO.
func MapTrainerToResponse(t *domain.Trainer) TrainerResponse {
	if t == nil {
		return TrainerResponse{}
	}
	return TrainerResponse{
		ID:             t.ID.Hex(),
		Name:           t.Name,
		Address:        t.Address,
		Age:            t.Age,
		Description:    t.Description,
		Motto:          t.Motto,
		Gym:            t.Gym,
		Specialization: t.Specialization,
		ProfileImage:   t.ProfileImage,
	}
}

func (r *TrainerRequest) toDomain() *domain.Trainer {
	return &domain.Trainer{
		Name:           r.Name,
		Address:        r.Address,
		Age:            r.Age,
		Description:    r.Description,
		Motto:          r.Motto,
		Gym:            r.Gym,
		Specialization: r.Specialization,
		ProfileImage:   r.ProfileImage,
	}
}

// --- Handler Methods ---

// CreateTrainer godoc
// @Summary Register a new trainer profile
// @Tags Trainers
// @Accept json
// @Produce json
// @Param trainerRequest body TrainerRequest true "Trainer profile details"
// @Success 201 {object} TrainerResponse "Trainer created"
// @Failure 400 {object} gin.H "Invalid input"
// @Failure 500 {object} gin.H "Internal Server Error"
// @Router /trainers [post]
func (h *TrainerHandler) CreateTrainer(c *gin.Context) {
	var req TrainerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	trainer, err := h.trainerService.CreateTrainer(c.Request.Context(), req.toDomain())
	if err != nil {
		if errors.Is(err, service.ErrTrainerInvalid) {
			abortWithError(c, http.StatusBadRequest, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to create trainer.")
		}
		return
	}

	c.JSON(http.StatusCreated, MapTrainerToResponse(trainer))
}

// GetTrainer godoc
// @Summary Get a trainer profile by ID
// @Tags Trainers
// @Produce json
// @Param id path string true "Trainer's ObjectID Hex"
// @Success 200 {object} TrainerResponse "Trainer profile"
// @Failure 400 {object} gin.H "Invalid trainer ID format"
// @Failure 404 {object} gin.H "Trainer not found"
// @Failure 500 {object} gin.H "Internal Server Error"
// @Router /trainers/{id} [get]
func (h *TrainerHandler) GetTrainer(c *gin.Context) {
	trainerID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid trainer ID format in URL path.")
		return
	}

	trainer, err := h.trainerService.GetTrainer(c.Request.Context(), trainerID)
	if err != nil {
		if errors.Is(err, service.ErrTrainerNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to retrieve trainer.")
		}
		return
	}

	c.JSON(http.StatusOK, MapTrainerToResponse(trainer))
}

// UpdateTrainer godoc
// @Summary Update an existing trainer profile
// @Tags Trainers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Trainer's ObjectID Hex"
// @Param trainerRequest body TrainerRequest true "Updated trainer profile"
// @Success 204 "Trainer updated"
// @Failure 400 {object} gin.H "Invalid input"
// @Failure 401 {object} gin.H "Unauthorized"
// @Failure 403 {object} gin.H "Forbidden (not a trainer)"
// @Failure 404 {object} gin.H "Trainer not found"
// @Failure 500 {object} gin.H "Internal Server Error"
// @Router /trainers/{id} [put]
func (h *TrainerHandler) UpdateTrainer(c *gin.Context) {
	trainerID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid trainer ID format in URL path.")
		return
	}

	var req TrainerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	err = h.trainerService.UpdateTrainer(c.Request.Context(), trainerID, req.toDomain())
	if err != nil {
		if errors.Is(err, service.ErrTrainerNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else if errors.Is(err, service.ErrTrainerInvalid) {
			abortWithError(c, http.StatusBadRequest, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to update trainer.")
		}
		return
	}

	c.Status(http.StatusNoContent)
}
