package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"latissimus/trainer-app/internal/domain"
	"latissimus/trainer-app/internal/service"
)

type WorkoutHandler struct {
	workoutService service.WorkoutService
}

func NewWorkoutHandler(workoutService service.WorkoutService) *WorkoutHandler {
	return &WorkoutHandler{
		workoutService: workoutService,
	}
}

// --- DTOs for Workout Plans ---

type ExerciseRequest struct {
	Name string `json:"name"`
	RPE  *int   `json:"rpe"`
}

// WorkoutRequest carries a day-indexed workout plan. Structural constraints
// (title, intensity label, nested exercises) are checked by the workout
// service as a single pass/fail outcome.
type WorkoutRequest struct {
	Title     string                       `json:"title"`
	Intensity string                       `json:"intensity"`
	Exercises map[string][]ExerciseRequest `json:"exercises"`
}

type WorkoutResponse struct {
	Title     string                       `json:"title"`
	Intensity string                       `json:"intensity"`
	Exercises map[string][]domain.Exercise `json:"exercises,omitempty"`
}

func (r *WorkoutRequest) toDomain() domain.Workout {
	workout := domain.Workout{
		Title:     r.Title,
		Intensity: r.Intensity,
	}
	if len(r.Exercises) > 0 {
		workout.Exercises = make(map[string][]domain.Exercise, len(r.Exercises))
		for day, exercises := range r.Exercises {
			list := make([]domain.Exercise, len(exercises))
			for i, e := range exercises {
				list[i] = domain.Exercise{Name: e.Name, RPE: e.RPE}
			}
			workout.Exercises[day] = list
		}
	}
	return workout
}

// MapWorkoutToResponse converts domain.Workout to WorkoutResponse DTO.
func MapWorkoutToResponse(w *domain.Workout) WorkoutResponse {
	if w == nil {
		return WorkoutResponse{}
	}
	return WorkoutResponse{
		Title:     w.Title,
		Intensity: w.Intensity,
		Exercises: w.Exercises,
	}
}

// MapWorkoutsToResponse converts a slice of domain.Workout.
func MapWorkoutsToResponse(workouts []domain.Workout) []WorkoutResponse {
	responses := make([]WorkoutResponse, len(workouts))
	for i := range workouts {
		responses[i] = MapWorkoutToResponse(&workouts[i])
	}
	return responses
}

// --- Handler Methods ---

// CreateWorkout godoc
// @Summary Add a workout plan to a trainer
// @Tags Trainer Workouts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Trainer's ObjectID Hex"
// @Param workoutRequest body WorkoutRequest true "Workout plan"
// @Success 201 {object} WorkoutResponse "Workout created"
// @Failure 400 {object} gin.H "Invalid workout structure"
// @Failure 401 {object} gin.H "Unauthorized"
// @Failure 403 {object} gin.H "Forbidden (not a trainer)"
// @Failure 404 {object} gin.H "Trainer not found"
// @Failure 500 {object} gin.H "Internal Server Error"
// @Router /trainers/{id}/workouts [post]
func (h *WorkoutHandler) CreateWorkout(c *gin.Context) {
	trainerID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid trainer ID format in URL path.")
		return
	}

	var req WorkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	workout, err := h.workoutService.AddWorkout(c.Request.Context(), trainerID, req.toDomain())
	if err != nil {
		if errors.Is(err, service.ErrTrainerNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else if errors.Is(err, service.ErrWorkoutInvalid) {
			abortWithError(c, http.StatusBadRequest, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to create workout.")
		}
		return
	}

	c.JSON(http.StatusCreated, MapWorkoutToResponse(workout))
}

// GetWorkouts godoc
// @Summary List a trainer's workout plans
// @Tags Trainer Workouts
// @Produce json
// @Security BearerAuth
// @Param id path string true "Trainer's ObjectID Hex"
// @Success 200 {array} WorkoutResponse "List of workouts"
// @Failure 400 {object} gin.H "Invalid trainer ID format"
// @Failure 401 {object} gin.H "Unauthorized"
// @Failure 403 {object} gin.H "Forbidden (not a trainer)"
// @Failure 404 {object} gin.H "Trainer not found"
// @Failure 500 {object} gin.H "Internal Server Error"
// @Router /trainers/{id}/workouts [get]
func (h *WorkoutHandler) GetWorkouts(c *gin.Context) {
	trainerID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid trainer ID format in URL path.")
		return
	}

	workouts, err := h.workoutService.GetWorkouts(c.Request.Context(), trainerID)
	if err != nil {
		if errors.Is(err, service.ErrTrainerNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to retrieve workouts.")
		}
		return
	}

	if workouts == nil {
		c.JSON(http.StatusOK, []WorkoutResponse{})
		return
	}
	c.JSON(http.StatusOK, MapWorkoutsToResponse(workouts))
}

// DeleteWorkout godoc
// @Summary Delete a workout plan by its position
// @Tags Trainer Workouts
// @Produce json
// @Security BearerAuth
// @Param id path string true "Trainer's ObjectID Hex"
// @Param index query int true "Zero-based position in the trainer's workout list"
// @Success 204 "Workout deleted"
// @Failure 400 {object} gin.H "Invalid trainer ID or index"
// @Failure 401 {object} gin.H "Unauthorized"
// @Failure 403 {object} gin.H "Forbidden (not a trainer)"
// @Failure 404 {object} gin.H "Workout not found at that index"
// @Failure 500 {object} gin.H "Internal Server Error"
// @Router /trainers/{id}/workouts [delete]
func (h *WorkoutHandler) DeleteWorkout(c *gin.Context) {
	trainerID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid trainer ID format in URL path.")
		return
	}

	index, err := strconv.Atoi(c.Query("index"))
	if err != nil || index < 0 {
		abortWithError(c, http.StatusBadRequest, "Invalid or missing index query parameter.")
		return
	}

	if err := h.workoutService.DeleteWorkout(c.Request.Context(), trainerID, index); err != nil {
		if errors.Is(err, service.ErrTrainerNotFound) || errors.Is(err, service.ErrWorkoutNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to delete workout.")
		}
		return
	}

	c.Status(http.StatusNoContent)
}
