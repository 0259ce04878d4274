package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"latissimus/trainer-app/internal/domain"
	"latissimus/trainer-app/internal/service"
)

// SetupRoutes wires handlers and middleware onto the router. The trainer-role
// guard is applied exactly once, at the mutating/read group level, instead of
// being repeated inside each handler.
func SetupRoutes(
	router *gin.Engine,
	jwtSecret string,
	trainerService service.TrainerService,
	workoutService service.WorkoutService,
	sessionService service.SessionService,
) {
	trainerHandler := NewTrainerHandler(trainerService)
	workoutHandler := NewWorkoutHandler(workoutService)
	sessionHandler := NewSessionHandler(sessionService)

	router.Use(RequestIDMiddleware())

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	apiV1 := router.Group("/api/v1")

	// Profile creation and lookup are open: registration happens before a
	// credential exists, and profiles are the public face of a trainer.
	apiV1.POST("/trainers", trainerHandler.CreateTrainer)
	apiV1.GET("/trainers/:id", trainerHandler.GetTrainer)

	// Everything touching schedules and workout plans requires a resolved
	// credential with the trainer role. Reads included: a trainer's full
	// session list and plans are not public data.
	protected := apiV1.Group("/trainers/:id")
	protected.Use(AuthMiddleware(jwtSecret), RoleMiddleware(domain.RoleTrainer))
	{
		protected.PUT("", trainerHandler.UpdateTrainer)

		protected.POST("/workouts", workoutHandler.CreateWorkout)
		protected.GET("/workouts", workoutHandler.GetWorkouts)
		protected.DELETE("/workouts", workoutHandler.DeleteWorkout)

		protected.POST("/sessions", sessionHandler.CreateSession)
		protected.GET("/sessions", sessionHandler.GetSessions)
		protected.GET("/sessions/by-date", sessionHandler.GetSessionsByDate)
	}
}
