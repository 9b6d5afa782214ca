package api

import (
	"alcyxob/fitlog/internal/service"
	"net/http"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(
	router *gin.Engine,
	defaultUserID string,
	userService service.UserService,
	workoutService service.WorkoutService,
	viewerService service.ViewerService,
) {
	userHandler := NewUserHandler(userService)
	workoutHandler := NewWorkoutHandler(workoutService)
	viewerHandler := NewViewerHandler(viewerService)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	apiV1 := router.Group("/api/v1")

	// --- Admin: user directory ---
	userGroup := apiV1.Group("/users")
	{
		userGroup.GET("", userHandler.ListUsers)
		userGroup.POST("", userHandler.CreateUser)
		userGroup.GET("/:userId", userHandler.GetUser)
		userGroup.PUT("/:userId", userHandler.UpdateUser)
		userGroup.DELETE("/:userId", userHandler.DeleteUser)

		// GET /api/v1/users/{userId}/workouts/{date}
		userGroup.GET("/:userId/workouts/:date", workoutHandler.GetUserWorkout)
	}

	// --- Admin: workouts ---
	workoutGroup := apiV1.Group("/workouts")
	{
		workoutGroup.GET("", workoutHandler.ListWorkouts)
		workoutGroup.POST("/exercises", workoutHandler.AddExercise)
	}

	// --- Per-user view ---
	me := apiV1.Group("/me")
	me.Use(ViewerMiddleware(defaultUserID), SessionMiddleware())
	{
		me.GET("", viewerHandler.GetMe)
		me.GET("/workouts", viewerHandler.GetMyWorkouts)
		me.POST("/completions", viewerHandler.CompleteExercise)
		me.DELETE("/session", viewerHandler.EndSession)
	}
}
