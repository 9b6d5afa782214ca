package api

import (
	"alcyxob/fitlog/internal/domain"
	"alcyxob/fitlog/internal/service"
	"net/http"

	"github.com/gin-gonic/gin"
)

// ViewerHandler serves the per-user workout page.
type ViewerHandler struct {
	viewerService service.ViewerService
}

func NewViewerHandler(viewerService service.ViewerService) *ViewerHandler {
	return &ViewerHandler{viewerService: viewerService}
}

// --- DTOs ---

// CompleteExerciseRequest marks one exercise of a workout as done.
type CompleteExerciseRequest struct {
	WorkoutID    string `json:"workoutId" binding:"required"`
	ExerciseName string `json:"exerciseName" binding:"required"`
}

// TodayExerciseResponse is an exercise of today's workout with its done flag.
type TodayExerciseResponse struct {
	ExerciseResponse
	Done bool `json:"done"`
}

// TodayWorkoutResponse is today's workout as the user sees it.
type TodayWorkoutResponse struct {
	ID        string                  `json:"id"`
	Date      string                  `json:"date"`
	Exercises []TodayExerciseResponse `json:"exercises"`
}

// DayViewResponse is the whole per-user page.
type DayViewResponse struct {
	User        UserResponse          `json:"user"`
	Date        string                `json:"date"`
	DisplayDate string                `json:"displayDate"`
	Today       *TodayWorkoutResponse `json:"today"` // null when there is no workout today
	History     []WorkoutResponse     `json:"history"`
}

// MapDayViewToResponse converts a service.DayView to DayViewResponse DTO.
func MapDayViewToResponse(v *service.DayView) DayViewResponse {
	resp := DayViewResponse{
		User:        MapUserToResponse(&v.User),
		Date:        v.Date,
		DisplayDate: domain.DisplayDate(v.Date),
		History:     make([]WorkoutResponse, len(v.History)),
	}
	if v.Today != nil {
		today := &TodayWorkoutResponse{
			ID:        v.Today.ID,
			Date:      v.Today.Date,
			Exercises: make([]TodayExerciseResponse, len(v.Today.Exercises)),
		}
		for i, ex := range v.Today.Exercises {
			today.Exercises[i] = TodayExerciseResponse{
				ExerciseResponse: ExerciseResponse{Name: ex.Name, Sets: ex.Sets, Reps: ex.Reps},
				Done:             v.IsDone(ex.Name),
			}
		}
		resp.Today = today
	}
	for i := range v.History {
		resp.History[i] = MapWorkoutToResponse(&v.History[i], v.User.Name)
	}
	return resp
}

// --- Handler Methods ---

// GetMe godoc
// @Summary Identify the viewing user
// @Tags Me
// @Produce json
// @Param X-User-ID header string false "Viewing user, defaults to the configured user"
// @Success 200 {object} gin.H "userId and sessionId"
// @Router /me [get]
func (h *ViewerHandler) GetMe(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to identify user")
		return
	}
	sessionID, _ := getSessionIDFromContext(c)
	c.JSON(http.StatusOK, gin.H{"userId": userID, "sessionId": sessionID})
}

// GetMyWorkouts godoc
// @Summary Today's workout and history
// @Description Returns today's workout with done flags for this session, and every earlier workout newest first.
// @Tags Me
// @Produce json
// @Param X-User-ID header string false "Viewing user"
// @Success 200 {object} DayViewResponse
// @Failure 404 {object} gin.H "User not found"
// @Router /me/workouts [get]
func (h *ViewerHandler) GetMyWorkouts(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to identify user")
		return
	}
	sessionID, _ := getSessionIDFromContext(c)

	view, err := h.viewerService.UserView(c.Request.Context(), userID, sessionID)
	if err != nil {
		abortWithServiceError(c, err, "Failed to retrieve workouts.")
		return
	}
	c.JSON(http.StatusOK, MapDayViewToResponse(view))
}

// CompleteExercise godoc
// @Summary Mark an exercise as done
// @Description The marker lives only as long as the browsing session.
// @Tags Me
// @Accept json
// @Param completion body CompleteExerciseRequest true "Workout and exercise"
// @Success 204
// @Failure 400 {object} gin.H "Invalid input or unknown exercise"
// @Failure 404 {object} gin.H "Workout not found"
// @Router /me/completions [post]
func (h *ViewerHandler) CompleteExercise(c *gin.Context) {
	var req CompleteExerciseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	sessionID, _ := getSessionIDFromContext(c)

	if err := h.viewerService.CompleteExercise(c.Request.Context(), sessionID, req.WorkoutID, req.ExerciseName); err != nil {
		abortWithServiceError(c, err, "Failed to mark exercise.")
		return
	}
	c.Status(http.StatusNoContent)
}

// EndSession godoc
// @Summary End the browsing session
// @Description Forgets every done marker and clears the session cookie.
// @Tags Me
// @Success 204
// @Router /me/session [delete]
func (h *ViewerHandler) EndSession(c *gin.Context) {
	sessionID, _ := getSessionIDFromContext(c)
	h.viewerService.EndSession(c.Request.Context(), sessionID)
	c.SetCookie(SessionCookieName, "", -1, "/", "", false, true)
	c.Status(http.StatusNoContent)
}
