package api

import (
	"alcyxob/fitlog/internal/domain"
	"alcyxob/fitlog/internal/query"
	"alcyxob/fitlog/internal/service"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// allUsers is the userId query value that disables the user filter.
const allUsers = "all"

// WorkoutHandler holds the workout service dependency.
type WorkoutHandler struct {
	workoutService service.WorkoutService
}

// NewWorkoutHandler creates a new WorkoutHandler.
func NewWorkoutHandler(workoutService service.WorkoutService) *WorkoutHandler {
	return &WorkoutHandler{workoutService: workoutService}
}

// --- DTOs ---

// AddExerciseRequest defines the expected JSON for adding an exercise to a day.
type AddExerciseRequest struct {
	UserID string `json:"userId" binding:"required"`
	Date   string `json:"date" binding:"required"` // YYYY-MM-DD
	Name   string `json:"name" binding:"required"`
	Sets   int    `json:"sets" binding:"min=0"`
	Reps   int    `json:"reps" binding:"min=0"`
}

type ExerciseResponse struct {
	Name string `json:"name"`
	Sets int    `json:"sets"`
	Reps int    `json:"reps"`
}

// WorkoutResponse is the DTO for returning a workout.
type WorkoutResponse struct {
	ID          string             `json:"id"`
	UserID      string             `json:"userId"`
	UserName    string             `json:"userName,omitempty"`
	Date        string             `json:"date"`
	DisplayDate string             `json:"displayDate"` // dd/MM/yyyy
	Exercises   []ExerciseResponse `json:"exercises"`
}

// ExerciseRowResponse is one exercise of the flattened admin table.
type ExerciseRowResponse struct {
	WorkoutID   string `json:"workoutId"`
	Date        string `json:"date"`
	DisplayDate string `json:"displayDate"`
	UserID      string `json:"userId"`
	UserName    string `json:"userName,omitempty"`
	Name        string `json:"name"`
	Sets        int    `json:"sets"`
	Reps        int    `json:"reps"`
}

// WorkoutFilterResponse echoes the active filter. Null fields are not filtered on.
type WorkoutFilterResponse struct {
	UserID      *string `json:"userId"`
	UserName    string  `json:"userName,omitempty"`
	Date        *string `json:"date"`
	DisplayDate string  `json:"displayDate,omitempty"`
}

// WorkoutListResponse is one page of the admin workout list.
type WorkoutListResponse struct {
	Filter     WorkoutFilterResponse `json:"filter"`
	Page       int                   `json:"page"`
	PageSize   int                   `json:"pageSize"`
	TotalPages int                   `json:"totalPages"`
	TotalItems int                   `json:"totalItems"`
	Workouts   []WorkoutResponse     `json:"workouts"`
	Rows       []ExerciseRowResponse `json:"rows,omitempty"`
}

// MapExercisesToResponse converts exercises, never returning nil.
func MapExercisesToResponse(exercises []domain.Exercise) []ExerciseResponse {
	responses := make([]ExerciseResponse, len(exercises))
	for i, ex := range exercises {
		responses[i] = ExerciseResponse{Name: ex.Name, Sets: ex.Sets, Reps: ex.Reps}
	}
	return responses
}

// MapWorkoutToResponse converts a domain.Workout to WorkoutResponse DTO.
// userName may be empty when the owner is unknown.
func MapWorkoutToResponse(w *domain.Workout, userName string) WorkoutResponse {
	if w == nil {
		return WorkoutResponse{}
	}
	return WorkoutResponse{
		ID:          w.ID,
		UserID:      w.UserID,
		UserName:    userName,
		Date:        w.Date,
		DisplayDate: domain.DisplayDate(w.Date),
		Exercises:   MapExercisesToResponse(w.Exercises),
	}
}

// MapListingToResponse converts a service.WorkoutListing, adding the
// flattened rows when withRows is set.
func MapListingToResponse(l *service.WorkoutListing, withRows bool) WorkoutListResponse {
	resp := WorkoutListResponse{
		Filter:     WorkoutFilterResponse{UserID: l.Filter.UserID},
		Page:       l.Page.Number,
		PageSize:   l.Page.Size,
		TotalPages: l.Page.TotalPages,
		TotalItems: l.Page.TotalItems,
		Workouts:   make([]WorkoutResponse, len(l.Page.Items)),
	}
	if l.FilterUser != nil {
		resp.Filter.UserName = l.FilterUser.Name
	}
	if l.Filter.Date != nil {
		key := domain.DateKey(*l.Filter.Date)
		resp.Filter.Date = &key
		resp.Filter.DisplayDate = domain.DisplayDate(key)
	}
	for i := range l.Page.Items {
		w := &l.Page.Items[i]
		resp.Workouts[i] = MapWorkoutToResponse(w, l.UserNames[w.UserID])
	}
	if withRows {
		rows := l.Rows()
		resp.Rows = make([]ExerciseRowResponse, len(rows))
		for i, r := range rows {
			resp.Rows[i] = ExerciseRowResponse{
				WorkoutID:   r.WorkoutID,
				Date:        r.Date,
				DisplayDate: domain.DisplayDate(r.Date),
				UserID:      r.UserID,
				UserName:    r.UserName,
				Name:        r.Exercise.Name,
				Sets:        r.Exercise.Sets,
				Reps:        r.Exercise.Reps,
			}
		}
	}
	return resp
}

// --- Handler Methods ---

// ListWorkouts godoc
// @Summary List workouts
// @Description Filters by user and/or date, sorts newest first and paginates.
// @Tags Workouts
// @Produce json
// @Param userId query string false "User ID, or 'all'"
// @Param date query string false "Day as YYYY-MM-DD"
// @Param page query int false "1-based page number" default(1)
// @Param view query string false "'rows' adds the flattened exercise table"
// @Success 200 {object} WorkoutListResponse
// @Failure 400 {object} gin.H "Invalid date or page"
// @Failure 500 {object} gin.H "Internal Server Error"
// @Router /workouts [get]
func (h *WorkoutHandler) ListWorkouts(c *gin.Context) {
	var filter query.Filter
	if userID := c.Query("userId"); userID != "" && userID != allUsers {
		filter = filter.ForUser(userID)
	}
	if dateStr := c.Query("date"); dateStr != "" {
		date, err := domain.ParseDateKey(dateStr)
		if err != nil {
			abortWithError(c, http.StatusBadRequest, err.Error())
			return
		}
		filter = filter.OnDate(date)
	}

	page := 1
	if pageStr := c.Query("page"); pageStr != "" {
		n, err := strconv.Atoi(pageStr)
		if err != nil {
			abortWithError(c, http.StatusBadRequest, "Invalid page number.")
			return
		}
		page = n
	}

	listing, err := h.workoutService.ListWorkouts(c.Request.Context(), filter, page)
	if err != nil {
		abortWithServiceError(c, err, "Failed to retrieve workouts.")
		return
	}
	c.JSON(http.StatusOK, MapListingToResponse(listing, c.Query("view") == "rows"))
}

// AddExercise godoc
// @Summary Add an exercise to a user's day
// @Description Appends the exercise to the user's workout for the date, creating the workout when it is the first one that day.
// @Tags Workouts
// @Accept json
// @Produce json
// @Param exercise body AddExerciseRequest true "Exercise details"
// @Success 200 {object} WorkoutResponse "The workout after the append"
// @Failure 400 {object} gin.H "Invalid input"
// @Failure 500 {object} gin.H "Internal Server Error"
// @Router /workouts/exercises [post]
func (h *WorkoutHandler) AddExercise(c *gin.Context) {
	var req AddExerciseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	date, err := domain.ParseDateKey(req.Date)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	workout, err := h.workoutService.AddExercise(c.Request.Context(), req.UserID, date, domain.Exercise{
		Name: req.Name,
		Sets: req.Sets,
		Reps: req.Reps,
	})
	if err != nil {
		abortWithServiceError(c, err, "Failed to add exercise.")
		return
	}
	c.JSON(http.StatusOK, MapWorkoutToResponse(workout, ""))
}

// GetUserWorkout godoc
// @Summary Get a user's workout for a day
// @Tags Workouts
// @Produce json
// @Param userId path string true "User ID"
// @Param date path string true "Day as YYYY-MM-DD"
// @Success 200 {object} WorkoutResponse "The workout, or null when there is none"
// @Failure 400 {object} gin.H "Invalid date"
// @Router /users/{userId}/workouts/{date} [get]
func (h *WorkoutHandler) GetUserWorkout(c *gin.Context) {
	date, err := domain.ParseDateKey(c.Param("date"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	workout, err := h.workoutService.FindWorkout(c.Request.Context(), c.Param("userId"), date)
	if err != nil {
		abortWithServiceError(c, err, "Failed to retrieve workout.")
		return
	}
	if workout == nil {
		c.JSON(http.StatusOK, nil)
		return
	}
	c.JSON(http.StatusOK, MapWorkoutToResponse(workout, ""))
}
