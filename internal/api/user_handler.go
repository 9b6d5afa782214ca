package api

import (
	"alcyxob/fitlog/internal/domain"
	"alcyxob/fitlog/internal/service"
	"net/http"

	"github.com/gin-gonic/gin"
)

// UserHandler holds the user service dependency.
type UserHandler struct {
	userService service.UserService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// --- DTOs ---

// UserRequest is the body for creating or renaming a user.
type UserRequest struct {
	Name string `json:"name" binding:"required"`
}

// UserResponse is the DTO for returning a user.
type UserResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// MapUserToResponse converts a domain.User to UserResponse DTO.
func MapUserToResponse(u *domain.User) UserResponse {
	if u == nil {
		return UserResponse{}
	}
	return UserResponse{ID: u.ID, Name: u.Name}
}

// MapUsersToResponse converts a slice of domain.User to a slice of UserResponse DTO.
func MapUsersToResponse(users []domain.User) []UserResponse {
	responses := make([]UserResponse, len(users))
	for i := range users {
		responses[i] = MapUserToResponse(&users[i])
	}
	return responses
}

// --- Handler Methods ---

// ListUsers godoc
// @Summary List or search users
// @Description Returns every user in stored order, or those whose name contains the search term (case-insensitive).
// @Tags Users
// @Produce json
// @Param search query string false "Name fragment"
// @Success 200 {array} UserResponse
// @Failure 500 {object} gin.H "Internal Server Error"
// @Router /users [get]
func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.userService.SearchUsers(c.Request.Context(), c.Query("search"))
	if err != nil {
		abortWithServiceError(c, err, "Failed to retrieve users.")
		return
	}
	c.JSON(http.StatusOK, MapUsersToResponse(users))
}

// CreateUser godoc
// @Summary Add a user
// @Tags Users
// @Accept json
// @Produce json
// @Param user body UserRequest true "User name"
// @Success 201 {object} UserResponse
// @Failure 400 {object} gin.H "Invalid input"
// @Failure 500 {object} gin.H "Internal Server Error"
// @Router /users [post]
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req UserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	user, err := h.userService.AddUser(c.Request.Context(), req.Name)
	if err != nil {
		abortWithServiceError(c, err, "Failed to create user.")
		return
	}
	c.JSON(http.StatusCreated, MapUserToResponse(user))
}

// GetUser godoc
// @Summary Get a user
// @Tags Users
// @Produce json
// @Param userId path string true "User ID"
// @Success 200 {object} UserResponse
// @Failure 404 {object} gin.H "User not found"
// @Router /users/{userId} [get]
func (h *UserHandler) GetUser(c *gin.Context) {
	user, err := h.userService.GetUser(c.Request.Context(), c.Param("userId"))
	if err != nil {
		abortWithServiceError(c, err, "Failed to retrieve user.")
		return
	}
	c.JSON(http.StatusOK, MapUserToResponse(user))
}

// UpdateUser godoc
// @Summary Rename a user
// @Tags Users
// @Accept json
// @Produce json
// @Param userId path string true "User ID"
// @Param user body UserRequest true "New name"
// @Success 200 {object} UserResponse
// @Failure 400 {object} gin.H "Invalid input"
// @Failure 404 {object} gin.H "User not found"
// @Router /users/{userId} [put]
func (h *UserHandler) UpdateUser(c *gin.Context) {
	var req UserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	user, err := h.userService.UpdateUser(c.Request.Context(), c.Param("userId"), req.Name)
	if err != nil {
		abortWithServiceError(c, err, "Failed to update user.")
		return
	}
	c.JSON(http.StatusOK, MapUserToResponse(user))
}

// DeleteUser godoc
// @Summary Delete a user
// @Description Removes the user. Their workouts are kept. Unknown ids are ignored.
// @Tags Users
// @Param userId path string true "User ID"
// @Success 204
// @Router /users/{userId} [delete]
func (h *UserHandler) DeleteUser(c *gin.Context) {
	if err := h.userService.DeleteUser(c.Request.Context(), c.Param("userId")); err != nil {
		abortWithServiceError(c, err, "Failed to delete user.")
		return
	}
	c.Status(http.StatusNoContent)
}
