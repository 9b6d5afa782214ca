package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListUsersSearch(t *testing.T) {
	router := newTestRouter(t)

	w := doRequest(t, router, http.MethodGet, "/api/v1/users", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]UserResponse](t, w), 3)

	w = doRequest(t, router, http.MethodGet, "/api/v1/users?search=AN", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []UserResponse{{ID: "1", Name: "Ana"}, {ID: "2", Name: "Anderson"}}, decode[[]UserResponse](t, w))

	w = doRequest(t, router, http.MethodGet, "/api/v1/users?search=zzz", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestCreateUpdateDeleteUser(t *testing.T) {
	router := newTestRouter(t)

	w := doRequest(t, router, http.MethodPost, "/api/v1/users", UserRequest{Name: "  Carla  "})
	require.Equal(t, http.StatusCreated, w.Code)
	created := decode[UserResponse](t, w)
	assert.Equal(t, "Carla", created.Name)
	require.NotEmpty(t, created.ID)

	w = doRequest(t, router, http.MethodPut, "/api/v1/users/"+created.ID, UserRequest{Name: "Carla M"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Carla M", decode[UserResponse](t, w).Name)

	w = doRequest(t, router, http.MethodDelete, "/api/v1/users/"+created.ID, nil)
	require.Equal(t, http.StatusNoContent, w.Code)

	w = doRequest(t, router, http.MethodGet, "/api/v1/users/"+created.ID, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreateUserValidation(t *testing.T) {
	router := newTestRouter(t)

	w := doRequest(t, router, http.MethodPost, "/api/v1/users", map[string]string{})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doRequest(t, router, http.MethodPost, "/api/v1/users", UserRequest{Name: "   "})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateUnknownUser(t *testing.T) {
	w := doRequest(t, newTestRouter(t), http.MethodPut, "/api/v1/users/404", UserRequest{Name: "Nobody"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteUnknownUserIsNoop(t *testing.T) {
	router := newTestRouter(t)
	w := doRequest(t, router, http.MethodDelete, "/api/v1/users/404", nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = doRequest(t, router, http.MethodGet, "/api/v1/users", nil)
	assert.Len(t, decode[[]UserResponse](t, w), 3)
}
