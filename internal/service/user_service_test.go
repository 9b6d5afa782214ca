package service

import (
	"context"
	"testing"

	"alcyxob/fitlog/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func userNames(users []domain.User) []string {
	out := make([]string, len(users))
	for i, u := range users {
		out[i] = u.Name
	}
	return out
}

func TestSearchUsersCaseInsensitive(t *testing.T) {
	users, _ := setupRepos(t)
	svc := NewUserService(users)

	got, err := svc.SearchUsers(context.Background(), "an")
	require.NoError(t, err)
	assert.Equal(t, []string{"Ana", "Anderson"}, userNames(got))

	got, err = svc.SearchUsers(context.Background(), "BRU")
	require.NoError(t, err)
	assert.Equal(t, []string{"Bruno"}, userNames(got))
}

func TestAddUserTrimsAndValidates(t *testing.T) {
	users, _ := setupRepos(t)
	svc := NewUserService(users)
	ctx := context.Background()

	u, err := svc.AddUser(ctx, "  Carla  ")
	require.NoError(t, err)
	assert.Equal(t, "Carla", u.Name)
	assert.NotEmpty(t, u.ID)

	_, err = svc.AddUser(ctx, "   ")
	assert.ErrorIs(t, err, ErrValidationFailed)

	all, err := svc.ListUsers(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Ana", "Anderson", "Bruno", "Carla"}, userNames(all))
}

func TestUpdateUser(t *testing.T) {
	users, _ := setupRepos(t)
	svc := NewUserService(users)
	ctx := context.Background()

	u, err := svc.UpdateUser(ctx, "3", "Bruna")
	require.NoError(t, err)
	assert.Equal(t, "3", u.ID)
	assert.Equal(t, "Bruna", u.Name)

	_, err = svc.UpdateUser(ctx, "404", "Nobody")
	assert.ErrorIs(t, err, ErrUserNotFound)

	_, err = svc.UpdateUser(ctx, "3", "")
	assert.ErrorIs(t, err, ErrValidationFailed)

	all, err := svc.ListUsers(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Ana", "Anderson", "Bruna"}, userNames(all))
}

func TestDeleteUserKeepsWorkouts(t *testing.T) {
	users, workouts := setupRepos(t)
	svc := NewUserService(users)
	ctx := context.Background()

	require.NoError(t, svc.DeleteUser(ctx, "2"))
	require.NoError(t, svc.DeleteUser(ctx, "2"))

	_, err := svc.GetUser(ctx, "2")
	assert.ErrorIs(t, err, ErrUserNotFound)

	w, err := workouts.GetByID(ctx, "w2")
	require.NoError(t, err)
	assert.Equal(t, "2", w.UserID)
}
