package mongo

import (
	"testing"

	"alcyxob/fitlog/internal/domain"
	"alcyxob/fitlog/internal/seed"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var _ seed.Source = (*SnapshotStore)(nil)

func TestWorkoutDocumentMapping(t *testing.T) {
	w := domain.Workout{
		ID:     "w1",
		UserID: "1",
		Date:   "2024-03-01",
		Exercises: []domain.Exercise{
			{Name: "Squat", Sets: 3, Reps: 10},
			{Name: "Lunge", Sets: 2, Reps: 12},
		},
	}
	doc := newWorkoutDocument(w)
	assert.True(t, doc.ObjectID.IsZero())
	assert.Equal(t, w, doc.toDomain())
}

func TestWorkoutDocumentWithoutExercises(t *testing.T) {
	w := domain.Workout{ID: "w1", UserID: "1", Date: "2024-03-01"}
	assert.Equal(t, w, newWorkoutDocument(w).toDomain())
}

func TestWorkoutDocumentBSON(t *testing.T) {
	doc := newWorkoutDocument(domain.Workout{
		ID: "w1", UserID: "1", Date: "2024-03-01",
		Exercises: []domain.Exercise{{Name: "Squat", Sets: 3, Reps: 10}},
	})
	doc.ObjectID = primitive.NewObjectID()

	raw, err := bson.Marshal(doc)
	require.NoError(t, err)

	var m bson.M
	require.NoError(t, bson.Unmarshal(raw, &m))
	assert.Equal(t, "1", m["userId"])
	assert.Equal(t, "2024-03-01", m["date"])
	assert.Equal(t, doc.ObjectID, m["_id"])

	var back workoutDocument
	require.NoError(t, bson.Unmarshal(raw, &back))
	assert.Equal(t, doc, back)
}

func TestUserDocumentOmitsEmptyObjectID(t *testing.T) {
	raw, err := bson.Marshal(newUserDocument(domain.User{ID: "1", Name: "Ana"}))
	require.NoError(t, err)

	var m bson.M
	require.NoError(t, bson.Unmarshal(raw, &m))
	_, hasObjectID := m["_id"]
	assert.False(t, hasObjectID)
	assert.Equal(t, "Ana", m["name"])
}
