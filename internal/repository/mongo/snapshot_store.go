package mongo

import (
	"alcyxob/fitlog/internal/domain"
	"alcyxob/fitlog/internal/seed"
	"context"
	"fmt"
	"log"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	userCollectionName    = "users"
	workoutCollectionName = "workouts"
)

// userDocument is the stored form of a domain.User. The application id lives
// in "id"; "_id" is left to MongoDB.
type userDocument struct {
	ObjectID primitive.ObjectID `bson:"_id,omitempty"`
	ID       string             `bson:"id"`
	Name     string             `bson:"name"`
}

type exerciseDocument struct {
	Name string `bson:"name"`
	Sets int    `bson:"sets"`
	Reps int    `bson:"reps"`
}

type workoutDocument struct {
	ObjectID  primitive.ObjectID `bson:"_id,omitempty"`
	ID        string             `bson:"id"`
	UserID    string             `bson:"userId"`
	Date      string             `bson:"date"`
	Exercises []exerciseDocument `bson:"exercises"`
}

// SnapshotStore reads and writes seed snapshots in the users and workouts
// collections. It implements seed.Source.
type SnapshotStore struct {
	users    *mongo.Collection
	workouts *mongo.Collection
}

// NewSnapshotStore creates a store over the given database.
func NewSnapshotStore(db *mongo.Database) *SnapshotStore {
	return &SnapshotStore{
		users:    db.Collection(userCollectionName),
		workouts: db.Collection(workoutCollectionName),
	}
}

// Load reads every user and workout, in insertion order, and validates them.
func (s *SnapshotStore) Load(ctx context.Context) (*seed.Snapshot, error) {
	var users []userDocument
	if err := findAll(ctx, s.users, &users); err != nil {
		return nil, fmt.Errorf("load users: %w", err)
	}
	var workouts []workoutDocument
	if err := findAll(ctx, s.workouts, &workouts); err != nil {
		return nil, fmt.Errorf("load workouts: %w", err)
	}

	snap := &seed.Snapshot{
		Users:    make([]domain.User, 0, len(users)),
		Workouts: make([]domain.Workout, 0, len(workouts)),
	}
	for _, d := range users {
		snap.Users = append(snap.Users, d.toDomain())
	}
	for _, d := range workouts {
		snap.Workouts = append(snap.Workouts, d.toDomain())
	}
	if err := snap.Validate(); err != nil {
		return nil, err
	}

	log.Printf("INFO: Loaded %d users and %d workouts from MongoDB", len(snap.Users), len(snap.Workouts))
	return snap, nil
}

// Replace drops the current contents of both collections and inserts snap.
func (s *SnapshotStore) Replace(ctx context.Context, snap *seed.Snapshot) error {
	if err := snap.Validate(); err != nil {
		return err
	}

	if _, err := s.users.DeleteMany(ctx, bson.M{}); err != nil {
		return fmt.Errorf("clear users: %w", err)
	}
	if _, err := s.workouts.DeleteMany(ctx, bson.M{}); err != nil {
		return fmt.Errorf("clear workouts: %w", err)
	}

	if len(snap.Users) > 0 {
		docs := make([]interface{}, 0, len(snap.Users))
		for _, u := range snap.Users {
			docs = append(docs, newUserDocument(u))
		}
		if _, err := s.users.InsertMany(ctx, docs); err != nil {
			return fmt.Errorf("insert users: %w", err)
		}
	}
	if len(snap.Workouts) > 0 {
		docs := make([]interface{}, 0, len(snap.Workouts))
		for _, w := range snap.Workouts {
			docs = append(docs, newWorkoutDocument(w))
		}
		if _, err := s.workouts.InsertMany(ctx, docs); err != nil {
			return fmt.Errorf("insert workouts: %w", err)
		}
	}

	log.Printf("INFO: Replaced MongoDB snapshot with %d users and %d workouts", len(snap.Users), len(snap.Workouts))
	return nil
}

// EnsureIndexes creates unique indexes on the ids and on (userId, date).
func (s *SnapshotStore) EnsureIndexes(ctx context.Context) error {
	if _, err := s.users.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "id", Value: 1}},
		Options: options.Index().SetUnique(true),
	}); err != nil {
		return fmt.Errorf("users index: %w", err)
	}

	_, err := s.workouts.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			// one workout per user per day
			Keys:    bson.D{{Key: "userId", Value: 1}, {Key: "date", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	})
	if err != nil {
		return fmt.Errorf("workouts index: %w", err)
	}
	return nil
}

func findAll(ctx context.Context, coll *mongo.Collection, out interface{}) error {
	cursor, err := coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return err
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, out); err != nil {
		return err
	}
	return cursor.Err()
}

func newUserDocument(u domain.User) userDocument {
	return userDocument{ID: u.ID, Name: u.Name}
}

func (d userDocument) toDomain() domain.User {
	return domain.User{ID: d.ID, Name: d.Name}
}

func newWorkoutDocument(w domain.Workout) workoutDocument {
	exercises := make([]exerciseDocument, 0, len(w.Exercises))
	for _, ex := range w.Exercises {
		exercises = append(exercises, exerciseDocument{Name: ex.Name, Sets: ex.Sets, Reps: ex.Reps})
	}
	return workoutDocument{ID: w.ID, UserID: w.UserID, Date: w.Date, Exercises: exercises}
}

func (d workoutDocument) toDomain() domain.Workout {
	w := domain.Workout{ID: d.ID, UserID: d.UserID, Date: d.Date}
	if len(d.Exercises) > 0 {
		w.Exercises = make([]domain.Exercise, 0, len(d.Exercises))
		for _, ex := range d.Exercises {
			w.Exercises = append(w.Exercises, domain.Exercise{Name: ex.Name, Sets: ex.Sets, Reps: ex.Reps})
		}
	}
	return w
}
