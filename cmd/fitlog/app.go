package main

import (
	"alcyxob/fitlog/internal/config"
	"alcyxob/fitlog/internal/repository"
	"alcyxob/fitlog/internal/repository/memory"
	"alcyxob/fitlog/internal/repository/mongo"
	"alcyxob/fitlog/internal/seed"
	"alcyxob/fitlog/internal/service"
	"alcyxob/fitlog/internal/session"
	"alcyxob/fitlog/internal/storage"
	"context"
	"fmt"
	"log"
	"time"
)

// app holds the wired stores and services every command works against.
type app struct {
	userRepo    repository.UserRepository
	workoutRepo repository.WorkoutRepository

	userService    service.UserService
	workoutService service.WorkoutService
	viewerService  service.ViewerService

	closers []func() error
}

// newApp loads the configured seed snapshot into fresh in-memory stores.
func newApp(ctx context.Context, cfg config.Config) (*app, error) {
	loc, err := cfg.Workouts.Location()
	if err != nil {
		return nil, err
	}

	a := &app{}
	src, err := a.seedSource(ctx, cfg)
	if err != nil {
		a.Close()
		return nil, err
	}

	snap, err := src.Load(ctx)
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("load %s seed: %w", cfg.Seed.Source, err)
	}
	log.Printf("INFO: Seed loaded from %s: %d users, %d workouts", cfg.Seed.Source, len(snap.Users), len(snap.Workouts))

	a.userRepo = memory.NewMemoryUserRepository(snap.Users)
	a.workoutRepo = memory.NewMemoryWorkoutRepository(snap.Workouts)

	a.userService = service.NewUserService(a.userRepo)
	a.workoutService = service.NewWorkoutService(a.userRepo, a.workoutRepo, cfg.Workouts.PageSize)
	a.viewerService = service.NewViewerService(a.userRepo, a.workoutRepo, session.NewStore(), func() time.Time {
		return time.Now().In(loc)
	})
	return a, nil
}

func (a *app) seedSource(ctx context.Context, cfg config.Config) (seed.Source, error) {
	switch cfg.Seed.Source {
	case config.SeedSourceFile:
		return seed.FileSource{UsersPath: cfg.Seed.UsersPath, WorkoutsPath: cfg.Seed.WorkoutsPath}, nil

	case config.SeedSourceS3:
		objects, err := storage.NewS3Storage(ctx, cfg.S3)
		if err != nil {
			return nil, fmt.Errorf("initialize S3 storage: %w", err)
		}
		return seed.ObjectSource{Reader: objects, UsersKey: cfg.Seed.UsersKey, WorkoutsKey: cfg.Seed.WorkoutsKey}, nil

	case config.SeedSourceMongo:
		store, err := a.snapshotStore(ctx, cfg)
		if err != nil {
			return nil, err
		}
		return store, nil

	default:
		return seed.BundledSource{}, nil
	}
}

// snapshotStore connects to MongoDB; the connection is released by Close.
func (a *app) snapshotStore(ctx context.Context, cfg config.Config) (*mongo.SnapshotStore, error) {
	client, err := mongo.ConnectDB(ctx, cfg.Database.URI)
	if err != nil {
		return nil, fmt.Errorf("connect to MongoDB: %w", err)
	}
	a.closers = append(a.closers, func() error {
		log.Println("Disconnecting MongoDB...")
		return mongo.DisconnectDB(client)
	})
	return mongo.NewSnapshotStore(client.Database(cfg.Database.Name)), nil
}

// Close releases external connections opened while loading the seed.
func (a *app) Close() {
	for _, c := range a.closers {
		if err := c(); err != nil {
			log.Printf("ERROR: %v", err)
		}
	}
	a.closers = nil
}
