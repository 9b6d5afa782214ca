package main

import (
	"alcyxob/fitlog/internal/api"
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		log.Println("Starting Fitlog Server...")

		a, err := newApp(cmd.Context(), cfg)
		if err != nil {
			return err
		}
		defer a.Close()

		gin.SetMode(cfg.Server.Mode)
		router := gin.Default() // Includes Logger and Recovery middleware

		log.Println("Setting up API routes...")
		api.SetupRoutes(router, cfg.Viewer.DefaultUserID, a.userService, a.workoutService, a.viewerService)

		server := &http.Server{
			Addr:         cfg.Server.Address,
			Handler:      router,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 10 * time.Second,
			IdleTimeout:  120 * time.Second,
		}

		log.Printf("Server starting on %s", cfg.Server.Address)

		// --- Graceful Shutdown ---
		serveErr := make(chan error, 1)
		go func() {
			if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				serveErr <- err
			}
			close(serveErr)
		}()

		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		defer signal.Stop(quit)

		select {
		case err := <-serveErr:
			return err
		case <-quit:
		}
		log.Println("Shutting down server...")

		ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancelShutdown()

		if err := server.Shutdown(ctxShutdown); err != nil {
			return err
		}

		log.Println("Server exiting.")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
