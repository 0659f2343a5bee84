package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/example/task-tracker/config"
	"github.com/example/task-tracker/modules/api"
	"github.com/example/task-tracker/modules/auth"
	"github.com/example/task-tracker/modules/tasks"
	gfshutdown "github.com/gelmium/graceful-shutdown"
	"github.com/go-monolith/mono"
)

const shutdownTimeout = 30 * time.Second

func main() {
	log.Println("=== Task Tracker ===")

	cfg := config.Load()

	app, err := mono.NewMonoApplication(
		mono.WithShutdownTimeout(shutdownTimeout),
		mono.WithLogLevel(mono.LogLevelInfo),
		mono.WithLogFormat(mono.LogFormatText),
	)
	if err != nil {
		log.Fatalf("Failed to create application: %v", err)
	}

	// Register modules with the framework
	// Order: independent modules first, then dependent modules
	app.Register(auth.NewModule(cfg))  // Credential store + token issuing
	app.Register(tasks.NewModule(cfg)) // Depends on auth for identity resolution
	app.Register(api.NewModule(cfg))   // Depends on auth and tasks

	if err := app.Start(context.Background()); err != nil {
		log.Fatalf("Failed to start application: %v", err)
	}

	printStartupInfo(cfg)

	// Graceful shutdown
	wait := gfshutdown.GracefulShutdown(
		context.Background(),
		shutdownTimeout,
		map[string]gfshutdown.Operation{
			"mono-app": func(ctx context.Context) error {
				log.Println("Graceful shutdown initiated...")
				return app.Stop(ctx)
			},
		},
	)

	exitCode := <-wait
	log.Printf("Application exited with code: %d", exitCode)
	os.Exit(exitCode)
}

func printStartupInfo(cfg config.Config) {
	log.Println("")
	log.Printf("Application started (profile: %s, database: %s)", cfg.Env, cfg.DBPath)
	log.Println("")
	log.Printf("REST API Endpoints (http://localhost%s):", cfg.HTTPAddr)
	log.Println("")
	log.Println("  Public Endpoints:")
	log.Println("  POST   /register    - Register a new user")
	log.Println("  POST   /login       - Login and get an access token")
	log.Println("  GET    /health      - Health check")
	log.Println("")
	log.Println("  Protected Endpoints (require Bearer token):")
	log.Println("  GET    /tasks       - List your tasks")
	log.Println("  POST   /tasks       - Create a task")
	log.Println("  PUT    /tasks/:id   - Update a task")
	log.Println("  DELETE /tasks/:id   - Delete a task")
	log.Println("")
	log.Println("Press Ctrl+C to shutdown gracefully")
}
