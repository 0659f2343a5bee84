package tasks

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/example/task-tracker/config"
	domain "github.com/example/task-tracker/domain/task"
	"github.com/example/task-tracker/modules/auth"
	"github.com/go-monolith/mono"
	"github.com/go-monolith/mono/pkg/helper"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// TasksModule owns the task store and provides ownership-scoped CRUD
// services. Identity resolution goes through the auth module.
type TasksModule struct {
	cfg   config.Config
	db    *gorm.DB
	repo  *Repository
	users UserResolver
}

// Compile-time interface checks.
var _ mono.Module = (*TasksModule)(nil)
var _ mono.ServiceProviderModule = (*TasksModule)(nil)
var _ mono.DependentModule = (*TasksModule)(nil)
var _ mono.HealthCheckableModule = (*TasksModule)(nil)

// NewModule creates a new TasksModule.
func NewModule(cfg config.Config) *TasksModule {
	return &TasksModule{
		cfg: cfg,
	}
}

// Name returns the module name.
func (m *TasksModule) Name() string {
	return "tasks"
}

// Dependencies returns the list of module dependencies.
func (m *TasksModule) Dependencies() []string {
	return []string{"auth"}
}

// SetDependencyServiceContainer receives service containers from dependencies.
func (m *TasksModule) SetDependencyServiceContainer(dependency string, container mono.ServiceContainer) {
	if dependency == "auth" {
		m.users = auth.NewAuthAdapter(container)
	}
}

// Start initializes the task store.
func (m *TasksModule) Start(_ context.Context) error {
	if m.users == nil {
		return fmt.Errorf("auth dependency not set")
	}

	db, err := gorm.Open(sqlite.Open(m.cfg.DBPath), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	m.db = db

	if err := db.AutoMigrate(&domain.Task{}); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	m.repo = NewRepository(db)

	log.Printf("[tasks] Module started (database: %s)", m.cfg.DBPath)
	return nil
}

// Stop shuts down the module.
func (m *TasksModule) Stop(_ context.Context) error {
	if m.db != nil {
		sqlDB, err := m.db.DB()
		if err == nil {
			sqlDB.Close()
		}
	}
	log.Println("[tasks] Module stopped")
	return nil
}

// Health returns the health status of the module.
func (m *TasksModule) Health(ctx context.Context) mono.HealthStatus {
	if m.db == nil {
		return mono.HealthStatus{
			Healthy: false,
			Message: "database not initialized",
		}
	}

	sqlDB, err := m.db.DB()
	if err != nil {
		return mono.HealthStatus{
			Healthy: false,
			Message: fmt.Sprintf("failed to get database connection: %v", err),
		}
	}

	if err := sqlDB.PingContext(ctx); err != nil {
		return mono.HealthStatus{
			Healthy: false,
			Message: fmt.Sprintf("database ping failed: %v", err),
		}
	}

	return mono.HealthStatus{
		Healthy: true,
		Message: "operational",
		Details: map[string]any{
			"database": m.cfg.DBPath,
		},
	}
}

// RegisterServices registers request-reply services in the service container.
func (m *TasksModule) RegisterServices(container mono.ServiceContainer) error {
	if err := helper.RegisterTypedRequestReplyService(
		container, "list", json.Unmarshal, json.Marshal, m.listTasks,
	); err != nil {
		return fmt.Errorf("failed to register list service: %w", err)
	}

	if err := helper.RegisterTypedRequestReplyService(
		container, "create", json.Unmarshal, json.Marshal, m.createTask,
	); err != nil {
		return fmt.Errorf("failed to register create service: %w", err)
	}

	if err := helper.RegisterTypedRequestReplyService(
		container, "update", json.Unmarshal, json.Marshal, m.updateTask,
	); err != nil {
		return fmt.Errorf("failed to register update service: %w", err)
	}

	if err := helper.RegisterTypedRequestReplyService(
		container, "delete", json.Unmarshal, json.Marshal, m.deleteTask,
	); err != nil {
		return fmt.Errorf("failed to register delete service: %w", err)
	}

	log.Printf("[tasks] Registered services: list, create, update, delete")
	return nil
}
