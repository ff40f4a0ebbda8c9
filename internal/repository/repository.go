package repository

import (
	"context"
	"database/sql"

	"temanikan/internal/models"
)

type Authorization interface {
	Create(ctx context.Context, u models.User) (int, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
}

type ControlsRepo interface {
	Save(ctx context.Context, c models.AquariumControls) error
	Load(ctx context.Context) (models.AquariumControls, error)
}

type EventRepo interface {
	Append(ctx context.Context, e models.ActivityEvent) error
	List(ctx context.Context, q EventQuery) ([]models.ActivityEvent, error)
}

// FishFilter narrows the encyclopedia listing. Empty or "all" fields do not filter.
type FishFilter struct {
	Search     string
	Category   string
	Difficulty string
}

type CatalogRepo interface {
	ListFish(ctx context.Context, f FishFilter) ([]models.Fish, error)
	ProductCategories(ctx context.Context) ([]models.ProductCategory, error)
	Products(ctx context.Context) ([]models.Product, error)
	ForumCategories(ctx context.Context) ([]models.ForumCategory, error)
	ForumTopics(ctx context.Context) ([]models.ForumTopic, error)
	GuideCategories(ctx context.Context) ([]models.GuideCategory, error)
	Guides(ctx context.Context) ([]models.Guide, error)
	Articles(ctx context.Context) ([]models.Article, error)
}

type AdminRepo interface {
	RecentUsers(ctx context.Context) ([]models.AdminUserRow, error)
	RecentPosts(ctx context.Context) ([]models.AdminPostRow, error)
	PendingProducts(ctx context.Context) ([]models.PendingProduct, error)
}

type MonitoringRepo interface {
	Devices(ctx context.Context) ([]models.Device, error)
	Schedules(ctx context.Context) ([]models.CleaningSchedule, error)
	ToggleSchedule(ctx context.Context, id int) (models.CleaningSchedule, error)
}

type Repository struct {
	Auth       Authorization
	Controls   ControlsRepo
	EventRepo  EventRepo
	Catalog    CatalogRepo
	Admin      AdminRepo
	Monitoring MonitoringRepo
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		Auth:       NewUserRepository(db),
		Controls:   NewControlsSQLite(db),
		EventRepo:  NewEventSQLite(db),
		Catalog:    NewCatalogSQLite(db),
		Admin:      NewAdminSQLite(db),
		Monitoring: NewMonitoringSQLite(db),
	}
}
