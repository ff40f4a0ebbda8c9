package service

import (
	"context"

	"temanikan/internal/access"
	"temanikan/internal/models"
	"temanikan/internal/repository"

	"github.com/shopspring/decimal"
)

var (
	FishCategories   = []string{"all", "Air Tawar", "Air Laut", "Air Payau"}
	FishDifficulties = []string{"all", "Pemula", "Menengah", "Mahir"}
)

// quickAccess are the home tiles in display order.
var quickAccess = []models.QuickAccess{
	{View: models.ViewEncyclopedia, Title: "Fishpedia", Description: "Database lengkap spesies ikan hias", Stats: "500+ Spesies"},
	{View: models.ViewMonitoring, Title: "Monitoring IoT", Description: "Pantau akuarium real-time", Stats: "Real-time", Badge: "IoT"},
	{View: models.ViewDiagnosis, Title: "Diagnosa AI", Description: "Deteksi penyakit ikan otomatis", Stats: "YOLOv8", Badge: "AI"},
	{View: models.ViewForum, Title: "Komunitas", Description: "Diskusi dengan sesama hobbis", Stats: "12K+ Member"},
	{View: models.ViewShop, Title: "E-Commerce", Description: "Robotik & peralatan akuarium", Stats: "500+ Produk"},
}

var adminStats = models.AdminStats{
	TotalUsers:       1247,
	ActiveUsers:      892,
	TotalPosts:       3456,
	TotalProducts:    234,
	TotalFishEntries: 156,
	PendingReviews:   23,
}

type HomePage struct {
	QuickAccess []models.QuickAccess `json:"quick_access"`
	Articles    []models.Article     `json:"featured_articles"`
}

type EncyclopediaPage struct {
	Fish         []models.Fish `json:"fish"`
	Categories   []string      `json:"categories"`
	Difficulties []string      `json:"difficulties"`
}

type ForumPage struct {
	Categories []models.ForumCategory `json:"categories"`
	Topics     []models.ForumTopic    `json:"recent_topics"`
}

type ShopPage struct {
	Categories []models.ProductCategory `json:"categories"`
	Products   []models.Product         `json:"featured_products"`
}

type GuidePage struct {
	Categories []models.GuideCategory `json:"categories"`
	Guides     []models.Guide         `json:"featured_guides"`
}

type AdminPage struct {
	Stats           models.AdminStats       `json:"stats"`
	RecentUsers     []models.AdminUserRow   `json:"recent_users"`
	RecentPosts     []models.AdminPostRow   `json:"recent_posts"`
	PendingProducts []models.PendingProduct `json:"pending_products"`
}

type CatalogService struct {
	catalog repository.CatalogRepo
	admin   repository.AdminRepo
}

func NewCatalogService(catalog repository.CatalogRepo, admin repository.AdminRepo) *CatalogService {
	return &CatalogService{catalog: catalog, admin: admin}
}

// Home marks tiles the role cannot open as locked.
func (s *CatalogService) Home(ctx context.Context, role models.Role) (HomePage, error) {
	articles, err := s.catalog.Articles(ctx)
	if err != nil {
		return HomePage{}, err
	}
	tiles := make([]models.QuickAccess, len(quickAccess))
	for i, q := range quickAccess {
		q.Locked = !access.CanAccess(role, q.View)
		tiles[i] = q
	}
	return HomePage{QuickAccess: tiles, Articles: articles}, nil
}

func (s *CatalogService) Encyclopedia(ctx context.Context, f repository.FishFilter) (EncyclopediaPage, error) {
	fish, err := s.catalog.ListFish(ctx, f)
	if err != nil {
		return EncyclopediaPage{}, err
	}
	return EncyclopediaPage{Fish: fish, Categories: FishCategories, Difficulties: FishDifficulties}, nil
}

func (s *CatalogService) Forum(ctx context.Context) (ForumPage, error) {
	cats, err := s.catalog.ForumCategories(ctx)
	if err != nil {
		return ForumPage{}, err
	}
	topics, err := s.catalog.ForumTopics(ctx)
	if err != nil {
		return ForumPage{}, err
	}
	return ForumPage{Categories: cats, Topics: topics}, nil
}

func (s *CatalogService) Shop(ctx context.Context) (ShopPage, error) {
	cats, err := s.catalog.ProductCategories(ctx)
	if err != nil {
		return ShopPage{}, err
	}
	products, err := s.catalog.Products(ctx)
	if err != nil {
		return ShopPage{}, err
	}
	for i := range products {
		products[i].DiscountPct = DiscountPercent(products[i].Price, products[i].OriginalPrice)
	}
	return ShopPage{Categories: cats, Products: products}, nil
}

// DiscountPercent is the whole-percent saving of price against original,
// or nil when there is no higher original price.
func DiscountPercent(price decimal.Decimal, original *decimal.Decimal) *decimal.Decimal {
	if original == nil || !original.GreaterThan(price) || original.IsZero() {
		return nil
	}
	pct := original.Sub(price).Div(*original).Mul(decimal.NewFromInt(100)).Round(0)
	return &pct
}

func (s *CatalogService) Guides(ctx context.Context) (GuidePage, error) {
	cats, err := s.catalog.GuideCategories(ctx)
	if err != nil {
		return GuidePage{}, err
	}
	guides, err := s.catalog.Guides(ctx)
	if err != nil {
		return GuidePage{}, err
	}
	return GuidePage{Categories: cats, Guides: guides}, nil
}

func (s *CatalogService) Admin(ctx context.Context) (AdminPage, error) {
	users, err := s.admin.RecentUsers(ctx)
	if err != nil {
		return AdminPage{}, err
	}
	posts, err := s.admin.RecentPosts(ctx)
	if err != nil {
		return AdminPage{}, err
	}
	pending, err := s.admin.PendingProducts(ctx)
	if err != nil {
		return AdminPage{}, err
	}
	return AdminPage{Stats: adminStats, RecentUsers: users, RecentPosts: posts, PendingProducts: pending}, nil
}
