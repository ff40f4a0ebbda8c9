package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"temanikan/internal/models"

	"github.com/shopspring/decimal"
)

type CatalogSQLite struct {
	db *sql.DB
}

func NewCatalogSQLite(db *sql.DB) *CatalogSQLite { return &CatalogSQLite{db: db} }

var _ CatalogRepo = (*CatalogSQLite)(nil)

const (
	selectFishSQL = `SELECT id, name, scientific_name, category, difficulty, size, temperature, ph, origin, image, description, lifespan, tank_size, compatibility FROM fish`

	selectProductCategoriesSQL = `SELECT id, name, count, icon FROM product_categories ORDER BY position`
	selectProductsSQL          = `SELECT id, name, category, price, original_price, rating, reviews, image, badge FROM products ORDER BY id`
	selectForumCategoriesSQL   = `SELECT id, name, description, topics, posts, color FROM forum_categories ORDER BY position`
	selectForumTopicsSQL       = `SELECT id, title, author, category, replies, views, last_reply, avatar FROM forum_topics ORDER BY id`
	selectGuideCategoriesSQL   = `SELECT id, name, description, articles, color FROM guide_categories ORDER BY position`
	selectGuidesSQL            = `SELECT id, title, excerpt, category, read_time, author, publish_date, image, likes, comments FROM guides ORDER BY id`
	selectArticlesSQL          = `SELECT id, title, category, image, author, read_time, likes FROM articles ORDER BY id`
)

// filterValue treats "" and "all" as no filter.
func filterValue(s string) string {
	s = strings.TrimSpace(s)
	if strings.EqualFold(s, "all") {
		return ""
	}
	return s
}

// ListFish matches search as a literal substring of name or scientific name
// (case-insensitive) and category/difficulty exactly.
func (r *CatalogSQLite) ListFish(ctx context.Context, f FishFilter) ([]models.Fish, error) {
	var (
		conds []string
		args  []any
	)
	if s := strings.ToLower(strings.TrimSpace(f.Search)); s != "" {
		conds = append(conds, "(instr(lower(name), ?) > 0 OR instr(lower(scientific_name), ?) > 0)")
		args = append(args, s, s)
	}
	if c := filterValue(f.Category); c != "" {
		conds = append(conds, "category = ?")
		args = append(args, c)
	}
	if d := filterValue(f.Difficulty); d != "" {
		conds = append(conds, "difficulty = ?")
		args = append(args, d)
	}

	q := selectFishSQL
	if len(conds) > 0 {
		q += " WHERE " + strings.Join(conds, " AND ")
	}
	q += " ORDER BY id"

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("select fish: %w", err)
	}
	defer rows.Close()

	out := make([]models.Fish, 0, 8)
	for rows.Next() {
		var fi models.Fish
		if err := rows.Scan(&fi.ID, &fi.Name, &fi.ScientificName, &fi.Category, &fi.Difficulty,
			&fi.Size, &fi.Temperature, &fi.PH, &fi.Origin, &fi.Image, &fi.Description,
			&fi.Lifespan, &fi.TankSize, &fi.Compatibility); err != nil {
			return nil, fmt.Errorf("scan fish: %w", err)
		}
		out = append(out, fi)
	}
	return out, rows.Err()
}

func (r *CatalogSQLite) ProductCategories(ctx context.Context) ([]models.ProductCategory, error) {
	return queryAll(ctx, r.db, "product categories", selectProductCategoriesSQL, func(rows *sql.Rows) (models.ProductCategory, error) {
		var c models.ProductCategory
		err := rows.Scan(&c.ID, &c.Name, &c.Count, &c.Icon)
		return c, err
	})
}

func (r *CatalogSQLite) Products(ctx context.Context) ([]models.Product, error) {
	return queryAll(ctx, r.db, "products", selectProductsSQL, func(rows *sql.Rows) (models.Product, error) {
		var (
			p        models.Product
			price    int64
			original sql.NullInt64
		)
		if err := rows.Scan(&p.ID, &p.Name, &p.Category, &price, &original, &p.Rating, &p.Reviews, &p.Image, &p.Badge); err != nil {
			return p, err
		}
		p.Price = decimal.NewFromInt(price)
		if original.Valid {
			op := decimal.NewFromInt(original.Int64)
			p.OriginalPrice = &op
		}
		return p, nil
	})
}

func (r *CatalogSQLite) ForumCategories(ctx context.Context) ([]models.ForumCategory, error) {
	return queryAll(ctx, r.db, "forum categories", selectForumCategoriesSQL, func(rows *sql.Rows) (models.ForumCategory, error) {
		var c models.ForumCategory
		err := rows.Scan(&c.ID, &c.Name, &c.Description, &c.Topics, &c.Posts, &c.Color)
		return c, err
	})
}

func (r *CatalogSQLite) ForumTopics(ctx context.Context) ([]models.ForumTopic, error) {
	return queryAll(ctx, r.db, "forum topics", selectForumTopicsSQL, func(rows *sql.Rows) (models.ForumTopic, error) {
		var t models.ForumTopic
		err := rows.Scan(&t.ID, &t.Title, &t.Author, &t.Category, &t.Replies, &t.Views, &t.LastReply, &t.Avatar)
		return t, err
	})
}

func (r *CatalogSQLite) GuideCategories(ctx context.Context) ([]models.GuideCategory, error) {
	return queryAll(ctx, r.db, "guide categories", selectGuideCategoriesSQL, func(rows *sql.Rows) (models.GuideCategory, error) {
		var c models.GuideCategory
		err := rows.Scan(&c.ID, &c.Name, &c.Description, &c.Articles, &c.Color)
		return c, err
	})
}

func (r *CatalogSQLite) Guides(ctx context.Context) ([]models.Guide, error) {
	return queryAll(ctx, r.db, "guides", selectGuidesSQL, func(rows *sql.Rows) (models.Guide, error) {
		var g models.Guide
		err := rows.Scan(&g.ID, &g.Title, &g.Excerpt, &g.Category, &g.ReadTime, &g.Author, &g.PublishDate, &g.Image, &g.Likes, &g.Comments)
		return g, err
	})
}

func (r *CatalogSQLite) Articles(ctx context.Context) ([]models.Article, error) {
	return queryAll(ctx, r.db, "articles", selectArticlesSQL, func(rows *sql.Rows) (models.Article, error) {
		var a models.Article
		err := rows.Scan(&a.ID, &a.Title, &a.Category, &a.Image, &a.Author, &a.ReadTime, &a.Likes)
		return a, err
	})
}

// queryAll runs a parameterless query and scans every row with scan.
func queryAll[T any](ctx context.Context, db *sql.DB, what, q string, scan func(*sql.Rows) (T, error)) ([]T, error) {
	rows, err := db.QueryContext(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("select %s: %w", what, err)
	}
	defer rows.Close()

	out := make([]T, 0, 8)
	for rows.Next() {
		v, err := scan(rows)
		if err != nil {
			return nil, fmt.Errorf("scan %s: %w", what, err)
		}
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate %s: %w", what, err)
	}
	return out, nil
}
