package repository

import (
	"context"
	"database/sql"

	"temanikan/internal/models"

	"github.com/shopspring/decimal"
)

type AdminSQLite struct {
	db *sql.DB
}

func NewAdminSQLite(db *sql.DB) *AdminSQLite { return &AdminSQLite{db: db} }

var _ AdminRepo = (*AdminSQLite)(nil)

const (
	selectAdminUsersSQL      = `SELECT id, name, email, role, status, join_date FROM admin_users ORDER BY id`
	selectAdminPostsSQL      = `SELECT id, title, author, category, status, date FROM admin_posts ORDER BY id`
	selectPendingProductsSQL = `SELECT id, name, seller, price, status FROM pending_products ORDER BY id`
)

func (r *AdminSQLite) RecentUsers(ctx context.Context) ([]models.AdminUserRow, error) {
	return queryAll(ctx, r.db, "admin users", selectAdminUsersSQL, func(rows *sql.Rows) (models.AdminUserRow, error) {
		var (
			u    models.AdminUserRow
			role string
		)
		err := rows.Scan(&u.ID, &u.Name, &u.Email, &role, &u.Status, &u.JoinDate)
		u.Role = models.Role(role)
		return u, err
	})
}

func (r *AdminSQLite) RecentPosts(ctx context.Context) ([]models.AdminPostRow, error) {
	return queryAll(ctx, r.db, "admin posts", selectAdminPostsSQL, func(rows *sql.Rows) (models.AdminPostRow, error) {
		var p models.AdminPostRow
		err := rows.Scan(&p.ID, &p.Title, &p.Author, &p.Category, &p.Status, &p.Date)
		return p, err
	})
}

func (r *AdminSQLite) PendingProducts(ctx context.Context) ([]models.PendingProduct, error) {
	return queryAll(ctx, r.db, "pending products", selectPendingProductsSQL, func(rows *sql.Rows) (models.PendingProduct, error) {
		var (
			p     models.PendingProduct
			price int64
		)
		err := rows.Scan(&p.ID, &p.Name, &p.Seller, &price, &p.Status)
		p.Price = decimal.NewFromInt(price)
		return p, err
	})
}
