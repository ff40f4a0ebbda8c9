package models

import "github.com/shopspring/decimal"

type AdminStats struct {
	TotalUsers       int `json:"total_users"`
	ActiveUsers      int `json:"active_users"`
	TotalPosts       int `json:"total_posts"`
	TotalProducts    int `json:"total_products"`
	TotalFishEntries int `json:"total_fish_entries"`
	PendingReviews   int `json:"pending_reviews"`
}

type AdminUserRow struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Role     Role   `json:"role"`
	Status   string `json:"status"`
	JoinDate string `json:"join_date"`
}

type AdminPostRow struct {
	ID       int    `json:"id"`
	Title    string `json:"title"`
	Author   string `json:"author"`
	Category string `json:"category"`
	Status   string `json:"status"`
	Date     string `json:"date"`
}

type PendingProduct struct {
	ID     int             `json:"id"`
	Name   string          `json:"name"`
	Seller string          `json:"seller"`
	Price  decimal.Decimal `json:"price"`
	Status string          `json:"status"`
}

// AdminCredentials backs the demo-access helper card.
type AdminCredentials struct {
	Email string            `json:"email"`
	Roles map[Role][]string `json:"roles"`
	Note  string            `json:"note"`
}
