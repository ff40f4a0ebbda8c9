package models

import "github.com/shopspring/decimal"

type Fish struct {
	ID             int    `json:"id"`
	Name           string `json:"name"`
	ScientificName string `json:"scientific_name"`
	Category       string `json:"category"`
	Difficulty     string `json:"difficulty"`
	Size           string `json:"size"`
	Temperature    string `json:"temperature"`
	PH             string `json:"ph"`
	Origin         string `json:"origin"`
	Image          string `json:"image"`
	Description    string `json:"description"`
	Lifespan       string `json:"lifespan"`
	TankSize       string `json:"tank_size"`
	Compatibility  string `json:"compatibility"`
}

type ProductCategory struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Count int    `json:"count"`
	Icon  string `json:"icon"`
}

// Product prices are whole rupiah.
type Product struct {
	ID            int              `json:"id"`
	Name          string           `json:"name"`
	Category      string           `json:"category"`
	Price         decimal.Decimal  `json:"price"`
	OriginalPrice *decimal.Decimal `json:"original_price,omitempty"`
	DiscountPct   *decimal.Decimal `json:"discount_pct,omitempty"`
	Rating        float64          `json:"rating"`
	Reviews       int              `json:"reviews"`
	Image         string           `json:"image"`
	Badge         string           `json:"badge,omitempty"`
}

type ForumCategory struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Topics      int    `json:"topics"`
	Posts       int    `json:"posts"`
	Color       string `json:"color"`
}

type ForumTopic struct {
	ID        int    `json:"id"`
	Title     string `json:"title"`
	Author    string `json:"author"`
	Category  string `json:"category"`
	Replies   int    `json:"replies"`
	Views     int    `json:"views"`
	LastReply string `json:"last_reply"`
	Avatar    string `json:"avatar"`
}

type GuideCategory struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Articles    int    `json:"articles"`
	Color       string `json:"color"`
}

type Guide struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Excerpt     string `json:"excerpt"`
	Category    string `json:"category"`
	ReadTime    string `json:"read_time"`
	Author      string `json:"author"`
	PublishDate string `json:"publish_date"`
	Image       string `json:"image"`
	Likes       int    `json:"likes"`
	Comments    int    `json:"comments"`
}

// Article is a featured article tile on the home view.
type Article struct {
	ID       int    `json:"id"`
	Title    string `json:"title"`
	Category string `json:"category"`
	Image    string `json:"image"`
	Author   string `json:"author"`
	ReadTime string `json:"read_time"`
	Likes    int    `json:"likes"`
}

// QuickAccess is a home tile linking to another view.
type QuickAccess struct {
	View        View   `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Stats       string `json:"stats"`
	Badge       string `json:"badge,omitempty"`
	Locked      bool   `json:"locked"`
}
