package m_product

import (
	"time"
)

// Data represents the database model for the products table.
type Data struct {
	ProductID string    `spanner:"product_id"`
	Title     string    `spanner:"title"`
	Status    string    `spanner:"status"`
	CreatedAt time.Time `spanner:"created_at"`
}

// CategoryData links a product to a category.
type CategoryData struct {
	ProductID  string `spanner:"product_id"`
	CategoryID string `spanner:"category_id"`
}

// TagData is one tag of a product.
type TagData struct {
	ProductID string `spanner:"product_id"`
	TagValue  string `spanner:"tag_value"`
}

// ImageData is one image of a product, ordered by position.
type ImageData struct {
	ProductID string `spanner:"product_id"`
	Position  int64  `spanner:"position"`
	URL       string `spanner:"url"`
}
