package m_category

import (
	"time"

	"cloud.google.com/go/spanner"
)

// Data represents the database model for the categories table.
type Data struct {
	CategoryID       string             `spanner:"category_id"`
	ParentCategoryID spanner.NullString `spanner:"parent_category_id"`
	Name             string             `spanner:"name"`
	CreatedAt        time.Time          `spanner:"created_at"`
}
