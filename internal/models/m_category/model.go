package m_category

import (
	"time"

	"cloud.google.com/go/spanner"
)

// Model provides a facade for type-safe operations on the categories table.
type Model struct{}

// NewModel creates a new Model instance.
func NewModel() *Model {
	return &Model{}
}

// InsertMut creates a Spanner mutation for inserting a category.
func (m *Model) InsertMut(data *Data) *spanner.Mutation {
	return spanner.InsertOrUpdate(
		TableName,
		[]string{CategoryID, ParentCategoryID, Name, CreatedAt},
		[]interface{}{data.CategoryID, data.ParentCategoryID, data.Name, createdAt(data.CreatedAt)},
	)
}

// DeleteMut creates a Spanner mutation for deleting a category.
func (m *Model) DeleteMut(categoryID string) *spanner.Mutation {
	return spanner.Delete(TableName, spanner.Key{categoryID})
}

// createdAt keeps an explicit creation time and falls back to the commit timestamp.
func createdAt(t time.Time) interface{} {
	if t.IsZero() {
		return spanner.CommitTimestamp
	}
	return t
}
