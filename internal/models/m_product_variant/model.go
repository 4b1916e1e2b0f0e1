package m_product_variant

import (
	"cloud.google.com/go/spanner"
)

// Model provides type-safe database operations for variants and their prices.
type Model struct{}

// NewModel creates a new variant model.
func NewModel() *Model {
	return &Model{}
}

// InsertMut creates a mutation for inserting a variant.
func (m *Model) InsertMut(data *Data) *spanner.Mutation {
	mut, _ := spanner.InsertOrUpdateStruct(TableName, data)
	return mut
}

// PriceMut creates a mutation for inserting a variant price.
func (m *Model) PriceMut(data *PriceData) *spanner.Mutation {
	mut, _ := spanner.InsertOrUpdateStruct(PricesTable, data)
	return mut
}

// PriceColumns returns the column names for reading variant prices.
func (m *Model) PriceColumns() []string {
	return []string{
		ProductID,
		VariantID,
		RegionID,
		CurrencyCode,
		AmountNumerator,
		AmountDenominator,
	}
}
