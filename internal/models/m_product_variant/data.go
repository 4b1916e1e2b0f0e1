package m_product_variant

// Data represents the database model for the product_variants table.
type Data struct {
	ProductID string `spanner:"product_id"`
	VariantID string `spanner:"variant_id"`
	Title     string `spanner:"title"`
}

// PriceData is the price of a variant in one region and currency,
// stored as a rational amount in major units.
type PriceData struct {
	ProductID         string `spanner:"product_id"`
	VariantID         string `spanner:"variant_id"`
	RegionID          string `spanner:"region_id"`
	CurrencyCode      string `spanner:"currency_code"`
	AmountNumerator   int64  `spanner:"amount_numerator"`
	AmountDenominator int64  `spanner:"amount_denominator"`
}
