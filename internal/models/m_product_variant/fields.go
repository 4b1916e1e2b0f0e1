package m_product_variant

// Field name constants for the product_variants table.
const (
	TableName = "product_variants"

	ProductID = "product_id"
	VariantID = "variant_id"
	Title     = "title"
)

// Field name constants for the variant_prices table, interleaved in product_variants.
const (
	PricesTable = "variant_prices"

	RegionID          = "region_id"
	CurrencyCode      = "currency_code"
	AmountNumerator   = "amount_numerator"
	AmountDenominator = "amount_denominator"
)
