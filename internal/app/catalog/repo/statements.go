package repo

import (
	"strings"

	"cloud.google.com/go/spanner"

	"github.com/light-bringer/procat-facets/internal/app/catalog/contracts"
	"github.com/light-bringer/procat-facets/internal/models/m_attribute_template"
	"github.com/light-bringer/procat-facets/internal/models/m_category"
	"github.com/light-bringer/procat-facets/internal/models/m_product"
	"github.com/light-bringer/procat-facets/internal/models/m_product_attribute"
	"github.com/light-bringer/procat-facets/internal/models/m_product_variant"
	"github.com/light-bringer/procat-facets/internal/pkg/query"
)

// sortColumns maps catalog sort fields to product columns.
var sortColumns = map[string]string{
	"id":         m_product.ProductID,
	"title":      m_product.Title,
	"created_at": m_product.CreatedAt,
	"status":     m_product.Status,
}

// productStatement translates a product query into a statement over the
// products table. Sort fields without a column are returned as skipped.
func productStatement(q *contracts.ProductQuery) (stmt spanner.Statement, skipped []string) {
	b := query.From(m_product.TableName).
		Select(m_product.ProductID, m_product.Title, m_product.Status, m_product.CreatedAt)

	if q.Filter.Status != "" {
		b = b.Where(query.Eq(m_product.Status, q.Filter.Status))
	}
	if len(q.Filter.CategoryIDs) > 0 {
		b = b.Where(query.InSelect(m_product.ProductID, m_product.ProductID, m_product.CategoriesTable,
			query.InUnnest(m_product.CategoryID, q.Filter.CategoryIDs)))
	}
	if len(q.Filter.Tags) > 0 {
		b = b.Where(query.InSelect(m_product.ProductID, m_product.ProductID, m_product.TagsTable,
			query.InUnnest(m_product.TagValue, q.Filter.Tags)))
	}

	hasID := false
	for _, term := range q.Order {
		column, ok := sortColumns[term.Field]
		if !ok {
			skipped = append(skipped, term.Field)
			continue
		}
		hasID = hasID || column == m_product.ProductID
		b = b.OrderBy(column, direction(term.Direction))
	}
	if !hasID {
		// stable pagination
		b = b.OrderBy(m_product.ProductID, query.Asc)
	}

	if q.Window.Limit > 0 {
		b = b.Limit(q.Window.Limit)
	}
	if q.Window.Offset > 0 {
		b = b.Offset(q.Window.Offset)
	}

	return b.Build(), skipped
}

func direction(d contracts.Direction) query.Direction {
	if d == contracts.Desc {
		return query.Desc
	}
	return query.Asc
}

func childCategoriesStatement(parentIDs []string) spanner.Statement {
	return query.From(m_category.TableName).
		Select(m_category.CategoryID, m_category.ParentCategoryID).
		Where(query.InUnnest(m_category.ParentCategoryID, parentIDs)).
		OrderBy(m_category.CategoryID, query.Asc).
		Build()
}

func productCategoriesStatement(productIDs []string) spanner.Statement {
	return query.From(m_product.CategoriesTable).
		Select(m_product.ProductID, m_product.CategoryID).
		Where(query.InUnnest(m_product.ProductID, productIDs)).
		OrderBy(m_product.ProductID, query.Asc).
		OrderBy(m_product.CategoryID, query.Asc).
		Build()
}

func productTagsStatement(productIDs []string) spanner.Statement {
	return query.From(m_product.TagsTable).
		Select(m_product.ProductID, m_product.TagValue).
		Where(query.InUnnest(m_product.ProductID, productIDs)).
		OrderBy(m_product.ProductID, query.Asc).
		OrderBy(m_product.TagValue, query.Asc).
		Build()
}

func productImagesStatement(productIDs []string) spanner.Statement {
	return query.From(m_product.ImagesTable).
		Select(m_product.ProductID, m_product.Position, m_product.URL).
		Where(query.InUnnest(m_product.ProductID, productIDs)).
		OrderBy(m_product.ProductID, query.Asc).
		OrderBy(m_product.Position, query.Asc).
		Build()
}

func variantsStatement(productIDs []string) spanner.Statement {
	return query.From(m_product_variant.TableName).
		Select(m_product_variant.ProductID, m_product_variant.VariantID, m_product_variant.Title).
		Where(query.InUnnest(m_product_variant.ProductID, productIDs)).
		OrderBy(m_product_variant.ProductID, query.Asc).
		OrderBy(m_product_variant.VariantID, query.Asc).
		Build()
}

func variantPricesStatement(productIDs []string, regionID, currencyCode string) spanner.Statement {
	return query.From(m_product_variant.PricesTable).
		Select(m_product_variant.NewModel().PriceColumns()...).
		Where(query.InUnnest(m_product_variant.ProductID, productIDs)).
		Where(query.Eq(m_product_variant.RegionID, regionID)).
		Where(query.Eq(m_product_variant.CurrencyCode, strings.ToLower(currencyCode))).
		Build()
}

func attributeRecordsStatement(productIDs []string) spanner.Statement {
	return query.From(m_product_attribute.TableName).
		Select(
			m_product_attribute.ProductID,
			m_product_attribute.TemplateID,
			query.JSONString(m_product_attribute.AttributeValues),
		).
		Where(query.InUnnest(m_product_attribute.ProductID, productIDs)).
		OrderBy(m_product_attribute.ProductID, query.Asc).
		OrderBy(m_product_attribute.TemplateID, query.Asc).
		Build()
}

func templatesStatement(filter contracts.TemplateFilter) spanner.Statement {
	b := query.From(m_attribute_template.TableName).
		Select(
			m_attribute_template.TemplateID,
			m_attribute_template.Name,
			query.JSONString(m_attribute_template.Attributes),
			query.JSONString(m_attribute_template.OptionGroups),
		)
	if len(filter.IDs) > 0 {
		b = b.Where(query.InUnnest(m_attribute_template.TemplateID, filter.IDs))
	}
	return b.OrderBy(m_attribute_template.TemplateID, query.Asc).Build()
}
