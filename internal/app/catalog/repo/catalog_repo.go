package repo

import (
	"context"
	"fmt"
	"slices"

	"cloud.google.com/go/spanner"
	"go.uber.org/zap"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"

	"github.com/light-bringer/procat-facets/internal/app/catalog/contracts"
	"github.com/light-bringer/procat-facets/internal/app/catalog/domain"
	"github.com/light-bringer/procat-facets/internal/models/m_category"
	"github.com/light-bringer/procat-facets/internal/models/m_product"
	"github.com/light-bringer/procat-facets/internal/models/m_product_variant"
)

// CatalogRepo implements contracts.Catalog for Spanner.
// Every call reads from a single read-only snapshot.
type CatalogRepo struct {
	client *spanner.Client
	logger *zap.Logger
}

// NewCatalogRepo creates a new CatalogRepo.
func NewCatalogRepo(client *spanner.Client, logger *zap.Logger) *CatalogRepo {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CatalogRepo{
		client: client,
		logger: logger,
	}
}

var _ contracts.Catalog = (*CatalogRepo)(nil)

// CategoryTree reads rootID and its descendants level by level, down to depth levels.
func (r *CatalogRepo) CategoryTree(ctx context.Context, rootID string, depth int) (*domain.CategoryNode, error) {
	txn := r.client.ReadOnlyTransaction()
	defer txn.Close()

	if _, err := txn.ReadRow(ctx, m_category.TableName, spanner.Key{rootID}, []string{m_category.CategoryID}); err != nil {
		if spanner.ErrCode(err) == codes.NotFound {
			return nil, domain.ErrCategoryNotFound
		}
		return nil, fmt.Errorf("failed to read category: %w", err)
	}

	root := &domain.CategoryNode{ID: rootID}
	nodes := map[string]*domain.CategoryNode{rootID: root}
	level := []string{rootID}

	for d := 0; d < depth && len(level) > 0; d++ {
		iter := txn.Query(ctx, childCategoriesStatement(level))
		var next []string
		err := iter.Do(func(row *spanner.Row) error {
			var id string
			var parent spanner.NullString
			if err := row.Columns(&id, &parent); err != nil {
				return fmt.Errorf("failed to scan category: %w", err)
			}
			if _, seen := nodes[id]; seen {
				return nil
			}
			parentNode, ok := nodes[parent.StringVal]
			if !ok {
				return nil
			}
			child := &domain.CategoryNode{ID: id}
			nodes[id] = child
			parentNode.Children = append(parentNode.Children, child)
			next = append(next, id)
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("failed to read child categories: %w", err)
		}
		level = next
	}

	return root, nil
}

// QueryProducts runs the product projection and loads the requested child fields.
func (r *CatalogRepo) QueryProducts(ctx context.Context, q *contracts.ProductQuery) ([]*domain.Product, error) {
	txn := r.client.ReadOnlyTransaction()
	defer txn.Close()

	stmt, skipped := productStatement(q)
	if len(skipped) > 0 {
		r.logger.Debug("sort fields without a column ignored", zap.Strings("fields", skipped))
	}

	var products []*domain.Product
	byID := make(map[string]*domain.Product)

	iter := txn.Query(ctx, stmt)
	defer iter.Stop()
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate products: %w", err)
		}

		var data m_product.Data
		if err := row.ToStruct(&data); err != nil {
			return nil, fmt.Errorf("failed to parse product: %w", err)
		}

		p := &domain.Product{
			ID:        data.ProductID,
			Title:     data.Title,
			Status:    data.Status,
			CreatedAt: data.CreatedAt,
		}
		products = append(products, p)
		byID[p.ID] = p
	}

	if len(products) == 0 {
		return products, nil
	}
	ids := domain.ProductIDs(products)

	if wants(q.Fields, "categories") {
		if err := r.loadCategories(ctx, txn, ids, byID); err != nil {
			return nil, err
		}
	}
	if wants(q.Fields, "tags") {
		if err := r.loadTags(ctx, txn, ids, byID); err != nil {
			return nil, err
		}
	}
	if wants(q.Fields, "images") {
		if err := r.loadImages(ctx, txn, ids, byID); err != nil {
			return nil, err
		}
	}
	if wants(q.Fields, "variants") {
		pricing := q.Pricing
		if !wants(q.Fields, "variants.calculated_price") {
			pricing = domain.PricingContext{}
		}
		if err := r.loadVariants(ctx, txn, ids, byID, pricing); err != nil {
			return nil, err
		}
	}

	return products, nil
}

func (r *CatalogRepo) loadCategories(ctx context.Context, txn *spanner.ReadOnlyTransaction, ids []string, byID map[string]*domain.Product) error {
	err := txn.Query(ctx, productCategoriesStatement(ids)).Do(func(row *spanner.Row) error {
		var data m_product.CategoryData
		if err := row.ToStruct(&data); err != nil {
			return err
		}
		if p, ok := byID[data.ProductID]; ok {
			p.CategoryIDs = append(p.CategoryIDs, data.CategoryID)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to read product categories: %w", err)
	}
	return nil
}

func (r *CatalogRepo) loadTags(ctx context.Context, txn *spanner.ReadOnlyTransaction, ids []string, byID map[string]*domain.Product) error {
	err := txn.Query(ctx, productTagsStatement(ids)).Do(func(row *spanner.Row) error {
		var data m_product.TagData
		if err := row.ToStruct(&data); err != nil {
			return err
		}
		if p, ok := byID[data.ProductID]; ok {
			p.Tags = append(p.Tags, data.TagValue)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to read product tags: %w", err)
	}
	return nil
}

func (r *CatalogRepo) loadImages(ctx context.Context, txn *spanner.ReadOnlyTransaction, ids []string, byID map[string]*domain.Product) error {
	err := txn.Query(ctx, productImagesStatement(ids)).Do(func(row *spanner.Row) error {
		var data m_product.ImageData
		if err := row.ToStruct(&data); err != nil {
			return err
		}
		if p, ok := byID[data.ProductID]; ok {
			p.Images = append(p.Images, data.URL)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to read product images: %w", err)
	}
	return nil
}

// loadVariants reads variants and resolves their prices for the pricing context.
// Without a pricing context, or for variants without a matching price row,
// CalculatedPrice stays nil.
func (r *CatalogRepo) loadVariants(ctx context.Context, txn *spanner.ReadOnlyTransaction, ids []string, byID map[string]*domain.Product, pricing domain.PricingContext) error {
	type variantKey struct{ productID, variantID string }
	prices := make(map[variantKey]float64)

	if pricing.Validate() == nil {
		err := txn.Query(ctx, variantPricesStatement(ids, pricing.RegionID, pricing.CurrencyCode)).Do(func(row *spanner.Row) error {
			var data m_product_variant.PriceData
			if err := row.ToStruct(&data); err != nil {
				return err
			}
			price, err := priceOf(data.AmountNumerator, data.AmountDenominator)
			if err != nil {
				r.logger.Warn("skipping invalid variant price",
					zap.String("product_id", data.ProductID),
					zap.String("variant_id", data.VariantID),
					zap.Error(err))
				return nil
			}
			prices[variantKey{data.ProductID, data.VariantID}] = price
			return nil
		})
		if err != nil {
			return fmt.Errorf("failed to read variant prices: %w", err)
		}
	}

	err := txn.Query(ctx, variantsStatement(ids)).Do(func(row *spanner.Row) error {
		var data m_product_variant.Data
		if err := row.ToStruct(&data); err != nil {
			return err
		}
		p, ok := byID[data.ProductID]
		if !ok {
			return nil
		}
		v := domain.Variant{ID: data.VariantID, Title: data.Title}
		if price, ok := prices[variantKey{data.ProductID, data.VariantID}]; ok {
			v.CalculatedPrice = &price
		}
		p.Variants = append(p.Variants, v)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to read product variants: %w", err)
	}
	return nil
}

// ListAttributeRecords returns the attribute records of the given products.
func (r *CatalogRepo) ListAttributeRecords(ctx context.Context, productIDs []string) ([]domain.AttributeRecord, error) {
	if len(productIDs) == 0 {
		return nil, nil
	}

	iter := r.client.Single().Query(ctx, attributeRecordsStatement(productIDs))
	defer iter.Stop()

	var records []domain.AttributeRecord
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate attribute records: %w", err)
		}

		var rec domain.AttributeRecord
		var raw spanner.NullString
		if err := row.Columns(&rec.ProductID, &rec.TemplateID, &raw); err != nil {
			return nil, fmt.Errorf("failed to scan attribute record: %w", err)
		}
		if rec.Values, err = decodeValues(raw); err != nil {
			return nil, fmt.Errorf("product %s: %w", rec.ProductID, err)
		}
		records = append(records, rec)
	}

	return records, nil
}

// ListAttributeTemplates returns the templates matching the filter, ordered by id.
func (r *CatalogRepo) ListAttributeTemplates(ctx context.Context, filter contracts.TemplateFilter) ([]domain.AttributeTemplate, error) {
	iter := r.client.Single().Query(ctx, templatesStatement(filter))
	defer iter.Stop()

	var templates []domain.AttributeTemplate
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate attribute templates: %w", err)
		}

		var id, name string
		var attributes, optionGroups spanner.NullString
		if err := row.Columns(&id, &name, &attributes, &optionGroups); err != nil {
			return nil, fmt.Errorf("failed to scan attribute template: %w", err)
		}
		tpl, err := decodeTemplate(id, name, attributes, optionGroups)
		if err != nil {
			return nil, err
		}
		templates = append(templates, tpl)
	}

	return templates, nil
}

// wants reports whether the projection requests field or any of its sub-fields.
func wants(fields []string, field string) bool {
	return slices.ContainsFunc(fields, func(f string) bool {
		return f == field || len(f) > len(field) && f[:len(field)+1] == field+"."
	})
}
