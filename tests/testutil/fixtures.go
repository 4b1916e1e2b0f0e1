package testutil

import (
	"context"
	"fmt"
	"math"
	"testing"
	"time"

	"cloud.google.com/go/spanner"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/procat-facets/internal/app/catalog/domain"
	"github.com/light-bringer/procat-facets/internal/models/m_attribute_template"
	"github.com/light-bringer/procat-facets/internal/models/m_category"
	"github.com/light-bringer/procat-facets/internal/models/m_product"
	"github.com/light-bringer/procat-facets/internal/models/m_product_attribute"
	"github.com/light-bringer/procat-facets/internal/models/m_product_variant"
)

// Default pricing context of the fixtures.
const (
	RegionID     = "reg_eu"
	CurrencyCode = "eur"
)

// NewID returns a unique id with a readable prefix.
func NewID(prefix string) string {
	return prefix + "_" + uuid.NewString()[:8]
}

// ProductFixture describes a product to insert.
type ProductFixture struct {
	ID          string
	Title       string
	Status      string
	CategoryIDs []string
	Tags        []string
	Images      []string
	// Prices holds one price per variant in major units, for RegionID/CurrencyCode.
	Prices     []float64
	TemplateID string
	Attributes map[string]any
	// CreatedAt overrides the seed's creation time.
	CreatedAt time.Time
}

// Seed collects catalog mutations and applies them in one commit.
type Seed struct {
	mutations []*spanner.Mutation
	createdAt time.Time
}

// NewSeed creates an empty seed.
func NewSeed() *Seed {
	return &Seed{createdAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
}

// Category adds a category; an empty parentID makes it a root.
func (s *Seed) Category(id, parentID string) *Seed {
	data := &m_category.Data{CategoryID: id, Name: id, CreatedAt: s.createdAt}
	if parentID != "" {
		data.ParentCategoryID = spanner.NullString{StringVal: parentID, Valid: true}
	}
	s.mutations = append(s.mutations, m_category.NewModel().InsertMut(data))
	return s
}

// Product adds a product with its projections and returns its id.
func (s *Seed) Product(p ProductFixture) string {
	if p.ID == "" {
		p.ID = NewID("prod")
	}
	if p.Status == "" {
		p.Status = domain.StatusPublished
	}
	if p.Title == "" {
		p.Title = p.ID
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = s.createdAt
	}

	products := m_product.NewModel()
	s.mutations = append(s.mutations, products.InsertMut(&m_product.Data{
		ProductID: p.ID,
		Title:     p.Title,
		Status:    p.Status,
		CreatedAt: p.CreatedAt,
	}))
	for _, c := range p.CategoryIDs {
		s.mutations = append(s.mutations, products.CategoryMut(&m_product.CategoryData{ProductID: p.ID, CategoryID: c}))
	}
	for _, tag := range p.Tags {
		s.mutations = append(s.mutations, products.TagMut(&m_product.TagData{ProductID: p.ID, TagValue: tag}))
	}
	for i, url := range p.Images {
		s.mutations = append(s.mutations, products.ImageMut(&m_product.ImageData{ProductID: p.ID, Position: int64(i), URL: url}))
	}

	variants := m_product_variant.NewModel()
	for i, price := range p.Prices {
		variantID := fmt.Sprintf("%s_v%d", p.ID, i)
		s.mutations = append(s.mutations,
			variants.InsertMut(&m_product_variant.Data{ProductID: p.ID, VariantID: variantID, Title: variantID}),
			variants.PriceMut(&m_product_variant.PriceData{
				ProductID:         p.ID,
				VariantID:         variantID,
				RegionID:          RegionID,
				CurrencyCode:      CurrencyCode,
				AmountNumerator:   int64(math.Round(price * 100)),
				AmountDenominator: 100,
			}),
		)
	}

	if p.TemplateID != "" {
		s.mutations = append(s.mutations, m_product_attribute.NewModel().InsertMut(&m_product_attribute.Data{
			ProductID:       p.ID,
			TemplateID:      p.TemplateID,
			AttributeValues: m_product_attribute.Values(p.Attributes),
		}))
	}
	return p.ID
}

// Template adds an attribute template.
func (s *Seed) Template(tpl domain.AttributeTemplate) *Seed {
	data := &m_attribute_template.Data{
		TemplateID: tpl.ID,
		Name:       tpl.Name,
		Attributes: spanner.NullJSON{Value: tpl.Attributes, Valid: true},
	}
	if len(tpl.OptionGroups) > 0 {
		data.OptionGroups = spanner.NullJSON{Value: tpl.OptionGroups, Valid: true}
	}
	s.mutations = append(s.mutations, m_attribute_template.NewModel().InsertMut(data))
	return s
}

// Apply writes the collected mutations.
func (s *Seed) Apply(t *testing.T, client *spanner.Client) {
	t.Helper()
	_, err := client.Apply(context.Background(), s.mutations)
	require.NoError(t, err, "failed to apply seed")
}

// ApplyMutations writes mutations built outside a Seed.
func ApplyMutations(t *testing.T, client *spanner.Client, muts ...*spanner.Mutation) {
	t.Helper()
	_, err := client.Apply(context.Background(), muts)
	require.NoError(t, err, "failed to apply mutations")
}
