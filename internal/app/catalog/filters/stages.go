package filters

import (
	"sort"
	"strings"

	"github.com/light-bringer/procat-facets/internal/app/catalog/catalogquery"
	"github.com/light-bringer/procat-facets/internal/app/catalog/contracts"
	"github.com/light-bringer/procat-facets/internal/app/catalog/domain"
)

var pricing = domain.NewPricingCalculator()

// Search keeps products whose title contains query, case-insensitively.
func Search(query string) Stage {
	needle := strings.ToLower(strings.TrimSpace(query))
	return func(in Result) Result {
		if needle == "" {
			return in
		}
		return keep(in.Products, func(p *domain.Product) bool {
			return strings.Contains(strings.ToLower(p.Title), needle)
		})
	}
}

// Price keeps products with at least one variant priced within bounds.
func Price(bounds *domain.PriceBounds) Stage {
	return func(in Result) Result {
		if !bounds.IsSet() {
			return in
		}
		return keep(in.Products, func(p *domain.Product) bool {
			return pricing.HasPriceWithin(p, bounds)
		})
	}
}

// Attributes keeps products matching every attribute key (AND) with any of
// that key's values (OR), using exact string equality.
func Attributes(filters map[string][]string) Stage {
	return func(in Result) Result {
		if len(filters) == 0 {
			return in
		}
		matched := MatchAttributes(in.Products, filters)
		return keep(in.Products, func(p *domain.Product) bool {
			_, ok := matched[p.ID]
			return ok
		})
	}
}

// MatchAttributes builds a matching id set per attribute key and intersects them.
func MatchAttributes(products []*domain.Product, filters map[string][]string) map[string]struct{} {
	var result map[string]struct{}

	for _, key := range domain.SortedKeys(filters) {
		wanted := make(map[string]struct{}, len(filters[key]))
		for _, v := range filters[key] {
			wanted[v] = struct{}{}
		}

		ids := make(map[string]struct{})
		for _, p := range products {
			raw, ok := p.Attributes[key]
			if !ok {
				continue
			}
			for _, v := range domain.ValueStrings(raw) {
				if _, hit := wanted[v]; hit {
					ids[p.ID] = struct{}{}
					break
				}
			}
		}

		if result == nil {
			result = ids
		} else {
			result = intersect(result, ids)
		}
		if len(result) == 0 {
			return result
		}
	}

	return result
}

func intersect(a, b map[string]struct{}) map[string]struct{} {
	out := make(map[string]struct{})
	for id := range a {
		if _, ok := b[id]; ok {
			out[id] = struct{}{}
		}
	}
	return out
}

// Tags keeps products carrying any of the requested tags.
func Tags(tags []string) Stage {
	return func(in Result) Result {
		if len(tags) == 0 {
			return in
		}
		wanted := make(map[string]struct{}, len(tags))
		for _, t := range tags {
			wanted[t] = struct{}{}
		}
		return keep(in.Products, func(p *domain.Product) bool {
			for _, t := range p.Tags {
				if _, ok := wanted[t]; ok {
					return true
				}
			}
			return false
		})
	}
}

// SortByPrice orders products by their lowest variant price when the sort
// specification contains price or -price. Unpriced products always sort last.
func SortByPrice(spec string) Stage {
	direction, ok := priceDirection(spec)
	return func(in Result) Result {
		if !ok || len(in.Products) < 2 {
			return in
		}

		sorted := append([]*domain.Product(nil), in.Products...)
		sort.SliceStable(sorted, func(i, j int) bool {
			pi, iok := pricing.MinPrice(sorted[i])
			pj, jok := pricing.MinPrice(sorted[j])
			switch {
			case iok && jok:
				if direction == contracts.Desc {
					return pi > pj
				}
				return pi < pj
			case iok:
				return true
			default:
				return false
			}
		})

		return Result{Products: sorted, TotalCount: in.TotalCount}
	}
}

func priceDirection(spec string) (contracts.Direction, bool) {
	for _, term := range catalogquery.ParseSort(spec) {
		if term.Field == "price" {
			return term.Direction, true
		}
	}
	return contracts.Asc, false
}

// Paginate slices [offset, offset+limit). TotalCount keeps the pre-pagination size.
// A non-positive limit returns everything from offset.
func Paginate(offset, limit int) Stage {
	return func(in Result) Result {
		if offset <= 0 && limit <= 0 {
			return in
		}
		n := len(in.Products)
		start := min(max(offset, 0), n)
		end := n
		if limit > 0 && start+limit < n {
			end = start + limit
		}
		return Result{Products: in.Products[start:end], TotalCount: in.TotalCount}
	}
}
