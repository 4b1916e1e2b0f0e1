package repo

import (
	"fmt"

	"cloud.google.com/go/spanner"
	jsoniter "github.com/json-iterator/go"

	"github.com/light-bringer/procat-facets/internal/app/catalog/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// decodeValues parses an attribute_values document. Numbers decode as float64.
func decodeValues(raw spanner.NullString) (map[string]any, error) {
	values := map[string]any{}
	if !raw.Valid || raw.StringVal == "" || raw.StringVal == "null" {
		return values, nil
	}
	if err := json.UnmarshalFromString(raw.StringVal, &values); err != nil {
		return nil, fmt.Errorf("failed to decode attribute values: %w", err)
	}
	return values, nil
}

// decodeTemplate parses the JSON columns of an attribute template row.
func decodeTemplate(id, name string, attributes, optionGroups spanner.NullString) (domain.AttributeTemplate, error) {
	tpl := domain.AttributeTemplate{ID: id, Name: name}
	if attributes.Valid && attributes.StringVal != "null" {
		if err := json.UnmarshalFromString(attributes.StringVal, &tpl.Attributes); err != nil {
			return tpl, fmt.Errorf("failed to decode attributes of template %s: %w", id, err)
		}
	}
	if optionGroups.Valid && optionGroups.StringVal != "null" {
		if err := json.UnmarshalFromString(optionGroups.StringVal, &tpl.OptionGroups); err != nil {
			return tpl, fmt.Errorf("failed to decode option groups of template %s: %w", id, err)
		}
	}
	return tpl, nil
}

// priceOf converts a stored rational amount to major units.
func priceOf(numerator, denominator int64) (float64, error) {
	m, err := domain.NewMoney(numerator, denominator)
	if err != nil {
		return 0, fmt.Errorf("invalid price %d/%d: %w", numerator, denominator, err)
	}
	if !m.IsZero() && !m.IsPositive() {
		return 0, fmt.Errorf("negative price %s", m)
	}
	return m.Float64(), nil
}
