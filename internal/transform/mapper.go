package transform

import (
	"fmt"
	"strings"

	"github.com/ginjaninja78/customs-describer/internal/csvparser"
	"github.com/ginjaninja78/customs-describer/internal/schema"
	"github.com/ginjaninja78/customs-describer/internal/types"
)

// CategorySeparator splits a category path into its segments.
const CategorySeparator = " > "

// MapRow builds the classification request for one validated row.
//
// Name and description both come from the schema's description column.
// An empty category cell leaves Categories nil so the key is omitted.
func MapRow(row map[string]string, s schema.Schema, hsColumn string) (types.RequestItem, error) {
	hsCode, err := Apply(row[hsColumn], HSCodeActions)
	if err != nil {
		return types.RequestItem{}, err
	}

	description := row[s.DescriptionColumn]
	return types.RequestItem{
		Name:          description,
		Description:   description,
		Categories:    SplitCategories(row[s.CategoryColumn]),
		Configuration: types.Configuration{HSCodeProvided: hsCode},
	}, nil
}

// MapRows maps every row of the table; item i belongs to row i.
func MapRows(table *csvparser.Table, s schema.Schema, hsColumn string) ([]types.RequestItem, error) {
	items := make([]types.RequestItem, 0, table.RowCount())
	for i := range table.Rows {
		item, err := MapRow(table.Record(i), s, hsColumn)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
		items = append(items, item)
	}
	return items, nil
}

// SplitCategories splits a category path on CategorySeparator and trims each
// segment. It returns nil for an empty value.
func SplitCategories(value string) []string {
	if value == "" {
		return nil
	}
	parts := strings.Split(value, CategorySeparator)
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return parts
}
