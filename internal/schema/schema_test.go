package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	bulkHeaders = []string{
		"SKU", "Description", "Detailed Description", "Category", "Brand", "Material/Composition", "hs_code_8",
	}
	boardHeaders = []string{
		"id", "description", "detailedDescription", "category", "hs_code",
	}
)

func TestMissingColumns(t *testing.T) {
	t.Run("Should return nothing for a fitting header row", func(t *testing.T) {
		assert.Empty(t, BulkClassify.MissingColumns(bulkHeaders))
		assert.Empty(t, BoardOutput.MissingColumns(boardHeaders))
	})

	t.Run("Should list exactly the absent columns, sorted", func(t *testing.T) {
		headers := []string{"Description", "Brand", "hs_code"}
		assert.Equal(t,
			[]string{"Category", "Detailed Description", "Material/Composition"},
			BulkClassify.MissingColumns(headers),
		)
	})

	t.Run("Should match names case-sensitively", func(t *testing.T) {
		assert.Equal(t,
			[]string{"category", "description", "detailedDescription"},
			BoardOutput.MissingColumns([]string{"Description", "DetailedDescription", "Category"}),
		)
	})
}

func TestHSCodeColumn(t *testing.T) {
	t.Run("Should find the first column with the hs_code prefix", func(t *testing.T) {
		name, ok := HSCodeColumn([]string{"description", "hs_code_10", "hs_code_6"})
		require.True(t, ok)
		assert.Equal(t, "hs_code_10", name)
	})

	t.Run("Should not match a different case or a mid-name occurrence", func(t *testing.T) {
		_, ok := HSCodeColumn([]string{"HS_CODE", "my_hs_code"})
		assert.False(t, ok)
	})
}

func TestDetect(t *testing.T) {
	t.Run("Should select the bulk classify schema", func(t *testing.T) {
		d := Detect(bulkHeaders)
		require.Equal(t, Matched, d.Outcome)
		assert.Equal(t, "bulk-classify", d.Schema.Name)
	})

	t.Run("Should select the board output schema", func(t *testing.T) {
		d := Detect(boardHeaders)
		require.Equal(t, Matched, d.Outcome)
		assert.Equal(t, "board-output", d.Schema.Name)
	})

	t.Run("Should ignore the hs_code column when matching", func(t *testing.T) {
		d := Detect([]string{"description", "detailedDescription", "category"})
		assert.Equal(t, Matched, d.Outcome)
	})

	t.Run("Should report missing columns per schema when nothing fits", func(t *testing.T) {
		d := Detect([]string{"description", "category", "hs_code"})
		require.Equal(t, NoMatch, d.Outcome)
		assert.Equal(t, map[string][]string{
			"bulk-classify": {"Brand", "Category", "Description", "Detailed Description", "Material/Composition"},
			"board-output":  {"detailedDescription"},
		}, d.Missing)
	})

	t.Run("Should surface ambiguity instead of picking the first schema", func(t *testing.T) {
		headers := append(append([]string{}, bulkHeaders...), "description", "detailedDescription", "category")
		d := Detect(headers)
		require.Equal(t, Ambiguous, d.Outcome)
		assert.Equal(t, []string{"bulk-classify", "board-output"}, d.Names())
	})

	t.Run("Should honour candidate order for custom lists", func(t *testing.T) {
		only := Schema{Name: "only", UnnamedColumns: []string{"x"}}
		d := DetectAmong([]Schema{only}, []string{"x"})
		require.Equal(t, Matched, d.Outcome)
		assert.Equal(t, "only", d.Schema.Name)
		assert.Equal(t, "matched", d.Outcome.String())
	})
}
