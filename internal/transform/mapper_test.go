package transform

import (
	"encoding/json"
	"testing"

	"github.com/ginjaninja78/customs-describer/internal/csvparser"
	"github.com/ginjaninja78/customs-describer/internal/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapRow(t *testing.T) {
	t.Run("Should duplicate the description and normalize the HS code", func(t *testing.T) {
		row := map[string]string{
			"description": "Digital temperature sensor",
			"category":    "Electronics > Sensors > Temperature",
			"hs_code_10":  "1234.56.78",
		}

		item, err := MapRow(row, schema.BoardOutput, "hs_code_10")
		require.NoError(t, err)
		assert.Equal(t, "Digital temperature sensor", item.Name)
		assert.Equal(t, "Digital temperature sensor", item.Description)
		assert.Equal(t, []string{"Electronics", "Sensors", "Temperature"}, item.Categories)
		assert.Equal(t, "123456", item.Configuration.HSCodeProvided)
	})

	t.Run("Should omit categories when the cell is empty", func(t *testing.T) {
		row := map[string]string{"description": "Fuse", "category": "", "hs_code": "8536"}

		item, err := MapRow(row, schema.BoardOutput, "hs_code")
		require.NoError(t, err)
		assert.Nil(t, item.Categories)

		raw, err := json.Marshal(item)
		require.NoError(t, err)
		assert.JSONEq(t,
			`{"name":"Fuse","description":"Fuse","configuration":{"hsCodeProvided":"8536"}}`,
			string(raw),
		)
	})

	t.Run("Should pass short codes through unpadded and keep leading zeros", func(t *testing.T) {
		row := map[string]string{"Description": "Horse", "Category": "Animals", "hs_code": "01.01"}

		item, err := MapRow(row, schema.BulkClassify, "hs_code")
		require.NoError(t, err)
		assert.Equal(t, "0101", item.Configuration.HSCodeProvided)
		assert.Equal(t, "Horse", item.Name)
		assert.Equal(t, []string{"Animals"}, item.Categories)
	})

	t.Run("Should not validate that the code is numeric", func(t *testing.T) {
		row := map[string]string{"description": "x", "hs_code": "AB.CD.EF.GH"}

		item, err := MapRow(row, schema.BoardOutput, "hs_code")
		require.NoError(t, err)
		assert.Equal(t, "ABCDEF", item.Configuration.HSCodeProvided)
	})
}

func TestMapRows(t *testing.T) {
	t.Run("Should preserve row order", func(t *testing.T) {
		table := &csvparser.Table{
			Headers: []string{"description", "category", "hs_code"},
			Rows: [][]string{
				{"a", "", "111111"},
				{"b", "", "222222"},
				{"c", "", "333333"},
			},
		}

		items, err := MapRows(table, schema.BoardOutput, "hs_code")
		require.NoError(t, err)
		require.Len(t, items, 3)
		for i, want := range []string{"a", "b", "c"} {
			assert.Equal(t, want, items[i].Description)
		}
	})
}

func TestSplitCategories(t *testing.T) {
	t.Run("Should split on the literal separator only", func(t *testing.T) {
		assert.Equal(t, []string{"A>B", "C"}, SplitCategories("A>B > C"))
	})

	t.Run("Should trim each segment", func(t *testing.T) {
		assert.Equal(t, []string{"A", "B"}, SplitCategories(" A  >  B "))
	})
}

func TestApplyAction(t *testing.T) {
	t.Run("Should truncate by characters", func(t *testing.T) {
		out, err := ApplyAction("ÄÖÜ123", Action{Type: "truncate", Value: "4"})
		require.NoError(t, err)
		assert.Equal(t, "ÄÖÜ1", out)
	})

	t.Run("Should reject unknown actions", func(t *testing.T) {
		_, err := ApplyAction("x", Action{Type: "uppercase"})
		assert.ErrorContains(t, err, "unknown transformation type")
	})

	t.Run("Should reject a bad truncate length", func(t *testing.T) {
		_, err := Apply("x", []Action{{Type: "truncate", Value: "six"}})
		assert.ErrorContains(t, err, "transformation 'truncate' failed")
	})
}
