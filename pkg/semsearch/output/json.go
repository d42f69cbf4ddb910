// Package output serializes expansion results.
package output

import (
	"encoding/json"

	"github.com/anant0059/sementic-search-spreadsheets/pkg/semsearch/models"
)

// ToJSON marshals v to JSON, optionally indented.
func ToJSON(v interface{}, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(v, "", "  ")
	}
	return json.Marshal(v)
}

// ItemsToJSON marshals items, emitting an empty array instead of null when
// there are none.
func ItemsToJSON(items []models.Item, pretty bool) ([]byte, error) {
	if items == nil {
		items = []models.Item{}
	}
	return ToJSON(items, pretty)
}
