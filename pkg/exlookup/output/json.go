// Package output serializes lookup results.
package output

import (
	"encoding/json"

	"github.com/heynesit/exlookup-go/pkg/exlookup/models"
)

// ToJSON serializes records as a JSON array. An empty record set serializes
// as "[]", not "null".
func ToJSON(records []models.Record, pretty bool) ([]byte, error) {
	if records == nil {
		records = []models.Record{}
	}
	if pretty {
		return json.MarshalIndent(records, "", "  ")
	}
	return json.Marshal(records)
}
