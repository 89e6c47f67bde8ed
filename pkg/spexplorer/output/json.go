// Package output serializes extracted documents.
package output

import (
	"encoding/json"

	"github.com/naveenbxyz/spexplorer/pkg/spexplorer/models"
)

// ToJSON serializes a document. Section payload order is preserved, so
// serialization is deterministic for a given document.
func ToJSON(doc *models.Document, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(doc, "", "  ")
	}
	return json.Marshal(doc)
}

// FromJSON deserializes a document produced by ToJSON.
func FromJSON(data []byte) (*models.Document, error) {
	var doc models.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}
