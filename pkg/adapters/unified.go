package adapters

import (
	"encoding/json"

	"github.com/dshills/dungeoncheck/pkg/model"
)

// UnifiedFormatName is the registration name of the passthrough adapter for
// documents already in the unified schema (§3, §4.B: "the unified format is
// both a valid input and the only output").
const UnifiedFormatName = "unified"

func init() {
	Register(UnifiedFormatName, detectUnified, convertUnified)
}

// detectUnified sniffs header.schemaName without fully parsing the document.
func detectUnified(raw []byte) bool {
	var probe struct {
		Header struct {
			SchemaName string `json:"schemaName"`
		} `json:"header"`
	}
	if err := json.Unmarshal(raw, &probe); err != nil {
		return false
	}
	return probe.Header.SchemaName == model.UnifiedSchemaName
}

func convertUnified(raw []byte) (*model.Dungeon, error) {
	return model.FromDocument(raw)
}
