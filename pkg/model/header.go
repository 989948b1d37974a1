package model

// UnifiedSchemaName is the reserved header.schemaName value that marks a
// document as already being in the unified format (§4.B: the "unified"
// format tag is returned exactly when this matches).
const UnifiedSchemaName = "dnd-dungeon-unified"

// Grid describes the coordinate system a dungeon's geometry is expressed in.
type Grid struct {
	Type string  `json:"type" yaml:"type"`
	Size float64 `json:"size" yaml:"size"`
	Unit string  `json:"unit" yaml:"unit"`
}

// DefaultGridSize is applied when a document omits grid.size (I5: "Grid
// size defaults to 5 ft square when absent").
const DefaultGridSize = 5.0

// Header carries the document-level metadata common to every dungeon.
type Header struct {
	SchemaName    string `json:"schemaName" yaml:"schemaName"`
	SchemaVersion string `json:"schemaVersion" yaml:"schemaVersion"`
	Name          string `json:"name" yaml:"name"`
	Author        string `json:"author" yaml:"author"`
	Description   string `json:"description" yaml:"description"`
	Grid          Grid   `json:"grid" yaml:"grid"`
}

// IsUnified reports whether this header marks the document as already
// being in the unified format (the reserved "unified" format tag in §4.B).
func (h Header) IsUnified() bool {
	return h.SchemaName == UnifiedSchemaName
}
