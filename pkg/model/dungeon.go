package model

import (
	"encoding/json"
	"fmt"

	"github.com/dshills/dungeoncheck/pkg/apperr"
)

// Dungeon is the Unified Dungeon Model (§3): the single currency passed
// between the format adapter registry, the spatial inference engine, the
// metric rule set, and the quality assessor.
type Dungeon struct {
	Header Header  `json:"header"`
	Levels []Level `json:"levels"`
}

// FromDocument constructs a Dungeon from a raw unified-format JSON document
// (§4.A: "from_document(raw) → constructs or raises InvalidInput when
// required fields missing"). It does not run spatial inference or the
// hard-invariant check (I1) — call Validate() afterward for that.
func FromDocument(raw []byte) (*Dungeon, error) {
	var d Dungeon
	if err := json.Unmarshal(raw, &d); err != nil {
		return nil, apperr.InvalidInput("document is not valid JSON").WithField("$")
	}

	if d.Header.SchemaName == "" {
		return nil, apperr.InvalidInput("header.schemaName is required").WithField("header.schemaName")
	}
	if len(d.Levels) == 0 {
		return nil, apperr.InvalidInput("at least one level is required").WithField("levels")
	}
	for i, lvl := range d.Levels {
		if lvl.ID == "" {
			return nil, apperr.InvalidInput("level id is required").WithField(fmt.Sprintf("levels[%d].id", i))
		}
		for j, r := range lvl.Rooms {
			if err := r.Validate(); err != nil {
				return nil, apperr.InvalidInput(err.Error()).WithField(fmt.Sprintf("levels[%d].rooms[%d]", i, j))
			}
		}
		for j, c := range lvl.Corridors {
			if err := c.Validate(); err != nil {
				return nil, apperr.InvalidInput(err.Error()).WithField(fmt.Sprintf("levels[%d].corridors[%d]", i, j))
			}
		}
		for j, conn := range lvl.Connections {
			if err := conn.Validate(); err != nil {
				return nil, apperr.InvalidInput(err.Error()).WithField(fmt.Sprintf("levels[%d].connections[%d]", i, j))
			}
		}
	}

	applyGridDefault(&d)
	return &d, nil
}

// applyGridDefault enforces I5: grid size defaults to 5ft square when absent.
func applyGridDefault(d *Dungeon) {
	if d.Header.Grid.Size == 0 {
		d.Header.Grid.Size = DefaultGridSize
		if d.Header.Grid.Type == "" {
			d.Header.Grid.Type = "square"
		}
		if d.Header.Grid.Unit == "" {
			d.Header.Grid.Unit = "ft"
		}
	}
}

// Validate checks the hard invariant I1 (every connection endpoint
// resolves to an existing room or corridor in the same level) and applies
// I4 (elements with no resolvable nearest room are dropped with a
// warning). Returns the list of I4 warnings, or an *apperr.Error of kind
// InvalidModel if I1 is violated.
func (d *Dungeon) Validate() ([]string, error) {
	var warnings []string

	for li, lvl := range d.Levels {
		for _, conn := range lvl.Connections {
			if _, ok := lvl.NodeByID(conn.FromRoom); !ok {
				return nil, apperr.InvalidModel(fmt.Sprintf(
					"level %s: connection %s: from_room %q does not exist", lvl.ID, conn.ID, conn.FromRoom))
			}
			if _, ok := lvl.NodeByID(conn.ToRoom); !ok {
				return nil, apperr.InvalidModel(fmt.Sprintf(
					"level %s: connection %s: to_room %q does not exist", lvl.ID, conn.ID, conn.ToRoom))
			}
		}
		for _, door := range lvl.Doors {
			if _, ok := lvl.NodeByID(door.Between.FromRoom); !ok {
				return nil, apperr.InvalidModel(fmt.Sprintf(
					"level %s: door %s: between.from_room %q does not exist", lvl.ID, door.ID, door.Between.FromRoom))
			}
			if _, ok := lvl.NodeByID(door.Between.ToRoom); !ok {
				return nil, apperr.InvalidModel(fmt.Sprintf(
					"level %s: door %s: between.to_room %q does not exist", lvl.ID, door.ID, door.Between.ToRoom))
			}
		}

		kept := lvl.GameElements[:0:0]
		for _, el := range lvl.GameElements {
			roomID, ok := nearestRoomID(lvl, el.Position)
			if !ok {
				warnings = append(warnings, fmt.Sprintf(
					"level %s: game_element %s: no room could be determined for position %+v, dropped", lvl.ID, el.ID, el.Position))
				continue
			}
			el.RoomID = roomID
			kept = append(kept, el)
		}
		d.Levels[li].GameElements = kept
	}

	return warnings, nil
}

// nearestRoomID finds the room whose bounding rectangle contains p, or
// failing that, the room with the closest centroid. Corridors are not
// candidates: I4 speaks of "nearest room", and game elements are always
// placed inside rooms in every adapter this core ships.
func nearestRoomID(lvl Level, p Point) (string, bool) {
	if len(lvl.Rooms) == 0 {
		return "", false
	}
	for _, r := range lvl.Rooms {
		rect := r.Rect()
		if p.X >= rect.MinX() && p.X <= rect.MaxX() && p.Y >= rect.MinY() && p.Y <= rect.MaxY() {
			return r.ID, true
		}
	}
	bestID := ""
	bestDist := -1.0
	for _, r := range lvl.Rooms {
		d := p.Dist(r.Rect().Centroid())
		if bestDist < 0 || d < bestDist {
			bestDist = d
			bestID = r.ID
		}
	}
	return bestID, bestID != ""
}
