package model

import (
	"encoding/json"
	"fmt"
)

// Connection is an edge between two rooms/corridors in the same level
// (§3). Endpoints reference either a room or a corridor id (I1).
type Connection struct {
	ID            string  `json:"id"`
	FromRoom      string  `json:"from_room"`
	ToRoom        string  `json:"to_room"`
	DoorType      string  `json:"door_type,omitempty"`
	DoorID        string  `json:"door_id,omitempty"`
	Bidirectional bool    `json:"bidirectional"`
	Inferred      bool    `json:"inferred"`
	Confidence    float64 `json:"confidence"`
}

// connectionWire mirrors Connection but lets Bidirectional distinguish
// "absent" from "explicitly false" so the documented default of true
// (§3: "bidirectional (default true)") applies only when the key is
// omitted entirely.
type connectionWire struct {
	ID            string   `json:"id"`
	FromRoom      string   `json:"from_room"`
	ToRoom        string   `json:"to_room"`
	DoorType      string   `json:"door_type,omitempty"`
	DoorID        string   `json:"door_id,omitempty"`
	Bidirectional *bool    `json:"bidirectional,omitempty"`
	Inferred      bool     `json:"inferred"`
	Confidence    float64  `json:"confidence"`
}

// UnmarshalJSON applies the bidirectional-default-true rule.
func (c *Connection) UnmarshalJSON(data []byte) error {
	var w connectionWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	c.ID = w.ID
	c.FromRoom = w.FromRoom
	c.ToRoom = w.ToRoom
	c.DoorType = w.DoorType
	c.DoorID = w.DoorID
	c.Inferred = w.Inferred
	c.Confidence = w.Confidence
	if w.Bidirectional == nil {
		c.Bidirectional = true
	} else {
		c.Bidirectional = *w.Bidirectional
	}
	return nil
}

// MarshalJSON emits bidirectional explicitly so round-trips are stable.
func (c Connection) MarshalJSON() ([]byte, error) {
	b := c.Bidirectional
	w := connectionWire{
		ID: c.ID, FromRoom: c.FromRoom, ToRoom: c.ToRoom,
		DoorType: c.DoorType, DoorID: c.DoorID,
		Bidirectional: &b, Inferred: c.Inferred, Confidence: c.Confidence,
	}
	return json.Marshal(w)
}

// Validate checks structural well-formedness of the connection in isolation
// (endpoint resolution against a level is checked by Dungeon.Validate, I1).
func (c Connection) Validate() error {
	if c.ID == "" {
		return fmt.Errorf("connection: id cannot be empty")
	}
	if c.FromRoom == "" || c.ToRoom == "" {
		return fmt.Errorf("connection %s: from_room and to_room must both be set", c.ID)
	}
	if c.Confidence < 0 || c.Confidence > 1 {
		return fmt.Errorf("connection %s: confidence must be in [0,1], got %f", c.ID, c.Confidence)
	}
	return nil
}

// Endpoints returns an unordered pair key usable for edge dedup (I2:
// "duplicate edges are collapsed"), independent of direction and of which
// endpoint was listed first.
func (c Connection) Endpoints() (a, b string) {
	if c.FromRoom <= c.ToRoom {
		return c.FromRoom, c.ToRoom
	}
	return c.ToRoom, c.FromRoom
}
