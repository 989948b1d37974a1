package model

import "fmt"

// Shape is the geometric primitive a room or corridor footprint uses.
type Shape string

const (
	ShapeRectangle Shape = "rectangle"
	ShapeCircle    Shape = "circle"
)

// Space is the shared shape of a Room and a Corridor (§3: "corridors: same
// shape as rooms; semantically narrow/thin nodes"). Both are graph nodes
// for the rule set; NodeKind on the owning collection distinguishes them
// where a rule cares (§4.D preamble, §9 Open Question on corridor nodes).
type Space struct {
	ID          string `json:"id"`
	Shape       Shape  `json:"shape"`
	Position    Point  `json:"position"`
	Size        Size   `json:"size"`
	Name        string `json:"name,omitempty"`
	Description string `json:"description,omitempty"`
	IsEntrance  bool   `json:"is_entrance,omitempty"`
	IsExit      bool   `json:"is_exit,omitempty"`

	// Difficulty is a supplemental, optional field (not in the authoritative
	// §6 wire schema) feeding the non-scored pacing diagnostic. Absent
	// (zero value) is treated as the neutral midpoint 0.5 by the pacing
	// diagnostic, never as "no difficulty" — see SPEC_FULL.md.
	Difficulty *float64 `json:"difficulty,omitempty"`
}

// Rect returns the axis-aligned bounding rectangle of the space. For
// circles, Size is still the bounding box (diameter x diameter) — the
// rectangle/circle distinction only matters for rendering, which is out
// of the core's scope (§1).
func (s Space) Rect() Rect {
	return Rect{Position: s.Position, Size: s.Size}
}

// Validate checks structural well-formedness of a single space.
func (s Space) Validate() error {
	if s.ID == "" {
		return fmt.Errorf("space: id cannot be empty")
	}
	if s.Shape != ShapeRectangle && s.Shape != ShapeCircle {
		return fmt.Errorf("space %s: shape must be 'rectangle' or 'circle', got %q", s.ID, s.Shape)
	}
	if s.Size.Width <= 0 || s.Size.Height <= 0 {
		return fmt.Errorf("space %s: size must be positive, got %+v", s.ID, s.Size)
	}
	return nil
}

// DifficultyOrDefault returns Difficulty if set, else the neutral midpoint.
func (s Space) DifficultyOrDefault() float64 {
	if s.Difficulty != nil {
		return *s.Difficulty
	}
	return 0.5
}
