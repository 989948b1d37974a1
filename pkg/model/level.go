package model

// MapSize is the overall grid extent of a level.
type MapSize struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Level is one floor/area of a dungeon (§3: "one or more per dungeon").
type Level struct {
	ID            string        `json:"id"`
	Name          string        `json:"name"`
	Map           MapSize       `json:"map"`
	Rooms         []Space       `json:"rooms"`
	Corridors     []Space       `json:"corridors,omitempty"`
	Connections   []Connection  `json:"connections"`
	Doors         []Door        `json:"doors,omitempty"`
	GameElements  []GameElement `json:"game_elements,omitempty"`
}

// NodeKind distinguishes rooms from corridors when a rule treats them
// differently (§9 Open Question: corridors are first-class graph nodes by
// default here, but door/treasure rules that say "rooms" explicitly
// exclude corridor nodes).
type NodeKind int

const (
	NodeRoom NodeKind = iota
	NodeCorridor
)

// Node is a room or corridor viewed purely as a graph node, tagging which
// collection it came from.
type Node struct {
	Space
	Kind NodeKind
}

// Nodes returns every room and corridor in the level as graph nodes, rooms
// first in document order followed by corridors in document order — a
// stable order so id-based tie-breaks (§4.C entrance/exit rule 3: "smallest
// id") are deterministic regardless of map iteration.
func (l *Level) Nodes() []Node {
	nodes := make([]Node, 0, len(l.Rooms)+len(l.Corridors))
	for _, r := range l.Rooms {
		nodes = append(nodes, Node{Space: r, Kind: NodeRoom})
	}
	for _, c := range l.Corridors {
		nodes = append(nodes, Node{Space: c, Kind: NodeCorridor})
	}
	return nodes
}

// NodeByID returns the node with the given id, and whether it was found.
func (l *Level) NodeByID(id string) (Node, bool) {
	for _, r := range l.Rooms {
		if r.ID == id {
			return Node{Space: r, Kind: NodeRoom}, true
		}
	}
	for _, c := range l.Corridors {
		if c.ID == id {
			return Node{Space: c, Kind: NodeCorridor}, true
		}
	}
	return Node{}, false
}

// RoomByID returns the room (not corridor) with the given id.
func (l *Level) RoomByID(id string) (*Space, bool) {
	for i := range l.Rooms {
		if l.Rooms[i].ID == id {
			return &l.Rooms[i], true
		}
	}
	return nil, false
}
