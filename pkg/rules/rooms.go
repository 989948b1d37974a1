package rules

import "github.com/dshills/dungeoncheck/pkg/model"

// entranceID returns the id of the room flagged is_entrance, if any.
func entranceID(lvl *model.Level) (string, bool) {
	for _, r := range lvl.Rooms {
		if r.IsEntrance {
			return r.ID, true
		}
	}
	return "", false
}

// exitID returns the id of the room flagged is_exit, if any.
func exitID(lvl *model.Level) (string, bool) {
	for _, r := range lvl.Rooms {
		if r.IsExit {
			return r.ID, true
		}
	}
	return "", false
}
