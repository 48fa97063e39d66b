package core

// Zone is a group of rooms playing in sync, as reported by the playback bridge.
type Zone struct {
	Coordinator string   `json:"coordinator"`
	Members     []string `json:"members"`
	State       string   `json:"state"`
}

// HasRoom reports whether room is the coordinator or a member of the zone.
func (z Zone) HasRoom(room string) bool {
	if z.Coordinator == room {
		return true
	}
	for _, m := range z.Members {
		if m == room {
			return true
		}
	}
	return false
}
