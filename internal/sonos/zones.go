package sonos

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/tessro/qrocodile/internal/core"
)

// zoneJSON mirrors one entry of the bridge's /zones response.
type zoneJSON struct {
	UUID        string       `json:"uuid"`
	Coordinator playerJSON   `json:"coordinator"`
	Members     []playerJSON `json:"members"`
}

type playerJSON struct {
	UUID     string `json:"uuid"`
	RoomName string `json:"roomName"`
	State    struct {
		PlaybackState string `json:"playbackState"`
	} `json:"state"`
}

// Zones lists the bridge's zone topology.
func (c *Client) Zones(ctx context.Context) ([]core.Zone, error) {
	body, err := c.call(ctx, GlobalPath("zones"))
	if err != nil {
		return nil, err
	}
	return parseZones(body)
}

// FindRoom returns the canonical room name matching room, compared
// case-insensitively against coordinators and members.
func FindRoom(zones []core.Zone, room string) (string, bool) {
	for _, z := range zones {
		if strings.EqualFold(z.Coordinator, room) {
			return z.Coordinator, true
		}
		for _, m := range z.Members {
			if strings.EqualFold(m, room) {
				return m, true
			}
		}
	}
	return "", false
}

// parseZones decodes the /zones JSON payload.
func parseZones(data []byte) ([]core.Zone, error) {
	var raw []zoneJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse zones: %w", err)
	}

	zones := make([]core.Zone, 0, len(raw))
	for _, z := range raw {
		zone := core.Zone{
			Coordinator: z.Coordinator.RoomName,
			State:       z.Coordinator.State.PlaybackState,
		}
		for _, m := range z.Members {
			zone.Members = append(zone.Members, m.RoomName)
		}
		zones = append(zones, zone)
	}
	return zones, nil
}
