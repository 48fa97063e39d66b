package cli

import (
	"context"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/tessro/qrocodile/internal/core"
	"github.com/tessro/qrocodile/internal/session"
	"github.com/tessro/qrocodile/internal/sonos"
)

var zonesCmd = &cobra.Command{
	Use:   "zones",
	Short: "List the rooms known to the Sonos bridge",
	Long: `List zones reported by node-sonos-http-api. The room the dispatcher
would start in is marked.`,
	Args: cobra.NoArgs,
	RunE: runZones,
}

func init() {
	rootCmd.AddCommand(zonesCmd)
}

type zoneView struct {
	core.Zone
	Current bool `json:"current"`
}

func runZones(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), cfg.Sonos.RequestTimeout()+time.Second)
	defer cancel()

	player := sonos.NewClient(cfg.Sonos.BaseURL(), cfg.Sonos.RequestTimeout(), nil)
	zones, err := player.Zones(ctx)
	if err != nil {
		return err
	}

	stored, _ := session.NewRoomStore(cfg.State.RoomPath()).Load()
	current := session.StartRoom("", stored, cfg.Sonos.DefaultRoom)

	views := make([]zoneView, len(zones))
	for i, z := range zones {
		views[i] = zoneView{Zone: z, Current: z.HasRoom(current)}
	}

	if JSONOutput() {
		return writeJSON(os.Stdout, views)
	}

	table := NewTable("", "COORDINATOR", "STATE", "MEMBERS")
	for _, v := range views {
		table.Row(StatusIcon(v.Current), v.Coordinator, strings.ToLower(v.State),
			TruncateString(strings.Join(v.Members, ", "), 60))
	}
	table.Flush()
	return nil
}
