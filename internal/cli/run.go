package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/tessro/qrocodile/internal/core"
	"github.com/tessro/qrocodile/internal/dispatch"
	qerrors "github.com/tessro/qrocodile/internal/errors"
	"github.com/tessro/qrocodile/internal/logging"
	"github.com/tessro/qrocodile/internal/session"
	"github.com/tessro/qrocodile/internal/sonos"
	"github.com/tessro/qrocodile/internal/source"
	"github.com/tessro/qrocodile/internal/spotify/auth"
	"github.com/tessro/qrocodile/internal/spotify/catalog"
	"github.com/tessro/qrocodile/internal/spotify/client"
)

var (
	runDefaultRoom  string
	runLineInSource string
	runHostname     string
	runSkipLoad     bool
	runDebugFile    string
	runNoSpeech     bool
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Scan cards and dispatch them to Sonos",
	Long: `Start the scanner and turn every card it sees into Sonos commands.

With --debug-file, tokens are replayed from a text file instead: one token
per line, '#' starts a comment, blank lines are ignored.`,
	Args: cobra.NoArgs,
	RunE: runRun,
}

func init() {
	runCmd.Flags().StringVar(&runDefaultRoom, "default-room", "", "room to start in (overrides the last used room)")
	runCmd.Flags().StringVar(&runLineInSource, "linein-source", "", "room used as the line-in source for the turntable card")
	runCmd.Flags().StringVar(&runHostname, "hostname", "", "host running node-sonos-http-api")
	runCmd.Flags().BoolVar(&runSkipLoad, "skip-load", false, "skip indexing the music library on startup")
	runCmd.Flags().StringVar(&runDebugFile, "debug-file", "", "read tokens from a file instead of launching the scanner")
	runCmd.Flags().BoolVar(&runNoSpeech, "no-speech", false, "disable spoken acknowledgments")

	rootCmd.AddCommand(runCmd)
}

func runRun(cmd *cobra.Command, args []string) error {
	if runHostname != "" {
		cfg.Sonos.Host = runHostname
	}
	if runLineInSource != "" {
		cfg.Sonos.LineInSource = runLineInSource
	}

	logger, err := newLogger()
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	lock := session.NewLock(cfg.State.LockPath())
	if err := lock.Acquire(); err != nil {
		return err
	}
	defer func() {
		if err := lock.Release(); err != nil {
			logger.Warn("failed to release lock", zap.Error(err))
		}
	}()

	store := session.NewRoomStore(cfg.State.RoomPath())
	stored, err := store.Load()
	if err != nil {
		logger.Warn("ignoring room record", zap.String("path", store.Path()), zap.Error(err))
	}
	room := session.StartRoom(runDefaultRoom, stored, cfg.Sonos.DefaultRoom)
	logger.Info("initial room", zap.String("room", room), zap.Bool("from_record", runDefaultRoom == "" && stored != ""))

	// Handle Ctrl+C gracefully
	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	go func() {
		select {
		case sig := <-sigCh:
			logger.Info("stopping", zap.String("signal", sig.String()))
			cancel()
		case <-ctx.Done():
		}
	}()

	src, err := openSource(logger)
	if err != nil {
		return err
	}

	player := sonos.NewClient(cfg.Sonos.BaseURL(), cfg.Sonos.RequestTimeout(), logger.Named("sonos"))
	checkRoom(ctx, player, room, logger)

	d := dispatch.New(player, newCatalog(ctx, logger), session.New(room), store, dispatch.Options{
		LineInSource: cfg.Sonos.LineInSource,
		Speech:       cfg.Speech.On() && !runNoSpeech,
		SkipLoad:     runSkipLoad,
	}, logger.Named("dispatch"))

	if res := d.Start(ctx); res.HasErrors() {
		logger.Warn("startup sequence incomplete", zap.String("errors", res.ErrorSummary()))
	}

	return d.Run(ctx, src)
}

// openSource starts the scanner, or replays a script when --debug-file is set.
func openSource(logger *zap.Logger) (source.Source, error) {
	if runDebugFile != "" {
		script, err := source.OpenScript(runDebugFile, cfg.Script.Delay())
		if err != nil {
			return nil, err
		}
		logger.Info("replaying script", zap.String("path", runDebugFile), zap.Int("tokens", script.Len()))
		return script, nil
	}

	return source.StartScanner(cfg.Scanner.Command, cfg.Scanner.Args, cfg.Scanner.PrefixWidth, logger.Named("scanner"))
}

// newCatalog returns a Spotify catalog, or nil when no credentials are
// configured. Remote albums, artists, and playlists are then rejected.
func newCatalog(ctx context.Context, logger *zap.Logger) core.Catalog {
	if !cfg.Spotify.Configured() {
		logger.Warn("spotify credentials not configured; album, artist, and playlist cards are disabled",
			zap.String("suggestion", qerrors.GetSuggestion(qerrors.ErrCatalogNotConfigured)))
		return nil
	}

	authCfg := auth.NewConfig(cfg.Spotify.ClientID, cfg.Spotify.ClientSecret)
	authCfg.Timeout = cfg.Spotify.RequestTimeout()

	c := client.New(authCfg.TokenSource(ctx), cfg.Spotify.RequestTimeout())
	c.SetVerbose(verbose, logging.Printf(logger.Named("spotify")))
	return catalog.New(c, cfg.Spotify.Market, logger.Named("catalog"))
}

// checkRoom warns when the bridge does not know the starting room.
func checkRoom(ctx context.Context, player *sonos.Client, room string, logger *zap.Logger) {
	zones, err := player.Zones(ctx)
	if err != nil {
		if !errors.Is(err, context.Canceled) {
			logger.Warn("could not list zones", zap.Error(err),
				zap.String("suggestion", qerrors.GetSuggestion(err)))
		}
		return
	}
	if _, ok := sonos.FindRoom(zones, room); !ok {
		logger.Warn("room not found on bridge", zap.String("room", room),
			zap.String("suggestion", qerrors.GetSuggestion(fmt.Errorf("%w: %s", qerrors.ErrRoomNotFound, room))))
	}
}
