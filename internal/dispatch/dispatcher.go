// Package dispatch turns classified card tokens into playback bridge
// requests.
package dispatch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/tessro/qrocodile/internal/classify"
	"github.com/tessro/qrocodile/internal/core"
	qerrors "github.com/tessro/qrocodile/internal/errors"
	"github.com/tessro/qrocodile/internal/session"
	"github.com/tessro/qrocodile/internal/sonos"
	"github.com/tessro/qrocodile/internal/source"
)

// RoomSaver persists the current room.
type RoomSaver interface {
	Save(room string) error
}

// Options tunes dispatcher behavior.
type Options struct {
	// LineInSource is the room whose line-in the turntable card selects.
	LineInSource string
	// Speech enables spoken acknowledgments.
	Speech bool
	// SkipLoad skips the library preload during Start.
	SkipLoad bool
}

// Outcome describes what handling one token did.
type Outcome struct {
	ScanID   string
	Command  core.Command
	Dropped  bool
	Requests int
}

// Result collects the per-request failures of one token.
type Result = qerrors.PartialResult[Outcome]

// Dispatcher owns the session and processes tokens one at a time.
type Dispatcher struct {
	player  core.Player
	catalog core.Catalog
	session *session.Session
	store   RoomSaver
	opts    Options
	logger  *zap.Logger
}

// New creates a dispatcher. catalog may be nil when no catalog
// credentials are configured; store may be nil to skip persistence.
func New(player core.Player, catalog core.Catalog, sess *session.Session, store RoomSaver, opts Options, logger *zap.Logger) *Dispatcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Dispatcher{
		player:  player,
		catalog: catalog,
		session: sess,
		store:   store,
		opts:    opts,
		logger:  logger,
	}
}

// Session returns a snapshot of the current session.
func (d *Dispatcher) Session() session.Session {
	return *d.session
}

// Start pauses every room, greets, and optionally preloads the music
// library so the first library card plays without delay. Cancelling ctx
// does not abort the sequence; each request is bounded by the client
// timeout instead.
func (d *Dispatcher) Start(ctx context.Context) *Result {
	ctx = context.WithoutCancel(ctx)
	res := &Result{}
	s := d.newStep(ctx, res, "startup")

	s.global(sonos.ActionPauseAll)
	s.say(PhraseGreeting)

	if !d.opts.SkipLoad {
		s.log.Info("indexing the library")
		s.say(PhraseLoading)
		s.room(sonos.Library(sonos.LibraryLoadIfNeeded)...)
		s.log.Info("indexing complete")
		s.say(PhraseReady)
	}

	s.say(PhraseShowCard)
	return res
}

// Run pulls tokens from src until it is exhausted or ctx is cancelled.
// Run closes src on every exit path.
func (d *Dispatcher) Run(ctx context.Context, src source.Source) (err error) {
	defer func() {
		if cerr := src.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close token source: %w", cerr)
		}
	}()

	var handled, dropped, failed int
	defer func() {
		d.logger.Info("scan loop finished",
			zap.Int("handled", handled),
			zap.Int("dropped", dropped),
			zap.Int("failed", failed))
	}()

	for {
		token, nextErr := src.Next(ctx)
		if errors.Is(nextErr, io.EOF) || errors.Is(nextErr, context.Canceled) {
			return nil
		}
		if nextErr != nil {
			return fmt.Errorf("read token: %w", nextErr)
		}

		res := d.Handle(ctx, token)
		switch {
		case res.Data.Dropped:
			dropped++
		case res.HasErrors():
			failed++
			handled++
		default:
			handled++
		}
	}
}

// Handle classifies and executes a single token. Handle must not be
// called concurrently. A token that has started runs to completion even
// if ctx is cancelled, so an expansion never stops after clearqueue.
func (d *Dispatcher) Handle(ctx context.Context, raw string) *Result {
	ctx = context.WithoutCancel(ctx)
	token := strings.TrimSpace(raw)
	cmd := classify.Classify(token)

	res := &Result{Data: Outcome{
		ScanID:  uuid.NewString(),
		Command: cmd,
	}}
	s := d.newStep(ctx, res, res.Data.ScanID)
	s.log = s.log.With(zap.String("token", token), zap.String("command", string(cmd.Kind())))

	if d.session.IsRepeat(token) && debounced(cmd) {
		res.Data.Dropped = true
		s.log.Info("ignoring repeated token")
		return res
	}

	s.log.Info("handling token", zap.String("room", d.session.Room), zap.Stringer("mode", d.session.Mode))

	switch c := cmd.(type) {
	case core.SimpleAction:
		d.simpleAction(s, c)
	case core.ChangeRoom:
		d.changeRoom(s, c)
	case core.SetMode:
		d.setMode(s, c)
	case core.LibraryTrack:
		d.libraryTrack(s, c)
	case core.RemoteTrack:
		d.remoteTrack(s, c)
	case core.RemoteAlbum:
		d.expand(s, c.URI, false, func(ctx context.Context) (*core.Tracklist, error) {
			return d.catalog.AlbumTracks(ctx, c.URI)
		})
	case core.RemoteArtist:
		d.expand(s, c.URI, true, func(ctx context.Context) (*core.Tracklist, error) {
			return d.catalog.ArtistTopTracks(ctx, c.URI)
		})
	case core.RemotePlaylist:
		d.expand(s, c.URI, false, func(ctx context.Context) (*core.Tracklist, error) {
			return d.catalog.PlaylistTracks(ctx, c.Owner, c.URI)
		})
	case core.Unrecognized:
		s.log.Warn("unrecognized token")
		s.say(PhraseUnknown)
	}

	d.session.LastToken = token

	if res.HasErrors() {
		s.log.Warn("token handled with errors",
			zap.Int("requests", res.Data.Requests),
			zap.Int("failures", len(res.Errors)))
	} else {
		s.log.Debug("token handled", zap.Int("requests", res.Data.Requests))
	}
	return res
}

// debounced reports whether a repeat of cmd should be dropped. Simple
// actions and room changes are meant to be repeatable.
func debounced(cmd core.Command) bool {
	switch cmd.(type) {
	case core.SimpleAction, core.ChangeRoom:
		return false
	default:
		return true
	}
}

func (d *Dispatcher) simpleAction(s *step, c core.SimpleAction) {
	switch c.Name {
	case AliasWhatSong:
		s.room(sonos.ActionSaySong)
	case AliasWhatNext:
		s.room(sonos.ActionSayNext)
	case AliasTurntable:
		s.room(sonos.ActionLineIn, d.opts.LineInSource)
		s.room(sonos.ActionPlay)
		s.say(PhraseTurntable)
	default:
		s.room(c.Name)
	}
}

func (d *Dispatcher) changeRoom(s *step, c core.ChangeRoom) {
	s.global(sonos.ActionPauseAll)

	previous := d.session.Room
	d.session.Room = c.Room
	if d.store != nil {
		if err := d.store.Save(c.Room); err != nil {
			s.log.Warn("failed to persist room", zap.Error(err))
			s.res.AddError(fmt.Errorf("persist room: %w", err))
		}
	}
	s.log.Info("switched room", zap.String("from", previous), zap.String("to", c.Room))

	s.say(roomPhrase(c.Room))
}

func (d *Dispatcher) setMode(s *step, c core.SetMode) {
	d.session.Mode = c.Mode
	if c.Mode == core.ModeBuildQueue {
		s.room(sonos.ActionPause)
		s.room(sonos.ActionClearQueue)
	}
	s.log.Info("switched mode", zap.Stringer("mode", c.Mode))
	s.say(modePhrase(c.Mode))
}

func (d *Dispatcher) libraryTrack(s *step, c core.LibraryTrack) {
	var action string
	switch d.session.Mode {
	case core.ModeBuildQueue:
		action = sonos.LibraryQueueSong
	case core.ModeAlbumImmediate:
		action = sonos.LibraryPlayAlbum
	default:
		action = sonos.LibraryPlaySong
	}
	// The bridge indexes library tracks by the full card value.
	s.room(sonos.Library(action, classify.PrefixLibrary+c.Hash)...)
}

func (d *Dispatcher) remoteTrack(s *step, c core.RemoteTrack) {
	how := sonos.SpotifyNow
	if d.session.Mode == core.ModeBuildQueue {
		how = sonos.SpotifyQueue
	}
	s.room(sonos.Spotify(how, c.URI)...)
}

// expand resolves a multi-track reference and replaces the room queue
// with it. The first track starts playing; the rest are queued behind it.
func (d *Dispatcher) expand(s *step, uri string, shuffle bool, resolve func(context.Context) (*core.Tracklist, error)) {
	if d.catalog == nil {
		err := qerrors.ErrCatalogNotConfigured
		s.log.Error("cannot expand token", zap.Error(err), zap.String("suggestion", qerrors.GetSuggestion(err)))
		s.res.AddError(err)
		s.say(PhraseCatalog)
		return
	}

	list, err := resolve(s.ctx)
	if err == nil && list.IsEmpty() {
		err = qerrors.ErrEmptyTracklist
	}
	if err != nil {
		s.log.Warn("failed to resolve tracks", zap.String("uri", uri), zap.Error(err))
		s.res.AddError(fmt.Errorf("resolve %s: %w", uri, err))
		s.say(PhraseCatalog)
		return
	}
	list.Renumber()

	s.log.Info("expanding",
		zap.String("name", list.Name),
		zap.String("artist", list.Artist),
		zap.Int("tracks", list.Len()))

	s.room(sonos.ActionClearQueue)
	s.room(sonos.Shuffle(shuffle)...)
	for _, track := range list.Tracks {
		how := sonos.SpotifyQueue
		if track.IsFirst() {
			how = sonos.SpotifyNow
		}
		s.room(sonos.Spotify(how, track.URI)...)
	}
}

// step carries the per-token context shared by every request the token
// issues.
type step struct {
	d   *Dispatcher
	ctx context.Context
	res *Result
	log *zap.Logger
}

func (d *Dispatcher) newStep(ctx context.Context, res *Result, scanID string) *step {
	return &step{
		d:   d,
		ctx: ctx,
		res: res,
		log: d.logger.With(zap.String("scan_id", scanID)),
	}
}

func (s *step) global(action string) {
	s.res.Data.Requests++
	if err := s.d.player.Global(s.ctx, action); err != nil {
		s.log.Warn("request failed", zap.String("action", action), zap.Error(err))
		s.res.AddError(fmt.Errorf("%s: %w", action, err))
	}
}

func (s *step) room(segments ...string) {
	s.res.Data.Requests++
	room := s.d.session.Room
	if err := s.d.player.Room(s.ctx, room, segments...); err != nil {
		action := strings.Join(segments, "/")
		s.log.Warn("request failed", zap.String("room", room), zap.String("action", action), zap.Error(err))
		s.res.AddError(fmt.Errorf("%s %s: %w", room, action, err))
	}
}

func (s *step) say(phrase string) {
	if !s.d.opts.Speech {
		s.log.Debug("speech disabled", zap.String("phrase", phrase))
		return
	}
	s.room(sonos.ActionSay, phrase)
}
