package session

import (
	"context"
	"log"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	apperrors "github.com/louisbranch/hatrack.space/internal/platform/errors"
	"github.com/louisbranch/hatrack.space/internal/platform/id"
	"github.com/louisbranch/hatrack.space/internal/wardrobe/attachment"
	"github.com/louisbranch/hatrack.space/internal/wardrobe/catalog"
	"github.com/louisbranch/hatrack.space/internal/wardrobe/menu"
	"github.com/louisbranch/hatrack.space/internal/wardrobe/scene"
)

const tracerName = "github.com/louisbranch/hatrack.space/internal/wardrobe/session"

// Loader builds a catalog for a kit. The default loads the embedded data;
// tests and the config-dir override substitute their own.
type Loader func(kit catalog.Kit) (*catalog.Catalog, error)

// Options configure a session before Start.
type Options struct {
	Kit             catalog.Kit
	BaseResourceURL string
	Loader          Loader
}

// Session owns one hosted space's wardrobe state: the loaded catalog, the
// built menu, and the per-user attachments.
type Session struct {
	id     string
	opts   Options
	scene  scene.Scene
	tracer trace.Tracer

	mu      sync.Mutex
	started bool
	catalog *catalog.Catalog
	menu    *menu.Menu
	manager *attachment.Manager
}

// New creates an unstarted session bound to a host scene.
func New(sc scene.Scene, opts Options) (*Session, error) {
	sessionID, err := id.NewID()
	if err != nil {
		return nil, err
	}
	if opts.Loader == nil {
		opts.Loader = catalog.Load
	}
	return &Session{
		id:     sessionID,
		opts:   opts,
		scene:  sc,
		tracer: otel.Tracer(tracerName),
	}, nil
}

// Start reacts to the host's session-started signal: it loads the catalog
// for the configured kit and builds the menu. Start runs once per session.
func (s *Session) Start(ctx context.Context) error {
	_, span := s.tracer.Start(ctx, "wardrobe.session.start",
		trace.WithAttributes(attribute.String("wardrobe.kit", string(s.opts.Kit))))
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		err := apperrors.New(apperrors.CodeSessionAlreadyStarted, "session already started")
		span.RecordError(err)
		return err
	}

	cat, err := s.opts.Loader(s.opts.Kit)
	if err != nil {
		span.RecordError(err)
		return err
	}
	if err := cat.ResolveResources(s.opts.BaseResourceURL); err != nil {
		span.RecordError(err)
		return err
	}

	s.manager = attachment.NewManager(s.scene, cat)
	built, err := menu.Build(s.scene, cat, s)
	if err != nil {
		span.RecordError(err)
		return err
	}

	s.catalog = cat
	s.menu = built
	s.started = true
	log.Printf("session %s started: kit=%s entries=%d", s.id, cat.Kit(), cat.Len())
	return nil
}

// Select handles a user activating a wearable, from a menu click or an
// operator surface. Rejected selects are logged; a click has no other
// user-visible error channel.
func (s *Session) Select(ctx context.Context, wearableID string, user scene.UserID) error {
	_, span := s.tracer.Start(ctx, "wardrobe.select",
		trace.WithAttributes(
			attribute.String("wardrobe.wearable_id", wearableID),
			attribute.String("wardrobe.user_id", string(user)),
		))
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		err := apperrors.New(apperrors.CodeSessionNotStarted, "select before session start")
		span.RecordError(err)
		return err
	}
	if err := s.manager.Select(wearableID, user); err != nil {
		span.RecordError(err)
		log.Printf("session %s: select %s for user %s rejected: %v", s.id, wearableID, user, err)
		return err
	}
	return nil
}

// Clear removes the user's current attachment, if any.
func (s *Session) Clear(ctx context.Context, user scene.UserID) error {
	_, span := s.tracer.Start(ctx, "wardrobe.clear",
		trace.WithAttributes(attribute.String("wardrobe.user_id", string(user))))
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		err := apperrors.New(apperrors.CodeSessionNotStarted, "clear before session start")
		span.RecordError(err)
		return err
	}
	if err := s.manager.Clear(user); err != nil {
		span.RecordError(err)
		return err
	}
	return nil
}

// UserLeft reacts to the host's user-departure signal, force-clearing the
// user so no attachment outlives their presence.
func (s *Session) UserLeft(ctx context.Context, user scene.UserID) error {
	_, span := s.tracer.Start(ctx, "wardrobe.user_left",
		trace.WithAttributes(attribute.String("wardrobe.user_id", string(user))))
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		err := apperrors.New(apperrors.CodeSessionNotStarted, "user departure before session start")
		span.RecordError(err)
		return err
	}
	if err := s.manager.UserLeft(user); err != nil {
		span.RecordError(err)
		return err
	}
	return nil
}

// ID returns the session identifier.
func (s *Session) ID() string {
	return s.id
}

// Kit returns the configured kit.
func (s *Session) Kit() catalog.Kit {
	return s.opts.Kit
}

// Started reports whether the session has been started.
func (s *Session) Started() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.started
}

// Catalog returns the loaded catalog, or nil before Start.
func (s *Session) Catalog() *catalog.Catalog {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.catalog
}

// MenuEntries returns the built menu entries, or nil before Start.
func (s *Session) MenuEntries() []menu.Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.menu == nil {
		return nil
	}
	out := make([]menu.Entry, len(s.menu.Entries))
	copy(out, s.menu.Entries)
	return out
}

// Attachments returns the current attachments ordered by user id.
func (s *Session) Attachments() []attachment.UserAttachment {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.manager == nil {
		return nil
	}
	return s.manager.Snapshot()
}
