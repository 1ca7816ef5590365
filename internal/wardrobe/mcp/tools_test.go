package mcp

import (
	"context"
	"testing"

	"github.com/louisbranch/hatrack.space/internal/wardrobe/catalog"
	"github.com/louisbranch/hatrack.space/internal/wardrobe/session"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	server, err := New(session.Options{Kit: catalog.KitCityHelmets})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return server
}

func startTestServer(t *testing.T) *Server {
	t.Helper()
	server := newTestServer(t)
	handler := SessionStartHandler(server.session)
	if _, _, err := handler(context.Background(), nil, SessionStartInput{}); err != nil {
		t.Fatalf("session start: %v", err)
	}
	return server
}

func TestSessionStartTool(t *testing.T) {
	server := newTestServer(t)
	handler := SessionStartHandler(server.session)

	_, result, err := handler(context.Background(), nil, SessionStartInput{})
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	if result.SessionID == "" {
		t.Fatal("expected a session id")
	}
	if result.Kit != "city_helmets" {
		t.Fatalf("kit = %q, want city_helmets", result.Kit)
	}
	if result.Entries != 7 {
		t.Fatalf("entries = %d, want 7", result.Entries)
	}

	if _, _, err := handler(context.Background(), nil, SessionStartInput{}); err == nil {
		t.Fatal("expected second start to fail")
	}
}

func TestListToolsRequireStartedSession(t *testing.T) {
	server := newTestServer(t)

	if _, _, err := CatalogListHandler(server.session)(context.Background(), nil, CatalogListInput{}); err == nil {
		t.Fatal("expected catalog list to fail before start")
	}
	if _, _, err := MenuListHandler(server.session)(context.Background(), nil, MenuListInput{}); err == nil {
		t.Fatal("expected menu list to fail before start")
	}
	if _, _, err := SelectHandler(server.session)(context.Background(), nil, SelectInput{WearableID: "tophat", UserID: "u1"}); err == nil {
		t.Fatal("expected select to fail before start")
	}
}

func TestCatalogListTool(t *testing.T) {
	server := startTestServer(t)

	_, result, err := CatalogListHandler(server.session)(context.Background(), nil, CatalogListInput{})
	if err != nil {
		t.Fatalf("catalog list: %v", err)
	}
	if len(result.Entries) != 7 {
		t.Fatalf("len(entries) = %d, want 7", len(result.Entries))
	}
	byID := map[string]CatalogEntry{}
	for _, entry := range result.Entries {
		byID[entry.ID] = entry
	}
	if entry := byID["clear!"]; entry.Kind != "clear_command" || entry.Attachable {
		t.Fatalf("clear! entry = %+v, want non-attachable clear_command", entry)
	}
	if entry := byID["hatrack"]; entry.Attachable {
		t.Fatalf("hatrack entry = %+v, want non-attachable marker", entry)
	}
	if entry := byID["tophat"]; entry.Kind != "wearable" || !entry.Attachable {
		t.Fatalf("tophat entry = %+v, want attachable wearable", entry)
	}
}

func TestSelectAndAttachmentsListTools(t *testing.T) {
	server := startTestServer(t)

	_, selected, err := SelectHandler(server.session)(context.Background(), nil, SelectInput{WearableID: "tophat", UserID: "u1"})
	if err != nil {
		t.Fatalf("select: %v", err)
	}
	if !selected.Worn || selected.WearableID != "tophat" {
		t.Fatalf("select result = %+v, want tophat worn", selected)
	}

	_, listed, err := AttachmentsListHandler(server.session)(context.Background(), nil, AttachmentsListInput{})
	if err != nil {
		t.Fatalf("attachments list: %v", err)
	}
	if len(listed.Attachments) != 1 {
		t.Fatalf("len(attachments) = %d, want 1", len(listed.Attachments))
	}
	if got := listed.Attachments[0]; got.UserID != "u1" || got.WearableID != "tophat" || got.ObjectID == "" {
		t.Fatalf("attachment = %+v, want u1 wearing tophat with a live object", got)
	}

	if _, _, err := SelectHandler(server.session)(context.Background(), nil, SelectInput{WearableID: "eva-helmet", UserID: "u1"}); err == nil {
		t.Fatal("expected select outside the loaded kit to fail")
	}
}

func TestClearAndUserLeftTools(t *testing.T) {
	server := startTestServer(t)
	ctx := context.Background()

	if _, _, err := SelectHandler(server.session)(ctx, nil, SelectInput{WearableID: "police-cap", UserID: "u1"}); err != nil {
		t.Fatalf("select: %v", err)
	}

	_, cleared, err := ClearHandler(server.session)(ctx, nil, ClearInput{UserID: "u1"})
	if err != nil {
		t.Fatalf("clear: %v", err)
	}
	if cleared.Worn {
		t.Fatalf("clear result = %+v, want nothing worn", cleared)
	}
	// Clearing an unworn user stays a no-op.
	if _, _, err := ClearHandler(server.session)(ctx, nil, ClearInput{UserID: "u1"}); err != nil {
		t.Fatalf("repeat clear: %v", err)
	}

	if _, _, err := SelectHandler(server.session)(ctx, nil, SelectInput{WearableID: "hard-hat", UserID: "u2"}); err != nil {
		t.Fatalf("select: %v", err)
	}
	_, left, err := UserLeftHandler(server.session)(ctx, nil, UserLeftInput{UserID: "u2"})
	if err != nil {
		t.Fatalf("user left: %v", err)
	}
	if left.Worn {
		t.Fatalf("departure result = %+v, want nothing worn", left)
	}
}

func TestClickToolDrivesMenuHandlers(t *testing.T) {
	server := startTestServer(t)
	ctx := context.Background()

	_, menu, err := MenuListHandler(server.session)(ctx, nil, MenuListInput{})
	if err != nil {
		t.Fatalf("menu list: %v", err)
	}
	var capObject string
	for _, entry := range menu.Entries {
		if entry.WearableID == "police-cap" {
			capObject = entry.ObjectID
		}
	}
	if capObject == "" {
		t.Fatal("police-cap missing from menu")
	}

	_, clicked, err := ClickHandler(server.session, server.recorder)(ctx, nil, ClickInput{ObjectID: capObject, UserID: "u1"})
	if err != nil {
		t.Fatalf("click: %v", err)
	}
	if !clicked.Worn || clicked.WearableID != "police-cap" {
		t.Fatalf("click result = %+v, want police-cap worn", clicked)
	}

	if _, _, err := ClickHandler(server.session, server.recorder)(ctx, nil, ClickInput{ObjectID: "no-such-object", UserID: "u1"}); err == nil {
		t.Fatal("expected click on unknown object to fail")
	}
}
