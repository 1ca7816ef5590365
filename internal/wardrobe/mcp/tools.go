package mcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/louisbranch/hatrack.space/internal/wardrobe/scene"
	"github.com/louisbranch/hatrack.space/internal/wardrobe/session"
)

// SessionStartInput represents the tool input for starting the session.
type SessionStartInput struct{}

// SessionStartResult reports the started session.
type SessionStartResult struct {
	SessionID string `json:"session_id" jsonschema:"session identifier"`
	Kit       string `json:"kit" jsonschema:"wearable kit loaded for the session"`
	Entries   int    `json:"entries" jsonschema:"number of catalog entries loaded"`
}

// SessionStartTool defines the schema for starting the session.
func SessionStartTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "wardrobe_session_start",
		Description: "Starts the wardrobe session: loads the configured kit catalog and builds the menu. Fails if already started.",
	}
}

// SessionStartHandler starts the wardrobe session.
func SessionStartHandler(sess *session.Session) mcp.ToolHandlerFor[SessionStartInput, SessionStartResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, _ SessionStartInput) (*mcp.CallToolResult, SessionStartResult, error) {
		if err := sess.Start(ctx); err != nil {
			return nil, SessionStartResult{}, fmt.Errorf("session start failed: %w", err)
		}
		return nil, SessionStartResult{
			SessionID: sess.ID(),
			Kit:       string(sess.Catalog().Kit()),
			Entries:   sess.Catalog().Len(),
		}, nil
	}
}

// CatalogEntry is one wearable in catalog listings.
type CatalogEntry struct {
	ID         string `json:"id" jsonschema:"wearable identifier"`
	Kind       string `json:"kind" jsonschema:"entry kind (wearable or clear_command)"`
	ResourceID string `json:"resource_id,omitempty" jsonschema:"host visual resource reference"`
	Attachable bool   `json:"attachable" jsonschema:"whether selecting the entry creates an attachment"`
}

// CatalogListInput represents the tool input for listing the catalog.
type CatalogListInput struct{}

// CatalogListResult lists the loaded catalog.
type CatalogListResult struct {
	Kit     string         `json:"kit" jsonschema:"kit the catalog was loaded for"`
	Entries []CatalogEntry `json:"entries" jsonschema:"catalog entries in menu order"`
}

// CatalogListTool defines the schema for listing the catalog.
func CatalogListTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "wardrobe_catalog_list",
		Description: "Lists the loaded wearable catalog in menu order.",
	}
}

// CatalogListHandler lists the loaded catalog.
func CatalogListHandler(sess *session.Session) mcp.ToolHandlerFor[CatalogListInput, CatalogListResult] {
	return func(_ context.Context, _ *mcp.CallToolRequest, _ CatalogListInput) (*mcp.CallToolResult, CatalogListResult, error) {
		cat := sess.Catalog()
		if cat == nil {
			return nil, CatalogListResult{}, fmt.Errorf("session is not started")
		}
		result := CatalogListResult{Kit: string(cat.Kit())}
		for _, wearableID := range cat.IDs() {
			entry, ok := cat.Get(wearableID)
			if !ok {
				continue
			}
			result.Entries = append(result.Entries, CatalogEntry{
				ID:         entry.ID,
				Kind:       string(entry.Kind),
				ResourceID: entry.ResourceID,
				Attachable: entry.Attachable(),
			})
		}
		return nil, result, nil
	}
}

// MenuEntry is one clickable entry in menu listings.
type MenuEntry struct {
	WearableID string `json:"wearable_id" jsonschema:"wearable the entry is bound to"`
	Kind       string `json:"kind" jsonschema:"entry kind (wearable or clear_command)"`
	ObjectID   string `json:"object_id" jsonschema:"scene object id, usable with wardrobe_click"`
}

// MenuListInput represents the tool input for listing the menu.
type MenuListInput struct{}

// MenuListResult lists the built menu.
type MenuListResult struct {
	Entries []MenuEntry `json:"entries" jsonschema:"menu entries left to right"`
}

// MenuListTool defines the schema for listing the menu.
func MenuListTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "wardrobe_menu_list",
		Description: "Lists the built menu entries with their scene object ids.",
	}
}

// MenuListHandler lists the built menu.
func MenuListHandler(sess *session.Session) mcp.ToolHandlerFor[MenuListInput, MenuListResult] {
	return func(_ context.Context, _ *mcp.CallToolRequest, _ MenuListInput) (*mcp.CallToolResult, MenuListResult, error) {
		entries := sess.MenuEntries()
		if entries == nil {
			return nil, MenuListResult{}, fmt.Errorf("session is not started")
		}
		result := MenuListResult{}
		for _, entry := range entries {
			result.Entries = append(result.Entries, MenuEntry{
				WearableID: entry.WearableID,
				Kind:       string(entry.Kind),
				ObjectID:   string(entry.ObjectID),
			})
		}
		return nil, result, nil
	}
}

// SelectInput represents the tool input for selecting a wearable.
type SelectInput struct {
	WearableID string `json:"wearable_id" jsonschema:"wearable identifier from the catalog"`
	UserID     string `json:"user_id" jsonschema:"user the wearable attaches to"`
}

// SelectResult reports the user's state after the select.
type SelectResult struct {
	UserID     string `json:"user_id" jsonschema:"user identifier"`
	WearableID string `json:"wearable_id,omitempty" jsonschema:"wearable now worn, empty when cleared"`
	Worn       bool   `json:"worn" jsonschema:"whether the user wears anything after the select"`
}

// SelectTool defines the schema for selecting a wearable.
func SelectTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "wardrobe_select",
		Description: "Selects a wearable for a user, replacing any current attachment. Selecting the clear command removes it.",
	}
}

// SelectHandler executes a select against the session.
func SelectHandler(sess *session.Session) mcp.ToolHandlerFor[SelectInput, SelectResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input SelectInput) (*mcp.CallToolResult, SelectResult, error) {
		if err := sess.Select(ctx, input.WearableID, scene.UserID(input.UserID)); err != nil {
			return nil, SelectResult{}, fmt.Errorf("select failed: %w", err)
		}
		return nil, wornState(sess, input.UserID), nil
	}
}

// ClearInput represents the tool input for clearing a user's attachment.
type ClearInput struct {
	UserID string `json:"user_id" jsonschema:"user whose attachment is removed"`
}

// ClearTool defines the schema for clearing an attachment.
func ClearTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "wardrobe_clear",
		Description: "Removes a user's current attachment. Clearing an unworn user is a no-op.",
	}
}

// ClearHandler executes a clear against the session.
func ClearHandler(sess *session.Session) mcp.ToolHandlerFor[ClearInput, SelectResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input ClearInput) (*mcp.CallToolResult, SelectResult, error) {
		if err := sess.Clear(ctx, scene.UserID(input.UserID)); err != nil {
			return nil, SelectResult{}, fmt.Errorf("clear failed: %w", err)
		}
		return nil, wornState(sess, input.UserID), nil
	}
}

// UserLeftInput represents the tool input for simulating a departure.
type UserLeftInput struct {
	UserID string `json:"user_id" jsonschema:"user leaving the session"`
}

// UserLeftTool defines the schema for simulating a user departure.
func UserLeftTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "wardrobe_user_left",
		Description: "Delivers a user-departure event, force-clearing the user's attachment.",
	}
}

// UserLeftHandler delivers a departure event to the session.
func UserLeftHandler(sess *session.Session) mcp.ToolHandlerFor[UserLeftInput, SelectResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input UserLeftInput) (*mcp.CallToolResult, SelectResult, error) {
		if err := sess.UserLeft(ctx, scene.UserID(input.UserID)); err != nil {
			return nil, SelectResult{}, fmt.Errorf("user departure failed: %w", err)
		}
		return nil, wornState(sess, input.UserID), nil
	}
}

// AttachmentsListInput represents the tool input for listing attachments.
type AttachmentsListInput struct{}

// AttachmentEntry is one user's attachment in listings.
type AttachmentEntry struct {
	UserID     string `json:"user_id" jsonschema:"user identifier"`
	WearableID string `json:"wearable_id" jsonschema:"wearable currently worn"`
	ObjectID   string `json:"object_id" jsonschema:"live scene object id"`
}

// AttachmentsListResult lists current attachments.
type AttachmentsListResult struct {
	Attachments []AttachmentEntry `json:"attachments" jsonschema:"current attachments ordered by user id"`
}

// AttachmentsListTool defines the schema for listing attachments.
func AttachmentsListTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "wardrobe_attachments_list",
		Description: "Lists every user's current attachment.",
	}
}

// AttachmentsListHandler lists current attachments.
func AttachmentsListHandler(sess *session.Session) mcp.ToolHandlerFor[AttachmentsListInput, AttachmentsListResult] {
	return func(_ context.Context, _ *mcp.CallToolRequest, _ AttachmentsListInput) (*mcp.CallToolResult, AttachmentsListResult, error) {
		result := AttachmentsListResult{}
		for _, ua := range sess.Attachments() {
			result.Attachments = append(result.Attachments, AttachmentEntry{
				UserID:     string(ua.UserID),
				WearableID: ua.WearableID,
				ObjectID:   string(ua.ObjectID),
			})
		}
		return nil, result, nil
	}
}

// ClickInput represents the tool input for simulating a menu click.
type ClickInput struct {
	ObjectID string `json:"object_id" jsonschema:"menu entry object id from wardrobe_menu_list"`
	UserID   string `json:"user_id" jsonschema:"user performing the click"`
}

// ClickTool defines the schema for simulating a menu click.
func ClickTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "wardrobe_click",
		Description: "Simulates a host click on a menu entry, driving the same handler path a real click event would.",
	}
}

// ClickHandler dispatches a click through the scene recorder.
func ClickHandler(sess *session.Session, rec *scene.Recorder) mcp.ToolHandlerFor[ClickInput, SelectResult] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input ClickInput) (*mcp.CallToolResult, SelectResult, error) {
		if err := rec.Click(scene.ObjectID(input.ObjectID), scene.UserID(input.UserID)); err != nil {
			return nil, SelectResult{}, fmt.Errorf("click failed: %w", err)
		}
		return nil, wornState(sess, input.UserID), nil
	}
}

func wornState(sess *session.Session, userID string) SelectResult {
	result := SelectResult{UserID: userID}
	for _, ua := range sess.Attachments() {
		if string(ua.UserID) == userID {
			result.Worn = true
			result.WearableID = ua.WearableID
		}
	}
	return result
}
