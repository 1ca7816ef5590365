package mcp

import (
	"context"
	"errors"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/louisbranch/hatrack.space/internal/wardrobe/scene"
	"github.com/louisbranch/hatrack.space/internal/wardrobe/session"
)

const (
	serverName    = "hatrack-wardrobe"
	serverVersion = "0.1.0"
)

// Server hosts a wardrobe session behind an MCP stdio transport.
type Server struct {
	mcpServer *mcp.Server
	session   *session.Session
	recorder  *scene.Recorder
}

// New builds a console server around a fresh, unstarted session. The
// operator starts it explicitly with the wardrobe_session_start tool.
func New(opts session.Options) (*Server, error) {
	recorder := scene.NewRecorder()
	sess, err := session.New(recorder, opts)
	if err != nil {
		return nil, err
	}

	mcpServer := mcp.NewServer(&mcp.Implementation{
		Name:    serverName,
		Version: serverVersion,
	}, nil)
	registerTools(mcpServer, sess, recorder)

	return &Server{
		mcpServer: mcpServer,
		session:   sess,
		recorder:  recorder,
	}, nil
}

func registerTools(server *mcp.Server, sess *session.Session, recorder *scene.Recorder) {
	mcp.AddTool(server, SessionStartTool(), SessionStartHandler(sess))
	mcp.AddTool(server, CatalogListTool(), CatalogListHandler(sess))
	mcp.AddTool(server, MenuListTool(), MenuListHandler(sess))
	mcp.AddTool(server, SelectTool(), SelectHandler(sess))
	mcp.AddTool(server, ClearTool(), ClearHandler(sess))
	mcp.AddTool(server, UserLeftTool(), UserLeftHandler(sess))
	mcp.AddTool(server, AttachmentsListTool(), AttachmentsListHandler(sess))
	mcp.AddTool(server, ClickTool(), ClickHandler(sess, recorder))
}

// Serve runs the MCP server over stdio until the client disconnects or
// ctx is cancelled. Cancellation is a clean shutdown, not an error.
func (s *Server) Serve(ctx context.Context) error {
	err := s.mcpServer.Run(ctx, &mcp.StdioTransport{})
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return nil
	}
	return err
}
