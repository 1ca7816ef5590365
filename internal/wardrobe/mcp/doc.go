// Package mcp exposes a wardrobe session as an MCP operator console.
//
// The console hosts its own in-process session against the in-memory scene
// recorder, so an operator (or an agent) can drive the full lifecycle and
// inspect the resulting state without a live host runtime.
package mcp
