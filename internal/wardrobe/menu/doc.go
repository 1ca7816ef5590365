// Package menu builds the clickable wearable menu from a loaded catalog.
//
// The menu is constructed exactly once per session and never reshaped: one
// entry per catalog id, laid out along a single axis. A menu entry's
// presentation is deliberately decoupled from its attach-time transform;
// how a hat looks on the shelf says nothing about how it sits on a head.
package menu
