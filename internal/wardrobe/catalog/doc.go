// Package catalog loads the immutable wearable database for a session.
//
// A catalog merges the shared defaults set with the kit selected at startup;
// kit entries win on key collision. Entry kinds are decided once at load time
// from the data files, never re-derived from identifier spelling at use time.
// The catalog is read-only after load and lives for the session.
package catalog
