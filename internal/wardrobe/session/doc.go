// Package session glues the wardrobe pieces to the host session lifecycle.
//
// One Session owns the catalog, the menu, and the attachment state for the
// lifetime of one hosted space. The host delivers events one at a time; the
// session also serves operator surfaces, so it serializes every operation
// behind one mutex to keep the attachment mapping single-writer either way.
package session
