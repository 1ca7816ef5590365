// Package app boots a wardrobe session and serves its operational surface.
package app
