package catalog

import (
	"net/url"
	"path"
	"strings"

	apperrors "github.com/louisbranch/hatrack.space/internal/platform/errors"
	"github.com/louisbranch/hatrack.space/internal/wardrobe/scene"
)

// EntryKind is the tagged variant of a catalog entry, decided at load time.
type EntryKind string

const (
	// KindWearable is a wearable that attaches to a user's head anchor.
	KindWearable EntryKind = "wearable"
	// KindClearCommand is the menu action that removes the current attachment.
	KindClearCommand EntryKind = "clear_command"
)

// Entry describes one wearable or command in the catalog.
//
// Transform override fields are nil when the data file omits them so that
// each component can default independently at attach time.
type Entry struct {
	ID         string
	Kind       EntryKind
	ResourceID string
	Scale      *scene.Vec3
	Rotation   *scene.Vec3
	Position   *scene.Vec3
}

// Attachable reports whether selecting this entry can create an attachment.
// Structural entries with no visual resource are menu markers only.
func (e Entry) Attachable() bool {
	return e.Kind == KindWearable && e.ResourceID != ""
}

// Catalog is the loaded, read-only wearable database for one session kit.
type Catalog struct {
	kit     Kit
	entries map[string]Entry
	order   []string
	clearID string
}

// Kit returns the kit this catalog was loaded for.
func (c *Catalog) Kit() Kit {
	return c.kit
}

// Get returns the entry for a wearable id.
func (c *Catalog) Get(wearableID string) (Entry, bool) {
	entry, ok := c.entries[wearableID]
	return entry, ok
}

// IDs returns every wearable id, defaults first, in a stable order.
func (c *Catalog) IDs() []string {
	out := make([]string, len(c.order))
	copy(out, c.order)
	return out
}

// Len returns the number of entries.
func (c *Catalog) Len() int {
	return len(c.order)
}

// ClearCommandID returns the designated clear-command id, or empty when the
// loaded data carries no command entry.
func (c *Catalog) ClearCommandID() string {
	return c.clearID
}

// ResolveResources rewrites every entry's resource reference to its resolved
// form. Entries without a resource are left alone. A relative reference with
// no base URL configured is a configuration error.
func (c *Catalog) ResolveResources(baseURL string) error {
	for wearableID, entry := range c.entries {
		if entry.ResourceID == "" {
			continue
		}
		resolved, err := ResolveResourceURL(baseURL, entry.ResourceID)
		if err != nil {
			return err
		}
		entry.ResourceID = resolved
		c.entries[wearableID] = entry
	}
	return nil
}

// ResolveResourceURL joins a base resource URL with a relative resource
// reference. Fully qualified artifact ids pass through untouched.
func ResolveResourceURL(baseURL, resourceID string) (string, error) {
	resource := strings.TrimSpace(resourceID)
	if resource == "" {
		return "", apperrors.New(apperrors.CodeConfigurationInvalid, "resource id is empty")
	}
	if strings.HasPrefix(resource, "artifact:") {
		return resource, nil
	}
	base := strings.TrimSpace(baseURL)
	if base == "" {
		return "", apperrors.WithMetadata(apperrors.CodeConfigurationInvalid, "relative resource requires a base url", map[string]string{
			"resource_id": resource,
		})
	}
	parsed, err := url.Parse(base)
	if err != nil {
		return "", apperrors.Wrap(apperrors.CodeConfigurationInvalid, "parse base resource url", err)
	}
	parsed.Path = path.Join(parsed.Path, resource)
	return parsed.String(), nil
}
