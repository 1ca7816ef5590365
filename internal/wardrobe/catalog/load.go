package catalog

import (
	"bytes"
	"embed"
	"encoding/json"
	"io/fs"
	"os"
	"sort"
	"strings"

	apperrors "github.com/louisbranch/hatrack.space/internal/platform/errors"
	"github.com/louisbranch/hatrack.space/internal/wardrobe/scene"
)

//go:embed data/defaults.v1.json data/city_helmets.v1.json data/space_helmets.v1.json
var embeddedData embed.FS

const (
	defaultsFile     = "defaults.v1.json"
	cityHelmetsFile  = "city_helmets.v1.json"
	spaceHelmetsFile = "space_helmets.v1.json"
)

// commandSuffix marks command entries in the data files. The marker is
// interpreted once here; everywhere else the entry kind is the tag.
const commandSuffix = "!"

// descriptorJSON is the on-disk shape of one wearable descriptor.
type descriptorJSON struct {
	ResourceID string      `json:"resource_id,omitempty"`
	Scale      *scene.Vec3 `json:"scale,omitempty"`
	Rotation   *scene.Vec3 `json:"rotation,omitempty"`
	Position   *scene.Vec3 `json:"position,omitempty"`
}

func kitFiles(kit Kit) []string {
	switch kit {
	case KitCityHelmets:
		return []string{defaultsFile, cityHelmetsFile}
	case KitSpaceHelmets:
		return []string{defaultsFile, spaceHelmetsFile}
	default:
		return []string{defaultsFile, cityHelmetsFile, spaceHelmetsFile}
	}
}

// Load builds the catalog for a kit from the embedded wearable data.
func Load(kit Kit) (*Catalog, error) {
	sub, err := fs.Sub(embeddedData, "data")
	if err != nil {
		return nil, apperrors.Wrap(apperrors.CodeConfigurationMissing, "embedded wearable data unavailable", err)
	}
	return loadFS(sub, kit)
}

// LoadFromDir builds the catalog for a kit from JSON files in dir. The file
// set and merge semantics match the embedded data.
func LoadFromDir(dir string, kit Kit) (*Catalog, error) {
	return loadFS(os.DirFS(dir), kit)
}

// ValidateData loads every kit from the embedded data, surfacing any
// malformed file at startup instead of at session start.
func ValidateData() error {
	for _, kit := range []Kit{KitAll, KitCityHelmets, KitSpaceHelmets} {
		if _, err := Load(kit); err != nil {
			return err
		}
	}
	return nil
}

func loadFS(fsys fs.FS, kit Kit) (*Catalog, error) {
	cat := &Catalog{
		kit:     kit,
		entries: make(map[string]Entry),
	}
	for _, name := range kitFiles(kit) {
		raw, err := fs.ReadFile(fsys, name)
		if err != nil {
			return nil, apperrors.Wrap(apperrors.CodeConfigurationMissing, "read wearable set "+name, err)
		}
		if err := cat.mergeFile(name, raw); err != nil {
			return nil, err
		}
	}
	return cat, nil
}

// mergeFile folds one wearable set into the catalog. Later files win on key
// collision; first-seen order is preserved so the menu layout is stable.
func (c *Catalog) mergeFile(name string, raw []byte) error {
	decoder := json.NewDecoder(bytes.NewReader(raw))
	decoder.DisallowUnknownFields()

	var descriptors map[string]descriptorJSON
	if err := decoder.Decode(&descriptors); err != nil {
		return apperrors.Wrap(apperrors.CodeConfigurationInvalid, "decode wearable set "+name, err)
	}

	ids := make([]string, 0, len(descriptors))
	for wearableID := range descriptors {
		ids = append(ids, wearableID)
	}
	sort.Strings(ids)

	for _, wearableID := range ids {
		if strings.TrimSpace(wearableID) == "" {
			return apperrors.New(apperrors.CodeConfigurationInvalid, "empty wearable id in "+name)
		}
		descriptor := descriptors[wearableID]
		entry := Entry{
			ID:         wearableID,
			Kind:       KindWearable,
			ResourceID: strings.TrimSpace(descriptor.ResourceID),
			Scale:      descriptor.Scale,
			Rotation:   descriptor.Rotation,
			Position:   descriptor.Position,
		}
		if strings.HasSuffix(wearableID, commandSuffix) {
			entry.Kind = KindClearCommand
			if c.clearID != "" && c.clearID != wearableID {
				return apperrors.WithMetadata(apperrors.CodeConfigurationInvalid, "multiple command entries", map[string]string{
					"first":  c.clearID,
					"second": wearableID,
				})
			}
			c.clearID = wearableID
		}
		if _, seen := c.entries[wearableID]; !seen {
			c.order = append(c.order, wearableID)
		}
		c.entries[wearableID] = entry
	}
	return nil
}
