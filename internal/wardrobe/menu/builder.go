package menu

import (
	"context"
	"log"

	"github.com/louisbranch/hatrack.space/internal/wardrobe/catalog"
	"github.com/louisbranch/hatrack.space/internal/wardrobe/scene"
)

// Layout constants for the single-axis menu row.
const (
	// entrySpacing is the X increment between consecutive entries.
	entrySpacing = 1.5
	// displayScale is the fixed presentation scale for plain wearables.
	displayScale = 3
	// wearableHeight is the Y position of resource-backed entries.
	wearableHeight = 1.3
	// markerHeight is the Y position of placeholder cube entries.
	markerHeight = 1.0
	// markerSize is the edge length of placeholder cubes.
	markerSize = 0.5
)

// Selector receives menu activations. The session implements it.
type Selector interface {
	Select(ctx context.Context, wearableID string, user scene.UserID) error
}

// Entry is one clickable menu object bound to a single wearable id.
type Entry struct {
	WearableID string
	Kind       catalog.EntryKind
	ObjectID   scene.ObjectID
}

// Menu is the built, session-static wearable menu.
type Menu struct {
	Container scene.ObjectID
	Entries   []Entry
}

// Build creates one menu entry per catalog id inside a fresh container and
// binds each entry's click to the selector. Entries appear in catalog order,
// spaced along X from 0.
func Build(sc scene.Scene, cat *catalog.Catalog, selector Selector) (*Menu, error) {
	container, err := sc.CreateContainer("wearable-menu", "", scene.Transform{Scale: scene.Uniform(1)})
	if err != nil {
		return nil, err
	}

	built := &Menu{Container: container}
	for i, wearableID := range cat.IDs() {
		entry, ok := cat.Get(wearableID)
		if !ok {
			continue
		}
		slot := scene.Vec3{X: float64(i) * entrySpacing}

		objID, err := createEntryObject(sc, container, entry, slot)
		if err != nil {
			return nil, err
		}

		// Click events carry no context of their own.
		boundID := wearableID
		if err := sc.BindClick(objID, func(user scene.UserID) {
			if selectErr := selector.Select(context.Background(), boundID, user); selectErr != nil {
				log.Printf("menu select %s for user %s: %v", boundID, user, selectErr)
			}
		}); err != nil {
			return nil, err
		}

		built.Entries = append(built.Entries, Entry{
			WearableID: wearableID,
			Kind:       entry.Kind,
			ObjectID:   objID,
		})
	}
	return built, nil
}

// createEntryObject places one entry at its slot.
//
// Command entries keep their descriptor's presentation transform, offset by
// the slot. Plain wearables ignore the descriptor and use the fixed display
// scale with zero rotation. Resource-less entries become labeled cubes.
func createEntryObject(sc scene.Scene, parent scene.ObjectID, entry catalog.Entry, slot scene.Vec3) (scene.ObjectID, error) {
	if entry.ResourceID == "" {
		t := scene.Transform{
			Position: scene.Vec3{X: slot.X, Y: markerHeight},
			Scale:    scene.Uniform(1),
		}
		spec := scene.PrimitiveSpec{
			Shape:      scene.ShapeBox,
			Dimensions: scene.Uniform(markerSize),
			Label:      entry.ID,
			Collider:   true,
		}
		return sc.CreatePrimitive(spec, parent, t)
	}

	t := scene.Transform{
		Position: scene.Vec3{X: slot.X, Y: wearableHeight},
		Scale:    scene.Uniform(displayScale),
	}
	if entry.Kind == catalog.KindClearCommand {
		if entry.Scale != nil {
			t.Scale = *entry.Scale
		}
		if entry.Rotation != nil {
			t.Rotation = *entry.Rotation
		}
		if entry.Position != nil {
			t.Position = scene.Vec3{
				X: slot.X + entry.Position.X,
				Y: wearableHeight + entry.Position.Y,
				Z: entry.Position.Z,
			}
		}
	}
	return sc.CreateFromLibrary(entry.ResourceID, parent, t)
}
