package menu

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/louisbranch/hatrack.space/internal/wardrobe/catalog"
	"github.com/louisbranch/hatrack.space/internal/wardrobe/scene"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
}

type recordingSelector struct {
	wearableIDs []string
	users       []scene.UserID
	err         error
}

func (s *recordingSelector) Select(_ context.Context, wearableID string, user scene.UserID) error {
	s.wearableIDs = append(s.wearableIDs, wearableID)
	s.users = append(s.users, user)
	return s.err
}

func loadCatalog(t *testing.T, kit catalog.Kit) *catalog.Catalog {
	t.Helper()
	cat, err := catalog.Load(kit)
	if err != nil {
		t.Fatalf("load catalog: %v", err)
	}
	return cat
}

func loadCatalogFromFiles(t *testing.T, defaults, city string) *catalog.Catalog {
	t.Helper()
	dir := t.TempDir()
	writeFile(t, dir, "defaults.v1.json", defaults)
	writeFile(t, dir, "city_helmets.v1.json", city)
	cat, err := catalog.LoadFromDir(dir, catalog.KitCityHelmets)
	if err != nil {
		t.Fatalf("load catalog: %v", err)
	}
	return cat
}

func TestBuildCreatesOneEntryPerCatalogKey(t *testing.T) {
	tests := []struct {
		name     string
		defaults string
		city     string
		want     int
	}{
		{name: "empty catalog", defaults: `{}`, city: `{}`, want: 0},
		{name: "single entry", defaults: `{}`, city: `{"hard-hat": {"resource_id": "artifact:hard-hat"}}`, want: 1},
		{
			name:     "several entries",
			defaults: `{"clear!": {"resource_id": "artifact:clear-sign"}}`,
			city: `{
				"hard-hat": {"resource_id": "artifact:hard-hat"},
				"tophat": {"resource_id": "artifact:tophat"},
				"marker": {}
			}`,
			want: 4,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cat := loadCatalogFromFiles(t, tc.defaults, tc.city)
			rec := scene.NewRecorder()

			built, err := Build(rec, cat, &recordingSelector{})
			if err != nil {
				t.Fatalf("build: %v", err)
			}
			if len(built.Entries) != tc.want {
				t.Fatalf("entries = %d, want %d", len(built.Entries), tc.want)
			}

			seen := make(map[string]bool)
			for _, entry := range built.Entries {
				if seen[entry.WearableID] {
					t.Fatalf("duplicate entry for %q", entry.WearableID)
				}
				seen[entry.WearableID] = true
				if _, ok := cat.Get(entry.WearableID); !ok {
					t.Fatalf("entry %q not in catalog", entry.WearableID)
				}
			}
			// Container plus one object per entry.
			if rec.Live() != tc.want+1 {
				t.Fatalf("live objects = %d, want %d", rec.Live(), tc.want+1)
			}
		})
	}
}

func TestBuildLaysEntriesAlongOneAxis(t *testing.T) {
	cat := loadCatalog(t, catalog.KitSpaceHelmets)
	rec := scene.NewRecorder()

	built, err := Build(rec, cat, &recordingSelector{})
	if err != nil {
		t.Fatalf("build: %v", err)
	}

	for i, entry := range built.Entries {
		obj, ok := rec.Object(entry.ObjectID)
		if !ok {
			t.Fatalf("entry %q has no scene object", entry.WearableID)
		}
		if obj.Parent != built.Container {
			t.Fatalf("entry %q parent = %q, want menu container", entry.WearableID, obj.Parent)
		}
		wantX := float64(i) * 1.5
		// The clear command carries a position override on top of its slot.
		if entry.Kind == catalog.KindClearCommand {
			continue
		}
		if obj.Transform.Position.X != wantX {
			t.Fatalf("entry %q x = %v, want %v", entry.WearableID, obj.Transform.Position.X, wantX)
		}
	}
}

func TestBuildTransformPolicyPerEntryKind(t *testing.T) {
	cat := loadCatalog(t, catalog.KitCityHelmets)
	rec := scene.NewRecorder()

	built, err := Build(rec, cat, &recordingSelector{})
	if err != nil {
		t.Fatalf("build: %v", err)
	}

	byID := make(map[string]scene.Object)
	for _, entry := range built.Entries {
		obj, _ := rec.Object(entry.ObjectID)
		byID[entry.WearableID] = obj
	}

	// Plain wearables display at the fixed scale with zero rotation, even
	// when the descriptor carries attach-time overrides.
	helmet := byID["firefighter-helmet"]
	if helmet.Kind != scene.ObjectKindLibrary {
		t.Fatalf("firefighter-helmet kind = %q", helmet.Kind)
	}
	if helmet.Transform.Scale != scene.Uniform(3) {
		t.Fatalf("wearable display scale = %+v, want 3 uniform", helmet.Transform.Scale)
	}
	if helmet.Transform.Rotation != (scene.Vec3{}) {
		t.Fatalf("wearable display rotation = %+v, want zero", helmet.Transform.Rotation)
	}

	// The command entry keeps its descriptor presentation.
	clear := byID["clear!"]
	if clear.Transform.Scale != scene.Uniform(0.6) {
		t.Fatalf("command scale = %+v, want descriptor 0.6", clear.Transform.Scale)
	}

	// Resource-less entries become labeled collider cubes.
	marker := byID["hatrack"]
	if marker.Kind != scene.ObjectKindPrimitive {
		t.Fatalf("marker kind = %q, want primitive", marker.Kind)
	}
	if marker.Spec.Shape != scene.ShapeBox {
		t.Fatalf("marker shape = %q, want box", marker.Spec.Shape)
	}
	if marker.Spec.Label != "hatrack" {
		t.Fatalf("marker label = %q, want wearable id", marker.Spec.Label)
	}
	if !marker.Spec.Collider {
		t.Fatal("marker must be clickable")
	}
}

func TestBuildBindsClicksToSelector(t *testing.T) {
	cat := loadCatalog(t, catalog.KitCityHelmets)
	rec := scene.NewRecorder()
	selector := &recordingSelector{}

	built, err := Build(rec, cat, selector)
	if err != nil {
		t.Fatalf("build: %v", err)
	}

	var tophatID scene.ObjectID
	for _, entry := range built.Entries {
		if entry.WearableID == "tophat" {
			tophatID = entry.ObjectID
		}
	}
	if tophatID == "" {
		t.Fatal("expected tophat entry")
	}

	if err := rec.Click(tophatID, "user-9"); err != nil {
		t.Fatalf("click: %v", err)
	}
	if len(selector.wearableIDs) != 1 || selector.wearableIDs[0] != "tophat" {
		t.Fatalf("selector saw %v, want [tophat]", selector.wearableIDs)
	}
	if selector.users[0] != "user-9" {
		t.Fatalf("selector user = %q, want user-9", selector.users[0])
	}
}

func TestBuildEachEntryBoundToItsOwnID(t *testing.T) {
	cat := loadCatalog(t, catalog.KitSpaceHelmets)
	rec := scene.NewRecorder()
	selector := &recordingSelector{}

	built, err := Build(rec, cat, selector)
	if err != nil {
		t.Fatalf("build: %v", err)
	}

	for _, entry := range built.Entries {
		if err := rec.Click(entry.ObjectID, "user-1"); err != nil {
			t.Fatalf("click %s: %v", entry.WearableID, err)
		}
	}

	if len(selector.wearableIDs) != len(built.Entries) {
		t.Fatalf("selector calls = %d, want %d", len(selector.wearableIDs), len(built.Entries))
	}
	for i, entry := range built.Entries {
		if selector.wearableIDs[i] != entry.WearableID {
			t.Fatalf("click %d routed to %q, want %q", i, selector.wearableIDs[i], entry.WearableID)
		}
	}
}
