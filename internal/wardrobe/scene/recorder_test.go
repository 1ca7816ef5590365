package scene

import (
	"errors"
	"testing"

	apperrors "github.com/louisbranch/hatrack.space/internal/platform/errors"
)

func TestRecorderCreateAndDestroy(t *testing.T) {
	rec := NewRecorder()

	containerID, err := rec.CreateContainer("menu", "", Transform{})
	if err != nil {
		t.Fatalf("create container: %v", err)
	}
	hatID, err := rec.CreateFromLibrary("artifact:tophat", containerID, Transform{Scale: Uniform(3)})
	if err != nil {
		t.Fatalf("create from library: %v", err)
	}

	if rec.Live() != 2 {
		t.Fatalf("live = %d, want 2", rec.Live())
	}

	obj, ok := rec.Object(hatID)
	if !ok {
		t.Fatal("expected hat object")
	}
	if obj.Kind != ObjectKindLibrary {
		t.Fatalf("kind = %q, want %q", obj.Kind, ObjectKindLibrary)
	}
	if obj.Parent != containerID {
		t.Fatalf("parent = %q, want %q", obj.Parent, containerID)
	}
	if obj.ResourceID != "artifact:tophat" {
		t.Fatalf("resource = %q", obj.ResourceID)
	}

	if err := rec.Destroy(hatID); err != nil {
		t.Fatalf("destroy: %v", err)
	}
	if rec.Live() != 1 {
		t.Fatalf("live after destroy = %d, want 1", rec.Live())
	}
	if rec.Destroyed() != 1 {
		t.Fatalf("destroyed = %d, want 1", rec.Destroyed())
	}
}

func TestRecorderDestroyUnknownObject(t *testing.T) {
	rec := NewRecorder()

	err := rec.Destroy("no-such-object")
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.Is(err, apperrors.New(apperrors.CodeSceneObjectUnknown, "")) {
		t.Fatalf("expected SCENE_OBJECT_UNKNOWN, got %v", err)
	}
}

func TestRecorderAttachToUser(t *testing.T) {
	rec := NewRecorder()

	hatID, err := rec.CreateFromLibrary("artifact:eva-helmet", "", Transform{})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := rec.AttachToUser(hatID, AttachPointHead, "user-1"); err != nil {
		t.Fatalf("attach: %v", err)
	}

	obj, _ := rec.Object(hatID)
	if obj.AttachedTo != "user-1" {
		t.Fatalf("attached to = %q, want %q", obj.AttachedTo, "user-1")
	}
	if obj.Point != AttachPointHead {
		t.Fatalf("attach point = %q, want %q", obj.Point, AttachPointHead)
	}

	if err := rec.AttachToUser("missing", AttachPointHead, "user-1"); err == nil {
		t.Fatal("expected error for unknown object")
	}
}

func TestRecorderClickDispatchesToBoundHandler(t *testing.T) {
	rec := NewRecorder()

	boxID, err := rec.CreatePrimitive(PrimitiveSpec{Shape: ShapeBox, Dimensions: Uniform(0.5), Collider: true}, "", Transform{})
	if err != nil {
		t.Fatalf("create primitive: %v", err)
	}

	var clicked UserID
	if err := rec.BindClick(boxID, func(user UserID) { clicked = user }); err != nil {
		t.Fatalf("bind click: %v", err)
	}
	if err := rec.Click(boxID, "user-7"); err != nil {
		t.Fatalf("click: %v", err)
	}
	if clicked != "user-7" {
		t.Fatalf("handler saw %q, want %q", clicked, "user-7")
	}

	if err := rec.Click("missing", "user-7"); err == nil {
		t.Fatal("expected error for unbound object")
	}
}

func TestRecorderDestroyRemovesClickBinding(t *testing.T) {
	rec := NewRecorder()

	boxID, err := rec.CreatePrimitive(PrimitiveSpec{Shape: ShapeBox, Dimensions: Uniform(0.5), Collider: true}, "", Transform{})
	if err != nil {
		t.Fatalf("create primitive: %v", err)
	}
	if err := rec.BindClick(boxID, func(UserID) {}); err != nil {
		t.Fatalf("bind click: %v", err)
	}
	if err := rec.Destroy(boxID); err != nil {
		t.Fatalf("destroy: %v", err)
	}
	if err := rec.Click(boxID, "user-1"); err == nil {
		t.Fatal("expected click on destroyed object to fail")
	}
}

func TestRecorderObjectsPreserveCreationOrder(t *testing.T) {
	rec := NewRecorder()

	first, _ := rec.CreateContainer("a", "", Transform{})
	second, _ := rec.CreateContainer("b", "", Transform{})
	third, _ := rec.CreateContainer("c", "", Transform{})

	if err := rec.Destroy(second); err != nil {
		t.Fatalf("destroy: %v", err)
	}

	objects := rec.Objects()
	if len(objects) != 2 {
		t.Fatalf("len = %d, want 2", len(objects))
	}
	if objects[0].ID != first || objects[1].ID != third {
		t.Fatalf("order = [%s %s], want [%s %s]", objects[0].ID, objects[1].ID, first, third)
	}
}
