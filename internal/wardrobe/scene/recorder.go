package scene

import (
	"fmt"

	apperrors "github.com/louisbranch/hatrack.space/internal/platform/errors"
	"github.com/louisbranch/hatrack.space/internal/platform/id"
)

// ObjectKind distinguishes how a recorded object was created.
type ObjectKind string

const (
	ObjectKindContainer ObjectKind = "container"
	ObjectKindLibrary   ObjectKind = "library"
	ObjectKindPrimitive ObjectKind = "primitive"
)

// Object is one live object tracked by the Recorder.
type Object struct {
	ID         ObjectID
	Kind       ObjectKind
	Name       string
	ResourceID string
	Spec       PrimitiveSpec
	Parent     ObjectID
	Transform  Transform
	AttachedTo UserID
	Point      AttachPoint
}

// Recorder is an in-memory Scene implementation.
//
// It backs package tests and the default app run loop, and doubles as the
// click dispatcher for the operator console: Click invokes the handler a
// builder bound to a menu object, exercising the same path a host click
// event would. Callers serialize access, matching the Scene contract.
type Recorder struct {
	objects  map[ObjectID]*Object
	order    []ObjectID
	handlers map[ObjectID]func(UserID)

	created   int
	destroyed int
}

// NewRecorder returns an empty in-memory scene.
func NewRecorder() *Recorder {
	return &Recorder{
		objects:  make(map[ObjectID]*Object),
		handlers: make(map[ObjectID]func(UserID)),
	}
}

func (r *Recorder) add(obj *Object) (ObjectID, error) {
	raw, err := id.NewID()
	if err != nil {
		return "", fmt.Errorf("allocate object id: %w", err)
	}
	obj.ID = ObjectID(raw)
	r.objects[obj.ID] = obj
	r.order = append(r.order, obj.ID)
	r.created++
	return obj.ID, nil
}

// CreateContainer records an empty grouping object.
func (r *Recorder) CreateContainer(name string, parent ObjectID, t Transform) (ObjectID, error) {
	return r.add(&Object{Kind: ObjectKindContainer, Name: name, Parent: parent, Transform: t})
}

// CreateFromLibrary records an instantiated library resource.
func (r *Recorder) CreateFromLibrary(resourceID string, parent ObjectID, t Transform) (ObjectID, error) {
	return r.add(&Object{Kind: ObjectKindLibrary, ResourceID: resourceID, Parent: parent, Transform: t})
}

// CreatePrimitive records a primitive placeholder object.
func (r *Recorder) CreatePrimitive(spec PrimitiveSpec, parent ObjectID, t Transform) (ObjectID, error) {
	return r.add(&Object{Kind: ObjectKindPrimitive, Spec: spec, Name: spec.Label, Parent: parent, Transform: t})
}

// Destroy removes a recorded object and its click binding.
func (r *Recorder) Destroy(objID ObjectID) error {
	if _, ok := r.objects[objID]; !ok {
		return apperrors.WithMetadata(apperrors.CodeSceneObjectUnknown, "destroy: object not in scene", map[string]string{
			"object_id": string(objID),
		})
	}
	delete(r.objects, objID)
	delete(r.handlers, objID)
	for i, candidate := range r.order {
		if candidate == objID {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	r.destroyed++
	return nil
}

// AttachToUser records an attachment of an object to a user anchor.
func (r *Recorder) AttachToUser(objID ObjectID, point AttachPoint, user UserID) error {
	obj, ok := r.objects[objID]
	if !ok {
		return apperrors.WithMetadata(apperrors.CodeSceneObjectUnknown, "attach: object not in scene", map[string]string{
			"object_id": string(objID),
		})
	}
	obj.AttachedTo = user
	obj.Point = point
	return nil
}

// BindClick registers the click handler for an object.
func (r *Recorder) BindClick(objID ObjectID, handler func(UserID)) error {
	if _, ok := r.objects[objID]; !ok {
		return apperrors.WithMetadata(apperrors.CodeSceneObjectUnknown, "bind click: object not in scene", map[string]string{
			"object_id": string(objID),
		})
	}
	r.handlers[objID] = handler
	return nil
}

// Click invokes the handler bound to an object, as a host click event would.
func (r *Recorder) Click(objID ObjectID, user UserID) error {
	handler, ok := r.handlers[objID]
	if !ok {
		return apperrors.WithMetadata(apperrors.CodeSceneObjectUnknown, "click: no handler bound for object", map[string]string{
			"object_id": string(objID),
		})
	}
	handler(user)
	return nil
}

// Object returns the recorded object for an id.
func (r *Recorder) Object(objID ObjectID) (Object, bool) {
	obj, ok := r.objects[objID]
	if !ok {
		return Object{}, false
	}
	return *obj, true
}

// Objects returns live objects in creation order.
func (r *Recorder) Objects() []Object {
	out := make([]Object, 0, len(r.order))
	for _, objID := range r.order {
		out = append(out, *r.objects[objID])
	}
	return out
}

// Live returns the number of objects currently in the scene.
func (r *Recorder) Live() int {
	return len(r.objects)
}

// Created returns the total number of objects ever created.
func (r *Recorder) Created() int {
	return r.created
}

// Destroyed returns the total number of objects destroyed.
func (r *Recorder) Destroyed() int {
	return r.destroyed
}
