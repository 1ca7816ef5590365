package scene

// ObjectID identifies one live object in the host scene.
type ObjectID string

// UserID identifies a connected user. The host owns the user registry; the
// wardrobe core treats the id as an opaque foreign key.
type UserID string

// AttachPoint names an avatar anchor that objects can be parented to.
type AttachPoint string

// AttachPointHead is the anchor used for worn headwear.
const AttachPointHead AttachPoint = "head"

// Shape selects a primitive geometry for placeholder objects.
type Shape string

// ShapeBox is the only primitive the wardrobe menu needs.
const ShapeBox Shape = "box"

// PrimitiveSpec describes a primitive placeholder object.
type PrimitiveSpec struct {
	Shape      Shape
	Dimensions Vec3
	// Label is optional display text carried by the primitive.
	Label string
	// Collider makes the primitive clickable in the host scene.
	Collider bool
}

// Scene is the host-runtime collaborator surface the wardrobe core consumes.
//
// Implementations must treat every call as a non-blocking intent record. The
// caller serializes access; implementations are not required to be safe for
// concurrent use.
type Scene interface {
	// CreateContainer creates an empty grouping object.
	CreateContainer(name string, parent ObjectID, t Transform) (ObjectID, error)

	// CreateFromLibrary instantiates a host-managed visual resource.
	CreateFromLibrary(resourceID string, parent ObjectID, t Transform) (ObjectID, error)

	// CreatePrimitive creates a primitive placeholder object.
	CreatePrimitive(spec PrimitiveSpec, parent ObjectID, t Transform) (ObjectID, error)

	// Destroy removes an object from the scene.
	Destroy(id ObjectID) error

	// AttachToUser parents an object to one of a user's avatar anchors.
	AttachToUser(id ObjectID, point AttachPoint, user UserID) error

	// BindClick registers a click handler invoked with the clicking user.
	BindClick(id ObjectID, handler func(UserID)) error
}
