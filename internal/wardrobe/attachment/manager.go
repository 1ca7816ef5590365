package attachment

import (
	"log"
	"sort"

	apperrors "github.com/louisbranch/hatrack.space/internal/platform/errors"
	"github.com/louisbranch/hatrack.space/internal/wardrobe/catalog"
	"github.com/louisbranch/hatrack.space/internal/wardrobe/scene"
)

// Attach-time transform defaults. Each component applies independently when
// the catalog entry omits it. The 180-degree yaw turns the wearable to face
// away from the camera-forward convention used by worn headwear.
var (
	defaultAttachPosition = scene.Vec3{}
	defaultAttachScale    = scene.Uniform(1.5)
	defaultAttachRotation = scene.Vec3{Y: 180}
)

// Attachment is one user's currently worn wearable instance.
type Attachment struct {
	WearableID string
	ObjectID   scene.ObjectID
}

// UserAttachment pairs a user with their attachment for inspection surfaces.
type UserAttachment struct {
	UserID     scene.UserID
	WearableID string
	ObjectID   scene.ObjectID
}

// Manager tracks which wearable each connected user currently wears and
// issues the matching scene mutations. At most one attachment exists per
// user at any time.
type Manager struct {
	scene   scene.Scene
	catalog *catalog.Catalog
	worn    map[scene.UserID]Attachment
}

// NewManager returns a manager with no attachments.
func NewManager(sc scene.Scene, cat *catalog.Catalog) *Manager {
	return &Manager{
		scene:   sc,
		catalog: cat,
		worn:    make(map[scene.UserID]Attachment),
	}
}

// AttachTransform resolves an entry's attach-time transform, defaulting each
// omitted component independently.
func AttachTransform(entry catalog.Entry) scene.Transform {
	t := scene.Transform{
		Position: defaultAttachPosition,
		Scale:    defaultAttachScale,
		Rotation: defaultAttachRotation,
	}
	if entry.Position != nil {
		t.Position = *entry.Position
	}
	if entry.Scale != nil {
		t.Scale = *entry.Scale
	}
	if entry.Rotation != nil {
		t.Rotation = *entry.Rotation
	}
	return t
}

// Select handles a user activating a menu entry.
//
// The clear command is equivalent to Clear. Selecting while worn replaces:
// the old attachment is destroyed before the new one is created, so a user
// never has two attachments. Unknown wearable ids are rejected with the
// state unchanged; menu entries are built from the catalog, so only forged
// selections can trigger that path.
func (m *Manager) Select(wearableID string, user scene.UserID) error {
	if wearableID == "" {
		return apperrors.New(apperrors.CodeWearableIDEmpty, "select: wearable id is required")
	}
	if user == "" {
		return apperrors.New(apperrors.CodeUserIDEmpty, "select: user id is required")
	}

	entry, ok := m.catalog.Get(wearableID)
	if !ok {
		return apperrors.WithMetadata(apperrors.CodeWearableUnknown, "select: wearable not in catalog", map[string]string{
			"wearable_id": wearableID,
		})
	}
	if entry.Kind == catalog.KindClearCommand {
		return m.Clear(user)
	}
	if !entry.Attachable() {
		return apperrors.WithMetadata(apperrors.CodeWearableNotAttachable, "select: entry has no visual resource", map[string]string{
			"wearable_id": wearableID,
		})
	}

	if err := m.Clear(user); err != nil {
		return err
	}

	objID, err := m.scene.CreateFromLibrary(entry.ResourceID, "", AttachTransform(entry))
	if err != nil {
		return err
	}
	if err := m.scene.AttachToUser(objID, scene.AttachPointHead, user); err != nil {
		// Keep the scene consistent with the mapping: an object we could
		// not attach must not outlive the failed select.
		if destroyErr := m.scene.Destroy(objID); destroyErr != nil {
			log.Printf("destroy unattached wearable %s: %v", objID, destroyErr)
		}
		return err
	}

	m.worn[user] = Attachment{WearableID: wearableID, ObjectID: objID}
	return nil
}

// Clear removes the user's attachment, if any. Clearing an unworn user is a
// no-op, not an error.
func (m *Manager) Clear(user scene.UserID) error {
	if user == "" {
		return apperrors.New(apperrors.CodeUserIDEmpty, "clear: user id is required")
	}
	current, ok := m.worn[user]
	if !ok {
		return nil
	}
	if err := m.scene.Destroy(current.ObjectID); err != nil {
		return err
	}
	delete(m.worn, user)
	return nil
}

// UserLeft force-clears a departing user so no attachment outlives its
// owner's presence in the session.
func (m *Manager) UserLeft(user scene.UserID) error {
	return m.Clear(user)
}

// Worn returns the user's current attachment.
func (m *Manager) Worn(user scene.UserID) (Attachment, bool) {
	current, ok := m.worn[user]
	return current, ok
}

// WornCount returns the number of users currently wearing something.
func (m *Manager) WornCount() int {
	return len(m.worn)
}

// Snapshot returns all attachments ordered by user id.
func (m *Manager) Snapshot() []UserAttachment {
	out := make([]UserAttachment, 0, len(m.worn))
	for user, current := range m.worn {
		out = append(out, UserAttachment{
			UserID:     user,
			WearableID: current.WearableID,
			ObjectID:   current.ObjectID,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].UserID < out[j].UserID })
	return out
}
