// Package attachment owns the per-user wearable state machine.
//
// Each connected user is either unworn or wearing exactly one attachment.
// Selecting a wearable while worn replaces it (destroy old, create new);
// selecting the clear command, clearing, or leaving the session returns the
// user to unworn. The manager expects a single serialized caller and keeps
// no internal locking, matching the host's one-event-at-a-time delivery.
package attachment
