// Package errors provides structured error handling for the wardrobe service.
package errors

import "google.golang.org/grpc/codes"

// Code is a machine-readable error code.
type Code string

const (
	// CodeUnknown represents an unknown error.
	CodeUnknown Code = "UNKNOWN"

	// Catalog errors
	CodeConfigurationMissing Code = "CONFIGURATION_MISSING"
	CodeConfigurationInvalid Code = "CONFIGURATION_INVALID"
	CodeKitUnknown           Code = "KIT_UNKNOWN"

	// Wearable errors
	CodeWearableUnknown       Code = "WEARABLE_UNKNOWN"
	CodeWearableNotAttachable Code = "WEARABLE_NOT_ATTACHABLE"
	CodeWearableIDEmpty       Code = "WEARABLE_ID_EMPTY"

	// User errors
	CodeUserIDEmpty Code = "USER_ID_EMPTY"

	// Session errors
	CodeSessionNotStarted     Code = "SESSION_NOT_STARTED"
	CodeSessionAlreadyStarted Code = "SESSION_ALREADY_STARTED"

	// Scene errors
	CodeSceneObjectUnknown Code = "SCENE_OBJECT_UNKNOWN"
)

// GRPCCode maps domain codes to gRPC status codes.
func (c Code) GRPCCode() codes.Code {
	switch c {
	// InvalidArgument - validation failures, bad input
	case CodeKitUnknown,
		CodeWearableIDEmpty,
		CodeUserIDEmpty:
		return codes.InvalidArgument

	// NotFound - referenced entity does not exist
	case CodeWearableUnknown,
		CodeSceneObjectUnknown:
		return codes.NotFound

	// FailedPrecondition - operation invalid for the current state
	case CodeWearableNotAttachable,
		CodeSessionNotStarted,
		CodeSessionAlreadyStarted:
		return codes.FailedPrecondition

	// Internal - configuration and other startup failures
	case CodeConfigurationMissing,
		CodeConfigurationInvalid:
		return codes.Internal

	default:
		return codes.Unknown
	}
}
