package catalog

import (
	"strings"

	apperrors "github.com/louisbranch/hatrack.space/internal/platform/errors"
)

// Kit names a wearable set variant selectable at session startup.
type Kit string

const (
	// KitAll merges every wearable set and is the default.
	KitAll Kit = "all"
	// KitCityHelmets is the city-themed headwear set.
	KitCityHelmets Kit = "city_helmets"
	// KitSpaceHelmets is the space-themed headwear set.
	KitSpaceHelmets Kit = "space_helmets"
)

// ParseKit maps a startup parameter to a Kit. Absent or unrecognized values
// select the full catalog.
func ParseKit(raw string) Kit {
	switch Kit(strings.TrimSpace(raw)) {
	case KitCityHelmets:
		return KitCityHelmets
	case KitSpaceHelmets:
		return KitSpaceHelmets
	default:
		return KitAll
	}
}

// ParseKitStrict maps a parameter to a Kit, rejecting unrecognized values.
// Operator surfaces use it so a typo does not silently select everything.
func ParseKitStrict(raw string) (Kit, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" || Kit(trimmed) == KitAll {
		return KitAll, nil
	}
	switch Kit(trimmed) {
	case KitCityHelmets, KitSpaceHelmets:
		return Kit(trimmed), nil
	}
	return "", apperrors.WithMetadata(apperrors.CodeKitUnknown, "unrecognized kit", map[string]string{
		"kit": trimmed,
	})
}
