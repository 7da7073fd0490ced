package handler

import (
	"fmt"

	"cfswitch/internal/core/domain"
)

// resolveActiveTarget returns the active profile and the zone/domain an
// operation should act on: an explicit argument wins over the profile's
// default zone, and having neither is a distinct failure.
func resolveActiveTarget(config *domain.Config, explicit string) (name string, profile domain.Profile, target string, err error) {
	name, profile, err = config.ActiveProfile()
	if err != nil {
		return "", domain.Profile{}, "", err
	}
	target = explicit
	if target == "" {
		target = profile.Zone
	}
	if target == "" {
		return "", domain.Profile{}, "", fmt.Errorf("%w and profile '%s' has no default zone", domain.ErrNoZoneSpecified, name)
	}
	return name, profile, target, nil
}
