package handler

import (
	"errors"
	"fmt"

	"cfswitch/internal/cli/output"
	"cfswitch/internal/core"
	"cfswitch/internal/core/domain"
)

type CurrentCommandHandler struct {
	profileRepository core.ProfileRepository
}

func ProvideCurrentCommandHandler(profileRepository core.ProfileRepository) CurrentCommandHandler {
	return CurrentCommandHandler{profileRepository: profileRepository}
}

// HandleCurrent reports the active profile. Both "none active" and a current
// marker pointing at a removed profile are informational, not failures.
func (h *CurrentCommandHandler) HandleCurrent() error {
	config, err := h.profileRepository.LoadConfig()
	if err != nil {
		return err
	}

	name, profile, err := config.ActiveProfile()
	switch {
	case errors.Is(err, domain.ErrNoActiveProfile):
		output.PrintWarning("No profile currently active.")
		return nil
	case errors.Is(err, domain.ErrDanglingCurrent):
		output.PrintWarning("Current profile no longer exists.")
		return nil
	case err != nil:
		return err
	}

	output.PrintLine(fmt.Sprintf("%s %s (%s)", output.Success(output.Bold("ON")), output.Info(name), profile.Email))
	return nil
}
