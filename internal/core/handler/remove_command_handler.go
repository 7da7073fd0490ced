package handler

import (
	"fmt"

	"cfswitch/internal/cli/output"
	"cfswitch/internal/core"
	"cfswitch/internal/core/domain"
)

type RemoveCommandHandler struct {
	profileRepository core.ProfileRepository
	tokenRepository   core.TokenRepository
}

func ProvideRemoveCommandHandler(
	profileRepository core.ProfileRepository,
	tokenRepository core.TokenRepository,
) RemoveCommandHandler {
	return RemoveCommandHandler{
		profileRepository: profileRepository,
		tokenRepository:   tokenRepository,
	}
}

// HandleRemove deletes a profile. Removing the active profile clears the
// current marker; removing any other profile leaves it untouched. Keyring
// cleanup is best-effort since the profile entry is already gone.
func (h *RemoveCommandHandler) HandleRemove(name string) error {
	config, err := h.profileRepository.LoadConfig()
	if err != nil {
		return err
	}
	profile, ok := config.Profiles[name]
	if !ok {
		return fmt.Errorf("%w: '%s'", domain.ErrProfileNotFound, name)
	}

	delete(config.Profiles, name)
	if config.Current == name {
		config.Current = ""
	}
	if err := h.profileRepository.SaveConfig(config); err != nil {
		return err
	}

	if profile.Keyring {
		if err := h.tokenRepository.DeleteToken(name); err != nil {
			output.PrintWarning(fmt.Sprintf("Could not remove keyring token: %v", err))
		}
	}

	output.PrintSuccess(fmt.Sprintf("Removed profile '%s'", name))
	return nil
}
