package handler

import (
	"fmt"

	"cfswitch/internal/cli/output"
	"cfswitch/internal/core"
	"cfswitch/internal/core/domain"
	"cfswitch/internal/ports"
)

type AddCommandHandler struct {
	profileRepository core.ProfileRepository
	tokenRepository   core.TokenRepository
	terminalInput     ports.TerminalInput
}

func ProvideAddCommandHandler(
	profileRepository core.ProfileRepository,
	tokenRepository core.TokenRepository,
	terminalInput ports.TerminalInput,
) AddCommandHandler {
	return AddCommandHandler{
		profileRepository: profileRepository,
		tokenRepository:   tokenRepository,
		terminalInput:     terminalInput,
	}
}

// HandleAdd registers a new profile. Adding never mutates an existing
// profile; a duplicate name fails. An empty token is prompted for securely.
// With useKeyring the token goes to the OS keyring and never touches the
// config file.
func (h *AddCommandHandler) HandleAdd(name, email, token, zone string, useKeyring bool) error {
	config, err := h.profileRepository.LoadConfig()
	if err != nil {
		return err
	}
	if config.ProfileExists(name) {
		return fmt.Errorf("%w: '%s'", domain.ErrProfileExists, name)
	}

	if token == "" {
		if !h.terminalInput.IsTerminal() {
			return fmt.Errorf("no token given and no terminal available to prompt for one")
		}
		token, err = h.terminalInput.ReadPassword(fmt.Sprintf("Enter API token for %s: ", output.Bold(name)))
		if err != nil {
			return err
		}
		if token == "" {
			return fmt.Errorf("token cannot be empty")
		}
	}

	profile := domain.Profile{Email: email, Zone: zone}
	if useKeyring {
		if err := h.tokenRepository.StoreToken(name, token); err != nil {
			return err
		}
		profile.Keyring = true
	} else {
		profile.Token = token
	}

	config.Profiles[name] = profile
	if err := h.profileRepository.SaveConfig(config); err != nil {
		return err
	}

	if zone != "" {
		output.PrintSuccess(fmt.Sprintf("Added profile '%s' with zone '%s'", output.Info(name), zone))
	} else {
		output.PrintSuccess(fmt.Sprintf("Added profile '%s'", output.Info(name)))
	}
	return nil
}
