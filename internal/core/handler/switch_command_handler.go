package handler

import (
	"fmt"

	"cfswitch/internal/cli/output"
	"cfswitch/internal/core"
	"cfswitch/internal/core/domain"
)

type SwitchCommandHandler struct {
	profileRepository core.ProfileRepository
	activator         *core.Activator
}

func ProvideSwitchCommandHandler(
	profileRepository core.ProfileRepository,
	activator *core.Activator,
) SwitchCommandHandler {
	return SwitchCommandHandler{
		profileRepository: profileRepository,
		activator:         activator,
	}
}

// HandleUse activates the named profile.
func (h *SwitchCommandHandler) HandleUse(name string) error {
	config, err := h.profileRepository.LoadConfig()
	if err != nil {
		return err
	}
	profile, err := h.activator.Activate(config, name)
	if err != nil {
		return err
	}
	return announceActivation(name, profile)
}

// HandleRotate activates the profile after the current one in sorted order,
// wrapping around. With no profiles configured it reports and exits cleanly.
func (h *SwitchCommandHandler) HandleRotate() error {
	config, err := h.profileRepository.LoadConfig()
	if err != nil {
		return err
	}
	if len(config.Profiles) == 0 {
		output.PrintWarning("No profiles configured.")
		output.PrintHint("Add one with: cf-switch add <name> -e <email> -t <token>")
		return nil
	}

	next := config.NextProfileName()
	profile, err := h.activator.Activate(config, next)
	if err != nil {
		return err
	}
	return announceActivation(next, profile)
}

// announceActivation prints the ON status line on stderr and the source
// command on stdout, for the shell hook to eval.
func announceActivation(name string, profile domain.Profile) error {
	output.PrintLine(fmt.Sprintf("%s %s (%s)", output.Success(output.Bold("ON")), output.Info(output.Bold(name)), profile.Email))

	envPath, err := core.EnvFilePath()
	if err != nil {
		return err
	}
	output.PrintEval("source " + envPath)
	return nil
}
