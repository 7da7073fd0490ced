package handler

import (
	"fmt"

	"cfswitch/internal/cli/output"
	"cfswitch/internal/core"
)

type ListCommandHandler struct {
	profileRepository core.ProfileRepository
}

func ProvideListCommandHandler(profileRepository core.ProfileRepository) ListCommandHandler {
	return ListCommandHandler{profileRepository: profileRepository}
}

// HandleList prints all profiles in lexicographic order, marking the active
// one. The ordering is a usability contract, not incidental.
func (h *ListCommandHandler) HandleList() error {
	config, err := h.profileRepository.LoadConfig()
	if err != nil {
		return err
	}
	if len(config.Profiles) == 0 {
		output.PrintWarning("No profiles configured.")
		output.PrintHint("Add one with: cf-switch add <name> -e <email> -t <token>")
		return nil
	}

	output.PrintHeader("Cloudflare Profiles:")
	for _, name := range config.SortedNames() {
		profile := config.Profiles[name]
		marker := "  "
		if name == config.Current {
			marker = output.Success(output.Bold("ON"))
		}
		output.PrintLine(fmt.Sprintf("%s %s (%s)", marker, output.Info(name), profile.Email))
	}
	return nil
}
