package handler

import (
	"errors"
	"fmt"

	"cfswitch/internal/cli/output"
	"cfswitch/internal/core"
	"cfswitch/internal/core/domain"
	"cfswitch/internal/ports"
)

type PurgeCommandHandler struct {
	profileRepository core.ProfileRepository
	tokenRepository   core.TokenRepository
	cloudflare        ports.CloudflareClient
}

func ProvidePurgeCommandHandler(
	profileRepository core.ProfileRepository,
	tokenRepository core.TokenRepository,
	cloudflare ports.CloudflareClient,
) PurgeCommandHandler {
	return PurgeCommandHandler{
		profileRepository: profileRepository,
		tokenRepository:   tokenRepository,
		cloudflare:        cloudflare,
	}
}

// HandlePurge purges the full cache of the resolved zone using the active
// profile's credentials. The config is only read, never mutated.
func (h *PurgeCommandHandler) HandlePurge(zone string) error {
	config, err := h.profileRepository.LoadConfig()
	if err != nil {
		return err
	}
	name, profile, target, err := resolveActiveTarget(config, zone)
	if err != nil {
		return err
	}
	token, err := h.tokenRepository.ResolveToken(name, profile)
	if err != nil {
		return err
	}

	output.PrintStep(fmt.Sprintf("Purging cache for %s using profile '%s'...", output.Bold(target), output.Info(name)))
	if err := h.cloudflare.PurgeZone(profile.Email, token, target); err != nil {
		if errors.Is(err, domain.ErrFlarectlNotInstalled) {
			output.PrintHint("Make sure flarectl is installed: brew install cloudflare/cloudflare/flarectl")
		}
		return err
	}

	output.PrintSuccess(fmt.Sprintf("Cache purged for %s", output.Bold(target)))
	return nil
}
