package handler

import (
	"errors"
	"fmt"
	"strings"

	"cfswitch/internal/cli/output"
	"cfswitch/internal/core"
	"cfswitch/internal/core/domain"
	"cfswitch/internal/ports"
)

// Lamdera apps are served from a fixed host; pointing the zone apex at it
// with a proxied CNAME is all the DNS setup an app needs.
const (
	lamderaAppHost      = "apps.lamdera.app"
	lamderaPlatformHost = "lamdera.app"
)

type LamderaCommandHandler struct {
	profileRepository core.ProfileRepository
	tokenRepository   core.TokenRepository
	cloudflare        ports.CloudflareClient
}

func ProvideLamderaCommandHandler(
	profileRepository core.ProfileRepository,
	tokenRepository core.TokenRepository,
	cloudflare ports.CloudflareClient,
) LamderaCommandHandler {
	return LamderaCommandHandler{
		profileRepository: profileRepository,
		tokenRepository:   tokenRepository,
		cloudflare:        cloudflare,
	}
}

// HandleAddApp creates the proxied CNAME record "@ -> apps.lamdera.app" for
// the resolved domain. A record that already exists is an idempotent
// success, not a failure.
func (h *LamderaCommandHandler) HandleAddApp(domainArg string) error {
	config, err := h.profileRepository.LoadConfig()
	if err != nil {
		return err
	}
	name, profile, target, err := resolveActiveTarget(config, domainArg)
	if err != nil {
		return err
	}
	token, err := h.tokenRepository.ResolveToken(name, profile)
	if err != nil {
		return err
	}

	output.PrintStep(fmt.Sprintf("Adding Lamdera DNS record for %s using profile '%s'...", output.Bold(target), output.Info(name)))
	created, err := h.cloudflare.CreateProxiedCNAME(profile.Email, token, target, "@", lamderaAppHost)
	if err != nil {
		if errors.Is(err, domain.ErrFlarectlNotInstalled) {
			output.PrintHint("Make sure flarectl is installed: brew install cloudflare/cloudflare/flarectl")
		}
		return err
	}
	if !created {
		output.PrintWarning(fmt.Sprintf("DNS record already exists for %s", target))
		return nil
	}

	output.PrintSuccess(fmt.Sprintf("DNS record created: %s -> %s (proxied)", output.Bold(target), lamderaAppHost))
	output.PrintLine("")
	output.PrintLine(output.Bold("Next step:"))
	output.PrintLine(fmt.Sprintf("DM Lamdera team with: https://%s/ and https://%s.%s/", target, dashedSubdomain(target), lamderaPlatformHost))
	return nil
}

// dashedSubdomain turns "my.app.com" into "my-app-com", the subdomain the
// platform serves the app under.
func dashedSubdomain(domain string) string {
	return strings.ReplaceAll(domain, ".", "-")
}
