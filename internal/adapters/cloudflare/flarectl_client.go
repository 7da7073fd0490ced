package cloudflare

import (
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"cfswitch/internal/core/domain"
	"cfswitch/internal/ports"
)

const binaryName = "flarectl"

// FlarectlClient drives the flarectl binary through a CommandRunner. The
// active profile's credentials are injected as process environment
// variables; flarectl reads CF_API_EMAIL plus either CF_API_KEY or
// CF_API_TOKEN, so the token is passed as both.
type FlarectlClient struct {
	commandRunner ports.CommandRunner
}

func ProvideFlarectlClient(commandRunner ports.CommandRunner) *FlarectlClient {
	return &FlarectlClient{commandRunner: commandRunner}
}

func (c *FlarectlClient) PurgeZone(email, token, zone string) error {
	out, err := c.commandRunner.RunWithEnv(
		binaryName,
		credentialEnv(email, token),
		"zone", "purge", "--zone", zone, "--everything",
	)
	if err != nil {
		return classify(err, out, fmt.Sprintf("purge cache for zone %s", zone))
	}
	return nil
}

func (c *FlarectlClient) CreateProxiedCNAME(email, token, zone, name, content string) (bool, error) {
	out, err := c.commandRunner.RunWithEnv(
		binaryName,
		credentialEnv(email, token),
		"dns", "create", "--zone", zone, "--type", "CNAME", "--name", name, "--content", content, "--proxy",
	)
	if err != nil {
		if strings.Contains(string(out), "already exists") {
			return false, nil
		}
		return false, classify(err, out, fmt.Sprintf("create DNS record for zone %s", zone))
	}
	return true, nil
}

func credentialEnv(email, token string) []string {
	return []string{
		"CF_API_EMAIL=" + email,
		"CF_API_KEY=" + token,
		"CF_API_TOKEN=" + token,
	}
}

// classify distinguishes "flarectl is not installed" from flarectl itself
// failing, in which case its output is surfaced verbatim.
func classify(err error, output []byte, operation string) error {
	if errors.Is(err, exec.ErrNotFound) {
		return fmt.Errorf("%w: %v", domain.ErrFlarectlNotInstalled, err)
	}
	return fmt.Errorf("failed to %s: %v\n%s", operation, err, strings.TrimSpace(string(output)))
}

var _ ports.CloudflareClient = (*FlarectlClient)(nil)
