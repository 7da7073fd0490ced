package core

import (
	"fmt"
	"os"
	"path/filepath"

	"al.essio.dev/pkg/shellescape"

	"cfswitch/internal/core/domain"
	"cfswitch/internal/ports"
)

var envFilePath = filepath.Join("~", ".cloudflare.env")

// Activator switches the active profile: it rewrites the shell environment
// export file with the profile's credentials, records the profile as
// current, and persists the config. The export file is a derived artifact,
// never read back by this tool.
type Activator struct {
	profileRepository ProfileRepository
	tokenRepository   TokenRepository
	fileSystem        ports.FileSystem
}

func ProvideActivator(
	profileRepository ProfileRepository,
	tokenRepository TokenRepository,
	fileSystem ports.FileSystem,
) *Activator {
	return &Activator{
		profileRepository: profileRepository,
		tokenRepository:   tokenRepository,
		fileSystem:        fileSystem,
	}
}

// Activate makes the named profile active. The environment file is written
// before the config is saved; if either write fails the activation as a
// whole fails and the command aborts.
func (a *Activator) Activate(config *domain.Config, name string) (domain.Profile, error) {
	profile, ok := config.Profiles[name]
	if !ok {
		return domain.Profile{}, fmt.Errorf("%w: '%s'", domain.ErrProfileNotFound, name)
	}

	token, err := a.tokenRepository.ResolveToken(name, profile)
	if err != nil {
		return domain.Profile{}, err
	}

	content := EnvFileContent(name, profile.Email, token)
	if err := a.fileSystem.WriteFile(envFilePath, []byte(content), ports.ReadWrite); err != nil {
		return domain.Profile{}, fmt.Errorf("failed to write environment file: %w", err)
	}

	config.Current = name
	if err := a.profileRepository.SaveConfig(config); err != nil {
		return domain.Profile{}, err
	}
	return profile, nil
}

// EnvFileContent renders the shell-sourceable export file: a comment naming
// the profile and three export statements. The token is exported as both API
// key and API token since flarectl accepts either.
func EnvFileContent(name, email, token string) string {
	return fmt.Sprintf(
		"# Cloudflare credentials - profile: %s\nexport CF_API_EMAIL=%s\nexport CF_API_KEY=%s\nexport CF_API_TOKEN=%s\n",
		name,
		shellescape.Quote(email),
		shellescape.Quote(token),
		shellescape.Quote(token),
	)
}

// EnvFilePath returns the absolute path of the environment export file, for
// the "source <path>" line emitted on stdout.
func EnvFilePath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}
	return filepath.Join(home, ".cloudflare.env"), nil
}
