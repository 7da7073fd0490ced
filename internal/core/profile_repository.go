package core

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"cfswitch/internal/core/domain"
	"cfswitch/internal/ports"
)

var configFilePath = filepath.Join("~", ".cf-switch.json")

// ProfileRepository loads and persists the profile configuration. The
// on-disk file is the only process-wide state; there is no caching between
// invocations.
type ProfileRepository interface {
	LoadConfig() (*domain.Config, error)
	SaveConfig(*domain.Config) error
}

type FileSystemProfileRepository struct {
	fileSystem ports.FileSystem
}

func ProvideFileSystemProfileRepository(fileSystem ports.FileSystem) *FileSystemProfileRepository {
	return &FileSystemProfileRepository{fileSystem: fileSystem}
}

// LoadConfig reads ~/.cf-switch.json. A missing file yields an empty config.
// An unparsable file also yields an empty config so the command can still
// run, but a warning is printed since saving afterwards discards the
// unreadable profiles.
func (r *FileSystemProfileRepository) LoadConfig() (*domain.Config, error) {
	exists, err := r.fileSystem.FileExists(configFilePath)
	if err != nil {
		return nil, fmt.Errorf("failed to check config file: %w", err)
	}
	if !exists {
		return domain.NewConfig(), nil
	}

	data, err := r.fileSystem.ReadFile(configFilePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config domain.Config
	if err := json.Unmarshal(data, &config); err != nil {
		fmt.Fprintf(os.Stderr, "WARN: config file %s is not valid JSON, starting from an empty config: %v\n", configFilePath, err)
		return domain.NewConfig(), nil
	}
	if config.Profiles == nil {
		config.Profiles = map[string]domain.Profile{}
	}
	return &config, nil
}

// SaveConfig overwrites the whole config file with a pretty-printed document.
func (r *FileSystemProfileRepository) SaveConfig(config *domain.Config) error {
	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	data = append(data, '\n')

	if err := r.fileSystem.WriteFile(configFilePath, data, ports.ReadWrite); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}
