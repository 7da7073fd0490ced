package core

import (
	"fmt"

	"cfswitch/internal/core/domain"
	"cfswitch/internal/ports"
)

// TokenRepository resolves a profile's API token from wherever it is stored:
// inline in the config file, or in the operating system keyring for profiles
// added with --keyring.
type TokenRepository interface {
	StoreToken(profileName, token string) error
	ResolveToken(profileName string, profile domain.Profile) (string, error)
	DeleteToken(profileName string) error
}

type KeyringTokenRepository struct {
	keyring ports.Keyring
}

func ProvideKeyringTokenRepository(keyring ports.Keyring) *KeyringTokenRepository {
	return &KeyringTokenRepository{keyring: keyring}
}

func (r *KeyringTokenRepository) StoreToken(profileName, token string) error {
	if err := r.keyring.SetKey(profileName, token); err != nil {
		return fmt.Errorf("failed to store token for profile '%s' in keyring: %w", profileName, err)
	}
	return nil
}

func (r *KeyringTokenRepository) ResolveToken(profileName string, profile domain.Profile) (string, error) {
	if !profile.Keyring {
		return profile.Token, nil
	}
	token, err := r.keyring.GetKey(profileName)
	if err != nil {
		return "", fmt.Errorf("failed to read token for profile '%s' from keyring: %w", profileName, err)
	}
	return token, nil
}

func (r *KeyringTokenRepository) DeleteToken(profileName string) error {
	if err := r.keyring.DeleteKey(profileName); err != nil {
		return fmt.Errorf("failed to delete token for profile '%s' from keyring: %w", profileName, err)
	}
	return nil
}
