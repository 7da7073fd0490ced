package handler

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"cfswitch/internal/core/domain"
	"cfswitch/internal/testutil"
)

func TestAddCommandHandler_Success(t *testing.T) {
	profileRepository := new(testutil.MockProfileRepository)
	tokenRepository := new(testutil.MockTokenRepository)
	terminalInput := new(testutil.MockTerminalInput)

	config := domain.NewConfig()
	profileRepository.On("LoadConfig").Return(config, nil)
	profileRepository.On("SaveConfig", config).Return(nil)

	sut := ProvideAddCommandHandler(profileRepository, tokenRepository, terminalInput)

	err := sut.HandleAdd("work", "me@work.com", "tok", "example.com", false)

	assert.NoError(t, err)
	assert.Equal(t, domain.Profile{Email: "me@work.com", Token: "tok", Zone: "example.com"}, config.Profiles["work"])
	profileRepository.AssertExpectations(t)
}

func TestAddCommandHandler_DuplicateNameFailsAndLeavesProfileUntouched(t *testing.T) {
	profileRepository := new(testutil.MockProfileRepository)
	tokenRepository := new(testutil.MockTokenRepository)
	terminalInput := new(testutil.MockTerminalInput)

	original := domain.Profile{Email: "first@work.com", Token: "first-token"}
	config := domain.NewConfig()
	config.Profiles["work"] = original
	profileRepository.On("LoadConfig").Return(config, nil)

	sut := ProvideAddCommandHandler(profileRepository, tokenRepository, terminalInput)

	err := sut.HandleAdd("work", "second@work.com", "second-token", "", false)

	assert.ErrorIs(t, err, domain.ErrProfileExists)
	assert.Equal(t, original, config.Profiles["work"])
	profileRepository.AssertNotCalled(t, "SaveConfig", mock.Anything)
}

func TestAddCommandHandler_PromptsForMissingToken(t *testing.T) {
	profileRepository := new(testutil.MockProfileRepository)
	tokenRepository := new(testutil.MockTokenRepository)
	terminalInput := new(testutil.MockTerminalInput)

	config := domain.NewConfig()
	profileRepository.On("LoadConfig").Return(config, nil)
	profileRepository.On("SaveConfig", config).Return(nil)
	terminalInput.On("IsTerminal").Return(true)
	terminalInput.On("ReadPassword", mock.Anything).Return("prompted-token", nil)

	sut := ProvideAddCommandHandler(profileRepository, tokenRepository, terminalInput)

	err := sut.HandleAdd("work", "me@work.com", "", "", false)

	assert.NoError(t, err)
	assert.Equal(t, "prompted-token", config.Profiles["work"].Token)
	terminalInput.AssertExpectations(t)
}

func TestAddCommandHandler_MissingTokenWithoutTerminalFails(t *testing.T) {
	profileRepository := new(testutil.MockProfileRepository)
	tokenRepository := new(testutil.MockTokenRepository)
	terminalInput := new(testutil.MockTerminalInput)

	profileRepository.On("LoadConfig").Return(domain.NewConfig(), nil)
	terminalInput.On("IsTerminal").Return(false)

	sut := ProvideAddCommandHandler(profileRepository, tokenRepository, terminalInput)

	err := sut.HandleAdd("work", "me@work.com", "", "", false)

	assert.Error(t, err)
	profileRepository.AssertNotCalled(t, "SaveConfig", mock.Anything)
}

func TestAddCommandHandler_KeyringStoresTokenOutsideConfig(t *testing.T) {
	profileRepository := new(testutil.MockProfileRepository)
	tokenRepository := new(testutil.MockTokenRepository)
	terminalInput := new(testutil.MockTerminalInput)

	config := domain.NewConfig()
	profileRepository.On("LoadConfig").Return(config, nil)
	profileRepository.On("SaveConfig", config).Return(nil)
	tokenRepository.On("StoreToken", "work", "tok").Return(nil)

	sut := ProvideAddCommandHandler(profileRepository, tokenRepository, terminalInput)

	err := sut.HandleAdd("work", "me@work.com", "tok", "", true)

	assert.NoError(t, err)
	assert.True(t, config.Profiles["work"].Keyring)
	assert.Empty(t, config.Profiles["work"].Token)
	tokenRepository.AssertExpectations(t)
}

func TestAddCommandHandler_KeyringStoreErrorAborts(t *testing.T) {
	profileRepository := new(testutil.MockProfileRepository)
	tokenRepository := new(testutil.MockTokenRepository)
	terminalInput := new(testutil.MockTerminalInput)

	expectedErr := errors.New("keyring unavailable")
	profileRepository.On("LoadConfig").Return(domain.NewConfig(), nil)
	tokenRepository.On("StoreToken", "work", "tok").Return(expectedErr)

	sut := ProvideAddCommandHandler(profileRepository, tokenRepository, terminalInput)

	err := sut.HandleAdd("work", "me@work.com", "tok", "", true)

	assert.ErrorIs(t, err, expectedErr)
	profileRepository.AssertNotCalled(t, "SaveConfig", mock.Anything)
}

func TestAddCommandHandler_LoadConfigErrorPropagates(t *testing.T) {
	profileRepository := new(testutil.MockProfileRepository)
	tokenRepository := new(testutil.MockTokenRepository)
	terminalInput := new(testutil.MockTerminalInput)

	expectedErr := errors.New("load config error")
	profileRepository.On("LoadConfig").Return(nil, expectedErr)

	sut := ProvideAddCommandHandler(profileRepository, tokenRepository, terminalInput)

	err := sut.HandleAdd("work", "me@work.com", "tok", "", false)

	assert.Equal(t, expectedErr, err)
}
