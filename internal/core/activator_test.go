package core

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"cfswitch/internal/core/domain"
	"cfswitch/internal/testutil"
)

func twoProfileConfig() *domain.Config {
	return &domain.Config{
		Profiles: map[string]domain.Profile{
			"personal": {Email: "me@home.com", Token: "personal-token", Zone: "example.com"},
			"work":     {Email: "me@work.com", Token: "work-token"},
		},
	}
}

func TestActivate_WritesEnvFileAndPersistsCurrent(t *testing.T) {
	profileRepository := new(testutil.MockProfileRepository)
	tokenRepository := new(testutil.MockTokenRepository)
	fs := testutil.NewTestFileSystem(t)
	config := twoProfileConfig()
	tokenRepository.On("ResolveToken", "personal", config.Profiles["personal"]).Return("personal-token", nil)
	profileRepository.On("SaveConfig", config).Return(nil)
	sut := ProvideActivator(profileRepository, tokenRepository, fs)

	profile, err := sut.Activate(config, "personal")

	assert.NoError(t, err)
	assert.Equal(t, "me@home.com", profile.Email)
	assert.Equal(t, "personal", config.Current)

	content, err := fs.ReadFile(envFilePath)
	assert.NoError(t, err)
	assert.Equal(t,
		"# Cloudflare credentials - profile: personal\n"+
			"export CF_API_EMAIL=me@home.com\n"+
			"export CF_API_KEY=personal-token\n"+
			"export CF_API_TOKEN=personal-token\n",
		string(content))

	profileRepository.AssertExpectations(t)
	tokenRepository.AssertExpectations(t)
}

func TestActivate_RewritesEnvFileOnEachActivation(t *testing.T) {
	profileRepository := new(testutil.MockProfileRepository)
	tokenRepository := new(testutil.MockTokenRepository)
	fs := testutil.NewTestFileSystem(t)
	config := twoProfileConfig()
	tokenRepository.On("ResolveToken", mock.Anything, mock.Anything).Return("work-token", nil)
	profileRepository.On("SaveConfig", config).Return(nil)
	sut := ProvideActivator(profileRepository, tokenRepository, fs)

	_, err := sut.Activate(config, "personal")
	assert.NoError(t, err)
	_, err = sut.Activate(config, "work")
	assert.NoError(t, err)

	content, err := fs.ReadFile(envFilePath)
	assert.NoError(t, err)
	assert.Contains(t, string(content), "profile: work")
	assert.Contains(t, string(content), "export CF_API_EMAIL=me@work.com")
	assert.Equal(t, "work", config.Current)
}

func TestActivate_DoesNotModifyProfileSet(t *testing.T) {
	profileRepository := new(testutil.MockProfileRepository)
	tokenRepository := new(testutil.MockTokenRepository)
	fs := testutil.NewTestFileSystem(t)
	config := twoProfileConfig()
	before := map[string]domain.Profile{}
	for name, profile := range config.Profiles {
		before[name] = profile
	}
	tokenRepository.On("ResolveToken", mock.Anything, mock.Anything).Return("t", nil)
	profileRepository.On("SaveConfig", config).Return(nil)
	sut := ProvideActivator(profileRepository, tokenRepository, fs)

	_, err := sut.Activate(config, "work")

	assert.NoError(t, err)
	assert.Equal(t, before, config.Profiles)
}

func TestActivate_UnknownProfile(t *testing.T) {
	profileRepository := new(testutil.MockProfileRepository)
	tokenRepository := new(testutil.MockTokenRepository)
	fs := testutil.NewTestFileSystem(t)
	config := twoProfileConfig()
	sut := ProvideActivator(profileRepository, tokenRepository, fs)

	_, err := sut.Activate(config, "missing")

	assert.ErrorIs(t, err, domain.ErrProfileNotFound)
	assert.Empty(t, config.Current)
	exists, _ := fs.FileExists(envFilePath)
	assert.False(t, exists, "env file must not be written for a failed activation")
	profileRepository.AssertNotCalled(t, "SaveConfig", mock.Anything)
}

func TestActivate_EnvWriteFailureAbortsBeforeSave(t *testing.T) {
	profileRepository := new(testutil.MockProfileRepository)
	tokenRepository := new(testutil.MockTokenRepository)
	fileSystem := new(testutil.MockFileSystem)
	config := twoProfileConfig()
	expectedErr := errors.New("disk full")
	tokenRepository.On("ResolveToken", mock.Anything, mock.Anything).Return("t", nil)
	fileSystem.On("WriteFile", envFilePath, mock.Anything, mock.Anything).Return(expectedErr)
	sut := ProvideActivator(profileRepository, tokenRepository, fileSystem)

	_, err := sut.Activate(config, "work")

	assert.ErrorIs(t, err, expectedErr)
	profileRepository.AssertNotCalled(t, "SaveConfig", mock.Anything)
}

func TestActivate_SaveFailurePropagates(t *testing.T) {
	profileRepository := new(testutil.MockProfileRepository)
	tokenRepository := new(testutil.MockTokenRepository)
	fs := testutil.NewTestFileSystem(t)
	config := twoProfileConfig()
	expectedErr := errors.New("save error")
	tokenRepository.On("ResolveToken", mock.Anything, mock.Anything).Return("t", nil)
	profileRepository.On("SaveConfig", config).Return(expectedErr)
	sut := ProvideActivator(profileRepository, tokenRepository, fs)

	_, err := sut.Activate(config, "work")

	assert.ErrorIs(t, err, expectedErr)
}

func TestEnvFileContent_QuotesUnsafeValues(t *testing.T) {
	content := EnvFileContent("work", "me@work.com", "token with spaces")

	assert.Contains(t, content, "export CF_API_TOKEN='token with spaces'\n")
	assert.Contains(t, content, "export CF_API_EMAIL=me@work.com\n")
}
