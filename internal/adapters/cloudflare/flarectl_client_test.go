package cloudflare

import (
	"errors"
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"cfswitch/internal/core/domain"
	"cfswitch/internal/testutil"
)

var wantEnv = []string{
	"CF_API_EMAIL=me@work.com",
	"CF_API_KEY=tok",
	"CF_API_TOKEN=tok",
}

func TestPurgeZone_InvokesFlarectlWithCredentials(t *testing.T) {
	commandRunner := new(testutil.MockCommandRunner)
	commandRunner.On("RunWithEnv", "flarectl", wantEnv,
		[]string{"zone", "purge", "--zone", "example.com", "--everything"},
	).Return([]byte("Purged everything"), nil)

	sut := ProvideFlarectlClient(commandRunner)

	err := sut.PurgeZone("me@work.com", "tok", "example.com")

	assert.NoError(t, err)
	commandRunner.AssertExpectations(t)
}

func TestPurgeZone_SurfacesFlarectlOutput(t *testing.T) {
	commandRunner := new(testutil.MockCommandRunner)
	commandRunner.On("RunWithEnv", mock.Anything, mock.Anything, mock.Anything).
		Return([]byte("API error 9103: Unknown X-Auth-Key or X-Auth-Email"), errors.New("exit status 1"))

	sut := ProvideFlarectlClient(commandRunner)

	err := sut.PurgeZone("me@work.com", "tok", "example.com")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "API error 9103")
	assert.NotErrorIs(t, err, domain.ErrFlarectlNotInstalled)
}

func TestPurgeZone_MissingBinary(t *testing.T) {
	commandRunner := new(testutil.MockCommandRunner)
	commandRunner.On("RunWithEnv", mock.Anything, mock.Anything, mock.Anything).
		Return(nil, &exec.Error{Name: "flarectl", Err: exec.ErrNotFound})

	sut := ProvideFlarectlClient(commandRunner)

	err := sut.PurgeZone("me@work.com", "tok", "example.com")

	assert.ErrorIs(t, err, domain.ErrFlarectlNotInstalled)
}

func TestCreateProxiedCNAME_InvokesFlarectl(t *testing.T) {
	commandRunner := new(testutil.MockCommandRunner)
	commandRunner.On("RunWithEnv", "flarectl", wantEnv,
		[]string{"dns", "create", "--zone", "myapp.com", "--type", "CNAME", "--name", "@", "--content", "apps.lamdera.app", "--proxy"},
	).Return([]byte("Created record"), nil)

	sut := ProvideFlarectlClient(commandRunner)

	created, err := sut.CreateProxiedCNAME("me@work.com", "tok", "myapp.com", "@", "apps.lamdera.app")

	assert.NoError(t, err)
	assert.True(t, created)
	commandRunner.AssertExpectations(t)
}

func TestCreateProxiedCNAME_AlreadyExistsIsIdempotent(t *testing.T) {
	commandRunner := new(testutil.MockCommandRunner)
	commandRunner.On("RunWithEnv", mock.Anything, mock.Anything, mock.Anything).
		Return([]byte("API error 81053: An A, AAAA, or CNAME record with that host already exists"), errors.New("exit status 1"))

	sut := ProvideFlarectlClient(commandRunner)

	created, err := sut.CreateProxiedCNAME("me@work.com", "tok", "myapp.com", "@", "apps.lamdera.app")

	assert.NoError(t, err)
	assert.False(t, created)
}

func TestCreateProxiedCNAME_OtherFailurePropagates(t *testing.T) {
	commandRunner := new(testutil.MockCommandRunner)
	commandRunner.On("RunWithEnv", mock.Anything, mock.Anything, mock.Anything).
		Return([]byte("API error 1001: invalid zone"), errors.New("exit status 1"))

	sut := ProvideFlarectlClient(commandRunner)

	created, err := sut.CreateProxiedCNAME("me@work.com", "tok", "myapp.com", "@", "apps.lamdera.app")

	assert.Error(t, err)
	assert.False(t, created)
	assert.Contains(t, err.Error(), "API error 1001")
}

func TestCreateProxiedCNAME_MissingBinary(t *testing.T) {
	commandRunner := new(testutil.MockCommandRunner)
	commandRunner.On("RunWithEnv", mock.Anything, mock.Anything, mock.Anything).
		Return(nil, &exec.Error{Name: "flarectl", Err: exec.ErrNotFound})

	sut := ProvideFlarectlClient(commandRunner)

	_, err := sut.CreateProxiedCNAME("me@work.com", "tok", "myapp.com", "@", "apps.lamdera.app")

	assert.ErrorIs(t, err, domain.ErrFlarectlNotInstalled)
}
