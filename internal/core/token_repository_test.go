package core

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"cfswitch/internal/core/domain"
	"cfswitch/internal/testutil"
)

func TestResolveToken_InlineTokenSkipsKeyring(t *testing.T) {
	keyring := new(testutil.MockKeyring)
	sut := ProvideKeyringTokenRepository(keyring)

	token, err := sut.ResolveToken("work", domain.Profile{Token: "inline-token"})

	assert.NoError(t, err)
	assert.Equal(t, "inline-token", token)
	keyring.AssertNotCalled(t, "GetKey")
}

func TestResolveToken_KeyringProfileReadsKeyring(t *testing.T) {
	keyring := new(testutil.MockKeyring)
	keyring.On("GetKey", "work").Return("keyring-token", nil)
	sut := ProvideKeyringTokenRepository(keyring)

	token, err := sut.ResolveToken("work", domain.Profile{Keyring: true})

	assert.NoError(t, err)
	assert.Equal(t, "keyring-token", token)
	keyring.AssertExpectations(t)
}

func TestResolveToken_KeyringErrorPropagates(t *testing.T) {
	keyring := new(testutil.MockKeyring)
	expectedErr := errors.New("keyring locked")
	keyring.On("GetKey", "work").Return("", expectedErr)
	sut := ProvideKeyringTokenRepository(keyring)

	_, err := sut.ResolveToken("work", domain.Profile{Keyring: true})

	assert.Error(t, err)
	assert.ErrorIs(t, err, expectedErr)
}

func TestStoreToken(t *testing.T) {
	keyring := new(testutil.MockKeyring)
	keyring.On("SetKey", "work", "tok").Return(nil)
	sut := ProvideKeyringTokenRepository(keyring)

	assert.NoError(t, sut.StoreToken("work", "tok"))
	keyring.AssertExpectations(t)
}

func TestDeleteToken(t *testing.T) {
	keyring := new(testutil.MockKeyring)
	keyring.On("DeleteKey", "work").Return(nil)
	sut := ProvideKeyringTokenRepository(keyring)

	assert.NoError(t, sut.DeleteToken("work"))
	keyring.AssertExpectations(t)
}
