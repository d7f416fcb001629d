package password_test

import (
	"lessons/shared/password"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHash(t *testing.T) {
	tests := []struct {
		name        string
		password    string
		expectedErr error
	}{
		{name: "valid password", password: "validPassword123"},
		{name: "special characters", password: "P@ssw0rd!#$%^&*()"},
		{name: "unicode password", password: "пароль123"},
		{name: "empty password", password: "", expectedErr: password.ErrEmptyPassword},
		{name: "longer than bcrypt allows", password: strings.Repeat("a", 100), expectedErr: password.ErrHashingPassword},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hash, err := password.Hash(tt.password)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Empty(t, hash)

				return
			}

			assert.NoError(t, err)
			assert.True(t, strings.HasPrefix(hash, "$2a$"))
			assert.NoError(t, password.Verify(tt.password, hash))
		})
	}
}

func TestVerify(t *testing.T) {
	valid, err := password.Hash("testPassword123")
	assert.NoError(t, err)

	tests := []struct {
		name        string
		password    string
		hash        string
		expectedErr error
	}{
		{name: "matching password", password: "testPassword123", hash: valid},
		{name: "wrong password", password: "wrongPassword", hash: valid, expectedErr: password.ErrInvalidPassword},
		{name: "empty password", password: "", hash: valid, expectedErr: password.ErrInvalidPassword},
		{name: "empty hash", password: "testPassword123", hash: "", expectedErr: password.ErrInvalidPassword},
		{name: "malformed hash", password: "testPassword123", hash: "invalid_hash", expectedErr: password.ErrVerifyingPassword},
		{name: "truncated hash", password: "testPassword123", hash: valid[:10], expectedErr: password.ErrVerifyingPassword},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := password.Verify(tt.password, tt.hash)

			if tt.expectedErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.expectedErr)
			}
		})
	}
}

func TestHashIsSalted(t *testing.T) {
	first, err := password.Hash("same")
	assert.NoError(t, err)

	second, err := password.Hash("same")
	assert.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.NoError(t, password.Verify("same", first))
	assert.NoError(t, password.Verify("same", second))
}
