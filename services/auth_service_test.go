package services

import (
	"testing"

	"stayconnected-api/models"
	"stayconnected-api/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthFixture(t *testing.T) AuthService {
	db := setupTestDB(t)
	return NewAuthService(repositories.NewUserRepository(db))
}

func registerTestAccount(t *testing.T, service AuthService, username string) *models.AuthResponse {
	t.Helper()
	response, err := service.Register(models.RegisterRequest{
		Username: username,
		Email:    username + "@example.com",
		Password: "password123",
	})
	require.NoError(t, err)
	return response
}

func TestRegisterIssuesTokenPair(t *testing.T) {
	service := newAuthFixture(t)

	response := registerTestAccount(t, service, "newuser")

	assert.NotEmpty(t, response.Tokens.Access)
	assert.NotEmpty(t, response.Tokens.Refresh)
	assert.NotEqual(t, response.Tokens.Access, response.Tokens.Refresh)
	assert.Equal(t, "newuser", response.User.Username)
	assert.NotEqual(t, "password123", response.User.Password)
}

func TestRegisterDuplicateUsername(t *testing.T) {
	service := newAuthFixture(t)
	registerTestAccount(t, service, "taken")

	_, err := service.Register(models.RegisterRequest{
		Username: "taken",
		Email:    "different@example.com",
		Password: "password123",
	})

	var validation models.ErrorValidation
	require.ErrorAs(t, err, &validation)
	assert.Contains(t, validation.Fields, "username")
}

func TestRegisterDuplicateEmail(t *testing.T) {
	service := newAuthFixture(t)
	registerTestAccount(t, service, "original")

	_, err := service.Register(models.RegisterRequest{
		Username: "different",
		Email:    "original@example.com",
		Password: "password123",
	})

	var validation models.ErrorValidation
	require.ErrorAs(t, err, &validation)
	assert.Contains(t, validation.Fields, "email")
}

func TestRegisterWeakPassword(t *testing.T) {
	service := newAuthFixture(t)

	_, err := service.Register(models.RegisterRequest{
		Username: "weakling",
		Email:    "weakling@example.com",
		Password: "onlyletters",
	})

	var validation models.ErrorValidation
	require.ErrorAs(t, err, &validation)
	assert.Contains(t, validation.Fields, "password")
}

func TestValidatePassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		wantErr  bool
	}{
		{"valid", "password123", false},
		{"too short", "pass1", true},
		{"no digit", "passwordonly", true},
		{"no letter", "1234567890", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePassword(tt.password)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLoginWithEmailOrUsername(t *testing.T) {
	service := newAuthFixture(t)
	registerTestAccount(t, service, "flexible")

	byEmail, err := service.Login(models.LoginRequest{Identifier: "flexible@example.com", Password: "password123"})
	require.NoError(t, err)
	assert.Equal(t, "flexible", byEmail.User.Username)

	byUsername, err := service.Login(models.LoginRequest{Identifier: "flexible", Password: "password123"})
	require.NoError(t, err)
	assert.Equal(t, "flexible", byUsername.User.Username)
}

func TestLoginInvalidCredentials(t *testing.T) {
	service := newAuthFixture(t)
	registerTestAccount(t, service, "victim")

	_, err := service.Login(models.LoginRequest{Identifier: "victim", Password: "wrongpass1"})
	assert.ErrorAs(t, err, &models.ErrorUnauthorized{})

	_, err = service.Login(models.LoginRequest{Identifier: "nobody", Password: "password123"})
	assert.ErrorAs(t, err, &models.ErrorUnauthorized{})
}

func TestRefreshIssuesNewAccessToken(t *testing.T) {
	service := newAuthFixture(t)
	response := registerTestAccount(t, service, "refresher")

	access, err := service.Refresh(response.Tokens.Refresh)
	require.NoError(t, err)
	assert.NotEmpty(t, access)
}

func TestRefreshRejectsAccessToken(t *testing.T) {
	service := newAuthFixture(t)
	response := registerTestAccount(t, service, "sneaky")

	_, err := service.Refresh(response.Tokens.Access)
	assert.ErrorAs(t, err, &models.ErrorUnauthorized{})
}

func TestRefreshRejectsGarbage(t *testing.T) {
	service := newAuthFixture(t)

	_, err := service.Refresh("not.a.token")
	assert.ErrorAs(t, err, &models.ErrorUnauthorized{})
}
