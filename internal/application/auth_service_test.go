package application

import (
	"context"
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gahalberto/ImobiManager/pkg/helpers"
)

func testLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func newAuthService(users *fakeUserRepo) *AuthService {
	return NewAuthService(users, helpers.NewJWTManager("test-secret", 0), testLogger(), nil, false)
}

func TestSignupCreatesUserAndIssuesToken(t *testing.T) {
	users := newFakeUserRepo()
	svc := newAuthService(users)

	u, token, err := svc.Signup(context.Background(), SignupInput{
		FirstName: "Ana",
		LastName:  "Souza",
		Email:     "ana@example.com",
		Password:  "s3cretpass",
	})
	require.NoError(t, err)
	require.NotNil(t, u)
	assert.NotZero(t, u.ID)
	assert.NotEmpty(t, token)

	// stored password is a hash, not the plaintext
	stored, err := users.GetByEmail(context.Background(), "ana@example.com")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cretpass", stored.Password)
	assert.True(t, helpers.CompareHashAndPassword(stored.Password, "s3cretpass"))

	// the token identifies the account by email
	claims, err := helpers.NewJWTManager("test-secret", 0).Parse(token)
	require.NoError(t, err)
	assert.Equal(t, "ana@example.com", claims.Email)
}

func TestSignupDuplicateEmail(t *testing.T) {
	users := newFakeUserRepo()
	svc := newAuthService(users)

	_, _, err := svc.Signup(context.Background(), SignupInput{
		FirstName: "Ana", LastName: "Souza", Email: "ana@example.com", Password: "s3cretpass",
	})
	require.NoError(t, err)

	_, _, err = svc.Signup(context.Background(), SignupInput{
		FirstName: "Outra", LastName: "Ana", Email: "ana@example.com", Password: "different1",
	})
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestSigninSuccess(t *testing.T) {
	users := newFakeUserRepo()
	svc := newAuthService(users)

	_, _, err := svc.Signup(context.Background(), SignupInput{
		FirstName: "Ana", LastName: "Souza", Email: "ana@example.com", Password: "s3cretpass",
	})
	require.NoError(t, err)

	u, token, err := svc.Signin(context.Background(), "ana@example.com", "s3cretpass")
	require.NoError(t, err)
	assert.Equal(t, "Ana", u.FirstName)
	assert.NotEmpty(t, token)
}

func TestSigninFailuresAreIndistinguishable(t *testing.T) {
	users := newFakeUserRepo()
	svc := newAuthService(users)

	_, _, err := svc.Signup(context.Background(), SignupInput{
		FirstName: "Ana", LastName: "Souza", Email: "ana@example.com", Password: "s3cretpass",
	})
	require.NoError(t, err)

	_, _, unknownEmail := svc.Signin(context.Background(), "nobody@example.com", "s3cretpass")
	_, _, wrongPassword := svc.Signin(context.Background(), "ana@example.com", "wrongpass1")

	assert.ErrorIs(t, unknownEmail, ErrInvalidCredentials)
	assert.ErrorIs(t, wrongPassword, ErrInvalidCredentials)
	assert.Equal(t, unknownEmail.Error(), wrongPassword.Error())
}
