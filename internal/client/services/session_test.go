package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stockctl/internal/client/creds"
	"stockctl/internal/logging"
)

type fakeSessionAPI struct {
	registerErr error
	regUser     string
	regEmail    string

	loginToken string
	loginErr   error

	logoutErr    error
	logoutCalled bool
}

func (f *fakeSessionAPI) Register(_ context.Context, username, email, _ string) error {
	f.regUser, f.regEmail = username, email
	return f.registerErr
}

func (f *fakeSessionAPI) Login(context.Context, string, string) (string, error) {
	return f.loginToken, f.loginErr
}

func (f *fakeSessionAPI) Logout(context.Context) error {
	f.logoutCalled = true
	return f.logoutErr
}

func newSessionService(api *fakeSessionAPI, store creds.Store) SessionService {
	return NewSessionService(api, store, logging.NewDiscard())
}

func TestLogin_StoresTokenOnSuccess(t *testing.T) {
	ctx := context.Background()
	store := creds.NewMemoryStore()
	svc := newSessionService(&fakeSessionAPI{loginToken: "t1"}, store)

	require.NoError(t, svc.Login(ctx, "alice", "secret"))

	token, err := store.GetToken(ctx)
	require.NoError(t, err)
	assert.Equal(t, "t1", token)
	assert.True(t, svc.LoggedIn(ctx))
}

func TestLogin_NoTokenStoredOnFailure(t *testing.T) {
	ctx := context.Background()
	store := creds.NewMemoryStore()
	svc := newSessionService(&fakeSessionAPI{loginErr: errors.New("bad credentials")}, store)

	require.Error(t, svc.Login(ctx, "alice", "wrong"))

	token, err := store.GetToken(ctx)
	require.NoError(t, err)
	assert.Empty(t, token)
	assert.False(t, svc.LoggedIn(ctx))
}

func TestLogout_ClearsTokenEvenWhenServerFails(t *testing.T) {
	ctx := context.Background()
	store := creds.NewMemoryStore()
	require.NoError(t, store.SetToken(ctx, "t1"))

	api := &fakeSessionAPI{logoutErr: errors.New("boom")}
	svc := newSessionService(api, store)

	require.NoError(t, svc.Logout(ctx), "local logout must succeed regardless of the server")
	assert.True(t, api.logoutCalled)

	token, err := store.GetToken(ctx)
	require.NoError(t, err)
	assert.Empty(t, token)
}

func TestRegister_Passthrough(t *testing.T) {
	api := &fakeSessionAPI{}
	svc := newSessionService(api, creds.NewMemoryStore())

	require.NoError(t, svc.Register(context.Background(), "bob", "bob@example.org", "hunter22"))
	assert.Equal(t, "bob", api.regUser)
	assert.Equal(t, "bob@example.org", api.regEmail)
}
