package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func newGithubFixture(t *testing.T) GithubService {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "application/vnd.github.v3+json", r.Header.Get("Accept"))
		require.Equal(t, "token test-token", r.Header.Get("Authorization"))

		switch r.URL.Path {
		case "/users/octocat/repos":
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`[{"name":"hello-world"}]`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	t.Cleanup(server.Close)

	svc := &githubService{
		client:  server.Client(),
		token:   "test-token",
		baseURL: server.URL,
		ctx:     context.Background(),
	}
	return svc
}

func TestGithubRepos(t *testing.T) {
	svc := newGithubFixture(t)

	repos, err := svc.Repos("octocat")
	require.NoError(t, err)
	require.JSONEq(t, `[{"name":"hello-world"}]`, string(repos))
}

func TestGithubRepos_UnknownUser(t *testing.T) {
	svc := newGithubFixture(t)

	_, err := svc.Repos("ghost")
	require.ErrorIs(t, err, ErrNoGithubProfile)
}

func TestGithubRepos_Timeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(100 * time.Millisecond)
	}))
	t.Cleanup(server.Close)

	svc := &githubService{
		client:  &http.Client{Timeout: 10 * time.Millisecond},
		baseURL: server.URL,
		ctx:     context.Background(),
	}

	_, err := svc.Repos("octocat")
	require.Error(t, err)
	require.NotErrorIs(t, err, ErrNoGithubProfile)
}
