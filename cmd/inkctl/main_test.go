package main

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"inkwell/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeServer struct {
	posts   []*entity.Post
	deleted []string
	patched map[string]map[string]any
}

func (f *fakeServer) handler(t *testing.T) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		write := func(status int, data any) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(status)
			_ = json.NewEncoder(w).Encode(map[string]any{"data": data, "meta": map[string]string{"request_id": "r"}})
		}

		switch {
		case r.Method == http.MethodPost && r.URL.Path == "/auth/login":
			write(http.StatusOK, entity.AuthSession{
				Token:     "tok",
				ExpiresAt: time.Now().Add(time.Hour),
				Identity:  entity.Identity{UserID: "u1", Email: "ada@example.com"},
				Profile:   &entity.Profile{UserID: "u1", FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com"},
			})
		case r.Method == http.MethodGet && r.URL.Path == "/api/v1/me/posts":
			assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
			write(http.StatusOK, f.posts)
		case r.Method == http.MethodGet && r.URL.Path == "/api/v1/posts/category/Tech":
			write(http.StatusOK, f.posts)
		case r.Method == http.MethodPatch && strings.HasPrefix(r.URL.Path, "/api/v1/posts/"):
			var body map[string]any
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			f.patched[strings.TrimPrefix(r.URL.Path, "/api/v1/posts/")] = body
			write(http.StatusOK, f.posts[0])
		case r.Method == http.MethodDelete && strings.HasPrefix(r.URL.Path, "/api/v1/posts/"):
			f.deleted = append(f.deleted, strings.TrimPrefix(r.URL.Path, "/api/v1/posts/"))
			w.WriteHeader(http.StatusNoContent)
		case r.Method == http.MethodPost && r.URL.Path == "/auth/logout":
			w.WriteHeader(http.StatusNoContent)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}
}

func setup(t *testing.T) (*fakeServer, environment) {
	t.Helper()

	f := &fakeServer{
		posts: []*entity.Post{{
			ID:       "p1",
			Title:    "Hello",
			Content:  "First post body",
			Author:   "Ada Lovelace",
			AuthorID: "u1",
			Category: entity.CategoryTech,
		}},
		patched: make(map[string]map[string]any),
	}
	srv := httptest.NewServer(f.handler(t))
	t.Cleanup(srv.Close)

	return f, environment{apiURL: srv.URL, storePath: filepath.Join(t.TempDir(), "store.json")}
}

func runCmd(t *testing.T, env environment, stdin string, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	err := run(context.Background(), args, env, strings.NewReader(stdin), &out)

	return out.String(), err
}

func TestRun_UnknownCommand(t *testing.T) {
	out, err := runCmd(t, environment{}, "", "frobnicate")
	require.Error(t, err)
	assert.Contains(t, out, "Usage: inkctl")
}

func TestRun_LoginPersistsSession(t *testing.T) {
	_, env := setup(t)

	out, err := runCmd(t, env, "", "login", "-email", "ada@example.com", "-password", "secret")
	require.NoError(t, err)
	assert.Contains(t, out, "Signed in as Ada Lovelace")

	out, err = runCmd(t, env, "", "whoami")
	require.NoError(t, err)
	assert.Contains(t, out, "Ada Lovelace <ada@example.com>")

	_, err = runCmd(t, env, "", "logout")
	require.NoError(t, err)

	out, err = runCmd(t, env, "", "whoami")
	require.NoError(t, err)
	assert.Contains(t, out, "Not signed in")
}

func TestRun_MineRequiresSession(t *testing.T) {
	_, env := setup(t)

	_, err := runCmd(t, env, "", "mine")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not signed in")
}

func TestRun_EditSavesDraft(t *testing.T) {
	f, env := setup(t)
	_, err := runCmd(t, env, "", "login", "-email", "ada@example.com", "-password", "secret")
	require.NoError(t, err)

	out, err := runCmd(t, env, "", "edit", "-title", "Hello again", "p1")
	require.NoError(t, err)
	assert.Contains(t, out, "Hello again")

	require.Contains(t, f.patched, "p1")
	assert.Equal(t, "Hello again", f.patched["p1"]["title"])
	assert.Equal(t, "First post body", f.patched["p1"]["content"])
}

func TestRun_DeleteAsksForConfirmation(t *testing.T) {
	f, env := setup(t)
	_, err := runCmd(t, env, "", "login", "-email", "ada@example.com", "-password", "secret")
	require.NoError(t, err)

	out, err := runCmd(t, env, "n\n", "delete", "p1")
	require.NoError(t, err)
	assert.Contains(t, out, "Cancelled")
	assert.Empty(t, f.deleted)

	_, err = runCmd(t, env, "y\n", "delete", "p1")
	require.NoError(t, err)
	assert.Equal(t, []string{"p1"}, f.deleted)
}

func TestRun_CategoryRendersCards(t *testing.T) {
	_, env := setup(t)

	out, err := runCmd(t, env, "", "category", "Tech")
	require.NoError(t, err)
	assert.Contains(t, out, "[p1] Hello")
	assert.Contains(t, out, "by Ada Lovelace")

	_, err = runCmd(t, env, "", "category", "tech")
	require.Error(t, err)
}
