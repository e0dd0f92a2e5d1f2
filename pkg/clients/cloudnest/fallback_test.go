package cloudnest

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cloudnest/cloudnest/pkg/domain"
)

// deadClient points at a server that is guaranteed to refuse
// connections, forcing every call down the fallback path.
func deadClient(t *testing.T) *Client {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()
	return NewClient(WithBaseURL(server.URL))
}

func TestResolverFallbackReads(t *testing.T) {
	r := NewResolver(ResolverDependencies{Client: deadClient(t)})

	files := r.Files(context.Background())
	assert.Equal(t, SourceFallback, files.Source)
	require.Len(t, files.Files, 8)
	assert.Equal(t, "Project Proposal.pdf", files.Files[0].Name)

	folders := r.Folders(context.Background())
	assert.Equal(t, SourceFallback, folders.Source)
	require.Len(t, folders.Folders, 4)
	assert.Equal(t, "Documents", folders.Folders[0].Name)

	trash := r.Trash(context.Background())
	assert.Equal(t, SourceFallback, trash.Source)
	require.Len(t, trash.Items, 3)
	assert.Equal(t, int64(201), trash.Items[0].ID)
}

func TestResolverLiveReads(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/files":
			json.NewEncoder(w).Encode([]domain.File{{ID: 42, Name: "live.txt"}})
		case "/api/folders":
			json.NewEncoder(w).Encode([]domain.Folder{{ID: 7, Name: "Live"}})
		case "/api/trash":
			json.NewEncoder(w).Encode([]domain.TrashItem{})
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	r := NewResolver(ResolverDependencies{Client: NewClient(WithBaseURL(server.URL))})

	files := r.Files(context.Background())
	assert.Equal(t, SourceLive, files.Source)
	require.Len(t, files.Files, 1)
	assert.Equal(t, "live.txt", files.Files[0].Name)

	folders := r.Folders(context.Background())
	assert.Equal(t, SourceLive, folders.Source)
	require.Len(t, folders.Folders, 1)
}

func TestResolverMutationsReportSuccess(t *testing.T) {
	r := NewResolver(ResolverDependencies{Client: deadClient(t)})

	del := r.DeleteFile(context.Background(), 1)
	assert.True(t, del.Success)
	assert.Equal(t, SourceFallback, del.Source)

	restore := r.RestoreFile(context.Background(), 201)
	assert.True(t, restore.Success)
	assert.Equal(t, SourceFallback, restore.Source)

	purge := r.PermanentDelete(context.Background(), 201, true)
	assert.True(t, purge.Success)
	assert.Equal(t, SourceFallback, purge.Source)
}

func TestResolverShareFabricatesLink(t *testing.T) {
	r := NewResolver(ResolverDependencies{
		Client:      deadClient(t),
		ShareOrigin: "https://cloudnest.test",
	})

	result := r.ShareFile(context.Background(), 3, "bob@example.com", domain.PermissionViewer)
	assert.Equal(t, SourceFallback, result.Source)
	assert.True(t, strings.HasPrefix(result.ShareLink, "https://cloudnest.test/share/3-"),
		"unexpected link %q", result.ShareLink)
}

func TestResolverAuthFallback(t *testing.T) {
	r := NewResolver(ResolverDependencies{Client: deadClient(t)})

	login := r.Login(context.Background(), "alice@example.com", "pw")
	assert.Equal(t, SourceFallback, login.Source)
	assert.Equal(t, "alice@example.com", login.User.Email)
	assert.Equal(t, "fake-token-123", login.Token)

	signup := r.Signup(context.Background(), "bob@example.com", "pw")
	assert.Equal(t, SourceFallback, signup.Source)
	assert.Equal(t, "fake-token-123", signup.Token)
}

func TestResolverAuthLive(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req CredentialsRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		json.NewEncoder(w).Encode(AuthResponse{User: domain.User{Email: req.Email}, Token: "real-token"})
	}))
	defer server.Close()

	r := NewResolver(ResolverDependencies{Client: NewClient(WithBaseURL(server.URL))})

	login := r.Login(context.Background(), "alice@example.com", "pw")
	assert.Equal(t, SourceLive, login.Source)
	assert.Equal(t, "real-token", login.Token)
}
