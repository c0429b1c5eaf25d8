package modrinth

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_GetProject(t *testing.T) {
	tests := []struct {
		name           string
		idOrSlug       string
		serverResponse Project
		expectedError  bool
	}{
		{
			name:     "get by slug",
			idOrSlug: "fabric-api",
			serverResponse: Project{
				ID:           "P7dR8mSH",
				Slug:         "fabric-api",
				Title:        "Fabric API",
				Description:  "Essential hooks for modding",
				GameVersions: []string{"1.20.1", "1.21.1"},
				Loaders:      []string{"fabric", "quilt"},
				Versions:     []string{"version1", "version2"},
				Downloads:    1000000,
			},
		},
		{
			name:     "get by ID",
			idOrSlug: "P7dR8mSH",
			serverResponse: Project{
				ID:           "P7dR8mSH",
				Slug:         "fabric-api",
				Title:        "Fabric API",
				GameVersions: []string{"1.21.1"},
				Versions:     []string{"v1"},
			},
		},
		{
			name:          "empty ID",
			idOrSlug:      "",
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/project/"+tt.idOrSlug, r.URL.Path)
				assert.Equal(t, http.MethodGet, r.Method)

				w.WriteHeader(http.StatusOK)
				_ = json.NewEncoder(w).Encode(tt.serverResponse)
			}))
			defer server.Close()

			client := NewClient(&Config{BaseURL: server.URL})

			project, err := client.GetProject(context.Background(), tt.idOrSlug)

			if tt.expectedError {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.serverResponse.ID, project.ID)
			assert.Equal(t, tt.serverResponse.Slug, project.Slug)
			assert.Equal(t, tt.serverResponse.GameVersions, project.GameVersions)
			assert.Equal(t, tt.serverResponse.Loaders, project.Loaders)
		})
	}
}

func TestClient_GetProject_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := NewClient(&Config{BaseURL: server.URL})

	_, err := client.GetProject(context.Background(), "missing")

	var qf *QueryFailedError
	require.ErrorAs(t, err, &qf)
	assert.Equal(t, "missing", qf.Target)
	assert.ErrorIs(t, err, ErrProjectNotFound)
}

func TestClient_GetProject_InvalidJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("{not json"))
	}))
	defer server.Close()

	client := NewClient(&Config{BaseURL: server.URL})

	_, err := client.GetProject(context.Background(), "sodium")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidResponse)
}

func TestClient_GetDependencies(t *testing.T) {
	bundle := Dependencies{
		Projects: []Project{
			{ID: "P7dR8mSH", Slug: "fabric-api", GameVersions: []string{"1.20.1"}},
			{ID: "mOgUt4GM", Slug: "modmenu", GameVersions: []string{"1.19.4"}},
		},
		Versions: []Version{
			{ID: "v-fapi", ProjectID: "P7dR8mSH"},
		},
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/project/sodium/dependencies", r.URL.Path)
		_ = json.NewEncoder(w).Encode(bundle)
	}))
	defer server.Close()

	client := NewClient(&Config{BaseURL: server.URL})

	deps, err := client.GetDependencies(context.Background(), "sodium")

	require.NoError(t, err)
	require.Len(t, deps.Projects, 2)
	assert.Equal(t, "fabric-api", deps.Projects[0].Slug)
	require.Len(t, deps.Versions, 1)
	assert.Equal(t, "P7dR8mSH", deps.Versions[0].ProjectID)
}

func TestClient_GetDependencies_EmptyID(t *testing.T) {
	client := NewClient(nil)

	_, err := client.GetDependencies(context.Background(), "")

	require.Error(t, err)
}

func TestProject_Name(t *testing.T) {
	assert.Equal(t, "Sodium", (&Project{ID: "AANobbMI", Slug: "sodium", Title: "Sodium"}).Name())
	assert.Equal(t, "sodium", (&Project{ID: "AANobbMI", Slug: "sodium"}).Name())
	assert.Equal(t, "AANobbMI", (&Project{ID: "AANobbMI"}).Name())
}
