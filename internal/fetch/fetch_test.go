package fetch

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsURL(t *testing.T) {
	assert.True(t, IsURL("https://example.com/show.png"))
	assert.True(t, IsURL("http://example.com/dome.glb"))
	assert.False(t, IsURL("assets/dome.glb"))
	assert.False(t, IsURL("ftp://example.com/x"))
}

func TestFetchSavesWithDerivedName(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/png")
		_, _ = w.Write([]byte("not-really-a-png"))
	}))
	defer srv.Close()

	dir := t.TempDir()
	path, err := Fetch(srv.URL+"/shows/aurora.png", dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "aurora.png"), path)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "not-really-a-png", string(data))
}

func TestFetchUsesContentDisposition(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "model/gltf-binary")
		w.Header().Set("Content-Disposition", `attachment; filename="winter dome.glb"`)
		_, _ = w.Write([]byte("glb"))
	}))
	defer srv.Close()

	path, err := Fetch(srv.URL+"/dl?id=7", t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, "winter_dome.glb", filepath.Base(path))
}

func TestFetchHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	defer srv.Close()

	_, err := Fetch(srv.URL+"/missing.png", t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "404")
}
