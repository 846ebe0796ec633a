package server

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func newStaticDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte("<html>entry page</html>"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "script.js"), []byte("console.log('app');"), 0o644))
	return dir
}

func TestSPAHandler_ServesExistingFiles(t *testing.T) {
	h := NewSPAHandler(newStaticDir(t))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest("GET", "/script.js", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "console.log")
}

func TestSPAHandler_FallsBackToEntryPage(t *testing.T) {
	h := NewSPAHandler(newStaticDir(t))

	for _, path := range []string{"/", "/verify", "/some/client/route"} {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest("GET", path, nil))

		require.Equal(t, http.StatusOK, rec.Code, "path %s", path)
		require.Contains(t, rec.Body.String(), "entry page", "path %s", path)
	}
}

func TestSPAHandler_DoesNotEscapeStaticDir(t *testing.T) {
	h := NewSPAHandler(newStaticDir(t))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest("GET", "/../../etc/passwd", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "entry page")
}
