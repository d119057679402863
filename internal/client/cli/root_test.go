package cli

import (
	"bytes"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dmitrijs2005/medianest/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearMedianestEnv(t *testing.T) {
	t.Helper()
	for _, kv := range os.Environ() {
		k, _, _ := strings.Cut(kv, "=")
		if strings.HasPrefix(k, "MEDIANEST_") {
			t.Setenv(k, "")
			require.NoError(t, os.Unsetenv(k))
		}
	}
}

func runRoot(t *testing.T, input string, args ...string) (string, error) {
	t.Helper()
	clearMedianestEnv(t)
	stubTerminal(t, false, nil)

	var out bytes.Buffer
	cmd := NewRootCommand()
	cmd.SetIn(strings.NewReader(input))
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(append([]string{"--env-file", filepath.Join(t.TempDir(), "none.env")}, args...))

	err := cmd.ExecuteContext(t.Context())
	return out.String(), err
}

func TestRoot_Version(t *testing.T) {
	out, err := runRoot(t, "", "version")
	require.NoError(t, err)
	assert.Contains(t, out, "Build version: N/A")
}

func TestRoot_MissingConfig(t *testing.T) {
	_, err := runRoot(t, "", "list")
	require.ErrorIs(t, err, common.ErrInvalidConfig)
}

func TestRoot_List(t *testing.T) {
	store := newFakeStore(t)
	store.add("a1", "cat.jpg", nil)

	out, err := runRoot(t, "", "list", "-a", store.url+"/files", "-k", "test-key")
	require.NoError(t, err)
	assert.Contains(t, out, "1 image\n")
	assert.Contains(t, out, "cat.jpg")
}

func TestRoot_ListStoreFailure(t *testing.T) {
	store := newFakeStore(t)
	store.listErr = http.StatusBadGateway

	out, err := runRoot(t, "", "list", "-a", store.url+"/files", "-k", "test-key")
	require.ErrorIs(t, err, common.ErrStoreRejection)
	assert.Contains(t, out, "Something went wrong")
}

func TestRoot_DeleteWithPin(t *testing.T) {
	store := newFakeStore(t)
	store.add("a1", "cat.jpg", nil)

	out, err := runRoot(t, "1234\n", "delete", "a1", "-y",
		"-a", store.url+"/files", "-k", "test-key", "--delete-pin", "1234")
	require.NoError(t, err)
	assert.Equal(t, 1, store.count(http.MethodDelete))
	assert.Contains(t, out, "Image deleted successfully")
}

func TestRoot_DeleteWrongPin(t *testing.T) {
	store := newFakeStore(t)
	store.add("a1", "cat.jpg", nil)

	_, err := runRoot(t, "0000\n0000\n0000\n", "delete", "a1", "--yes",
		"-a", store.url+"/files", "-k", "test-key", "--delete-pin", "1234")
	require.ErrorIs(t, err, common.ErrGuardRejection)
	assert.Zero(t, store.count(http.MethodDelete))
}

func TestRoot_Upload(t *testing.T) {
	store := newFakeStore(t)
	path := writeTemp(t, "photo.png", []byte("png"))

	out, err := runRoot(t, "", "upload", path, "-a", store.url+"/files", "-k", "test-key")
	require.NoError(t, err)
	assert.Equal(t, 1, store.count(http.MethodPost))
	assert.Contains(t, out, "Image uploaded successfully!")
}

func TestRoot_ShellStartsWithGallery(t *testing.T) {
	store := newFakeStore(t)
	store.add("a1", "cat.jpg", nil)

	out, err := runRoot(t, "show a1\nexit\n", "-a", store.url+"/files", "-k", "test-key")
	require.NoError(t, err)
	assert.Contains(t, out, "Media Nest (type 'help' for commands)")
	assert.Contains(t, out, "1 image\n")
	assert.Contains(t, out, "Name:      cat.jpg")
	assert.Contains(t, out, "medianest (1 image)> ")
	assert.Contains(t, out, "Bye!")
}

func TestRoot_CompletionNeedsNoConfig(t *testing.T) {
	for _, shell := range []string{"bash", "zsh", "fish", "powershell"} {
		t.Run(shell, func(t *testing.T) {
			out, err := runRoot(t, "", "completion", shell)
			require.NoError(t, err)
			assert.Contains(t, out, "medianest")
		})
	}
}

func TestRoot_HelpNeedsNoConfig(t *testing.T) {
	out, err := runRoot(t, "", "help", "delete")
	require.NoError(t, err)
	assert.Contains(t, out, "delete <id>")
}
