package spread

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// newParent creates a temporary directory with the given subdirectories and
// returns its canonical path.
func newParent(t testing.TB, dirs ...string) string {
	t.Helper()

	parent, err := filepath.EvalSymlinks(t.TempDir())
	require.NoError(t, err)

	for _, d := range dirs {
		require.NoError(t, os.MkdirAll(filepath.Join(parent, d), 0o755))
	}
	return parent
}
