package session

import (
	"encoding/json"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

var _dirNames = rapid.StringMatching(`[a-z][a-z0-9_.-]{0,7}`)

// Without a config file, every subdirectory gets a tab and nothing else
// does.
func TestLoad_rapidSubdirectories(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	rapid.Check(t, func(t *rapid.T) {
		names := rapid.SliceOfDistinct(_dirNames, rapid.ID[string]).Draw(t, "names")

		parent, err := os.MkdirTemp(root, "parent")
		require.NoError(t, err)

		var want []Descriptor
		for _, name := range names {
			path := filepath.Join(parent, name)
			if rapid.Bool().Draw(t, "file "+name) {
				require.NoError(t, os.WriteFile(path, nil, 0o644))
				continue
			}
			require.NoError(t, os.Mkdir(path, 0o755))
			want = append(want, Descriptor{DirName: name})
		}

		got, err := Load(parent)
		require.NoError(t, err)
		assert.ElementsMatch(t, want, got.Dirs)
	})
}

// Ignored directories never get a tab, and all other directories do.
func TestLoad_rapidIgnoredDirs(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	rapid.Check(t, func(t *rapid.T) {
		names := rapid.SliceOfDistinct(_dirNames, rapid.ID[string]).Draw(t, "names")
		extraIgnored := rapid.SliceOf(_dirNames).Draw(t, "extraIgnored")

		parent, err := os.MkdirTemp(root, "parent")
		require.NoError(t, err)

		ignored := append([]string{}, extraIgnored...)
		var want []Descriptor
		for _, name := range names {
			require.NoError(t, os.Mkdir(filepath.Join(parent, name), 0o755))
			if rapid.Bool().Draw(t, "ignore "+name) {
				ignored = append(ignored, name)
				continue
			}
			if slices.Contains(extraIgnored, name) {
				continue
			}
			want = append(want, Descriptor{DirName: name})
		}

		writeConfig(t, parent, configFile{IgnoredDirs: ignored})

		got, err := Load(parent)
		require.NoError(t, err)
		assert.ElementsMatch(t, want, got.Dirs)
	})
}

// Explicit directories are used as-is regardless of what's on disk.
func TestLoad_rapidExplicitDirs(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	rapid.Check(t, func(t *rapid.T) {
		onDisk := rapid.SliceOfDistinct(_dirNames, rapid.ID[string]).Draw(t, "onDisk")
		explicit := rapid.SliceOf(_dirNames).Draw(t, "explicit")

		parent, err := os.MkdirTemp(root, "parent")
		require.NoError(t, err)
		for _, name := range onDisk {
			require.NoError(t, os.Mkdir(filepath.Join(parent, name), 0o755))
		}

		cfg := configFile{
			IgnoredDirs: onDisk,
			Dirs:        make([]dirConfig, len(explicit)),
		}
		want := make([]Descriptor, len(explicit))
		for i, name := range explicit {
			cfg.Dirs[i] = dirConfig{DirName: name}
			want[i] = Descriptor{DirName: name}
		}
		writeConfig(t, parent, cfg)

		got, err := Load(parent)
		require.NoError(t, err)
		assert.Equal(t, want, got.Dirs)
	})
}

func writeConfig(t require.TestingT, parent string, cfg configFile) {
	body, err := json.Marshal(cfg)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(parent, ConfigFileName), body, 0o644))
}
