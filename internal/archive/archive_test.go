// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package archive_test

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/aibor/jarversion/internal/archive"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testEntries() []archive.TestEntry {
	return []archive.TestEntry{
		{Name: "META-INF/"},
		{Name: "META-INF/MANIFEST.MF", Content: "Manifest-Version: 1.0\n", Method: 8},
		{Name: "BOOT-INF/classes/application.properties", Content: "softwareVersion=1.0.0\n"},
		{Name: "lib", Content: "META-INF", Mode: fs.ModeSymlink | 0o777},
	}
}

func TestOpen(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		a, err := archive.OpenBytes(archive.MustBuild(t, testEntries()...))
		require.NoError(t, err)

		assert.Equal(t, 4, a.Len())
	})

	t.Run("invalid", func(t *testing.T) {
		_, err := archive.OpenBytes([]byte("not a zip archive"))
		require.Error(t, err)
	})

	t.Run("empty", func(t *testing.T) {
		a, err := archive.OpenBytes(archive.MustBuild(t))
		require.NoError(t, err)

		assert.Empty(t, a.Names())
	})
}

func TestArchive_Names(t *testing.T) {
	a := archive.MustOpen(t, archive.MustBuild(t, testEntries()...))

	expected := []string{
		"META-INF/",
		"META-INF/MANIFEST.MF",
		"BOOT-INF/classes/application.properties",
		"lib",
	}

	assert.Equal(t, expected, a.Names())
}

func TestArchive_Entry(t *testing.T) {
	a := archive.MustOpen(t, archive.MustBuild(t, testEntries()...))

	tests := []struct {
		name         string
		path         string
		expectedKind archive.Kind
		expectedErr  error
	}{
		{
			name:         "regular",
			path:         "META-INF/MANIFEST.MF",
			expectedKind: archive.KindRegular,
		},
		{
			name:         "directory",
			path:         "META-INF/",
			expectedKind: archive.KindDirectory,
		},
		{
			name:         "symlink",
			path:         "lib",
			expectedKind: archive.KindUnsupported,
		},
		{
			name:        "not found",
			path:        "BOOT-INF/classes/application-dev.properties",
			expectedErr: archive.ErrEntryNotFound,
		},
		{
			name:        "directory without slash",
			path:        "META-INF",
			expectedErr: fs.ErrNotExist,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry, err := a.Entry(tt.path)
			require.ErrorIs(t, err, tt.expectedErr)

			if tt.expectedErr != nil {
				assert.False(t, a.Contains(tt.path))
				return
			}

			assert.True(t, a.Contains(tt.path))
			assert.Equal(t, tt.path, entry.Name())
			assert.Equal(t, tt.expectedKind, entry.Kind())
		})
	}
}

func TestArchive_ReadFile(t *testing.T) {
	a := archive.MustOpen(t, archive.MustBuild(t, testEntries()...))

	tests := []struct {
		name        string
		path        string
		expected    string
		expectedErr error
	}{
		{
			name:     "deflated",
			path:     "META-INF/MANIFEST.MF",
			expected: "Manifest-Version: 1.0\n",
		},
		{
			name:     "stored",
			path:     "BOOT-INF/classes/application.properties",
			expected: "softwareVersion=1.0.0\n",
		},
		{
			name:        "directory",
			path:        "META-INF/",
			expectedErr: archive.ErrNotRegular,
		},
		{
			name:        "symlink",
			path:        "lib",
			expectedErr: archive.ErrNotRegular,
		},
		{
			name:        "missing",
			path:        "missing",
			expectedErr: archive.ErrEntryNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			content, err := a.ReadFile(tt.path)
			require.ErrorIs(t, err, tt.expectedErr)

			var pathErr *archive.PathError
			if tt.expectedErr != nil && assert.ErrorAs(t, err, &pathErr) {
				assert.Equal(t, tt.path, pathErr.Path)
			}

			assert.Equal(t, tt.expected, string(content))
		})
	}
}

func TestArchive_Walk(t *testing.T) {
	a := archive.MustOpen(t, archive.MustBuild(t, testEntries()...))

	t.Run("all", func(t *testing.T) {
		var kinds []archive.Kind

		err := a.Walk(func(entry *archive.Entry) error {
			kinds = append(kinds, entry.Kind())
			return nil
		})
		require.NoError(t, err)

		expected := []archive.Kind{
			archive.KindDirectory,
			archive.KindRegular,
			archive.KindRegular,
			archive.KindUnsupported,
		}
		assert.Equal(t, expected, kinds)
	})

	t.Run("stops on error", func(t *testing.T) {
		var calls int

		err := a.Walk(func(*archive.Entry) error {
			calls++
			return assert.AnError
		})
		require.ErrorIs(t, err, assert.AnError)

		assert.Equal(t, 1, calls)
	})
}

func TestArchive_DuplicateNames(t *testing.T) {
	a := archive.MustOpen(t, archive.MustBuild(t,
		archive.TestEntry{Name: "file", Content: "first"},
		archive.TestEntry{Name: "file", Content: "second"},
	))

	assert.Equal(t, []string{"file", "file"}, a.Names())

	content, err := a.ReadFile("file")
	require.NoError(t, err)
	assert.Equal(t, "first", string(content))
}

func TestOpenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.jar")
	err := os.WriteFile(path, archive.MustBuild(t, testEntries()...), 0o600)
	require.NoError(t, err)

	t.Run("exists", func(t *testing.T) {
		a, err := archive.OpenFile(path)
		require.NoError(t, err)

		content, err := a.ReadFile("META-INF/MANIFEST.MF")
		require.NoError(t, err)
		assert.Equal(t, "Manifest-Version: 1.0\n", string(content))

		require.NoError(t, a.Close())
	})

	t.Run("missing", func(t *testing.T) {
		_, err := archive.OpenFile(path + ".missing")
		require.ErrorIs(t, err, fs.ErrNotExist)
	})

	t.Run("not an archive", func(t *testing.T) {
		other := filepath.Join(t.TempDir(), "other")
		require.NoError(t, os.WriteFile(other, []byte("text"), 0o600))

		_, err := archive.OpenFile(other)
		require.Error(t, err)
	})
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "regular", archive.KindRegular.String())
	assert.Equal(t, "directory", archive.KindDirectory.String())
	assert.Equal(t, "unsupported", archive.KindUnsupported.String())
	assert.Equal(t, "invalid", archive.Kind(42).String())
}
