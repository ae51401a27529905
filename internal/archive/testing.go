// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package archive

import (
	"bytes"
	"io"
	"io/fs"
	"testing"
	"time"

	"github.com/klauspost/compress/zip"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockWriter is a [Writer] for tests.
type MockWriter struct {
	mock.Mock
}

func (m *MockWriter) WriteRegular(name string, opts Options, content io.WriterTo) error {
	args := m.Called(name, opts, content)
	return args.Error(0)
}

func (m *MockWriter) WriteDirectory(name string, opts Options) error {
	args := m.Called(name, opts)
	return args.Error(0)
}

func (m *MockWriter) Close() error {
	args := m.Called()
	return args.Error(0)
}

// TestEntry describes an entry of a test archive built with [MustBuild].
type TestEntry struct {
	Name    string
	Content string
	Method  uint16
	// Mode defaults to 0644 for files and fs.ModeDir|0755 for names with
	// trailing slash.
	Mode     fs.FileMode
	Modified time.Time
}

// TestModified is the default modification time of [TestEntry]s.
var TestModified = time.Date(2024, time.March, 14, 15, 9, 26, 0, time.UTC)

// MustBuild creates a ZIP archive with the given entries in the given order.
func MustBuild(tb testing.TB, entries ...TestEntry) []byte {
	tb.Helper()

	var buf bytes.Buffer

	zipWriter := zip.NewWriter(&buf)

	for _, entry := range entries {
		hdr := &zip.FileHeader{
			Name:     entry.Name,
			Method:   entry.Method,
			Modified: entry.Modified,
		}

		if hdr.Modified.IsZero() {
			hdr.Modified = TestModified
		}

		mode := entry.Mode
		if mode == 0 {
			mode = 0o644
			if len(entry.Name) > 0 && entry.Name[len(entry.Name)-1] == '/' {
				mode = fs.ModeDir | 0o755
			}
		}

		hdr.SetMode(mode)

		writer, err := zipWriter.CreateHeader(hdr)
		require.NoError(tb, err, "create header %s", entry.Name)

		_, err = io.WriteString(writer, entry.Content)
		require.NoError(tb, err, "write %s", entry.Name)
	}

	require.NoError(tb, zipWriter.Close(), "close archive")

	return buf.Bytes()
}

// MustOpen opens the given archive data.
func MustOpen(tb testing.TB, data []byte) *Archive {
	tb.Helper()

	archive, err := OpenBytes(data)
	require.NoError(tb, err, "open archive")

	return archive
}
