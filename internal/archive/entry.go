// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package archive

import (
	"bytes"
	"fmt"
	"io"
	"io/fs"

	"github.com/klauspost/compress/zip"
)

// Entry is a single entry of an [Archive].
type Entry struct {
	file *zip.File
}

// Name returns the entry's path as stored in the archive.
func (e *Entry) Name() string {
	return e.file.Name
}

// Mode returns the entry's file mode.
func (e *Entry) Mode() fs.FileMode {
	return e.file.Mode()
}

// Kind returns the [Kind] of the entry.
func (e *Entry) Kind() Kind {
	return kindOf(e.file.Mode())
}

// Options returns the storage options of the entry.
func (e *Entry) Options() Options {
	return OptionsFromHeader(&e.file.FileHeader)
}

// Open returns a reader for the uncompressed content of a regular file
// entry. The caller must close it.
func (e *Entry) Open() (io.ReadCloser, error) {
	if e.Kind() != KindRegular {
		return nil, &PathError{Op: "open", Path: e.Name(), Err: ErrNotRegular}
	}

	reader, err := e.file.Open()
	if err != nil {
		return nil, &PathError{Op: "open", Path: e.Name(), Err: err}
	}

	return reader, nil
}

// ReadAll returns the complete uncompressed content of a regular file entry.
func (e *Entry) ReadAll() ([]byte, error) {
	var buf bytes.Buffer

	err := e.readInto(&buf)
	if err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// readInto appends the complete content to the given buffer. The content's
// checksum is verified by the zip reader on EOF.
func (e *Entry) readInto(buf *bytes.Buffer) error {
	reader, err := e.Open()
	if err != nil {
		return err
	}
	defer reader.Close()

	buf.Grow(int(min(e.file.UncompressedSize64, maxPrealloc)))

	if _, err := buf.ReadFrom(reader); err != nil {
		return &PathError{Op: "read", Path: e.Name(), Err: fmt.Errorf("content: %w", err)}
	}

	return nil
}

// maxPrealloc limits the buffer growth based on the possibly forged size in
// the entry header.
const maxPrealloc = 64 << 20
