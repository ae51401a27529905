// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package archive

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/klauspost/compress/zip"
)

// WalkFunc is called for each entry by [Archive.Walk]. The [Entry] is only
// valid for the duration of the call.
type WalkFunc func(entry *Entry) error

// Archive is a read-only ZIP archive.
//
// It must not be used after the underlying source is closed. Create one
// with [Open] or [OpenFile].
type Archive struct {
	zipReader *zip.Reader

	// entries indexes the archive's files by name. For duplicate names the
	// first one wins.
	entries map[string]*zip.File
}

// Open reads the ZIP archive from the given source of the given size.
func Open(source io.ReaderAt, size int64) (*Archive, error) {
	zipReader, err := zip.NewReader(source, size)
	if err != nil {
		return nil, fmt.Errorf("read archive: %w", err)
	}

	archive := &Archive{
		zipReader: zipReader,
		entries:   make(map[string]*zip.File, len(zipReader.File)),
	}

	for _, file := range zipReader.File {
		if _, exists := archive.entries[file.Name]; !exists {
			archive.entries[file.Name] = file
		}
	}

	return archive, nil
}

// OpenBytes reads the ZIP archive from the given byte slice.
func OpenBytes(data []byte) (*Archive, error) {
	return Open(bytes.NewReader(data), int64(len(data)))
}

// Names returns the names of all entries in storage order.
func (a *Archive) Names() []string {
	names := make([]string, len(a.zipReader.File))
	for idx, file := range a.zipReader.File {
		names[idx] = file.Name
	}

	return names
}

// Len returns the number of entries.
func (a *Archive) Len() int {
	return len(a.zipReader.File)
}

// Comment returns the archive comment.
func (a *Archive) Comment() string {
	return a.zipReader.Comment
}

// Entry returns the entry with the given name. If it does not exist, a
// [PathError] wrapping [ErrEntryNotFound] is returned.
func (a *Archive) Entry(name string) (*Entry, error) {
	file, exists := a.entries[name]
	if !exists {
		return nil, &PathError{Op: "open", Path: name, Err: ErrEntryNotFound}
	}

	return &Entry{file: file}, nil
}

// Contains returns true if an entry with the given name exists.
func (a *Archive) Contains(name string) bool {
	_, exists := a.entries[name]
	return exists
}

// ReadFile returns the complete content of the regular file entry with the
// given name.
func (a *Archive) ReadFile(name string) ([]byte, error) {
	entry, err := a.Entry(name)
	if err != nil {
		return nil, err
	}

	return entry.ReadAll()
}

// Walk calls fn for each entry in storage order. It stops at the first
// error returned by fn and returns it.
func (a *Archive) Walk(fn WalkFunc) error {
	for _, file := range a.zipReader.File {
		err := fn(&Entry{file: file})
		if err != nil {
			return err
		}
	}

	return nil
}

// ArchiveFile is an [Archive] read from a file on disk. It must be closed
// to release the file.
type ArchiveFile struct {
	*Archive

	file *os.File
}

// OpenFile opens the file with the given name and reads it as ZIP archive.
func OpenFile(name string) (*ArchiveFile, error) {
	file, err := os.Open(name)
	if err != nil {
		return nil, fmt.Errorf("open: %w", err)
	}

	info, err := file.Stat()
	if err != nil {
		_ = file.Close()
		return nil, fmt.Errorf("stat: %w", err)
	}

	archive, err := Open(file, info.Size())
	if err != nil {
		_ = file.Close()
		return nil, err
	}

	return &ArchiveFile{Archive: archive, file: file}, nil
}

// Close closes the underlying file.
func (a *ArchiveFile) Close() error {
	err := a.file.Close()
	if err != nil {
		return fmt.Errorf("close: %w", err)
	}

	return nil
}
