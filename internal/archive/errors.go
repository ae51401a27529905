// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package archive

import (
	"errors"
	"io/fs"
)

var (
	// ErrEntryNotFound is returned if an entry that is looked up does not
	// exist in the archive.
	ErrEntryNotFound = fs.ErrNotExist

	// ErrNotRegular is returned if content is requested for an entry that is
	// not a regular file.
	ErrNotRegular = errors.New("not a regular file")

	// ErrInvalidPath is returned if an entry path is not a valid slash
	// separated relative UTF-8 path.
	ErrInvalidPath = errors.New("invalid entry path")

	// ErrClosed is returned if a [ZipWriter] is used after it was closed.
	ErrClosed = errors.New("archive writer already closed")
)

// PathError records an error and the operation and entry path that caused it.
type PathError = fs.PathError
