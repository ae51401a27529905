// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package archive

import "io"

// Writer defines the archive writer interface used by the [Rewriter].
type Writer interface {
	// WriteRegular adds a regular file entry with the content written by
	// the given [io.WriterTo].
	WriteRegular(name string, opts Options, content io.WriterTo) error
	// WriteDirectory adds a directory entry.
	WriteDirectory(name string, opts Options) error
	// Close finalizes the archive. The archive is incomplete until Close
	// returned successfully.
	Close() error
}
