// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package archive

import (
	"fmt"
	"io"
	"strings"

	"github.com/klauspost/compress/flate"
	"github.com/klauspost/compress/zip"
)

// ZipWriter implements [Writer] for [zip.Writer].
type ZipWriter struct {
	zipWriter *zip.Writer
	comment   string
	closed    bool
}

// NewZipWriter creates a new archive writer. Only [WithCompressionLevel]
// and [WithComment] apply.
func NewZipWriter(w io.Writer, opts ...Option) *ZipWriter {
	cfg := newConfig(opts)

	zipWriter := zip.NewWriter(w)
	zipWriter.RegisterCompressor(zip.Deflate, func(out io.Writer) (io.WriteCloser, error) {
		return flate.NewWriter(out, cfg.compressionLevel)
	})

	return &ZipWriter{
		zipWriter: zipWriter,
		comment:   cfg.comment,
	}
}

// Close writes the central directory and so finalizes the archive. It does
// not close the underlying [io.Writer].
func (w *ZipWriter) Close() error {
	if w.closed {
		return ErrClosed
	}

	w.closed = true

	if w.comment != "" {
		err := w.zipWriter.SetComment(w.comment)
		if err != nil {
			return fmt.Errorf("set comment: %w", err)
		}
	}

	err := w.zipWriter.Close()
	if err != nil {
		return fmt.Errorf("close: %w", err)
	}

	return nil
}

// createHeader starts a new entry with the given options.
func (w *ZipWriter) createHeader(name string, opts Options) (io.Writer, error) {
	if w.closed {
		return nil, ErrClosed
	}

	writer, err := w.zipWriter.CreateHeader(opts.header(name))
	if err != nil {
		return nil, fmt.Errorf("create header for %s: %w", name, err)
	}

	return writer, nil
}

// WriteDirectory adds a directory entry for the given path. A trailing slash
// is added if missing.
func (w *ZipWriter) WriteDirectory(name string, opts Options) error {
	if !strings.HasSuffix(name, "/") {
		name += "/"
	}

	_, err := w.createHeader(name, opts)

	return err
}

// WriteRegular adds a regular file entry with the content written by the
// given [io.WriterTo].
func (w *ZipWriter) WriteRegular(name string, opts Options, content io.WriterTo) error {
	writer, err := w.createHeader(name, opts)
	if err != nil {
		return err
	}

	if _, err := content.WriteTo(writer); err != nil {
		return fmt.Errorf("write body for %s: %w", name, err)
	}

	return nil
}
