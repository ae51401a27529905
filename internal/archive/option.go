// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package archive

import (
	"log/slog"

	"github.com/klauspost/compress/flate"
)

type config struct {
	logger           *slog.Logger
	compressionLevel int
	comment          string
}

func newConfig(opts []Option) config {
	cfg := config{
		logger:           slog.Default(),
		compressionLevel: flate.DefaultCompression,
	}

	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// Option configures a [Rewriter] or a [ZipWriter].
type Option func(*config)

// WithLogger sets the logger. Default is [slog.Default].
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithCompressionLevel sets the flate compression level used for deflate
// compressed entries. Valid levels range from [flate.HuffmanOnly] to
// [flate.BestCompression]. Default is [flate.DefaultCompression].
func WithCompressionLevel(level int) Option {
	return func(c *config) {
		c.compressionLevel = level
	}
}

// WithComment sets the archive comment written on close.
func WithComment(comment string) Option {
	return func(c *config) {
		c.comment = comment
	}
}
