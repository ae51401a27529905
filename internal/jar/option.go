// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package jar

import (
	"log/slog"

	"github.com/aibor/jarversion/internal/archive"
)

type config struct {
	logger      *slog.Logger
	archiveOpts []archive.Option
}

// Option configures a [Jar].
type Option func(*config)

// WithLogger sets the logger for the [Jar] and the archive rewrite.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithArchiveOptions adds options used when the archive is rewritten.
func WithArchiveOptions(opts ...archive.Option) Option {
	return func(c *config) {
		c.archiveOpts = append(c.archiveOpts, opts...)
	}
}

func newConfig(opts []Option) config {
	cfg := config{
		logger: slog.Default(),
	}

	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
