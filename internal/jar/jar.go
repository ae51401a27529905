// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package jar

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"

	"github.com/aibor/jarversion/internal/archive"
	"github.com/aibor/jarversion/internal/properties"
	"github.com/hashicorp/go-version"
)

// Version is the version found in a properties file.
type Version struct {
	// Value is the raw version string.
	Value string
	// Present is false if the properties file does not have the version key.
	Present bool
}

func (v Version) String() string {
	if !v.Present {
		return "<none>"
	}

	return v.Value
}

// Jar gives access to the version information of a JAR archive.
type Jar struct {
	archive     *archive.Archive
	logger      *slog.Logger
	archiveOpts []archive.Option
}

// New returns a [Jar] for the given archive.
func New(a *archive.Archive, opts ...Option) *Jar {
	cfg := newConfig(opts)

	return &Jar{
		archive: a,
		logger:  cfg.logger,
		archiveOpts: append(
			[]archive.Option{archive.WithLogger(cfg.logger)},
			cfg.archiveOpts...,
		),
	}
}

// File is a [Jar] backed by a file on disk. It must be closed after use.
type File struct {
	*Jar

	file *archive.ArchiveFile
}

// OpenFile opens the JAR file with the given name.
func OpenFile(name string, opts ...Option) (*File, error) {
	file, err := archive.OpenFile(name)
	if err != nil {
		return nil, err
	}

	return &File{Jar: New(file.Archive, opts...), file: file}, nil
}

// Close closes the underlying file.
func (f *File) Close() error {
	return f.file.Close()
}

// Properties returns the decoded properties files present in the archive,
// keyed by their archive path. Files that can not be read or decoded are
// logged and skipped.
func (j *Jar) Properties() map[string]*properties.Mapping {
	result := make(map[string]*properties.Mapping)

	for _, path := range CandidatePaths() {
		logger := j.logger.With(slog.String("path", path))

		content, err := j.archive.ReadFile(path)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				logger.Debug("Properties file not present")
			} else {
				logger.Warn("Error while reading properties file", slog.Any("error", err))
			}

			continue
		}

		mapping, err := properties.DecodeBytes(content)
		if err != nil {
			logger.Warn("Error while parsing properties file", slog.Any("error", err))
			continue
		}

		result[path] = mapping
	}

	if len(result) == 0 {
		j.logger.Warn("No properties files found",
			slog.String("dir", ClassesDir),
		)
	}

	return result
}

// Versions returns the version of each properties file present in the
// archive. Values that are not semantic versions are returned as well, but
// logged as warning.
func (j *Jar) Versions() map[string]Version {
	all := j.Properties()
	result := make(map[string]Version, len(all))

	for path, mapping := range all {
		value, present := mapping.Get(VersionKey)
		if present {
			if _, err := ParseVersion(value); err != nil {
				j.logger.Warn("Invalid version",
					slog.String("path", path),
					slog.String("version", value),
					slog.Any("error", err),
				)
			}
		}

		result[path] = Version{Value: value, Present: present}
	}

	return result
}

// SetVersion returns a copy of the archive with [VersionKey] set to v in all
// present properties files.
func (j *Jar) SetVersion(v *version.Version) ([]byte, error) {
	var buf bytes.Buffer

	err := j.SetVersionTo(&buf, v)
	if err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// SetVersionTo writes a copy of the archive with [VersionKey] set to v in all
// present properties files to w. On error, w may hold a partial archive.
func (j *Jar) SetVersionTo(w io.Writer, v *version.Version) error {
	all := j.Properties()
	replacements := make(map[string]io.WriterTo, len(all))

	for path, mapping := range all {
		prev, existed := mapping.Set(VersionKey, v.String())

		logger := j.logger.With(slog.String("path", path))
		if existed {
			logger.Info("Replacing version",
				slog.String("old", prev),
				slog.String("new", v.String()),
			)
		} else {
			logger.Info("Adding version", slog.String("new", v.String()))
		}

		replacements[path] = mapping
	}

	err := archive.ReplaceTo(w, j.archive, replacements, j.archiveOpts...)
	if err != nil {
		return fmt.Errorf("rewrite archive: %w", err)
	}

	return nil
}

// ParseVersion parses a semantic version like "1.2.3" or "1.2.3-rc.1+build.5".
// Missing minor and patch segments are filled with zeros.
func ParseVersion(s string) (*version.Version, error) {
	v, err := version.NewSemver(s)
	if err != nil {
		return nil, fmt.Errorf("parse version %q: %w", s, err)
	}

	return v, nil
}
