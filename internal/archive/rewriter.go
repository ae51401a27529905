// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package archive

import (
	"bytes"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"maps"
	"slices"
)

// Rewriter copies a source [Archive] into a [Writer] while replacing a set
// of entries with new content.
//
// The [Rewriter] owns the [Writer] for the duration of the rewrite. The
// source archive must not be modified concurrently.
type Rewriter struct {
	writer Writer
	logger *slog.Logger
}

// NewRewriter creates a new [Rewriter] writing into the given [Writer]. Only
// [WithLogger] applies.
func NewRewriter(writer Writer, opts ...Option) *Rewriter {
	cfg := newConfig(opts)

	return &Rewriter{
		writer: writer,
		logger: cfg.logger,
	}
}

// CopySelected copies all entries of the source archive in storage order,
// except for those with a name in exclude. Regular files are copied with
// their content, directories as empty entries, both with their original
// [Options]. Other kinds of entries are skipped with a warning.
//
// It returns the [Options] of the excluded regular file entries, so they can
// be used for the entries replacing them.
func (r *Rewriter) CopySelected(src *Archive, exclude []string) (OptionsMap, error) {
	excluded := make(map[string]struct{}, len(exclude))
	for _, name := range exclude {
		excluded[name] = struct{}{}
	}

	var (
		options = make(OptionsMap, len(exclude))
		buf     bytes.Buffer
	)

	err := src.Walk(func(entry *Entry) error {
		name := entry.Name()

		if _, exists := excluded[name]; exists {
			r.logger.Debug("Excluding entry", slog.String("path", name))

			// Replacements are regular files, so options of other kinds
			// do not apply to them.
			if _, captured := options[name]; !captured && entry.Kind() == KindRegular {
				options[name] = entry.Options()
			}

			return nil
		}

		switch entry.Kind() {
		case KindRegular:
			r.logger.Debug("Copying file", slog.String("path", name))

			buf.Reset()

			err := entry.readInto(&buf)
			if err != nil {
				return err
			}

			err = r.writer.WriteRegular(name, entry.Options(), bytes.NewReader(buf.Bytes()))
			if err != nil {
				return &PathError{Op: "copy", Path: name, Err: err}
			}
		case KindDirectory:
			r.logger.Debug("Creating directory", slog.String("path", name))

			err := r.writer.WriteDirectory(name, entry.Options())
			if err != nil {
				return &PathError{Op: "copy", Path: name, Err: err}
			}
		default:
			r.logger.Warn("Skipping unsupported entry",
				slog.String("path", name),
				slog.String("mode", entry.Mode().String()),
			)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return options, nil
}

// AddReplacements adds an entry for each of the given replacements in
// sorted path order. Each entry is written with the [Options] from the given
// map, or with [DefaultOptions] if there are none for its path.
func (r *Rewriter) AddReplacements(
	replacements map[string]io.WriterTo,
	options OptionsMap,
) error {
	names := slices.Sorted(maps.Keys(replacements))

	err := validateNames(names)
	if err != nil {
		return err
	}

	for _, name := range names {
		r.logger.Debug("Adding replacement", slog.String("path", name))

		err := r.writer.WriteRegular(name, options.Get(name), replacements[name])
		if err != nil {
			return &PathError{Op: "replace", Path: name, Err: err}
		}
	}

	return nil
}

// Rewrite copies all entries of the source archive except those that are
// replaced by the given replacements, adds the replacements and finalizes
// the archive by closing the [Writer].
//
// On error, the [Writer] is left unfinished and its output must be
// discarded.
func (r *Rewriter) Rewrite(src *Archive, replacements map[string]io.WriterTo) error {
	names := slices.Sorted(maps.Keys(replacements))

	err := validateNames(names)
	if err != nil {
		return err
	}

	options, err := r.CopySelected(src, names)
	if err != nil {
		return err
	}

	err = r.AddReplacements(replacements, options)
	if err != nil {
		return err
	}

	err = r.writer.Close()
	if err != nil {
		return fmt.Errorf("finalize archive: %w", err)
	}

	return nil
}

// ReplaceTo writes a new archive to w. It contains all entries of src, with
// the entries named in replacements replaced by their new content. The
// archive comment of src is carried over.
//
// On error, w may contain a partial archive that must be discarded.
func ReplaceTo(
	w io.Writer,
	src *Archive,
	replacements map[string]io.WriterTo,
	opts ...Option,
) error {
	opts = append([]Option{WithComment(src.Comment())}, opts...)

	return NewRewriter(NewZipWriter(w, opts...), opts...).Rewrite(src, replacements)
}

// Replace works like [ReplaceTo] but returns the new archive. On error, no
// archive is returned.
func Replace(
	src *Archive,
	replacements map[string]io.WriterTo,
	opts ...Option,
) ([]byte, error) {
	var buf bytes.Buffer

	err := ReplaceTo(&buf, src, replacements, opts...)
	if err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

func validateNames(names []string) error {
	for _, name := range names {
		if name == "." || !fs.ValidPath(name) {
			return &PathError{Op: "replace", Path: name, Err: ErrInvalidPath}
		}
	}

	return nil
}
