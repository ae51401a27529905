// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package archive

import (
	"encoding/binary"
	"io/fs"
	"slices"
	"time"

	"github.com/klauspost/compress/zip"
)

// Extra field IDs that are generated by the zip writer and must not be
// carried over from the source entry.
const (
	extraZip64   uint16 = 0x0001
	extraExtTime uint16 = 0x5455
)

const defaultFileMode fs.FileMode = 0o644

// defaultModified is the MS-DOS epoch, the earliest representable time.
var defaultModified = time.Date(1980, time.January, 1, 0, 0, 0, 0, time.UTC)

// Options are the storage options of a single archive entry. They describe
// how the content is stored, independent of the content itself.
type Options struct {
	// Method is the compression method, usually [zip.Store] or
	// [zip.Deflate].
	Method uint16
	// Modified is the modification time of the entry.
	Modified time.Time
	// CreatorVersion holds the host system in its upper byte. Together with
	// ExternalAttrs it defines the entry's file mode.
	CreatorVersion uint16
	// ExternalAttrs are the host system dependent file attributes.
	ExternalAttrs uint32
	// Comment is the per entry comment.
	Comment string
	// NonUTF8 indicates the entry name and comment are not UTF-8 encoded.
	NonUTF8 bool
	// Extra holds extra fields except for those the writer generates itself.
	Extra []byte
}

// OptionsFromHeader captures the storage options of the given header.
func OptionsFromHeader(hdr *zip.FileHeader) Options {
	return Options{
		Method:         hdr.Method,
		Modified:       hdr.Modified,
		CreatorVersion: hdr.CreatorVersion,
		ExternalAttrs:  hdr.ExternalAttrs,
		Comment:        hdr.Comment,
		NonUTF8:        hdr.NonUTF8,
		Extra:          filterExtra(hdr.Extra, extraZip64, extraExtTime),
	}
}

// DefaultOptions returns the options used for new entries that do not
// replace an existing one: deflate compressed regular file with mode 0644.
func DefaultOptions() Options {
	hdr := zip.FileHeader{
		Method:   zip.Deflate,
		Modified: defaultModified,
	}
	hdr.SetMode(defaultFileMode)

	return OptionsFromHeader(&hdr)
}

// header creates a new [zip.FileHeader] for the given name with the options
// applied.
func (o Options) header(name string) *zip.FileHeader {
	return &zip.FileHeader{
		Name:           name,
		Comment:        o.Comment,
		NonUTF8:        o.NonUTF8,
		CreatorVersion: o.CreatorVersion,
		Method:         o.Method,
		Modified:       o.Modified,
		ExternalAttrs:  o.ExternalAttrs,
		Extra:          slices.Clone(o.Extra),
	}
}

// OptionsMap maps entry paths to their captured storage options.
type OptionsMap map[string]Options

// Get returns the options captured for the given path. If there are none,
// [DefaultOptions] are returned.
func (m OptionsMap) Get(name string) Options {
	if opts, exists := m[name]; exists {
		return opts
	}

	return DefaultOptions()
}

// filterExtra returns the extra fields without the fields with the given IDs.
// A truncated trailing field is dropped.
func filterExtra(extra []byte, drop ...uint16) []byte {
	const fieldHeaderSize = 4

	var filtered []byte

	for len(extra) >= fieldHeaderSize {
		id := binary.LittleEndian.Uint16(extra[0:2])
		size := fieldHeaderSize + int(binary.LittleEndian.Uint16(extra[2:4]))

		if len(extra) < size {
			break
		}

		if !slices.Contains(drop, id) {
			filtered = append(filtered, extra[:size]...)
		}

		extra = extra[size:]
	}

	return filtered
}
