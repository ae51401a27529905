// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package properties

import (
	"bytes"
	"fmt"
	"io"
	"maps"
	"slices"

	"github.com/magiconair/properties"
)

const commentPrefix = "# "

// Mapping is an ordered set of key value pairs as read from or written to a
// properties file. Keys keep the order of their first appearance.
type Mapping struct {
	props *properties.Properties
}

// New returns an empty [Mapping].
func New() *Mapping {
	props := properties.NewProperties()
	props.DisableExpansion = true

	return &Mapping{props: props}
}

// FromMap returns a [Mapping] with the pairs of m. Keys are sorted.
func FromMap(m map[string]string) *Mapping {
	mapping := New()

	for _, key := range slices.Sorted(maps.Keys(m)) {
		mapping.Set(key, m[key])
	}

	return mapping
}

// Decode parses ISO-8859-1 encoded properties text from r.
func Decode(r io.Reader) (*Mapping, error) {
	buf, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read: %w", err)
	}

	return DecodeBytes(buf)
}

// DecodeBytes parses ISO-8859-1 encoded properties text from buf.
func DecodeBytes(buf []byte) (*Mapping, error) {
	loader := properties.Loader{
		Encoding:         properties.ISO_8859_1,
		DisableExpansion: true,
	}

	props, err := loader.LoadBytes(buf)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSyntax, err)
	}

	props.DisableExpansion = true

	return &Mapping{props: props}, nil
}

// Get returns the value for key and whether it exists.
func (m *Mapping) Get(key string) (string, bool) {
	return m.props.Get(key)
}

// Set sets key to value. It returns the previous value and whether the key
// existed before. New keys are appended.
func (m *Mapping) Set(key, value string) (string, bool) {
	// Never fails with expansion disabled.
	prev, existed, _ := m.props.Set(key, value)

	return prev, existed
}

// Delete removes key and its comments.
func (m *Mapping) Delete(key string) {
	m.props.Delete(key)
}

// Keys returns all keys in order.
func (m *Mapping) Keys() []string {
	return m.props.Keys()
}

// Len returns the number of keys.
func (m *Mapping) Len() int {
	return m.props.Len()
}

// Map returns a copy of all pairs.
func (m *Mapping) Map() map[string]string {
	return m.props.Map()
}

// Bytes returns the encoded properties text. It is pure ASCII, so valid
// ISO-8859-1 and UTF-8 at the same time. Each pair is written as "key=value"
// line, preceded by its comments.
func (m *Mapping) Bytes() []byte {
	var buf bytes.Buffer

	for _, key := range m.props.Keys() {
		value, _ := m.props.Get(key)

		for _, comment := range m.props.GetComments(key) {
			writeComment(&buf, comment)
		}

		writeEscaped(&buf, key, true)
		buf.WriteByte('=')
		writeEscaped(&buf, value, false)
		buf.WriteByte('\n')
	}

	return buf.Bytes()
}

// WriteTo writes the encoded properties text to w.
func (m *Mapping) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(m.Bytes())
	if err != nil {
		return int64(n), fmt.Errorf("write properties: %w", err)
	}

	return int64(n), nil
}
