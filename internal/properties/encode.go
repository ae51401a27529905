// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package properties

import (
	"bytes"
	"unicode/utf16"
)

const hexDigits = "0123456789ABCDEF"

// writeEscaped writes s with backslash escapes for all characters that have
// a special meaning in keys or values. Non-printable and non-ASCII
// characters are written as "\uXXXX", characters outside the basic
// multilingual plane as surrogate pair. Spaces are escaped everywhere in
// keys, but only leading ones in values.
func writeEscaped(buf *bytes.Buffer, s string, isKey bool) {
	for idx, r := range s {
		switch r {
		case ' ':
			if isKey || idx == 0 {
				buf.WriteByte('\\')
			}

			buf.WriteByte(' ')
		case '\t':
			buf.WriteString(`\t`)
		case '\n':
			buf.WriteString(`\n`)
		case '\r':
			buf.WriteString(`\r`)
		case '\f':
			buf.WriteString(`\f`)
		case '\\', '=', ':', '#', '!':
			buf.WriteByte('\\')
			buf.WriteRune(r)
		default:
			if r < 0x20 || r > 0x7e {
				writeUnicodeEscape(buf, r)
				continue
			}

			buf.WriteRune(r)
		}
	}
}

// writeComment writes a comment line. Non-ASCII characters are escaped like
// in keys and values, so the output stays ASCII.
func writeComment(buf *bytes.Buffer, comment string) {
	buf.WriteString(commentPrefix)

	for _, r := range comment {
		if r > 0x7e {
			writeUnicodeEscape(buf, r)
			continue
		}

		buf.WriteRune(r)
	}

	buf.WriteByte('\n')
}

func writeUnicodeEscape(buf *bytes.Buffer, r rune) {
	if r > 0xffff {
		high, low := utf16.EncodeRune(r)
		writeUnicodeEscape(buf, high)
		writeUnicodeEscape(buf, low)

		return
	}

	buf.WriteString(`\u`)

	for shift := 12; shift >= 0; shift -= 4 {
		buf.WriteByte(hexDigits[r>>shift&0xf])
	}
}
