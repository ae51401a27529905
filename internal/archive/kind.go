// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package archive

import "io/fs"

// Kind defines the type of an [Entry].
type Kind int

const (
	// KindRegular is a regular file with content.
	KindRegular Kind = iota

	// KindDirectory is a directory entry without content.
	KindDirectory

	// KindUnsupported is any other entry, like symbolic links, devices or
	// named pipes. Those are not copied by the [Rewriter].
	KindUnsupported
)

// String returns a string representation of the [Kind].
func (k Kind) String() string {
	switch k {
	case KindRegular:
		return "regular"
	case KindDirectory:
		return "directory"
	case KindUnsupported:
		return "unsupported"
	default:
		return "invalid"
	}
}

func kindOf(mode fs.FileMode) Kind {
	switch {
	case mode.IsDir():
		return KindDirectory
	case mode.IsRegular():
		return KindRegular
	default:
		return KindUnsupported
	}
}
