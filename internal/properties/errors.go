// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package properties

import "errors"

// ErrSyntax is returned if the content is not valid properties text.
var ErrSyntax = errors.New("invalid properties syntax")
