// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package archive reads ZIP archives (like JAR files) and rewrites them with
// a subset of their entries replaced.
//
// An [Archive] gives access to the entries of a source archive in storage
// order. A [Rewriter] copies all entries of a source archive into a [Writer],
// except the ones about to be replaced, and then adds the replacements with
// the storage [Options] of the entries they replace. [Replace] and
// [ReplaceTo] combine both into a single call that produces a complete new
// archive.
package archive
