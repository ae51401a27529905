// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package properties decodes and encodes Java properties files.
//
// Content is read as ISO-8859-1, the default encoding of Java properties
// files, with "\uXXXX" escapes for other characters. Parsing is done by
// [github.com/magiconair/properties] with property expansion disabled, so
// values like "${user.home}" are kept literally. Encoding writes pure ASCII
// with the escaping rules of java.util.Properties.store.
package properties
