// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package jar reads and writes the software version of Spring Boot style JAR
// files.
//
// The version is stored as [VersionKey] in a fixed set of properties files
// below [ClassesDir]. Only the files present in the archive are taken into
// account.
package jar
