// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package jar

import "path"

const (
	// ClassesDir is the directory of the application's resources.
	ClassesDir = "BOOT-INF/classes"

	// VersionKey is the properties key holding the software version.
	VersionKey = "softwareVersion"
)

// PropertiesFiles are the names of the properties files in [ClassesDir] that
// may hold the version.
var PropertiesFiles = []string{
	"application.properties",
	"application-dev.properties",
	"application-int.properties",
	"application-local.properties",
	"application-prod.properties",
}

// CandidatePaths returns the archive paths of all [PropertiesFiles].
func CandidatePaths() []string {
	paths := make([]string, len(PropertiesFiles))
	for idx, name := range PropertiesFiles {
		paths[idx] = path.Join(ClassesDir, name)
	}

	return paths
}
