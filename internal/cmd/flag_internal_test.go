// SPDX-FileCopyrightText: 2024 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"bytes"
	"io"
	"testing"

	"github.com/hashicorp/go-version"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlags_ParseArgs(t *testing.T) {
	tests := []struct {
		name          string
		args          []string
		expectedFlags *flags
		expecterErr   error
	}{
		{
			name: "help",
			args: []string{
				"-help",
			},
			expecterErr: ErrHelp,
		},
		{
			name: "version",
			args: []string{
				"-version",
			},
			expectedFlags: &flags{
				CompressionLevel: -1,
				Version:          true,
			},
		},
		{
			name:        "no jar",
			args:        []string{},
			expecterErr: &ParseArgsError{},
		},
		{
			name: "more than one jar",
			args: []string{
				"app.jar",
				"other.jar",
			},
			expecterErr: &ParseArgsError{},
		},
		{
			name: "read",
			args: []string{
				"app.jar",
			},
			expectedFlags: &flags{
				JarPath:          MustAbsoluteFilePath(t, "app.jar"),
				CompressionLevel: -1,
			},
		},
		{
			name: "set",
			args: []string{
				"-set", "1.2.3-rc.1",
				"-debug",
				"app.jar",
			},
			expectedFlags: &flags{
				JarPath:          MustAbsoluteFilePath(t, "app.jar"),
				SetVersion:       version.Must(version.NewSemver("1.2.3-rc.1")),
				CompressionLevel: -1,
				Debug:            true,
			},
		},
		{
			name: "set with output",
			args: []string{
				"-set=2.0.0",
				"-output", "/tmp/new.jar",
				"-compressionLevel=9",
				"app.jar",
			},
			expectedFlags: &flags{
				JarPath:          MustAbsoluteFilePath(t, "app.jar"),
				OutputPath:       "/tmp/new.jar",
				SetVersion:       version.Must(version.NewSemver("2.0.0")),
				CompressionLevel: 9,
			},
		},
		{
			name: "later flags take precedence",
			args: []string{
				"-compressionLevel", "1",
				"-compressionLevel", "-2",
				"app.jar",
			},
			expectedFlags: &flags{
				JarPath:          MustAbsoluteFilePath(t, "app.jar"),
				CompressionLevel: -2,
			},
		},
		{
			name: "output without version",
			args: []string{
				"-output", "/tmp/new.jar",
				"app.jar",
			},
			expecterErr: &ParseArgsError{},
		},
		{
			name: "invalid version",
			args: []string{
				"-set", "latest",
				"app.jar",
			},
			expecterErr: &ParseArgsError{},
		},
		{
			name: "compression level out of range",
			args: []string{
				"-compressionLevel", "10",
				"app.jar",
			},
			expecterErr: &ParseArgsError{},
		},
		{
			name: "empty output path",
			args: []string{
				"-set", "1.0.0",
				"-output", "",
				"app.jar",
			},
			expecterErr: &ParseArgsError{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flags, err := parseArgs(tt.args, io.Discard)
			require.ErrorIs(t, err, tt.expecterErr)

			if tt.expecterErr != nil {
				return
			}

			assert.Equal(t, tt.expectedFlags, flags)
		})
	}
}

func TestFlags_Usage(t *testing.T) {
	var output bytes.Buffer

	_, err := parseArgs([]string{"-help"}, &output)
	require.ErrorIs(t, err, ErrHelp)

	assert.Contains(t, output.String(), "jarversion [flags...] JAR")
	assert.Contains(t, output.String(), "-compressionLevel")
	assert.Contains(t, output.String(), "-set")
	assert.Contains(t, output.String(), "-output")
}

func TestFlags_OutputPath(t *testing.T) {
	f := flags{JarPath: "/in.jar"}
	assert.Equal(t, "/in.jar", f.outputPath())

	f.OutputPath = "/out.jar"
	assert.Equal(t, "/out.jar", f.outputPath())
}
