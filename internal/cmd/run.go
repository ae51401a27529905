// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"maps"
	"os"
	"path/filepath"
	"runtime/debug"
	"slices"

	"github.com/aibor/jarversion/internal/archive"
	"github.com/aibor/jarversion/internal/jar"
)

const localConfigFile = ".jarversion-args"

// IO provides input and output details for the command.
type IO struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

func newFlags(args []string, cfg IO) (*flags, error) {
	args, err := MergedArgs(args, os.DirFS("."), localConfigFile)
	if err != nil {
		return nil, err
	}

	flags, err := parseArgs(args, cfg.Stderr)
	if err != nil {
		return nil, fmt.Errorf("parse args: %w", err)
	}

	return flags, nil
}

func run(ctx context.Context, flags *flags, cfg IO) error {
	err := ValidateFilePath(flags.JarPath)
	if err != nil {
		return fmt.Errorf("validate: %w", err)
	}

	jarFile, err := jar.OpenFile(
		flags.JarPath,
		jar.WithLogger(slog.Default()),
		jar.WithArchiveOptions(
			archive.WithCompressionLevel(flags.CompressionLevel),
		),
	)
	if err != nil {
		return fmt.Errorf("open JAR: %w", err)
	}

	defer closeJar(jarFile)

	if flags.SetVersion == nil {
		printVersions(cfg.Stdout, jarFile.Versions())
		return nil
	}

	err = writeVersion(ctx, jarFile, flags)
	if err != nil {
		return fmt.Errorf("set version: %w", err)
	}

	return nil
}

func printVersions(w io.Writer, versions map[string]jar.Version) {
	for _, path := range slices.Sorted(maps.Keys(versions)) {
		v := versions[path]
		if !v.Present {
			slog.Error(path + " does not have a version")
			continue
		}

		fmt.Fprintf(w, "%s: %s\n", path, v.Value)
	}
}

// writeVersion writes the JAR with the new version into a temporary file next
// to the destination and moves it to the destination once complete. The file
// mode of the destination is kept, if it exists, otherwise the one of the
// source JAR is used.
func writeVersion(ctx context.Context, jarFile *jar.File, flags *flags) error {
	dst := flags.outputPath()

	mode, err := fileMode(dst, flags.JarPath)
	if err != nil {
		return err
	}

	tmpFile, err := os.CreateTemp(filepath.Dir(dst), "."+filepath.Base(dst)+".*")
	if err != nil {
		return fmt.Errorf("create temporary file: %w", err)
	}

	slog.Debug("Created temporary file", slog.String("path", tmpFile.Name()))

	err = writeTempFile(ctx, tmpFile, jarFile, flags, mode)
	if err != nil {
		removeTempFile(tmpFile.Name())
		return err
	}

	err = os.Rename(tmpFile.Name(), dst)
	if err != nil {
		removeTempFile(tmpFile.Name())
		return fmt.Errorf("replace destination: %w", err)
	}

	slog.Debug("Written JAR file", slog.String("path", dst))

	return nil
}

func writeTempFile(
	ctx context.Context,
	tmpFile *os.File,
	jarFile *jar.File,
	flags *flags,
	mode fs.FileMode,
) error {
	err := jarFile.SetVersionTo(tmpFile, flags.SetVersion)
	if err == nil {
		err = tmpFile.Chmod(mode)
	}

	if err == nil {
		err = tmpFile.Sync()
	}

	closeErr := tmpFile.Close()
	if err != nil {
		return err
	}

	if closeErr != nil {
		return fmt.Errorf("close temporary file: %w", closeErr)
	}

	// Do not replace the destination if interrupted in the meantime.
	return context.Cause(ctx)
}

// fileMode returns the permission bits of the first existing file of the
// given ones.
func fileMode(names ...string) (fs.FileMode, error) {
	for _, name := range names {
		info, err := os.Stat(name)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		} else if err != nil {
			return 0, fmt.Errorf("stat: %w", err)
		}

		return info.Mode().Perm(), nil
	}

	return 0, fmt.Errorf("stat: %w", fs.ErrNotExist)
}

func removeTempFile(path string) {
	slog.Debug("Removing temporary file", slog.String("path", path))

	err := os.Remove(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		slog.Error(
			"Failed to remove temporary file",
			slog.String("path", path),
			slog.Any("error", err),
		)
	}
}

func closeJar(jarFile *jar.File) {
	err := jarFile.Close()
	if err != nil {
		slog.Warn("Failed to close JAR file", slog.Any("error", err))
	}
}

func handleParseArgsError(err error) int {
	// [ErrHelp] is returned when help is requested. So exit without error
	// in this case.
	if errors.Is(err, ErrHelp) {
		return 0
	}

	// ParseArgs already prints errors, so we just exit without an error.
	if !errors.Is(err, &ParseArgsError{}) {
		slog.Error(err.Error())
	}

	return 1
}

func handleRunError(err error) int {
	if errors.Is(err, context.Canceled) {
		slog.Warn("Interrupted, destination left unchanged")
		return 1
	}

	slog.Error(err.Error())

	return 1
}

// Run is the main entry point for the CLI command.
func Run(ctx context.Context, args []string, cfg IO) int {
	setupLogging(cfg.Stderr, false)

	flags, err := newFlags(args, cfg)
	if err != nil {
		return handleParseArgsError(err)
	}

	setupLogging(cfg.Stderr, flags.Debug)

	if flags.Version {
		buildInfo, err := getBuildInfo()
		if err != nil {
			slog.Error(err.Error())
			return 1
		}

		fmt.Fprintf(cfg.Stdout, "Version: %s\n", buildInfo.Main.Version)

		return 0
	}

	err = run(ctx, flags, cfg)
	if err != nil {
		return handleRunError(err)
	}

	return 0
}

func getBuildInfo() (*debug.BuildInfo, error) {
	buildInfo, ok := debug.ReadBuildInfo()
	if !ok {
		return nil, ErrReadBuildInfo
	}

	return buildInfo, nil
}
