// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"flag"
	"fmt"
	"io"

	"github.com/aibor/jarversion/internal/jar"
	"github.com/hashicorp/go-version"
	"github.com/klauspost/compress/flate"
)

const (
	name = "jarversion"

	compressionLevelMin = flate.HuffmanOnly
	compressionLevelMax = flate.BestCompression

	usageMessage = `Usage of 'jarversion':
    jarversion [flags...] JAR

Show the software version of all application properties files:
	jarversion app.jar

Set the software version in all application properties files:
	jarversion -set 1.2.3 app.jar

Write the result to a new file instead of replacing the given one:
	jarversion -set 1.2.3 -output app-1.2.3.jar app.jar

All jarversion flags can also be provided via environment variable
JARVERSION_ARGS:
	JARVERSION_ARGS="-debug" jarversion app.jar

All jarversion flags can also be provided via file ./.jarversion-args, with
one argument per line.
`
)

// versionValue is a [flag.Value] that holds a semantic version.
type versionValue struct {
	Value **version.Version
}

func (v versionValue) String() string {
	if v.Value == nil || *v.Value == nil {
		return ""
	}

	return (*v.Value).String()
}

func (v versionValue) Set(s string) error {
	parsed, err := jar.ParseVersion(s)
	if err != nil {
		return err
	}

	*v.Value = parsed

	return nil
}

type flags struct {
	JarPath          string
	OutputPath       string
	SetVersion       *version.Version
	CompressionLevel int
	Debug            bool
	Version          bool

	flagSet *flag.FlagSet
}

func parseArgs(args []string, output io.Writer) (*flags, error) {
	flags := &flags{
		CompressionLevel: flate.DefaultCompression,
	}

	flags.initFlagset(output)

	err := flags.parse(args)
	if err != nil {
		return nil, err
	}

	// Not needed anymore after parsing.
	flags.flagSet = nil

	return flags, nil
}

func (f *flags) parse(args []string) error {
	err := f.flagSet.Parse(args)
	if err != nil {
		return &ParseArgsError{msg: "flag parse", err: err}
	}

	// With version flag, nothing else is required.
	if f.Version {
		return nil
	}

	positionalArgs := f.flagSet.Args()

	switch len(positionalArgs) {
	case 0:
		return f.fail("no JAR file given", nil)
	case 1:
	default:
		return f.fail("more than one JAR file given", nil)
	}

	jarPath, err := AbsoluteFilePath(positionalArgs[0])
	if err != nil {
		return f.fail("JAR file path", err)
	}

	f.JarPath = jarPath

	if f.OutputPath != "" && f.SetVersion == nil {
		return f.fail("output file given without version (use -set)", nil)
	}

	return nil
}

func (f *flags) initFlagset(output io.Writer) {
	flagSet := flag.NewFlagSet(name, flag.ContinueOnError)
	flagSet.SetOutput(output)
	flagSet.Usage = f.usage

	flagSet.Var(
		versionValue{&f.SetVersion},
		"set",
		"semantic version to set in all application properties files",
	)

	flagSet.Var(
		(*FilePath)(&f.OutputPath),
		"output",
		"file to write the JAR with the new version to "+
			"(default is to replace the given JAR file)",
	)

	flagSet.Var(
		&LimitedIntValue{
			Value: &f.CompressionLevel,
			Lower: compressionLevelMin,
			Upper: compressionLevelMax,
		},
		"compressionLevel",
		"deflate compression level for rewritten files, from -2 (huffman "+
			"only) to 9 (best compression), -1 is the library default",
	)

	flagSet.BoolVar(
		&f.Debug,
		"debug",
		f.Debug,
		"enable debug output",
	)

	flagSet.BoolVar(
		&f.Version,
		"version",
		f.Version,
		"show version and exit",
	)

	f.flagSet = flagSet
}

// fail fails like flag does. It prints the error first and then usage.
func (f *flags) fail(msg string, err error) error {
	err = &ParseArgsError{msg: msg, err: err}
	fmt.Fprintln(f.flagSet.Output(), err.Error())

	f.flagSet.Usage()

	return err
}

func (f *flags) usage() {
	fmt.Fprint(f.flagSet.Output(), usageMessage)
	fmt.Fprintln(f.flagSet.Output(), "\nFlags:")
	f.flagSet.PrintDefaults()
}

// outputPath returns the destination of the rewritten JAR file.
func (f *flags) outputPath() string {
	if f.OutputPath != "" {
		return f.OutputPath
	}

	return f.JarPath
}
