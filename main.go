// Package main implements a CLI tool that syncs the version string of a
// manifest file and a build configuration file.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/pflag"

	syncver "github.com/bcomnes/syncver/pkg"
)

var (
	errorColor = color.New(color.FgRed)
	warnColor  = color.New(color.FgYellow)
)

func usage(w io.Writer, fs *pflag.FlagSet) {
	msg := `Usage:
  syncver [options] [new-version]

Reads the version from the manifest (default: Cargo.toml), asks for a new one, validates it
against the SemVer grammar and writes it to the manifest and the build file (default: Makefile).
Press Enter at the prompt to keep the current version.

Examples:
  syncver
  syncver 1.2.4
  syncver --manifest crates/app/Cargo.toml --build-file build.mk 2.0.0-rc.1

Positional arguments:
  [new-version]      Explicit version like 1.2.3 (no "v" prefix). Skips the prompt.

Options:
`
	fmt.Fprint(w, msg)
	fmt.Fprint(w, fs.FlagUsages())
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run executes the CLI and returns the process exit code.
func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := pflag.NewFlagSet("syncver", pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.SetInterspersed(false)
	manifest := fs.StringP("manifest", "m", syncver.DefaultManifestPath, "Path to the manifest file holding the version = \"x.y.z\" field")
	buildFile := fs.StringP("build-file", "b", syncver.DefaultBuildPath, "Path to the build file holding the VERSION = x.y.z line")
	dryRun := fs.BoolP("dry", "n", false, "Validate and report without modifying any file")
	verbose := fs.BoolP("verbose", "v", false, "Log debugging information to stderr")
	showVersion := fs.Bool("version", false, "Show CLI version and exit")
	help := fs.BoolP("help", "h", false, "Show help message and exit")

	if err := fs.Parse(args); err != nil {
		errorColor.Fprintln(stderr, "Error:", err)
		usage(stderr, fs)
		return 1
	}

	if *help {
		usage(stdout, fs)
		return 0
	}
	if *showVersion {
		fmt.Fprintln(stdout, "syncver CLI version", Version)
		return 0
	}

	// Guard against misplaced flags after positional args.
	for _, arg := range fs.Args() {
		if strings.HasPrefix(arg, "-") {
			errorColor.Fprintln(stderr, "Error: Flags must be specified before the version. Please reorder your arguments.")
			usage(stderr, fs)
			return 1
		}
	}
	if fs.NArg() > 1 {
		errorColor.Fprintln(stderr, "Error: at most one [new-version] positional argument is allowed")
		usage(stderr, fs)
		return 1
	}

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	opts := syncver.Options{
		ManifestPath: *manifest,
		BuildPath:    *buildFile,
		NewVersion:   fs.Arg(0),
		In:           stdin,
		Out:          stdout,
		Logger:       logger,
	}

	var meta syncver.VersionMeta
	var err error
	if *dryRun {
		meta, err = syncver.DryRun(ctx, opts)
	} else {
		meta, err = syncver.Run(ctx, opts)
	}
	switch {
	case errors.Is(err, syncver.ErrCanceled):
		fmt.Fprintln(stdout, "\nCanceled by user")
		return 0
	case errors.Is(err, syncver.ErrInvalidVersion):
		errorColor.Fprintln(stdout, err)
		return 1
	case err != nil:
		errorColor.Fprintln(stderr, "Error:", err)
		return 1
	}

	if meta.Direction == syncver.Downgrade {
		warnColor.Fprintf(stderr, "Warning: new version %s is lower than current version %s\n",
			meta.NewVersion, meta.ManifestOldVersion)
	}

	if *dryRun {
		fmt.Fprintln(stdout, "Dry run complete, no files were modified.")
		fmt.Fprintf(stdout, "Version would be changed from '%s' -> '%s'\n", meta.BuildOldVersion, meta.NewVersion)
		if len(meta.UpdatedFiles) > 0 {
			fmt.Fprintln(stdout, "Files that would be updated:")
			for _, f := range meta.UpdatedFiles {
				fmt.Fprintf(stdout, "  %s\n", f)
			}
		}
		return 0
	}

	fmt.Fprintf(stdout, "Version has been changed from '%s' -> '%s'\n", meta.BuildOldVersion, meta.NewVersion)
	return 0
}
