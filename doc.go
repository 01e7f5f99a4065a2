// Package main implements the syncver CLI tool.
//
// The syncver tool keeps the version of a Rust-style project in one place. It reads
// the current version from the manifest (default "Cargo.toml", field `version = "x.y.z"`),
// asks for a new version, validates it against the semver.org grammar and writes it to
// both the manifest and the build file (default "Makefile", line `VERSION = x.y.z`).
//
// Command Usage:
//
//	syncver [flags] [new-version]
//
// Flags:
//
//	-m, --manifest:   Path to the manifest file. (Defaults to "Cargo.toml")
//	-b, --build-file: Path to the build configuration file. (Defaults to "Makefile")
//	-n, --dry:        Validates the new version and lists the files that would change,
//	                  without writing anything.
//	-v, --verbose:    Logs debugging information to stderr.
//	--version:        Displays the version of the syncver CLI tool and exits.
//
// At the prompt, pressing Enter keeps the current version and Ctrl-C cancels the run
// without touching any file. Passing [new-version] skips the prompt.
//
// Examples:
//
//	# Ask for the new version interactively
//	syncver
//
//	# Set an explicit version directly
//	syncver 1.2.4
//
//	# Set a prerelease version with build metadata
//	syncver 2.0.0-rc.1+build.5
//
//	# Use non-default file locations
//	syncver --manifest crates/app/Cargo.toml --build-file build.mk 1.3.0
//
//	# Check what would change
//	syncver --dry 1.3.0
//
// Every occurrence of the old version string in each file is replaced, not only the
// marked field. Both files are prepared in memory first and written only when both
// succeed, each through a temporary file renamed into place.
//
// For the library API, see the documentation of the "pkg" package.
package main
