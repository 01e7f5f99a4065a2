package syncver

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
)

const (
	// DefaultManifestPath is used when Options.ManifestPath is empty.
	DefaultManifestPath = "Cargo.toml"
	// DefaultBuildPath is used when Options.BuildPath is empty.
	DefaultBuildPath = "Makefile"
)

// Options configures a synchronization run.
type Options struct {
	ManifestPath string // Defaults to DefaultManifestPath.
	BuildPath    string // Defaults to DefaultBuildPath.

	// NewVersion skips the prompt when set. An empty value means "ask".
	NewVersion string

	// In is the prompt input and defaults to os.Stdin. When the prompt is
	// canceled, In is closed if it is an io.Closer; otherwise it must not be
	// reused, since a pending read may still consume its next line.
	In io.Reader

	Out    io.Writer    // Progress and prompt output. Defaults to os.Stdout.
	Logger *slog.Logger // Defaults to a logger that discards everything.
}

func (o Options) withDefaults() Options {
	if o.ManifestPath == "" {
		o.ManifestPath = DefaultManifestPath
	}
	if o.BuildPath == "" {
		o.BuildPath = DefaultBuildPath
	}
	if o.In == nil {
		o.In = os.Stdin
	}
	if o.Out == nil {
		o.Out = os.Stdout
	}
	if o.Logger == nil {
		o.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return o
}

// VersionMeta holds metadata about a synchronization run.
type VersionMeta struct {
	ManifestOldVersion string    // Value found in the manifest before the run.
	BuildOldVersion    string    // Value found in the build file before the run.
	NewVersion         string    // Value written to both files.
	Direction          Direction // NewVersion relative to ManifestOldVersion.
	UpdatedFiles       []string  // Files written (or that would be written on a dry run).
}

// pendingWrite is a fully prepared file buffer.
type pendingWrite struct {
	path    string
	content string
}

// Run reads the current version from the manifest, asks for a new one (unless
// opts.NewVersion is set), validates it and rewrites the manifest and the build
// file. Both buffers are prepared before the first write, so a missing marker
// or an invalid version leaves both files untouched.
//
// Cancelling ctx while the prompt waits for input returns ErrCanceled.
func Run(ctx context.Context, opts Options) (VersionMeta, error) {
	opts = opts.withDefaults()
	meta, writes, err := prepare(ctx, opts)
	if err != nil {
		return meta, err
	}

	for _, w := range writes {
		if err := writeFileAtomic(w.path, []byte(w.content)); err != nil {
			return meta, err
		}
		opts.Logger.Debug("file written", "path", w.path, "bytes", len(w.content))
	}
	return meta, nil
}

// DryRun behaves like Run, prompt and validation included, but writes nothing.
// The returned UpdatedFiles lists the files Run would have written.
func DryRun(ctx context.Context, opts Options) (VersionMeta, error) {
	meta, _, err := prepare(ctx, opts.withDefaults())
	return meta, err
}

func prepare(ctx context.Context, opts Options) (VersionMeta, []pendingWrite, error) {
	var meta VersionMeta
	log := opts.Logger

	// 1. Current version from the manifest.
	manifest := ManifestField(opts.ManifestPath)
	manifestContent, oldVersion, err := manifest.Read()
	if err != nil {
		return meta, nil, err
	}
	meta.ManifestOldVersion = oldVersion
	fmt.Fprintf(opts.Out, "Found old version in %s: %s\n", opts.ManifestPath, oldVersion)

	// 2. New version, from the caller or the user.
	newVersion := opts.NewVersion
	if newVersion == "" {
		newVersion, err = promptLine(ctx, opts.In, opts.Out,
			fmt.Sprintf("Current version: %s\nNew version (without 'v' prefix): ", oldVersion))
		if err != nil {
			return meta, nil, err
		}
	}
	if newVersion == "" {
		log.Debug("empty input, keeping current version", "version", oldVersion)
		newVersion = oldVersion
	}

	// 3. Validate before anything else can touch the disk.
	if err := ValidateVersion(newVersion); err != nil {
		return meta, nil, err
	}
	meta.NewVersion = newVersion
	meta.Direction = compareVersions(oldVersion, newVersion)
	log.Debug("version accepted", "old", oldVersion, "new", newVersion, "direction", meta.Direction)

	var writes []pendingWrite

	// 4. Manifest buffer.
	if updated := replaceVersion(manifestContent, oldVersion, newVersion); updated != manifestContent {
		writes = append(writes, pendingWrite{path: opts.ManifestPath, content: updated})
	}

	// 5. Current version from the build file.
	build := BuildField(opts.BuildPath)
	buildContent, buildOld, err := build.Read()
	if err != nil {
		return meta, nil, err
	}
	meta.BuildOldVersion = buildOld
	fmt.Fprintf(opts.Out, "Found old version in %s: %s\n", opts.BuildPath, buildOld)
	if buildOld != oldVersion {
		log.Warn("build file version differs from manifest", "manifest", oldVersion, "build", buildOld)
	}

	// 6. Build file buffer.
	if updated := replaceVersion(buildContent, buildOld, newVersion); updated != buildContent {
		writes = append(writes, pendingWrite{path: opts.BuildPath, content: updated})
	}

	for _, w := range writes {
		meta.UpdatedFiles = append(meta.UpdatedFiles, w.path)
	}
	return meta, writes, nil
}
