// Package syncver keeps the version string of a project's manifest and build
// configuration in sync.
//
// It provides functionalities for:
//   - Locating a version field in a file through a literal marker (Field).
//   - Validating versions against the semver.org grammar (ValidateVersion).
//   - Prompting for a new version, or taking it from the caller, and rewriting
//     the manifest (version = "x.y.z") and the build file (VERSION = x.y.z).
//
// Both files are prepared in memory before either is written, and each write
// goes through a temporary file renamed into place.
//
// Usage Example:
//
//	import (
//	    "context"
//	    "log"
//
//	    syncver "github.com/bcomnes/syncver/pkg"
//	)
//
//	func main() {
//	    meta, err := syncver.Run(context.Background(), syncver.Options{NewVersion: "1.2.4"})
//	    if err != nil {
//	        log.Fatalf("version sync failed: %v", err)
//	    }
//	    log.Printf("%s -> %s", meta.BuildOldVersion, meta.NewVersion)
//	}
package syncver
