package integration

import (
	"bytes"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

// buildCLI compiles the syncver binary from the repository root.
func buildCLI(t *testing.T) string {
	t.Helper()
	if _, err := exec.LookPath("go"); err != nil {
		t.Skip("go toolchain is not available")
	}
	binPath := filepath.Join(t.TempDir(), "syncver")
	// This test resides in cmd/integration; the main package is two levels up.
	buildCmd := exec.Command("go", "build", "-o", binPath, "../../")
	if out, err := buildCmd.CombinedOutput(); err != nil {
		t.Fatalf("failed to build CLI binary: %v; build output: %s", err, out)
	}
	return binPath
}

func writeProject(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	files := map[string]string{
		"Cargo.toml": "[package]\nname = \"radio\"\nversion = \"0.9.1\"\n",
		"Makefile":   "VERSION = 0.9.1\n\nall:\n\tcargo build\n",
	}
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
			t.Fatalf("failed to write %s: %v", name, err)
		}
	}
	return dir
}

func TestCLIBinaryIntegration(t *testing.T) {
	binPath := buildCLI(t)
	dir := writeProject(t)

	// Answer the prompt through a pipe.
	cliCmd := exec.Command(binPath)
	cliCmd.Dir = dir
	cliCmd.Stdin = strings.NewReader("1.0.0\n")
	var cliStdout, cliStderr bytes.Buffer
	cliCmd.Stdout = &cliStdout
	cliCmd.Stderr = &cliStderr
	if err := cliCmd.Run(); err != nil {
		t.Fatalf("CLI command failed: %v; stdout: %s; stderr: %s", err, cliStdout.String(), cliStderr.String())
	}

	if !strings.Contains(cliStdout.String(), "Version has been changed from '0.9.1' -> '1.0.0'") {
		t.Errorf("unexpected output:\n%s", cliStdout.String())
	}

	manifest, err := os.ReadFile(filepath.Join(dir, "Cargo.toml"))
	if err != nil {
		t.Fatalf("failed to read manifest: %v", err)
	}
	if !strings.Contains(string(manifest), `version = "1.0.0"`) {
		t.Errorf("manifest not updated, got:\n%s", manifest)
	}
	makefile, err := os.ReadFile(filepath.Join(dir, "Makefile"))
	if err != nil {
		t.Fatalf("failed to read makefile: %v", err)
	}
	if !strings.HasPrefix(string(makefile), "VERSION = 1.0.0\n") {
		t.Errorf("makefile not updated, got:\n%s", makefile)
	}
}

// TestCLIBinaryInvalidVersion checks the failure exit status and that neither
// file is touched.
func TestCLIBinaryInvalidVersion(t *testing.T) {
	binPath := buildCLI(t)
	dir := writeProject(t)
	before, err := os.ReadFile(filepath.Join(dir, "Cargo.toml"))
	if err != nil {
		t.Fatal(err)
	}

	cliCmd := exec.Command(binPath, "1.0")
	cliCmd.Dir = dir
	out, err := cliCmd.CombinedOutput()
	if err == nil {
		t.Fatalf("expected non-zero exit, got output:\n%s", out)
	}
	if !strings.Contains(string(out), "The version: '1.0' is not a valid SemVer version.") {
		t.Errorf("unexpected output:\n%s", out)
	}

	after, err := os.ReadFile(filepath.Join(dir, "Cargo.toml"))
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(before, after) {
		t.Errorf("manifest changed after invalid version:\n%s", after)
	}
}
