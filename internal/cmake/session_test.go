package cmake

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSession_Configure_NamespacesBuildDirs(t *testing.T) {
	t.Parallel()
	tool := NewWithWriter(t.TempDir(), &bytes.Buffer{})
	tool.SetExecutable(writeStubTool(t, `echo "$@"`))

	buildRoot := filepath.Join(t.TempDir(), "cmake-config-check")
	session := NewSession(tool, SessionOptions{
		BuildRoot: buildRoot,
		DefineVar: "TRDP_CONFIG",
		Generator: "Ninja",
	})

	out, err := session.Configure(context.Background(), "POSIX_X86")
	if err != nil {
		t.Fatalf("Configure() error: %v", err)
	}

	wantDir := filepath.Join(buildRoot, "POSIX_X86")
	if !strings.Contains(out, wantDir) {
		t.Errorf("command line %q missing per-config build dir %q", out, wantDir)
	}
	if !strings.Contains(out, "-DTRDP_CONFIG=POSIX_X86") {
		t.Errorf("command line %q missing define argument", out)
	}
	if _, statErr := os.Stat(wantDir); statErr != nil {
		t.Errorf("per-config build dir not created: %v", statErr)
	}
}

func TestSession_Configure_IndependentDirsPerConfig(t *testing.T) {
	t.Parallel()
	tool := NewWithWriter(t.TempDir(), &bytes.Buffer{})
	tool.SetExecutable(writeStubTool(t, `exit 0`))

	buildRoot := t.TempDir()
	session := NewSession(tool, SessionOptions{BuildRoot: buildRoot, DefineVar: "CFG"})

	for _, name := range []string{"a", "b"} {
		if _, err := session.Configure(context.Background(), name); err != nil {
			t.Fatalf("Configure(%q) error: %v", name, err)
		}
	}

	for _, name := range []string{"a", "b"} {
		if _, err := os.Stat(filepath.Join(buildRoot, name)); err != nil {
			t.Errorf("build dir for %q missing: %v", name, err)
		}
	}
}
