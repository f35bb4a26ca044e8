package check

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

// populateConfigRoot creates a config directory with the given regular
// files plus one subdirectory that must be ignored.
func populateConfigRoot(t *testing.T, names ...string) string {
	t.Helper()
	dir := t.TempDir()
	for _, name := range names {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("# config\n"), 0o644); err != nil {
			t.Fatalf("write config file: %v", err)
		}
	}
	if err := os.Mkdir(filepath.Join(dir, "subdir"), 0o755); err != nil {
		t.Fatalf("create subdir: %v", err)
	}
	return dir
}

func TestListConfigs_SortedFiles(t *testing.T) {
	t.Parallel()
	dir := populateConfigRoot(t, "POSIX_X86", "LINUX_ARM", "VXWORKS_PPC")

	got, err := ListConfigs(dir, nil)
	if err != nil {
		t.Fatalf("ListConfigs() error: %v", err)
	}

	want := []string{"LINUX_ARM", "POSIX_X86", "VXWORKS_PPC"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ListConfigs() = %v, want %v", got, want)
	}
}

func TestListConfigs_SkipsDirectories(t *testing.T) {
	t.Parallel()
	dir := populateConfigRoot(t, "a")

	got, err := ListConfigs(dir, nil)
	if err != nil {
		t.Fatalf("ListConfigs() error: %v", err)
	}
	for _, name := range got {
		if name == "subdir" {
			t.Error("ListConfigs() included a directory entry")
		}
	}
}

func TestListConfigs_IncludesDotfiles(t *testing.T) {
	t.Parallel()
	dir := populateConfigRoot(t, ".hidden", "visible")

	got, err := ListConfigs(dir, nil)
	if err != nil {
		t.Fatalf("ListConfigs() error: %v", err)
	}
	want := []string{".hidden", "visible"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ListConfigs() = %v, want %v", got, want)
	}
}

func TestListConfigs_ExplicitSelectionBypassesDirectory(t *testing.T) {
	t.Parallel()
	// Config root contains only "x"; the explicit selection still wins and
	// keeps caller order.
	dir := populateConfigRoot(t, "x")

	got, err := ListConfigs(dir, []string{"y", "x"})
	if err != nil {
		t.Fatalf("ListConfigs() error: %v", err)
	}
	want := []string{"y", "x"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ListConfigs() = %v, want %v", got, want)
	}
}

func TestListConfigs_ExplicitSelectionIgnoresMissingRoot(t *testing.T) {
	t.Parallel()
	missing := filepath.Join(t.TempDir(), "does-not-exist")

	got, err := ListConfigs(missing, []string{"a"})
	if err != nil {
		t.Fatalf("ListConfigs() error: %v", err)
	}
	if !reflect.DeepEqual(got, []string{"a"}) {
		t.Errorf("ListConfigs() = %v, want [a]", got)
	}
}

func TestListConfigs_MissingRoot(t *testing.T) {
	t.Parallel()
	missing := filepath.Join(t.TempDir(), "does-not-exist")

	_, err := ListConfigs(missing, nil)
	if err == nil {
		t.Fatal("expected error for missing config root, got nil")
	}
}

func TestListConfigs_EmptyRoot(t *testing.T) {
	t.Parallel()
	got, err := ListConfigs(t.TempDir(), nil)
	if err != nil {
		t.Fatalf("ListConfigs() error: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("ListConfigs() = %v, want empty", got)
	}
}
