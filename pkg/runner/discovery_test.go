package runner_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/yaklabco/goswap/pkg/runner"
)

func TestDiscover_ExtensionsAndHidden(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeTree(t, dir, map[string]string{
		"a.txt":          "",
		"b.tmpl":         "",
		"c.md":           "",
		".hidden.txt":    "",
		".hide/d.txt":    "",
		"sub/e.txt":      "",
		"sub/deep/f.TXT": "",
	})

	files, err := runner.Discover(context.Background(), runner.Options{
		WorkingDir: dir,
		Extensions: []string{".txt", ".tmpl"},
	})
	if err != nil {
		t.Fatalf("Discover error: %v", err)
	}

	want := []string{"a.txt", "b.tmpl", "sub/deep/f.TXT", "sub/e.txt"}
	if len(files) != len(want) {
		t.Fatalf("found %d files %v, want %d", len(files), files, len(want))
	}
	for i, rel := range want {
		if files[i] != filepath.Join(dir, filepath.FromSlash(rel)) {
			t.Errorf("files[%d] = %s, want %s", i, files[i], rel)
		}
	}
}

func TestDiscover_ExtensionsWithoutLeadingDot(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeTree(t, dir, map[string]string{
		"a.txt": "",
		"b.md":  "",
	})

	files, err := runner.Discover(context.Background(), runner.Options{
		WorkingDir: dir,
		Extensions: []string{"txt"},
	})
	if err != nil {
		t.Fatalf("Discover error: %v", err)
	}

	if len(files) != 1 || filepath.Base(files[0]) != "a.txt" {
		t.Errorf("files = %v, want only a.txt", files)
	}
}

func TestDiscover_ExcludeGlobs(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeTree(t, dir, map[string]string{
		"keep.txt":        "",
		"skip.bak.txt":    "",
		"vendor/lost.txt": "",
	})

	files, err := runner.Discover(context.Background(), runner.Options{
		WorkingDir:   dir,
		Extensions:   []string{".txt"},
		ExcludeGlobs: []string{"*.bak.txt", "vendor"},
	})
	if err != nil {
		t.Fatalf("Discover error: %v", err)
	}

	if len(files) != 1 || filepath.Base(files[0]) != "keep.txt" {
		t.Errorf("files = %v, want only keep.txt", files)
	}
}

func TestDiscover_ExplicitFileBypassesExtensionFilter(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	paths := writeTree(t, dir, map[string]string{"page.html": ""})

	files, err := runner.Discover(context.Background(), runner.Options{
		WorkingDir: dir,
		Paths:      []string{"page.html"},
		Extensions: []string{".txt"},
	})
	if err != nil {
		t.Fatalf("Discover error: %v", err)
	}

	if len(files) != 1 || files[0] != paths["page.html"] {
		t.Errorf("files = %v, want explicit file", files)
	}
}

func TestDiscover_MissingPath(t *testing.T) {
	t.Parallel()

	_, err := runner.Discover(context.Background(), runner.Options{
		WorkingDir: t.TempDir(),
		Paths:      []string{"absent.txt"},
	})
	if err == nil {
		t.Fatal("expected error for missing path")
	}
}

func TestDiscover_Deduplicates(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeTree(t, dir, map[string]string{"a.txt": ""})

	files, err := runner.Discover(context.Background(), runner.Options{
		WorkingDir: dir,
		Paths:      []string{"a.txt", "a.txt", "."},
		Extensions: []string{".txt"},
	})
	if err != nil {
		t.Fatalf("Discover error: %v", err)
	}
	if len(files) != 1 {
		t.Errorf("files = %v, want one entry", files)
	}
}
