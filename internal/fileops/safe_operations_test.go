// file: internal/fileops/safe_operations_test.go
// version: 1.0.0
// guid: 1a2b3c4d-5e6f-7a8b-9c0d-1e2f3a4b5c6e

package fileops

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSafeCopy(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src.m4b")
	dst := filepath.Join(dir, "sub", "dst.m4b")
	content := []byte("audio payload")
	if err := os.WriteFile(src, content, 0o600); err != nil {
		t.Fatalf("setup: %v", err)
	}

	if err := SafeCopy(src, dst, DefaultConfig()); err != nil {
		t.Fatalf("SafeCopy failed: %v", err)
	}

	got, err := os.ReadFile(dst)
	if err != nil {
		t.Fatalf("reading dst: %v", err)
	}
	if string(got) != string(content) {
		t.Errorf("dst content = %q", got)
	}

	info, err := os.Stat(dst)
	if err != nil {
		t.Fatalf("stat dst: %v", err)
	}
	if info.Mode().Perm() != 0o600 {
		t.Errorf("mode = %v, want source mode preserved", info.Mode().Perm())
	}
}

func TestSafeCopyMissingSource(t *testing.T) {
	dir := t.TempDir()
	err := SafeCopy(filepath.Join(dir, "absent"), filepath.Join(dir, "dst"), DefaultConfig())
	if err == nil {
		t.Fatal("expected error for missing source")
	}
}

func TestBackupPath(t *testing.T) {
	if got := BackupPath("/lib/a.m4b", DefaultConfig()); got != "/lib/a.m4b.backup" {
		t.Errorf("BackupPath = %q", got)
	}
	if got := BackupPath("/lib/a.m4b", OperationConfig{}); got != "/lib/a.m4b.backup" {
		t.Errorf("empty suffix should default, got %q", got)
	}
	if got := BackupPath("/lib/a.m4b", OperationConfig{BackupSuffix: ".bak"}); got != "/lib/a.m4b.bak" {
		t.Errorf("BackupPath = %q", got)
	}
}

func TestChecksumAndVerify(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "f")
	if err := os.WriteFile(path, []byte("stable bytes"), 0o644); err != nil {
		t.Fatalf("setup: %v", err)
	}

	sum, err := Checksum(path)
	if err != nil {
		t.Fatalf("Checksum failed: %v", err)
	}
	ok, err := VerifyFileIntegrity(path, sum)
	if err != nil || !ok {
		t.Errorf("VerifyFileIntegrity = (%v, %v)", ok, err)
	}
	ok, err = VerifyFileIntegrity(path, "deadbeef")
	if err != nil || ok {
		t.Errorf("wrong hash verified: (%v, %v)", ok, err)
	}
}
