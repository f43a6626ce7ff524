// file: internal/tagcodec/writer_test.go
// version: 1.0.0
// guid: 9e0f1a2b-3c4d-5e6f-7a8b-9c0d1e2f3a4b

package tagcodec

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/jdfalk/audiobook-curator/internal/fileops"
	"github.com/jdfalk/audiobook-curator/internal/models"
)

func writeTempAudio(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to create test file: %v", err)
	}
	return path
}

func TestWriteUnsupportedFormat(t *testing.T) {
	path := writeTempAudio(t, "book.wav", "audio")
	called := false
	w := NewWriterWithFunc(false, func(string, map[string][]string) error {
		called = true
		return nil
	})
	err := w.Write(path, &models.BookMetadata{Title: "X"}, allChanged(FieldTitle))
	if err == nil {
		t.Fatal("expected unsupported format error")
	}
	if called {
		t.Error("no tag mutation may be attempted for an unsupported format")
	}
}

func TestWriteMissingFile(t *testing.T) {
	w := NewWriterWithFunc(false, func(string, map[string][]string) error { return nil })
	err := w.Write(filepath.Join(t.TempDir(), "absent.m4b"), &models.BookMetadata{Title: "X"}, allChanged(FieldTitle))
	if err == nil {
		t.Fatal("expected precondition failure for missing file")
	}
}

func TestWriteEmptyFile(t *testing.T) {
	path := writeTempAudio(t, "book.m4b", "")
	w := NewWriterWithFunc(false, func(string, map[string][]string) error { return nil })
	err := w.Write(path, &models.BookMetadata{Title: "X"}, allChanged(FieldTitle))
	if err == nil {
		t.Fatal("expected precondition failure for empty file")
	}
}

func TestWriteBackupBeforeWrite(t *testing.T) {
	path := writeTempAudio(t, "book.m4b", "original audio bytes")
	backupPath := fileops.BackupPath(path, fileops.DefaultConfig())

	w := NewWriterWithFunc(true, func(p string, props map[string][]string) error {
		// The backup must already exist when the write begins.
		if _, err := os.Stat(backupPath); err != nil {
			t.Errorf("backup missing at write time: %v", err)
		}
		return nil
	})
	if err := w.Write(path, &models.BookMetadata{Title: "X"}, allChanged(FieldTitle)); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	// Backup is cleaned up after a successful write by default.
	if _, err := os.Stat(backupPath); !os.IsNotExist(err) {
		t.Errorf("backup should be removed after success, stat err = %v", err)
	}
}

func TestWriteKeepBackup(t *testing.T) {
	path := writeTempAudio(t, "book.m4b", "original audio bytes")
	w := NewWriterWithFunc(true, func(string, map[string][]string) error { return nil })
	w.KeepBackup = true
	if err := w.Write(path, &models.BookMetadata{Title: "X"}, allChanged(FieldTitle)); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	backupPath := fileops.BackupPath(path, w.FileOps)
	if _, err := os.Stat(backupPath); err != nil {
		t.Errorf("KeepBackup should leave the copy in place: %v", err)
	}
}

func TestWriteFailureLeavesBackupAndRestores(t *testing.T) {
	const original = "original audio bytes"
	path := writeTempAudio(t, "book.m4b", original)

	w := NewWriterWithFunc(true, func(p string, props map[string][]string) error {
		// Simulated codec failure that corrupts the file mid-write.
		if err := os.WriteFile(p, []byte("corrupt"), 0o644); err != nil {
			t.Fatalf("failed to simulate corruption: %v", err)
		}
		return errors.New("simulated codec error")
	})

	err := w.Write(path, &models.BookMetadata{Title: "X"}, allChanged(FieldTitle))
	if err == nil {
		t.Fatal("expected write failure")
	}

	backupPath := fileops.BackupPath(path, w.FileOps)
	backup, readErr := os.ReadFile(backupPath)
	if readErr != nil {
		t.Fatalf("backup must survive a failed write: %v", readErr)
	}
	if string(backup) != original {
		t.Errorf("backup content = %q, want untouched original", backup)
	}

	restored, readErr := os.ReadFile(path)
	if readErr != nil {
		t.Fatalf("reading original: %v", readErr)
	}
	if string(restored) != original {
		t.Errorf("original not restored from backup: %q", restored)
	}
}

func TestWriteNoBackupRequested(t *testing.T) {
	path := writeTempAudio(t, "book.mp3", "audio")
	w := NewWriterWithFunc(false, func(string, map[string][]string) error { return nil })
	if err := w.Write(path, &models.BookMetadata{Title: "X"}, allChanged(FieldTitle)); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	backupPath := fileops.BackupPath(path, w.FileOps)
	if _, err := os.Stat(backupPath); !os.IsNotExist(err) {
		t.Errorf("no backup should exist when not requested")
	}
}

func TestWriteEmptyChangeMapIsNoop(t *testing.T) {
	path := writeTempAudio(t, "book.m4b", "audio")
	called := false
	w := NewWriterWithFunc(true, func(string, map[string][]string) error {
		called = true
		return nil
	})
	if err := w.Write(path, &models.BookMetadata{}, nil); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	if called {
		t.Error("empty change map must not touch the file")
	}
}
