// file: internal/tagcodec/writer.go
// version: 1.2.0
// guid: 6b7c8d9e-0f1a-2b3c-4d5e-6f7a8b9c0d1e

package tagcodec

import (
	"fmt"
	"log"
	"os"

	taglib "go.senan.xyz/taglib"

	"github.com/jdfalk/audiobook-curator/internal/fileops"
	"github.com/jdfalk/audiobook-curator/internal/models"
)

// WriteFunc applies a property map to a file in place. The default is the
// native tag library; tests substitute fakes to simulate codec failures.
type WriteFunc func(path string, props map[string][]string) error

func writeProperties(path string, props map[string][]string) error {
	return taglib.WriteTags(path, props, 0)
}

// Writer applies a change map to one physical audio file. Fields absent
// from the change map are never touched.
type Writer struct {
	// Backup makes a byte-for-byte sibling copy before any mutation.
	Backup bool
	// KeepBackup leaves the copy in place after a successful write.
	KeepBackup bool
	// FileOps configures the backup copy behavior.
	FileOps fileops.OperationConfig

	write WriteFunc
}

// NewWriter returns a writer backed by the native tag library.
func NewWriter(backup bool) *Writer {
	return &Writer{
		Backup:  backup,
		FileOps: fileops.DefaultConfig(),
		write:   writeProperties,
	}
}

// NewWriterWithFunc returns a writer with a substitute write function.
func NewWriterWithFunc(backup bool, write WriteFunc) *Writer {
	w := NewWriter(backup)
	w.write = write
	return w
}

// Write serializes the changed fields into the file's native tag
// structure. Preconditions are hard failures with no partial mutation;
// with Backup set, the copy strictly precedes any write, and a mid-write
// failure restores the original from it.
func (w *Writer) Write(path string, meta *models.BookMetadata, changes map[string]models.MetadataChange) error {
	family := FamilyFor(path)
	if family == FamilyUnsupported {
		return fmt.Errorf("unsupported format: %s", path)
	}

	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("file precondition failed: %w", err)
	}
	if info.Size() == 0 {
		return fmt.Errorf("file precondition failed: %s is empty", path)
	}

	props := BuildProperties(family, meta, changes)
	if len(props) == 0 {
		return nil
	}

	backupPath := ""
	if w.Backup {
		backupPath = fileops.BackupPath(path, w.FileOps)
		// Never write without the requested backup.
		if err := fileops.SafeCopy(path, backupPath, w.FileOps); err != nil {
			return fmt.Errorf("backup failed, write aborted: %w", err)
		}
	}

	if err := w.write(path, props); err != nil {
		if backupPath != "" {
			if restoreErr := fileops.SafeCopy(backupPath, path, w.FileOps); restoreErr != nil {
				return fmt.Errorf("tag write failed and restore failed: write=%w restore=%v", err, restoreErr)
			}
			return fmt.Errorf("tag write failed (original restored): %w", err)
		}
		return fmt.Errorf("tag write failed: %w", err)
	}

	if backupPath != "" && !w.KeepBackup {
		if err := os.Remove(backupPath); err != nil {
			log.Printf("[WARN] tagcodec: could not remove backup %s: %v", backupPath, err)
		}
	}
	return nil
}
