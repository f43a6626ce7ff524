// file: internal/fileops/safe_operations.go
// version: 2.0.0
// guid: 8f7e6d5c-4b3a-2918-7f6e-5d4c3b2a1908

// Package fileops provides safe copy and backup primitives used by the tag
// writer. A backup is always byte-for-byte, synced to disk, and completes
// before any mutation of the original begins.
package fileops

import (
	"crypto/sha256"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// OperationConfig configures safe file operation behavior
type OperationConfig struct {
	// VerifyChecksums enables SHA256 verification after copies
	VerifyChecksums bool
	// BackupSuffix is appended to the original path for sibling backups
	BackupSuffix string
}

// DefaultConfig returns the default safe operation configuration
func DefaultConfig() OperationConfig {
	return OperationConfig{
		VerifyChecksums: true,
		BackupSuffix:    ".backup",
	}
}

// BackupPath returns the sibling backup path for a file.
func BackupPath(path string, config OperationConfig) string {
	suffix := config.BackupSuffix
	if suffix == "" {
		suffix = ".backup"
	}
	return path + suffix
}

// SafeCopy copies src to dst, syncing data to disk and preserving file
// mode. With VerifyChecksums set, the destination is re-hashed and compared
// against the source before returning.
func SafeCopy(src, dst string, config OperationConfig) error {
	sourceFile, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("failed to open source: %w", err)
	}
	defer sourceFile.Close()

	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return fmt.Errorf("failed to create destination directory: %w", err)
	}

	destFile, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("failed to create destination: %w", err)
	}
	defer destFile.Close()

	if _, err := io.Copy(destFile, sourceFile); err != nil {
		return fmt.Errorf("failed to copy data: %w", err)
	}
	if err := destFile.Sync(); err != nil {
		return fmt.Errorf("failed to sync destination: %w", err)
	}

	sourceInfo, err := os.Stat(src)
	if err != nil {
		return fmt.Errorf("failed to stat source: %w", err)
	}
	if err := os.Chmod(dst, sourceInfo.Mode()); err != nil {
		return fmt.Errorf("failed to preserve mode: %w", err)
	}

	if config.VerifyChecksums {
		srcHash, err := Checksum(src)
		if err != nil {
			return fmt.Errorf("failed to checksum source: %w", err)
		}
		dstHash, err := Checksum(dst)
		if err != nil {
			return fmt.Errorf("failed to checksum destination: %w", err)
		}
		if srcHash != dstHash {
			return fmt.Errorf("checksum mismatch copying %s", src)
		}
	}
	return nil
}

// Checksum computes the SHA256 hash of a file.
func Checksum(path string) (string, error) {
	file, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer file.Close()

	hash := sha256.New()
	if _, err := io.Copy(hash, file); err != nil {
		return "", err
	}
	return fmt.Sprintf("%x", hash.Sum(nil)), nil
}

// VerifyFileIntegrity checks if a file matches its expected checksum
func VerifyFileIntegrity(path, expectedHash string) (bool, error) {
	actualHash, err := Checksum(path)
	if err != nil {
		return false, err
	}
	return actualHash == expectedHash, nil
}
