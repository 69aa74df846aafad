package catalog

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"quizbank/internal/question"
)

// Encode renders records as a YAML sequence with two-space indentation.
func Encode(records []question.Record) ([]byte, error) {
	if records == nil {
		records = []question.Record{}
	}
	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)
	if err := encoder.Encode(records); err != nil {
		return nil, fmt.Errorf("encode catalog: %w", err)
	}
	if err := encoder.Close(); err != nil {
		return nil, fmt.Errorf("encode catalog: %w", err)
	}
	return buf.Bytes(), nil
}

// Save replaces the catalog at path with records using a temp file and an
// atomic rename, so a failed write never truncates the existing catalog.
// When path is a symlink the file it points to is replaced and the link is
// kept. An existing file's permissions carry over to the new content.
func Save(path string, records []question.Record) error {
	if path == "" {
		return fmt.Errorf("catalog path is required")
	}
	payload, err := Encode(records)
	if err != nil {
		return &WriteError{Path: path, Err: err}
	}
	target, perm, err := resolveTarget(path)
	if err != nil {
		return &WriteError{Path: path, Err: err}
	}
	dir := filepath.Dir(target)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return &WriteError{Path: path, Err: err}
	}
	tmpPath := filepath.Join(dir, "."+filepath.Base(target)+"."+uuid.NewString()+".tmp")
	file, err := os.OpenFile(tmpPath, os.O_CREATE|os.O_WRONLY|os.O_EXCL, 0o644)
	if err != nil {
		return &WriteError{Path: path, Err: err}
	}
	var chmodErr error
	if perm != 0 {
		chmodErr = file.Chmod(perm)
	}
	_, writeErr := file.Write(payload)
	syncErr := file.Sync()
	closeErr := file.Close()
	for _, err := range []error{chmodErr, writeErr, syncErr, closeErr} {
		if err != nil {
			_ = os.Remove(tmpPath)
			return &WriteError{Path: path, Err: err}
		}
	}
	if err := os.Rename(tmpPath, target); err != nil {
		_ = os.Remove(tmpPath)
		return &WriteError{Path: path, Err: err}
	}
	return nil
}
