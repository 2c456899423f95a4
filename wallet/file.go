package wallet

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/AlexZinkM/secp-wallet/internal/model"
)

// fileExt is the required extension of exported wallet files
const fileExt = ".cwt"

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// FileExistsError is an error when file already exists and is not empty
type FileExistsError struct {
	Message string
}

func (e *FileExistsError) Error() string {
	return e.Message
}

// IsFileExistsError checks if error is FileExistsError
func IsFileExistsError(err error) bool {
	var target *FileExistsError
	return errors.As(err, &target)
}

// SaveExport writes bundle to a .cwt file. The fernet key is never written.
func SaveExport(filePath string, bundle *model.ExportBundle) error {
	// Check file extension (.cwt)
	if filepath.Ext(filePath) != fileExt { // e.g. "wallet.cwt" → ".cwt"
		return fmt.Errorf("file must have %s extension", fileExt)
	}

	fileData, err := json.MarshalIndent(bundle, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal wallet file: %w", err)
	}

	// Add UTF-8 BOM for proper display in Windows
	fileData = append(append([]byte{}, utf8BOM...), fileData...)

	f, err := openExportFile(filePath)
	if err != nil {
		return err
	}

	if _, err := f.Write(fileData); err != nil {
		f.Close()
		return fmt.Errorf("failed to write file: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}
	return nil
}

// openExportFile creates filePath exclusively. An existing file is only
// reused when it is empty, and is opened without truncation so a file that
// gained content in the meantime is detected rather than overwritten.
func openExportFile(filePath string) (*os.File, error) {
	f, err := os.OpenFile(filePath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0600)
	if err == nil {
		return f, nil
	}
	if !errors.Is(err, os.ErrExist) {
		return nil, fmt.Errorf("failed to create file: %w", err)
	}

	// Refuse to overwrite a non-empty file
	f, err = os.OpenFile(filePath, os.O_WRONLY, 0600)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	fileInfo, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}
	if fileInfo.Size() > 0 {
		f.Close()
		return nil, &FileExistsError{Message: fmt.Sprintf("file %s is not empty", filePath)}
	}
	return f, nil
}

// LoadExport reads a .cwt file written by SaveExport
func LoadExport(filePath string) (*model.ExportBundle, error) {
	fileInfo, err := os.Stat(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New("file does not exist")
		}
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}

	if fileInfo.Size() == 0 {
		return nil, errors.New("file is empty")
	}

	fileData, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	// Skip UTF-8 BOM if present
	fileData = bytes.TrimPrefix(fileData, utf8BOM)

	var bundle model.ExportBundle
	if err := json.Unmarshal(fileData, &bundle); err != nil {
		return nil, fmt.Errorf("failed to unmarshal wallet file: %w", err)
	}
	return &bundle, nil
}

// ReadExportAddress reads only the address from a .cwt file (without decryption)
func ReadExportAddress(filePath string) (string, error) {
	bundle, err := LoadExport(filePath)
	if err != nil {
		return "", err
	}
	if bundle.Address == "" {
		return "", errors.New("wallet file has no address")
	}
	return bundle.Address, nil
}
