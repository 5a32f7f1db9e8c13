package install

import (
	"crypto"
	"fmt"
	"io"
	"os"
	"path/filepath"

	// Register SHA-512 for checksum calculation.
	_ "crypto/sha512"
)

// ChecksumFunction is used to verify copied artifacts.
const ChecksumFunction crypto.Hash = crypto.SHA512

// FileChecksum returns the ChecksumFunction digest of the file at path.
func FileChecksum(path string) ([]byte, error) {
	if !ChecksumFunction.Available() {
		return nil, fmt.Errorf("checksum calculation not possible: %w", errHashUnavailable)
	}

	file, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, err
	}

	defer func() {
		_ = file.Close()
	}()

	hasher := ChecksumFunction.New()
	if _, err = io.Copy(hasher, file); err != nil {
		return nil, fmt.Errorf("calculate checksum: %w", err)
	}

	return hasher.Sum(nil), nil
}
