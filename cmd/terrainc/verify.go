package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/cocosip/go-terrain-codec/terrain"
)

// verifyRoundtrip decodes the container at outputPath into a uuid-named
// scratch file and byte-compares it against the original text at
// inputPath, matching the codec's lossless guarantee.
func verifyRoundtrip(inputPath, outputPath string) error {
	scratchPath := filepath.Join(os.TempDir(), fmt.Sprintf("terrainc-verify-%s.txt", uuid.NewString()))
	defer os.Remove(scratchPath)

	container, err := os.Open(outputPath)
	if err != nil {
		return err
	}
	defer container.Close()

	scratch, err := os.Create(scratchPath)
	if err != nil {
		return err
	}
	if err := terrain.Decode(container, scratch); err != nil {
		scratch.Close()
		return fmt.Errorf("scratch decode: %w", err)
	}
	if err := scratch.Close(); err != nil {
		return err
	}

	want, err := os.ReadFile(inputPath)
	if err != nil {
		return err
	}
	got, err := os.ReadFile(scratchPath)
	if err != nil {
		return err
	}
	if !bytes.Equal(want, got) {
		return fmt.Errorf("roundtrip mismatch: %s does not match %s", scratchPath, inputPath)
	}
	return nil
}
