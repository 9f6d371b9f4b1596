package outfile

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Path derives output path from the input path: the extension of the file name is replaced
// with ext, a name without extension gets ext appended. When dir is set, the file is placed
// there instead of next to the input.
func Path(input, ext, dir string) string {
	out := strings.TrimSuffix(input, filepath.Ext(input)) + ext
	if dir == "" {
		return out
	}

	return filepath.Join(dir, filepath.Base(out))
}

// Write replaces the file at outPath with data. Content goes to a temporary file in the same
// directory first, so outPath either keeps its previous state or gets the complete data.
func Write(outPath string, data []byte) (err error) {
	dir := filepath.Dir(outPath)

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(outPath)+".*")
	if err != nil {
		return fmt.Errorf("could not create output file %s: %w", outPath, err)
	}

	defer func() {
		if err != nil {
			_ = os.Remove(tmp.Name())
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("could not write output file %s: %w", outPath, err)
	}

	if err = tmp.Close(); err != nil {
		return fmt.Errorf("could not write output file %s: %w", outPath, err)
	}

	if err = os.Chmod(tmp.Name(), 0o644); err != nil {
		return fmt.Errorf("could not write output file %s: %w", outPath, err)
	}

	if err = os.Rename(tmp.Name(), outPath); err != nil {
		return fmt.Errorf("could not create output file %s: %w", outPath, err)
	}

	return nil
}
