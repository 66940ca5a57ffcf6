package seed

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

const filePermission = 0o600

// WriteYAML encodes contests as a backend payload in YAML.
func WriteYAML(w io.Writer, contests []Contest) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(Payload{Contests: contests}); err != nil {
		return fmt.Errorf("encode contests: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("flush contests: %w", err)
	}
	return nil
}

// WriteFile writes contests to path as YAML, replacing any existing file.
func WriteFile(path string, contests []Contest) (err error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, filePermission)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", path, cerr)
		}
	}()
	return WriteYAML(f, contests)
}
