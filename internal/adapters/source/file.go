package source

import (
	"context"
	"fmt"
	"os"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/okian/concursos/internal/domain/model"
)

// FileSource reads contests from a YAML (or JSON) fixture shaped like the
// backend payload.
type FileSource struct {
	path string
	opts options
}

// NewFileSource creates a source backed by the file at path.
func NewFileSource(path string, opts ...Option) *FileSource {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &FileSource{path: path, opts: o}
}

// Fetch reads and decodes the fixture file on every call.
func (s *FileSource) Fetch(ctx context.Context) ([]model.Contest, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTransport, err)
	}
	if _, err := os.Stat(s.path); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTransport, err)
	}

	k := koanf.New(".")
	if err := k.Load(file.Provider(s.path), yaml.Parser()); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}

	var p payload
	if err := k.UnmarshalWithConf("", &p, koanf.UnmarshalConf{Tag: "json"}); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	return toModels(p.Contests, s.opts.location), nil
}
