// SPDX-License-Identifier: Apache-2.0
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sync"

	"github.com/hashicorp/go-hclog"
	"github.com/pelletier/go-toml/v2"

	wererrors "github.com/wer-build/wer/pkg/errors"
)

// Store reads the configuration document once and hands out the same
// instance on every later call. Construct one in the entry point and pass it down.
type Store struct {
	path   string
	logger hclog.Logger

	once sync.Once
	doc  *Document
	err  error
}

// NewStore creates a store for the document at path. A nil logger discards output.
func NewStore(path string, logger hclog.Logger) *Store {
	if path == "" {
		path = DefaultPath
	}
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &Store{path: path, logger: logger}
}

// Path returns the file the store reads from.
func (s *Store) Path() string {
	return s.path
}

// Load returns the document, reading and decoding it on the first call only.
// The outcome of that first call, success or failure, is what every later call sees.
func (s *Store) Load() (*Document, error) {
	s.once.Do(func() {
		s.doc, s.err = s.read()
	})
	return s.doc, s.err
}

func (s *Store) read() (*Document, error) {
	s.logger.Debug("📄 Reading configuration", "path", s.path)

	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", wererrors.ErrConfigNotFound, s.path)
		}
		return nil, fmt.Errorf("failed to read %s: %w", s.path, err)
	}

	doc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", s.path, err)
	}

	s.logger.Debug("✅ Configuration loaded", "path", s.path)
	return doc, nil
}

// Parse decodes a TOML document.
func Parse(data []byte) (*Document, error) {
	var doc Document
	if err := toml.Unmarshal(data, &doc); err != nil {
		var decodeErr *toml.DecodeError
		if errors.As(err, &decodeErr) {
			row, col := decodeErr.Position()
			return nil, fmt.Errorf("%w: line %d, column %d: %s",
				wererrors.ErrConfigMalformed, row, col, decodeErr.Error())
		}
		return nil, fmt.Errorf("%w: %v", wererrors.ErrConfigMalformed, err)
	}
	return &doc, nil
}
