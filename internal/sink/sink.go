// Package sink fans generated text out to the console and any number of files.
//
// File output is staged next to its destination and only replaces it on Commit,
// so a run that fails leaves existing files untouched.
package sink

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

type staged struct {
	path string
	tmp  *os.File
}

// Sink writes every byte to all of its destinations.
type Sink struct {
	w     io.Writer
	files []staged
	paths []string
}

// Open returns a Sink writing to console (if non-nil) and to each path. If any
// staging file cannot be created, the ones already created are removed and the
// error is returned.
func Open(console io.Writer, paths ...string) (*Sink, error) {
	s := &Sink{}
	var writers []io.Writer
	if console != nil {
		writers = append(writers, console)
	}

	for _, p := range paths {
		if p == "" {
			continue
		}
		dir := filepath.Dir(p)
		if err := os.MkdirAll(dir, 0755); err != nil {
			s.Close()
			return nil, fmt.Errorf("creating directory for %s: %w", p, err)
		}
		f, err := os.CreateTemp(dir, "."+filepath.Base(p)+".*.tmp")
		if err != nil {
			s.Close()
			return nil, fmt.Errorf("opening output %s: %w", p, err)
		}
		s.files = append(s.files, staged{path: p, tmp: f})
		if err := f.Chmod(0644); err != nil {
			s.Close()
			return nil, fmt.Errorf("opening output %s: %w", p, err)
		}
		s.paths = append(s.paths, p)
		writers = append(writers, f)
	}

	s.w = io.MultiWriter(writers...)
	return s, nil
}

// Write implements io.Writer.
func (s *Sink) Write(p []byte) (int, error) {
	return s.w.Write(p)
}

// Paths returns the files this sink duplicates output to.
func (s *Sink) Paths() []string {
	return s.paths
}

// Commit moves every staged file over its destination.
func (s *Sink) Commit() error {
	var errs []error
	for _, f := range s.files {
		if err := f.tmp.Close(); err != nil {
			errs = append(errs, err)
			os.Remove(f.tmp.Name())
			continue
		}
		if err := os.Rename(f.tmp.Name(), f.path); err != nil {
			errs = append(errs, fmt.Errorf("replacing %s: %w", f.path, err))
			os.Remove(f.tmp.Name())
		}
	}
	s.files = nil
	return errors.Join(errs...)
}

// Close discards anything not committed. It is safe to call more than once and
// after Commit.
func (s *Sink) Close() error {
	var errs []error
	for _, f := range s.files {
		if err := f.tmp.Close(); err != nil {
			errs = append(errs, err)
		}
		if err := os.Remove(f.tmp.Name()); err != nil {
			errs = append(errs, err)
		}
	}
	s.files = nil
	return errors.Join(errs...)
}
