// Package cache manages the on-disk directory where fitted-model predictions
// are cached between runs.
package cache

import (
	"io/fs"
	"os"

	"github.com/YuminosukeSato/goheamy/pkg/errors"
	"github.com/YuminosukeSato/goheamy/pkg/log"
)

// DefaultDir is the cache location relative to the working directory.
const DefaultDir = ".cache/heamy"

// Flush removes dir and everything below it. A missing directory is not an
// error.
func Flush(dir string) error {
	if dir == "" {
		return errors.NewValidationError("cache_dir", "must not be empty", dir)
	}
	if _, err := os.Stat(dir); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return errors.Wrapf(err, "stat cache dir %s", dir)
	}
	if err := os.RemoveAll(dir); err != nil {
		return errors.Wrapf(err, "remove cache dir %s", dir)
	}
	return nil
}

// Flusher flushes a fixed directory and logs what it did.
type Flusher struct {
	dir    string
	logger log.Logger
}

// NewFlusher creates a Flusher for dir. A nil logger uses the global one.
func NewFlusher(dir string, logger log.Logger) *Flusher {
	if logger == nil {
		logger = log.GetLogger()
	}
	return &Flusher{
		dir:    dir,
		logger: logger.With(log.ComponentKey, "cache", log.PathKey, dir),
	}
}

// Dir returns the flushed directory.
func (f *Flusher) Dir() string { return f.dir }

// Flush removes the directory.
func (f *Flusher) Flush() error {
	if err := Flush(f.dir); err != nil {
		f.logger.Error("cache flush failed", err, log.OperationKey, log.OperationFlush)
		return err
	}
	f.logger.Info("cache flushed", log.OperationKey, log.OperationFlush)
	return nil
}
