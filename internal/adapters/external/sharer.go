package external

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"

	"weatherlookup.app/internal/ports"
	"weatherlookup.app/pkg/errors"
)

// WriterSharer writes shared text to a writer, e.g. stdout for the CLI
type WriterSharer struct {
	w     io.Writer
	mutex sync.Mutex
}

func NewWriterSharer(w io.Writer) *WriterSharer {
	return &WriterSharer{w: w}
}

func (s *WriterSharer) Share(ctx context.Context, title, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	if _, err := fmt.Fprintf(s.w, "%s\n%s\n", title, text); err != nil {
		return errors.NewExternalAPIError("failed to write shared text", err)
	}
	return nil
}

// FileSharer appends shared text to a file
type FileSharer struct {
	path  string
	mutex sync.Mutex
}

func NewFileSharer(path string) *FileSharer {
	return &FileSharer{path: path}
}

func (s *FileSharer) Share(ctx context.Context, title, text string) error {
	if s.path == "" {
		return errors.NewConfigurationError("share file path cannot be empty", nil)
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	file, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return errors.NewExternalAPIError("failed to open share file", err)
	}
	defer file.Close()

	if _, err := fmt.Fprintf(file, "%s\t%s\n", title, text); err != nil {
		return errors.NewExternalAPIError("failed to append shared text", err)
	}
	return nil
}

// FallbackSharer tries the primary sharer and falls back to the secondary on failure
type FallbackSharer struct {
	primary  ports.Sharer
	fallback ports.Sharer
	logger   ports.Logger
}

func NewFallbackSharer(primary, fallback ports.Sharer, logger ports.Logger) *FallbackSharer {
	return &FallbackSharer{primary: primary, fallback: fallback, logger: logger}
}

func (s *FallbackSharer) Share(ctx context.Context, title, text string) error {
	err := s.primary.Share(ctx, title, text)
	if err == nil {
		return nil
	}

	s.logger.Warn("Primary share target failed, using fallback", ports.F("error", err.Error()))
	return s.fallback.Share(ctx, title, text)
}
