package service

import (
	"fmt"

	"github.com/atotto/clipboard"
)

type clipboardService struct {
	write func(string) error
}

// NewClipboardService returns a ClipboardService writing to the system
// clipboard.
func NewClipboardService() ClipboardService {
	return &clipboardService{write: clipboard.WriteAll}
}

// Copy writes text verbatim, empty text included.
func (s *clipboardService) Copy(text string) error {
	if err := s.write(text); err != nil {
		return fmt.Errorf("%w: %w", ErrClipboardWrite, err)
	}
	return nil
}
