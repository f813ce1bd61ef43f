package hook

import (
	"errors"
	"log/slog"

	"github.com/go-vgo/robotgo"
)

// ErrNoTitle is returned when the foreground window title is unavailable.
var ErrNoTitle = errors.New("hook: no foreground window title")

// TitleSource looks up the foreground window title, substituting a fixed
// placeholder when the lookup fails.
type TitleSource struct {
	lookup      func() (string, error)
	placeholder string
}

// NewTitleSource creates a TitleSource backed by robotgo.
func NewTitleSource(placeholder string) *TitleSource {
	return &TitleSource{lookup: foregroundTitle, placeholder: placeholder}
}

// Current returns the foreground window title, or the placeholder.
func (s *TitleSource) Current() string {
	title, err := s.lookup()
	if err != nil {
		slog.Debug("[hook] window title lookup failed", "error", err)
		return s.placeholder
	}
	return title
}

func foregroundTitle() (string, error) {
	title := robotgo.GetTitle()
	if title == "" {
		return "", ErrNoTitle
	}
	return title, nil
}
