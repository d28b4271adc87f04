package weblink

import (
	"fmt"

	"github.com/pkg/browser"
)

// Opener hands a URL to something that can display it.
type Opener interface {
	Open(link string) error
}

// OpenerFunc adapts a function to Opener.
type OpenerFunc func(link string) error

func (f OpenerFunc) Open(link string) error { return f(link) }

// BrowserOpener opens links in the system's default browser.
type BrowserOpener struct{}

func (BrowserOpener) Open(link string) error {
	if err := browser.OpenURL(link); err != nil {
		return fmt.Errorf("weblink: open browser: %w", err)
	}
	return nil
}
