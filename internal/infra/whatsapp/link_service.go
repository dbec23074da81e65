// Package whatsapp builds the shareable wa.me deep links.
package whatsapp

import (
	"strings"

	"vitrina/config"
	"vitrina/internal/domain/service"
)

type linkService struct {
	number   string
	greeting string
}

// NewLinkService creates a link service from the WhatsApp configuration.
func NewLinkService(cfg *config.Config) service.LinkService {
	return &linkService{
		number:   cfg.WhatsApp.Number,
		greeting: cfg.WhatsApp.Greeting,
	}
}

// BuildLink formats "https://wa.me/<number>?text=<payload>" where the
// payload is "<greeting> <businessName> [<slug>]". The payload is
// percent-encoded exactly as encodeURIComponent would, so links rendered
// here match the ones client-side code produces byte for byte.
func (s *linkService) BuildLink(businessName, slug string) string {
	text := s.greeting + " " + businessName + " [" + slug + "]"

	return "https://wa.me/" + s.number + "?text=" + EncodeURIComponent(text)
}

const upperhex = "0123456789ABCDEF"

// EncodeURIComponent percent-encodes s with the same character table as
// JavaScript's encodeURIComponent: A-Z a-z 0-9 - _ . ! ~ * ' ( ) stay
// literal, every other byte of the UTF-8 encoding becomes %XX. Neither
// url.QueryEscape (space to "+") nor url.PathEscape (keeps more
// sub-delimiters) produces this table.
func EncodeURIComponent(s string) string {
	var out strings.Builder
	out.Grow(len(s))

	for i := 0; i < len(s); i++ {
		c := s[i]
		if isURIComponentSafe(c) {
			out.WriteByte(c)

			continue
		}
		out.WriteByte('%')
		out.WriteByte(upperhex[c>>4])
		out.WriteByte(upperhex[c&0x0f])
	}

	return out.String()
}

func isURIComponentSafe(c byte) bool {
	switch {
	case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		return true
	}
	switch c {
	case '-', '_', '.', '!', '~', '*', '\'', '(', ')':
		return true
	}

	return false
}
