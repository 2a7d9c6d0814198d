package render

import (
	"strings"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/ecosystem-ai/footer/internal/domain"
)

// LinkRenderer is the navigation primitive used for menu items.
type LinkRenderer interface {
	Link(href, class string, children ...g.Node) g.Node
}

// Anchor renders plain anchors. The href is always emitted verbatim.
// Site-internal targets are tagged data-link="internal" so a client router
// can take over navigation without a full page load.
type Anchor struct{}

func (Anchor) Link(href, class string, children ...g.Node) g.Node {
	return h.A(
		h.Href(href),
		g.If(class != "", h.Class(class)),
		g.If(domain.IsInternal(href), h.Data("link", "internal")),
		g.If(isWeb(href), h.Rel("noopener")),
		g.Group(children),
	)
}

func isWeb(href string) bool {
	return strings.HasPrefix(href, "http://") || strings.HasPrefix(href, "https://")
}
