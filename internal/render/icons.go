package render

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/ecosystem-ai/footer/internal/domain"
)

// IconRenderer is the icon primitive used for social links.
type IconRenderer interface {
	Icon(rawURL string, style domain.IconStyle) g.Node
}

// Network identifies the platform a social URL points at.
type Network struct {
	Key   string // css modifier and aria label
	Glyph string // short mark drawn inside the circle
}

var (
	networkEmail    = Network{Key: "email", Glyph: "@"}
	networkGitHub   = Network{Key: "github", Glyph: "GH"}
	networkDiscord  = Network{Key: "discord", Glyph: "DC"}
	networkLinkedIn = Network{Key: "linkedin", Glyph: "in"}
	networkX        = Network{Key: "x", Glyph: "X"}
	networkYouTube  = Network{Key: "youtube", Glyph: "YT"}
	networkGeneric  = Network{Key: "sharethis", Glyph: "↗"}
)

// hostNetworks is matched in order against the host labels.
var hostNetworks = []struct {
	label   string
	network Network
}{
	{"github", networkGitHub},
	{"discord", networkDiscord},
	{"linkedin", networkLinkedIn},
	{"youtube", networkYouTube},
	{"twitter", networkX},
	{"x", networkX},
}

// DetectNetwork infers the network from a social URL.
func DetectNetwork(rawURL string) Network {
	u, err := url.Parse(rawURL)
	if err != nil {
		return networkGeneric
	}
	if u.Scheme == "mailto" {
		return networkEmail
	}

	labels := strings.Split(strings.ToLower(u.Hostname()), ".")
	for _, candidate := range hostNetworks {
		for _, label := range labels {
			if label == candidate.label {
				return candidate.network
			}
		}
	}
	return networkGeneric
}

// SocialIcon renders a round icon link: a circle in the background color
// with the network glyph in the foreground color.
type SocialIcon struct{}

func (SocialIcon) Icon(rawURL string, style domain.IconStyle) g.Node {
	n := DetectNetwork(rawURL)
	size := strconv.Itoa(style.Size)

	class := "social-icon social-icon--" + n.Key
	if style.Class != "" {
		class += " " + style.Class
	}

	return h.A(
		h.Href(rawURL),
		h.Class(class),
		h.Aria("label", n.Key),
		h.Style(fmt.Sprintf("height:%spx;width:%spx", size, size)),
		g.El("svg",
			g.Attr("viewBox", "0 0 64 64"),
			g.Attr("width", size),
			g.Attr("height", size),
			g.Attr("aria-hidden", "true"),
			g.El("circle",
				g.Attr("cx", "32"),
				g.Attr("cy", "32"),
				g.Attr("r", "32"),
				g.Attr("fill", style.BgColor),
			),
			g.El("text",
				g.Attr("x", "32"),
				g.Attr("y", "32"),
				g.Attr("text-anchor", "middle"),
				g.Attr("dominant-baseline", "central"),
				g.Attr("font-family", "sans-serif"),
				g.Attr("font-size", "22"),
				g.Attr("fill", style.FgColor),
				g.Text(n.Glyph),
			),
		),
	)
}
