// Package render turns a footer snapshot into HTML.
//
// Rendering is a pure function of the snapshot and the instant passed in:
// the same footer rendered at the same date always produces the same bytes.
package render

import (
	"bytes"
	"fmt"
	"io"
	"time"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/ecosystem-ai/footer/internal/domain"
)

// Kind names a rendered artifact. It doubles as the cache namespace.
type Kind string

const (
	KindFragment Kind = "fragment"
	KindPage     Kind = "page"
)

const (
	gridClass      = "grid grid-cols-%d md:grid-cols-%d text-base gap-y-8 gap-x-2"
	headingClass   = "pb-2 font-mono font-bold text-primary"
	listClass      = "flex flex-col gap-2"
	itemLinkClass  = "text-sm leading-tight hover:text-primary/80"
	bottomRowClass = "flex items-center justify-between md:col-span-%d"
	copyrightClass = "font-sans text-sm"
	socialsClass   = "flex ml-auto"
)

// Renderer is the footer menu renderer.
type Renderer struct {
	links  LinkRenderer
	icons  IconRenderer
	minify bool
}

type Option func(*Renderer)

// WithLinks replaces the navigation primitive.
func WithLinks(l LinkRenderer) Option {
	return func(r *Renderer) { r.links = l }
}

// WithIcons replaces the icon primitive.
func WithIcons(i IconRenderer) Option {
	return func(r *Renderer) { r.icons = i }
}

// WithMinify enables HTML minification of rendered bytes.
func WithMinify(enabled bool) Option {
	return func(r *Renderer) { r.minify = enabled }
}

func New(opts ...Option) *Renderer {
	r := &Renderer{
		links: Anchor{},
		icons: SocialIcon{},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Variant names the bytes Bytes produces for kind. Minified and plain output
// differ, so caches and validators key on the variant instead of the kind.
func (r *Renderer) Variant(kind Kind) string {
	if r.minify {
		return string(kind) + "-min"
	}
	return string(kind)
}

// Footer builds the footer node tree: one grid cell per section followed by
// a full-width row with the copyright line and the social icons.
func (r *Renderer) Footer(f *domain.Footer, now time.Time) g.Node {
	return h.Div(h.Class("w-full"),
		h.Div(h.Class(fmt.Sprintf(gridClass, f.Layout.NarrowColumns, f.Layout.WideColumns)),
			g.Group(g.Map(f.Sections, r.section)),
			h.Div(h.Class(fmt.Sprintf(bottomRowClass, f.Layout.WideColumns)),
				h.Div(h.Class(copyrightClass), g.Text(f.Copyright(now))),
				h.Div(h.Class(socialsClass),
					g.Group(g.Map(f.Socials, func(s domain.SocialLink) g.Node {
						return r.icons.Icon(s.URL, s.Style)
					})),
				),
			),
		),
	)
}

func (r *Renderer) section(s domain.MenuSection) g.Node {
	return h.Div(
		h.P(h.Class(headingClass), g.Text(s.Heading)),
		h.Ul(h.Class(listClass),
			g.Group(g.Map(s.Items, func(item domain.MenuItem) g.Node {
				return h.Li(r.links.Link(item.Href, itemLinkClass, g.Text(item.Name)))
			})),
		),
	)
}

// Page wraps the footer in a minimal standalone HTML document.
func (r *Renderer) Page(f *domain.Footer, now time.Time) g.Node {
	return h.Doctype(
		h.HTML(h.Lang("en"),
			h.Head(
				h.Meta(h.Charset("utf-8")),
				h.Meta(h.Name("viewport"), h.Content("width=device-width, initial-scale=1")),
				h.TitleEl(g.Text(f.Brand)),
			),
			h.Body(
				h.Main(h.Class("min-h-screen")),
				g.El("footer", h.Class("px-6 py-8"), r.Footer(f, now)),
			),
		),
	)
}

// Render writes the requested artifact to w.
func (r *Renderer) Render(w io.Writer, kind Kind, f *domain.Footer, now time.Time) error {
	b, err := r.Bytes(kind, f, now)
	if err != nil {
		return err
	}
	_, err = w.Write(b)
	return err
}

// Bytes renders the requested artifact, minified when enabled.
func (r *Renderer) Bytes(kind Kind, f *domain.Footer, now time.Time) ([]byte, error) {
	var node g.Node
	switch kind {
	case KindFragment:
		node = r.Footer(f, now)
	case KindPage:
		node = r.Page(f, now)
	default:
		return nil, fmt.Errorf("unknown render kind %q", kind)
	}

	var buf bytes.Buffer
	if err := node.Render(&buf); err != nil {
		return nil, fmt.Errorf("failed to render %s: %w", kind, err)
	}

	if !r.minify {
		return buf.Bytes(), nil
	}
	return minifyHTML(buf.Bytes())
}
