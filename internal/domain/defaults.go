package domain

import "slices"

const (
	// DefaultBrand is the brand shown in the copyright line.
	DefaultBrand = "ecosystem.Ai"

	// DefaultIconSize is the social icon edge length in px.
	DefaultIconSize = 40
	// DefaultIconBg is the social icon background fill.
	DefaultIconBg = "background"
	// DefaultIconFg is the social icon glyph fill.
	DefaultIconFg = "#9B9B9B80"
	// DefaultIconClass is applied to every social icon.
	DefaultIconClass = "absolute inset-0 w-full h-full transform scale-100 transition-transform opacity-100 hover:scale-90"

	DefaultNarrowColumns = 2
	DefaultWideColumns   = 6
)

// DefaultIconStyle returns the icon treatment shared by all built-in socials.
func DefaultIconStyle() IconStyle {
	return IconStyle{
		Size:    DefaultIconSize,
		BgColor: DefaultIconBg,
		FgColor: DefaultIconFg,
		Class:   DefaultIconClass,
	}
}

// DefaultLayout returns the 2/6 column grid.
func DefaultLayout() Layout {
	return Layout{
		NarrowColumns: DefaultNarrowColumns,
		WideColumns:   DefaultWideColumns,
	}
}

var defaultSocialURLs = []string{
	"https://github.ecosystem.ai/",
	"https://discord.ecosystem.ai/",
	"https://linkedin.ecosystem.ai/",
	"https://x.com/ecosystemAI",
	"https://www.youtube.com/@ecosystemai6786",
	"mailto:amy@ecosystem.ai",
}

// DefaultSocialURLs returns the built-in social targets in display order.
// The returned slice is a copy.
func DefaultSocialURLs() []string {
	return slices.Clone(defaultSocialURLs)
}

// DefaultFooter builds the built-in footer table.
// An empty brand falls back to DefaultBrand.
func DefaultFooter(brand string) *Footer {
	if brand == "" {
		brand = DefaultBrand
	}

	socials := make([]SocialLink, 0, len(defaultSocialURLs))
	for _, u := range defaultSocialURLs {
		socials = append(socials, SocialLink{URL: u, Style: DefaultIconStyle()})
	}

	return &Footer{
		Brand: brand,
		Sections: []MenuSection{
			{
				Heading: "About",
				Items: []MenuItem{
					{Name: "About", Href: "/about"},
					{Name: "Contact Us", Href: "/about#contact-us"},
				},
			},
			{
				Heading: "Resources",
				Items: []MenuItem{
					{Name: "Changelog", Href: "/changelog"},
					{Name: "Roadmap", Href: "/blog/2025-07-03_2026_roadmap"},
					{Name: "Demo", Href: "http://demo.ecosystem.ai/"},
				},
			},
			{
				Heading: "Documentation",
				Items: []MenuItem{
					{Name: "Get Started", Href: "/docs"},
					{Name: "Local Install", Href: "/docs/local"},
				},
			},
			{
				Heading: "Blog",
				Items: []MenuItem{
					{Name: "Blog", Href: "/blog"},
					{Name: "Blog Authors", Href: "/authors"},
				},
			},
			{
				Heading: "Newsletter",
				Items: []MenuItem{
					{Name: "Subscribe", Href: "/subscribe"},
					{Name: "Unsubscribe", Href: "/unsubscribe"},
				},
			},
			{
				Heading: "Legal",
				Items: []MenuItem{
					{Name: "Terms of services", Href: "/tos"},
					{Name: "Privacy policy", Href: "/privacy"},
					{Name: "Cookie policy", Href: "/cookie"},
				},
			},
		},
		Socials: socials,
		Layout:  DefaultLayout(),
	}
}
