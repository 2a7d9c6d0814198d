package menufile

// Config is the root structure of the menu file.
//
//	brand: ecosystem.Ai
//	layout: {narrow_columns: 2, wide_columns: 6}
//	icon: {size: 40, bg_color: background, fg_color: "#9B9B9B80"}
//	sections:
//	  - heading: About
//	    items:
//	      - {name: About, href: /about}
//	socials:
//	  - url: https://github.ecosystem.ai/
type Config struct {
	Brand    string        `yaml:"brand,omitempty"`
	Layout   *LayoutProps  `yaml:"layout,omitempty"`
	Icon     *IconProps    `yaml:"icon,omitempty"` // default for every social
	Sections []SectionSpec `yaml:"sections"`
	Socials  []SocialSpec  `yaml:"socials"`
}

type LayoutProps struct {
	NarrowColumns int `yaml:"narrow_columns,omitempty"`
	WideColumns   int `yaml:"wide_columns,omitempty"`
}

// IconProps holds optional icon style fields; zero values inherit.
type IconProps struct {
	Size    int    `yaml:"size,omitempty"`
	BgColor string `yaml:"bg_color,omitempty"`
	FgColor string `yaml:"fg_color,omitempty"`
	Class   string `yaml:"class,omitempty"`
}

type SectionSpec struct {
	Heading string     `yaml:"heading"`
	Items   []ItemSpec `yaml:"items"`
}

type ItemSpec struct {
	Name string `yaml:"name"`
	Href string `yaml:"href"`
}

type SocialSpec struct {
	URL       string `yaml:"url"`
	IconProps `yaml:",inline"`
}
