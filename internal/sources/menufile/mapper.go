package menufile

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ecosystem-ai/footer/internal/domain"
)

// Mapper converts a menu file into a validated footer snapshot.
type Mapper struct {
	brand string // fallback when the file sets none
}

// NewMapper creates a mapper. brand is used when the file omits one.
func NewMapper(brand string) *Mapper {
	return &Mapper{brand: brand}
}

// MapFooter builds a footer from cfg. Missing layout and icon fields fall
// back to the built-in defaults.
func (m *Mapper) MapFooter(cfg Config) (*domain.Footer, error) {
	if len(cfg.Sections) == 0 {
		return nil, errors.New("no sections found in menu file")
	}

	brand := strings.TrimSpace(cfg.Brand)
	if brand == "" {
		brand = m.brand
	}
	if brand == "" {
		brand = domain.DefaultBrand
	}

	layout := domain.DefaultLayout()
	if cfg.Layout != nil {
		if cfg.Layout.NarrowColumns != 0 {
			layout.NarrowColumns = cfg.Layout.NarrowColumns
		}
		if cfg.Layout.WideColumns != 0 {
			layout.WideColumns = cfg.Layout.WideColumns
		}
	}

	base := domain.DefaultIconStyle()
	if cfg.Icon != nil {
		base = mergeStyle(base, *cfg.Icon)
	}

	footer := &domain.Footer{
		Brand:    brand,
		Layout:   layout,
		Sections: make([]domain.MenuSection, 0, len(cfg.Sections)),
		Socials:  make([]domain.SocialLink, 0, len(cfg.Socials)),
	}

	for _, s := range cfg.Sections {
		section := domain.MenuSection{
			Heading: strings.TrimSpace(s.Heading),
			Items:   make([]domain.MenuItem, 0, len(s.Items)),
		}
		for _, it := range s.Items {
			section.Items = append(section.Items, domain.MenuItem{
				Name: strings.TrimSpace(it.Name),
				Href: strings.TrimSpace(it.Href),
			})
		}
		footer.Sections = append(footer.Sections, section)
	}

	for _, s := range cfg.Socials {
		footer.Socials = append(footer.Socials, domain.SocialLink{
			URL:   strings.TrimSpace(s.URL),
			Style: mergeStyle(base, s.IconProps),
		})
	}

	if err := footer.Validate(); err != nil {
		return nil, fmt.Errorf("menu file rejected: %w", err)
	}

	return footer, nil
}

func mergeStyle(base domain.IconStyle, p IconProps) domain.IconStyle {
	if p.Size != 0 {
		base.Size = p.Size
	}
	if p.BgColor != "" {
		base.BgColor = p.BgColor
	}
	if p.FgColor != "" {
		base.FgColor = p.FgColor
	}
	if p.Class != "" {
		base.Class = p.Class
	}
	return base
}
