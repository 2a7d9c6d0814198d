package domain

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// ErrInvalidFooter wraps every validation failure.
var ErrInvalidFooter = errors.New("invalid footer")

// Validate checks the table invariants: unique non-empty headings, unique
// non-empty item names within a section, parseable hrefs, absolute social
// URLs and a usable layout.
func (f *Footer) Validate() error {
	if f == nil {
		return fmt.Errorf("%w: nil footer", ErrInvalidFooter)
	}
	if strings.TrimSpace(f.Brand) == "" {
		return fmt.Errorf("%w: empty brand", ErrInvalidFooter)
	}
	if f.Layout.NarrowColumns < 1 || f.Layout.WideColumns < 1 {
		return fmt.Errorf("%w: columns must be >= 1, got %d/%d",
			ErrInvalidFooter, f.Layout.NarrowColumns, f.Layout.WideColumns)
	}

	headings := make(map[string]bool, len(f.Sections))
	for i, section := range f.Sections {
		if strings.TrimSpace(section.Heading) == "" {
			return fmt.Errorf("%w: section %d has an empty heading", ErrInvalidFooter, i)
		}
		if headings[section.Heading] {
			return fmt.Errorf("%w: duplicate heading %q", ErrInvalidFooter, section.Heading)
		}
		headings[section.Heading] = true

		names := make(map[string]bool, len(section.Items))
		for _, item := range section.Items {
			if strings.TrimSpace(item.Name) == "" {
				return fmt.Errorf("%w: empty item name in section %q", ErrInvalidFooter, section.Heading)
			}
			if names[item.Name] {
				return fmt.Errorf("%w: duplicate item %q in section %q",
					ErrInvalidFooter, item.Name, section.Heading)
			}
			names[item.Name] = true

			if err := validateHref(item.Href); err != nil {
				return fmt.Errorf("%w: item %q in section %q: %v",
					ErrInvalidFooter, item.Name, section.Heading, err)
			}
		}
	}

	for _, social := range f.Socials {
		if err := validateSocialURL(social.URL); err != nil {
			return fmt.Errorf("%w: social %q: %v", ErrInvalidFooter, social.URL, err)
		}
		if social.Style.Size < 1 {
			return fmt.Errorf("%w: social %q: icon size must be >= 1", ErrInvalidFooter, social.URL)
		}
	}

	return nil
}

func validateHref(href string) error {
	if strings.TrimSpace(href) == "" {
		return errors.New("empty href")
	}
	u, err := url.Parse(href)
	if err != nil {
		return fmt.Errorf("unparseable href: %w", err)
	}
	if !IsInternal(href) && u.Scheme == "" {
		return fmt.Errorf("href %q is neither a site path nor an absolute URL", href)
	}
	return nil
}

func validateSocialURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("unparseable url: %w", err)
	}
	switch u.Scheme {
	case "mailto":
		if u.Opaque == "" {
			return errors.New("mailto without address")
		}
	case "http", "https":
		if u.Host == "" {
			return errors.New("missing host")
		}
	default:
		return fmt.Errorf("unsupported scheme %q", u.Scheme)
	}
	return nil
}
