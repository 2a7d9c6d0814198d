package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"strings"
)

// Footer is the complete configuration table of the site footer.
//
// A Footer is an immutable snapshot: once built (from the built-in table,
// a menu file, or Redis) it is never mutated. A reload builds a new Footer
// and swaps it in the catalog.
type Footer struct {
	// ─────────────────────────────
	// Identity
	// ─────────────────────────────

	// Brand is shown in the copyright line.
	// Example: ecosystem.Ai
	Brand string `json:"brand"`

	// ─────────────────────────────
	// Content
	// ─────────────────────────────

	// Sections are rendered left to right, one grid cell each.
	Sections []MenuSection `json:"sections"`

	// Socials are rendered as icon-only links after the copyright line.
	Socials []SocialLink `json:"socials"`

	// ─────────────────────────────
	// Presentation
	// ─────────────────────────────

	Layout Layout `json:"layout"`
}

// MenuSection is a named group of navigation links displayed together.
// Heading is unique among the sections of a Footer.
type MenuSection struct {
	Heading string     `json:"heading"`
	Items   []MenuItem `json:"items"`
}

// MenuItem is a single navigable label/target pair.
// Name is unique within its section.
type MenuItem struct {
	Name string `json:"name"`
	Href string `json:"href"` // relative path or absolute URL
}

// SocialLink is an outbound contact or social-platform URL rendered as an icon.
type SocialLink struct {
	URL   string    `json:"url"` // absolute, mailto: allowed
	Style IconStyle `json:"style"`
}

// IconStyle is the visual treatment of a social icon.
type IconStyle struct {
	Size    int    `json:"size"` // px, width == height
	BgColor string `json:"bg_color"`
	FgColor string `json:"fg_color"`
	Class   string `json:"class,omitempty"`
}

// Layout controls the grid column count on narrow and wide viewports.
type Layout struct {
	NarrowColumns int `json:"narrow_columns"`
	WideColumns   int `json:"wide_columns"`
}

// IsInternal reports whether href targets the site itself and can be
// resolved by client-side navigation.
func IsInternal(href string) bool {
	if strings.HasPrefix(href, "//") {
		return false
	}
	return strings.HasPrefix(href, "/") || strings.HasPrefix(href, "#")
}

// ItemCount returns the total number of menu items across all sections.
func (f *Footer) ItemCount() int {
	n := 0
	for _, s := range f.Sections {
		n += len(s.Items)
	}
	return n
}

// Fingerprint returns a stable digest of the table.
// Two footers with the same content share a fingerprint, which makes it
// usable as a cache key for rendered output.
func (f *Footer) Fingerprint() string {
	// Marshal of plain structs and slices is deterministic.
	data, _ := json.Marshal(f)
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])[:16]
}
