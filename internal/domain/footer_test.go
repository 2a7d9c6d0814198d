package domain

import (
	"errors"
	"testing"
	"time"
)

func TestDefaultFooterIsValid(t *testing.T) {
	f := DefaultFooter("")
	if err := f.Validate(); err != nil {
		t.Fatalf("DefaultFooter().Validate() error = %v", err)
	}
	if f.Brand != DefaultBrand {
		t.Errorf("Brand = %q, want %q", f.Brand, DefaultBrand)
	}
	if len(f.Sections) != 6 {
		t.Errorf("len(Sections) = %d, want 6", len(f.Sections))
	}
	if len(f.Socials) != 6 {
		t.Errorf("len(Socials) = %d, want 6", len(f.Socials))
	}
	if got := f.ItemCount(); got != 14 {
		t.Errorf("ItemCount() = %d, want 14", got)
	}
}

func TestDefaultFooterOrder(t *testing.T) {
	want := []string{"About", "Resources", "Documentation", "Blog", "Newsletter", "Legal"}
	f := DefaultFooter("")
	for i, heading := range want {
		if f.Sections[i].Heading != heading {
			t.Errorf("Sections[%d].Heading = %q, want %q", i, f.Sections[i].Heading, heading)
		}
	}
	if f.Sections[4].Items[0].Name != "Subscribe" || f.Sections[4].Items[0].Href != "/subscribe" {
		t.Errorf("Newsletter first item = %+v, want Subscribe -> /subscribe", f.Sections[4].Items[0])
	}
	if last := f.Socials[len(f.Socials)-1].URL; last != "mailto:amy@ecosystem.ai" {
		t.Errorf("last social = %q, want mailto:amy@ecosystem.ai", last)
	}
}

func TestCopyright(t *testing.T) {
	f := DefaultFooter("")
	tests := []struct {
		name string
		now  time.Time
		want string
	}{
		{
			name: "fixed year",
			now:  time.Date(2031, time.March, 4, 12, 0, 0, 0, time.UTC),
			want: "© 2031 ecosystem.Ai",
		},
		{
			name: "last second of the year",
			now:  time.Date(2030, time.December, 31, 23, 59, 59, 0, time.UTC),
			want: "© 2030 ecosystem.Ai",
		},
		{
			name: "first second of the next year",
			now:  time.Date(2031, time.January, 1, 0, 0, 0, 0, time.UTC),
			want: "© 2031 ecosystem.Ai",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := f.Copyright(tt.now); got != tt.want {
				t.Errorf("Copyright() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestIsInternal(t *testing.T) {
	tests := []struct {
		href string
		want bool
	}{
		{"/about", true},
		{"/about#contact-us", true},
		{"#top", true},
		{"//cdn.example.com/x", false},
		{"http://demo.ecosystem.ai/", false},
		{"mailto:amy@ecosystem.ai", false},
	}

	for _, tt := range tests {
		t.Run(tt.href, func(t *testing.T) {
			if got := IsInternal(tt.href); got != tt.want {
				t.Errorf("IsInternal(%q) = %v, want %v", tt.href, got, tt.want)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(f *Footer)
	}{
		{
			name:   "duplicate heading",
			mutate: func(f *Footer) { f.Sections[1].Heading = f.Sections[0].Heading },
		},
		{
			name:   "empty heading",
			mutate: func(f *Footer) { f.Sections[2].Heading = " " },
		},
		{
			name: "duplicate item name",
			mutate: func(f *Footer) {
				f.Sections[0].Items[1].Name = f.Sections[0].Items[0].Name
			},
		},
		{
			name:   "empty href",
			mutate: func(f *Footer) { f.Sections[0].Items[0].Href = "" },
		},
		{
			name:   "relative href without leading slash",
			mutate: func(f *Footer) { f.Sections[0].Items[0].Href = "about" },
		},
		{
			name:   "social without scheme",
			mutate: func(f *Footer) { f.Socials[0].URL = "github.ecosystem.ai" },
		},
		{
			name:   "mailto without address",
			mutate: func(f *Footer) { f.Socials[5].URL = "mailto:" },
		},
		{
			name:   "zero icon size",
			mutate: func(f *Footer) { f.Socials[0].Style.Size = 0 },
		},
		{
			name:   "zero columns",
			mutate: func(f *Footer) { f.Layout.WideColumns = 0 },
		},
		{
			name:   "empty brand",
			mutate: func(f *Footer) { f.Brand = "" },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := DefaultFooter("")
			tt.mutate(f)
			err := f.Validate()
			if err == nil {
				t.Fatal("Validate() error = nil, want error")
			}
			if !errors.Is(err, ErrInvalidFooter) {
				t.Errorf("Validate() error = %v, want wrapped ErrInvalidFooter", err)
			}
		})
	}
}

func TestSameItemNameAcrossSectionsIsValid(t *testing.T) {
	// "About" and "Blog" are both a heading and an item name in the built-in table.
	f := DefaultFooter("")
	f.Sections[1].Items[0].Name = "About"
	if err := f.Validate(); err != nil {
		t.Errorf("Validate() error = %v, want nil", err)
	}
}

func TestFingerprint(t *testing.T) {
	a := DefaultFooter("")
	b := DefaultFooter("")
	if a.Fingerprint() != b.Fingerprint() {
		t.Error("equal footers should share a fingerprint")
	}

	b.Sections[0].Items[0].Href = "/about-us"
	if a.Fingerprint() == b.Fingerprint() {
		t.Error("different footers should not share a fingerprint")
	}
	if a.Sections[0].Items[0].Href != "/about" {
		t.Error("DefaultFooter() must not share item slices between calls")
	}
}

func TestDefaultSocialURLsIsACopy(t *testing.T) {
	urls := DefaultSocialURLs()
	urls[0] = "https://evil.example.com/"

	if got := DefaultSocialURLs()[0]; got != "https://github.ecosystem.ai/" {
		t.Errorf("DefaultSocialURLs()[0] = %q after caller mutation", got)
	}
	if got := DefaultFooter("").Socials[0].URL; got != "https://github.ecosystem.ai/" {
		t.Errorf("DefaultFooter().Socials[0].URL = %q after caller mutation", got)
	}
}
