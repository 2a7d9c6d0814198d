package menufile

import (
	"errors"
	"testing"

	"github.com/ecosystem-ai/footer/internal/domain"
)

func TestMapperMapFooter(t *testing.T) {
	cfg, err := Parse([]byte(sampleMenu))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	footer, err := NewMapper("").MapFooter(cfg)
	if err != nil {
		t.Fatalf("MapFooter() error = %v", err)
	}

	if footer.Sections[0].Heading != "Newsletter" {
		t.Errorf("heading = %q, want Newsletter", footer.Sections[0].Heading)
	}
	if got := footer.Sections[0].Items[0]; got.Name != "Subscribe" || got.Href != "/subscribe" {
		t.Errorf("first item = %+v", got)
	}

	gh := footer.Socials[0].Style
	if gh != domain.DefaultIconStyle() {
		t.Errorf("social without overrides = %+v, want default style", gh)
	}
	mail := footer.Socials[1].Style
	if mail.Size != 32 || mail.FgColor != domain.DefaultIconFg {
		t.Errorf("social with size override = %+v", mail)
	}
}

func TestMapperDefaults(t *testing.T) {
	cfg := Config{
		Icon: &IconProps{FgColor: "#fff"},
		Sections: []SectionSpec{
			{Heading: " Legal ", Items: []ItemSpec{{Name: "Privacy policy", Href: " /privacy "}}},
		},
		Socials: []SocialSpec{{URL: "https://x.com/ecosystemAI"}},
	}

	footer, err := NewMapper("Acme").MapFooter(cfg)
	if err != nil {
		t.Fatalf("MapFooter() error = %v", err)
	}

	if footer.Brand != "Acme" {
		t.Errorf("Brand = %q, want fallback Acme", footer.Brand)
	}
	if footer.Layout != domain.DefaultLayout() {
		t.Errorf("Layout = %+v, want default", footer.Layout)
	}
	if footer.Sections[0].Heading != "Legal" || footer.Sections[0].Items[0].Href != "/privacy" {
		t.Errorf("values should be trimmed: %+v", footer.Sections[0])
	}
	if footer.Socials[0].Style.FgColor != "#fff" || footer.Socials[0].Style.Size != domain.DefaultIconSize {
		t.Errorf("file-level icon style not applied: %+v", footer.Socials[0].Style)
	}
}

func TestMapperRejects(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
	}{
		{
			name: "no sections",
			cfg:  Config{},
		},
		{
			name: "duplicate headings",
			cfg: Config{Sections: []SectionSpec{
				{Heading: "Blog", Items: []ItemSpec{{Name: "Blog", Href: "/blog"}}},
				{Heading: "Blog", Items: []ItemSpec{{Name: "Authors", Href: "/authors"}}},
			}},
		},
		{
			name: "bad social",
			cfg: Config{
				Sections: []SectionSpec{{Heading: "Blog", Items: []ItemSpec{{Name: "Blog", Href: "/blog"}}}},
				Socials:  []SocialSpec{{URL: "ftp://files.example.com"}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewMapper("").MapFooter(tt.cfg); err == nil {
				t.Error("MapFooter() should fail")
			}
		})
	}
}

func TestMapperWrapsValidationError(t *testing.T) {
	cfg := Config{Sections: []SectionSpec{{Heading: "", Items: nil}}}
	_, err := NewMapper("").MapFooter(cfg)
	if !errors.Is(err, domain.ErrInvalidFooter) {
		t.Errorf("MapFooter() error = %v, want wrapped ErrInvalidFooter", err)
	}
}
