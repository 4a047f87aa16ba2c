package pipeline

import (
	"testing"
)

func TestNewAdText(t *testing.T) {
	text := NewAdText(map[string]string{
		"model":            "Corolla",
		"manufacture_year": "2015",
		"price":            "2,500,000",
		"price_type":       "Negotiable",
		"condition":        "Used",
		"location":         "Colombo",
		"phone":            "0771234567",
		"site_name":        "Example.lk",
		"unknown_key":      "ignored",
	})

	want := AdText{
		Model:     "Corolla",
		Year:      "2015",
		Price:     "2,500,000",
		PriceType: "Negotiable",
		Condition: "Used",
		Location:  "Colombo",
		Phone:     "0771234567",
		SiteName:  "Example.lk",
	}
	if text != want {
		t.Errorf("got %+v, want %+v", text, want)
	}
}

func TestAdText_SiteDefault(t *testing.T) {
	if got := (AdText{}).Site(); got != "Ganudenu.store" {
		t.Errorf("Site() = %q, want the store brand default", got)
	}
	if got := (AdText{SiteName: "Example.lk"}).Site(); got != "Example.lk" {
		t.Errorf("Site() = %q, want Example.lk", got)
	}
}

func TestDefaults(t *testing.T) {
	c := DefaultCollageInput()
	if c.Canvas.Width != 1080 || c.Canvas.Height != 1080 || c.Quality != 90 {
		t.Errorf("collage defaults = %+v", c)
	}

	p := DefaultPostInput()
	if p.Quality != 90 || p.Background != DefaultGradient() {
		t.Errorf("post defaults = %+v", p)
	}

	g := DefaultGradient()
	if g.Start.R != 21 || g.End.B != 18 {
		t.Errorf("gradient defaults = %+v", g)
	}
}
