package profile

import (
	"reflect"
	"testing"
)

func TestGetKnownProfiles(t *testing.T) {
	p := Get("chrome-extension")
	if !reflect.DeepEqual(p.Sizes, []int{16, 32, 48, 128}) {
		t.Errorf("sizes: %v", p.Sizes)
	}
	if p.RefSize != 24 {
		t.Errorf("ref size: %d", p.RefSize)
	}
	if p.Background.R != 59 || p.Background.G != 130 || p.Background.B != 246 || p.Background.A != 255 {
		t.Errorf("background: %v", p.Background)
	}

	if got := Get("favicon"); !reflect.DeepEqual(got.Formats, []string{"png", "ico"}) {
		t.Errorf("favicon formats: %v", got.Formats)
	}
}

func TestGetUnknownFallsBack(t *testing.T) {
	p := Get("does-not-exist")
	if p.Name != "does-not-exist" {
		t.Errorf("name not preserved: %q", p.Name)
	}
	if !reflect.DeepEqual(p.Sizes, []int{16, 32, 48, 128}) {
		t.Errorf("fallback sizes: %v", p.Sizes)
	}
}

func TestEffectiveSizes(t *testing.T) {
	p := Get("chrome-extension")

	if got := p.EffectiveSizes(nil); !reflect.DeepEqual(got, []int{16, 32, 48, 128}) {
		t.Errorf("default: %v", got)
	}

	got := p.EffectiveSizes([]int{64, 64, 0, -3, 16})
	if !reflect.DeepEqual(got, []int{64, 16}) {
		t.Errorf("override: %v", got)
	}
}
