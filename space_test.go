package kolor

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSpaces(t *testing.T) {
	want := []Space{SpaceRGB, SpaceRGBA, SpaceHSL, SpaceHSLA, SpaceHSV, SpaceHSVA, SpaceHWB, SpaceGray, SpaceCMYK}
	if diff := cmp.Diff(want, Spaces()); diff != "" {
		t.Errorf("Spaces() mismatch (-want +got):\n%s", diff)
	}
}

func TestSpaceSchema(t *testing.T) {
	tests := []struct {
		s        Space
		name     string
		css      string
		channels []string
		alpha    bool
	}{
		{SpaceRGB, "RGB", "rgb", []string{"red", "green", "blue"}, false},
		{SpaceRGBA, "RGBA", "rgba", []string{"red", "green", "blue", "alpha"}, true},
		{SpaceHSL, "HSL", "hsl", []string{"hue", "saturation", "lightness"}, false},
		{SpaceHSLA, "HSLA", "hsla", []string{"hue", "saturation", "lightness", "alpha"}, true},
		{SpaceHSV, "HSV", "hsv", []string{"hue", "saturation", "value"}, false},
		{SpaceHSVA, "HSVA", "hsva", []string{"hue", "saturation", "value", "alpha"}, true},
		{SpaceHWB, "HWB", "hwb", []string{"hue", "whiteness", "blackness", "alpha"}, true},
		{SpaceGray, "GRAY", "gray", []string{"shade", "alpha"}, true},
		{SpaceCMYK, "CMYK", "cmyk", []string{"cyan", "magenta", "yellow", "black", "alpha"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.s.String(); got != tt.name {
				t.Errorf("String() = %q, want %q", got, tt.name)
			}
			if got := tt.s.CSSName(); got != tt.css {
				t.Errorf("CSSName() = %q, want %q", got, tt.css)
			}
			var names []string
			for _, ch := range tt.s.Channels() {
				names = append(names, ch.Name)
			}
			if diff := cmp.Diff(tt.channels, names); diff != "" {
				t.Errorf("Channels() mismatch (-want +got):\n%s", diff)
			}
			if got := tt.s.Len(); got != len(tt.channels) {
				t.Errorf("Len() = %d, want %d", got, len(tt.channels))
			}
			if got := tt.s.HasAlpha(); got != tt.alpha {
				t.Errorf("HasAlpha() = %v, want %v", got, tt.alpha)
			}
		})
	}
}

func TestChannelIndex(t *testing.T) {
	tests := []struct {
		s    Space
		name string
		want int
	}{
		{SpaceRGB, "red", 0},
		{SpaceRGB, "g", 1},
		{SpaceRGB, "BLUE", 2},
		{SpaceHSLA, "a", 3},
		{SpaceHWB, "b", 2},
		{SpaceGray, "gray", 0},
		{SpaceGray, "s", 0},
		{SpaceCMYK, "k", 3},
		{SpaceCMYK, "key", 3},
	}
	for _, tt := range tests {
		got, ok := tt.s.ChannelIndex(tt.name)
		if !ok || got != tt.want {
			t.Errorf("%v.ChannelIndex(%q) = %d, %v, want %d", tt.s, tt.name, got, ok, tt.want)
		}
	}

	if _, ok := SpaceRGB.ChannelIndex("alpha"); ok {
		t.Error("RGB has an alpha channel")
	}
	if _, ok := SpaceInvalid.ChannelIndex("red"); ok {
		t.Error("invalid space has channels")
	}
}

func TestChannelsIsCopy(t *testing.T) {
	chs := SpaceRGB.Channels()
	chs[0].Name = "crimson"
	chs[0].Aliases[0] = "c"

	if got := SpaceRGB.Channels()[0]; got.Name != "red" || got.Aliases[0] != "r" {
		t.Errorf("registry modified through Channels(): %+v", got)
	}
}

func TestAlphaSiblings(t *testing.T) {
	tests := []struct {
		s, with, without Space
	}{
		{SpaceRGB, SpaceRGBA, SpaceRGB},
		{SpaceRGBA, SpaceRGBA, SpaceRGB},
		{SpaceHSL, SpaceHSLA, SpaceHSL},
		{SpaceHSVA, SpaceHSVA, SpaceHSV},
		{SpaceHWB, SpaceHWB, SpaceHWB},
		{SpaceGray, SpaceGray, SpaceGray},
	}
	for _, tt := range tests {
		if got := tt.s.WithAlpha(); got != tt.with {
			t.Errorf("%v.WithAlpha() = %v, want %v", tt.s, got, tt.with)
		}
		if got := tt.s.WithoutAlpha(); got != tt.without {
			t.Errorf("%v.WithoutAlpha() = %v, want %v", tt.s, got, tt.without)
		}
	}
}

func TestParseSpace(t *testing.T) {
	tests := []struct {
		in   string
		want Space
	}{
		{"rgb", SpaceRGB},
		{"RGBA", SpaceRGBA},
		{" hsl ", SpaceHSL},
		{"Gray", SpaceGray},
		{"device-cmyk", SpaceCMYK},
		{"cmyk", SpaceCMYK},
	}
	for _, tt := range tests {
		got, err := ParseSpace(tt.in)
		if err != nil || got != tt.want {
			t.Errorf("ParseSpace(%q) = %v, %v, want %v", tt.in, got, err, tt.want)
		}
	}

	if _, err := ParseSpace("lab"); !errors.Is(err, ErrUnknownSpace) {
		t.Errorf("ParseSpace(lab) error = %v, want ErrUnknownSpace", err)
	}
}

func TestInvalidSpace(t *testing.T) {
	s := Space(42)
	if s.Valid() || SpaceInvalid.Valid() {
		t.Error("invalid spaces report Valid")
	}
	if got := s.String(); got != "Space(42)" {
		t.Errorf("String() = %q", got)
	}
	if s.CSSName() != "" || s.Len() != 0 || s.Channels() != nil || s.HasAlpha() {
		t.Error("invalid space has schema data")
	}
}
