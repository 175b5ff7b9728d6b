// Package kolor parses, converts and manipulates colors.
//
// # Overview
//
// A [Color] is an immutable value tagged with one of nine color spaces: RGB,
// RGBA, HSL, HSLA, HSV, HSVA, HWB, GRAY and CMYK. Every space is described
// by a schema of channels, each with a range, a wrap or clamp rule, a default
// and the textual datatypes it accepts. Colors convert between any two spaces
// along the shortest chain of registered converters.
//
// # Quick Start
//
//	import "github.com/gogpu/kolor"
//
//	c, err := kolor.Parse("hsl(120, 100%, 25%)")
//	if err != nil {
//	    return err
//	}
//	fmt.Println(c.Hex())                  // #008000
//	fmt.Println(c.RGBA().CSS())           // rgba(0, 128, 0, 1)
//	fmt.Println(c.Spin(180).Lighten(.25)) // hsl(300, 100%, 50%)
//
// # Inputs
//
// [Parse] understands CSS color keywords, hex values with 3, 4, 6 or 8
// digits, and the functional notations rgb(), rgba(), hsl(), hsla(), hsv(),
// hsva(), hwb(), gray() and cmyk(). Hues may be given in degrees ("120",
// "120deg") or as named hues such as "red", "yellowish green" or
// "blue(10%) purple".
//
// # Output
//
// [Color.CSS] formats with the process-wide precision set by [SetPrecision]
// or [SetConfig]. [Color.Format] takes an explicit precision instead.
//
// # Operations
//
// Mixing, hue rotation, saturation, lightness and alpha adjustments work in
// HSLA or RGBA and return a color in the space of the receiver. Luminance
// and contrast ratio follow WCAG 2.0.
package kolor

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
