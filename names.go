package kolor

import (
	"fmt"
	"slices"
	"strings"

	"golang.org/x/image/colornames"
	"golang.org/x/text/cases"
)

// namedColors maps lower-case keywords to expressions Parse understands.
// The CSS extended color keywords come from golang.org/x/image/colornames.
var namedColors = buildNamedColors()

func buildNamedColors() map[string]string {
	m := make(map[string]string, len(colornames.Map)+2)
	for name, c := range colornames.Map {
		m[name] = fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
	}
	m["rebeccapurple"] = "#663399"
	m["transparent"] = "rgba(0, 0, 0, 0)"
	return m
}

// LookupName returns the expression a color keyword stands for. Keywords are
// matched without regard to case.
func LookupName(name string) (string, bool) {
	expr, ok := namedColors[cases.Fold().String(strings.TrimSpace(name))]
	return expr, ok
}

// Names returns all color keywords in alphabetical order.
func Names() []string {
	res := make([]string, 0, len(namedColors))
	for name := range namedColors {
		res = append(res, name)
	}
	slices.Sort(res)
	return res
}
