package logger

import (
	"io"
	"os"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// Console palette, one primary color set per severity.
const (
	colorGray      = "#808080"
	colorLightGray = "#D3D3D3"
	colorYellow    = "#FFFF00"
	colorBlack     = "#000000"
	colorIndianRed = "#CD5C5C"
	colorWhite     = "#FFFFFF"
)

// darkenFactor derives the source-location color from the message color.
const darkenFactor = -0.5

// colorEnabled reports whether ANSI styling should be applied to w. The
// terminal check runs on every call so that output redirected mid-process
// degrades to plain text.
func colorEnabled(w io.Writer) bool {
	if forceColor.Load() {
		return true
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// stylesFor returns the message style and the darker source-location style
// for a severity. Without color both styles are plain passthroughs.
func stylesFor(level Level, color bool) (termenv.Style, termenv.Style) {
	p := termenv.Ascii
	if color {
		p = termenv.TrueColor
	}
	switch level {
	case DebugLevel:
		return p.String().Foreground(p.Color(colorGray)),
			p.String().Foreground(p.Color(darken(colorGray, darkenFactor)))
	case InfoLevel:
		return p.String().Foreground(p.Color(colorLightGray)),
			p.String().Foreground(p.Color(darken(colorLightGray, darkenFactor)))
	case WarnLevel:
		s := p.String().Background(p.Color(colorYellow)).Foreground(p.Color(colorBlack))
		return s, s
	case ErrorLevel:
		s := p.String().Background(p.Color(colorIndianRed)).Foreground(p.Color(colorWhite))
		return s, s
	}
	return p.String(), p.String()
}

// darken scales every channel of a hex color by (1 + percents); negative
// percents darken. Each channel is clamped independently. This is plain
// linear scaling, not a perceptual transform.
func darken(hex string, percents float64) string {
	c, err := colorful.Hex(hex)
	if err != nil {
		return hex
	}
	scaled := colorful.Color{
		R: c.R * (1 + percents),
		G: c.G * (1 + percents),
		B: c.B * (1 + percents),
	}
	return scaled.Clamped().Hex()
}

// stripPath reduces a source path to its final segment. Paths reported by
// runtime.Caller use forward slashes on every platform.
func stripPath(fpath string) string {
	if i := strings.LastIndexByte(fpath, '/'); i >= 0 {
		return fpath[i+1:]
	}
	return fpath
}
