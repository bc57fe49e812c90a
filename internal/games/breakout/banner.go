package breakout

import (
	_ "embed"
	"strings"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

//go:embed assets/banner.txt
var bannerText string

// bannerLines returns the title art split into rows.
func bannerLines() []string {
	return strings.Split(strings.TrimRight(bannerText, "\n"), "\n")
}

// renderBanner draws the title art centered, ending above row bottom.
// Nothing is drawn if it does not fit.
func renderBanner(dst *core.Screen, bottom int) {
	lines := bannerLines()
	width := 0
	for _, l := range lines {
		width = core.Max(width, len(l))
	}
	top := bottom - len(lines)
	if top < 0 || width > dst.Width() {
		return
	}
	x := (dst.Width() - width) / 2
	for i, l := range lines {
		dst.DrawTextColor(x, top+i, l, core.RowColors[i%len(core.RowColors)])
	}
}
