package styling

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

func colorfulColorToTcellColor(color colorful.Color) tcell.Color {
	r, g, b := color.RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

func colorfulColorFromHexString(hex string) colorful.Color {
	color, err := colorful.Hex(hex)
	if err != nil {
		panic(fmt.Sprintf("unable to parse color from '%s' (%s)", hex, err.Error()))
	}
	return color
}

// lightenColorfulColor returns the given color lightened by the given
// percentage, i.E. blended towards white.
func lightenColorfulColor(color colorful.Color, percentage int) colorful.Color {
	white := colorful.Color{R: 1.0, G: 1.0, B: 1.0}
	return color.BlendLab(white, float64(percentage)/100.0)
}

// darkenColorfulColor returns the given color darkened by the given
// percentage, i.E. blended towards black.
func darkenColorfulColor(color colorful.Color, percentage int) colorful.Color {
	black := colorful.Color{R: 0.0, G: 0.0, B: 0.0}
	return color.BlendLab(black, float64(percentage)/100.0)
}
