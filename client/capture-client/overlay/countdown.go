package overlay

import (
	"fmt"
	"image"
	"image/color"
	"time"

	"github.com/yeti47/cryosnap/client/capture-client/models"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Origin is the baseline position of the countdown text
var Origin = image.Pt(20, 30)

// Renderer draws preview annotations onto frames
type Renderer interface {
	// RenderCountdown burns the time remaining until the next send into the frame
	RenderCountdown(frame *models.Frame, remaining time.Duration)
}

// CountdownRenderer implements Renderer with a fixed bitmap font
type CountdownRenderer struct {
	face  font.Face
	color color.Gray
}

// NewCountdownRenderer creates a renderer drawing white text
func NewCountdownRenderer() *CountdownRenderer {
	return &CountdownRenderer{
		face:  basicfont.Face7x13,
		color: color.Gray{Y: 255},
	}
}

// FormatRemaining renders seconds with one decimal place, e.g. "9.5"
func FormatRemaining(remaining time.Duration) string {
	return fmt.Sprintf("%.1f", remaining.Seconds())
}

func (r *CountdownRenderer) RenderCountdown(frame *models.Frame, remaining time.Duration) {
	if frame.IsEmpty() {
		return
	}

	origin := frame.Image.Bounds().Min.Add(Origin)
	d := &font.Drawer{
		Dst:  frame.Image,
		Src:  image.NewUniform(r.color),
		Face: r.face,
		Dot:  fixed.P(origin.X, origin.Y),
	}
	d.DrawString(FormatRemaining(remaining))
}
