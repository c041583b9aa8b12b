// Package render draws the dashboard charts as standalone SVG documents.
package render

import (
	"fmt"
	"io"
	"math"

	svg "github.com/ajstarks/svgo"

	"github.com/okian/sawboard/internal/domain/model"
	"github.com/okian/sawboard/internal/domain/types"
)

const (
	width        = 640
	height       = 400
	marginLeft   = 60
	marginRight  = 20
	marginTop    = 50
	marginBottom = 110
	yTicks       = 5

	plotWidth  = width - marginLeft - marginRight
	plotHeight = height - marginTop - marginBottom

	axisStyle  = "stroke:#444;stroke-width:1"
	gridStyle  = "stroke:#ddd;stroke-width:1"
	labelStyle = "font-family:sans-serif;font-size:11px;fill:#333"
	titleStyle = "font-family:sans-serif;font-size:16px;font-weight:bold;text-anchor:middle;fill:#222"
	emptyStyle = "font-family:sans-serif;font-size:14px;text-anchor:middle;fill:#888"
	histFill   = "fill:#4c72b0;stroke:#fff;stroke-width:1"
)

// NoDataCaption is shown on charts drawn without data.
const NoDataCaption = "no data"

// TopBarChart draws one bar per row, in the given order. Bars are shaded on
// a blue scale by score and names are tilted 30 degrees.
func TopBarChart(w io.Writer, rows []model.ScoredEmployee) {
	canvas := svg.New(w)
	canvas.Start(width, height)
	defer canvas.End()

	title := fmt.Sprintf("Top %d Employees (SAW)", len(rows))
	canvas.Title(title)
	canvas.Text(width/2, marginTop/2+6, title, titleStyle)
	if len(rows) == 0 {
		drawEmpty(canvas)
		return
	}

	maxScore := 0.0
	for _, r := range rows {
		maxScore = math.Max(maxScore, r.Score)
	}
	if maxScore <= 0 {
		maxScore = 1
	}
	drawYAxis(canvas, maxScore, func(v float64) string { return fmt.Sprintf("%.2f", v) })

	slot := plotWidth / len(rows)
	barWidth := slot * 6 / 10
	base := marginTop + plotHeight
	for i, r := range rows {
		h := scale(r.Score, maxScore, plotHeight)
		x := marginLeft + i*slot + (slot-barWidth)/2
		canvas.Rect(x, base-h, barWidth, h, "fill:"+blueScale(r.Score))
		canvas.Text(x+barWidth/2, base-h-4, fmt.Sprintf("%.3f", r.Score), labelStyle+";text-anchor:middle")

		canvas.TranslateRotate(x+barWidth/2, base+12, -30)
		canvas.Text(0, 0, r.Name, labelStyle+";text-anchor:end")
		canvas.Gend()
	}
	drawXAxis(canvas)
	canvas.Text(marginLeft-45, marginTop-12, "Skor SAW", labelStyle)
}

// Histogram draws the score distribution, one adjacent bar per bin.
func Histogram(w io.Writer, bins []types.HistogramBin) {
	canvas := svg.New(w)
	canvas.Start(width, height)
	defer canvas.End()

	const title = "SAW Score Distribution"
	canvas.Title(title)
	canvas.Text(width/2, marginTop/2+6, title, titleStyle)
	if len(bins) == 0 {
		drawEmpty(canvas)
		return
	}

	maxCount := 0
	for _, b := range bins {
		maxCount = max(maxCount, b.Count)
	}
	top := float64(max(maxCount, 1))
	drawYAxis(canvas, top, func(v float64) string { return fmt.Sprintf("%.0f", v) })

	base := marginTop + plotHeight
	lo, hi := bins[0].Lower, bins[len(bins)-1].Upper
	xAt := func(v float64) int {
		if hi <= lo {
			return marginLeft
		}
		return marginLeft + int(math.Round((v-lo)/(hi-lo)*plotWidth))
	}
	for _, b := range bins {
		x0, x1 := xAt(b.Lower), xAt(b.Upper)
		if hi <= lo {
			x1 = marginLeft + plotWidth
		}
		h := scale(float64(b.Count), top, plotHeight)
		if h > 0 {
			canvas.Rect(x0, base-h, max(x1-x0, 1), h, histFill)
		}
	}
	drawXAxis(canvas)
	canvas.Text(marginLeft, base+16, fmt.Sprintf("%.3f", lo), labelStyle+";text-anchor:middle")
	canvas.Text(marginLeft+plotWidth, base+16, fmt.Sprintf("%.3f", hi), labelStyle+";text-anchor:middle")
	canvas.Text(width/2, base+36, "Skor SAW", labelStyle+";text-anchor:middle")
	canvas.Text(marginLeft-45, marginTop-12, "Jumlah", labelStyle)
}

func drawEmpty(canvas *svg.SVG) {
	canvas.Rect(marginLeft, marginTop, plotWidth, plotHeight, "fill:none;"+gridStyle)
	canvas.Text(width/2, marginTop+plotHeight/2, NoDataCaption, emptyStyle)
}

func drawYAxis(canvas *svg.SVG, top float64, format func(float64) string) {
	base := marginTop + plotHeight
	for i := 0; i <= yTicks; i++ {
		v := top * float64(i) / yTicks
		y := base - scale(v, top, plotHeight)
		canvas.Line(marginLeft, y, marginLeft+plotWidth, y, gridStyle)
		canvas.Text(marginLeft-6, y+4, format(v), labelStyle+";text-anchor:end")
	}
	canvas.Line(marginLeft, marginTop, marginLeft, base, axisStyle)
}

func drawXAxis(canvas *svg.SVG) {
	base := marginTop + plotHeight
	canvas.Line(marginLeft, base, marginLeft+plotWidth, base, axisStyle)
}

// scale maps v in [0, top] onto [0, span] pixels.
func scale(v, top float64, span int) int {
	if top <= 0 || v <= 0 {
		return 0
	}
	return int(math.Round(math.Min(v/top, 1) * float64(span)))
}

// blueScale interpolates from a light to a dark blue; t is clamped to [0,1].
func blueScale(t float64) string {
	t = math.Max(0, math.Min(1, t))
	light := [3]float64{0xc6, 0xdb, 0xef}
	dark := [3]float64{0x08, 0x30, 0x6b}
	var c [3]int
	for i := range c {
		c[i] = int(math.Round(light[i] + (dark[i]-light[i])*t))
	}
	return fmt.Sprintf("#%02x%02x%02x", c[0], c[1], c[2])
}
