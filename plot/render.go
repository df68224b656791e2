// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"math"
	"os"
	"strconv"

	mscale "github.com/aclements/go-moremath/scale"
	"github.com/golang/freetype"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/wuyao1997/go-foldaxis/fold"
)

// Frame margins and text metrics, in pixels.
const (
	marginLeft   = 56
	marginRight  = 16
	marginTop    = 28
	marginBottom = 44
	tickLen      = 4
	fontSize     = 11
	charWidth    = 6 // crude glyph advance estimate for centering
)

// A canvas carries the state needed to rasterize one Axes: the
// target image, the font context, and the per-axis normalization and
// pixel scales.
type canvas struct {
	a          *Axes
	img        *image.NRGBA
	ft         *freetype.Context
	xn, yn     mscale.Linear // display coords -> [0, 1]
	xout, yout OutputScale
}

// Render rasterizes the axes to a width-by-height image. The
// projection pipeline per axis is: data coordinate -> fold scale
// (log10 first in log mode) -> display coordinate -> [0, 1] over the
// transformed limits -> pixel.
func (a *Axes) Render(width, height int) (*image.NRGBA, error) {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)

	font, err := freetype.ParseFont(goregular.TTF)
	if err != nil {
		return nil, err
	}
	ft := freetype.NewContext()
	ft.SetFont(font)
	ft.SetFontSize(fontSize)
	ft.SetSrc(image.Black)
	ft.SetDst(img)
	ft.SetClip(img.Bounds())

	c := &canvas{a: a, img: img, ft: ft}

	xlo, xhi := a.limits(fold.XAxis)
	ylo, yhi := a.limits(fold.YAxis)
	c.xn = mscale.Linear{Min: a.project(fold.XAxis, xlo), Max: a.project(fold.XAxis, xhi)}
	c.yn = mscale.Linear{Min: a.project(fold.YAxis, ylo), Max: a.project(fold.YAxis, yhi)}
	c.xout = NewOutputScale(marginLeft, float64(width-marginRight))
	c.yout = NewOutputScale(float64(height-marginBottom), marginTop)
	c.xout.Clamp()
	c.yout.Clamp()

	xmajor, xminor := a.ticks(fold.XAxis, xlo, xhi)
	ymajor, yminor := a.ticks(fold.YAxis, ylo, yhi)

	if a.grid {
		c.drawGrid(xmajor, ymajor)
	}
	c.drawSeries()
	c.drawCovers()
	c.drawFrame()
	c.drawMarkers()
	c.drawTicks(xmajor, xminor, ymajor, yminor)
	c.drawLabels()
	return img, nil
}

// ticks returns the major and minor tick positions for axis in data
// space. Explicit ticks set by SetXTicks/SetYTicks win; otherwise
// ticks are chosen over the data limits, logarithmically if the
// axis has a log-mode fold scale.
func (a *Axes) ticks(axis fold.Axis, lo, hi float64) (major, minor []float64) {
	explicit := a.xticks
	if axis == fold.YAxis {
		explicit = a.yticks
	}
	if explicit != nil {
		return explicit, nil
	}
	if s := a.scales[axis]; s != nil && s.Mode == fold.ModeLog {
		if lg, err := mscale.NewLog(lo, hi, 10); err == nil {
			return lg.Ticks(mscale.TickOptions{Max: 6})
		}
	}
	lin := mscale.Linear{Min: lo, Max: hi}
	return lin.Ticks(mscale.TickOptions{Max: 8})
}

// xpx maps a data x coordinate to a pixel column.
func (c *canvas) xpx(v float64) int {
	px, _ := c.xout.Px(c.xn.Map(c.a.project(fold.XAxis, v)))
	return px
}

// ypx maps a data y coordinate to a pixel row.
func (c *canvas) ypx(v float64) int {
	px, _ := c.yout.Px(c.yn.Map(c.a.project(fold.YAxis, v)))
	return px
}

func (c *canvas) frameRect() image.Rectangle {
	b := c.img.Bounds()
	return image.Rect(marginLeft, marginTop, b.Dx()-marginRight, b.Dy()-marginBottom)
}

func (c *canvas) drawGrid(xmajor, ymajor []float64) {
	gray := color.NRGBA{0xc8, 0xc8, 0xc8, 0xff}
	f := c.frameRect()
	for _, v := range xmajor {
		x := c.xpx(v)
		for y := f.Min.Y; y <= f.Max.Y; y += 3 {
			c.img.Set(x, y, gray)
		}
	}
	for _, v := range ymajor {
		y := c.ypx(v)
		for x := f.Min.X; x <= f.Max.X; x += 3 {
			c.img.Set(x, y, gray)
		}
	}
}

func (c *canvas) drawSeries() {
	for _, s := range c.a.series {
		switch s.kind {
		case lineSeries:
			for i := 1; i < len(s.xs) && i < len(s.ys); i++ {
				drawLine(c.img,
					c.xpx(s.xs[i-1]), c.ypx(s.ys[i-1]),
					c.xpx(s.xs[i]), c.ypx(s.ys[i]), s.color)
			}
		case barSeries:
			y0 := c.ypx(0)
			for i := 0; i < len(s.xs) && i < len(s.ys); i++ {
				x1 := c.xpx(s.xs[i] - s.barWidth/2)
				x2 := c.xpx(s.xs[i] + s.barWidth/2)
				y1 := c.ypx(s.ys[i])
				fillRect(c.img, image.Rect(x1, min(y0, y1), x2+1, max(y0, y1)+1), s.color)
			}
		}
	}
}

// drawCovers hides everything plotted inside each folded range, the
// way the rendering order of a broken axis demands: data first, then
// the cover, then the break markers on top.
func (c *canvas) drawCovers() {
	f := c.frameRect()
	for _, m := range c.a.markers {
		if m.axis == fold.XAxis {
			x1, x2 := c.xpx(m.low), c.xpx(m.high)
			fillRect(c.img, image.Rect(x1, f.Min.Y, x2+1, f.Max.Y+1), m.style.CoverColor)
		} else {
			y1, y2 := c.ypx(m.high), c.ypx(m.low)
			fillRect(c.img, image.Rect(f.Min.X, y1, f.Max.X+1, y2+1), m.style.CoverColor)
		}
	}
}

func (c *canvas) drawFrame() {
	f := c.frameRect()
	drawLine(c.img, f.Min.X, f.Min.Y, f.Max.X, f.Min.Y, color.Black)
	drawLine(c.img, f.Min.X, f.Max.Y, f.Max.X, f.Max.Y, color.Black)
	drawLine(c.img, f.Min.X, f.Min.Y, f.Min.X, f.Max.Y, color.Black)
	drawLine(c.img, f.Max.X, f.Min.Y, f.Max.X, f.Max.Y, color.Black)
}

func (c *canvas) drawMarkers() {
	f := c.frameRect()
	for _, m := range c.a.markers {
		if m.axis == fold.XAxis {
			x1, x2 := c.xpx(m.low), c.xpx(m.high)
			if m.spine == fold.SpineLower || m.spine == fold.SpineBoth {
				c.breakMarksX(x1, x2, f.Max.Y, m.style)
			}
			if m.spine == fold.SpineUpper || m.spine == fold.SpineBoth {
				c.breakMarksX(x1, x2, f.Min.Y, m.style)
			}
		} else {
			y1, y2 := c.ypx(m.low), c.ypx(m.high)
			if m.spine == fold.SpineLower || m.spine == fold.SpineBoth {
				c.breakMarksY(y1, y2, f.Min.X, m.style)
			}
			if m.spine == fold.SpineUpper || m.spine == fold.SpineBoth {
				c.breakMarksY(y1, y2, f.Max.X, m.style)
			}
		}
	}
}

// breakMarksX hides the horizontal spine at row y between pixel
// columns x1 and x2 and draws a diagonal break line at each end.
func (c *canvas) breakMarksX(x1, x2, y int, style fold.MarkerStyle) {
	fillRect(c.img, image.Rect(x1, y-1, x2+1, y+2), style.CoverColor)
	half := style.Size / 2
	dy := int(math.Round(style.Slope * float64(half)))
	lw := int(math.Max(1, math.Round(style.LineWidth)))
	for _, x := range []int{x1, x2} {
		for w := 0; w < lw; w++ {
			drawLine(c.img, x-half, y+dy+w, x+half, y-dy+w, style.Color)
		}
	}
}

// breakMarksY is breakMarksX for a vertical spine at column x.
func (c *canvas) breakMarksY(y1, y2, x int, style fold.MarkerStyle) {
	fillRect(c.img, image.Rect(x-1, min(y1, y2), x+2, max(y1, y2)+1), style.CoverColor)
	half := style.Size / 2
	dx := int(math.Round(style.Slope * float64(half)))
	lw := int(math.Max(1, math.Round(style.LineWidth)))
	for _, y := range []int{y1, y2} {
		for w := 0; w < lw; w++ {
			drawLine(c.img, x-dx+w, y+half, x+dx+w, y-half, style.Color)
		}
	}
}

func (c *canvas) drawTicks(xmajor, xminor, ymajor, yminor []float64) {
	f := c.frameRect()
	for _, v := range xminor {
		x := c.xpx(v)
		drawLine(c.img, x, f.Max.Y, x, f.Max.Y+tickLen/2, color.Black)
	}
	for _, v := range xmajor {
		x := c.xpx(v)
		drawLine(c.img, x, f.Max.Y, x, f.Max.Y+tickLen, color.Black)
		label := formatTick(v)
		c.text(label, x-len(label)*charWidth/2, f.Max.Y+tickLen+fontSize+2)
	}
	for _, v := range yminor {
		y := c.ypx(v)
		drawLine(c.img, f.Min.X-tickLen/2, y, f.Min.X, y, color.Black)
	}
	for _, v := range ymajor {
		y := c.ypx(v)
		drawLine(c.img, f.Min.X-tickLen, y, f.Min.X, y, color.Black)
		label := formatTick(v)
		c.text(label, f.Min.X-tickLen-len(label)*charWidth-3, y+fontSize/2-1)
	}
}

func (c *canvas) drawLabels() {
	b := c.img.Bounds()
	if c.a.title != "" {
		c.text(c.a.title, (b.Dx()-len(c.a.title)*charWidth)/2, fontSize+6)
	}
	if c.a.xlabel != "" {
		c.text(c.a.xlabel, (b.Dx()-len(c.a.xlabel)*charWidth)/2, b.Dy()-8)
	}
	if c.a.ylabel != "" {
		c.text(c.a.ylabel, 4, marginTop-10)
	}
}

func (c *canvas) text(s string, x, y int) {
	c.ft.DrawString(s, freetype.Pt(x, y))
}

func formatTick(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// WritePNG writes img to path as a PNG file.
func WritePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
