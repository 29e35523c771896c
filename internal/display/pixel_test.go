package display

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"
	"testing/fstest"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomz197/spacetilt/internal/draw"
)

// panel is an in-memory drivers.Displayer.
type panel struct {
	w, h     int16
	pix      []color.RGBA
	displays int
	rects    int
	fillErr  error
}

func newPanel(w, h int16) *panel {
	return &panel{w: w, h: h, pix: make([]color.RGBA, int(w)*int(h))}
}

func (p *panel) Size() (x, y int16) { return p.w, p.h }

func (p *panel) SetPixel(x, y int16, c color.RGBA) {
	if x < 0 || y < 0 || x >= p.w || y >= p.h {
		return
	}
	p.pix[int(y)*int(p.w)+int(x)] = c
}

func (p *panel) Display() error {
	p.displays++
	return nil
}

func (p *panel) at(x, y int) color.RGBA {
	return p.pix[y*int(p.w)+x]
}

func (p *panel) count(c color.RGBA) int {
	n := 0
	for _, px := range p.pix {
		if px == c {
			n++
		}
	}
	return n
}

// hwPanel adds a hardware rectangle fill.
type hwPanel struct {
	*panel
}

func (p hwPanel) FillRectangle(x, y, w, h int16, c color.RGBA) error {
	p.rects++
	if p.fillErr != nil {
		return p.fillErr
	}
	for yy := y; yy < y+h; yy++ {
		for xx := x; xx < x+w; xx++ {
			p.SetPixel(xx, yy, c)
		}
	}
	return nil
}

func pngAsset(t *testing.T, w, h int, c color.RGBA) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, c)
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestPixelSize(t *testing.T) {
	d := NewPixel(newPanel(240, 240), nil)
	assert.Equal(t, 240, d.Width())
	assert.Equal(t, 240, d.Height())
}

func TestPixelPolygonDrawsClosedOutline(t *testing.T) {
	p := newPanel(40, 40)
	d := NewPixel(p, nil)
	square := draw.Shape{{X: -4, Y: -4}, {X: -4, Y: 4}, {X: 4, Y: 4}, {X: 4, Y: -4}}

	d.Polygon(square, 20, 20, draw.White, 0)

	assert.Equal(t, draw.White, p.at(16, 16))
	assert.Equal(t, draw.White, p.at(24, 24))
	assert.Equal(t, draw.White, p.at(24, 16), "closing edge")
	assert.Equal(t, draw.White, p.at(20, 16))
	assert.NotEqual(t, draw.White, p.at(20, 20), "outline only")
	assert.Equal(t, 32, p.count(draw.White))
}

func TestPixelFillRectClips(t *testing.T) {
	p := newPanel(10, 10)
	d := NewPixel(p, nil)

	d.FillRect(-2, 8, 5, 5, draw.Red)

	assert.Equal(t, 3*2, p.count(draw.Red))
	assert.Equal(t, draw.Red, p.at(0, 9))
	assert.Equal(t, draw.Red, p.at(2, 8))
}

func TestPixelFillUsesHardwareRectangle(t *testing.T) {
	p := newPanel(10, 10)
	d := NewPixel(hwPanel{p}, nil)

	d.Fill(draw.White)
	assert.Equal(t, 1, p.rects)
	assert.Equal(t, 100, p.count(draw.White))

	p.fillErr = errors.New("spi busy")
	d.Fill(draw.Red)
	assert.Equal(t, 100, p.count(draw.Red), "falls back to software fill")
}

func TestPixelTextDrawsGlyphs(t *testing.T) {
	p := newPanel(240, 40)
	d := NewPixel(p, nil)

	d.Text(FontSmall, "Time: 00:00", 76, 10, draw.White)

	assert.Positive(t, p.count(draw.White))
	for x := 0; x < 70; x++ {
		for y := 0; y < 40; y++ {
			require.NotEqual(t, draw.White, p.at(x, y), "pixel %d,%d left of the text", x, y)
		}
	}
}

func TestPixelImage(t *testing.T) {
	assets := fstest.MapFS{"assets/splash.png": {Data: pngAsset(t, 4, 3, draw.Red)}}
	p := newPanel(10, 10)
	d := NewPixel(p, assets)

	require.NoError(t, d.Image("assets/splash.png", 8, 1))

	assert.Equal(t, 2*3, p.count(draw.Red), "clipped at the right edge")
	assert.Equal(t, draw.Red, p.at(8, 1))
	assert.Equal(t, draw.Red, p.at(9, 3))
}

func TestPixelImageMissing(t *testing.T) {
	d := NewPixel(newPanel(10, 10), fstest.MapFS{})
	err := d.Image("assets/splash.jpg", 0, 0)
	assert.True(t, errors.Is(err, ErrAssetMissing))

	d = NewPixel(newPanel(10, 10), nil)
	err = d.Image("assets/splash.jpg", 0, 0)
	assert.True(t, errors.Is(err, ErrAssetMissing))
}

func TestPixelImageCorrupt(t *testing.T) {
	assets := fstest.MapFS{"assets/splash.jpg": {Data: []byte("not a jpeg")}}
	d := NewPixel(newPanel(10, 10), assets)

	err := d.Image("assets/splash.jpg", 0, 0)
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrAssetMissing))
}

func TestFlushOnlyFlushers(t *testing.T) {
	p := newPanel(10, 10)
	require.NoError(t, Flush(NewPixel(p, nil)))
	assert.Equal(t, 1, p.displays)

	r := NewRecorder(10, 10)
	require.NoError(t, Flush(r))
	assert.Equal(t, 1, r.Flushes)
}

func TestFontMetrics(t *testing.T) {
	assert.Equal(t, 88, FontSmall.TextWidth("Time: 00:00"))
	assert.Equal(t, 144, FontLarge.TextWidth("GAME OVER"))
	assert.Equal(t, 16, FontLarge.Height())
}

func TestInitErrorUnwraps(t *testing.T) {
	cause := errors.New("no ack")
	err := &InitError{Bus: "spi1", Err: cause}
	assert.Equal(t, "display: init spi1: no ack", err.Error())
	assert.True(t, errors.Is(err, cause))
}
