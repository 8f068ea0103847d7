package warp

import (
	"image"
	"math"
	"runtime"
	"sync"
)

// WarpOptions configures the displacement response. Zero values fall back to
// the standard fabric constants.
type WarpOptions struct {
	WaveAmplitude  float64 // horizontal ripple amplitude in pixels (default 8)
	SagAmplitude   float64 // vertical sag in pixels (default 6)
	WavePeriod     float64 // rows per radian of ripple phase (default 10)
	CreaseExponent float64 // response curve exponent (default 1.5)
	Parallel       bool    // split the displacement loop across row bands
}

func (o WarpOptions) withDefaults() WarpOptions {
	if o.WaveAmplitude <= 0 {
		o.WaveAmplitude = 8
	}
	if o.SagAmplitude <= 0 {
		o.SagAmplitude = 6
	}
	if o.WavePeriod <= 0 {
		o.WavePeriod = 10
	}
	if o.CreaseExponent <= 0 {
		o.CreaseExponent = 1.5
	}
	return o
}

// creaseIntensity maps normalized field intensity (0..1) to displacement
// strength. Dark template regions (creases) displace strongly, bright flat
// regions barely at all; the response is monotonically non-increasing in d.
func creaseIntensity(d, exponent float64) float64 {
	return math.Pow(1-d, exponent)
}

// displace forward-maps every source pixel of the resized graphic to its
// displaced position. Collisions resolve last-writer-wins in source scan
// order and unwritten destinations stay fully transparent; both are part of
// the output contract of this warp, not defects. The caller recycles the
// returned buffer via recycleBuffer once it has been pasted.
func displace(src *image.RGBA, field Field, sel image.Rectangle, opts WarpOptions) *image.RGBA {
	tw, th := src.Rect.Dx(), src.Rect.Dy()
	dst := acquireBuffer(tw, th)
	if opts.Parallel && th >= 2 && runtime.NumCPU() > 1 {
		displaceBands(dst, src, field, sel, opts)
	} else {
		displaceRows(dst, src, field, sel, opts, 0, th, nil)
	}
	return dst
}

// displaceRows runs the displacement loop for source rows [y0, y1). When
// written is non-nil it records which destination pixels were touched, which
// the band merge needs to reproduce sequential collision order.
func displaceRows(dst, src *image.RGBA, field Field, sel image.Rectangle, opts WarpOptions, y0, y1 int, written []bool) {
	tw, th := src.Rect.Dx(), src.Rect.Dy()
	selW, selH := sel.Dx(), sel.Dy()
	for y := y0; y < y1; y++ {
		ripple := opts.WaveAmplitude * math.Sin(float64(y)/opts.WavePeriod)
		for x := 0; x < tw; x++ {
			// Sample the field at the selection's native resolution.
			mapX := x * selW / tw
			mapY := y * selH / th
			if mapX >= selW || mapY >= selH {
				continue
			}
			d := float64(field.At(sel.Min.X+mapX, sel.Min.Y+mapY)) / 255.0
			c := creaseIntensity(d, opts.CreaseExponent)
			newX := x + int(math.Round(c*ripple))
			newY := y + int(math.Round(c*opts.SagAmplitude))
			if newX < 0 {
				newX = 0
			} else if newX > tw-1 {
				newX = tw - 1
			}
			if newY < 0 {
				newY = 0
			} else if newY > th-1 {
				newY = th - 1
			}
			si := y*src.Stride + x*4
			di := newY*dst.Stride + newX*4
			copy(dst.Pix[di:di+4], src.Pix[si:si+4])
			if written != nil {
				written[newY*tw+newX] = true
			}
		}
	}
}

// displaceBands partitions source rows across workers. Each band renders into
// a private buffer with a written-mask; merging the bands in ascending source
// order afterwards makes the result byte-identical to the sequential loop
// regardless of goroutine scheduling.
func displaceBands(dst, src *image.RGBA, field Field, sel image.Rectangle, opts WarpOptions) {
	tw, th := src.Rect.Dx(), src.Rect.Dy()
	workers := runtime.NumCPU()
	if workers > th {
		workers = th
	}
	rowsPer := (th + workers - 1) / workers

	type band struct {
		y0, y1  int
		buf     *image.RGBA
		written []bool
	}
	var bands []*band
	for y0 := 0; y0 < th; y0 += rowsPer {
		y1 := y0 + rowsPer
		if y1 > th {
			y1 = th
		}
		bands = append(bands, &band{y0: y0, y1: y1})
	}

	var wg sync.WaitGroup
	for _, b := range bands {
		wg.Add(1)
		go func(b *band) {
			defer wg.Done()
			b.buf = acquireBuffer(tw, th)
			b.written = make([]bool, tw*th)
			displaceRows(b.buf, src, field, sel, opts, b.y0, b.y1, b.written)
		}(b)
	}
	wg.Wait()

	// Later bands overwrite earlier ones, preserving source scan order.
	for _, b := range bands {
		for i, w := range b.written {
			if !w {
				continue
			}
			copy(dst.Pix[i*4:i*4+4], b.buf.Pix[i*4:i*4+4])
		}
		recycleBuffer(b.buf)
	}
}
