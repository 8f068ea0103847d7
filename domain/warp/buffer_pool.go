package warp

import (
	"image"
	"sync"
)

// Reusable RGBA buffer pool for displaced and band buffers. Repeated
// placements against one template allocate the same large backing slices over
// and over; recycling them keeps heap churn flat. Callers that never recycle
// degrade gracefully to plain allocation.

var bufferPool sync.Pool // stores *image.RGBA

// acquireBuffer returns a fully transparent RGBA buffer of w x h anchored at
// the origin. The Pix length is exactly w*h*4 and Stride is w*4.
func acquireBuffer(w, h int) *image.RGBA {
	if w <= 0 || h <= 0 {
		return &image.RGBA{Rect: image.Rect(0, 0, w, h)}
	}
	needed := w * h * 4
	var img *image.RGBA
	if v := bufferPool.Get(); v != nil {
		img = v.(*image.RGBA)
	}
	if img == nil || cap(img.Pix) < needed {
		return image.NewRGBA(image.Rect(0, 0, w, h))
	}
	img.Pix = img.Pix[:needed]
	clear(img.Pix)
	img.Stride = w * 4
	img.Rect = image.Rect(0, 0, w, h)
	return img
}

// recycleBuffer returns the buffer to the pool. The caller must not touch the
// buffer afterwards.
func recycleBuffer(img *image.RGBA) {
	if img == nil || img.Pix == nil {
		return
	}
	bufferPool.Put(img)
}
