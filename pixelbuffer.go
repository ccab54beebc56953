package overlay

import (
	"image"

	"github.com/gogpu/overlay/host"
)

// ScopedPixelBuffer holds an exclusive write lock on a texture's backing
// memory for the duration of one drawing scope.
//
// Acquire a buffer with Panel.PixelBuffer and pair it with a deferred
// Release so the lock is returned on every exit path:
//
//	buf := panel.PixelBuffer()
//	defer buf.Release()
//	if !buf.Valid() {
//	    return // nothing to draw into this frame
//	}
//	img := buf.Image(w, h)
//
// A buffer over an absent texture is not an error: it simply reports
// Valid() == false and its Release does nothing. The lock is released at
// most once no matter how often Release is called, and ownership can be
// handed to another buffer with Transfer, after which the source no longer
// releases anything. A ScopedPixelBuffer must not be copied; pass the
// pointer or use Transfer.
type ScopedPixelBuffer struct {
	lock host.PixelLock
}

// newScopedPixelBuffer attempts to lock tex. A nil texture or a failed lock
// yields a lock-less buffer, signaling "nothing to draw into this frame".
func newScopedPixelBuffer(tex host.Texture) *ScopedPixelBuffer {
	if tex == nil {
		return &ScopedPixelBuffer{}
	}
	lock, err := tex.Lock()
	if err != nil {
		Logger().Warn("pixel buffer lock failed", "texture", tex.Name(), "err", err)
		return &ScopedPixelBuffer{}
	}
	return &ScopedPixelBuffer{lock: lock}
}

// Valid reports whether the buffer holds a lock.
func (b *ScopedPixelBuffer) Valid() bool {
	return b.lock != nil
}

// Image returns a drawable RGBA view over the locked memory, cleared to
// fully transparent so stale texture contents from a previous frame never
// show through. The view aliases the locked bytes; drawing into it writes
// straight to the texture's backing memory.
//
// Returns nil if no lock is held or the locked memory is smaller than
// width*height*4 bytes.
func (b *ScopedPixelBuffer) Image(width, height int) *image.RGBA {
	if b.lock == nil {
		return nil
	}
	n := width * height * 4
	pix := b.lock.Bytes()
	if width <= 0 || height <= 0 || len(pix) < n {
		return nil
	}
	pix = pix[:n]
	clear(pix)
	return &image.RGBA{
		Pix:    pix,
		Stride: width * 4,
		Rect:   image.Rect(0, 0, width, height),
	}
}

// Release unlocks the texture, flushing written pixels to the GPU.
// Releasing a buffer that holds no lock (never acquired, already released,
// or moved out via Transfer) is a no-op. Safe to defer unconditionally.
func (b *ScopedPixelBuffer) Release() {
	if b.lock == nil {
		return
	}
	b.lock.Unlock()
	b.lock = nil
}

// Transfer moves lock ownership into a new buffer. After Transfer the
// source holds no lock and its Release does nothing; exactly one of the
// two buffers will perform the unlock.
func (b *ScopedPixelBuffer) Transfer() *ScopedPixelBuffer {
	moved := &ScopedPixelBuffer{lock: b.lock}
	b.lock = nil
	return moved
}
