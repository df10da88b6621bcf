package session

import (
	"context"
	"sync"
	"sync/atomic"
	"time"
)

// Frame is one camera capture, opaque to this package.
type Frame []byte

type Permission string

const (
	PermissionGranted Permission = "granted"
	PermissionDenied  Permission = "denied"
	PermissionPrompt  Permission = "prompt"
)

// Camera is the external capture device. Capture returns the latest
// frame, or ok=false when none is ready yet.
type Camera interface {
	RequestAccess(ctx context.Context) (Permission, error)
	Capture() (Frame, bool)
}

// Decoder turns a frame into QR payload text. ok=false means "no code
// in this frame", which is the normal case and not an error.
type Decoder interface {
	Decode(Frame) (string, bool)
}

// Scanner polls the camera at a fixed frame rate and hands decoded
// payloads to a callback. Stop ends the loop and flips a liveness flag
// that is rechecked right before delivery, but a decode already past
// that check can still arrive concurrently with Stop; callers that
// need a hard cutoff gate on their own state (see Resolver.handleDecode).
// A stopped Scanner cannot be restarted.
type Scanner struct {
	camera   Camera
	decoder  Decoder
	interval time.Duration

	alive    atomic.Bool
	stop     chan struct{}
	stopOnce sync.Once
}

func NewScanner(camera Camera, decoder Decoder, fps int) *Scanner {
	if fps <= 0 {
		fps = 10
	}
	return &Scanner{
		camera:   camera,
		decoder:  decoder,
		interval: time.Second / time.Duration(fps),
		stop:     make(chan struct{}),
	}
}

// Run blocks until Stop is called or ctx is cancelled.
func (s *Scanner) Run(ctx context.Context, onDecode func(string)) {
	s.alive.Store(true)
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-s.stop:
			return
		case <-ticker.C:
			frame, ok := s.camera.Capture()
			if !ok {
				continue
			}
			payload, ok := s.decoder.Decode(frame)
			if !ok {
				continue // no code found: keep scanning silently
			}
			if !s.alive.Load() {
				return
			}
			onDecode(payload)
		}
	}
}

func (s *Scanner) Stop() {
	s.alive.Store(false)
	s.stopOnce.Do(func() { close(s.stop) })
}
