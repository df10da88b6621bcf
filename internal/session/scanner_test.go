package session

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type fakeCamera struct {
	perm Permission
	err  error
}

func (c fakeCamera) RequestAccess(context.Context) (Permission, error) { return c.perm, c.err }
func (fakeCamera) Capture() (Frame, bool)                              { return Frame("frame"), true }

// scriptDecoder replays a fixed sequence of decode results; an empty
// entry means "no code in this frame". Past the end it keeps
// returning nothing.
type scriptDecoder struct {
	mu       sync.Mutex
	payloads []string
	pos      int
}

func (d *scriptDecoder) Decode(Frame) (string, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.pos >= len(d.payloads) {
		return "", false
	}
	p := d.payloads[d.pos]
	d.pos++
	if p == "" {
		return "", false
	}
	return p, true
}

func collect() (func(string), *[]string, *sync.Mutex) {
	var mu sync.Mutex
	var got []string
	return func(p string) {
		mu.Lock()
		got = append(got, p)
		mu.Unlock()
	}, &got, &mu
}

func TestScannerDeliversDecodes(t *testing.T) {
	s := NewScanner(fakeCamera{perm: PermissionGranted}, &scriptDecoder{payloads: []string{"", "", "a:b"}}, 200)
	onDecode, got, mu := collect()

	done := make(chan struct{})
	go func() { s.Run(context.Background(), onDecode); close(done) }()

	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(*got) == 1 && (*got)[0] == "a:b"
	}, time.Second, 5*time.Millisecond)

	s.Stop()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("scanner did not stop")
	}
}

func TestScannerEmptyFramesAreSilent(t *testing.T) {
	s := NewScanner(fakeCamera{perm: PermissionGranted}, &scriptDecoder{}, 200)
	onDecode, got, mu := collect()

	done := make(chan struct{})
	go func() { s.Run(context.Background(), onDecode); close(done) }()

	time.Sleep(50 * time.Millisecond)
	s.Stop()
	<-done

	mu.Lock()
	defer mu.Unlock()
	require.Empty(t, *got)
}

func TestScannerNoCallbackAfterStop(t *testing.T) {
	// decoder that always has a code ready
	always := &scriptDecoder{payloads: []string{"a:b", "a:b", "a:b", "a:b", "a:b"}}
	s := NewScanner(fakeCamera{perm: PermissionGranted}, always, 200)
	onDecode, got, mu := collect()

	s.Stop() // stop before the loop ever ticks

	done := make(chan struct{})
	go func() { s.Run(context.Background(), onDecode); close(done) }()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("stopped scanner kept running")
	}

	mu.Lock()
	defer mu.Unlock()
	require.Empty(t, *got)
}

func TestScannerStopsOnContextCancel(t *testing.T) {
	s := NewScanner(fakeCamera{perm: PermissionGranted}, &scriptDecoder{}, 200)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() { s.Run(ctx, func(string) {}); close(done) }()
	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("scanner ignored context cancellation")
	}
}
