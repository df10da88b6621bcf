package session

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"smart-menu/internal/common/logger"
	"smart-menu/internal/domain"
)

type State string

const (
	StateIdle                 State = "idle"
	StateRequestingPermission State = "requesting_permission"
	StatePermissionDenied     State = "permission_denied"
	StateScanning             State = "scanning"
	StateResolving            State = "resolving"
	StateBound                State = "bound"
	StateCancelled            State = "cancelled"
)

// Directory is the external lookup provider.
type Directory interface {
	RestaurantByID(ctx context.Context, id string) (domain.Venue, error)
	TableByQRCode(ctx context.Context, token string) (domain.Table, error)
}

// Session is the slice of the store the resolver writes to.
type Session interface {
	SetCurrentVenue(domain.Venue)
	SetCurrentTable(domain.Table)
	SetScanning(bool)
}

// Resolver turns decoded QR payloads into a bound (venue, table)
// session. Format and lookup failures set a retriable message and
// return to scanning; only Stop or a successful bind ends the scan.
type Resolver struct {
	log     *logger.Logger
	camera  Camera
	decoder Decoder
	dir     Directory
	session Session
	fps     int

	mu      sync.Mutex
	scanner *Scanner // current scan loop; rebuilt on every Start
	state   State
	userErr string
	cancel  context.CancelFunc
}

func NewResolver(log *logger.Logger, camera Camera, decoder Decoder, dir Directory, session Session, fps int) *Resolver {
	return &Resolver{
		log:     log,
		camera:  camera,
		decoder: decoder,
		dir:     dir,
		session: session,
		fps:     fps,
		state:   StateIdle,
	}
}

// Start requests camera access and, when granted, begins the scan
// loop in the background. A denied permission is terminal: the user
// has to change system settings, so we never retry on our own.
func (r *Resolver) Start(ctx context.Context) error {
	r.mu.Lock()
	if r.state != StateIdle && r.state != StateCancelled {
		r.mu.Unlock()
		return &domain.PreconditionError{Reason: fmt.Sprintf("resolver is %s", r.state)}
	}
	r.state = StateRequestingPermission
	r.mu.Unlock()

	perm, err := r.camera.RequestAccess(ctx)
	if err != nil || perm == PermissionDenied {
		if err == nil {
			err = &domain.PermissionError{Reason: "access denied"}
		}
		r.mu.Lock()
		r.state = StatePermissionDenied
		r.userErr = "Could not access camera. Please check permissions."
		r.mu.Unlock()
		r.log.Error("camera_permission_denied", err, nil)
		return err
	}

	// a stopped scanner can't be rearmed, so each Start gets a new one
	scanner := NewScanner(r.camera, r.decoder, r.fps)
	sctx, cancel := context.WithCancel(ctx)
	r.mu.Lock()
	r.cancel = cancel
	r.scanner = scanner
	r.state = StateScanning
	r.userErr = ""
	r.mu.Unlock()
	r.session.SetScanning(true)
	r.log.Info("scan_started", map[string]any{"permission": string(perm)})

	go scanner.Run(sctx, func(payload string) { r.handleDecode(sctx, payload) })
	return nil
}

// handleDecode runs on the scanner goroutine, one decode at a time.
func (r *Resolver) handleDecode(ctx context.Context, payload string) {
	r.mu.Lock()
	if r.state != StateScanning {
		r.mu.Unlock()
		return // a resolve is already in flight or we were stopped
	}
	r.state = StateResolving
	r.mu.Unlock()

	restaurantID, tableToken, err := ParsePayload(payload)
	if err != nil {
		r.fail("scan_payload_invalid", err, "Invalid QR code format. Please try again.")
		return
	}

	venue, err := r.dir.RestaurantByID(ctx, restaurantID)
	if err != nil {
		r.lookupFailed(err)
		return
	}
	table, err := r.dir.TableByQRCode(ctx, tableToken)
	if err != nil {
		r.lookupFailed(err)
		return
	}
	if !tableBelongs(venue, table) {
		// a real token, but for another venue's table
		r.fail("scan_table_mismatch",
			&domain.NotFoundError{Entity: "table", Key: tableToken},
			"Table not found. Please try again.")
		return
	}

	r.mu.Lock()
	if r.state != StateResolving { // Stop won the race during lookups
		r.mu.Unlock()
		return
	}
	r.state = StateBound
	r.userErr = ""
	scanner := r.scanner
	r.mu.Unlock()

	r.session.SetCurrentVenue(venue)
	r.session.SetCurrentTable(table)
	r.session.SetScanning(false)
	scanner.Stop()
	r.log.Info("session_bound", map[string]any{
		"restaurant_id": venue.VenueID(), "table_id": table.ID,
	})
}

func (r *Resolver) lookupFailed(err error) {
	var nf *domain.NotFoundError
	if errors.As(err, &nf) {
		r.fail("scan_lookup_miss", err,
			fmt.Sprintf("%s not found. Please try again.", capitalize(nf.Entity)))
		return
	}
	if errors.Is(err, context.Canceled) {
		return // stopped mid-resolve, nothing to report
	}
	r.fail("scan_lookup_failed", err, "Something went wrong. Please try again.")
}

// fail records a retriable error and re-arms the scanner.
func (r *Resolver) fail(action string, err error, message string) {
	r.mu.Lock()
	if r.state == StateResolving {
		r.state = StateScanning
	}
	r.userErr = message
	r.mu.Unlock()
	r.log.Error(action, err, nil)
}

// Stop cancels scanning. After it returns no decode callback will be
// processed.
func (r *Resolver) Stop() {
	r.mu.Lock()
	cancel := r.cancel
	scanner := r.scanner
	if r.state != StateBound && r.state != StatePermissionDenied {
		r.state = StateCancelled
	}
	r.mu.Unlock()

	if scanner != nil {
		scanner.Stop()
	}
	if cancel != nil {
		cancel()
	}
	r.session.SetScanning(false)
	r.log.Info("scan_stopped", nil)
}

func (r *Resolver) State() State {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state
}

// Err is the user-visible retriable error message, empty when none.
func (r *Resolver) Err() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.userErr
}

func tableBelongs(v domain.Venue, t domain.Table) bool {
	for _, vt := range v.VenueTables() {
		if vt.ID == t.ID {
			return true
		}
	}
	return false
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
