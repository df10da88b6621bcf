package waiter

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"smart-menu/internal/common/logger"
	"smart-menu/internal/config"
	"smart-menu/internal/domain"
)

// Call is one waiter request for a table. It counts elapsed seconds
// on a ticker and cancels itself at the ceiling (five minutes by
// default) so a forgotten call doesn't ring forever. The handle must
// be cancelled on teardown; cleanup is never implicit.
type Call struct {
	log     *logger.Logger
	table   int
	notify  func(message string)
	ceiling int

	mu       sync.Mutex
	elapsed  int
	active   bool
	stop     chan struct{}
	stopOnce sync.Once
}

// Start begins a call and its countdown goroutine. notify carries
// free-text messages to the staff side; it may be nil.
func Start(ctx context.Context, log *logger.Logger, cfg config.WaiterConfig, table int, notify func(string)) *Call {
	tick := time.Duration(cfg.TickMS) * time.Millisecond
	if tick <= 0 {
		tick = time.Second
	}
	ceiling := cfg.CeilingTicks
	if ceiling <= 0 {
		ceiling = 300
	}
	c := &Call{
		log:     log,
		table:   table,
		notify:  notify,
		ceiling: ceiling,
		active:  true,
		stop:    make(chan struct{}),
	}
	log.Info("waiter_called", map[string]any{"table": table})

	go func() {
		ticker := time.NewTicker(tick)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				c.Cancel()
				return
			case <-c.stop:
				return
			case <-ticker.C:
				c.mu.Lock()
				c.elapsed++
				expired := c.elapsed >= c.ceiling
				c.mu.Unlock()
				if expired {
					c.log.Info("waiter_call_expired", map[string]any{"table": c.table})
					c.Cancel()
					return
				}
			}
		}
	}()
	return c
}

// Cancel stops the countdown. It is idempotent and no tick is
// processed after it returns.
func (c *Call) Cancel() {
	c.stopOnce.Do(func() { close(c.stop) })
	c.mu.Lock()
	wasActive := c.active
	c.active = false
	c.mu.Unlock()
	if wasActive {
		c.log.Info("waiter_call_cancelled", map[string]any{"table": c.table, "waited": c.Elapsed()})
	}
}

// Send forwards a free-text message to the staff.
func (c *Call) Send(message string) error {
	message = strings.TrimSpace(message)
	if message == "" {
		return &domain.PreconditionError{Reason: "message is empty"}
	}
	if c.notify != nil {
		c.notify(fmt.Sprintf("Table #%d: %s", c.table, message))
	}
	c.log.Info("waiter_message_sent", map[string]any{"table": c.table})
	return nil
}

func (c *Call) Active() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.active
}

// Elapsed is the waiting time in ticks (seconds at the default rate).
func (c *Call) Elapsed() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.elapsed
}

// FormatElapsed renders seconds as m:ss for the waiting badge.
func FormatElapsed(seconds int) string {
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}
