package promos

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/fasco-shop/storefront/pkg/localstore"
	"github.com/fasco-shop/storefront/pkg/logger"
)

// Timer manages per-product deal countdowns. The end time is persisted so a
// reload resumes the same countdown instead of restarting it.
type Timer struct {
	kv     localstore.Store
	logger *logger.Logger
	ttl    time.Duration
	now    func() time.Time
}

var (
	errTimerKVRequired     = errors.New("deal timer backend is required")
	errTimerLoggerRequired = errors.New("deal timer logger is required")
)

// NewTimer validates collaborators. TTL is the countdown length granted to a
// deal seen for the first time.
func NewTimer(kv localstore.Store, logg *logger.Logger, ttl time.Duration) (*Timer, error) {
	if kv == nil {
		return nil, errTimerKVRequired
	}
	if logg == nil {
		return nil, errTimerLoggerRequired
	}
	if ttl <= 0 {
		return nil, errors.New("deal ttl must be positive")
	}
	return &Timer{kv: kv, logger: logg, ttl: ttl, now: time.Now}, nil
}

// EndTime returns the persisted countdown end for a product, creating and
// persisting one TTL from now when none exists or the stored value is
// unreadable or already elapsed.
func (t *Timer) EndTime(ctx context.Context, productID int64) time.Time {
	key := localstore.DealTimerKey(productID)
	raw, err := t.kv.Get(ctx, key)
	if err == nil {
		if millis, parseErr := strconv.ParseInt(raw, 10, 64); parseErr == nil {
			end := time.UnixMilli(millis)
			if end.After(t.now()) {
				return end
			}
		} else {
			t.logger.Warn(ctx, "deal timer record is corrupt, resetting")
		}
	} else if !errors.Is(err, localstore.ErrNotFound) {
		t.logger.Error(ctx, "reading deal timer", err)
	}

	end := t.now().Add(t.ttl)
	if err := t.kv.Set(ctx, key, strconv.FormatInt(end.UnixMilli(), 10)); err != nil {
		t.logger.Error(ctx, "persisting deal timer", err)
	}
	return end
}

// Remaining reports the time left on a product's deal, never negative.
func (t *Timer) Remaining(ctx context.Context, productID int64) time.Duration {
	remaining := t.EndTime(ctx, productID).Sub(t.now())
	if remaining < 0 {
		return 0
	}
	return remaining
}

// FormatRemaining renders a duration as the storefront countdown string,
// e.g. "01 : 23 : 45 : 59" for days, hours, minutes and seconds.
func FormatRemaining(remaining time.Duration) string {
	if remaining < 0 {
		remaining = 0
	}
	total := int64(remaining / time.Second)
	days := total / 86400
	hours := (total % 86400) / 3600
	minutes := (total % 3600) / 60
	seconds := total % 60
	return fmt.Sprintf("%02d : %02d : %02d : %02d", days, hours, minutes, seconds)
}

// Countdown ticks once per second until the deal ends or Stop is called.
type Countdown struct {
	C    <-chan time.Duration
	stop chan struct{}
}

// Stop tears the countdown down. Safe to call more than once.
func (c *Countdown) Stop() {
	select {
	case <-c.stop:
	default:
		close(c.stop)
	}
}

// StartCountdown emits the remaining duration every second. The channel is
// closed when the countdown reaches zero or Stop is called, so consumers
// never leak a ticker.
func (t *Timer) StartCountdown(ctx context.Context, productID int64) *Countdown {
	out := make(chan time.Duration, 1)
	countdown := &Countdown{C: out, stop: make(chan struct{})}
	end := t.EndTime(ctx, productID)

	go func() {
		defer close(out)
		ticker := time.NewTicker(time.Second)
		defer ticker.Stop()
		for {
			remaining := end.Sub(t.now())
			if remaining <= 0 {
				select {
				case out <- 0:
				default:
				}
				return
			}
			select {
			case out <- remaining:
			default:
			}
			select {
			case <-ticker.C:
			case <-countdown.stop:
				return
			case <-ctx.Done():
				return
			}
		}
	}()
	return countdown
}
