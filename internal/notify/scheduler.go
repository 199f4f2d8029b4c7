package notify

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
)

// cronParser accepts standard 5-field cron expressions (minute, hour, dom, month, dow).
var cronParser = cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow)

// ValidateSchedule checks a cron expression without scheduling anything.
func ValidateSchedule(expr string) error {
	if _, err := cronParser.Parse(expr); err != nil {
		return fmt.Errorf("notify: parse schedule %q: %w", expr, err)
	}
	return nil
}

// nextDuration returns the time until the expression's next fire, 0 on
// parse error.
func nextDuration(expr string, now time.Time) time.Duration {
	sched, err := cronParser.Parse(expr)
	if err != nil {
		return 0
	}
	d := sched.Next(now).Sub(now)
	if d < 0 {
		return 0
	}
	return d
}

// RunSchedule fires job at each cron fire time until ctx is cancelled. It
// returns immediately when the expression doesn't parse.
func RunSchedule(ctx context.Context, expr string, job func(context.Context)) {
	d := nextDuration(expr, time.Now())
	if d == 0 {
		return
	}
	timer := time.NewTimer(d)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-timer.C:
			job(ctx)
			d := nextDuration(expr, time.Now())
			if d == 0 {
				return
			}
			timer.Reset(d)
		}
	}
}
