package mind

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
)

// ProactiveComposer generates an unprompted follow-up from rendered
// channel history.
type ProactiveComposer interface {
	Proactive(ctx context.Context, history string) (string, error)
}

// Sender delivers a message to a channel.
type Sender interface {
	Send(channelID, text string) error
}

// Runner is the idle reengagement loop. On every tick it looks for
// channels that have history and have been quiet past the cooldown, and
// asks the composer for a follow-up. Generation failures are skipped
// silently; an eligible channel is retried on the next tick.
type Runner struct {
	Store     *Store
	Cooldowns *Cooldowns
	Composer  ProactiveComposer
	Sender    Sender

	Interval time.Duration // tick interval between sweeps
	Cooldown time.Duration // minimum quiet time per channel
	Timeout  time.Duration // per-generation deadline

	now func() time.Time
}

func NewRunner(store *Store, cooldowns *Cooldowns, composer ProactiveComposer, sender Sender, interval, cooldown, timeout time.Duration) *Runner {
	return &Runner{
		Store:     store,
		Cooldowns: cooldowns,
		Composer:  composer,
		Sender:    sender,
		Interval:  interval,
		Cooldown:  cooldown,
		Timeout:   timeout,
		now:       time.Now,
	}
}

// Run blocks until ctx is cancelled.
func (r *Runner) Run(ctx context.Context) {
	ticker := time.NewTicker(r.Interval)
	defer ticker.Stop()

	log.Info().Dur("interval", r.Interval).Msg("reengagement loop started")
	for {
		select {
		case <-ctx.Done():
			log.Info().Msg("reengagement loop stopped")
			return
		case <-ticker.C:
			r.Tick(ctx)
		}
	}
}

// Tick sweeps every known channel once.
func (r *Runner) Tick(ctx context.Context) {
	now := r.now()
	for _, channelID := range r.Store.Channels() {
		if !r.Cooldowns.Eligible(channelID, now, r.Cooldown) {
			continue
		}
		r.reengage(ctx, channelID, now)
	}
}

func (r *Runner) reengage(ctx context.Context, channelID string, now time.Time) {
	history := r.Store.RenderChannel(channelID)
	if history == NoHistory {
		return
	}

	genCtx, cancel := context.WithTimeout(ctx, r.Timeout)
	defer cancel()

	text, err := r.Composer.Proactive(genCtx, history)
	if err != nil {
		log.Debug().Err(err).Str("channel", channelID).Msg("proactive generation failed")
		return
	}

	if err := r.Sender.Send(channelID, text); err != nil {
		log.Warn().Err(err).Str("channel", channelID).Msg("proactive send failed")
		return
	}
	r.Cooldowns.Mark(channelID, now)
	log.Info().Str("channel", channelID).Msg("sent reengagement message")
}
