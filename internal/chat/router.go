package chat

import (
	"context"
	"errors"
	"math/rand"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"froggy/internal/compose"
	"froggy/internal/mind"
	"froggy/internal/moderation"
	"froggy/internal/persona"
)

// ReplyComposer generates an in-character answer to incoming text.
type ReplyComposer interface {
	Reply(ctx context.Context, history, incoming string) (string, error)
}

// Router decides what happens to each inbound message. Every message runs
// the same flow to completion; the router itself keeps no per-message
// state.
type Router struct {
	Filter    *moderation.Filter
	Store     *mind.Store
	Cooldowns *mind.Cooldowns
	Composer  ReplyComposer
	Gateway   Gateway

	// GenerateTimeout bounds the backend call for one reply.
	GenerateTimeout time.Duration
	// ReactionChance is the probability of attaching the decorative
	// reaction to a successfully answered message.
	ReactionChance float64

	mu   sync.Mutex
	rand *rand.Rand
	now  func() time.Time
}

func NewRouter(filter *moderation.Filter, store *mind.Store, cooldowns *mind.Cooldowns, composer ReplyComposer, gateway Gateway, generateTimeout time.Duration, reactionChance float64) *Router {
	return &Router{
		Filter:          filter,
		Store:           store,
		Cooldowns:       cooldowns,
		Composer:        composer,
		Gateway:         gateway,
		GenerateTimeout: generateTimeout,
		ReactionChance:  reactionChance,
		rand:            rand.New(rand.NewSource(time.Now().UnixNano())),
		now:             time.Now,
	}
}

// Handle runs the decision flow for one message. The returned error is a
// delivery problem; moderation and generation outcomes are handled
// internally.
func (r *Router) Handle(ctx context.Context, m Message) error {
	if m.IsSelf {
		return nil
	}

	// Banned content wins over everything, including the reply path.
	if r.Filter.ContainsBannedContent(m.Content) {
		log.Info().Str("channel", m.ChannelID).Str("author", m.AuthorID).Msg("filtered banned content")
		return r.Gateway.Reply(m.ChannelID, m.MessageID, r.choose(persona.Pushback))
	}

	if m.MentionsBot && r.Filter.IsHostileTowardBot(m.Content) {
		log.Info().Str("channel", m.ChannelID).Str("author", m.AuthorID).Msg("de-escalating hostile mention")
		return r.Gateway.Reply(m.ChannelID, m.MessageID, r.choose(persona.DeEscalation))
	}

	key := mind.Key{ChannelID: m.ChannelID, UserID: m.AuthorID}
	if !m.AuthorIsBot {
		r.Store.Record(key, m.Content, mind.SpeakerUser)
	}

	if !m.MentionsBot {
		return nil
	}
	return r.reply(ctx, key, m)
}

func (r *Router) reply(ctx context.Context, key mind.Key, m Message) error {
	done := make(chan struct{})
	defer close(done)
	go r.keepTyping(m.ChannelID, done)

	history := r.Store.Render(key)

	genCtx, cancel := context.WithTimeout(ctx, r.GenerateTimeout)
	defer cancel()

	text, err := r.Composer.Reply(genCtx, history, m.Content)
	switch {
	case err == nil:
		if sendErr := r.Gateway.Reply(m.ChannelID, m.MessageID, text); sendErr != nil {
			return sendErr
		}
		r.Store.Record(key, text, mind.SpeakerBot)
		r.Cooldowns.Mark(m.ChannelID, r.now())
		if r.roll() < r.ReactionChance {
			if reactErr := r.Gateway.React(m.ChannelID, m.MessageID, persona.Reaction); reactErr != nil {
				log.Warn().Err(reactErr).Msg("failed to add reaction")
			}
		}
		return nil

	case errors.Is(err, compose.ErrEmptyReply):
		// The backend had nothing to say; the fallback stands in for a
		// real answer and stays in memory.
		log.Warn().Err(err).Str("channel", m.ChannelID).Msg("empty completion, using fallback")
		if sendErr := r.Gateway.Reply(m.ChannelID, m.MessageID, persona.FallbackEmpty); sendErr != nil {
			return sendErr
		}
		r.Store.Record(key, persona.FallbackEmpty, mind.SpeakerBot)
		return nil

	default:
		// A failed call produced no answer at all; don't cement the
		// stopgap line into memory.
		log.Error().Err(err).Str("channel", m.ChannelID).Msg("reply generation failed")
		return r.Gateway.Reply(m.ChannelID, m.MessageID, persona.FallbackError)
	}
}

func (r *Router) keepTyping(channelID string, done <-chan struct{}) {
	_ = r.Gateway.Typing(channelID)
	ticker := time.NewTicker(8 * time.Second)
	defer ticker.Stop()
	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			_ = r.Gateway.Typing(channelID)
		}
	}
}

func (r *Router) choose(list []string) string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return persona.Choose(r.rand, list)
}

func (r *Router) roll() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Float64()
}
