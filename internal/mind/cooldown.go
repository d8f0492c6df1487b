package mind

import (
	"sync"
	"time"
)

// Cooldowns tracks when the bot last initiated contact per channel, so
// the idle loop doesn't pester an active conversation.
type Cooldowns struct {
	mu   sync.Mutex
	last map[string]time.Time
}

func NewCooldowns() *Cooldowns {
	return &Cooldowns{last: make(map[string]time.Time)}
}

// Eligible reports whether the channel may receive a bot-initiated
// message. A channel never marked is eligible immediately.
func (c *Cooldowns) Eligible(channelID string, now time.Time, cooldown time.Duration) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	last, ok := c.last[channelID]
	if !ok {
		return true
	}
	return now.Sub(last) >= cooldown
}

// Mark records a bot-initiated interaction for the channel.
func (c *Cooldowns) Mark(channelID string, now time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.last[channelID] = now
}
