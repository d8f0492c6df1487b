// Package mind is the bot's conversational memory: bounded per-user
// histories, per-channel interaction cooldowns, and the idle loop that
// rejoins quiet conversations.
package mind

import "time"

// Speaker identifies who produced a turn.
type Speaker int

const (
	SpeakerUser Speaker = iota
	SpeakerBot
)

// Key scopes one conversation thread to a channel and a user.
type Key struct {
	ChannelID string
	UserID    string
}

// Turn is one recorded exchange. Immutable once recorded.
type Turn struct {
	At      time.Time
	Text    string
	Speaker Speaker
}

// NoHistory is returned by Render when a thread has no turns yet.
const NoHistory = "This is the start of the conversation."
