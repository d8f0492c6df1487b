// Package chat contains the per-message decision flow: moderation first,
// then memory, then the mention-triggered AI reply.
package chat

// Message is one inbound message event, already translated from the
// platform's own shape.
type Message struct {
	ChannelID   string
	MessageID   string
	AuthorID    string
	AuthorName  string
	AuthorIsBot bool
	IsSelf      bool
	MentionsBot bool
	Content     string
}

// Gateway is the slice of the platform session the router needs.
// The production implementation wraps discordgo; tests use fakes.
type Gateway interface {
	Send(channelID, text string) error
	Reply(channelID, messageID, text string) error
	React(channelID, messageID, emoji string) error
	Typing(channelID string) error
}
