package discord

import "github.com/bwmarrin/discordgo"

// sessionGateway adapts a discordgo session to the narrow send surface
// the router and the reengagement loop depend on.
type sessionGateway struct {
	dg *discordgo.Session
}

func (g *sessionGateway) Send(channelID, text string) error {
	_, err := g.dg.ChannelMessageSend(channelID, text)
	return err
}

func (g *sessionGateway) Reply(channelID, messageID, text string) error {
	_, err := g.dg.ChannelMessageSendReply(channelID, text, &discordgo.MessageReference{
		ChannelID: channelID,
		MessageID: messageID,
	})
	return err
}

func (g *sessionGateway) React(channelID, messageID, emoji string) error {
	return g.dg.MessageReactionAdd(channelID, messageID, emoji)
}

func (g *sessionGateway) Typing(channelID string) error {
	return g.dg.ChannelTyping(channelID)
}
