package core

import (
	"fmt"

	"github.com/bwmarrin/discordgo"

	"froggy/internal/command"
)

type SetStaffCommand struct{}

func (c *SetStaffCommand) Name() string { return "setstaff" }
func (c *SetStaffCommand) Description() string {
	return "Set the channel for staff reports (Admin only)"
}
func (c *SetStaffCommand) Category() string   { return "🛡️ Moderation" }
func (c *SetStaffCommand) RequireAdmin() bool { return true }

func (c *SetStaffCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:         discordgo.ApplicationCommandOptionChannel,
				Name:         "channel",
				Description:  "Where should reports go?",
				Required:     true,
				ChannelTypes: []discordgo.ChannelType{discordgo.ChannelTypeGuildText},
			},
		},
	}
}

func (c *SetStaffCommand) Run(ctx *command.SlashContext) error {
	var channelID string
	for _, opt := range ctx.Event.ApplicationCommandData().Options {
		if opt.Name == "channel" {
			channelID = opt.ChannelValue(ctx.Session).ID
		}
	}
	if channelID == "" {
		return command.RespondEphemeral(ctx.Session, ctx.Event, command.FailureReply)
	}

	ctx.Deps.Reports.SetChannel(channelID)
	return command.RespondEphemeral(ctx.Session, ctx.Event,
		fmt.Sprintf("Staff reports will now be sent to <#%s>! 🛡️", channelID))
}

func init() {
	command.Register(&SetStaffCommand{}, command.WithAdminOnly(), command.WithCommandLog())
}
