package core

import (
	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog/log"

	"froggy/internal/command"
	"froggy/internal/moderation"
)

type ReportCommand struct{}

func (c *ReportCommand) Name() string        { return "report" }
func (c *ReportCommand) Description() string { return "Report a message to staff" }
func (c *ReportCommand) Category() string    { return "🛡️ Moderation" }
func (c *ReportCommand) RequireAdmin() bool  { return false }

func (c *ReportCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionUser,
				Name:        "user",
				Description: "The user to report",
				Required:    true,
			},
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "reason",
				Description: "Why are you reporting this message?",
				Required:    true,
			},
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "message",
				Description: "The message content to report",
				Required:    true,
			},
		},
	}
}

func (c *ReportCommand) Run(ctx *command.SlashContext) error {
	staffChannel, ok := ctx.Deps.Reports.Channel()
	if !ok {
		return command.RespondEphemeral(ctx.Session, ctx.Event,
			"No staff channel set! Ask an admin to use /setstaff first!")
	}

	var reported *discordgo.User
	var reason, message string
	for _, opt := range ctx.Event.ApplicationCommandData().Options {
		switch opt.Name {
		case "user":
			reported = opt.UserValue(ctx.Session)
		case "reason":
			reason = opt.StringValue()
		case "message":
			message = opt.StringValue()
		}
	}
	if reported == nil {
		return command.RespondEphemeral(ctx.Session, ctx.Event, command.FailureReply)
	}

	reporter := ctx.Event.Member.User
	embed := moderation.BuildEmbed(moderation.Report{
		ReporterID:   reporter.ID,
		ReporterName: reporter.Username,
		ReportedID:   reported.ID,
		ReportedName: reported.Username,
		Message:      message,
		Reason:       reason,
		ChannelID:    ctx.Event.ChannelID,
	})

	if _, err := ctx.Session.ChannelMessageSendEmbed(staffChannel, embed); err != nil {
		log.Warn().Err(err).Str("staff_channel", staffChannel).Msg("failed to deliver report")
		return command.RespondEphemeral(ctx.Session, ctx.Event,
			"Couldn't send the report to staff! Make sure I have permission to send messages in the staff channel!")
	}

	return command.RespondEphemeral(ctx.Session, ctx.Event,
		"Report sent to staff! Thank you for helping keep the server friendly! 🐸")
}

func init() {
	command.Register(&ReportCommand{}, command.WithCommandLog())
}
