package fun

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog/log"

	"froggy/internal/command"
)

type DMCommand struct{}

func (c *DMCommand) Name() string        { return "dm" }
func (c *DMCommand) Description() string { return "Send a friendly DM to someone!" }
func (c *DMCommand) Category() string    { return "🎉 Fun" }
func (c *DMCommand) RequireAdmin() bool  { return false }

func (c *DMCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionUser,
				Name:        "user",
				Description: "Who should I message?",
				Required:    true,
			},
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "message",
				Description: "What friendly message should I send?",
				Required:    true,
			},
		},
	}
}

func (c *DMCommand) Run(ctx *command.SlashContext) error {
	user := targetUser(ctx, "user")
	var message string
	for _, opt := range ctx.Event.ApplicationCommandData().Options {
		if opt.Name == "message" {
			message = opt.StringValue()
		}
	}
	if user == nil || message == "" {
		return command.RespondEphemeral(ctx.Session, ctx.Event, command.FailureReply)
	}

	sender := ctx.Event.Member.User

	dm, err := ctx.Session.UserChannelCreate(user.ID)
	if err == nil {
		_, err = ctx.Session.ChannelMessageSend(dm.ID,
			fmt.Sprintf("🐸 Ribbit! Message from %s: %s", sender.Username, message))
	}
	if err != nil {
		log.Info().Err(err).Str("user", user.ID).Msg("dm delivery failed")
		return command.RespondEphemeral(ctx.Session, ctx.Event,
			"Oops! I couldn't send a DM to that user. They might have DMs disabled!")
	}

	return command.RespondEphemeral(ctx.Session, ctx.Event,
		fmt.Sprintf("Message sent to %s! 📨", user.Username))
}

func init() {
	command.Register(&DMCommand{}, command.WithCommandLog())
}
