package fun

import (
	"fmt"

	"github.com/bwmarrin/discordgo"

	"froggy/internal/command"
)

var hugs = []string{
	"*gives %s a big froggy hug* 🤗",
	"*jumps up and hugs %s* 💚",
	"*wraps %s in a cozy lily pad hug* 🌿",
	"*shares some wholesome froggy love with %s* 💝",
	"*bounces over to %s for a friendly hug* 🐸",
}

type HugCommand struct{}

func (c *HugCommand) Name() string        { return "hug" }
func (c *HugCommand) Description() string { return "Give someone a big froggy hug!" }
func (c *HugCommand) Category() string    { return "🎉 Fun" }
func (c *HugCommand) RequireAdmin() bool  { return false }

func (c *HugCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionUser,
				Name:        "user",
				Description: "Who needs a hug?",
				Required:    true,
			},
		},
	}
}

func (c *HugCommand) Run(ctx *command.SlashContext) error {
	user := targetUser(ctx, "user")
	if user == nil {
		return command.RespondEphemeral(ctx.Session, ctx.Event, command.FailureReply)
	}
	line := fmt.Sprintf(ctx.Deps.Choose(hugs), user.Mention())
	return command.Respond(ctx.Session, ctx.Event, line)
}

// targetUser pulls a user option by name, nil when absent.
func targetUser(ctx *command.SlashContext, name string) *discordgo.User {
	for _, opt := range ctx.Event.ApplicationCommandData().Options {
		if opt.Name == name {
			return opt.UserValue(ctx.Session)
		}
	}
	return nil
}

func init() {
	command.Register(&HugCommand{}, command.WithCommandLog())
}
