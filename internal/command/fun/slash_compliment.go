package fun

import (
	"fmt"

	"github.com/bwmarrin/discordgo"

	"froggy/internal/command"
)

var compliments = []string{
	"Hey %s, you're toad-ally awesome! 🌟",
	"%s, your presence makes every lily pad brighter! ✨",
	"You're as cool as a frog in a pond, %s! 😎",
	"Wow %s, you're absolutely ribbit-ing! 💫",
	"Just hopping by to say you're amazing, %s! 🐸",
	"%s, you make the world a better place! 🌍",
	"You've got a heart of gold, %s! 💝",
	"Your smile lights up the pond, %s! ⭐",
	"You're doing great things, %s! Keep hopping forward! 🌈",
	"The world is lucky to have you, %s! 🍀",
}

type ComplimentCommand struct{}

func (c *ComplimentCommand) Name() string        { return "compliment" }
func (c *ComplimentCommand) Description() string { return "Give someone a nice compliment!" }
func (c *ComplimentCommand) Category() string    { return "🎉 Fun" }
func (c *ComplimentCommand) RequireAdmin() bool  { return false }

func (c *ComplimentCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionUser,
				Name:        "user",
				Description: "Who deserves a compliment?",
				Required:    true,
			},
		},
	}
}

func (c *ComplimentCommand) Run(ctx *command.SlashContext) error {
	user := targetUser(ctx, "user")
	if user == nil {
		return command.RespondEphemeral(ctx.Session, ctx.Event, command.FailureReply)
	}
	line := fmt.Sprintf(ctx.Deps.Choose(compliments), user.Mention())
	return command.Respond(ctx.Session, ctx.Event, line)
}

func init() {
	command.Register(&ComplimentCommand{}, command.WithCommandLog())
}
