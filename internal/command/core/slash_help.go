package core

import (
	"github.com/bwmarrin/discordgo"

	"froggy/internal/command"
)

const helpText = `🐸 **Froggy's Commands** 🐸
• ` + "`/help`" + ` - Show this help message
• ` + "`/dm`" + ` - Send a friendly DM to someone
• ` + "`/joke`" + ` - Hear a funny frog joke
• ` + "`/fact`" + ` - Learn an interesting frog fact
• ` + "`/hug`" + ` - Give someone a virtual hug
• ` + "`/compliment`" + ` - Give someone a nice compliment
• ` + "`/annoy`" + ` - Playfully annoy someone
• ` + "`/report`" + ` - Report a message to staff
• ` + "`/setstaff`" + ` - Set staff channel (Admin only)
• ` + "`/shutdown`" + ` - Shutdown the bot (Admin only)

🛡️ **Moderation Features** 🛡️
• Bad word filter
• Mean message detection
• Staff reporting system

Just mention me and we can talk about anything! I remember our
conversations and might hop in from time to time to check how things
are going!`

type HelpCommand struct{}

func (c *HelpCommand) Name() string        { return "help" }
func (c *HelpCommand) Description() string { return "Show all available commands" }
func (c *HelpCommand) Category() string    { return "🐸 General" }
func (c *HelpCommand) RequireAdmin() bool  { return false }

func (c *HelpCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
	}
}

func (c *HelpCommand) Run(ctx *command.SlashContext) error {
	return command.Respond(ctx.Session, ctx.Event, helpText)
}

func init() {
	command.Register(&HelpCommand{}, command.WithCommandLog())
}
