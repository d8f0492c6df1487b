package fun

import (
	"github.com/bwmarrin/discordgo"

	"froggy/internal/command"
)

var facts = []string{
	"A group of frogs is called an army! 🐸🐸🐸",
	"Some frogs can jump up to 20 times their body length! 🦿",
	"There are over 5,000 species of frogs worldwide! 🌍",
	"The glass frog has transparent skin! You can see its organs! 👀",
	"Some frogs can survive being frozen solid! ❄️",
	"The smallest frog in the world is smaller than a dime! 🪙",
	"Frogs don't drink water - they absorb it through their skin! 💧",
	"A frog's eyes help it swallow food - they push the food down! 👁️",
	"Some frogs can glide through the air like flying squirrels! ✈️",
	"Frogs have been around for more than 200 million years! 🦕",
}

type FactCommand struct{}

func (c *FactCommand) Name() string        { return "fact" }
func (c *FactCommand) Description() string { return "Learn an interesting frog fact!" }
func (c *FactCommand) Category() string    { return "🎉 Fun" }
func (c *FactCommand) RequireAdmin() bool  { return false }

func (c *FactCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
	}
}

func (c *FactCommand) Run(ctx *command.SlashContext) error {
	return command.Respond(ctx.Session, ctx.Event, ctx.Deps.Choose(facts))
}

func init() {
	command.Register(&FactCommand{}, command.WithCommandLog())
}
