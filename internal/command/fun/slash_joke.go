// Package fun holds the lighthearted canned-response commands. Each one
// formats a template and sends it; none touch conversation memory.
package fun

import (
	"github.com/bwmarrin/discordgo"

	"froggy/internal/command"
)

var jokes = []string{
	"What do you call a frog that's illegally parked? Toad! 🚗",
	"What kind of shoes do frogs wear? Open toad! 👞",
	"What happened to the frog's car when he parked it? It got toad away! 🚙",
	"What do you call a frog that wants to be a cowboy? Hoppalong Cassidy! 🤠",
	"Why are frogs so happy? They eat whatever bugs them! 🪲",
	"What's a frog's favorite game? Croaket! 🏏",
	"What do you call a frog who wants to be a gardener? A hop-ticulturist! 🌺",
	"Why did the frog ride a bicycle? He was too tired to hop! 🚲",
	"What's green and plays the trumpet? A tooting fruity! 🎺",
	"How does a frog feel when he has a broken leg? Unhoppy! 🤕",
}

type JokeCommand struct{}

func (c *JokeCommand) Name() string        { return "joke" }
func (c *JokeCommand) Description() string { return "Hear a froggy joke!" }
func (c *JokeCommand) Category() string    { return "🎉 Fun" }
func (c *JokeCommand) RequireAdmin() bool  { return false }

func (c *JokeCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
	}
}

func (c *JokeCommand) Run(ctx *command.SlashContext) error {
	return command.Respond(ctx.Session, ctx.Event, ctx.Deps.Choose(jokes))
}

func init() {
	command.Register(&JokeCommand{}, command.WithCommandLog())
}
