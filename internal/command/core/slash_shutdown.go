package core

import (
	"github.com/bwmarrin/discordgo"

	"froggy/internal/command"
)

type ShutdownCommand struct{}

func (c *ShutdownCommand) Name() string        { return "shutdown" }
func (c *ShutdownCommand) Description() string { return "Emergency shutdown of the bot (Admin only)" }
func (c *ShutdownCommand) Category() string    { return "🛠️ Maintenance" }
func (c *ShutdownCommand) RequireAdmin() bool  { return true }

func (c *ShutdownCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
	}
}

func (c *ShutdownCommand) Run(ctx *command.SlashContext) error {
	// Answer before cancelling so the interaction doesn't show as failed.
	if err := command.Respond(ctx.Session, ctx.Event, "Ribbit... time for a nap! 💤"); err != nil {
		return err
	}
	if ctx.Deps.Shutdown != nil {
		ctx.Deps.Shutdown()
	}
	return nil
}

func init() {
	command.Register(&ShutdownCommand{}, command.WithAdminOnly(), command.WithCommandLog())
}
