package fun

import (
	"fmt"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog/log"

	"froggy/internal/command"
)

var annoyLines = []string{
	"RIBBIT RIBBIT! 🐸",
	"*pokes with lily pad* Hey! Hey! Hey!",
	"Guess what? ...Ribbit!",
	"Did you know frogs can jump 20 times their body length? Want to see?",
	"SPLASH! 💦 Oops, did I get you wet?",
	"🎵 Croak croak croak croak croak! 🎵",
	"Hey! Want to catch some flies with me?",
	"*does a little frog dance* 🕺🐸",
	"Psst... I heard you like frogs...",
	"BOING! BOING! BOING!",
}

const (
	annoyMin   = 1
	annoyMax   = 5
	annoyDelay = 2 * time.Second
)

type AnnoyCommand struct{}

func (c *AnnoyCommand) Name() string        { return "annoy" }
func (c *AnnoyCommand) Description() string { return "Perfect for annoying people (in a friendly way!)" }
func (c *AnnoyCommand) Category() string    { return "🎉 Fun" }
func (c *AnnoyCommand) RequireAdmin() bool  { return false }

func (c *AnnoyCommand) SlashDefinition() *discordgo.ApplicationCommand {
	minTimes := float64(annoyMin)
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionUser,
				Name:        "target",
				Description: "Who should I annoy?",
				Required:    true,
			},
			{
				Type:        discordgo.ApplicationCommandOptionInteger,
				Name:        "times",
				Description: "How many times? (1-5)",
				MinValue:    &minTimes,
				MaxValue:    annoyMax,
			},
		},
	}
}

func (c *AnnoyCommand) Run(ctx *command.SlashContext) error {
	target := targetUser(ctx, "target")
	if target == nil {
		return command.RespondEphemeral(ctx.Session, ctx.Event, command.FailureReply)
	}

	times := annoyMin
	for _, opt := range ctx.Event.ApplicationCommandData().Options {
		if opt.Name == "times" {
			times = int(opt.IntValue())
		}
	}
	// The option range is enforced by the platform; clamp anyway.
	if times < annoyMin {
		times = annoyMin
	}
	if times > annoyMax {
		times = annoyMax
	}

	if err := command.RespondEphemeral(ctx.Session, ctx.Event,
		fmt.Sprintf("Time to annoy %s! 😈🐸", target.Mention())); err != nil {
		return err
	}

	session, channelID := ctx.Session, ctx.Event.ChannelID
	lines := make([]string, times)
	for i := range lines {
		lines[i] = ctx.Deps.Choose(annoyLines)
	}

	go func() {
		for _, line := range lines {
			if _, err := session.ChannelMessageSend(channelID, fmt.Sprintf("%s %s", target.Mention(), line)); err != nil {
				log.Warn().Err(err).Str("channel", channelID).Msg("annoy message failed")
				return
			}
			time.Sleep(annoyDelay)
		}
	}()
	return nil
}

func init() {
	command.Register(&AnnoyCommand{}, command.WithCommandLog())
}
