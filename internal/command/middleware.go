package command

import (
	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog/log"
)

type Middleware func(Command) Command

type wrappedCommand struct {
	Command
	wrap func(ctx *SlashContext) error
}

func (w *wrappedCommand) Run(ctx *SlashContext) error {
	return w.wrap(ctx)
}

// WithAdminOnly refuses invocations by non-administrators, in character.
func WithAdminOnly() Middleware {
	return func(cmd Command) Command {
		return &wrappedCommand{
			Command: cmd,
			wrap: func(ctx *SlashContext) error {
				member := ctx.Event.Member
				if member == nil || member.Permissions&discordgo.PermissionAdministrator == 0 {
					return RespondEphemeral(ctx.Session, ctx.Event,
						"Nice try! But that's an admins-only trick! 🐸")
				}
				return cmd.Run(ctx)
			},
		}
	}
}

// WithCommandLog logs every invocation.
func WithCommandLog() Middleware {
	return func(cmd Command) Command {
		return &wrappedCommand{
			Command: cmd,
			wrap: func(ctx *SlashContext) error {
				userID := ""
				if ctx.Event.Member != nil && ctx.Event.Member.User != nil {
					userID = ctx.Event.Member.User.ID
				}
				log.Info().
					Str("command", cmd.Name()).
					Str("guild", ctx.Event.GuildID).
					Str("channel", ctx.Event.ChannelID).
					Str("user", userID).
					Msg("command invoked")
				return cmd.Run(ctx)
			},
		}
	}
}
