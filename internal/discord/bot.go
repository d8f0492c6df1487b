// Package discord wires the session to the router, the command registry,
// and the reengagement loop.
package discord

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog/log"

	"froggy/internal/chat"
	"froggy/internal/command"
	"froggy/internal/compose"
	"froggy/internal/config"
	"froggy/internal/mind"
	"froggy/internal/moderation"
	"froggy/internal/version"
)

// Bot is the Discord bot.
type Bot struct {
	cfg      *config.Config
	deps     *command.Deps
	filter   *moderation.Filter
	composer *compose.Composer

	dg     *discordgo.Session
	router *chat.Router
	runner *mind.Runner
}

func NewBot(cfg *config.Config, deps *command.Deps, filter *moderation.Filter, composer *compose.Composer) *Bot {
	return &Bot{
		cfg:      cfg,
		deps:     deps,
		filter:   filter,
		composer: composer,
	}
}

// Run connects and blocks until ctx is cancelled.
func (b *Bot) Run(ctx context.Context) error {
	dg, err := discordgo.New("Bot " + b.cfg.DiscordToken)
	if err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}
	b.dg = dg

	dg.Identify.Intents = discordgo.IntentsGuilds |
		discordgo.IntentsGuildMessages |
		discordgo.IntentsGuildMessageReactions |
		discordgo.IntentsGuildMembers |
		discordgo.IntentsDirectMessages |
		discordgo.IntentMessageContent

	gw := &sessionGateway{dg: dg}
	b.router = chat.NewRouter(b.filter, b.deps.Store, b.deps.Cooldowns, b.composer, gw,
		b.cfg.GenerateTimeout, b.cfg.ReactionChance)
	b.runner = mind.NewRunner(b.deps.Store, b.deps.Cooldowns, b.composer, gw,
		b.cfg.ReengageInterval, b.cfg.InteractionCooldown, b.cfg.GenerateTimeout)

	dg.AddHandler(b.onReady)
	dg.AddHandler(b.onGuildCreate)
	dg.AddHandler(func(s *discordgo.Session, m *discordgo.MessageCreate) {
		b.onMessageCreate(ctx, s, m)
	})
	dg.AddHandler(b.onInteractionCreate)

	if err := dg.Open(); err != nil {
		return fmt.Errorf("failed to open Discord session: %w", err)
	}
	defer dg.Close()

	go b.runner.Run(ctx)

	<-ctx.Done()
	log.Info().Msg("shutdown signal received, closing session")
	return nil
}

func (b *Bot) onReady(s *discordgo.Session, r *discordgo.Ready) {
	if err := s.UpdateGameStatus(0, "chatting with friends 🐸"); err != nil {
		log.Warn().Err(err).Msg("failed to set presence")
	}

	if b.cfg.InitSlashCommands {
		for _, g := range r.Guilds {
			if err := b.registerCommands(g.ID); err != nil {
				log.Error().Err(err).Str("guild", g.ID).Msg("slash command registration failed")
			}
		}
	} else {
		log.Info().Msg("slash command registration skipped")
	}

	log.Info().
		Str("user", s.State.User.Username).
		Int("guilds", len(r.Guilds)).
		Msgf("✅ %s is running", version.AppName)
}

func (b *Bot) onGuildCreate(s *discordgo.Session, g *discordgo.GuildCreate) {
	log.Info().Str("guild", g.ID).Str("name", g.Name).Msg("joined guild")
	if b.cfg.InitSlashCommands {
		if err := b.registerCommands(g.ID); err != nil {
			log.Error().Err(err).Str("guild", g.ID).Msg("slash command registration failed")
		}
	}
}

func (b *Bot) registerCommands(guildID string) error {
	defs := make([]*discordgo.ApplicationCommand, 0)
	for _, cmd := range command.All() {
		defs = append(defs, cmd.SlashDefinition())
	}
	_, err := b.dg.ApplicationCommandBulkOverwrite(b.dg.State.User.ID, guildID, defs)
	return err
}

func (b *Bot) onMessageCreate(ctx context.Context, s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Author == nil {
		return
	}

	mentioned := false
	for _, user := range m.Mentions {
		if user.ID == s.State.User.ID {
			mentioned = true
			break
		}
	}

	msg := chat.Message{
		ChannelID:   m.ChannelID,
		MessageID:   m.ID,
		AuthorID:    m.Author.ID,
		AuthorName:  m.Author.Username,
		AuthorIsBot: m.Author.Bot,
		IsSelf:      m.Author.ID == s.State.User.ID,
		MentionsBot: mentioned,
		Content:     m.Content,
	}

	if err := b.router.Handle(ctx, msg); err != nil {
		log.Error().Err(err).Str("channel", m.ChannelID).Msg("message handling failed")
	}
}

func (b *Bot) onInteractionCreate(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionApplicationCommand {
		return
	}

	name := i.ApplicationCommandData().Name
	cmd, ok := command.Get(name)
	if !ok {
		log.Warn().Str("command", name).Msg("unknown command")
		return
	}

	ctx := &command.SlashContext{Session: s, Event: i, Deps: b.deps}
	if err := cmd.Run(ctx); err != nil {
		log.Error().Err(err).Str("command", name).Msg("command failed")
		_ = command.RespondEphemeral(s, i, command.FailureReply)
	}
}
