// Package command is the slash command framework: the Command interface,
// the registry, and the middleware wrappers.
package command

import (
	"math/rand"
	"sync"

	"github.com/bwmarrin/discordgo"

	"froggy/internal/mind"
	"froggy/internal/moderation"
	"froggy/internal/persona"
)

type Command interface {
	Name() string
	Description() string
	Category() string
	RequireAdmin() bool
	SlashDefinition() *discordgo.ApplicationCommand
	Run(ctx *SlashContext) error
}

// SlashContext is passed to every command invocation.
type SlashContext struct {
	Session *discordgo.Session
	Event   *discordgo.InteractionCreate
	Deps    *Deps
}

// Deps carries the shared collaborators commands may need. Commands only
// touch what they declare; most use none of it.
type Deps struct {
	Store     *mind.Store
	Cooldowns *mind.Cooldowns
	Reports   *moderation.Reports

	// Shutdown cancels the root context; wired by main.
	Shutdown func()

	mu   sync.Mutex
	rand *rand.Rand
}

// NewDeps creates a Deps with the given random source for template
// selection. Pass a seeded source in tests for determinism.
func NewDeps(r *rand.Rand) *Deps {
	return &Deps{rand: r}
}

// Choose picks a uniformly random element of list.
func (d *Deps) Choose(list []string) string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return persona.Choose(d.rand, list)
}
