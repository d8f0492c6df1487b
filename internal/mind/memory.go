package mind

import (
	"sort"
	"strings"
	"sync"
	"time"
)

// Store keeps the most recent turns per conversation thread. Safe for
// concurrent use; the message handler writes while the idle loop reads.
type Store struct {
	mu    sync.RWMutex
	depth int
	turns map[Key][]Turn
	now   func() time.Time
}

// NewStore creates a store keeping the last depth turns per thread.
func NewStore(depth int) *Store {
	if depth < 1 {
		depth = 1
	}
	return &Store{
		depth: depth,
		turns: make(map[Key][]Turn),
		now:   time.Now,
	}
}

// Record appends a turn with the current timestamp, evicting the oldest
// entry when the thread is at capacity.
func (s *Store) Record(key Key, text string, speaker Speaker) {
	s.mu.Lock()
	defer s.mu.Unlock()

	h := append(s.turns[key], Turn{At: s.now(), Text: text, Speaker: speaker})
	if len(h) > s.depth {
		h = h[len(h)-s.depth:]
	}
	s.turns[key] = h
}

// Context returns the thread's turns, oldest first. The slice is a copy.
func (s *Store) Context(key Key) []Turn {
	s.mu.RLock()
	defer s.mu.RUnlock()

	h := s.turns[key]
	out := make([]Turn, len(h))
	copy(out, h)
	return out
}

// Render produces the transcript used in prompts, or NoHistory for an
// unseen thread.
func (s *Store) Render(key Key) string {
	return renderTurns(s.Context(key))
}

// Channels returns every channel with at least one recorded turn, for the
// idle loop to consider.
func (s *Store) Channels() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	seen := make(map[string]bool)
	var out []string
	for key, h := range s.turns {
		if len(h) == 0 || seen[key.ChannelID] {
			continue
		}
		seen[key.ChannelID] = true
		out = append(out, key.ChannelID)
	}
	sort.Strings(out)
	return out
}

// ChannelContext merges recent turns across every user in the channel,
// ordered by time and capped to twice the per-thread depth. This is the
// view the idle loop generates follow-ups from.
func (s *Store) ChannelContext(channelID string) []Turn {
	s.mu.RLock()
	var merged []Turn
	for key, h := range s.turns {
		if key.ChannelID == channelID {
			merged = append(merged, h...)
		}
	}
	s.mu.RUnlock()

	sort.SliceStable(merged, func(i, j int) bool { return merged[i].At.Before(merged[j].At) })
	if limit := s.depth * 2; len(merged) > limit {
		merged = merged[len(merged)-limit:]
	}
	return merged
}

// RenderChannel renders the merged channel view for prompt construction.
func (s *Store) RenderChannel(channelID string) string {
	return renderTurns(s.ChannelContext(channelID))
}

func renderTurns(turns []Turn) string {
	if len(turns) == 0 {
		return NoHistory
	}
	var b strings.Builder
	b.WriteString("Recent conversation history:\n")
	for _, t := range turns {
		if t.Speaker == SpeakerBot {
			b.WriteString("Froggy: ")
		} else {
			b.WriteString("Friend: ")
		}
		b.WriteString(t.Text)
		b.WriteString("\n")
	}
	return b.String()
}
