package chat

import (
	"context"
	"errors"
	"math/rand"
	"strings"
	"sync"
	"testing"
	"time"

	"froggy/internal/compose"
	"froggy/internal/mind"
	"froggy/internal/moderation"
	"froggy/internal/persona"
)

// fakeGateway is mutex-guarded: the router's typing keepalive runs on its
// own goroutine.
type fakeGateway struct {
	mu        sync.Mutex
	sent      []string
	replies   []string
	reactions []string
	typing    int
}

func (g *fakeGateway) Send(channelID, text string) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.sent = append(g.sent, text)
	return nil
}

func (g *fakeGateway) Reply(channelID, messageID, text string) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.replies = append(g.replies, text)
	return nil
}

func (g *fakeGateway) React(channelID, messageID, emoji string) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.reactions = append(g.reactions, emoji)
	return nil
}

func (g *fakeGateway) Typing(channelID string) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.typing++
	return nil
}

type stubComposer struct {
	reply string
	err   error
	calls int
}

func (s *stubComposer) Reply(ctx context.Context, history, incoming string) (string, error) {
	s.calls++
	return s.reply, s.err
}

func newTestRouter(composer *stubComposer, gw *fakeGateway) *Router {
	filter := moderation.NewFilter([]string{"badword1"}, []string{"stupid"})
	r := NewRouter(filter, mind.NewStore(5), mind.NewCooldowns(), composer, gw, time.Second, 0)
	r.rand = rand.New(rand.NewSource(7))
	return r
}

func userMessage(content string, mentions bool) Message {
	return Message{
		ChannelID:   "c1",
		MessageID:   "m1",
		AuthorID:    "u1",
		AuthorName:  "alice",
		MentionsBot: mentions,
		Content:     content,
	}
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func TestHandleIgnoresOwnMessages(t *testing.T) {
	composer := &stubComposer{}
	gw := &fakeGateway{}
	r := newTestRouter(composer, gw)

	m := userMessage("hello @froggy", true)
	m.IsSelf = true
	if err := r.Handle(context.Background(), m); err != nil {
		t.Fatal(err)
	}
	if len(gw.replies) != 0 || composer.calls != 0 {
		t.Error("own messages must be dropped outright")
	}
}

func TestHandleBannedContentPrecedesEverything(t *testing.T) {
	composer := &stubComposer{reply: "should never be used"}
	gw := &fakeGateway{}
	r := newTestRouter(composer, gw)

	// Banned term, hostile term, and a mention all at once: the banned
	// check must win.
	err := r.Handle(context.Background(), userMessage("you stupid badword1", true))
	if err != nil {
		t.Fatal(err)
	}

	if composer.calls != 0 {
		t.Error("composer invoked for a banned message")
	}
	if len(gw.replies) != 1 || !contains(persona.Pushback, gw.replies[0]) {
		t.Errorf("reply = %v, want a pushback template", gw.replies)
	}
	if got := r.Store.Context(mind.Key{ChannelID: "c1", UserID: "u1"}); len(got) != 0 {
		t.Error("banned message must not be recorded")
	}
}

func TestHandleHostileMention(t *testing.T) {
	composer := &stubComposer{}
	gw := &fakeGateway{}
	r := newTestRouter(composer, gw)

	if err := r.Handle(context.Background(), userMessage("you are stupid", true)); err != nil {
		t.Fatal(err)
	}
	if len(gw.replies) != 1 || !contains(persona.DeEscalation, gw.replies[0]) {
		t.Errorf("reply = %v, want a de-escalation template", gw.replies)
	}
	if composer.calls != 0 {
		t.Error("hostile mention must not reach reply generation")
	}
}

func TestHandleHostileWithoutMentionIsNormal(t *testing.T) {
	composer := &stubComposer{}
	gw := &fakeGateway{}
	r := newTestRouter(composer, gw)

	if err := r.Handle(context.Background(), userMessage("this game is stupid", false)); err != nil {
		t.Fatal(err)
	}
	if len(gw.replies) != 0 {
		t.Error("hostility check applies only when the bot is addressed")
	}
	if got := r.Store.Context(mind.Key{ChannelID: "c1", UserID: "u1"}); len(got) != 1 {
		t.Error("ordinary message should be recorded")
	}
}

func TestHandleMentionSuccess(t *testing.T) {
	composer := &stubComposer{reply: "Hi there, friend!"}
	gw := &fakeGateway{}
	r := newTestRouter(composer, gw)

	if err := r.Handle(context.Background(), userMessage("hello", true)); err != nil {
		t.Fatal(err)
	}

	if len(gw.replies) != 1 || gw.replies[0] != "Hi there, friend!" {
		t.Fatalf("replies = %v", gw.replies)
	}

	key := mind.Key{ChannelID: "c1", UserID: "u1"}
	turns := r.Store.Context(key)
	if len(turns) != 2 {
		t.Fatalf("recorded %d turns, want USER then BOT", len(turns))
	}
	if turns[0].Speaker != mind.SpeakerUser || turns[0].Text != "hello" {
		t.Errorf("turn[0] = %+v", turns[0])
	}
	if turns[1].Speaker != mind.SpeakerBot || turns[1].Text != "Hi there, friend!" {
		t.Errorf("turn[1] = %+v", turns[1])
	}
	if r.Cooldowns.Eligible("c1", r.now(), time.Minute) {
		t.Error("cooldown should be marked after a successful reply")
	}
}

func TestHandleMentionReactionChance(t *testing.T) {
	composer := &stubComposer{reply: "ribbit"}
	gw := &fakeGateway{}
	r := newTestRouter(composer, gw)
	r.ReactionChance = 1.0

	if err := r.Handle(context.Background(), userMessage("hello", true)); err != nil {
		t.Fatal(err)
	}
	if len(gw.reactions) != 1 || gw.reactions[0] != persona.Reaction {
		t.Errorf("reactions = %v, want one %s", gw.reactions, persona.Reaction)
	}
}

func TestHandleEmptyReplyFallbackRecorded(t *testing.T) {
	composer := &stubComposer{err: compose.ErrEmptyReply}
	gw := &fakeGateway{}
	r := newTestRouter(composer, gw)

	if err := r.Handle(context.Background(), userMessage("hello", true)); err != nil {
		t.Fatal(err)
	}
	if len(gw.replies) != 1 || gw.replies[0] != persona.FallbackEmpty {
		t.Fatalf("replies = %v, want empty-completion fallback", gw.replies)
	}

	turns := r.Store.Context(mind.Key{ChannelID: "c1", UserID: "u1"})
	if len(turns) != 2 || turns[1].Text != persona.FallbackEmpty {
		t.Errorf("empty-completion fallback should be recorded as a bot turn, got %+v", turns)
	}
}

func TestHandleGenerationErrorFallbackNotRecorded(t *testing.T) {
	composer := &stubComposer{err: errors.New("backend down")}
	gw := &fakeGateway{}
	r := newTestRouter(composer, gw)

	if err := r.Handle(context.Background(), userMessage("hello", true)); err != nil {
		t.Fatal(err)
	}
	if len(gw.replies) != 1 || gw.replies[0] != persona.FallbackError {
		t.Fatalf("replies = %v, want error fallback", gw.replies)
	}

	turns := r.Store.Context(mind.Key{ChannelID: "c1", UserID: "u1"})
	if len(turns) != 1 || turns[0].Speaker != mind.SpeakerUser {
		t.Errorf("error fallback must not be recorded, got %+v", turns)
	}
	if !r.Cooldowns.Eligible("c1", r.now(), time.Minute) {
		t.Error("failed reply must not mark the cooldown")
	}
}

func TestHandleBotAuthorNotRecorded(t *testing.T) {
	composer := &stubComposer{}
	gw := &fakeGateway{}
	r := newTestRouter(composer, gw)

	m := userMessage("beep boop", false)
	m.AuthorIsBot = true
	if err := r.Handle(context.Background(), m); err != nil {
		t.Fatal(err)
	}
	if got := r.Store.Context(mind.Key{ChannelID: "c1", UserID: "u1"}); len(got) != 0 {
		t.Error("bot-authored messages must not enter memory")
	}
}

func TestHandleHistoryFlowsIntoPrompt(t *testing.T) {
	var seenHistory string
	composer := &stubComposer{reply: "ok"}
	gw := &fakeGateway{}
	r := newTestRouter(composer, gw)
	r.Composer = composerFunc(func(ctx context.Context, history, incoming string) (string, error) {
		seenHistory = history
		return "ok", nil
	})

	// First exchange seeds memory; second one should see it.
	if err := r.Handle(context.Background(), userMessage("I like ponds", true)); err != nil {
		t.Fatal(err)
	}
	if err := r.Handle(context.Background(), userMessage("remember me?", true)); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(seenHistory, "I like ponds") {
		t.Errorf("second reply should see earlier history, got:\n%s", seenHistory)
	}
}

type composerFunc func(ctx context.Context, history, incoming string) (string, error)

func (f composerFunc) Reply(ctx context.Context, history, incoming string) (string, error) {
	return f(ctx, history, incoming)
}
