package mind

import (
	"context"
	"errors"
	"testing"
	"time"
)

type fakeComposer struct {
	reply string
	err   error
	calls int
	last  string
}

func (f *fakeComposer) Proactive(ctx context.Context, history string) (string, error) {
	f.calls++
	f.last = history
	return f.reply, f.err
}

type fakeSender struct {
	sent map[string][]string
	err  error
}

func newFakeSender() *fakeSender { return &fakeSender{sent: make(map[string][]string)} }

func (f *fakeSender) Send(channelID, text string) error {
	if f.err != nil {
		return f.err
	}
	f.sent[channelID] = append(f.sent[channelID], text)
	return nil
}

func newTestRunner(composer *fakeComposer, sender *fakeSender) *Runner {
	store := NewStore(5)
	return NewRunner(store, NewCooldowns(), composer, sender,
		time.Minute, 5*time.Minute, time.Second)
}

func TestTickSkipsChannelsWithoutHistory(t *testing.T) {
	composer := &fakeComposer{reply: "hey again!"}
	sender := newFakeSender()
	r := newTestRunner(composer, sender)

	r.Tick(context.Background())

	if composer.calls != 0 {
		t.Error("composer invoked with no history anywhere")
	}
	if len(sender.sent) != 0 {
		t.Error("message sent to a channel with empty history")
	}
}

func TestTickSendsAndMarksCooldown(t *testing.T) {
	composer := &fakeComposer{reply: "hey, how did that project go?"}
	sender := newFakeSender()
	r := newTestRunner(composer, sender)
	r.Store.Record(Key{ChannelID: "c1", UserID: "u1"}, "working on a project", SpeakerUser)

	r.Tick(context.Background())

	if got := sender.sent["c1"]; len(got) != 1 || got[0] != composer.reply {
		t.Fatalf("sent = %v, want one proactive message", got)
	}
	if composer.last == NoHistory || composer.last == "" {
		t.Error("composer should receive rendered channel history")
	}
	if r.Cooldowns.Eligible("c1", r.now(), r.Cooldown) {
		t.Error("cooldown should be marked after a successful send")
	}

	// Second tick inside the cooldown window stays quiet.
	r.Tick(context.Background())
	if len(sender.sent["c1"]) != 1 {
		t.Error("channel reengaged again before cooldown elapsed")
	}
}

func TestTickGenerationFailureLeavesCooldownUntouched(t *testing.T) {
	composer := &fakeComposer{err: errors.New("backend timeout")}
	sender := newFakeSender()
	r := newTestRunner(composer, sender)
	r.Store.Record(Key{ChannelID: "c1", UserID: "u1"}, "hello", SpeakerUser)

	r.Tick(context.Background())

	if len(sender.sent) != 0 {
		t.Error("nothing should be sent on generation failure")
	}
	if !r.Cooldowns.Eligible("c1", r.now(), r.Cooldown) {
		t.Error("failed attempt must not consume the cooldown so the next tick retries")
	}

	// Next tick retries naturally.
	composer.err = nil
	composer.reply = "still around?"
	r.Tick(context.Background())
	if len(sender.sent["c1"]) != 1 {
		t.Error("channel should be retried on the next tick")
	}
}

func TestTickSendFailureLeavesCooldownUntouched(t *testing.T) {
	composer := &fakeComposer{reply: "hello again"}
	sender := newFakeSender()
	sender.err = errors.New("missing permissions")
	r := newTestRunner(composer, sender)
	r.Store.Record(Key{ChannelID: "c1", UserID: "u1"}, "hello", SpeakerUser)

	r.Tick(context.Background())

	if !r.Cooldowns.Eligible("c1", r.now(), r.Cooldown) {
		t.Error("failed delivery must not consume the cooldown")
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	r := newTestRunner(&fakeComposer{}, newFakeSender())
	r.Interval = time.Millisecond

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		r.Run(ctx)
		close(done)
	}()

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not stop after context cancellation")
	}
}
