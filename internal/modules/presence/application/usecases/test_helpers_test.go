package usecases

import (
	"time"

	"github.com/disgoorg/snowflake/v2"
	"github.com/sglre6355/lurkbot/internal/modules/presence/application/ports"
)

// fakeTimer records its scheduling and supports manual firing.
type fakeTimer struct {
	delay   time.Duration
	fn      func()
	stopped bool
	fired   bool

	// stopFails simulates a cancellation that lost the race to the firing:
	// Stop reports false and the callback still runs.
	stopFails bool
}

func (t *fakeTimer) Stop() bool {
	if t.stopFails || t.fired {
		return false
	}
	t.stopped = true
	return true
}

// Fire runs the callback unless the timer was successfully stopped.
func (t *fakeTimer) Fire() {
	if t.stopped || t.fired {
		return
	}
	t.fired = true
	t.fn()
}

type fakeScheduler struct {
	timers    []*fakeTimer
	stopFails bool
}

func (s *fakeScheduler) AfterFunc(d time.Duration, fn func()) ports.Timer {
	t := &fakeTimer{delay: d, fn: fn, stopFails: s.stopFails}
	s.timers = append(s.timers, t)
	return t
}

func (s *fakeScheduler) last() *fakeTimer {
	if len(s.timers) == 0 {
		return nil
	}
	return s.timers[len(s.timers)-1]
}

// fakeRand replays queued draws; exhausted queues yield zero.
type fakeRand struct {
	floats []float64
	ints   []int
}

func (r *fakeRand) Float64() float64 {
	if len(r.floats) == 0 {
		return 0
	}
	v := r.floats[0]
	r.floats = r.floats[1:]
	return v
}

func (r *fakeRand) IntN(n int) int {
	if len(r.ints) == 0 {
		return 0
	}
	v := r.ints[0]
	r.ints = r.ints[1:]
	return v % n
}

type fakeBrowser struct {
	channels map[snowflake.ID][]ports.VoiceChannel
	err      error
}

func newFakeBrowser() *fakeBrowser {
	return &fakeBrowser{
		channels: make(map[snowflake.ID][]ports.VoiceChannel),
	}
}

func (b *fakeBrowser) VoiceChannels(guildID snowflake.ID) ([]ports.VoiceChannel, error) {
	if b.err != nil {
		return nil, b.err
	}
	return b.channels[guildID], nil
}

func (b *fakeBrowser) VoiceChannel(
	guildID, channelID snowflake.ID,
) (*ports.VoiceChannel, error) {
	if b.err != nil {
		return nil, b.err
	}
	for i := range b.channels[guildID] {
		if b.channels[guildID][i].ID == channelID {
			return &b.channels[guildID][i], nil
		}
	}
	return nil, nil
}

type fakeSession struct {
	channelID     snowflake.ID
	disconnects   int
	disconnectErr error
}

func (s *fakeSession) ChannelID() snowflake.ID { return s.channelID }

func (s *fakeSession) Disconnect() error {
	s.disconnects++
	return s.disconnectErr
}

type fakeTransport struct {
	joinErr error
	joined  []snowflake.ID
	tracked map[snowflake.ID]ports.VoiceSession
}

func newFakeTransport() *fakeTransport {
	return &fakeTransport{
		tracked: make(map[snowflake.ID]ports.VoiceSession),
	}
}

func (t *fakeTransport) Join(guildID, channelID snowflake.ID) (ports.VoiceSession, error) {
	if t.joinErr != nil {
		return nil, t.joinErr
	}
	session := &fakeSession{channelID: channelID}
	t.joined = append(t.joined, channelID)
	t.tracked[guildID] = session
	return session, nil
}

func (t *fakeTransport) TrackedSession(guildID snowflake.ID) ports.VoiceSession {
	session, ok := t.tracked[guildID]
	if !ok {
		return nil
	}
	return session
}

func testConfig() Config {
	return Config{
		JoinProbability:   0.8,
		JoinDelayMin:      60 * time.Second,
		JoinDelayMax:      5 * time.Minute,
		MaxSessionEnabled: true,
		MaxSessionMin:     3 * time.Hour,
		MaxSessionMax:     8 * time.Hour,
	}
}
