package usecases

import (
	"sync"
	"time"

	"github.com/disgoorg/snowflake/v2"
	"github.com/sglre6355/lurkbot/internal/modules/presence/application/ports"
)

// Config holds the scheduling tunables for the presence service.
type Config struct {
	// JoinProbability gates each join evaluation; a uniform [0,1) draw that
	// strictly exceeds it skips the join.
	JoinProbability float64

	// JoinDelayMin and JoinDelayMax bound the randomized delay before a
	// scheduled join fires. Both ends are inclusive.
	JoinDelayMin time.Duration
	JoinDelayMax time.Duration

	// MaxSessionEnabled enables the bounded-session behavior: each
	// successful join arms a forced disconnect after a randomized interval.
	MaxSessionEnabled bool

	// MaxSessionMin and MaxSessionMax bound the randomized session
	// duration. Both ends are inclusive.
	MaxSessionMin time.Duration
	MaxSessionMax time.Duration
}

// pendingJoin is the bookkeeping record for a scheduled-but-unexecuted join.
type pendingJoin struct {
	GuildID     snowflake.ID
	ChannelID   snowflake.ID
	ChannelName string
	Timer       ports.Timer
}

// pendingDisconnect is the bookkeeping record for a scheduled forced teardown.
type pendingDisconnect struct {
	GuildID snowflake.ID
	Timer   ports.Timer
}

// presenceState is the process-wide presence state. The bot holds at most one
// voice session across the whole process; the state is intentionally not
// scoped per guild.
type presenceState struct {
	session           ports.VoiceSession
	pendingJoin       *pendingJoin
	pendingDisconnect *pendingDisconnect
}

// PresenceService simulates organic voice-channel presence: it reacts to
// voice membership changes by scheduling randomized joins into occupied
// channels and leaving channels that empty out.
//
// All state mutation happens under mu. Timer callbacks fire on their own
// goroutines and re-acquire the lock; a callback whose descriptor is no
// longer the current one returns without side effects, which makes a
// cancellation that raced the firing safe.
type PresenceService struct {
	cfg       Config
	transport ports.VoiceTransport
	browser   ports.GuildBrowser
	scheduler ports.Scheduler
	rand      ports.RandSource

	mu    sync.Mutex
	state presenceState
}

// NewPresenceService creates a new PresenceService.
func NewPresenceService(
	cfg Config,
	transport ports.VoiceTransport,
	browser ports.GuildBrowser,
	scheduler ports.Scheduler,
	rand ports.RandSource,
) *PresenceService {
	return &PresenceService{
		cfg:       cfg,
		transport: transport,
		browser:   browser,
		scheduler: scheduler,
		rand:      rand,
	}
}

// HandleVoiceActivity processes one voice membership-change notification for
// the given guild. Join scheduling and leave evaluation both run on every
// notification; their mutual exclusion comes from the state preconditions,
// not from any further guard.
func (p *PresenceService) HandleVoiceActivity(guildID snowflake.ID) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.evaluateJoin(guildID)
	p.evaluateLeave(guildID)
}

// Shutdown cancels all pending timers and tears down an active voice session.
func (p *PresenceService) Shutdown() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.cancelPendingJoin()
	p.cancelPendingDisconnect()

	if p.state.session == nil {
		return nil
	}
	err := p.state.session.Disconnect()
	p.state.session = nil
	return err
}

// cancelPendingJoin stops and clears the pending-join descriptor, if any.
// Caller must hold p.mu.
func (p *PresenceService) cancelPendingJoin() {
	if p.state.pendingJoin == nil {
		return
	}
	p.state.pendingJoin.Timer.Stop()
	p.state.pendingJoin = nil
}

// cancelPendingDisconnect stops and clears the pending-disconnect descriptor,
// if any. Caller must hold p.mu.
func (p *PresenceService) cancelPendingDisconnect() {
	if p.state.pendingDisconnect == nil {
		return
	}
	p.state.pendingDisconnect.Timer.Stop()
	p.state.pendingDisconnect = nil
}

// randomDelay draws a uniform duration in [min, max] inclusive, at
// millisecond granularity.
func (p *PresenceService) randomDelay(min, max time.Duration) time.Duration {
	if max <= min {
		return min
	}
	steps := int((max-min)/time.Millisecond) + 1
	return min + time.Duration(p.rand.IntN(steps))*time.Millisecond
}
