package presence

import (
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/caarlos0/env/v11"
	"github.com/cockroachdb/errors"
	"github.com/sglre6355/lurkbot/internal/bot"
	"github.com/sglre6355/lurkbot/internal/modules/presence/application/usecases"
	"github.com/sglre6355/lurkbot/internal/modules/presence/infrastructure"
	"github.com/sglre6355/lurkbot/internal/modules/presence/presentation"
)

func init() {
	bot.Register(&PresenceModule{})
}

// Compile-time interface checks.
var _ bot.ConfigurableModule = (*PresenceModule)(nil)

// PresenceModule simulates organic voice-channel presence: the bot joins
// occupied voice channels after randomized delays and leaves them when the
// real participants are gone.
type PresenceModule struct {
	config        *Config
	presence      *usecases.PresenceService
	eventHandlers *presentation.EventHandlers
}

// Name returns the module name.
func (m *PresenceModule) Name() string {
	return "presence"
}

// Intents returns the gateway intents this module requires. The member
// intent is needed to resolve the bot flag of voice-channel occupants.
func (m *PresenceModule) Intents() discordgo.Intent {
	return discordgo.IntentsGuilds |
		discordgo.IntentsGuildVoiceStates |
		discordgo.IntentsGuildMembers
}

// EventHandlers returns the event handlers for this module.
func (m *PresenceModule) EventHandlers() []bot.EventHandler {
	return []bot.EventHandler{
		func(s *discordgo.Session, event *discordgo.VoiceStateUpdate) {
			m.eventHandlers.HandleVoiceStateUpdate(s, event)
		},
	}
}

// LoadConfig loads module-specific configuration from environment variables.
func (m *PresenceModule) LoadConfig() error {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	m.config = cfg
	return nil
}

// Init initializes the module.
func (m *PresenceModule) Init(deps bot.ModuleDependencies) error {
	if deps.Session == nil {
		return errors.New("presence module requires a Discord session")
	}

	gateway := infrastructure.NewDiscordGateway(deps.Session)
	rng := rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), rand.Uint64()))

	m.presence = usecases.NewPresenceService(
		usecases.Config{
			JoinProbability:   m.config.JoinProbability,
			JoinDelayMin:      m.config.JoinDelayMin,
			JoinDelayMax:      m.config.JoinDelayMax,
			MaxSessionEnabled: m.config.MaxSessionEnabled,
			MaxSessionMin:     m.config.MaxSessionMin,
			MaxSessionMax:     m.config.MaxSessionMax,
		},
		gateway,
		gateway,
		infrastructure.StdScheduler{},
		rng,
	)
	m.eventHandlers = presentation.NewEventHandlers(m.presence)

	slog.Info("presence module initialized",
		"join_probability", m.config.JoinProbability,
		"max_session_enabled", m.config.MaxSessionEnabled,
	)

	return nil
}

// Shutdown cancels pending timers and tears down an active voice session.
func (m *PresenceModule) Shutdown() error {
	if m.presence == nil {
		return nil
	}
	return m.presence.Shutdown()
}
