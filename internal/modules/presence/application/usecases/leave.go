package usecases

import (
	"log/slog"

	"github.com/disgoorg/snowflake/v2"
)

// evaluateLeave decides whether to tear down the current voice session.
// Caller must hold p.mu.
func (p *PresenceService) evaluateLeave(guildID snowflake.ID) {
	if p.state.session == nil {
		return
	}

	// The transport is the source of truth for session liveness: if it no
	// longer tracks a session for this guild, the underlying connection died
	// externally and the local handle is stale.
	if p.transport.TrackedSession(guildID) == nil {
		slog.Info("voice session no longer tracked by transport, clearing state",
			"guild_id", guildID,
		)
		p.state.session = nil
		p.cancelPendingDisconnect()
		return
	}

	channelID := p.state.session.ChannelID()
	channel, err := p.browser.VoiceChannel(guildID, channelID)
	if err != nil {
		slog.Error("failed to resolve joined channel",
			"guild_id", guildID,
			"channel_id", channelID,
			"error", err,
		)
		return
	}

	if channel == nil {
		// The joined channel was deleted.
		slog.Info("joined channel no longer exists, leaving",
			"guild_id", guildID,
			"channel_id", channelID,
		)
		p.teardownSession(guildID)
		return
	}

	if channel.RealParticipants > 0 {
		return
	}

	slog.Info("leaving empty voice channel", "guild_id", guildID, "channel", channel.Name)
	p.teardownSession(guildID)

	// Also drop any scheduled join so the bot does not re-enter a room that
	// was just vacated. Intentionally not scoped to the vacated channel.
	p.cancelPendingJoin()
}

// teardownSession destroys the active voice session and clears the handle and
// the pending-disconnect descriptor. Caller must hold p.mu.
func (p *PresenceService) teardownSession(guildID snowflake.ID) {
	if err := p.state.session.Disconnect(); err != nil {
		slog.Warn("failed to disconnect voice session", "guild_id", guildID, "error", err)
	}
	p.state.session = nil
	p.cancelPendingDisconnect()
}
