package usecases

import (
	"log/slog"

	"github.com/disgoorg/snowflake/v2"
)

// armDisconnect schedules the forced end of the current voice session after a
// randomized multi-hour interval. Invoked right after a successful join; at
// most one disconnect timer exists at a time, so any prior one is cancelled
// first. Caller must hold p.mu.
func (p *PresenceService) armDisconnect(guildID snowflake.ID) {
	p.cancelPendingDisconnect()

	delay := p.randomDelay(p.cfg.MaxSessionMin, p.cfg.MaxSessionMax)

	pd := &pendingDisconnect{GuildID: guildID}
	p.state.pendingDisconnect = pd
	pd.Timer = p.scheduler.AfterFunc(delay, func() {
		p.completeDisconnect(pd)
	})

	slog.Info("scheduled forced disconnect", "guild_id", guildID, "delay", delay.String())
}

// completeDisconnect runs when a forced-disconnect timer fires: it tears down
// the session regardless of channel occupancy. A fresh timer is armed only by
// the next successful join.
func (p *PresenceService) completeDisconnect(pd *pendingDisconnect) {
	p.mu.Lock()
	defer p.mu.Unlock()

	// A cancellation that raced the firing leaves a stale descriptor behind.
	if p.state.pendingDisconnect != pd {
		return
	}
	p.state.pendingDisconnect = nil

	if p.state.session == nil {
		return
	}

	// Resolve the channel name for the log line; fall back to the raw ID.
	channelID := p.state.session.ChannelID()
	name := channelID.String()
	if channel, err := p.browser.VoiceChannel(pd.GuildID, channelID); err == nil && channel != nil {
		name = channel.Name
	}

	if err := p.state.session.Disconnect(); err != nil {
		slog.Warn("failed to disconnect voice session",
			"guild_id", pd.GuildID,
			"channel", name,
			"error", err,
		)
	}
	p.state.session = nil

	slog.Info("ended voice session after session limit", "guild_id", pd.GuildID, "channel", name)
}
