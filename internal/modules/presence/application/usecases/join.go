package usecases

import (
	"log/slog"

	"github.com/disgoorg/snowflake/v2"
	"github.com/sglre6355/lurkbot/internal/modules/presence/application/ports"
)

// evaluateJoin decides whether to schedule a delayed join into one of the
// guild's occupied voice channels. Caller must hold p.mu.
func (p *PresenceService) evaluateJoin(guildID snowflake.ID) {
	if p.state.session != nil || p.state.pendingJoin != nil {
		slog.Debug("skipping join evaluation", "guild_id", guildID)
		return
	}

	channels, err := p.browser.VoiceChannels(guildID)
	if err != nil {
		slog.Error("failed to enumerate voice channels", "guild_id", guildID, "error", err)
		return
	}

	var occupied []ports.VoiceChannel
	for _, ch := range channels {
		if ch.RealParticipants > 0 {
			occupied = append(occupied, ch)
		}
	}
	if len(occupied) == 0 {
		return
	}

	// Probabilistic admission gate: strictly greater skips, equality passes.
	if draw := p.rand.Float64(); draw > p.cfg.JoinProbability {
		slog.Debug("skipped join on probability gate", "guild_id", guildID, "draw", draw)
		return
	}

	target := occupied[p.rand.IntN(len(occupied))]
	delay := p.randomDelay(p.cfg.JoinDelayMin, p.cfg.JoinDelayMax)

	pj := &pendingJoin{
		GuildID:     guildID,
		ChannelID:   target.ID,
		ChannelName: target.Name,
	}
	p.state.pendingJoin = pj
	pj.Timer = p.scheduler.AfterFunc(delay, func() {
		p.completeJoin(pj)
	})

	slog.Info("scheduled voice join",
		"guild_id", guildID,
		"channel", target.Name,
		"delay", delay.String(),
	)
}

// completeJoin runs when a join timer fires: it attempts to establish the
// voice session, stores the handle on success, and clears the pending-join
// descriptor as the final step in every outcome.
func (p *PresenceService) completeJoin(pj *pendingJoin) {
	p.mu.Lock()
	defer p.mu.Unlock()

	// A cancellation that raced the firing leaves a stale descriptor behind.
	if p.state.pendingJoin != pj {
		return
	}
	defer func() {
		p.state.pendingJoin = nil
	}()

	session, err := p.transport.Join(pj.GuildID, pj.ChannelID)
	if err != nil {
		// Stay disconnected; the next notification re-triggers evaluation.
		slog.Error("failed to join voice channel",
			"guild_id", pj.GuildID,
			"channel", pj.ChannelName,
			"error", err,
		)
		return
	}

	p.state.session = session
	slog.Info("joined voice channel", "guild_id", pj.GuildID, "channel", pj.ChannelName)

	if p.cfg.MaxSessionEnabled {
		p.armDisconnect(pj.GuildID)
	}
}
