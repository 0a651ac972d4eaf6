package infrastructure

import (
	"github.com/bwmarrin/discordgo"
	"github.com/cockroachdb/errors"
	"github.com/disgoorg/snowflake/v2"
	"github.com/sglre6355/lurkbot/internal/modules/presence/application/ports"
)

// DiscordGateway adapts a discordgo session to the presence module's
// transport and browser ports. Channel and occupancy lookups go through the
// session's state cache; voice sessions are established and tracked by the
// session itself.
type DiscordGateway struct {
	session *discordgo.Session
}

// NewDiscordGateway creates a new DiscordGateway.
func NewDiscordGateway(session *discordgo.Session) *DiscordGateway {
	return &DiscordGateway{
		session: session,
	}
}

// VoiceChannels returns all voice channels of the guild with their current
// non-bot occupancy.
func (g *DiscordGateway) VoiceChannels(guildID snowflake.ID) ([]ports.VoiceChannel, error) {
	guild, err := g.session.State.Guild(guildID.String())
	if err != nil {
		return nil, errors.Wrapf(err, "guild %s not in state cache", guildID)
	}

	// Count non-bot occupants per channel
	counts := make(map[string]int)
	for _, vs := range guild.VoiceStates {
		if vs.ChannelID == "" {
			continue
		}
		if g.isAutomated(guild.ID, vs.UserID) {
			continue
		}
		counts[vs.ChannelID]++
	}

	var channels []ports.VoiceChannel
	for _, ch := range guild.Channels {
		if ch.Type != discordgo.ChannelTypeGuildVoice {
			continue
		}
		id, err := snowflake.Parse(ch.ID)
		if err != nil {
			continue
		}
		channels = append(channels, ports.VoiceChannel{
			ID:               id,
			Name:             ch.Name,
			RealParticipants: counts[ch.ID],
		})
	}

	return channels, nil
}

// VoiceChannel returns the voice channel with the given ID, or nil if it no
// longer exists.
func (g *DiscordGateway) VoiceChannel(
	guildID, channelID snowflake.ID,
) (*ports.VoiceChannel, error) {
	channels, err := g.VoiceChannels(guildID)
	if err != nil {
		return nil, err
	}
	for i := range channels {
		if channels[i].ID == channelID {
			return &channels[i], nil
		}
	}
	return nil, nil
}

// Join connects the bot to the specified voice channel, unmuted and
// undeafened so the session looks like an organic participant.
func (g *DiscordGateway) Join(guildID, channelID snowflake.ID) (ports.VoiceSession, error) {
	vc, err := g.session.ChannelVoiceJoin(guildID.String(), channelID.String(), false, false)
	if err != nil {
		return nil, errors.Wrapf(err, "join voice channel %s", channelID)
	}
	return &voiceSession{vc: vc}, nil
}

// TrackedSession returns the voice session discordgo currently tracks for the
// guild, or nil if there is none.
func (g *DiscordGateway) TrackedSession(guildID snowflake.ID) ports.VoiceSession {
	g.session.RLock()
	vc := g.session.VoiceConnections[guildID.String()]
	g.session.RUnlock()

	if vc == nil {
		return nil
	}
	return &voiceSession{vc: vc}
}

// isAutomated reports whether the user is a bot account. Members that cannot
// be resolved from the state cache are fetched over REST; members that cannot
// be resolved at all count as real.
func (g *DiscordGateway) isAutomated(guildID, userID string) bool {
	member, err := g.session.State.Member(guildID, userID)
	if err != nil {
		member, err = g.session.GuildMember(guildID, userID)
		if err != nil {
			return false
		}
	}
	return member.User != nil && member.User.Bot
}

// voiceSession wraps a discordgo voice connection as a ports.VoiceSession.
type voiceSession struct {
	vc *discordgo.VoiceConnection
}

// ChannelID returns the ID of the channel the session is connected to.
func (s *voiceSession) ChannelID() snowflake.ID {
	s.vc.RLock()
	raw := s.vc.ChannelID
	s.vc.RUnlock()

	id, _ := snowflake.Parse(raw)
	return id
}

// Disconnect releases the voice session.
func (s *voiceSession) Disconnect() error {
	return s.vc.Disconnect()
}

// Compile-time interface checks.
var (
	_ ports.VoiceTransport = (*DiscordGateway)(nil)
	_ ports.GuildBrowser   = (*DiscordGateway)(nil)
	_ ports.VoiceSession   = (*voiceSession)(nil)
)
