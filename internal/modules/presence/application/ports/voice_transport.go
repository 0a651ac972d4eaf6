package ports

import (
	"github.com/disgoorg/snowflake/v2"
)

// VoiceSession is a live voice connection handle returned by the transport.
type VoiceSession interface {
	// ChannelID returns the ID of the channel this session is connected to.
	ChannelID() snowflake.ID

	// Disconnect releases the voice session.
	Disconnect() error
}

// VoiceTransport defines the interface for establishing and tracking voice sessions.
type VoiceTransport interface {
	// Join connects the bot to the specified voice channel and returns the
	// resulting session handle.
	Join(guildID, channelID snowflake.ID) (VoiceSession, error)

	// TrackedSession returns the voice session the transport currently tracks
	// for the guild, independent of any local bookkeeping.
	// Returns nil if the transport tracks none.
	TrackedSession(guildID snowflake.ID) VoiceSession
}
