package ports

import (
	"github.com/disgoorg/snowflake/v2"
)

// VoiceChannel describes a voice channel and its current occupancy.
type VoiceChannel struct {
	ID   snowflake.ID
	Name string

	// RealParticipants is the number of non-bot accounts currently present.
	RealParticipants int
}

// GuildBrowser defines the interface for inspecting a guild's voice channels.
type GuildBrowser interface {
	// VoiceChannels returns all voice channels of the guild with their
	// current non-bot occupancy.
	VoiceChannels(guildID snowflake.ID) ([]VoiceChannel, error)

	// VoiceChannel returns the voice channel with the given ID.
	// Returns nil if the channel no longer exists.
	VoiceChannel(guildID, channelID snowflake.ID) (*VoiceChannel, error)
}
