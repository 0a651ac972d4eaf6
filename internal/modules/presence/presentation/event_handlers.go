package presentation

import (
	"log/slog"

	"github.com/bwmarrin/discordgo"
	"github.com/disgoorg/snowflake/v2"
	"github.com/sglre6355/lurkbot/internal/modules/presence/application/usecases"
)

// EventHandlers handles Discord gateway events for the presence module.
type EventHandlers struct {
	presence *usecases.PresenceService
}

// NewEventHandlers creates a new EventHandlers.
func NewEventHandlers(presence *usecases.PresenceService) *EventHandlers {
	return &EventHandlers{
		presence: presence,
	}
}

// HandleVoiceStateUpdate handles VoiceStateUpdate events. Every membership
// change triggers a full presence evaluation for the guild it belongs to.
func (h *EventHandlers) HandleVoiceStateUpdate(
	_ *discordgo.Session,
	event *discordgo.VoiceStateUpdate,
) {
	guildID, err := snowflake.Parse(event.GuildID)
	if err != nil {
		slog.Error("failed to parse guild ID in voice state update", "error", err)
		return
	}

	h.presence.HandleVoiceActivity(guildID)
}
