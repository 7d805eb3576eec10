// Package events provides a registry for organizing bot events.
// Events are organized by category (ready, member, message, reaction).
package events

import (
	"github.com/PancyStudios/CovenBotGo/pkg/discord"
	"github.com/PancyStudios/CovenBotGo/pkg/logger"
)

// RegisterAll registers all events with the Discord client
func RegisterAll(client *discord.ExtendedClient) {
	logger.System("📋 Registering bot events...", "Events")

	// Ready event (bot startup, whispers loop)
	RegisterReadyEvent(client)

	// Member events (join/leave)
	RegisterMemberEvents(client)

	// Message events (engagement pipeline, delete logging)
	RegisterMessageEvents(client)

	// Reaction events (verification)
	RegisterReactionEvents(client)

	logger.Success("✅ All events registered", "Events")
}
