// Package events provides event handlers for the bot
package events

import (
	"fmt"

	"github.com/PancyStudios/CovenBotGo/pkg/discord"
	"github.com/PancyStudios/CovenBotGo/pkg/logger"
	"github.com/bwmarrin/discordgo"
)

// RegisterReadyEvent registers the ready event handler
func RegisterReadyEvent(client *discord.ExtendedClient) {
	client.EventHandler.OnReady(onReady)
}

// onReady is called when the bot successfully connects to Discord
func onReady(s *discordgo.Session, r *discordgo.Ready) {
	logger.Success(fmt.Sprintf("✅ Bot connected: %s#%s", r.User.Username, r.User.Discriminator), "Ready")
	logger.Info(fmt.Sprintf("📊 Connected to %d guilds", len(r.Guilds)), "Ready")

	err := s.UpdateGameStatus(0, "🚪 the doors creaking open")
	if err != nil {
		logger.Error(fmt.Sprintf("Error setting status: %v", err), "Ready")
	}

	startWhispers(s)
}
