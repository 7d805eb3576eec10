// Package events provides event handlers for member events
package events

import (
	"fmt"

	"github.com/PancyStudios/CovenBotGo/pkg/config"
	"github.com/PancyStudios/CovenBotGo/pkg/discord"
	"github.com/PancyStudios/CovenBotGo/pkg/logger"
	"github.com/bwmarrin/discordgo"
)

// RegisterMemberEvents registers all member-related event handlers
func RegisterMemberEvents(client *discord.ExtendedClient) {
	client.EventHandler.OnGuildMemberAdd(onGuildMemberAdd)
	client.EventHandler.OnGuildMemberRemove(onGuildMemberRemove)
}

// onGuildMemberAdd greets new members and points them at verification
func onGuildMemberAdd(s *discordgo.Session, m *discordgo.GuildMemberAdd) {
	cfg := config.GetSettings()
	if cfg.GuildID != "" && m.GuildID != cfg.GuildID {
		return
	}

	logger.Info(fmt.Sprintf("👋 New member: %s in guild %s", m.User.Username, m.GuildID), "Member")

	if cfg.WelcomeChannelID == "" {
		return
	}

	msg := fmt.Sprintf("🩸 <@%s> welcome to **THE DEN OF THE DAMNED**.", m.User.ID)
	if cfg.VerifyChannelID != "" {
		msg += fmt.Sprintf("\nReact in <#%s> with %s to verify yourself.", cfg.VerifyChannelID, cfg.VerifyEmoji)
	}

	sendSafe(s, cfg.WelcomeChannelID, msg)
}

// onGuildMemberRemove logs departures to the log channel
func onGuildMemberRemove(s *discordgo.Session, m *discordgo.GuildMemberRemove) {
	cfg := config.GetSettings()
	if cfg.GuildID != "" && m.GuildID != cfg.GuildID {
		return
	}

	logger.Info(fmt.Sprintf("👋 Member left: %s from guild %s", m.User.Username, m.GuildID), "Member")

	if cfg.LogChannelID != "" {
		sendSafe(s, cfg.LogChannelID, fmt.Sprintf("🚪 **%s** slipped back into the dark.", m.User.Username))
	}
}
