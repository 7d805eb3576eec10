// Package events provides event handlers for reaction events.
// Verification: reacting with the configured emoji on the verification
// message grants the verified role.
package events

import (
	"fmt"

	"github.com/PancyStudios/CovenBotGo/pkg/config"
	"github.com/PancyStudios/CovenBotGo/pkg/discord"
	"github.com/PancyStudios/CovenBotGo/pkg/logger"
	"github.com/bwmarrin/discordgo"
)

// RegisterReactionEvents registers all reaction-related event handlers
func RegisterReactionEvents(client *discord.ExtendedClient) {
	client.EventHandler.OnMessageReactionAdd(onReactionAdd)
}

// onReactionAdd handles verification reactions
func onReactionAdd(s *discordgo.Session, r *discordgo.MessageReactionAdd) {
	cfg := config.GetSettings()

	if cfg.VerifyChannelID == "" || cfg.VerifiedRoleID == "" {
		return
	}
	if cfg.GuildID != "" && r.GuildID != cfg.GuildID {
		return
	}
	if r.ChannelID != cfg.VerifyChannelID {
		return
	}
	if r.Emoji.Name != cfg.VerifyEmoji {
		return
	}
	if cfg.VerifyMessageID != "" && r.MessageID != cfg.VerifyMessageID {
		return
	}
	if r.Member != nil && r.Member.User != nil && r.Member.User.Bot {
		return
	}

	if err := s.GuildMemberRoleAdd(r.GuildID, r.UserID, cfg.VerifiedRoleID); err != nil {
		logger.Warn(fmt.Sprintf("Failed to grant verified role to %s: %v", r.UserID, err), "Verify")
		return
	}

	logger.Info(fmt.Sprintf("✅ %s verified", r.UserID), "Verify")
	sendSafe(s, cfg.LogChannelID, fmt.Sprintf("✅ <@%s> has been verified.", r.UserID))
}
