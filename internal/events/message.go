// Package events provides event handlers for message events.
// This is the engagement pipeline: every guild message passes through the
// rate limiter first, then the shared cooldown gate feeding XP and currency.
package events

import (
	"fmt"
	"time"

	"github.com/PancyStudios/CovenBotGo/internal/engine"
	"github.com/PancyStudios/CovenBotGo/pkg/config"
	"github.com/PancyStudios/CovenBotGo/pkg/discord"
	"github.com/PancyStudios/CovenBotGo/pkg/errors"
	"github.com/PancyStudios/CovenBotGo/pkg/logger"
	"github.com/PancyStudios/CovenBotGo/pkg/mqtt"
	"github.com/bwmarrin/discordgo"
)

// RegisterMessageEvents registers all message-related event handlers
func RegisterMessageEvents(client *discord.ExtendedClient) {
	client.EventHandler.OnMessageCreate(onMessageCreate)
	client.EventHandler.OnMessageDelete(onMessageDelete)
}

// onMessageCreate runs the engagement pipeline for one inbound message
func onMessageCreate(s *discordgo.Session, m *discordgo.MessageCreate) {
	defer errors.RecoverMiddleware()()

	if m.Author.Bot || m.GuildID == "" {
		return
	}

	eng := engine.Get()
	if eng == nil {
		return
	}

	cfg := eng.Settings()
	if cfg.GuildID != "" && m.GuildID != cfg.GuildID {
		return
	}

	now := time.Now()

	if eng.Limiter.Admit(m.Author.ID, now) == engine.Flood {
		handleFlood(s, m, cfg, now)
		return
	}

	grants := eng.GrantMessageRewards(m.Author.ID, now)
	if !grants.Fired || !grants.XP.LeveledUp {
		return
	}

	announceLevelUp(s, m, grants.XP.Level, cfg)
	syncLevelRoles(s, m.GuildID, m.Author.ID, grants.XP.Level, cfg)

	mqtt.Emit("levelup", mqtt.LevelUpEvent{
		GuildID:   m.GuildID,
		UserID:    m.Author.ID,
		Level:     grants.XP.Level,
		XP:        grants.XP.XP,
		Timestamp: now,
	})
}

// handleFlood warns the user and, when a suppression role is configured,
// applies it and schedules the automatic removal. Every platform call here
// is best-effort.
func handleFlood(s *discordgo.Session, m *discordgo.MessageCreate, cfg *config.Settings, now time.Time) {
	logger.Warn(fmt.Sprintf("🛑 Flood from %s in channel %s", m.Author.ID, m.ChannelID), "Flood")

	if cfg.MutedRoleID != "" {
		if err := s.GuildMemberRoleAdd(m.GuildID, m.Author.ID, cfg.MutedRoleID); err != nil {
			logger.Warn(fmt.Sprintf("Failed to apply muted role: %v", err), "Flood")
			sendSafe(s, m.ChannelID, fmt.Sprintf("🛑 <@%s> slow down...", m.Author.ID))
		} else {
			sendSafe(s, m.ChannelID, fmt.Sprintf("🛑 <@%s> muted %d min (flood).", m.Author.ID, cfg.MuteMinutes))
			scheduleUnmute(s, m.GuildID, m.Author.ID, cfg)
		}
	} else {
		sendSafe(s, m.ChannelID, fmt.Sprintf("🛑 <@%s> slow down...", m.Author.ID))
	}

	if cfg.FloodChannelID != "" {
		sendSafe(s, cfg.FloodChannelID,
			fmt.Sprintf("🛑 Flood: <@%s> in <#%s>", m.Author.ID, m.ChannelID))
	}

	mqtt.Emit("flood", mqtt.FloodEvent{
		GuildID:   m.GuildID,
		UserID:    m.Author.ID,
		ChannelID: m.ChannelID,
		Timestamp: now,
	})
}

// scheduleUnmute fires once after the mute window. The removal is
// idempotent: a role already gone is not an error.
func scheduleUnmute(s *discordgo.Session, guildID, userID string, cfg *config.Settings) {
	wait := time.Duration(cfg.MuteMinutes) * time.Minute
	if wait < 10*time.Second {
		wait = 10 * time.Second
	}

	time.AfterFunc(wait, func() {
		defer errors.RecoverMiddleware()()

		if err := s.GuildMemberRoleRemove(guildID, userID, cfg.MutedRoleID); err != nil {
			logger.Debug(fmt.Sprintf("Auto-unmute for %s skipped: %v", userID, err), "Flood")
		}
	})
}

// announceLevelUp posts the public level-up notice
func announceLevelUp(s *discordgo.Session, m *discordgo.MessageCreate, level int, cfg *config.Settings) {
	if cfg.LevelChannelID == "" {
		return
	}
	sendSafe(s, cfg.LevelChannelID, fmt.Sprintf("🏆 <@%s> just reached **level %d**!", m.Author.ID, level))
}

// syncLevelRoles removes every configured level-tier role and grants the one
// mapped to the new level, if any
func syncLevelRoles(s *discordgo.Session, guildID, userID string, level int, cfg *config.Settings) {
	member, err := s.State.Member(guildID, userID)
	if err != nil {
		member, err = s.GuildMember(guildID, userID)
		if err != nil {
			logger.Warn(fmt.Sprintf("Failed to fetch member %s for role sync: %v", userID, err), "Levels")
			return
		}
	}

	held := make(map[string]bool, len(member.Roles))
	for _, r := range member.Roles {
		held[r] = true
	}

	for lvl, roleID := range cfg.LevelRoles {
		if lvl == level || !held[roleID] {
			continue
		}
		if err := s.GuildMemberRoleRemove(guildID, userID, roleID); err != nil {
			logger.Debug(fmt.Sprintf("Failed to remove level role %s: %v", roleID, err), "Levels")
		}
	}

	if roleID, ok := cfg.LevelRoles[level]; ok {
		if err := s.GuildMemberRoleAdd(guildID, userID, roleID); err != nil {
			logger.Warn(fmt.Sprintf("Failed to grant level role %s: %v", roleID, err), "Levels")
		}
	}
}

// onMessageDelete mirrors deleted messages to the log channel, truncated
func onMessageDelete(s *discordgo.Session, m *discordgo.MessageDelete) {
	cfg := config.GetSettings()
	if cfg.LogChannelID == "" || m.GuildID == "" {
		return
	}

	deleted := m.BeforeDelete
	if deleted == nil || deleted.Author == nil || deleted.Author.Bot {
		return
	}

	content := deleted.Content
	if len(content) > 500 {
		content = content[:500]
	}

	sendSafe(s, cfg.LogChannelID,
		fmt.Sprintf("🗑️ Message deleted by <@%s> in <#%s>:\n```%s```",
			deleted.Author.ID, m.ChannelID, content))
}

// sendSafe sends a message and swallows the error: one failed side effect
// must never abort the pipeline.
func sendSafe(s *discordgo.Session, channelID, text string) {
	if channelID == "" {
		return
	}
	if _, err := s.ChannelMessageSend(channelID, text); err != nil {
		logger.Debug(fmt.Sprintf("Failed to send to channel %s: %v", channelID, err), "Events")
	}
}
