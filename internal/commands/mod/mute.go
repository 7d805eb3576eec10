// Package mod - /mod mute command
package mod

import (
	"fmt"
	"time"

	"github.com/PancyStudios/CovenBotGo/pkg/config"
	"github.com/PancyStudios/CovenBotGo/pkg/discord"
	"github.com/PancyStudios/CovenBotGo/pkg/errors"
	"github.com/PancyStudios/CovenBotGo/pkg/logger"
	"github.com/bwmarrin/discordgo"
)

// createMuteCommand creates the /mod mute subcommand
func createMuteCommand() *discord.Command {
	return discord.NewCommand(
		"mute",
		"Mute a user with the configured role",
		"mod",
		muteHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionUser,
			Name:        "user",
			Description: "User to mute",
			Required:    true,
		},
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionInteger,
			Name:        "minutes",
			Description: "Mute duration in minutes (default from settings)",
			Required:    false,
		},
	).WithUserPermissions(discordgo.PermissionModerateMembers)
}

// muteHandler handles the /mod mute command
func muteHandler(ctx *discord.CommandContext) error {
	go func() {
		defer errors.RecoverMiddleware()()

		user := ctx.GetUserOption("user")
		if user == nil {
			ctx.ReplyEphemeral("❌ You must specify a user.")
			return
		}

		cfg := config.GetSettings()
		if cfg.MutedRoleID == "" {
			ctx.ReplyEphemeral("❌ No muted role is configured.")
			return
		}

		minutes := int(ctx.GetIntOption("minutes"))
		if minutes <= 0 {
			minutes = cfg.MuteMinutes
		}

		guildID := ctx.Interaction.GuildID
		if err := ctx.Session.GuildMemberRoleAdd(guildID, user.ID, cfg.MutedRoleID); err != nil {
			ctx.ReplyEphemeral(fmt.Sprintf("❌ Failed to mute: %v", err))
			return
		}

		// Redundant removal after an earlier manual unmute is a no-op.
		session := ctx.Session
		time.AfterFunc(time.Duration(minutes)*time.Minute, func() {
			defer errors.RecoverMiddleware()()
			if err := session.GuildMemberRoleRemove(guildID, user.ID, cfg.MutedRoleID); err != nil {
				logger.Debug(fmt.Sprintf("Auto-unmute for %s skipped: %v", user.ID, err), "Mod")
			}
		})

		ctx.Reply(fmt.Sprintf("🔇 **%s** muted for **%d min** by %s.",
			user.Username, minutes, ctx.User().Username))
	}()
	return nil
}
