// Package mod - /mod warn command
package mod

import (
	"fmt"
	"time"

	"github.com/PancyStudios/CovenBotGo/internal/engine"
	"github.com/PancyStudios/CovenBotGo/pkg/discord"
	"github.com/PancyStudios/CovenBotGo/pkg/errors"
	"github.com/bwmarrin/discordgo"
)

// createWarnCommand creates the /mod warn subcommand
func createWarnCommand() *discord.Command {
	return discord.NewCommand(
		"warn",
		"Warn a user",
		"mod",
		warnHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionUser,
			Name:        "user",
			Description: "User to warn",
			Required:    true,
		},
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "reason",
			Description: "Reason for the warning",
			Required:    true,
		},
	).WithUserPermissions(discordgo.PermissionModerateMembers)
}

// warnHandler handles the /mod warn command
func warnHandler(ctx *discord.CommandContext) error {
	go func() {
		defer errors.RecoverMiddleware()()

		user := ctx.GetUserOption("user")
		if user == nil {
			ctx.ReplyEphemeral("❌ You must specify a user.")
			return
		}

		reason := ctx.GetStringOption("reason")
		if reason == "" {
			ctx.ReplyEphemeral("❌ You must specify a reason.")
			return
		}

		ledger := engine.Get().Warnings
		ledger.Warn(ctx.Interaction.GuildID, user.ID, ctx.User().ID, reason, time.Now())
		count := ledger.Count(ctx.Interaction.GuildID, user.ID)

		ctx.Reply(fmt.Sprintf(
			"⚠️ **%s** has been warned (warning #%d).\n**Reason:** %s\n**Moderator:** %s",
			user.Username, count, reason, ctx.User().Username,
		))
	}()
	return nil
}
