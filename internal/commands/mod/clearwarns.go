// Package mod - /mod clearwarns command
package mod

import (
	"fmt"

	"github.com/PancyStudios/CovenBotGo/internal/engine"
	"github.com/PancyStudios/CovenBotGo/pkg/discord"
	"github.com/PancyStudios/CovenBotGo/pkg/errors"
	"github.com/bwmarrin/discordgo"
)

// createClearWarnsCommand creates the /mod clearwarns subcommand
func createClearWarnsCommand() *discord.Command {
	return discord.NewCommand(
		"clearwarns",
		"Clear all of a user's warnings",
		"mod",
		clearWarnsHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionUser,
			Name:        "user",
			Description: "User whose warnings to clear",
			Required:    true,
		},
	).WithUserPermissions(discordgo.PermissionModerateMembers)
}

// clearWarnsHandler handles the /mod clearwarns command
func clearWarnsHandler(ctx *discord.CommandContext) error {
	go func() {
		defer errors.RecoverMiddleware()()

		user := ctx.GetUserOption("user")
		if user == nil {
			ctx.ReplyEphemeral("❌ You must specify a user.")
			return
		}

		ledger := engine.Get().Warnings
		count := ledger.Count(ctx.Interaction.GuildID, user.ID)
		ledger.Clear(ctx.Interaction.GuildID, user.ID)

		ctx.Reply(fmt.Sprintf("🧹 Cleared %d warning(s) for **%s**.", count, user.Username))
	}()
	return nil
}
