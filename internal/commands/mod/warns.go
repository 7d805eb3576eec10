// Package mod - /mod warns command
package mod

import (
	"fmt"
	"strings"

	"github.com/PancyStudios/CovenBotGo/internal/engine"
	"github.com/PancyStudios/CovenBotGo/pkg/discord"
	"github.com/PancyStudios/CovenBotGo/pkg/errors"
	"github.com/bwmarrin/discordgo"
)

// createWarnsCommand creates the /mod warns subcommand
func createWarnsCommand() *discord.Command {
	return discord.NewCommand(
		"warns",
		"List a user's warnings",
		"mod",
		warnsHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionUser,
			Name:        "user",
			Description: "User to inspect",
			Required:    true,
		},
	).WithUserPermissions(discordgo.PermissionModerateMembers)
}

// warnsHandler handles the /mod warns command
func warnsHandler(ctx *discord.CommandContext) error {
	go func() {
		defer errors.RecoverMiddleware()()

		user := ctx.GetUserOption("user")
		if user == nil {
			ctx.ReplyEphemeral("❌ You must specify a user.")
			return
		}

		warns := engine.Get().Warnings.List(ctx.Interaction.GuildID, user.ID)
		if len(warns) == 0 {
			ctx.Reply(fmt.Sprintf("✅ **%s** has no warnings.", user.Username))
			return
		}

		// Most recent last; show the tail.
		shown := warns
		if len(shown) > 10 {
			shown = shown[len(shown)-10:]
		}

		var b strings.Builder
		fmt.Fprintf(&b, "⚠️ **%s** — %d warning(s):\n", user.Username, len(warns))
		for i, w := range shown {
			fmt.Fprintf(&b, "`%d.` %s — by <@%s> (%s)\n",
				len(warns)-len(shown)+i+1, w.Reason, w.By, w.Timestamp.Format("2006-01-02 15:04"))
		}

		ctx.Reply(b.String())
	}()
	return nil
}
