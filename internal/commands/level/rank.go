package level

import (
	"fmt"

	"github.com/PancyStudios/CovenBotGo/internal/engine"
	"github.com/PancyStudios/CovenBotGo/pkg/discord"
	"github.com/PancyStudios/CovenBotGo/pkg/errors"
	"github.com/bwmarrin/discordgo"
)

// createRankCommand creates the /rank command
func createRankCommand() *discord.Command {
	return discord.NewCommand(
		"rank",
		"Show your XP and level, or another member's",
		"level",
		rankHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionUser,
			Name:        "user",
			Description: "Member to inspect (defaults to you)",
			Required:    false,
		},
	)
}

// rankHandler handles the /rank command
func rankHandler(ctx *discord.CommandContext) error {
	go func() {
		defer errors.RecoverMiddleware()()

		target := ctx.GetUserOption("user")
		if target == nil {
			target = ctx.User()
		}

		u := engine.Get().Progression.Get(target.ID)
		next := engine.Threshold(u.Level + 1)

		ctx.Reply(fmt.Sprintf(
			"🏮 **%s**\n• Level: **%d**\n• XP: **%d** / %d for the next level",
			target.Username, u.Level, u.XP, next,
		))
	}()
	return nil
}
