package economy

import (
	"fmt"

	"github.com/PancyStudios/CovenBotGo/internal/engine"
	"github.com/PancyStudios/CovenBotGo/pkg/discord"
	"github.com/PancyStudios/CovenBotGo/pkg/errors"
	"github.com/bwmarrin/discordgo"
)

// createBalanceCommand creates the /balance command
func createBalanceCommand() *discord.Command {
	return discord.NewCommand(
		"balance",
		"Show your currency balance, or another member's",
		"economy",
		balanceHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionUser,
			Name:        "user",
			Description: "Member to inspect (defaults to you)",
			Required:    false,
		},
	)
}

// balanceHandler handles the /balance command
func balanceHandler(ctx *discord.CommandContext) error {
	go func() {
		defer errors.RecoverMiddleware()()

		target := ctx.GetUserOption("user")
		if target == nil {
			target = ctx.User()
		}

		eng := engine.Get()
		balance := eng.Economy.Balance(target.ID)
		currency := eng.Settings().Economy.CurrencyName

		ctx.Reply(fmt.Sprintf("🩸 **%s** holds **%d %s**.", target.Username, balance, currency))
	}()
	return nil
}
