package utils

import (
	"github.com/PancyStudios/CovenBotGo/pkg/discord"
	"github.com/PancyStudios/CovenBotGo/pkg/errors"
)

// createHelpCommand creates the /utils help subcommand
func createHelpCommand() *discord.Command {
	return discord.NewCommand(
		"help",
		"Show help information",
		"utils",
		helpHandler,
	)
}

// helpHandler handles the /utils help command
func helpHandler(ctx *discord.CommandContext) error {
	go func() {
		defer errors.RecoverMiddleware()()
		ctx.Reply(
			"📖 **CovenBot Help**\n\n" +
				"**Available commands:**\n" +
				"• `/utils ping` - Check latency\n" +
				"• `/utils status` - Bot status\n" +
				"• `/rank` - Your XP and level\n" +
				"• `/leaderboard` - Top 10 of the coven\n" +
				"• `/balance` - Your currency balance\n" +
				"• `/daily` - Claim your daily reward\n" +
				"• `/doors start` - Enter the corridor\n" +
				"• `/doors open` - Open the next door\n" +
				"• `/doors hide` - Hide before opening\n" +
				"• `/doors quit` - Abandon the run (forfeits loot)\n" +
				"• `/mod warn <user> <reason>` - Warn a user\n" +
				"• `/mod warns <user>` - List a user's warnings\n" +
				"• `/mod clearwarns <user>` - Clear a user's warnings\n" +
				"• `/mod mute <user> [minutes]` - Mute a user",
		)
	}()
	return nil
}
