package utils

import (
	"fmt"
	"time"

	"github.com/PancyStudios/CovenBotGo/internal/engine"
	"github.com/PancyStudios/CovenBotGo/pkg/discord"
	"github.com/PancyStudios/CovenBotGo/pkg/errors"
)

// createStatusCommand creates the /utils status subcommand
func createStatusCommand() *discord.Command {
	return discord.NewCommand(
		"status",
		"Show the bot's status",
		"utils",
		statusHandler,
	)
}

// statusHandler handles the /utils status command
func statusHandler(ctx *discord.CommandContext) error {
	go func() {
		defer errors.RecoverMiddleware()()
		eng := engine.Get()

		uptime := time.Since(ctx.Client.StartTime).Round(time.Second)

		ctx.Reply(fmt.Sprintf(
			"📊 **Bot Status**\n"+
				"• Bot: 🟢 Online\n"+
				"• Uptime: %s\n"+
				"• Guilds: %d\n"+
				"• Souls tracked: %d\n"+
				"• Active runs: %d",
			uptime,
			ctx.Client.GuildCount(),
			eng.Progression.Size(),
			eng.Doors.ActiveSessions(),
		))
	}()
	return nil
}
