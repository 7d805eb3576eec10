package doors

import (
	"github.com/PancyStudios/CovenBotGo/internal/engine"
	"github.com/PancyStudios/CovenBotGo/pkg/discord"
	"github.com/PancyStudios/CovenBotGo/pkg/errors"
)

// createQuitCommand creates the /doors quit subcommand
func createQuitCommand() *discord.Command {
	return discord.NewCommand(
		"quit",
		"Abandon the run (forfeits accumulated loot)",
		"doors",
		quitHandler,
	)
}

// quitHandler handles the /doors quit command
func quitHandler(ctx *discord.CommandContext) error {
	go func() {
		defer errors.RecoverMiddleware()()

		if !engine.Get().Doors.Quit(ctx.User().ID) {
			ctx.ReplyEphemeral("🕯️ No run in progress.")
			return
		}

		ctx.Reply("🏃 You flee the corridor. The loot stays behind, in the dark.")
	}()
	return nil
}
