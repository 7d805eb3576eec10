package doors

import (
	"fmt"

	"github.com/PancyStudios/CovenBotGo/internal/engine"
	"github.com/PancyStudios/CovenBotGo/pkg/discord"
	"github.com/PancyStudios/CovenBotGo/pkg/errors"
)

// createHideCommand creates the /doors hide subcommand
func createHideCommand() *discord.Command {
	return discord.NewCommand(
		"hide",
		"Hide before opening the next door",
		"doors",
		hideHandler,
	)
}

// hideHandler handles the /doors hide command
func hideHandler(ctx *discord.CommandContext) error {
	go func() {
		defer errors.RecoverMiddleware()()

		s, ok := engine.Get().Doors.Hide(ctx.User().ID)
		if !ok {
			ctx.ReplyEphemeral("🕯️ No run in progress. `/doors start` to enter the corridor.")
			return
		}

		ctx.Reply(fmt.Sprintf(
			"🫥 You press into the shadows of room **%d**. The next door will be safer.",
			s.Room,
		))
	}()
	return nil
}
