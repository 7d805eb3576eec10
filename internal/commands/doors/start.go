package doors

import (
	"fmt"

	"github.com/PancyStudios/CovenBotGo/internal/engine"
	"github.com/PancyStudios/CovenBotGo/pkg/discord"
	"github.com/PancyStudios/CovenBotGo/pkg/errors"
)

// createStartCommand creates the /doors start subcommand
func createStartCommand() *discord.Command {
	return discord.NewCommand(
		"start",
		"Enter the corridor and begin a run",
		"doors",
		startHandler,
	)
}

// startHandler handles the /doors start command
func startHandler(ctx *discord.CommandContext) error {
	go func() {
		defer errors.RecoverMiddleware()()

		s := engine.Get().Doors.Start(ctx.User().ID)

		ctx.Reply(fmt.Sprintf(
			"🚪 You step into the corridor. Room **%d**, ❤️ %d.\n"+
				"`/doors open` to open the next door, `/doors hide` to hide first.",
			s.Room, s.HP,
		))
	}()
	return nil
}
