package doors

import (
	"fmt"
	"time"

	"github.com/PancyStudios/CovenBotGo/internal/engine"
	"github.com/PancyStudios/CovenBotGo/pkg/discord"
	"github.com/PancyStudios/CovenBotGo/pkg/errors"
	"github.com/PancyStudios/CovenBotGo/pkg/mqtt"
)

// createOpenCommand creates the /doors open subcommand
func createOpenCommand() *discord.Command {
	return discord.NewCommand(
		"open",
		"Open the next door",
		"doors",
		openHandler,
	)
}

// openHandler handles the /doors open command
func openHandler(ctx *discord.CommandContext) error {
	go func() {
		defer errors.RecoverMiddleware()()

		eng := engine.Get()
		currency := eng.Settings().Economy.CurrencyName

		res, ok := eng.Doors.Open(ctx.User().ID)
		if !ok {
			ctx.ReplyEphemeral("🕯️ No run in progress. `/doors start` to enter the corridor.")
			return
		}

		if res.Died {
			ctx.Reply(fmt.Sprintf(
				"💀 A monster got you in room **%d**. Your **%d %s** of loot are settled to your balance.",
				res.Session.Room, res.Settled, currency,
			))
			emitSettled(ctx.User().ID, res)
			return
		}

		if res.Completed {
			ctx.Reply(fmt.Sprintf(
				"🏁 Room **%d** — you made it out! **%d %s** settled (completion bonus included).",
				res.Session.Room, res.Settled, currency,
			))
			emitSettled(ctx.User().ID, res)
			return
		}

		switch res.Outcome {
		case engine.OutcomeLoot:
			ctx.Reply(fmt.Sprintf(
				"✨ Loot! **+%d %s** (run total %d). Room **%d**, ❤️ %d.",
				res.Gained, currency, res.Session.Reward, res.Session.Room, res.Session.HP,
			))
		case engine.OutcomeSafe:
			ctx.Reply(fmt.Sprintf(
				"🚪 An empty room. You slip through to room **%d**. ❤️ %d.",
				res.Session.Room, res.Session.HP,
			))
		case engine.OutcomeMonster:
			ctx.Reply(fmt.Sprintf(
				"👹 A monster lunges! ❤️ %d left. Still in room **%d**.",
				res.Session.HP, res.Session.Room,
			))
		}
	}()
	return nil
}

// emitSettled publishes a telemetry event for a settled run
func emitSettled(userID string, res engine.OpenResult) {
	mqtt.Emit("doors", mqtt.DoorsSettledEvent{
		UserID:    userID,
		Room:      res.Session.Room,
		Amount:    res.Settled,
		Completed: res.Completed,
		Died:      res.Died,
		Timestamp: time.Now(),
	})
}
