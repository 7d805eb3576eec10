package economy

import (
	"fmt"
	"time"

	"github.com/PancyStudios/CovenBotGo/internal/engine"
	"github.com/PancyStudios/CovenBotGo/pkg/discord"
	"github.com/PancyStudios/CovenBotGo/pkg/errors"
)

// createDailyCommand creates the /daily command
func createDailyCommand() *discord.Command {
	return discord.NewCommand(
		"daily",
		"Claim your daily reward (once every 24h)",
		"economy",
		dailyHandler,
	)
}

// dailyHandler handles the /daily command
func dailyHandler(ctx *discord.CommandContext) error {
	go func() {
		defer errors.RecoverMiddleware()()

		eng := engine.Get()
		res := eng.Economy.ClaimDaily(ctx.User().ID, time.Now())
		currency := eng.Settings().Economy.CurrencyName

		if !res.Granted {
			ctx.ReplyEphemeral(fmt.Sprintf(
				"⏳ The offering is not ready. Come back in **%s**.",
				formatRemaining(res.Remaining),
			))
			return
		}

		ctx.Reply(fmt.Sprintf(
			"🌙 You claimed **%d %s**. Balance: **%d %s**.",
			res.Amount, currency, res.Balance, currency,
		))
	}()
	return nil
}

// formatRemaining renders a wait as "3h 12m" (or "45s" under a minute).
func formatRemaining(d time.Duration) string {
	d = d.Round(time.Second)
	if d < time.Minute {
		return fmt.Sprintf("%ds", int(d.Seconds()))
	}
	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	if h == 0 {
		return fmt.Sprintf("%dm", m)
	}
	return fmt.Sprintf("%dh %dm", h, m)
}
