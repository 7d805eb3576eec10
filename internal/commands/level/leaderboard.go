package level

import (
	"fmt"
	"strings"

	"github.com/PancyStudios/CovenBotGo/internal/engine"
	"github.com/PancyStudios/CovenBotGo/pkg/discord"
	"github.com/PancyStudios/CovenBotGo/pkg/errors"
)

// createLeaderboardCommand creates the /leaderboard command
func createLeaderboardCommand() *discord.Command {
	return discord.NewCommand(
		"leaderboard",
		"Top 10 of the coven by level and XP",
		"level",
		leaderboardHandler,
	)
}

// leaderboardHandler handles the /leaderboard command
func leaderboardHandler(ctx *discord.CommandContext) error {
	go func() {
		defer errors.RecoverMiddleware()()

		top := engine.Get().Progression.Top(10)
		if len(top) == 0 {
			ctx.Reply("🕸️ The coven is silent. Nobody has earned XP yet.")
			return
		}

		medals := []string{"🥇", "🥈", "🥉"}

		var b strings.Builder
		b.WriteString("🏆 **Coven Leaderboard**\n")
		for i, u := range top {
			marker := fmt.Sprintf("`#%d`", i+1)
			if i < len(medals) {
				marker = medals[i]
			}
			fmt.Fprintf(&b, "%s <@%s> — level **%d** (%d XP)\n", marker, u.UserID, u.Level, u.XP)
		}

		ctx.Reply(b.String())
	}()
	return nil
}
