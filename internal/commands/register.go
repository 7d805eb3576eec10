// Package commands provides a registry for organizing bot commands.
// Commands are organized in subdirectories by category.
package commands

import (
	"github.com/PancyStudios/CovenBotGo/internal/commands/dev"
	"github.com/PancyStudios/CovenBotGo/internal/commands/doors"
	"github.com/PancyStudios/CovenBotGo/internal/commands/economy"
	"github.com/PancyStudios/CovenBotGo/internal/commands/level"
	"github.com/PancyStudios/CovenBotGo/internal/commands/mod"
	"github.com/PancyStudios/CovenBotGo/internal/commands/utils"
	"github.com/PancyStudios/CovenBotGo/pkg/discord"
)

// RegisterAll registers all commands with the Discord client
func RegisterAll(client *discord.ExtendedClient) {
	// Utility commands (/utils ping, status, help)
	utils.Register(client)

	// Progression commands (/rank, /leaderboard)
	level.Register(client)

	// Economy commands (/balance, /daily)
	economy.Register(client)

	// Mini-game (/doors start, open, hide, quit)
	doors.Register(client)

	// Moderation commands (/mod warn, warns, clearwarns, mute)
	mod.Register(client)

	// Dev commands (/dev eval, dev guild only)
	dev.Register(client)
}
