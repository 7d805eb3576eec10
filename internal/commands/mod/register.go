// Package mod provides moderation commands organized as subcommands under /mod
// Each command is in its own file for better organization
package mod

import (
	"github.com/PancyStudios/CovenBotGo/pkg/discord"
)

// Register registers all moderation commands as /mod subcommands
func Register(client *discord.ExtendedClient) {
	warnCmd := createWarnCommand()
	warnsCmd := createWarnsCommand()
	clearWarnsCmd := createClearWarnsCommand()
	muteCmd := createMuteCommand()

	modGroup := client.CommandHandler.BuildCommandGroup(
		"mod",
		"Moderation commands",
		warnCmd,
		warnsCmd,
		clearWarnsCmd,
		muteCmd,
	)

	client.CommandHandler.AddGlobalCommand(modGroup)
}
