// Package doors provides the DOORS mini-game commands under /doors
package doors

import (
	"github.com/PancyStudios/CovenBotGo/pkg/discord"
)

// Register registers all mini-game commands as /doors subcommands
func Register(client *discord.ExtendedClient) {
	startCmd := createStartCommand()
	openCmd := createOpenCommand()
	hideCmd := createHideCommand()
	quitCmd := createQuitCommand()

	doorsGroup := client.CommandHandler.BuildCommandGroup(
		"doors",
		"The DOORS survival mini-game",
		startCmd,
		openCmd,
		hideCmd,
		quitCmd,
	)

	client.CommandHandler.AddGlobalCommand(doorsGroup)
}
