// Package utils provides utility commands organized as subcommands under /utils
package utils

import (
	"github.com/PancyStudios/CovenBotGo/pkg/discord"
)

// Register registers all utility commands as /utils subcommands
func Register(client *discord.ExtendedClient) {
	pingCmd := createPingCommand()
	statusCmd := createStatusCommand()
	helpCmd := createHelpCommand()

	utilsGroup := client.CommandHandler.BuildCommandGroup(
		"utils",
		"Utility commands",
		pingCmd,
		statusCmd,
		helpCmd,
	)

	client.CommandHandler.AddGlobalCommand(utilsGroup)
}
