// Package economy provides the currency commands /balance and /daily
package economy

import (
	"github.com/PancyStudios/CovenBotGo/pkg/discord"
)

// Register registers the economy commands
func Register(client *discord.ExtendedClient) {
	client.CommandHandler.RegisterCommand(createBalanceCommand())
	client.CommandHandler.RegisterCommand(createDailyCommand())
}
