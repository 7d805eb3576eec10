// Package level provides the progression commands /rank and /leaderboard
package level

import (
	"github.com/PancyStudios/CovenBotGo/pkg/discord"
)

// Register registers the progression commands
func Register(client *discord.ExtendedClient) {
	client.CommandHandler.RegisterCommand(createRankCommand())
	client.CommandHandler.RegisterCommand(createLeaderboardCommand())
}
