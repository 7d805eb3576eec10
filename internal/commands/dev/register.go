// Package dev provides developer-only commands registered in the dev guild
package dev

import (
	"github.com/PancyStudios/CovenBotGo/pkg/discord"
	"github.com/bwmarrin/discordgo"
)

// Register registers all dev commands as /dev subcommands (only in dev guild)
func Register(client *discord.ExtendedClient) {
	evalCmd := CreateEvalCommand()

	devGroup := &discordgo.ApplicationCommand{
		Name:        "dev",
		Description: "Development commands",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        evalCmd.Name,
				Description: evalCmd.Description,
				Options:     evalCmd.Options,
			},
		},
	}

	client.Commands.Set("dev.eval", evalCmd)
	client.CommandHandler.AddDevCommand(devGroup)
}
