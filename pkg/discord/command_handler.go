// Package discord provides the command handler for loading and registering commands.
package discord

import (
	"github.com/PancyStudios/CovenBotGo/pkg/config"
	"github.com/PancyStudios/CovenBotGo/pkg/logger"
	"github.com/bwmarrin/discordgo"
)

// CommandHandler manages command loading and registration
type CommandHandler struct {
	client           *ExtendedClient
	slashCommands    []*discordgo.ApplicationCommand
	slashCommandsDev []*discordgo.ApplicationCommand
}

// NewCommandHandler creates a new CommandHandler
func NewCommandHandler(client *ExtendedClient) *CommandHandler {
	return &CommandHandler{
		client:           client,
		slashCommands:    make([]*discordgo.ApplicationCommand, 0),
		slashCommandsDev: make([]*discordgo.ApplicationCommand, 0),
	}
}

// RegisterCommand adds a command to the handler
func (ch *CommandHandler) RegisterCommand(cmd *Command) {
	ch.client.Commands.Set(cmd.Name, cmd)

	appCmd := cmd.ToApplicationCommand()

	if cmd.IsDev {
		ch.slashCommandsDev = append(ch.slashCommandsDev, appCmd)
	} else {
		ch.slashCommands = append(ch.slashCommands, appCmd)
	}

	logger.Debug("Command registered: "+cmd.Name, "CommandHandler")
}

// BuildCommandGroup creates a command group with subcommands
func (ch *CommandHandler) BuildCommandGroup(name, description string, subcommands ...*Command) *discordgo.ApplicationCommand {
	options := make([]*discordgo.ApplicationCommandOption, 0, len(subcommands))

	for _, cmd := range subcommands {
		fullName := name + "." + cmd.Name
		ch.client.Commands.Set(fullName, cmd)

		opt := &discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionSubCommand,
			Name:        cmd.Name,
			Description: cmd.Description,
			Options:     cmd.Options,
		}
		options = append(options, opt)
	}

	return &discordgo.ApplicationCommand{
		Name:        name,
		Description: description,
		Options:     options,
	}
}

// BuildSubcommandGroup creates a subcommand group
func (ch *CommandHandler) BuildSubcommandGroup(groupName, name, description string, subcommands ...*Command) *discordgo.ApplicationCommandOption {
	options := make([]*discordgo.ApplicationCommandOption, 0, len(subcommands))

	for _, cmd := range subcommands {
		fullName := groupName + "." + name + "." + cmd.Name
		ch.client.Commands.Set(fullName, cmd)

		opt := &discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionSubCommand,
			Name:        cmd.Name,
			Description: cmd.Description,
			Options:     cmd.Options,
		}
		options = append(options, opt)
	}

	return &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionSubCommandGroup,
		Name:        name,
		Description: description,
		Options:     options,
	}
}

// RegisterCommands registers all slash commands with Discord
func (ch *CommandHandler) RegisterCommands() {
	cfg := config.Get()

	logger.Info("🔄 Registering global commands...", "CommandHandler")

	for _, cmd := range ch.slashCommands {
		_, err := ch.client.Session.ApplicationCommandCreate(
			ch.client.Session.State.User.ID,
			"",
			cmd,
		)
		if err != nil {
			logger.Error("Error registering command "+cmd.Name+": "+err.Error(), "CommandHandler")
		}
	}

	logger.Success("✅ Global commands registered.", "CommandHandler")

	if cfg.DevGuildID != "" && len(ch.slashCommandsDev) > 0 {
		logger.Info("🔄 Registering dev commands in guild "+cfg.DevGuildID+"...", "CommandHandler")

		for _, cmd := range ch.slashCommandsDev {
			_, err := ch.client.Session.ApplicationCommandCreate(
				ch.client.Session.State.User.ID,
				cfg.DevGuildID,
				cmd,
			)
			if err != nil {
				logger.Error("Error registering dev command "+cmd.Name+": "+err.Error(), "CommandHandler")
			}
		}

		logger.Success("✅ Dev commands registered.", "CommandHandler")
	}
}

// UnregisterCommands removes all registered commands from Discord
func (ch *CommandHandler) UnregisterCommands() error {
	commands, err := ch.client.Session.ApplicationCommands(ch.client.Session.State.User.ID, "")
	if err != nil {
		return err
	}

	for _, cmd := range commands {
		err := ch.client.Session.ApplicationCommandDelete(ch.client.Session.State.User.ID, "", cmd.ID)
		if err != nil {
			logger.Error("Error deleting command "+cmd.Name+": "+err.Error(), "CommandHandler")
		}
	}

	logger.Success("Global commands removed.", "CommandHandler")
	return nil
}

// ListGlobalCommands returns the commands registered globally with Discord
func (ch *CommandHandler) ListGlobalCommands() ([]*discordgo.ApplicationCommand, error) {
	return ch.client.Session.ApplicationCommands(ch.client.Session.State.User.ID, "")
}

// ListGuildCommands returns the commands registered for one guild
func (ch *CommandHandler) ListGuildCommands(guildID string) ([]*discordgo.ApplicationCommand, error) {
	return ch.client.Session.ApplicationCommands(ch.client.Session.State.User.ID, guildID)
}

// UnregisterGuildCommands removes every command registered for one guild
func (ch *CommandHandler) UnregisterGuildCommands(guildID string) error {
	commands, err := ch.ListGuildCommands(guildID)
	if err != nil {
		return err
	}

	for _, cmd := range commands {
		err := ch.client.Session.ApplicationCommandDelete(ch.client.Session.State.User.ID, guildID, cmd.ID)
		if err != nil {
			logger.Error("Error deleting guild command "+cmd.Name+": "+err.Error(), "CommandHandler")
		}
	}

	logger.Success("Guild commands removed.", "CommandHandler")
	return nil
}

// SyncCommands removes stale global commands and registers the current set
func (ch *CommandHandler) SyncCommands() error {
	registered, err := ch.ListGlobalCommands()
	if err != nil {
		return err
	}

	desired := make(map[string]bool, len(ch.slashCommands))
	for _, cmd := range ch.slashCommands {
		desired[cmd.Name] = true
	}

	for _, cmd := range registered {
		if desired[cmd.Name] {
			continue
		}
		logger.Info("Removing stale command: "+cmd.Name, "CommandHandler")
		err := ch.client.Session.ApplicationCommandDelete(ch.client.Session.State.User.ID, "", cmd.ID)
		if err != nil {
			logger.Error("Error deleting stale command "+cmd.Name+": "+err.Error(), "CommandHandler")
		}
	}

	for _, cmd := range ch.slashCommands {
		_, err := ch.client.Session.ApplicationCommandCreate(ch.client.Session.State.User.ID, "", cmd)
		if err != nil {
			logger.Error("Error registering command "+cmd.Name+": "+err.Error(), "CommandHandler")
		}
	}

	return nil
}

// AddGlobalCommand adds a command to the global command list
func (ch *CommandHandler) AddGlobalCommand(cmd *discordgo.ApplicationCommand) {
	ch.slashCommands = append(ch.slashCommands, cmd)
}

// AddDevCommand adds a command to the dev command list
func (ch *CommandHandler) AddDevCommand(cmd *discordgo.ApplicationCommand) {
	ch.slashCommandsDev = append(ch.slashCommandsDev, cmd)
}
