// Package main is the entry point for the CovenBot Go application.
// It initializes all systems and starts the Discord bot.
package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/PancyStudios/CovenBotGo/internal/commands"
	"github.com/PancyStudios/CovenBotGo/internal/engine"
	"github.com/PancyStudios/CovenBotGo/internal/events"
	"github.com/PancyStudios/CovenBotGo/pkg/config"
	"github.com/PancyStudios/CovenBotGo/pkg/discord"
	"github.com/PancyStudios/CovenBotGo/pkg/errors"
	"github.com/PancyStudios/CovenBotGo/pkg/logger"
	"github.com/PancyStudios/CovenBotGo/pkg/mqtt"
	"github.com/PancyStudios/CovenBotGo/pkg/storage"
	"github.com/PancyStudios/CovenBotGo/pkg/web"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.Init(cfg.ErrorWebhook, cfg.LogsWebhook)
	defer log.Close()

	logger.System("Starting CovenBot Go...", "Main")
	logger.Info(fmt.Sprintf("Working directory: %s", getCurrentDir()), "Main")

	// A missing token is the one fatal configuration error
	if cfg.BotToken == "" {
		logger.Critical("botToken missing (.env)", "Main")
		os.Exit(1)
	}

	// Initialize error handler
	var discordClient *discord.ExtendedClient
	errors.Init(cfg.ErrorWebhook, func() {
		if discordClient != nil {
			if err := discordClient.Stop(); err != nil {
				return
			}
		}
	})

	// Initialize the durable store and the engagement engine
	store, err := storage.New(cfg.DataDir)
	if err != nil {
		logger.Critical(fmt.Sprintf("Error preparing data directory: %v", err), "Main")
		os.Exit(1)
	}

	settings := config.InitSettings(cfg.SettingsPath)
	logger.Info("Guild settings: "+settings.String(), "Main")

	engine.Init(store, settings)

	// Initialize MQTT
	mqttClientID := "covenbot"
	if !cfg.IsProd() {
		mqttClientID = "covenbot_canary"
	}

	mqttClient := mqtt.Init(
		cfg.MQTTHost,
		cfg.MQTTPort,
		cfg.MQTTUser,
		cfg.MQTTPassword,
		mqttClientID,
	)
	defer mqttClient.Destroy()

	// Initialize web server
	webServer := web.Init(cfg.LogsWebServerHook)
	web.SetupAPIRoutes(webServer)
	webServer.StartAsync(cfg.Port)

	// Initialize Discord client
	discordClient, err = discord.Init(cfg.BotToken)
	if err != nil {
		logger.Critical(fmt.Sprintf("Error creating Discord client: %v", err), "Main")
		os.Exit(1)
	}

	// Register commands and events
	commands.RegisterAll(discordClient)
	events.RegisterAll(discordClient)

	// Start the bot
	if err := discordClient.Start(); err != nil {
		logger.Critical(fmt.Sprintf("Error starting Discord client: %v", err), "Main")
		os.Exit(1)
	}
	defer func() {
		if err := discordClient.Stop(); err != nil {
			logger.Warn(fmt.Sprintf("Error stopping Discord client: %v", err), "Main")
		}
	}()

	logger.Success("CovenBot Go started!", "Main")

	// Wait for interrupt signal
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	logger.System("Shutting down CovenBot Go...", "Main")
}

// getCurrentDir returns the current working directory
func getCurrentDir() string {
	dir, err := os.Getwd()
	if err != nil {
		return "unknown"
	}
	return dir
}
