// Package discord provides the event handler for managing Discord events.
package discord

import (
	"sync"

	"github.com/PancyStudios/CovenBotGo/pkg/logger"
	"github.com/bwmarrin/discordgo"
)

// EventHandler manages event registration
type EventHandler struct {
	client *ExtendedClient
	events []interface{}
	mu     sync.RWMutex
}

// NewEventHandler creates a new EventHandler
func NewEventHandler(client *ExtendedClient) *EventHandler {
	return &EventHandler{
		client: client,
		events: make([]interface{}, 0),
	}
}

// RegisterEvent adds an event handler to the Discord session
func (eh *EventHandler) RegisterEvent(handler interface{}) {
	eh.client.Session.AddHandler(handler)
	eh.mu.Lock()
	eh.events = append(eh.events, handler)
	eh.mu.Unlock()
}

// Event handler types for the Discord events the bot listens to

// ReadyHandler is called when the bot is ready
type ReadyHandler func(s *discordgo.Session, r *discordgo.Ready)

// MessageCreateHandler is called when a message is created
type MessageCreateHandler func(s *discordgo.Session, m *discordgo.MessageCreate)

// MessageDeleteHandler is called when a message is deleted
type MessageDeleteHandler func(s *discordgo.Session, m *discordgo.MessageDelete)

// GuildMemberAddHandler is called when a member joins a guild
type GuildMemberAddHandler func(s *discordgo.Session, m *discordgo.GuildMemberAdd)

// GuildMemberRemoveHandler is called when a member leaves a guild
type GuildMemberRemoveHandler func(s *discordgo.Session, m *discordgo.GuildMemberRemove)

// MessageReactionAddHandler is called when a reaction is added to a message
type MessageReactionAddHandler func(s *discordgo.Session, r *discordgo.MessageReactionAdd)

// The conversions below matter: discordgo type-switches on the exact
// func(*Session, *Event) type, so the named handler types must be
// converted back before AddHandler sees them.

// OnReady registers a ready event handler
func (eh *EventHandler) OnReady(handler ReadyHandler) {
	eh.RegisterEvent((func(*discordgo.Session, *discordgo.Ready))(handler))
	logger.Debug("Event 'Ready' registered", "EventHandler")
}

// OnMessageCreate registers a message create event handler
func (eh *EventHandler) OnMessageCreate(handler MessageCreateHandler) {
	eh.RegisterEvent((func(*discordgo.Session, *discordgo.MessageCreate))(handler))
	logger.Debug("Event 'MessageCreate' registered", "EventHandler")
}

// OnMessageDelete registers a message delete event handler
func (eh *EventHandler) OnMessageDelete(handler MessageDeleteHandler) {
	eh.RegisterEvent((func(*discordgo.Session, *discordgo.MessageDelete))(handler))
	logger.Debug("Event 'MessageDelete' registered", "EventHandler")
}

// OnGuildMemberAdd registers a guild member add event handler
func (eh *EventHandler) OnGuildMemberAdd(handler GuildMemberAddHandler) {
	eh.RegisterEvent((func(*discordgo.Session, *discordgo.GuildMemberAdd))(handler))
	logger.Debug("Event 'GuildMemberAdd' registered", "EventHandler")
}

// OnGuildMemberRemove registers a guild member remove event handler
func (eh *EventHandler) OnGuildMemberRemove(handler GuildMemberRemoveHandler) {
	eh.RegisterEvent((func(*discordgo.Session, *discordgo.GuildMemberRemove))(handler))
	logger.Debug("Event 'GuildMemberRemove' registered", "EventHandler")
}

// OnMessageReactionAdd registers a reaction add event handler
func (eh *EventHandler) OnMessageReactionAdd(handler MessageReactionAddHandler) {
	eh.RegisterEvent((func(*discordgo.Session, *discordgo.MessageReactionAdd))(handler))
	logger.Debug("Event 'MessageReactionAdd' registered", "EventHandler")
}
