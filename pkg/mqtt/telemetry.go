// Telemetry events published to the broker so external dashboards can
// follow engagement activity without talking to Discord.
package mqtt

import (
	"fmt"
	"time"

	"github.com/PancyStudios/CovenBotGo/pkg/logger"
)

// LevelUpEvent is emitted when a member reaches a new level.
type LevelUpEvent struct {
	GuildID   string    `json:"guildId"`
	UserID    string    `json:"userId"`
	Level     int       `json:"level"`
	XP        int       `json:"xp"`
	Timestamp time.Time `json:"timestamp"`
}

// FloodEvent is emitted when the rate limiter trips for a member.
type FloodEvent struct {
	GuildID   string    `json:"guildId"`
	UserID    string    `json:"userId"`
	ChannelID string    `json:"channelId"`
	Timestamp time.Time `json:"timestamp"`
}

// DoorsSettledEvent is emitted when a mini-game run pays out.
type DoorsSettledEvent struct {
	UserID    string    `json:"userId"`
	Room      int       `json:"room"`
	Amount    int       `json:"amount"`
	Completed bool      `json:"completed"`
	Died      bool      `json:"died"`
	Timestamp time.Time `json:"timestamp"`
}

// Emit publishes a telemetry event under coven/events. A nil global
// communicator or a broken broker connection is logged and swallowed so
// telemetry never blocks the event pipeline.
func Emit(kind string, event interface{}) {
	mc := Get()
	if mc == nil || !mc.IsConnected() {
		return
	}

	topic := fmt.Sprintf("coven/events/%s", kind)
	if err := mc.Publish(topic, event); err != nil {
		logger.Warn(fmt.Sprintf("Failed to publish %s event: %v", kind, err), "MQTT")
	}
}
