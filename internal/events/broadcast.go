// Ambient broadcast loop: periodic flavor text posted to the configured
// channel so the server never feels quite safe.
package events

import (
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/PancyStudios/CovenBotGo/pkg/config"
	"github.com/PancyStudios/CovenBotGo/pkg/errors"
	"github.com/PancyStudios/CovenBotGo/pkg/logger"
	"github.com/bwmarrin/discordgo"
)

var whisperLines = []string{
	"🌑 Someone is watching from the shadows.",
	"👁️ Don't stare at the member list for too long.",
	"🩸 A door just creaked open.",
	"📡 Signal unstable...",
	"🔦 If the lights flicker, turn the volume down.",
}

var whispersOnce sync.Once

// startWhispers launches the broadcast loop once per process. The interval
// is floor-bounded at 5 minutes so a misconfigured value cannot spam.
func startWhispers(s *discordgo.Session) {
	cfg := config.GetSettings()
	if cfg.WhisperChannelID == "" {
		logger.Debug("Whisper channel not configured, broadcast loop disabled", "Whispers")
		return
	}

	whispersOnce.Do(func() {
		interval := time.Duration(cfg.WhisperIntervalMinutes) * time.Minute
		if interval < 5*time.Minute {
			interval = 5 * time.Minute
		}

		logger.System(fmt.Sprintf("🕯️ Whisper loop started (every %s)", interval), "Whispers")

		go func() {
			defer errors.RecoverMiddleware()()

			for {
				time.Sleep(interval)
				whisper(s, cfg)
			}
		}()
	})
}

// whisper posts one flavor line with the hour and the current soul count.
func whisper(s *discordgo.Session, cfg *config.Settings) {
	line := whisperLines[rand.Intn(len(whisperLines))]

	souls := "???"
	if cfg.GuildID != "" {
		if guild, err := s.State.Guild(cfg.GuildID); err == nil && guild.MemberCount > 0 {
			souls = fmt.Sprintf("%d", guild.MemberCount)
		}
	}

	msg := fmt.Sprintf("%s\n⏳ %s — 👥 %s souls", line, time.Now().UTC().Format("15:04"), souls)

	if _, err := s.ChannelMessageSend(cfg.WhisperChannelID, msg); err != nil {
		logger.Warn(fmt.Sprintf("Failed to send whisper: %v", err), "Whispers")
	}
}
