// Guild engagement settings. Unlike the .env values these describe a single
// community (channels, roles, tuning for the engagement engine) and live in a
// JSON file so moderators can edit them without touching the deployment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"sync"

	json "github.com/goccy/go-json"
)

// EconomySettings tunes the currency ledger.
type EconomySettings struct {
	CurrencyName       string
	MoneyPerMessageMin int
	MoneyPerMessageMax int
	DailyAmount        int
}

// DoorsSettings tunes the DOORS mini-game. The outcome bands are configurable
// because the right cutoffs are a balance decision, not a constant.
type DoorsSettings struct {
	FinalRoom       int
	CompletionBonus int
	MonsterChance   float64
	SafeChance      float64
	HideBonus       float64
	RewardMin       int
	RewardMax       int
}

// Settings holds the per-guild engagement configuration.
type Settings struct {
	GuildID string

	// Verification by reaction
	VerifyChannelID string
	VerifyMessageID string
	VerifiedRoleID  string
	VerifyEmoji     string

	// Channels
	WelcomeChannelID string
	LogChannelID     string
	LevelChannelID   string
	FloodChannelID   string

	// Ambient broadcast loop
	WhisperChannelID       string
	WhisperIntervalMinutes int

	// Flood control
	SpamMaxMsgs       int
	SpamWindowSeconds int
	MuteMinutes       int
	MutedRoleID       string

	// Progression
	XPCooldownSeconds int
	XPPerMessageMin   int
	XPPerMessageMax   int
	LevelRoles        map[int]string

	Economy EconomySettings
	Doors   DoorsSettings
}

var (
	settings     *Settings
	settingsOnce sync.Once
)

// DefaultSettings returns the documented defaults for every tunable.
func DefaultSettings() *Settings {
	return &Settings{
		VerifyEmoji:            "🩸",
		WhisperIntervalMinutes: 240,
		SpamMaxMsgs:            6,
		SpamWindowSeconds:      5,
		MuteMinutes:            2,
		XPCooldownSeconds:      30,
		XPPerMessageMin:        5,
		XPPerMessageMax:        15,
		LevelRoles:             map[int]string{},
		Economy: EconomySettings{
			CurrencyName:       "Blood",
			MoneyPerMessageMin: 1,
			MoneyPerMessageMax: 3,
			DailyAmount:        250,
		},
		Doors: DoorsSettings{
			FinalRoom:       20,
			CompletionBonus: 50,
			MonsterChance:   0.22,
			SafeChance:      0.23,
			HideBonus:       0.20,
			RewardMin:       1,
			RewardMax:       4,
		},
	}
}

// InitSettings loads the settings file once and keeps the result for the
// process lifetime. A missing or unreadable file yields the defaults; it
// never aborts startup.
func InitSettings(path string) *Settings {
	settingsOnce.Do(func() {
		settings = LoadSettingsFile(path)
	})
	return settings
}

// GetSettings returns the loaded guild settings (defaults if InitSettings
// was never called).
func GetSettings() *Settings {
	settingsOnce.Do(func() {
		settings = DefaultSettings()
	})
	return settings
}

// resetSettingsForTesting resets the settings singleton. Test code only.
func resetSettingsForTesting() {
	settings = nil
	settingsOnce = sync.Once{}
}

// LoadSettingsFile parses a settings JSON file. Missing keys fall back to the
// defaults; integers that are present but malformed fall back to zero.
func LoadSettingsFile(path string) *Settings {
	s := DefaultSettings()

	data, err := os.ReadFile(path)
	if err != nil {
		return s
	}

	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return s
	}

	s.GuildID = idOr(raw, "guild_id", s.GuildID)

	s.VerifyChannelID = idOr(raw, "verify_channel_id", s.VerifyChannelID)
	s.VerifyMessageID = idOr(raw, "verify_message_id", s.VerifyMessageID)
	s.VerifiedRoleID = idOr(raw, "verified_role_id", s.VerifiedRoleID)
	s.VerifyEmoji = strOr(raw, "verify_emoji", s.VerifyEmoji)

	s.WelcomeChannelID = idOr(raw, "welcome_channel_id", s.WelcomeChannelID)
	s.LogChannelID = idOr(raw, "log_channel_id", s.LogChannelID)
	s.LevelChannelID = idOr(raw, "level_channel_id", s.LevelChannelID)
	s.FloodChannelID = idOr(raw, "flood_channel_id", s.FloodChannelID)

	s.WhisperChannelID = idOr(raw, "whisper_channel_id", s.WhisperChannelID)
	s.WhisperIntervalMinutes = intOr(raw, "whisper_interval_minutes", s.WhisperIntervalMinutes)

	s.SpamMaxMsgs = intOr(raw, "spam_max_msgs", s.SpamMaxMsgs)
	s.SpamWindowSeconds = intOr(raw, "spam_window_seconds", s.SpamWindowSeconds)
	s.MuteMinutes = intOr(raw, "mute_minutes", s.MuteMinutes)
	s.MutedRoleID = idOr(raw, "muted_role_id", s.MutedRoleID)

	s.XPCooldownSeconds = intOr(raw, "xp_cooldown_seconds", s.XPCooldownSeconds)
	s.XPPerMessageMin = intOr(raw, "xp_per_message_min", s.XPPerMessageMin)
	s.XPPerMessageMax = intOr(raw, "xp_per_message_max", s.XPPerMessageMax)
	s.LevelRoles = levelRolesOr(raw, "levels", s.LevelRoles)

	if eco, ok := raw["economy"].(map[string]any); ok {
		s.Economy.CurrencyName = strOr(eco, "currency_name", s.Economy.CurrencyName)
		s.Economy.MoneyPerMessageMin = intOr(eco, "money_per_message_min", s.Economy.MoneyPerMessageMin)
		s.Economy.MoneyPerMessageMax = intOr(eco, "money_per_message_max", s.Economy.MoneyPerMessageMax)
		s.Economy.DailyAmount = intOr(eco, "daily_amount", s.Economy.DailyAmount)
	}

	if doors, ok := raw["doors"].(map[string]any); ok {
		s.Doors.FinalRoom = intOr(doors, "final_room", s.Doors.FinalRoom)
		s.Doors.CompletionBonus = intOr(doors, "completion_bonus", s.Doors.CompletionBonus)
		s.Doors.MonsterChance = floatOr(doors, "monster_chance", s.Doors.MonsterChance)
		s.Doors.SafeChance = floatOr(doors, "safe_chance", s.Doors.SafeChance)
		s.Doors.HideBonus = floatOr(doors, "hide_bonus", s.Doors.HideBonus)
		s.Doors.RewardMin = intOr(doors, "reward_min", s.Doors.RewardMin)
		s.Doors.RewardMax = intOr(doors, "reward_max", s.Doors.RewardMax)
	}

	return s
}

// strOr reads a string key, falling back when missing or not a string.
func strOr(m map[string]any, key, fallback string) string {
	if v, ok := m[key].(string); ok {
		return v
	}
	return fallback
}

// intOr reads an integer key. Missing keys fall back; present-but-malformed
// values become zero rather than aborting startup.
func intOr(m map[string]any, key string, fallback int) int {
	v, ok := m[key]
	if !ok {
		return fallback
	}
	switch n := v.(type) {
	case float64:
		return int(n)
	case string:
		parsed, err := strconv.Atoi(n)
		if err != nil {
			return 0
		}
		return parsed
	default:
		return 0
	}
}

// floatOr reads a float key with the same missing/malformed policy as intOr.
func floatOr(m map[string]any, key string, fallback float64) float64 {
	v, ok := m[key]
	if !ok {
		return fallback
	}
	switch n := v.(type) {
	case float64:
		return n
	case string:
		parsed, err := strconv.ParseFloat(n, 64)
		if err != nil {
			return 0
		}
		return parsed
	default:
		return 0
	}
}

// idOr reads a Discord snowflake that may appear as a JSON string or number.
func idOr(m map[string]any, key, fallback string) string {
	v, ok := m[key]
	if !ok {
		return fallback
	}
	switch id := v.(type) {
	case string:
		return id
	case float64:
		return strconv.FormatInt(int64(id), 10)
	default:
		return fallback
	}
}

// levelRolesOr parses the level→role map. Keys are level numbers, values are
// role snowflakes; entries that do not parse are skipped.
func levelRolesOr(m map[string]any, key string, fallback map[int]string) map[int]string {
	raw, ok := m[key].(map[string]any)
	if !ok {
		return fallback
	}

	roles := make(map[int]string, len(raw))
	for lvlStr, v := range raw {
		lvl, err := strconv.Atoi(lvlStr)
		if err != nil {
			continue
		}
		roleID := idOr(map[string]any{"r": v}, "r", "")
		if roleID == "" {
			continue
		}
		roles[lvl] = roleID
	}
	return roles
}

// String implements a compact diagnostic form used at startup.
func (s *Settings) String() string {
	return fmt.Sprintf("guild=%s spam=%d/%ds cooldown=%ds currency=%s",
		s.GuildID, s.SpamMaxMsgs, s.SpamWindowSeconds, s.XPCooldownSeconds, s.Economy.CurrencyName)
}
