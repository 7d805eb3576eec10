package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeSettingsFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing settings file: %v", err)
	}
	return path
}

func TestLoadSettingsFileMissing(t *testing.T) {
	s := LoadSettingsFile(filepath.Join(t.TempDir(), "nope.json"))

	if s.SpamMaxMsgs != 6 {
		t.Errorf("SpamMaxMsgs = %v, want default 6", s.SpamMaxMsgs)
	}
	if s.XPCooldownSeconds != 30 {
		t.Errorf("XPCooldownSeconds = %v, want default 30", s.XPCooldownSeconds)
	}
	if s.Economy.DailyAmount != 250 {
		t.Errorf("Economy.DailyAmount = %v, want default 250", s.Economy.DailyAmount)
	}
	if s.Doors.FinalRoom != 20 {
		t.Errorf("Doors.FinalRoom = %v, want default 20", s.Doors.FinalRoom)
	}
}

func TestLoadSettingsFileMalformedJSON(t *testing.T) {
	path := writeSettingsFile(t, "{not json at all")

	s := LoadSettingsFile(path)
	if s.SpamWindowSeconds != 5 {
		t.Errorf("SpamWindowSeconds = %v, want default 5", s.SpamWindowSeconds)
	}
}

func TestLoadSettingsFileValues(t *testing.T) {
	path := writeSettingsFile(t, `{
		"guild_id": 123456789,
		"muted_role_id": "987654321",
		"spam_max_msgs": 10,
		"spam_window_seconds": 8,
		"xp_cooldown_seconds": 60,
		"levels": {"1": 111, "5": "555", "bad": 999},
		"economy": {"currency_name": "Souls", "daily_amount": 100},
		"doors": {"final_room": 10, "monster_chance": 0.5}
	}`)

	s := LoadSettingsFile(path)

	if s.GuildID != "123456789" {
		t.Errorf("GuildID = %v, want 123456789", s.GuildID)
	}
	if s.MutedRoleID != "987654321" {
		t.Errorf("MutedRoleID = %v, want 987654321", s.MutedRoleID)
	}
	if s.SpamMaxMsgs != 10 {
		t.Errorf("SpamMaxMsgs = %v, want 10", s.SpamMaxMsgs)
	}
	if s.SpamWindowSeconds != 8 {
		t.Errorf("SpamWindowSeconds = %v, want 8", s.SpamWindowSeconds)
	}
	if s.XPCooldownSeconds != 60 {
		t.Errorf("XPCooldownSeconds = %v, want 60", s.XPCooldownSeconds)
	}

	if got := s.LevelRoles[1]; got != "111" {
		t.Errorf("LevelRoles[1] = %v, want 111", got)
	}
	if got := s.LevelRoles[5]; got != "555" {
		t.Errorf("LevelRoles[5] = %v, want 555", got)
	}
	if _, ok := s.LevelRoles[999]; ok {
		t.Error("non-numeric level key should be skipped")
	}

	if s.Economy.CurrencyName != "Souls" {
		t.Errorf("CurrencyName = %v, want Souls", s.Economy.CurrencyName)
	}
	if s.Economy.DailyAmount != 100 {
		t.Errorf("DailyAmount = %v, want 100", s.Economy.DailyAmount)
	}
	// Untouched nested keys keep their defaults
	if s.Economy.MoneyPerMessageMin != 1 {
		t.Errorf("MoneyPerMessageMin = %v, want default 1", s.Economy.MoneyPerMessageMin)
	}

	if s.Doors.FinalRoom != 10 {
		t.Errorf("Doors.FinalRoom = %v, want 10", s.Doors.FinalRoom)
	}
	if s.Doors.MonsterChance != 0.5 {
		t.Errorf("Doors.MonsterChance = %v, want 0.5", s.Doors.MonsterChance)
	}
	if s.Doors.CompletionBonus != 50 {
		t.Errorf("Doors.CompletionBonus = %v, want default 50", s.Doors.CompletionBonus)
	}
}

func TestMalformedIntegersFallBackToZero(t *testing.T) {
	path := writeSettingsFile(t, `{
		"spam_max_msgs": "lots",
		"mute_minutes": [2],
		"xp_cooldown_seconds": "45"
	}`)

	s := LoadSettingsFile(path)

	if s.SpamMaxMsgs != 0 {
		t.Errorf("malformed spam_max_msgs = %v, want 0", s.SpamMaxMsgs)
	}
	if s.MuteMinutes != 0 {
		t.Errorf("malformed mute_minutes = %v, want 0", s.MuteMinutes)
	}
	// Numeric strings still parse
	if s.XPCooldownSeconds != 45 {
		t.Errorf("xp_cooldown_seconds = %v, want 45", s.XPCooldownSeconds)
	}
}

func TestSettingsSingleton(t *testing.T) {
	resetSettingsForTesting()

	s := GetSettings()
	if s == nil {
		t.Fatal("GetSettings() returned nil")
	}
	if s != GetSettings() {
		t.Error("GetSettings() should return the same instance")
	}
}
