package mqtt

import "testing"

func TestTopicMatch(t *testing.T) {
	tests := []struct {
		pattern string
		topic   string
		want    bool
	}{
		{"coven/events/levelup", "coven/events/levelup", true},
		{"coven/events/levelup", "coven/events/flood", false},
		{"coven/events/+", "coven/events/levelup", true},
		{"coven/events/+", "coven/events/levelup/extra", false},
		{"coven/#", "coven/events/levelup", true},
		{"coven/#", "coven", true},
		{"coven/+/levelup", "coven/events/levelup", true},
		{"coven/events", "coven/events/levelup", false},
	}

	for _, tt := range tests {
		if got := topicMatch(tt.pattern, tt.topic); got != tt.want {
			t.Errorf("topicMatch(%q, %q) = %v, want %v", tt.pattern, tt.topic, got, tt.want)
		}
	}
}
