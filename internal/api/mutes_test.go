package api

import "testing"

func TestValidClock(t *testing.T) {
	ip := func(v int) *int { return &v }

	tests := []struct {
		name  string
		hours *int
		mins  *int
		want  bool
	}{
		{"both in range", ip(22), ip(30), true},
		{"midnight", ip(0), ip(0), true},
		{"last minute of the day", ip(23), ip(59), true},
		{"hours absent", nil, ip(15), true},
		{"minutes absent", ip(9), nil, true},
		{"both absent", nil, nil, true},
		{"hours too large", ip(600), ip(0), false},
		{"hours just over", ip(24), ip(0), false},
		{"minutes too large", ip(10), ip(60), false},
		{"negative hours", ip(-1), ip(30), false},
		{"negative minutes", ip(10), ip(-5), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := validClock(tt.hours, tt.mins); got != tt.want {
				t.Errorf("validClock() = %v, want %v", got, tt.want)
			}
		})
	}
}
