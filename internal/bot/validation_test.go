package bot

import (
	"testing"

	"github.com/F1rebeard/progress-project-bot/internal/models"
)

func TestParseResultValue(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		timeBased bool
		want      float64
		wantErr   bool
	}{
		{"plain integer", "75", false, 75, false},
		{"dot decimal", "72.5", false, 72.5, false},
		{"comma decimal", "72,5", false, 72.5, false},
		{"time MM:SS", "2:30", true, 150, false},
		{"time with spaces", " 1:05 ", true, 65, false},
		{"time as seconds", "150", true, 150, false},
		{"zero seconds", "0:45", true, 45, false},
		{"garbage", "abc", false, 0, true},
		{"garbage time", "a:b", true, 0, true},
		{"colon in plain value", "1:30", false, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseResultValue(tt.text, tt.timeBased)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("parseResultValue(%q) = %v, want error", tt.text, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseResultValue(%q) error = %v", tt.text, err)
			}
			if got != tt.want {
				t.Errorf("parseResultValue(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestParseReps(t *testing.T) {
	if reps, err := parseReps(" 12 "); err != nil || reps != 12 {
		t.Errorf("parseReps(\" 12 \") = (%d, %v), want (12, nil)", reps, err)
	}
	if _, err := parseReps("много"); err == nil {
		t.Error("parseReps(\"много\") must fail")
	}
	if _, err := parseReps("12.5"); err == nil {
		t.Error("parseReps(\"12.5\") must fail, reps are integral")
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		text    string
		want    models.UserLevel
		wantErr bool
	}{
		{"Первый", models.LevelFirst, false},
		{"Второй", models.LevelSecond, false},
		{"Минкайфа", models.LevelMinkaifa, false},
		{"Соревнования", models.LevelCompetition, false},
		{"Старт", models.LevelStart, false},
		{" Старт ", models.LevelStart, false},
		{"Профи", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		got, err := parseLevel(tt.text)
		if tt.wantErr {
			if err == nil {
				t.Errorf("parseLevel(%q) = %q, want error", tt.text, got)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Errorf("parseLevel(%q) = (%q, %v), want (%q, nil)", tt.text, got, err, tt.want)
		}
	}
}

func TestParseBodyWeight(t *testing.T) {
	tests := []struct {
		text    string
		want    float64
		wantErr bool
	}{
		{"70.2", 70.2, false},
		{"70,2", 70.2, false},
		{"29", 0, true},
		{"300", 0, true},
		{"тяжёлый", 0, true},
	}

	for _, tt := range tests {
		got, err := parseBodyWeight(tt.text)
		if tt.wantErr {
			if err == nil {
				t.Errorf("parseBodyWeight(%q) = %v, want error", tt.text, got)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Errorf("parseBodyWeight(%q) = (%v, %v), want (%v, nil)", tt.text, got, err, tt.want)
		}
	}
}
