package bot

import (
	"testing"
	"time"

	"github.com/F1rebeard/progress-project-bot/internal/config"
	"github.com/F1rebeard/progress-project-bot/internal/models"
)

func TestIsAdmin(t *testing.T) {
	b := &Bot{config: &config.Config{AdminIDs: []int64{10, 20}}}

	if !b.isAdmin(10) || !b.isAdmin(20) {
		t.Error("ids from ADMIN_IDS must be admins")
	}
	if b.isAdmin(30) {
		t.Error("id 30 is not in ADMIN_IDS")
	}

	empty := &Bot{config: &config.Config{}}
	if empty.isAdmin(10) {
		t.Error("nobody is admin with empty ADMIN_IDS")
	}
}

func TestSubscriptionEndDate(t *testing.T) {
	from := time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		subType models.SubscriptionType
		want    time.Time
	}{
		{models.SubStandard, time.Date(2026, 2, 15, 0, 0, 0, 0, time.UTC)},
		{models.SubWithCurator, time.Date(2026, 2, 15, 0, 0, 0, 0, time.UTC)},
		{models.SubOneMonthStart, time.Date(2026, 2, 15, 0, 0, 0, 0, time.UTC)},
		{models.SubStartProgram, time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		if got := subscriptionEndDate(tt.subType, from); !got.Equal(tt.want) {
			t.Errorf("subscriptionEndDate(%q) = %v, want %v", tt.subType, got, tt.want)
		}
	}
}
