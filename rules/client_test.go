package rules

import (
	"testing"

	"Gin_postgres_redis_game_loans/models"
)

func TestFindDuplicateClientName(t *testing.T) {
	existing := []models.Client{
		{ID: 7, Name: "Alice"},
		{ID: 8, Name: "alice"},
		{ID: 9, Name: "Bob"},
	}

	tests := []struct {
		name      string
		candidate string
		id        int64
		wantID    int64 // 0 表示不应撞名
	}{
		{"self excluded, case-insensitive hit on other", "Alice", 7, 8},
		{"new client, exact hit", "Bob", 0, 9},
		{"new client, different case hit", "ALICE", 0, 7},
		{"new client, no conflict", "Carol", 0, 0},
		{"editing own unchanged name, no other match", "Bob", 9, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FindDuplicateClientName(tt.candidate, tt.id, existing)
			if tt.wantID == 0 {
				if got != nil {
					t.Fatalf("got %+v, want no duplicate", got)
				}
				return
			}
			if got == nil || got.ID != tt.wantID {
				t.Fatalf("got %+v, want client id %d", got, tt.wantID)
			}
		})
	}
}

func TestFindDuplicateClientNameEmptySnapshot(t *testing.T) {
	if got := FindDuplicateClientName("Bob", 0, nil); got != nil {
		t.Fatalf("got %+v, want nil", got)
	}
}
