package domain_test

import (
	"testing"

	"incubator/internal/modules/training/domain"
)

func ids(ws []domain.Workshop) []string {
	out := make([]string, 0, len(ws))
	for _, w := range ws {
		out = append(out, w.ID)
	}
	return out
}

func TestSortChronological(t *testing.T) {
	t.Parallel()
	ws := []domain.Workshop{
		{ID: "tbd"},
		{ID: "late", Date: "2024-05-02", Time: "09:00"},
		{ID: "early", Date: "2024-05-02", Time: "08:00"},
		{ID: "iso", Date: "2024-04-01T10:00:00Z"},
	}
	domain.SortChronological(ws)
	got := ids(ws)
	want := []string{"iso", "early", "late", "tbd"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("want %v got %v", want, got)
		}
	}

	domain.SortRecentFirst(ws)
	got = ids(ws)
	want = []string{"late", "early", "iso", "tbd"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("want %v got %v", want, got)
		}
	}
}
