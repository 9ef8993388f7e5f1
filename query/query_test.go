package query

import (
	"testing"
	"time"

	"Gin_postgres_redis_game_loans/models"
)

func TestQuerySpecValuesOmitsAbsentFilters(t *testing.T) {
	g := &models.Game{ID: 3, Title: "Azul"}

	s := NewLoanSearch(5)
	s.FilterGame(g)
	v := s.Spec().Values()

	if got := v.Get("idGame"); got != "3" {
		t.Fatalf("idGame = %q, want 3", got)
	}
	// 没给的过滤条件连键都不该出现
	for _, k := range []string{"idClient", "date"} {
		if _, ok := v[k]; ok {
			t.Fatalf("unexpected key %q in %v", k, v)
		}
	}
}

func TestQuerySpecValuesAllFilters(t *testing.T) {
	s := NewLoanSearch(5)
	s.FilterGame(&models.Game{ID: 3})
	s.FilterClient(&models.Client{ID: 7})
	at := time.Date(2024, time.March, 5, 17, 45, 3, 0, time.Local)
	s.FilterDate(&at)

	v := s.Spec().Values()
	if got := v.Get("idClient"); got != "7" {
		t.Fatalf("idClient = %q, want 7", got)
	}
	// 时分秒被丢掉，规范化成 YYYY-MM-DD
	if got := v.Get("date"); got != "2024-03-05" {
		t.Fatalf("date = %q, want 2024-03-05", got)
	}
}

func TestFilterChangeResetsPage(t *testing.T) {
	s := NewLoanSearch(5)
	s.SetPage(4)

	tests := []struct {
		name   string
		mutate func()
	}{
		{"game filter", func() { s.FilterGame(&models.Game{ID: 1}) }},
		{"client filter", func() { s.FilterClient(&models.Client{ID: 2}) }},
		{"date filter", func() { now := time.Now(); s.FilterDate(&now) }},
		{"clearing a filter", func() { s.FilterGame(nil) }},
		{"clear all", func() { s.ClearFilters() }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s.SetPage(4)
			tt.mutate()
			if s.Page() != 0 {
				t.Fatalf("page = %d after %s, want 0", s.Page(), tt.name)
			}
		})
	}
}

func TestPaginationDefaultsAndSetters(t *testing.T) {
	s := NewLoanSearch(0)
	if s.PageSize() != DefaultPageSize {
		t.Fatalf("page size = %d, want %d", s.PageSize(), DefaultPageSize)
	}

	s.SetPage(-1)
	if s.Page() != 0 {
		t.Fatalf("negative page accepted: %d", s.Page())
	}

	// 只翻页不改过滤，页码要保住
	s.FilterGame(&models.Game{ID: 1})
	s.SetPage(2)
	s.SetPageSize(20)
	spec := s.Spec()
	if spec.Pageable.PageNumber != 2 || spec.Pageable.PageSize != 20 {
		t.Fatalf("pageable = %+v, want page 2 size 20", spec.Pageable)
	}
}
