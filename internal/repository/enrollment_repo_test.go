package repository

import (
	"context"
	"errors"
	"strings"
	"testing"

	"bpo-website/internal/models"
)

func TestEnrollmentRepo_NotConfigured(t *testing.T) {
	repo := NewEnrollmentRepo(nil)

	if err := repo.Create(context.Background(), &models.Enrollment{}); !errors.Is(err, ErrNotConfigured) {
		t.Fatalf("expected ErrNotConfigured, got %v", err)
	}
	if _, err := repo.List(context.Background(), models.EnrollmentFilter{}); !errors.Is(err, ErrNotConfigured) {
		t.Fatalf("expected ErrNotConfigured, got %v", err)
	}
}

func TestBuildEnrollmentQuery(t *testing.T) {
	tests := []struct {
		name       string
		filter     models.EnrollmentFilter
		wantWhere  []string
		wantArgs   []interface{}
		wantLimitN string
	}{
		{
			name:       "no filters",
			filter:     models.EnrollmentFilter{},
			wantArgs:   []interface{}{100},
			wantLimitN: "LIMIT $1",
		},
		{
			name:       "status only",
			filter:     models.EnrollmentFilter{Status: "pending", Limit: 10},
			wantWhere:  []string{"status = $1"},
			wantArgs:   []interface{}{"pending", 10},
			wantLimitN: "LIMIT $2",
		},
		{
			name:       "status and email",
			filter:     models.EnrollmentFilter{Status: "pending", Email: "ana@x.com", Limit: 500},
			wantWhere:  []string{"status = $1", "email = $2"},
			wantArgs:   []interface{}{"pending", "ana@x.com", 100},
			wantLimitN: "LIMIT $3",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			query, args := buildEnrollmentQuery(tc.filter)
			for _, w := range tc.wantWhere {
				if !strings.Contains(query, w) {
					t.Errorf("query missing %q: %s", w, query)
				}
			}
			if !strings.Contains(query, tc.wantLimitN) {
				t.Errorf("query missing %q: %s", tc.wantLimitN, query)
			}
			if strings.Contains(query, "ana@x.com") || strings.Contains(query, "'pending'") {
				t.Errorf("values must be bound, not interpolated: %s", query)
			}
			if len(args) != len(tc.wantArgs) {
				t.Fatalf("expected %d args, got %d", len(tc.wantArgs), len(args))
			}
			for i := range args {
				if args[i] != tc.wantArgs[i] {
					t.Errorf("arg %d: expected %v, got %v", i, tc.wantArgs[i], args[i])
				}
			}
		})
	}
}
