package orchestration_test

import (
	"errors"
	"testing"

	apperrors "github.com/AniDashyan/parallel-summation/internal/errors"
	"github.com/AniDashyan/parallel-summation/internal/orchestration"
	"github.com/AniDashyan/parallel-summation/internal/summing"
)

func TestGetSummersToRun(t *testing.T) {
	t.Parallel()

	factory := summing.NewDefaultFactory()

	tests := []struct {
		name      string
		strategy  string
		wantNames []string
		wantErr   bool
	}{
		{
			name:      "all strategies in run order",
			strategy:  "all",
			wantNames: []string{"Single-threaded", "Lock-based", "Atomic-based", "Reduce-based"},
		},
		{
			name:      "single parallel strategy keeps the baseline",
			strategy:  "atomic",
			wantNames: []string{"Single-threaded", "Atomic-based"},
		},
		{
			name:      "baseline alone",
			strategy:  "single",
			wantNames: []string{"Single-threaded"},
		},
		{
			name:     "unknown strategy",
			strategy: "bogus",
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			summers, err := orchestration.GetSummersToRun(tt.strategy, factory)
			if tt.wantErr {
				var cfgErr apperrors.ConfigError
				if !errors.As(err, &cfgErr) {
					t.Fatalf("error = %v, want ConfigError", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if len(summers) != len(tt.wantNames) {
				t.Fatalf("got %d summers, want %d", len(summers), len(tt.wantNames))
			}
			for i, want := range tt.wantNames {
				if summers[i].Name() != want {
					t.Errorf("summers[%d].Name() = %q, want %q", i, summers[i].Name(), want)
				}
			}
		})
	}
}
