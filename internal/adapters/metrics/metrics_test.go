package metrics_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/decider/internal/adapters/metrics"
	"go.trai.ch/decider/internal/core/domain"
)

func TestObserver_Textfile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "decider.prom")
	obs := metrics.New(path)
	r := domain.NewResolvent("cat/one", domain.NewSlotName("0"), domain.DestinationInstallToSlash)

	obs.OnStage(domain.StageDecidingNonSuggestions)
	obs.OnStage(domain.StageDecidingNonSuggestions)
	obs.OnStage(domain.StageConfirmations)
	obs.OnStep(r)
	obs.OnStep(r)
	obs.OnRestart(1, r)
	obs.ObservePlan(50*time.Millisecond, &domain.Plan{Resolutions: []*domain.Resolution{
		{Resolvent: r, Decision: &domain.ChangesToMakeDecision{Taken: true}},
		{Resolvent: r, Decision: &domain.ChangesToMakeDecision{Taken: true}},
		{Resolvent: r},
	}})
	require.NoError(t, obs.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	text := string(data)

	assert.Contains(t, text, "decider_steps_total 2\n")
	assert.Contains(t, text, "decider_restarts_total 1\n")
	assert.Contains(t, text, `decider_stage_transitions_total{stage="deciding_non_suggestions"} 2`)
	assert.Contains(t, text, `decider_stage_transitions_total{stage="confirmations"} 1`)
	assert.Contains(t, text, `decider_plan_resolutions{decision="changes_to_make"} 2`)
	assert.Contains(t, text, "decider_resolution_duration_seconds_count 1\n")
}

func TestObserver_NoPath(t *testing.T) {
	obs := metrics.New("")
	obs.OnStep(domain.Resolvent{})

	require.NoError(t, obs.Close())

	families, err := obs.Registry().Gather()
	require.NoError(t, err)
	assert.NotEmpty(t, families)
}
