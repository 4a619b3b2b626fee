package linear_test

import (
	"bytes"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/require"
	"go.trai.ch/decider/internal/adapters/linear"
	"go.trai.ch/decider/internal/core/domain"
)

func sampleRecord() *domain.PlanRecord {
	return &domain.PlanRecord{
		Key:     "abc",
		Version: domain.PlanRecordVersion,
		Targets: []string{"cat/one", "cat/block"},
		Steps: []domain.PlanStep{
			{
				Resolvent:  "cat/two:0 -> install_to_slash",
				Decision:   "changes_to_make",
				Taken:      true,
				Package:    "cat/two-1.0:0::gentoo",
				ChangeType: "new",
				Reasons:    []string{"dependency of cat/one-2.0:0::gentoo"},
			},
			{
				Resolvent:     "cat/one:0 -> install_to_slash",
				Decision:      "changes_to_make",
				Taken:         true,
				Package:       "cat/one-2.0:0::gentoo",
				ChangeType:    "upgrade",
				Replacing:     []string{"cat/one-1.0:0::vdb"},
				Confirmations: []string{"masked"},
				Reasons:       []string{"target"},
			},
			{
				Resolvent:  "cat/one:0 -> create_binaries",
				Decision:   "changes_to_make",
				Taken:      true,
				Package:    "cat/one-2.0:0::gentoo",
				ChangeType: "new",
			},
			{
				Resolvent: "cat/lib:0 -> install_to_slash",
				Decision:  "existing_no_change",
				Taken:     true,
				Package:   "cat/lib-1.0:0::vdb",
			},
			{
				Resolvent:     "cat/old:0 -> install_to_slash",
				Decision:      "remove",
				Taken:         true,
				Replacing:     []string{"cat/old-1.0:0::vdb"},
				Confirmations: []string{"remove_system_package"},
			},
			{
				Resolvent: "cat/unused:0 -> install_to_slash",
				Decision:  "remove",
				Replacing: []string{"cat/unused-1.0:0::vdb"},
			},
			{
				Resolvent:     "cat/dep:0 -> install_to_slash",
				Decision:      "break",
				Taken:         true,
				Package:       "cat/dep-1.0:0::vdb",
				Confirmations: []string{"break"},
			},
			{
				Resolvent: "cat/four:0 -> install_to_slash",
				Decision:  "changes_to_make",
				Package:   "cat/four-1.0:0::gentoo",
			},
			{
				Resolvent:  "cat/missing:0 -> install_to_slash",
				Decision:   "unable_to_make",
				Taken:      true,
				Unsuitable: []string{"cat/missing-1.0:0::gentoo (masked: keyword ~amd64)"},
			},
		},
	}
}

func TestRenderer_Render(t *testing.T) {
	tests := []struct {
		name    string
		record  *domain.PlanRecord
		cached  bool
		verbose bool
	}{
		{name: "plan", record: sampleRecord()},
		{name: "plan_verbose", record: sampleRecord(), verbose: true},
		{name: "plan_cached", record: sampleRecord(), cached: true},
		{name: "plan_empty", record: &domain.PlanRecord{Targets: []string{"cat/one"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("NO_COLOR", "1")

			buf := &bytes.Buffer{}
			r := linear.NewRenderer(buf)
			r.Verbose = tt.verbose

			require.NoError(t, r.Render(tt.record, tt.cached))

			g := goldie.New(t)
			g.Assert(t, tt.name, buf.Bytes())
		})
	}
}
