package metrics

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gatherValue(t *testing.T, reg *prom.Registry, name string, labels map[string]string) float64 {
	t.Helper()
	mfs, err := reg.Gather()
	require.NoError(t, err)
	for _, mf := range mfs {
		if mf.GetName() != name {
			continue
		}
	next:
		for _, m := range mf.GetMetric() {
			for _, lp := range m.GetLabel() {
				if labels[lp.GetName()] != lp.GetValue() {
					continue next
				}
			}
			switch {
			case m.GetCounter() != nil:
				return m.GetCounter().GetValue()
			case m.GetGauge() != nil:
				return m.GetGauge().GetValue()
			case m.GetHistogram() != nil:
				return float64(m.GetHistogram().GetSampleCount())
			}
		}
	}
	t.Fatalf("metric %s %v not found", name, labels)
	return 0
}

func TestPrometheusRecorder_Counts(t *testing.T) {
	reg := prom.NewRegistry()
	pr := NewPrometheusRecorder(reg)

	pr.ObserveStageDuration("render", 150*time.Millisecond)
	pr.ObserveBuildDuration(500 * time.Millisecond)
	pr.IncBuildOutcome(OutcomeSuccess)
	pr.IncPagesRendered()
	pr.IncPagesRendered()
	pr.IncReference("page", ResultResolved)
	pr.IncReference("media", ResultUnresolved)
	pr.IncReference("page", ResultResolved)
	pr.AddAssetsCopied(3)
	pr.SetNavPages(7)

	assert.InDelta(t, 2, gatherValue(t, reg, "docnav_pages_rendered_total", nil), 0)
	assert.InDelta(t, 2, gatherValue(t, reg, "docnav_references_total", map[string]string{"kind": "page", "result": "resolved"}), 0)
	assert.InDelta(t, 1, gatherValue(t, reg, "docnav_references_total", map[string]string{"kind": "media", "result": "unresolved"}), 0)
	assert.InDelta(t, 3, gatherValue(t, reg, "docnav_assets_copied_total", nil), 0)
	assert.InDelta(t, 7, gatherValue(t, reg, "docnav_nav_pages", nil), 0)
	assert.InDelta(t, 1, gatherValue(t, reg, "docnav_build_outcomes_total", map[string]string{"outcome": "success"}), 0)
	assert.InDelta(t, 1, gatherValue(t, reg, "docnav_stage_duration_seconds", map[string]string{"stage": "render"}), 0)
	assert.Same(t, reg, pr.Registry())
}

func TestPrometheusRecorder_WriteTextfile(t *testing.T) {
	pr := NewPrometheusRecorder(nil)
	pr.IncPagesRendered()

	path := filepath.Join(t.TempDir(), "docnav.prom")
	require.NoError(t, pr.WriteTextfile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "docnav_pages_rendered_total 1")
}
