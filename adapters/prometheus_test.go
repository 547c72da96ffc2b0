package adapters_test

import (
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/momentics/hioload-atom/adapters"
)

// fakeControl serves a fixed stats map so the exposition is deterministic.
type fakeControl struct {
	stats map[string]any
}

func (f *fakeControl) GetConfig() map[string]any             { return nil }
func (f *fakeControl) SetConfig(map[string]any) error        { return nil }
func (f *fakeControl) Stats() map[string]any                 { return f.stats }
func (f *fakeControl) OnReload(func())                       {}
func (f *fakeControl) RegisterDebugProbe(string, func() any) {}

func TestStatsCollectorExposition(t *testing.T) {
	ctrl := &fakeControl{stats: map[string]any{
		"alpha": int64(1),
		"nested": map[string]any{
			"beta": 2.5,
		},
		"flag":    true,
		"ignored": "not numeric",
	}}
	c := adapters.NewStatsCollector(ctrl, "test")

	expected := `
# HELP test_hub_stat Flattened numeric hub runtime stat.
# TYPE test_hub_stat gauge
test_hub_stat{key="alpha"} 1
test_hub_stat{key="flag"} 1
test_hub_stat{key="nested.beta"} 2.5
`
	if err := testutil.CollectAndCompare(c, strings.NewReader(expected)); err != nil {
		t.Fatal(err)
	}
}

func TestStatsCollectorSkipsNonNumeric(t *testing.T) {
	ctrl := &fakeControl{stats: map[string]any{
		"s": "text", "n": 3,
	}}
	c := adapters.NewStatsCollector(ctrl, "test")
	if got := testutil.CollectAndCount(c); got != 1 {
		t.Fatalf("exposed metrics = %d, want 1", got)
	}
}

func TestStatsCollectorOverLiveAdapter(t *testing.T) {
	ctrl := adapters.NewControlAdapter()
	ctrl.SetMetric("hub.atoms", int64(3))
	c := adapters.NewStatsCollector(ctrl, "hioload")
	if got := testutil.CollectAndCount(c); got < 1 {
		t.Fatalf("live adapter exposed %d metrics, want at least 1", got)
	}
}
