// File: facade/hub_test.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package facade

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/momentics/hioload-atom/api"
	"github.com/momentics/hioload-atom/atom"
)

func TestHubLifecycleIdempotent(t *testing.T) {
	h, err := New(nil)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	if err := h.Start(); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	if err := h.Start(); err != nil {
		t.Fatalf("second Start failed: %v", err)
	}

	cfg := h.GetControl().GetConfig()
	if cfg["hub.name"] != "hub" {
		t.Errorf("expected hub.name 'hub' in config, got %v", cfg["hub.name"])
	}

	if err := h.Stop(); err != nil {
		t.Fatalf("Stop failed: %v", err)
	}
	if err := h.Shutdown(); err != nil {
		t.Fatalf("Shutdown after Stop failed: %v", err)
	}
}

func TestNewAtomJournalAndMetricsWiring(t *testing.T) {
	h, err := New(nil)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	counter := NewAtom(h, 0, atom.WithName[int]("counter"))
	if _, err := counter.Swap(func(v int) int { return v + 1 }); err != nil {
		t.Fatalf("Swap failed: %v", err)
	}

	rec, ok := h.GetJournal().Last()
	if !ok {
		t.Fatal("expected a journal record after commit")
	}
	if rec.Atom != "counter" {
		t.Errorf("journal record atom = %q, want 'counter'", rec.Atom)
	}
	if rec.Value != 1 {
		t.Errorf("journal record value = %v, want 1", rec.Value)
	}

	stats := h.GetControl().Stats()
	if stats["hub.commits"] != int64(1) {
		t.Errorf("hub.commits = %v, want 1", stats["hub.commits"])
	}
	if stats["hub.atoms"] != int64(1) {
		t.Errorf("hub.atoms = %v, want 1", stats["hub.atoms"])
	}
	if _, ok := stats["debug.atom.counter"]; !ok {
		t.Error("expected debug probe 'atom.counter' in stats")
	}

	snap, err := h.Inspect("counter")
	if err != nil {
		t.Fatalf("Inspect failed: %v", err)
	}
	if snap["value"] != 1 {
		t.Errorf("inspected value = %v, want 1", snap["value"])
	}
}

func TestNewAtomGeneratesRegistryName(t *testing.T) {
	h, err := New(nil)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	a := NewAtom(h, "seed")
	if a.Name() != "" {
		t.Fatalf("atom name should stay empty, got %q", a.Name())
	}

	names := h.AtomNames()
	if len(names) != 1 {
		t.Fatalf("expected 1 registered atom, got %d", len(names))
	}
	if len(names[0]) != 36 {
		t.Errorf("expected UUID registry name, got %q", names[0])
	}
	if _, err := h.Inspect(names[0]); err != nil {
		t.Errorf("Inspect by generated name failed: %v", err)
	}
}

func TestHubServicesDisabled(t *testing.T) {
	cfg := DefaultConfig()
	cfg.EnableJournal = false
	cfg.EnableMetrics = false
	cfg.EnableDebug = false

	h, err := New(cfg)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	a := NewAtom(h, 0, atom.WithName[int]("silent"))
	a.Reset(42)

	if n := h.GetJournal().Len(); n != 0 {
		t.Errorf("journal should stay empty, holds %d records", n)
	}
	if _, ok := h.GetControl().Stats()["hub.commits"]; ok {
		t.Error("hub.commits metric should not exist with metrics disabled")
	}
	// Registration is independent of the optional services.
	if got := h.AtomNames(); len(got) != 1 || got[0] != "silent" {
		t.Errorf("AtomNames = %v, want [silent]", got)
	}
}

func TestHubInspectUnknownName(t *testing.T) {
	h, err := New(nil)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if _, err := h.Inspect("nope"); !errors.Is(err, api.ErrNotFound) {
		t.Errorf("expected api.ErrNotFound, got %v", err)
	}
}

func TestHubSeedsDynamicConfigFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "hub.yaml")
	require.NoError(t, os.WriteFile(path, []byte("mode: prod\nlimit: 5\n"), 0o644))

	cfg := DefaultConfig()
	cfg.ConfigFile = path

	h, err := New(cfg)
	require.NoError(t, err)

	dyn := h.GetControl().GetConfig()
	require.Equal(t, "prod", dyn["mode"])
	require.Equal(t, 5, dyn["limit"])
}

func TestHubWatchReloadsConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "hub.yaml")
	require.NoError(t, os.WriteFile(path, []byte("mode: a\n"), 0o644))

	cfg := DefaultConfig()
	cfg.ConfigFile = path
	cfg.WatchConfig = true

	h, err := New(cfg)
	require.NoError(t, err)
	require.NoError(t, h.Start())
	defer h.Stop()

	require.NoError(t, os.WriteFile(path, []byte("mode: b\n"), 0o644))

	require.Eventually(t, func() bool {
		return h.GetControl().GetConfig()["mode"] == "b"
	}, 3*time.Second, 10*time.Millisecond, "config watch never delivered the update")
}

func TestHubCollectorExposesStats(t *testing.T) {
	h, err := New(nil)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	NewAtom(h, 0, atom.WithName[int]("c")).Reset(1)

	n := testutil.CollectAndCount(h.Collector("hubtest"))
	if n == 0 {
		t.Error("expected the hub collector to emit at least one metric")
	}
}

func TestLoadConfigFillsDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "hub.yaml")
	require.NoError(t, os.WriteFile(path, []byte("name: edge\nenable_journal: false\n"), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	require.Equal(t, "edge", cfg.Name)
	require.False(t, cfg.EnableJournal)
	// Omitted fields keep their defaults.
	require.True(t, cfg.EnableMetrics)
	require.Equal(t, DefaultConfig().JournalCapacity, cfg.JournalCapacity)
}

func TestLoadConfigRejectsInvalid(t *testing.T) {
	dir := t.TempDir()

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("journal_capacity: -1\n"), 0o644))
	_, err := LoadConfig(bad)
	require.Error(t, err)

	unnamed := filepath.Join(dir, "unnamed.yaml")
	require.NoError(t, os.WriteFile(unnamed, []byte("name: \"\"\n"), 0o644))
	_, err = LoadConfig(unnamed)
	require.Error(t, err)

	_, err = LoadConfig(filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)
}
