// File: facade/hub.go
// Unified facade layer for hioload-atom library.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// This file defines the Hub struct, which aggregates the runtime services an
// atom population shares: the control plane (config, metrics, debug probes),
// the transition journal, and the time source used to stamp notifications.
// Atoms constructed through NewAtom are registered with the hub so their
// committed transitions land in the journal and their internals are visible
// through debug probes. The hub exposes start/stop lifecycle methods and
// accessors for the underlying services.

package facade

import (
	"fmt"
	"log"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/momentics/hioload-atom/adapters"
	"github.com/momentics/hioload-atom/api"
	"github.com/momentics/hioload-atom/atom"
	"github.com/momentics/hioload-atom/control"
)

// Hub aggregates the shared services of an atom population.
// All exported methods are safe for concurrent use.
type Hub struct {
	cfg     *Config
	control *adapters.ControlAdapter
	journal *control.TransitionJournal
	clock   api.TimeSource
	watcher *control.Watcher

	mu      sync.RWMutex
	started bool
	atoms   map[string]api.Inspectable
}

// Compile-time check: Hub must support graceful shutdown.
var _ api.GracefulShutdown = (*Hub)(nil)

// New constructs a Hub from the given configuration.
// A nil cfg selects DefaultConfig(). The hub starts in the stopped state;
// atoms may be created before Start is called.
func New(cfg *Config) (*Hub, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	h := &Hub{
		cfg:     cfg,
		control: adapters.NewControlAdapter(),
		journal: control.NewTransitionJournal(cfg.JournalCapacity),
		clock:   adapters.SystemTimeSource{},
		atoms:   make(map[string]api.Inspectable),
	}

	if cfg.ConfigFile != "" {
		if err := control.LoadInto(cfg.ConfigFile, h.control.ConfigStore()); err != nil {
			return nil, fmt.Errorf("hub config: %w", err)
		}
	}

	if cfg.EnableDebug {
		h.control.RegisterInspectable(h.journal)
	}

	// Seed the dynamic config with the effective hub parameters so they are
	// visible through the Control API alongside file-provided keys.
	_ = h.control.SetConfig(map[string]any{
		"hub.name":         cfg.Name,
		"journal.capacity": cfg.JournalCapacity,
		"journal.enabled":  cfg.EnableJournal,
		"metrics.enabled":  cfg.EnableMetrics,
	})

	return h, nil
}

// Start brings the hub online. It is idempotent: starting a running hub is a
// no-op. When the configuration requests it, the backing config file is put
// under watch for hot reload.
func (h *Hub) Start() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.started {
		return nil
	}

	if h.cfg.WatchConfig && h.cfg.ConfigFile != "" {
		w, err := control.WatchFile(h.cfg.ConfigFile, h.control.ConfigStore())
		if err != nil {
			log.Printf("[facade] config watch unavailable, continuing without hot reload: %v", err)
		} else {
			h.watcher = w
		}
	}

	h.started = true
	if h.cfg.EnableMetrics {
		h.control.SetMetric("hub.started", 1)
	}
	return nil
}

// Stop takes the hub offline, releasing the config watcher if one is active.
// Atoms remain usable after Stop; only hub-managed services are halted.
func (h *Hub) Stop() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if !h.started {
		return nil
	}

	if h.watcher != nil {
		if err := h.watcher.Close(); err != nil {
			log.Printf("[facade] config watcher close: %v", err)
		}
		h.watcher = nil
	}

	h.started = false
	if h.cfg.EnableMetrics {
		h.control.SetMetric("hub.started", 0)
	}
	return nil
}

// Shutdown implements api.GracefulShutdown.
func (h *Hub) Shutdown() error {
	return h.Stop()
}

// GetControl returns the hub's control interface for config, metrics and
// debug introspection.
func (h *Hub) GetControl() api.Control {
	return h.control
}

// GetJournal returns the hub's transition journal.
func (h *Hub) GetJournal() *control.TransitionJournal {
	return h.journal
}

// GetTimeSource returns the clock used to stamp notifications of hub atoms.
func (h *Hub) GetTimeSource() api.TimeSource {
	return h.clock
}

// Collector returns a Prometheus collector exposing the hub's Stats() tree
// under the given namespace.
func (h *Hub) Collector(namespace string) *adapters.StatsCollector {
	return adapters.NewStatsCollector(h.control, namespace)
}

// AtomNames returns the registry names of all hub atoms in sorted order.
func (h *Hub) AtomNames() []string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	names := make([]string, 0, len(h.atoms))
	for name := range h.atoms {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Inspect returns the state snapshot of the named hub atom.
// Unknown names yield api.ErrNotFound.
func (h *Hub) Inspect(name string) (map[string]any, error) {
	h.mu.RLock()
	probe, ok := h.atoms[name]
	h.mu.RUnlock()
	if !ok {
		return nil, api.ErrNotFound
	}
	return probe.Snapshot(), nil
}

// register records an atom under its registry name and keeps the atom count
// metric current. A name collision replaces the previous registration.
func (h *Hub) register(name string, probe api.Inspectable) {
	h.mu.Lock()
	if _, exists := h.atoms[name]; exists {
		log.Printf("[facade] atom registry name %q reused, previous entry replaced", name)
	}
	h.atoms[name] = probe
	count := len(h.atoms)
	h.mu.Unlock()

	if h.cfg.EnableMetrics {
		h.control.SetMetric("hub.atoms", int64(count))
	}
}

// NewAtom constructs an atom owned by the hub. Hub atoms stamp notifications
// with the hub clock, append committed transitions to the hub journal, count
// commits in hub metrics, and expose a debug probe under "atom.<name>".
// Atoms without an explicit atom.WithName receive a generated registry name.
//
// This is a package-level function because Go methods cannot introduce type
// parameters of their own.
func NewAtom[T comparable](h *Hub, initial T, opts ...atom.Option[T]) *atom.Atom[T] {
	all := make([]atom.Option[T], 0, len(opts)+1)
	all = append(all, atom.WithTimeSource[T](h.clock))
	all = append(all, opts...)
	a := atom.New(initial, all...)

	name := a.Name()
	if name == "" {
		name = uuid.NewString()
	}

	journalOn := h.cfg.EnableJournal
	metricsOn := h.cfg.EnableMetrics
	if journalOn || metricsOn {
		a.AddObserver(func(n api.Notification[T]) {
			if journalOn {
				h.journal.Record(name, n.Timestamp, n.Value)
			}
			if metricsOn {
				h.control.IncMetric("hub.commits", 1)
			}
		})
	}

	if h.cfg.EnableDebug {
		h.control.RegisterDebugProbe("atom."+name, func() any { return a.Snapshot() })
	}

	h.register(name, a)
	return a
}
