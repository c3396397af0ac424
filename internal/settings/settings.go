// Package settings persists user preferences and chain progress through
// gdata, encoded as YAML.
package settings

import (
	"fmt"
	"log"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"

	"github.com/iburimskiy/quad-path-mover/internal/mover"
)

// Settings are global user preferences.
type Settings struct {
	SoundEnabled   bool    `yaml:"soundEnabled"`
	Volume         float64 `yaml:"volume"` // 0.0 ~ 1.0
	Fullscreen     bool    `yaml:"fullscreen"`
	ResumeProgress bool    `yaml:"resumeProgress"`
}

func Defaults() *Settings {
	return &Settings{
		SoundEnabled:   true,
		Volume:         0.6,
		Fullscreen:     false,
		ResumeProgress: true,
	}
}

const (
	settingsObject   = "settings"
	settingsProperty = "global"

	progressObject   = "progress"
	progressProperty = "chain"
)

// Manager loads and saves Settings and the chain Progress. A nil store
// keeps everything in memory.
type Manager struct {
	store    *gdata.Manager
	settings *Settings
}

// NewManager creates a manager and loads saved settings. Load failures
// are logged and defaults are used.
func NewManager(store *gdata.Manager) *Manager {
	m := &Manager{store: store, settings: Defaults()}
	if err := m.Load(); err != nil {
		log.Printf("[Settings] Warning: failed to load settings: %v (using defaults)", err)
	}
	return m
}

// Open opens the gdata store for appName. On failure it logs and returns a
// memory-only manager.
func Open(appName string) *Manager {
	store, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		log.Printf("[Settings] Warning: storage unavailable: %v (settings will not persist)", err)
		store = nil
	}
	return NewManager(store)
}

// Persistent reports whether a store is attached.
func (m *Manager) Persistent() bool { return m.store != nil }

func (m *Manager) Load() error {
	if m.store == nil || !m.store.ObjectPropExists(settingsObject, settingsProperty) {
		m.settings = Defaults()
		return nil
	}

	data, err := m.store.LoadObjectProp(settingsObject, settingsProperty)
	if err != nil {
		m.settings = Defaults()
		return fmt.Errorf("failed to load settings: %w", err)
	}

	loaded := Defaults()
	if err := yaml.Unmarshal(data, loaded); err != nil {
		m.settings = Defaults()
		return fmt.Errorf("failed to unmarshal settings: %w", err)
	}
	loaded.Volume = clampVolume(loaded.Volume)
	m.settings = loaded
	return nil
}

func (m *Manager) Save() error {
	if m.store == nil {
		return nil
	}
	data, err := yaml.Marshal(m.settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}
	if err := m.store.SaveObjectProp(settingsObject, settingsProperty, data); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	log.Printf("[Settings] Settings saved")
	return nil
}

func (m *Manager) Settings() Settings { return *m.settings }

func (m *Manager) SetSoundEnabled(enabled bool) { m.settings.SoundEnabled = enabled }
func (m *Manager) SetVolume(volume float64)     { m.settings.Volume = clampVolume(volume) }
func (m *Manager) SetFullscreen(enabled bool)   { m.settings.Fullscreen = enabled }
func (m *Manager) SetResumeProgress(enabled bool) {
	m.settings.ResumeProgress = enabled
}

// LoadProgress returns the saved chain progress. ok is false when nothing
// was saved or resuming is disabled.
func (m *Manager) LoadProgress() (p mover.Progress, ok bool, err error) {
	if m.store == nil || !m.settings.ResumeProgress {
		return p, false, nil
	}
	if !m.store.ObjectPropExists(progressObject, progressProperty) {
		return p, false, nil
	}
	data, err := m.store.LoadObjectProp(progressObject, progressProperty)
	if err != nil {
		return p, false, fmt.Errorf("failed to load progress: %w", err)
	}
	if err := yaml.Unmarshal(data, &p); err != nil {
		return p, false, fmt.Errorf("failed to unmarshal progress: %w", err)
	}
	return p, true, nil
}

func (m *Manager) SaveProgress(p mover.Progress) error {
	if m.store == nil || !m.settings.ResumeProgress {
		return nil
	}
	data, err := yaml.Marshal(p)
	if err != nil {
		return fmt.Errorf("failed to marshal progress: %w", err)
	}
	if err := m.store.SaveObjectProp(progressObject, progressProperty, data); err != nil {
		return fmt.Errorf("failed to save progress: %w", err)
	}
	return nil
}

func clampVolume(volume float64) float64 {
	if volume < 0.0 {
		return 0.0
	}
	if volume > 1.0 {
		return 1.0
	}
	return volume
}
