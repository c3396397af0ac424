// Package game wires the mover chain to ebiten: input, the frame loop,
// audio cues, snapshots and persistence.
package game

import (
	"fmt"
	"image/color"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/iburimskiy/quad-path-mover/internal/config"
	"github.com/iburimskiy/quad-path-mover/internal/mover"
	"github.com/iburimskiy/quad-path-mover/internal/render"
	"github.com/iburimskiy/quad-path-mover/internal/settings"
)

// Stage owns the chain and its animator and implements ebiten.Game.
type Stage struct {
	cfg      config.Config
	chain    *mover.Chain
	animator *mover.Animator
	settings *settings.Manager
	cue      *cuePlayer

	background color.RGBA
	style      mover.Style
	now        func() time.Time

	// input edge detection
	prevKey map[ebiten.Key]bool
	touches []ebiten.TouchID

	lastErr error
}

type Option func(*Stage)

// WithClock replaces time.Now for the animator.
func WithClock(now func() time.Time) Option {
	return func(s *Stage) { s.now = now }
}

// NewStage builds the chain described by cfg. Saved progress from sm is
// restored when present; a nil sm keeps settings in memory.
func NewStage(cfg config.Config, sm *settings.Manager, opts ...Option) *Stage {
	if sm == nil {
		sm = settings.NewManager(nil)
	}
	s := &Stage{
		cfg:      cfg,
		settings: sm,
		now:      time.Now,
		prevKey:  map[ebiten.Key]bool{},
	}
	for _, opt := range opts {
		opt(s)
	}

	bg, path, dot := cfg.Palette()
	s.background = bg
	s.style = mover.Style{Path: path, Dot: dot}

	s.chain = mover.NewChain(cfg.Nodes, cfg.StepsPerUnit)
	s.animator = mover.NewAnimatorWithClock(cfg.TickInterval, s.now)

	prefs := sm.Settings()
	s.cue = newCuePlayer(cfg.Cue, prefs.SoundEnabled, prefs.Volume)

	if p, ok, err := sm.LoadProgress(); err != nil {
		log.Printf("[Stage] Warning: %v", err)
	} else if ok {
		if err := s.chain.Restore(p); err != nil {
			log.Printf("[Stage] Discarding saved progress: %v", err)
		} else {
			log.Printf("[Stage] Resumed at node %d (dir %+d)", p.Current, p.Direction)
		}
	}
	return s
}

func (s *Stage) Chain() *mover.Chain { return s.chain }

// Animating reports whether a burst is in progress.
func (s *Stage) Animating() bool { return s.animator.Running() }

// Tap starts a burst on the current node. It is ignored while one runs.
func (s *Stage) Tap() bool {
	if !s.chain.StartUpdating() {
		return false
	}
	s.animator.Start(s.tick)
	return true
}

func (s *Stage) tick() {
	index := s.chain.Current()
	if !s.chain.Update() {
		return
	}
	s.animator.Stop()
	s.cue.Play(index)
	log.Printf("[Stage] Node %d settled, cursor -> %d (dir %+d)", index, s.chain.Current(), s.chain.Direction())
}

// Step runs a due animator tick, if any.
func (s *Stage) Step() bool {
	return s.animator.Advance()
}

func (s *Stage) Update() error {
	justPressed := func(k ebiten.Key) bool {
		pressed := ebiten.IsKeyPressed(k)
		jp := pressed && !s.prevKey[k]
		s.prevKey[k] = pressed
		return jp
	}

	s.touches = inpututil.AppendJustPressedTouchIDs(s.touches[:0])
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) || len(s.touches) > 0 {
		s.Tap()
	}

	if justPressed(ebiten.KeyS) {
		if err := s.exportSnapshot(); err != nil {
			log.Printf("[Stage] Snapshot failed: %v", err)
			s.lastErr = err
		}
	}
	if justPressed(ebiten.KeyM) {
		s.toggleSound()
	}
	if justPressed(ebiten.KeyF) {
		ebiten.SetFullscreen(s.toggleFullscreen())
	}
	if justPressed(ebiten.KeyR) {
		s.toggleResume()
	}
	if justPressed(ebiten.KeyArrowUp) {
		s.adjustVolume(0.1)
	}
	if justPressed(ebiten.KeyArrowDown) {
		s.adjustVolume(-0.1)
	}
	if justPressed(ebiten.KeyEscape) || justPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	s.Step()
	return nil
}

func (s *Stage) Draw(screen *ebiten.Image) {
	s.Render(render.NewScreen(screen))
	ebitenutil.DebugPrintAt(screen, s.status(), 12, 12)
}

// Render paints the background and the visited part of the chain.
func (s *Stage) Render(surf render.Surface) {
	w, h := surf.Size()
	surf.FillRect(0, 0, w, h, s.background)
	s.chain.Draw(surf, mover.Layout{Width: w, Height: h, Count: s.chain.Len()}, s.style)
}

func (s *Stage) Layout(outsideWidth, outsideHeight int) (int, int) {
	return s.cfg.Width, s.cfg.Height
}

func (s *Stage) status() string {
	sound := "off"
	if s.settings.Settings().SoundEnabled {
		sound = "on"
	}
	resume := "off"
	if s.settings.Settings().ResumeProgress {
		resume = "on"
	}
	status := fmt.Sprintf("Node %d/%d  dir %+d  sound %s %d%%  resume %s - click to move",
		s.chain.Current()+1, s.chain.Len(), s.chain.Direction(), sound,
		int(s.settings.Settings().Volume*100+0.5), resume)
	if s.lastErr != nil {
		status += " | Error: " + s.lastErr.Error()
	}
	return status
}

func (s *Stage) toggleSound() {
	enabled := !s.settings.Settings().SoundEnabled
	s.settings.SetSoundEnabled(enabled)
	s.cue.SetEnabled(enabled)
	if err := s.settings.Save(); err != nil {
		s.lastErr = err
	}
}

// toggleFullscreen flips and saves the preference and returns the new
// value for the window.
func (s *Stage) toggleFullscreen() bool {
	enabled := !s.settings.Settings().Fullscreen
	s.settings.SetFullscreen(enabled)
	if err := s.settings.Save(); err != nil {
		s.lastErr = err
	}
	return enabled
}

func (s *Stage) toggleResume() {
	enabled := !s.settings.Settings().ResumeProgress
	s.settings.SetResumeProgress(enabled)
	if err := s.settings.Save(); err != nil {
		s.lastErr = err
	}
	log.Printf("[Stage] Resume progress: %v", enabled)
}

func (s *Stage) adjustVolume(delta float64) {
	s.settings.SetVolume(s.settings.Settings().Volume + delta)
	s.cue.SetVolume(s.settings.Settings().Volume)
	if err := s.settings.Save(); err != nil {
		s.lastErr = err
	}
}

// Close saves progress and settings and silences the speaker.
func (s *Stage) Close() error {
	defer s.cue.Close()
	if err := s.settings.SaveProgress(s.chain.Snapshot()); err != nil {
		return err
	}
	return s.settings.Save()
}
