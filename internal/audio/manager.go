// internal/audio/manager.go
package audio

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
	"github.com/gopxl/beep/vorbis"
	"github.com/gopxl/beep/wav"
)

const sampleRate = beep.SampleRate(44100)

// Sound names used by the game. Effects fall back to a synthesized blip
// when no file has been loaded under the name.
const (
	SoundShoot     = "shoot"
	SoundExplosion = "explosion"
	SoundPlayerHit = "player_hit"
	SoundWaveStart = "wave_start"
	SoundGameOver  = "game_over"
	MusicTheme     = "theme"
)

// Manager owns the speaker and the mixer. If the speaker cannot be
// initialized the manager stays in silent mode: every operation becomes a
// no-op so the game runs without sound.
type Manager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	buffers     map[string]*beep.Buffer
	initialized bool

	// Последний запущенный экземпляр каждого звука, чтобы его можно было
	// остановить или перенастроить по имени.
	ctrls map[string]*beep.Ctrl
	gains map[string]*effects.Volume
	// Индивидуальная громкость звука, умножается на громкость категории.
	volumes map[string]float64

	musicName string
	musicCtrl *beep.Ctrl
	musicGain *effects.Volume

	musicVolume  float64
	effectVolume float64
	muted        bool
}

func NewManager(musicVolume, effectVolume float64) *Manager {
	return &Manager{
		mixer:        &beep.Mixer{},
		buffers:      make(map[string]*beep.Buffer),
		ctrls:        make(map[string]*beep.Ctrl),
		gains:        make(map[string]*effects.Volume),
		volumes:      make(map[string]float64),
		musicVolume:  clampVolume(musicVolume),
		effectVolume: clampVolume(effectVolume),
	}
}

// soundVolume returns the per-sound volume, defaulting to full.
func (m *Manager) soundVolume(name string) float64 {
	if v, ok := m.volumes[name]; ok {
		return v
	}
	return 1
}

// Init opens the speaker. On failure the manager logs and stays silent;
// the error is returned for callers that want to surface it.
func (m *Manager) Init() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		log.Printf("audio: speaker init failed, running silent: %v", err)
		return fmt.Errorf("audio init: %w", err)
	}
	speaker.Play(m.mixer)
	m.initialized = true
	return nil
}

// Cleanup stops all sounds.
func (m *Manager) Cleanup() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return
	}
	if m.musicCtrl != nil {
		m.musicCtrl.Paused = true
	}
	m.mixer.Clear()
	m.initialized = false
}

// Load decodes a wav or ogg file into memory and resamples it to the
// speaker rate. Supported extensions: .wav, .ogg.
func (m *Manager) Load(name, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("audio load %s: %w", name, err)
	}
	defer f.Close()

	var (
		streamer beep.StreamSeekCloser
		format   beep.Format
	)
	switch ext := filepath.Ext(path); ext {
	case ".wav":
		streamer, format, err = wav.Decode(f)
	case ".ogg":
		streamer, format, err = vorbis.Decode(f)
	default:
		return fmt.Errorf("audio load %s: unsupported format %q", name, ext)
	}
	if err != nil {
		return fmt.Errorf("audio load %s: decode: %w", name, err)
	}
	defer streamer.Close()

	target := beep.Format{SampleRate: sampleRate, NumChannels: 2, Precision: 2}
	buf := beep.NewBuffer(target)
	if format.SampleRate == sampleRate {
		buf.Append(streamer)
	} else {
		buf.Append(beep.Resample(4, format.SampleRate, sampleRate, streamer))
	}

	m.mu.Lock()
	m.buffers[name] = buf
	m.mu.Unlock()
	return nil
}

// Play fires a one-shot effect. Unknown names use a synthesized fallback.
func (m *Manager) Play(name string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized || m.muted {
		return
	}
	var s beep.Streamer
	if buf, ok := m.buffers[name]; ok {
		s = buf.Streamer(0, buf.Len())
	} else {
		s = fallbackEffect(name)
	}
	ctrl := &beep.Ctrl{Streamer: s}
	gain := newVolume(ctrl, m.effectVolume*m.soundVolume(name))
	m.ctrls[name] = ctrl
	m.gains[name] = gain
	m.mixer.Add(gain)
}

// Stop pauses the last started instance of the named sound. Finished
// one-shots are unaffected.
func (m *Manager) Stop(name string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if ctrl, ok := m.ctrls[name]; ok {
		ctrl.Paused = true
	}
}

// SetVolume clamps v into [0, 1] and stores it as the named sound's own
// volume, retuning the live instance if one is playing. The effective
// gain is this value multiplied by the category (music or effect) volume.
func (m *Manager) SetVolume(name string, v float64) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.volumes[name] = clampVolume(v)
	gain, ok := m.gains[name]
	if !ok || m.muted {
		return
	}
	category := m.effectVolume
	if name == m.musicName {
		category = m.musicVolume
	}
	setVolume(gain, category*m.volumes[name])
}

// PlayMusic loops the named track, replacing any current one.
func (m *Manager) PlayMusic(name string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return
	}
	buf, ok := m.buffers[name]
	if !ok {
		log.Printf("audio: music %q not loaded", name)
		return
	}
	if m.musicCtrl != nil {
		m.musicCtrl.Paused = true
	}
	vol := m.musicVolume * m.soundVolume(name)
	if m.muted {
		vol = 0
	}
	ctrl := &beep.Ctrl{Streamer: beep.Loop(-1, buf.Streamer(0, buf.Len()))}
	gain := newVolume(ctrl, vol)
	m.musicName = name
	m.musicCtrl = ctrl
	m.musicGain = gain
	m.ctrls[name] = ctrl
	m.gains[name] = gain
	m.mixer.Add(gain)
}

// StopMusic pauses the current track.
func (m *Manager) StopMusic() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.musicCtrl != nil {
		m.musicCtrl.Paused = true
	}
}

// CrossFade fades the current track out while fading the named one in.
func (m *Manager) CrossFade(name string, dur time.Duration) {
	m.mu.Lock()
	if !m.initialized {
		m.mu.Unlock()
		return
	}
	oldGain := m.musicGain
	oldCtrl := m.musicCtrl
	m.mu.Unlock()

	m.PlayMusic(name)

	m.mu.Lock()
	newGain := m.musicGain
	target := m.musicVolume * m.soundVolume(name)
	if m.muted {
		target = 0
	}
	m.mu.Unlock()
	if newGain == nil {
		return
	}

	go func() {
		const steps = 30
		tick := time.NewTicker(dur / steps)
		defer tick.Stop()
		for i := 1; i <= steps; i++ {
			<-tick.C
			frac := float64(i) / steps
			speaker.Lock()
			if oldGain != nil {
				setVolume(oldGain, target*(1-frac))
			}
			setVolume(newGain, target*frac)
			speaker.Unlock()
		}
		speaker.Lock()
		if oldCtrl != nil {
			oldCtrl.Paused = true
		}
		speaker.Unlock()
	}()
}

// SetMusicVolume clamps v into [0, 1] and applies it to the live track.
func (m *Manager) SetMusicVolume(v float64) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.musicVolume = clampVolume(v)
	if m.musicGain != nil && !m.muted {
		setVolume(m.musicGain, m.musicVolume*m.soundVolume(m.musicName))
	}
}

// SetEffectVolume clamps v into [0, 1] for future one-shot effects.
func (m *Manager) SetEffectVolume(v float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.effectVolume = clampVolume(v)
}

// ToggleMute flips the mute flag and returns the new value.
func (m *Manager) ToggleMute() bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.muted = !m.muted
	if m.musicGain != nil {
		if m.muted {
			setVolume(m.musicGain, 0)
		} else {
			setVolume(m.musicGain, m.musicVolume*m.soundVolume(m.musicName))
		}
	}
	return m.muted
}

// MusicVolume returns the configured music volume.
func (m *Manager) MusicVolume() float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.musicVolume
}

// EffectVolume returns the configured effect volume.
func (m *Manager) EffectVolume() float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.effectVolume
}
