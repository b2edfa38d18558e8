package audio

import (
	"testing"
	"time"
)

func TestClampVolume(t *testing.T) {
	cases := []struct {
		in, want float64
	}{
		{-0.5, 0},
		{0, 0},
		{0.7, 0.7},
		{1, 1},
		{1.5, 1},
	}
	for _, c := range cases {
		if got := clampVolume(c.in); got != c.want {
			t.Errorf("clampVolume(%g) = %g, want %g", c.in, got, c.want)
		}
	}
}

func TestNewVolume_ZeroIsSilentNotNegativeInfinity(t *testing.T) {
	v := newVolume(newOscillator(440, time.Millisecond), 0)
	if !v.Silent {
		t.Error("zero volume should set Silent")
	}
	if v.Volume != 0 {
		t.Errorf("silent gain Volume = %g, want 0", v.Volume)
	}

	v = newVolume(newOscillator(440, time.Millisecond), 0.5)
	if v.Silent {
		t.Error("half volume should not be silent")
	}
	if v.Volume != -1 {
		t.Errorf("log2(0.5) gain = %g, want -1", v.Volume)
	}
}

// Without Init the manager runs in silent mode: every operation must be a
// safe no-op instead of touching the speaker.
func TestManager_SilentModeOperationsAreNoOps(t *testing.T) {
	m := NewManager(0.7, 0.9)

	m.Play(SoundShoot)
	m.Play("unknown")
	m.PlayMusic(MusicTheme)
	m.Stop(SoundShoot)
	m.StopMusic()
	m.CrossFade(MusicTheme, 100*time.Millisecond)
	m.Cleanup()

	m.SetMusicVolume(2.0)
	if got := m.MusicVolume(); got != 1.0 {
		t.Errorf("music volume = %g, want clamped to 1", got)
	}
	m.SetEffectVolume(-1.0)
	if got := m.EffectVolume(); got != 0.0 {
		t.Errorf("effect volume = %g, want clamped to 0", got)
	}
}

func TestManager_SetVolumePerSound(t *testing.T) {
	m := NewManager(0.7, 0.9)

	if got := m.soundVolume(SoundShoot); got != 1.0 {
		t.Errorf("default sound volume = %g, want 1", got)
	}
	m.SetVolume(SoundShoot, 0.25)
	if got := m.soundVolume(SoundShoot); got != 0.25 {
		t.Errorf("sound volume = %g, want 0.25", got)
	}
	m.SetVolume(SoundShoot, 3.0)
	if got := m.soundVolume(SoundShoot); got != 1.0 {
		t.Errorf("sound volume = %g, want clamped to 1", got)
	}
	// Unrelated names keep the default.
	if got := m.soundVolume(SoundExplosion); got != 1.0 {
		t.Errorf("other sound volume = %g, want 1", got)
	}
}

func TestManager_ToggleMute(t *testing.T) {
	m := NewManager(0.7, 0.9)
	if !m.ToggleMute() {
		t.Error("first toggle should mute")
	}
	if m.ToggleMute() {
		t.Error("second toggle should unmute")
	}
}

func TestOscillator_StopsAtDuration(t *testing.T) {
	osc := newOscillator(440, 10*time.Millisecond)
	want := sampleRate.N(10 * time.Millisecond)

	total := 0
	buf := make([][2]float64, 128)
	for {
		n, ok := osc.Stream(buf)
		total += n
		if !ok {
			break
		}
	}
	if total != want {
		t.Errorf("streamed %d samples, want %d", total, want)
	}
}

func TestFallbackEffect_CoversGameSounds(t *testing.T) {
	for _, name := range []string{SoundShoot, SoundExplosion, SoundPlayerHit, SoundWaveStart, SoundGameOver, "anything-else"} {
		if s := fallbackEffect(name); s == nil {
			t.Errorf("fallbackEffect(%q) = nil", name)
		}
	}
}

func TestManager_LoadRejectsUnknownExtension(t *testing.T) {
	m := NewManager(0.7, 0.9)
	if err := m.Load("x", "sound.mp3"); err == nil {
		t.Error("mp3 should be rejected")
	}
	if err := m.Load("x", "missing.wav"); err == nil {
		t.Error("missing file should fail")
	}
}
