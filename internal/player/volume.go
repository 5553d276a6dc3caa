package player

import "math"

// SetVolume sets the volume level (0.0 to 1.0). It applies to the current
// file immediately and to every file played afterwards.
func (p *Player) SetVolume(level float64) {
	level = min(max(level, 0), 1)

	p.mu.Lock()
	defer p.mu.Unlock()
	p.volumeLevel = level

	if p.volume != nil {
		p.out.Lock()
		p.applyVolume()
		p.out.Unlock()
	}
}

// Volume returns the current volume level (0.0 to 1.0).
func (p *Player) Volume() float64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.volumeLevel
}

// applyVolume copies the level onto the volume effect. Callers hold the
// output lock when the effect is already playing.
func (p *Player) applyVolume() {
	p.volume.Volume = levelToVolume(p.volumeLevel)
	p.volume.Silent = p.volumeLevel <= 0
}

// levelToVolume converts a 0.0-1.0 level to beep's Volume value.
// beep uses a logarithmic scale where Volume is in "decibels" with base 2.
// Volume = 0 means no change, -1 = half volume, -2 = quarter, etc.
// We map: 1.0 -> 0, 0.5 -> -1, 0.25 -> -2, 0 -> -10 (silent)
func levelToVolume(level float64) float64 {
	if level <= 0 {
		return -10
	}
	if level >= 1 {
		return 0
	}
	return math.Log2(level)
}
