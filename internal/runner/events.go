package runner

// Audio receives gameplay sound cues. Implementations must not block the
// tick; playback happens elsewhere.
type Audio interface {
	OnJump()
	OnCoinCollect(multiplier int)
	OnWatchCollect()
	OnDeath()
	OnRunStateChange(running bool)
}

// NopAudio discards every cue.
type NopAudio struct{}

func (NopAudio) OnJump()               {}
func (NopAudio) OnCoinCollect(int)     {}
func (NopAudio) OnWatchCollect()       {}
func (NopAudio) OnDeath()              {}
func (NopAudio) OnRunStateChange(bool) {}

// HighScores persists the best score. SaveHighScore is only called at the
// end of a run that beat the stored value.
type HighScores interface {
	LoadHighScore() (int, error)
	SaveHighScore(score int) error
}

// memoryHighScores keeps the best score in memory only.
type memoryHighScores struct {
	best int
}

func (m *memoryHighScores) LoadHighScore() (int, error) { return m.best, nil }

func (m *memoryHighScores) SaveHighScore(score int) error {
	m.best = score
	return nil
}
