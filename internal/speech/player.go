package speech

import (
	"bytes"
	"context"
	"sync"
	"time"

	"github.com/ebitengine/oto/v3"

	"github.com/WojtekL7/claude-voice-assistant/internal/logger"
)

// Player handles audio playback of WAV/PCM data via oto. The oto
// context is created once; oto does not support re-initialization
// within a process.
type Player struct {
	ctx *oto.Context
	log *logger.Logger

	mu     sync.Mutex
	active *oto.Player // currently playing, nil when idle
	paused bool
}

// NewPlayer creates an audio player. Initializes the system audio
// context; returns an error if the audio device is unavailable.
func NewPlayer(log *logger.Logger) (*Player, error) {
	op := &oto.NewContextOptions{
		SampleRate:   PlaybackSampleRate,
		ChannelCount: PlaybackChannels,
		Format:       oto.FormatSignedInt16LE,
	}

	ctx, readyChan, err := oto.NewContext(op)
	if err != nil {
		return nil, err
	}
	<-readyChan

	log.Debug("audio player initialized (rate=%d, channels=%d)", PlaybackSampleRate, PlaybackChannels)
	return &Player{ctx: ctx, log: log}, nil
}

// Play plays WAV audio data synchronously. Blocks until playback
// finishes, Stop is called, or ctx is cancelled.
func (p *Player) Play(ctx context.Context, wavData []byte) error {
	pcm, err := ExtractPCM(wavData)
	if err != nil {
		return err
	}

	player := p.ctx.NewPlayer(bytes.NewReader(pcm))

	p.mu.Lock()
	p.active = player
	p.paused = false
	p.mu.Unlock()

	player.Play()
	p.log.Debug("audio player: playing %d bytes of PCM", len(pcm))

	for {
		select {
		case <-ctx.Done():
			p.detach(player)
			player.Close()
			return ctx.Err()
		case <-time.After(10 * time.Millisecond):
		}

		p.mu.Lock()
		stopped := p.active != player
		paused := p.paused
		p.mu.Unlock()

		if stopped {
			return player.Close()
		}
		if paused {
			continue
		}
		if !player.IsPlaying() {
			break
		}
	}

	p.detach(player)
	return player.Close()
}

// Pause suspends the current clip mid-playback.
func (p *Player) Pause() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.active != nil && !p.paused {
		p.active.Pause()
		p.paused = true
		p.log.Debug("audio player: paused")
	}
}

// Resume continues a paused clip.
func (p *Player) Resume() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.active != nil && p.paused {
		p.active.Play()
		p.paused = false
		p.log.Debug("audio player: resumed")
	}
}

// Stop interrupts the currently playing audio, if any. Safe to call
// concurrently and when nothing is playing.
func (p *Player) Stop() {
	p.mu.Lock()
	active := p.active
	p.active = nil
	p.paused = false
	p.mu.Unlock()

	if active != nil {
		active.Pause()
		p.log.Debug("audio player: interrupted")
	}
}

func (p *Player) detach(player *oto.Player) {
	p.mu.Lock()
	if p.active == player {
		p.active = nil
		p.paused = false
	}
	p.mu.Unlock()
}
