package speech

import (
	"context"
	"encoding/binary"
	"fmt"
	"sync"

	"github.com/gen2brain/malgo"

	"github.com/WojtekL7/claude-voice-assistant/internal/domain"
	"github.com/WojtekL7/claude-voice-assistant/internal/logger"
)

// Compile-time interface check.
var _ domain.Recorder = (*Recorder)(nil)

// Recorder captures microphone audio for dictation via miniaudio.
// Samples accumulate from Start until Stop; one capture at a time.
type Recorder struct {
	log *logger.Logger

	mu        sync.Mutex
	recording bool
	samples   []int16
	level     float64
	mctx      *malgo.AllocatedContext
	device    *malgo.Device
	done      chan struct{}
}

// NewRecorder creates an idle recorder. The capture device is opened
// lazily on Start so a missing microphone only fails dictation, not
// startup.
func NewRecorder(log *logger.Logger) *Recorder {
	return &Recorder{log: log}
}

// Start opens the capture device and begins accumulating samples.
// Cancelling ctx aborts the capture and discards everything.
func (r *Recorder) Start(ctx context.Context) error {
	r.mu.Lock()
	if r.recording {
		r.mu.Unlock()
		return domain.ErrRecording
	}
	r.recording = true
	r.samples = nil
	r.level = 0
	r.done = make(chan struct{})
	done := r.done
	r.mu.Unlock()

	mctx, err := malgo.InitContext(nil, malgo.ContextConfig{}, func(string) {})
	if err != nil {
		r.reset()
		return fmt.Errorf("audio context: %w", err)
	}

	devCfg := malgo.DefaultDeviceConfig(malgo.Capture)
	devCfg.SampleRate = CaptureSampleRate
	devCfg.Capture.Format = malgo.FormatS16
	devCfg.Capture.Channels = CaptureChannels
	devCfg.Alsa.NoMMap = 1

	callbacks := malgo.DeviceCallbacks{
		Data: func(_ []byte, raw []byte, _ uint32) {
			if len(raw) == 0 {
				return
			}
			n := len(raw) / 2
			pcm := make([]int16, n)
			var sum float64
			for i := 0; i < n; i++ {
				v := int16(binary.LittleEndian.Uint16(raw[i*2 : i*2+2]))
				pcm[i] = v
				if v < 0 {
					sum -= float64(v)
				} else {
					sum += float64(v)
				}
			}
			r.mu.Lock()
			if r.recording {
				r.samples = append(r.samples, pcm...)
				r.level = sum / float64(n) / 32768.0
			}
			r.mu.Unlock()
		},
	}

	device, err := malgo.InitDevice(mctx.Context, devCfg, callbacks)
	if err != nil {
		_ = mctx.Uninit()
		mctx.Free()
		r.reset()
		return fmt.Errorf("capture device: %w", err)
	}
	if err := device.Start(); err != nil {
		device.Uninit()
		_ = mctx.Uninit()
		mctx.Free()
		r.reset()
		return fmt.Errorf("starting capture: %w", err)
	}

	r.mu.Lock()
	r.mctx = mctx
	r.device = device
	r.mu.Unlock()
	r.log.Info("recording started (rate=%d)", CaptureSampleRate)

	go func() {
		select {
		case <-ctx.Done():
			if _, err := r.Stop(); err == nil {
				r.log.Debug("recording aborted by context")
			}
		case <-done:
		}
	}()
	return nil
}

// Stop closes the capture device and returns everything recorded
// since Start.
func (r *Recorder) Stop() ([]int16, error) {
	r.mu.Lock()
	if !r.recording {
		r.mu.Unlock()
		return nil, domain.ErrNotRecording
	}
	r.recording = false
	device := r.device
	mctx := r.mctx
	done := r.done
	samples := r.samples
	r.device = nil
	r.mctx = nil
	r.done = nil
	r.samples = nil
	r.level = 0
	r.mu.Unlock()

	if done != nil {
		close(done)
	}
	if device != nil {
		device.Stop()
		device.Uninit()
	}
	if mctx != nil {
		_ = mctx.Uninit()
		mctx.Free()
	}

	r.log.Info("recording stopped (%d samples, %.1fs)",
		len(samples), float64(len(samples))/CaptureSampleRate)
	return samples, nil
}

// Level reports the most recent mean amplitude, normalized to 0..1.
// Feeds the recording meter in the status bar.
func (r *Recorder) Level() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.level
}

// Recording reports whether a capture is in progress.
func (r *Recorder) Recording() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.recording
}

func (r *Recorder) reset() {
	r.mu.Lock()
	r.recording = false
	r.done = nil
	r.mu.Unlock()
}
