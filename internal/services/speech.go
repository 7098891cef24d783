package services

import (
	"context"
	"errors"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
)

// ErrSpeechUnavailable signals that no speech-to-text backend is wired in.
// Callers treat it as a recoverable, per-item condition.
var ErrSpeechUnavailable = errors.New("speech-to-text unavailable")

// NoopTranscriber stands in when no speech backend is configured. Every
// request fails with ErrSpeechUnavailable, which the assessment layer maps
// to an unanswered item.
type NoopTranscriber struct{}

func (NoopTranscriber) Transcribe(ctx context.Context, audio []byte) (string, error) {
	return "", ErrSpeechUnavailable
}

// LogSpeaker is the server-side placeholder for text-to-speech playback;
// real playback happens on the client. It still simulates playback duration
// so the single-playback contract is observable: the playing flag stays set
// for a length-proportional interval and overlapping Speak calls are dropped.
type LogSpeaker struct {
	log     *zap.Logger
	pace    time.Duration // simulated playback time per character
	playing atomic.Bool
}

func NewLogSpeaker(log *zap.Logger) *LogSpeaker {
	return &LogSpeaker{log: log, pace: 50 * time.Millisecond}
}

func (s *LogSpeaker) Speak(text string) {
	if !s.playing.CompareAndSwap(false, true) {
		return
	}
	d := time.Duration(len(text)) * s.pace
	s.log.Debug("Speaking prompt", zap.Int("chars", len(text)), zap.Duration("duration", d))
	go func() {
		time.Sleep(d)
		s.playing.Store(false)
	}()
}

func (s *LogSpeaker) Playing() bool {
	return s.playing.Load()
}
