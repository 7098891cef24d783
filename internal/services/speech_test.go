package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func TestNoopTranscriber(t *testing.T) {
	_, err := NoopTranscriber{}.Transcribe(context.Background(), []byte("audio"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSpeechUnavailable)
}

func TestLogSpeakerPlaybackWindow(t *testing.T) {
	s := NewLogSpeaker(zaptest.NewLogger(t))
	s.pace = 5 * time.Millisecond

	require.False(t, s.Playing())

	s.Speak("hello world")
	assert.True(t, s.Playing(), "flag is set for the playback window")

	// a second prompt while playback runs is dropped, not queued
	s.Speak("overlapping prompt")
	assert.True(t, s.Playing())

	assert.Eventually(t, func() bool { return !s.Playing() },
		2*time.Second, 10*time.Millisecond, "flag clears once playback ends")
}
