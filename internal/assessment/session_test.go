package assessment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPlan() *Plan {
	return &Plan{
		DurationSeconds: 5,
		Sections: []Section{
			{
				Title: "Vocabulary",
				Type:  SectionMultipleChoice,
				Items: []Item{
					{Prompt: "Synonym of 'Vivid'", Options: []string{"Dull", "Bright"}, Correct: 1},
					{Prompt: "Synonym of 'Vast'", Options: []string{"Large", "Small"}, Correct: 0},
				},
			},
			{
				Title: "Sentence Builds",
				Type:  SectionWordReorder,
				Items: []Item{
					{Prompt: "Arrange the words.", Words: []string{"is", "Delhi", "capital", "the"}, Target: "Delhi is the capital"},
				},
			},
			{
				Title: "Short Answer",
				Type:  SectionFreeText,
				Items: []Item{
					{Prompt: "Describe your favorite food."},
				},
			},
		},
	}
}

func startedSession(t *testing.T) *Session {
	t.Helper()
	s := newSession(1, testPlan())
	s.start()
	t.Cleanup(s.discard)
	return s
}

func intPtr(n int) *int { return &n }

func TestSessionStart(t *testing.T) {
	s := startedSession(t)
	snap := s.Snapshot()

	assert.Equal(t, StateInProgress, snap.State)
	assert.Equal(t, 0, snap.SectionIndex)
	assert.Equal(t, 0, snap.ItemIndex)
	assert.Equal(t, 5, snap.RemainingSeconds)
}

func TestTickClampsAndCompletes(t *testing.T) {
	s := startedSession(t)

	// drive well past zero manually
	for i := 0; i < 20; i++ {
		s.Tick()
	}

	snap := s.Snapshot()
	assert.Equal(t, StateCompleted, snap.State)
	assert.Equal(t, 0, snap.RemainingSeconds, "countdown never goes negative")
}

func TestCompletedIsTerminal(t *testing.T) {
	s := startedSession(t)
	s.Finish()
	require.Equal(t, StateCompleted, s.Snapshot().State)

	// nothing revives a completed session
	s.Tick()
	s.Advance()
	assert.False(t, s.Record(0, 0, Answer{Text: "late"}))
	assert.Equal(t, StateCompleted, s.Snapshot().State)
}

func TestRecordRejectsStaleSlot(t *testing.T) {
	s := startedSession(t)

	assert.True(t, s.Record(0, 0, Answer{Option: intPtr(1)}))
	s.Advance()

	// a transcription callback for the previous item arrives after advancing
	assert.False(t, s.Record(0, 0, Answer{Text: "stale transcript"}))
	assert.True(t, s.Record(0, 1, Answer{Option: intPtr(0)}))
}

func TestAdvanceRollsIntoNextSection(t *testing.T) {
	s := startedSession(t)

	assert.False(t, s.Advance()) // item 0 -> 1
	assert.False(t, s.Advance()) // section 0 -> 1

	snap := s.Snapshot()
	assert.Equal(t, 1, snap.SectionIndex)
	assert.Equal(t, 0, snap.ItemIndex)
	assert.Equal(t, "Sentence Builds", s.CurrentSection().Title)

	assert.False(t, s.Advance()) // section 1 -> 2
	assert.True(t, s.Advance())  // past the last item completes
	assert.Equal(t, StateCompleted, s.Snapshot().State)
}

func TestResultOnlyWhenCompleted(t *testing.T) {
	s := startedSession(t)
	_, ok := s.Result()
	assert.False(t, ok)

	s.Finish()
	result, ok := s.Result()
	require.True(t, ok)
	assert.Equal(t, s.ID(), result.SessionID)
}

func TestClaimMistakeLogOnce(t *testing.T) {
	s := startedSession(t)

	assert.False(t, s.ClaimMistakeLog(), "nothing to claim while in progress")

	require.True(t, s.Record(0, 0, Answer{Option: intPtr(0)})) // wrong answer
	s.Finish()

	assert.True(t, s.ClaimMistakeLog(), "first claim after completion succeeds")

	// retried finish/advance calls must not get a second grant
	s.Finish()
	s.Advance()
	assert.False(t, s.ClaimMistakeLog())
	assert.False(t, s.ClaimMistakeLog())

	_, ok := s.Result()
	assert.True(t, ok, "the result itself stays re-readable")
}

func TestResultScoring(t *testing.T) {
	s := startedSession(t)

	require.True(t, s.Record(0, 0, Answer{Option: intPtr(1)})) // correct
	s.Advance()
	require.True(t, s.Record(0, 1, Answer{Option: intPtr(1)})) // wrong
	s.Advance()
	require.True(t, s.Record(1, 0, Answer{Text: "delhi is the capital"})) // case-insensitive match
	s.Advance()
	require.True(t, s.Record(2, 0, Answer{Text: "I like dosa."})) // presence
	s.Advance()

	result, ok := s.Result()
	require.True(t, ok)

	// 10 + 0 + 10 + 5 out of 10 + 10 + 10 + 5
	assert.Equal(t, 25, result.Score)
	assert.Equal(t, 35, result.MaxScore)
	require.Len(t, result.Items, 4)

	wrong := result.Items[1]
	require.NotNil(t, wrong.Correct)
	assert.False(t, *wrong.Correct)
	assert.Equal(t, "Small", wrong.Given)
	assert.Equal(t, "Large", wrong.Expected)

	freeText := result.Items[3]
	assert.Nil(t, freeText.Correct, "presence items are not graded")
	assert.Equal(t, PresencePoints, freeText.Points)
}

func TestResultScoreBounds(t *testing.T) {
	s := startedSession(t)
	s.Finish()

	result, ok := s.Result()
	require.True(t, ok)
	assert.Zero(t, result.Score, "unanswered session scores zero")
	assert.Equal(t, s.plan.MaxScore(), result.MaxScore)
	assert.GreaterOrEqual(t, result.Score, 0)
	assert.LessOrEqual(t, result.Score, result.MaxScore)
}

func TestWordReorderExactMatchOnly(t *testing.T) {
	s := startedSession(t)
	s.Advance()
	s.Advance() // at section 1 item 0

	require.True(t, s.Record(1, 0, Answer{Text: "  Delhi is the capital  "}))
	s.Finish()

	result, ok := s.Result()
	require.True(t, ok)
	reorder := result.Items[2]
	require.NotNil(t, reorder.Correct)
	assert.True(t, *reorder.Correct, "surrounding whitespace and case are forgiven")
	assert.Equal(t, GradedPoints, reorder.Points)
}

func TestOutOfRangeOptionScoresNothing(t *testing.T) {
	s := startedSession(t)
	require.True(t, s.Record(0, 0, Answer{Option: intPtr(7)}))
	s.Finish()

	result, ok := s.Result()
	require.True(t, ok)
	first := result.Items[0]
	assert.False(t, first.Answered)
	assert.Zero(t, first.Points)
}

func TestRunnerStartReplacesSession(t *testing.T) {
	r := NewRunner(newTestLogger(t), testPlan())

	first := r.Start(42)
	second := r.Start(42)
	t.Cleanup(second.discard)

	assert.NotEqual(t, first.ID(), second.ID())
	assert.Equal(t, StateCompleted, first.Snapshot().State, "old session is discarded")
	assert.Equal(t, StateInProgress, second.Snapshot().State)

	got, ok := r.Get(42)
	require.True(t, ok)
	assert.Equal(t, second.ID(), got.ID())
}

func TestRunnerAbandon(t *testing.T) {
	r := NewRunner(newTestLogger(t), testPlan())
	s := r.Start(7)

	r.Abandon(7)
	_, ok := r.Get(7)
	assert.False(t, ok)
	assert.Equal(t, StateCompleted, s.Snapshot().State)
}
