package assessment

import (
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// State of one session instance. Completed is terminal; restarting a test
// always creates a fresh session.
type State string

const (
	StateIdle       State = "idle"
	StateInProgress State = "in-progress"
	StateCompleted  State = "completed"
)

// Answer is one recorded response. Multiple-choice items carry an option
// index; everything else carries text (typed input or a speech transcript).
type Answer struct {
	Option *int   `json:"option,omitempty"`
	Text   string `json:"text,omitempty"`
}

type slot struct {
	section, item int
}

// Session holds the transient state of one running assessment. All mutation
// goes through the mutex so timer ticks and user actions are serialized.
type Session struct {
	id     string
	userID uint
	plan   *Plan

	mu              sync.Mutex
	state           State
	section         int
	item            int
	remaining       int
	responses       map[slot]Answer
	startedAt       time.Time
	stop            chan struct{}
	mistakesClaimed bool
}

func newSession(userID uint, plan *Plan) *Session {
	return &Session{
		id:        uuid.NewString(),
		userID:    userID,
		plan:      plan,
		state:     StateIdle,
		responses: make(map[slot]Answer),
	}
}

// start transitions Idle -> InProgress and launches the owned ticker
// goroutine. The ticker stops when the session completes or is discarded, so
// no tick callback can outlive its session.
func (s *Session) start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateIdle {
		return
	}
	s.state = StateInProgress
	s.section = 0
	s.item = 0
	s.remaining = s.plan.DurationSeconds
	s.startedAt = time.Now()
	s.stop = make(chan struct{})

	go func(stop chan struct{}) {
		ticker := time.NewTicker(1 * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-stop:
				return
			case <-ticker.C:
				s.Tick()
			}
		}
	}(s.stop)
}

// ID returns the session identifier.
func (s *Session) ID() string {
	return s.id
}

// Tick decrements the countdown by one second. Reaching zero forces
// completion; ticks against a completed session are no-ops.
func (s *Session) Tick() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateInProgress {
		return
	}
	s.remaining--
	if s.remaining <= 0 {
		s.remaining = 0
		s.completeLocked()
	}
}

// Record stores a response for the given slot. The write is dropped unless
// the session is live and the slot is the active cursor position — this is
// what discards transcription results that arrive after the user has moved
// on or the session has ended.
func (s *Session) Record(section, item int, answer Answer) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateInProgress {
		return false
	}
	if section != s.section || item != s.item {
		return false
	}
	s.responses[slot{section, item}] = answer
	return true
}

// Advance moves the cursor to the next item, rolling into the next section
// when the current one is exhausted. Advancing past the last item of the
// last section completes the session. Returns true when the session is done.
func (s *Session) Advance() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateInProgress {
		return s.state == StateCompleted
	}

	sec := s.plan.Sections[s.section]
	switch {
	case s.item < len(sec.Items)-1:
		s.item++
	case s.section < len(s.plan.Sections)-1:
		s.section++
		s.item = 0
	default:
		s.completeLocked()
	}
	return s.state == StateCompleted
}

// Finish ends the session immediately.
func (s *Session) Finish() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateInProgress {
		return
	}
	s.completeLocked()
}

// discard abandons the session, stopping its ticker without scoring.
func (s *Session) discard() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == StateInProgress {
		s.completeLocked()
	}
}

// completeLocked is the single terminal transition. Callers hold s.mu.
func (s *Session) completeLocked() {
	if s.state == StateCompleted {
		return
	}
	s.state = StateCompleted
	if s.stop != nil {
		close(s.stop)
		s.stop = nil
	}
}

// ClaimMistakeLog grants the right to forward this session's wrong answers
// to the mistake log. It returns true exactly once, on the first call after
// completion, so retried finish requests cannot append duplicate rows.
func (s *Session) ClaimMistakeLog() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateCompleted || s.mistakesClaimed {
		return false
	}
	s.mistakesClaimed = true
	return true
}

// Snapshot is a read-only view of the session for the HTTP layer.
type Snapshot struct {
	ID               string `json:"id"`
	State            State  `json:"state"`
	SectionIndex     int    `json:"sectionIndex"`
	ItemIndex        int    `json:"itemIndex"`
	SectionCount     int    `json:"sectionCount"`
	ItemCount        int    `json:"itemCount"` // items in the current section
	RemainingSeconds int    `json:"remainingSeconds"`
	Answered         int    `json:"answered"`
}

// Snapshot returns the current cursor and countdown.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Snapshot{
		ID:               s.id,
		State:            s.state,
		SectionIndex:     s.section,
		ItemIndex:        s.item,
		SectionCount:     len(s.plan.Sections),
		ItemCount:        len(s.plan.Sections[s.section].Items),
		RemainingSeconds: s.remaining,
		Answered:         len(s.responses),
	}
}

// CurrentSection returns the active section descriptor.
func (s *Session) CurrentSection() Section {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.plan.Sections[s.section]
}

// ItemScore is the grading of one item in the final result.
type ItemScore struct {
	SectionIndex int         `json:"sectionIndex"`
	ItemIndex    int         `json:"itemIndex"`
	Type         SectionType `json:"type"`
	Prompt       string      `json:"prompt"`
	Answered     bool        `json:"answered"`
	Correct      *bool       `json:"correct,omitempty"` // graded items only
	Given        string      `json:"given,omitempty"`
	Expected     string      `json:"expected,omitempty"`
	Points       int         `json:"points"`
	MaxPoints    int         `json:"maxPoints"`
}

// Result is the deterministic final score derived from recorded responses.
type Result struct {
	SessionID string      `json:"sessionId"`
	Score     int         `json:"score"`
	MaxScore  int         `json:"maxScore"`
	Percent   float64     `json:"percent"`
	Items     []ItemScore `json:"items"`
}

// Result derives the score summary. It is only available once the session
// has completed.
func (s *Session) Result() (Result, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateCompleted {
		return Result{}, false
	}

	res := Result{SessionID: s.id, MaxScore: s.plan.MaxScore()}
	for si, sec := range s.plan.Sections {
		for ii, item := range sec.Items {
			score := gradeItem(sec.Type, item, si, ii, s.responses)
			res.Score += score.Points
			res.Items = append(res.Items, score)
		}
	}
	if res.MaxScore > 0 {
		res.Percent = float64(res.Score) / float64(res.MaxScore) * 100
	}
	return res, true
}

func gradeItem(t SectionType, item Item, si, ii int, responses map[slot]Answer) ItemScore {
	score := ItemScore{
		SectionIndex: si,
		ItemIndex:    ii,
		Type:         t,
		Prompt:       item.Prompt,
		MaxPoints:    maxPointsFor(t),
	}

	answer, ok := responses[slot{si, ii}]
	switch t {
	case SectionMultipleChoice:
		score.Answered = ok && answer.Option != nil && *answer.Option >= 0 && *answer.Option < len(item.Options)
		correct := score.Answered && *answer.Option == item.Correct
		score.Correct = &correct
		if score.Answered {
			score.Given = item.Options[*answer.Option]
		}
		score.Expected = item.Options[item.Correct]
		if correct {
			score.Points = GradedPoints
		}
	case SectionWordReorder:
		given := strings.TrimSpace(answer.Text)
		correct := ok && given != "" && strings.EqualFold(given, strings.TrimSpace(item.Target))
		score.Answered = ok && given != ""
		score.Correct = &correct
		score.Given = given
		score.Expected = item.Target
		if correct {
			score.Points = GradedPoints
		}
	default:
		// Presence-based: any non-empty submission earns the points. Audio
		// transcripts are not graded for content.
		if ok && strings.TrimSpace(answer.Text) != "" {
			score.Answered = true
			score.Given = answer.Text
			score.Points = PresencePoints
		}
	}
	return score
}
