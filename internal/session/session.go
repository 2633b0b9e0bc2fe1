package session

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/BHARTIYAYASH/manasveda/internal/bank"
)

// CompletionBonus is the reward granted when a room is finished.
const CompletionBonus = 25

// Screen identifies where in the journey a session currently is.
type Screen int

const (
	ScreenWelcome Screen = iota
	ScreenRooms
	ScreenQuestion
	ScreenResults
)

// String returns the screen name.
func (s Screen) String() string {
	switch s {
	case ScreenWelcome:
		return "welcome"
	case ScreenRooms:
		return "rooms"
	case ScreenQuestion:
		return "question"
	case ScreenResults:
		return "results"
	default:
		return "unknown"
	}
}

// ErrInvalidTransition is the sentinel wrapped by every rejected action.
var ErrInvalidTransition = errors.New("invalid transition")

// TransitionError describes why an action was rejected. The session is
// left untouched when one is returned.
type TransitionError struct {
	From   Screen
	Action string
	Reason string
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("%s rejected on %s screen: %s", e.Action, e.From, e.Reason)
}

func (e *TransitionError) Unwrap() error { return ErrInvalidTransition }

// Answer records a committed choice for one question. Revisions counts
// how many times the answer was replaced before the room was completed;
// an answer committed once and never changed has Revisions 0.
type Answer struct {
	QuestionID string
	Option     string
	Revisions  int
}

// Session is the mutable per-user journey state. A session belongs to a
// single interaction; it is never shared, so no locking is needed.
type Session struct {
	ID           string
	Screen       Screen
	ActiveRoomID string
	Cursor       int
	Answers      []Answer
	Completed    map[string]bool
	Points       int
	StartedAt    time.Time
}

// Begin creates a fresh session on the welcome screen.
func Begin() *Session {
	return &Session{
		ID:        uuid.New().String(),
		Screen:    ScreenWelcome,
		Completed: make(map[string]bool),
		StartedAt: time.Now(),
	}
}

// Start moves the session from the welcome screen to room selection.
func (s *Session) Start() error {
	if s.Screen != ScreenWelcome {
		return &TransitionError{From: s.Screen, Action: "start", Reason: "journey already begun"}
	}
	s.Screen = ScreenRooms
	return nil
}

// SelectRoom enters the given room and positions the cursor at its first
// question. Completed rooms and unknown IDs are rejected.
func (s *Session) SelectRoom(roomID string) error {
	if s.Screen != ScreenRooms {
		return &TransitionError{From: s.Screen, Action: "select room", Reason: "room selection is only available from the rooms screen"}
	}
	if _, err := bank.GetRoom(roomID); err != nil {
		return &TransitionError{From: s.Screen, Action: "select room", Reason: fmt.Sprintf("unknown room %q", roomID)}
	}
	if s.Completed[roomID] {
		return &TransitionError{From: s.Screen, Action: "select room", Reason: fmt.Sprintf("room %q already completed", roomID)}
	}
	s.ActiveRoomID = roomID
	s.Cursor = 0
	s.Screen = ScreenQuestion
	return nil
}

// CurrentQuestion returns the question the cursor points at.
// Only valid while on the question screen.
func (s *Session) CurrentQuestion() (bank.Question, error) {
	if s.Screen != ScreenQuestion {
		return bank.Question{}, fmt.Errorf("no active question on %s screen", s.Screen)
	}
	room, err := bank.GetRoom(s.ActiveRoomID)
	if err != nil {
		return bank.Question{}, err
	}
	return room.Questions[s.Cursor], nil
}

// SubmitAnswer commits the chosen option for the current question and
// advances the journey. Re-answering a question replaces the stored
// answer and bumps its revision count. Submitting the room's final
// answer completes the room, awards the completion bonus, and returns
// to room selection — or to results once every room is complete.
func (s *Session) SubmitAnswer(option string) error {
	if s.Screen != ScreenQuestion {
		return &TransitionError{From: s.Screen, Action: "submit answer", Reason: "no question is active"}
	}
	room, err := bank.GetRoom(s.ActiveRoomID)
	if err != nil {
		return &TransitionError{From: s.Screen, Action: "submit answer", Reason: fmt.Sprintf("unknown room %q", s.ActiveRoomID)}
	}
	q := room.Questions[s.Cursor]

	valid := false
	for _, opt := range q.Options {
		if opt == option {
			valid = true
			break
		}
	}
	if !valid {
		return &TransitionError{From: s.Screen, Action: "submit answer", Reason: fmt.Sprintf("option %q does not belong to question %q", option, q.ID)}
	}

	s.upsertAnswer(q.ID, option)

	if s.Cursor < room.LastIndex() {
		s.Cursor++
		return nil
	}

	// Final answer of the room.
	s.Completed[room.ID] = true
	s.Points += CompletionBonus
	s.ActiveRoomID = ""
	s.Cursor = 0
	s.Screen = ScreenRooms

	if s.AllRoomsComplete() {
		s.Screen = ScreenResults
	}
	return nil
}

// LeaveRoom abandons the active room without completing it. Answers
// already committed for the room are kept.
func (s *Session) LeaveRoom() error {
	if s.Screen != ScreenQuestion {
		return &TransitionError{From: s.Screen, Action: "leave room", Reason: "no room is active"}
	}
	s.ActiveRoomID = ""
	s.Cursor = 0
	s.Screen = ScreenRooms
	return nil
}

// upsertAnswer replaces an existing answer for the question in place,
// incrementing its revision count, or appends a new one.
func (s *Session) upsertAnswer(questionID, option string) {
	for i := range s.Answers {
		if s.Answers[i].QuestionID == questionID {
			s.Answers[i].Option = option
			s.Answers[i].Revisions++
			return
		}
	}
	s.Answers = append(s.Answers, Answer{QuestionID: questionID, Option: option})
}

// AnswerFor returns the committed answer for a question, if any.
func (s *Session) AnswerFor(questionID string) (Answer, bool) {
	for _, a := range s.Answers {
		if a.QuestionID == questionID {
			return a, true
		}
	}
	return Answer{}, false
}

// AllRoomsComplete reports whether every room in the bank is completed.
func (s *Session) AllRoomsComplete() bool {
	for _, id := range bank.RoomIDs() {
		if !s.Completed[id] {
			return false
		}
	}
	return true
}

// CompletedCount returns how many rooms have been completed.
func (s *Session) CompletedCount() int {
	n := 0
	for _, done := range s.Completed {
		if done {
			n++
		}
	}
	return n
}
