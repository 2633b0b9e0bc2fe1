package journey

import (
	"context"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/BHARTIYAYASH/manasveda/internal/bank"
	"github.com/BHARTIYAYASH/manasveda/internal/router"
	"github.com/BHARTIYAYASH/manasveda/internal/screen"
	sess "github.com/BHARTIYAYASH/manasveda/internal/session"
	"github.com/BHARTIYAYASH/manasveda/internal/store"
)

// mockEventRepo implements store.EventRepo for testing.
type mockEventRepo struct {
	sessionEvents []store.SessionEventData
	answerEvents  []store.AnswerEventData
}

func (m *mockEventRepo) AppendAnswer(_ context.Context, data store.AnswerEventData) error {
	m.answerEvents = append(m.answerEvents, data)
	return nil
}
func (m *mockEventRepo) AppendSession(_ context.Context, data store.SessionEventData) error {
	m.sessionEvents = append(m.sessionEvents, data)
	return nil
}
func (m *mockEventRepo) AppendCheckin(_ context.Context, _ store.CheckinEventData) error {
	return nil
}
func (m *mockEventRepo) AppendLLMRequest(_ context.Context, _ store.LLMRequestEventData) error {
	return nil
}
func (m *mockEventRepo) LatestCheckin(_ context.Context) (*store.CheckinEvent, error) {
	return nil, nil
}
func (m *mockEventRepo) Checkins(_ context.Context, _ store.QueryOpts) ([]store.CheckinEvent, error) {
	return nil, nil
}
func (m *mockEventRepo) Sessions(_ context.Context, _ store.QueryOpts) ([]store.SessionEvent, error) {
	return nil, nil
}
func (m *mockEventRepo) QueryLLMEvents(_ context.Context, _ store.QueryOpts) ([]store.LLMEvent, error) {
	return nil, nil
}
func (m *mockEventRepo) GetLLMEvent(_ context.Context, _ int) (*store.LLMEvent, error) {
	return nil, nil
}
func (m *mockEventRepo) LLMUsageByPurpose(_ context.Context) ([]store.LLMUsageStat, error) {
	return nil, nil
}

// mockSnapshotRepo implements store.SnapshotRepo for testing.
type mockSnapshotRepo struct {
	snapshots []*store.Snapshot
}

func (m *mockSnapshotRepo) Save(_ context.Context, snap *store.Snapshot) error {
	m.snapshots = append(m.snapshots, snap)
	return nil
}
func (m *mockSnapshotRepo) Latest(_ context.Context) (*store.Snapshot, error) {
	if len(m.snapshots) == 0 {
		return nil, nil
	}
	return m.snapshots[len(m.snapshots)-1], nil
}
func (m *mockSnapshotRepo) List(_ context.Context, _ int) ([]store.Snapshot, error) {
	return nil, nil
}
func (m *mockSnapshotRepo) Prune(_ context.Context, _ int) error {
	return nil
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func enterKey() tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: tea.KeyEnter}
}

func escKey() tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: tea.KeyEscape}
}

func testJourney() (*JourneyScreen, *mockEventRepo, *mockSnapshotRepo) {
	eventRepo := &mockEventRepo{}
	snapRepo := &mockSnapshotRepo{}
	j := New(eventRepo, snapRepo, nil)
	j.Init()
	return j, eventRepo, snapRepo
}

// drain runs the returned command chain until it stops producing messages.
func drain(t *testing.T, s screen.Screen, cmd tea.Cmd) screen.Screen {
	t.Helper()
	for cmd != nil {
		msg := cmd()
		if msg == nil {
			break
		}
		if _, ok := msg.(router.PopScreenMsg); ok {
			break
		}
		s, cmd = s.Update(msg)
	}
	return s
}

// completeRoom navigates to the room at index and answers every question
// with the first option.
func completeRoom(t *testing.T, j *JourneyScreen, index int) {
	t.Helper()

	var s screen.Screen = j
	for i := 0; i < len(bank.Rooms()); i++ {
		s, _ = s.Update(keyPress('k'))
	}
	for i := 0; i < index; i++ {
		s, _ = s.Update(keyPress('j'))
	}

	room := bank.Rooms()[index]
	s, _ = s.Update(enterKey())
	if j.state.Screen != sess.ScreenQuestion {
		t.Fatalf("expected question screen after entering room %q, got %s", room.ID, j.state.Screen)
	}

	for range room.Questions {
		var cmd tea.Cmd
		s, cmd = s.Update(enterKey())
		s = drain(t, s, cmd)
	}

	if !j.state.Completed[room.ID] {
		t.Fatalf("room %q should be completed", room.ID)
	}
}

func TestInitRecordsSessionStart(t *testing.T) {
	_, eventRepo, _ := testJourney()

	if len(eventRepo.sessionEvents) != 1 {
		t.Fatalf("expected 1 session event, got %d", len(eventRepo.sessionEvents))
	}
	if eventRepo.sessionEvents[0].Action != store.SessionStarted {
		t.Errorf("action = %q, want %q", eventRepo.sessionEvents[0].Action, store.SessionStarted)
	}
}

func TestEnterBeginsJourney(t *testing.T) {
	j, _, _ := testJourney()

	j.Update(enterKey())
	if j.state.Screen != sess.ScreenRooms {
		t.Errorf("expected rooms screen, got %s", j.state.Screen)
	}
}

func TestAnswerPersistsEvent(t *testing.T) {
	j, eventRepo, _ := testJourney()
	j.Update(enterKey())

	rooms := bank.Rooms()
	j.Update(enterKey()) // enter first room
	j.Update(enterKey()) // answer first question with option A

	if len(eventRepo.answerEvents) != 1 {
		t.Fatalf("expected 1 answer event, got %d", len(eventRepo.answerEvents))
	}
	ev := eventRepo.answerEvents[0]
	if ev.RoomID != rooms[0].ID {
		t.Errorf("room = %q, want %q", ev.RoomID, rooms[0].ID)
	}
	if ev.QuestionID != rooms[0].Questions[0].ID {
		t.Errorf("question = %q, want %q", ev.QuestionID, rooms[0].Questions[0].ID)
	}
	if ev.Option != rooms[0].Questions[0].Options[0] {
		t.Errorf("option = %q, want first option", ev.Option)
	}
	if ev.Revisions != 0 {
		t.Errorf("revisions = %d, want 0", ev.Revisions)
	}
}

func TestLeaveRoomAndRevise(t *testing.T) {
	j, eventRepo, _ := testJourney()
	j.Update(enterKey())

	// Answer the first question, then leave the room.
	j.Update(enterKey())
	j.Update(enterKey())
	j.Update(escKey())
	if j.state.Screen != sess.ScreenRooms {
		t.Fatalf("expected rooms screen after leaving, got %s", j.state.Screen)
	}

	// Re-enter and answer the same question again.
	j.Update(enterKey())
	j.Update(enterKey())

	if len(eventRepo.answerEvents) != 2 {
		t.Fatalf("expected 2 answer events, got %d", len(eventRepo.answerEvents))
	}
	if eventRepo.answerEvents[1].Revisions != 1 {
		t.Errorf("revisions = %d, want 1", eventRepo.answerEvents[1].Revisions)
	}
}

func TestFullJourneyReachesResults(t *testing.T) {
	j, eventRepo, snapRepo := testJourney()
	j.Update(enterKey())

	for i := range bank.Rooms() {
		completeRoom(t, j, i)
	}

	if j.state.Screen != sess.ScreenResults {
		t.Fatalf("expected results screen, got %s", j.state.Screen)
	}

	wantPoints := bank.RoomCount() * sess.CompletionBonus
	if j.state.Points != wantPoints {
		t.Errorf("points = %d, want %d", j.state.Points, wantPoints)
	}

	// Completed session event recorded.
	var completed *store.SessionEventData
	for i := range eventRepo.sessionEvents {
		if eventRepo.sessionEvents[i].Action == store.SessionCompleted {
			completed = &eventRepo.sessionEvents[i]
		}
	}
	if completed == nil {
		t.Fatal("expected a completed session event")
	}
	if completed.RoomsCompleted != bank.RoomCount() {
		t.Errorf("rooms completed = %d, want %d", completed.RoomsCompleted, bank.RoomCount())
	}
	if completed.Points != wantPoints {
		t.Errorf("event points = %d, want %d", completed.Points, wantPoints)
	}

	// Snapshot saved with the scored profile.
	if len(snapRepo.snapshots) != 1 {
		t.Fatalf("expected 1 snapshot, got %d", len(snapRepo.snapshots))
	}
	snap := snapRepo.snapshots[0]
	sum := snap.Data.Profile.Vata + snap.Data.Profile.Pitta + snap.Data.Profile.Kapha
	if sum < 99.9 || sum > 100.1 {
		t.Errorf("profile sums to %.2f, want 100", sum)
	}
	if snap.Data.Dominant == "" {
		t.Error("expected a dominant dosha in the snapshot")
	}
	if snap.Data.Points != wantPoints {
		t.Errorf("snapshot points = %d, want %d", snap.Data.Points, wantPoints)
	}
}

func TestAbandonRecordsEvent(t *testing.T) {
	j, eventRepo, _ := testJourney()
	j.Update(enterKey())

	j.Update(escKey())
	if !j.quitConfirm {
		t.Fatal("expected quit confirmation")
	}

	_, cmd := j.Update(keyPress('y'))
	if cmd == nil {
		t.Fatal("expected pop command after confirming")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("expected PopScreenMsg")
	}

	var abandoned bool
	for _, ev := range eventRepo.sessionEvents {
		if ev.Action == store.SessionAbandoned {
			abandoned = true
		}
	}
	if !abandoned {
		t.Error("expected an abandoned session event")
	}
}

func TestQuitConfirmDeclined(t *testing.T) {
	j, _, _ := testJourney()
	j.Update(enterKey())

	j.Update(escKey())
	j.Update(keyPress('n'))
	if j.quitConfirm {
		t.Error("quit confirmation should be dismissed")
	}
	if j.state.Screen != sess.ScreenRooms {
		t.Errorf("expected rooms screen, got %s", j.state.Screen)
	}
}

func TestCompletedRoomCannotBeReentered(t *testing.T) {
	j, _, _ := testJourney()
	j.Update(enterKey())

	completeRoom(t, j, 0)

	// Cursor back to the completed room; enter must be a no-op.
	var s screen.Screen = j
	for i := 0; i < len(bank.Rooms()); i++ {
		s, _ = s.Update(keyPress('k'))
	}
	s.Update(enterKey())

	if j.state.Screen != sess.ScreenRooms {
		t.Errorf("expected rooms screen, got %s", j.state.Screen)
	}
}

func TestNilReposJourneyStillWorks(t *testing.T) {
	j := New(nil, nil, nil)
	j.Init()
	j.Update(enterKey())

	for i := range bank.Rooms() {
		completeRoom(t, j, i)
	}
	if j.state.Screen != sess.ScreenResults {
		t.Errorf("expected results screen, got %s", j.state.Screen)
	}
}
