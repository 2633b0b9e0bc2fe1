package journey

import (
	"context"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/BHARTIYAYASH/manasveda/internal/bank"
	"github.com/BHARTIYAYASH/manasveda/internal/checkin"
	"github.com/BHARTIYAYASH/manasveda/internal/dosha"
	"github.com/BHARTIYAYASH/manasveda/internal/guidance"
	"github.com/BHARTIYAYASH/manasveda/internal/recommend"
	"github.com/BHARTIYAYASH/manasveda/internal/router"
	"github.com/BHARTIYAYASH/manasveda/internal/screen"
	sess "github.com/BHARTIYAYASH/manasveda/internal/session"
	"github.com/BHARTIYAYASH/manasveda/internal/store"
	"github.com/BHARTIYAYASH/manasveda/internal/ui/components"
	"github.com/BHARTIYAYASH/manasveda/internal/ui/layout"
)

const (
	notePollInterval = 200 * time.Millisecond
	maxNotePolls     = 150 // give up on the note after ~30s
)

// JourneyScreen drives an assessment session from welcome to results.
type JourneyScreen struct {
	state     *sess.Session
	eventRepo store.EventRepo
	snapRepo  store.SnapshotRepo
	noteSvc   *guidance.Service

	roomCursor int
	option     components.OptionList

	profile      dosha.Profile
	practices    []recommend.Recommendation
	note         *guidance.Note
	noteWaiting  bool
	notePolls    int
	resultsSaved bool

	quitConfirm bool
	errMsg      string
}

var _ screen.Screen = (*JourneyScreen)(nil)
var _ screen.KeyHintProvider = (*JourneyScreen)(nil)

// New creates a new JourneyScreen with injected dependencies. Repos may
// be nil; the journey then runs without persistence.
func New(eventRepo store.EventRepo, snapRepo store.SnapshotRepo, noteSvc *guidance.Service) *JourneyScreen {
	return &JourneyScreen{
		state:     sess.Begin(),
		eventRepo: eventRepo,
		snapRepo:  snapRepo,
		noteSvc:   noteSvc,
	}
}

func (j *JourneyScreen) Init() tea.Cmd {
	if j.eventRepo != nil {
		_ = j.eventRepo.AppendSession(context.Background(), store.SessionEventData{
			SessionID: j.state.ID,
			Action:    store.SessionStarted,
		})
	}
	return nil
}

func (j *JourneyScreen) Title() string {
	switch j.state.Screen {
	case sess.ScreenQuestion:
		if room, err := bank.GetRoom(j.state.ActiveRoomID); err == nil {
			return room.Name
		}
		return "Journey"
	case sess.ScreenResults:
		return "Your Constitution"
	default:
		return "Journey"
	}
}

func (j *JourneyScreen) KeyHints() []layout.KeyHint {
	if j.quitConfirm {
		return []layout.KeyHint{
			{Key: "Y", Description: "Leave journey"},
			{Key: "N", Description: "Keep going"},
		}
	}
	switch j.state.Screen {
	case sess.ScreenWelcome:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Begin"},
			{Key: "Esc", Description: "Back"},
		}
	case sess.ScreenRooms:
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Choose room"},
			{Key: "Enter", Description: "Enter"},
			{Key: "Esc", Description: "Leave"},
		}
	case sess.ScreenQuestion:
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Choose"},
			{Key: "Enter", Description: "Answer"},
			{Key: "Esc", Description: "Back to rooms"},
		}
	case sess.ScreenResults:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Done"},
		}
	}
	return nil
}

func (j *JourneyScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case journeyEndMsg:
		return j.handleResults()

	case notePollMsg:
		return j.handleNotePoll()

	case tea.KeyMsg:
		return j.handleKey(msg)
	}
	return j, nil
}

func (j *JourneyScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if j.errMsg != "" {
		return j, func() tea.Msg { return router.PopScreenMsg{} }
	}

	if j.quitConfirm {
		switch key {
		case "y", "Y":
			j.quitConfirm = false
			if j.eventRepo != nil {
				_ = j.eventRepo.AppendSession(context.Background(), store.SessionEventData{
					SessionID:      j.state.ID,
					Action:         store.SessionAbandoned,
					RoomsCompleted: j.state.CompletedCount(),
					Points:         j.state.Points,
					DurationSecs:   int64(time.Since(j.state.StartedAt).Seconds()),
				})
			}
			return j, func() tea.Msg { return router.PopScreenMsg{} }
		case "n", "N", "esc":
			j.quitConfirm = false
			return j, nil
		}
		return j, nil
	}

	switch j.state.Screen {
	case sess.ScreenWelcome:
		switch key {
		case "esc":
			return j, func() tea.Msg { return router.PopScreenMsg{} }
		case "enter", " ":
			if err := j.state.Start(); err != nil {
				j.errMsg = err.Error()
			}
			return j, nil
		}

	case sess.ScreenRooms:
		rooms := bank.Rooms()
		switch key {
		case "esc":
			j.quitConfirm = true
			return j, nil
		case "up", "k":
			if j.roomCursor > 0 {
				j.roomCursor--
			}
			return j, nil
		case "down", "j":
			if j.roomCursor < len(rooms)-1 {
				j.roomCursor++
			}
			return j, nil
		case "enter":
			room := rooms[j.roomCursor]
			if j.state.Completed[room.ID] {
				return j, nil
			}
			if err := j.state.SelectRoom(room.ID); err != nil {
				j.errMsg = err.Error()
				return j, nil
			}
			j.loadQuestion()
			return j, nil
		}

	case sess.ScreenQuestion:
		switch key {
		case "esc":
			if err := j.state.LeaveRoom(); err != nil {
				j.errMsg = err.Error()
			}
			return j, nil
		}

		var cmd tea.Cmd
		j.option, cmd = j.option.Update(msg)
		if j.option.Submitted {
			return j.commitAnswer()
		}
		return j, cmd

	case sess.ScreenResults:
		switch key {
		case "enter", "esc":
			return j, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}

	return j, nil
}

// loadQuestion builds the option list for the current question. A
// previously committed answer positions the cursor on its option.
func (j *JourneyScreen) loadQuestion() {
	q, err := j.state.CurrentQuestion()
	if err != nil {
		j.errMsg = err.Error()
		return
	}
	j.option = components.NewOptionList(q.Prompt, q.Options)
	if prev, ok := j.state.AnswerFor(q.ID); ok {
		for i, opt := range q.Options {
			if opt == prev.Option {
				j.option.Selected = i
				break
			}
		}
	}
}

// commitAnswer submits the chosen option to the session and persists
// the answer event.
func (j *JourneyScreen) commitAnswer() (screen.Screen, tea.Cmd) {
	q, err := j.state.CurrentQuestion()
	if err != nil {
		j.errMsg = err.Error()
		return j, nil
	}
	chosen := j.option.Chosen()
	roomID := j.state.ActiveRoomID

	if err := j.state.SubmitAnswer(chosen); err != nil {
		j.errMsg = err.Error()
		return j, nil
	}

	if j.eventRepo != nil {
		revisions := 0
		if a, ok := j.state.AnswerFor(q.ID); ok {
			revisions = a.Revisions
		}
		_ = j.eventRepo.AppendAnswer(context.Background(), store.AnswerEventData{
			SessionID:  j.state.ID,
			RoomID:     roomID,
			QuestionID: q.ID,
			Option:     chosen,
			Revisions:  revisions,
		})
	}

	switch j.state.Screen {
	case sess.ScreenQuestion:
		j.loadQuestion()
		return j, nil
	case sess.ScreenResults:
		return j, func() tea.Msg { return journeyEndMsg{} }
	default:
		// Back on room selection after completing a room.
		return j, nil
	}
}

// handleResults scores the journey, persists the outcome, and kicks off
// note generation.
func (j *JourneyScreen) handleResults() (screen.Screen, tea.Cmd) {
	profile, err := dosha.Score(j.state.Answers)
	if err != nil {
		j.errMsg = err.Error()
		return j, nil
	}
	j.profile = profile

	metrics := recommend.ProfileMetrics(profile)
	ranked := recommend.Rank(recommend.Library(), metrics, recommend.CategoryAll)
	if len(ranked) > 3 {
		ranked = ranked[:3]
	}
	j.practices = ranked

	ctx := context.Background()
	if !j.resultsSaved {
		j.resultsSaved = true
		if j.eventRepo != nil {
			_ = j.eventRepo.AppendSession(ctx, store.SessionEventData{
				SessionID:      j.state.ID,
				Action:         store.SessionCompleted,
				RoomsCompleted: j.state.CompletedCount(),
				Points:         j.state.Points,
				DurationSecs:   int64(time.Since(j.state.StartedAt).Seconds()),
			})
		}
		if j.snapRepo != nil {
			_ = j.snapRepo.Save(ctx, &store.Snapshot{
				Timestamp: time.Now(),
				Data: store.SnapshotData{
					Version:  1,
					Profile:  profile,
					Dominant: profile.Dominant(),
					Points:   j.state.Points,
				},
			})
		}
	}

	if j.noteSvc != nil && j.noteSvc.Available() {
		input := guidance.NoteInput{
			Profile:   profile,
			Points:    j.state.Points,
			Practices: j.practices,
		}
		if j.eventRepo != nil {
			if latest, err := j.eventRepo.LatestCheckin(ctx); err == nil && latest != nil {
				input.LatestCheckin = &checkin.DailyCheck{
					Mood:    latest.Mood,
					Energy:  latest.Energy,
					Stress:  latest.Stress,
					Sleep:   latest.Sleep,
					Notes:   latest.Notes,
					TakenAt: latest.Timestamp,
				}
			}
		}
		j.noteSvc.RequestNote(ctx, input)
		j.noteWaiting = true
		return j, notePollCmd()
	}

	return j, nil
}

func (j *JourneyScreen) handleNotePoll() (screen.Screen, tea.Cmd) {
	if !j.noteWaiting {
		return j, nil
	}
	if note, ok := j.noteSvc.ConsumeNote(); ok {
		j.note = note
		j.noteWaiting = false
		return j, nil
	}
	j.notePolls++
	if j.notePolls > maxNotePolls {
		j.noteWaiting = false
		return j, nil
	}
	return j, notePollCmd()
}

func notePollCmd() tea.Cmd {
	return tea.Tick(notePollInterval, func(t time.Time) tea.Msg {
		return notePollMsg(t)
	})
}
