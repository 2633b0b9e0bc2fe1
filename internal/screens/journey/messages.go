package journey

import "time"

// notePollMsg is sent periodically while waiting for the wellness note.
type notePollMsg time.Time

// journeyEndMsg is sent to trigger the results flow after the final room.
type journeyEndMsg struct{}
