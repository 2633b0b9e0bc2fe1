package bank

import (
	"fmt"
	"slices"
)

// catalog holds the room list with precomputed indices.
type catalog struct {
	rooms      []Room
	byID       map[string]*Room
	questions  map[string]*Question
	roomOfQ    map[string]string
	weights    map[string]map[string]Weights
	totalCount int
}

// c is the package-level catalog singleton, set by init() in seed.go.
var c *catalog

// buildCatalog constructs the catalog and its lookup indices.
func buildCatalog(rooms []Room, weights map[string]map[string]Weights) *catalog {
	ct := &catalog{
		rooms:   rooms,
		byID:    make(map[string]*Room, len(rooms)),
		questions: make(map[string]*Question),
		roomOfQ: make(map[string]string),
		weights: weights,
	}
	for i := range ct.rooms {
		r := &ct.rooms[i]
		ct.byID[r.ID] = r
		for j := range r.Questions {
			q := &r.Questions[j]
			ct.questions[q.ID] = q
			ct.roomOfQ[q.ID] = r.ID
			ct.totalCount++
		}
	}
	return ct
}

// UnknownOptionError reports an answer that references an option with no
// weight entry. It signals the bank and the weight table are out of sync,
// which is a content-authoring defect rather than a user error.
type UnknownOptionError struct {
	QuestionID string
	Option     string
}

func (e *UnknownOptionError) Error() string {
	return fmt.Sprintf("no weight entry for question %q option %q", e.QuestionID, e.Option)
}

// Rooms returns all rooms in display order.
func Rooms() []Room {
	return slices.Clone(c.rooms)
}

// GetRoom returns a room by ID, or an error if not found.
func GetRoom(id string) (Room, error) {
	r, ok := c.byID[id]
	if !ok {
		return Room{}, fmt.Errorf("room not found: %q", id)
	}
	return *r, nil
}

// GetQuestion returns a question by ID, or an error if not found.
func GetQuestion(id string) (Question, error) {
	q, ok := c.questions[id]
	if !ok {
		return Question{}, fmt.Errorf("question not found: %q", id)
	}
	return *q, nil
}

// RoomOfQuestion returns the ID of the room containing the given question.
func RoomOfQuestion(questionID string) (string, bool) {
	id, ok := c.roomOfQ[questionID]
	return id, ok
}

// RoomIDs returns all room IDs in display order.
func RoomIDs() []string {
	ids := make([]string, len(c.rooms))
	for i, r := range c.rooms {
		ids[i] = r.ID
	}
	return ids
}

// RoomCount returns the number of rooms in the catalog.
func RoomCount() int {
	return len(c.rooms)
}

// QuestionCount returns the total number of questions across all rooms.
func QuestionCount() int {
	return c.totalCount
}

// OptionWeights returns the dosha deltas for a chosen option.
// A missing entry is an *UnknownOptionError.
func OptionWeights(questionID, option string) (Weights, error) {
	opts, ok := c.weights[questionID]
	if !ok {
		return Weights{}, &UnknownOptionError{QuestionID: questionID, Option: option}
	}
	w, ok := opts[option]
	if !ok {
		return Weights{}, &UnknownOptionError{QuestionID: questionID, Option: option}
	}
	return w, nil
}

// Validate checks the catalog for structural issues.
func Validate() error {
	return validateCatalog(c)
}
