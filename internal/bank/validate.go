package bank

import (
	"fmt"
	"strings"
)

// validateCatalog performs all structural checks on the catalog.
// Returns a combined error describing all problems found, or nil if valid.
func validateCatalog(ct *catalog) error {
	var errs []string

	roomIDs := make(map[string]bool, len(ct.rooms))
	questionIDs := make(map[string]bool)

	for _, r := range ct.rooms {
		if roomIDs[r.ID] {
			errs = append(errs, fmt.Sprintf("duplicate room ID: %q", r.ID))
		}
		roomIDs[r.ID] = true

		if len(r.Questions) == 0 {
			errs = append(errs, fmt.Sprintf("room %q has no questions", r.ID))
		}

		for _, q := range r.Questions {
			if questionIDs[q.ID] {
				errs = append(errs, fmt.Sprintf("duplicate question ID: %q", q.ID))
			}
			questionIDs[q.ID] = true

			if len(q.Options) == 0 {
				errs = append(errs, fmt.Sprintf("question %q has no options", q.ID))
			}

			seen := make(map[string]bool, len(q.Options))
			for _, opt := range q.Options {
				if seen[opt] {
					errs = append(errs, fmt.Sprintf("question %q repeats option %q", q.ID, opt))
				}
				seen[opt] = true
			}

			// Every option needs a weight entry, and vice versa. A mismatch
			// here would surface later as UnknownOptionError during scoring.
			entries := ct.weights[q.ID]
			if entries == nil {
				errs = append(errs, fmt.Sprintf("question %q has no weight table", q.ID))
				continue
			}
			for _, opt := range q.Options {
				if _, ok := entries[opt]; !ok {
					errs = append(errs, fmt.Sprintf("question %q option %q has no weight entry", q.ID, opt))
				}
			}
			for opt := range entries {
				if !seen[opt] {
					errs = append(errs, fmt.Sprintf("question %q has a weight entry for unknown option %q", q.ID, opt))
				}
			}
		}
	}

	// Weight tables must not reference questions outside the catalog.
	for qid := range ct.weights {
		if !questionIDs[qid] {
			errs = append(errs, fmt.Sprintf("weight table references nonexistent question %q", qid))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("question bank validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}
