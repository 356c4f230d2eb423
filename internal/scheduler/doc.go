// Package scheduler implements the scheduling and conflict-detection rules.
//
// Every operation is a pure function from (state snapshot, input) to
// (new state snapshot, result): collections are replaced copy-on-write and
// nothing is mutated in place, so callers see either the old snapshot or the
// committed one, never an in-progress mutation. The package performs no I/O
// and never reads the system clock; "today" is injected by the caller.
//
// The three rule sets:
//   - [ResolveSpeaker] : free-text name to existing-or-new speaker record
//   - [DetectConflicts] : outline reuse inside the configured window
//   - [CreateSchedule] and friends : structural validation plus the committed
//     state transition
package scheduler
