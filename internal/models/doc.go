// Package models defines the domain entities for the public talk scheduling service.
//
// The package contains three categories of types:
//
// 1. Mutable records owned by [AppState]:
//   - [Speaker] : Visiting speaker with soft-delete lifecycle
//   - [Schedule] : One weekend assignment of a speaker to an outline
//   - [Settings] : Process-wide preferences (conflict window, theme)
//
// 2. Immutable catalog reference data, loaded from the embedded catalog and
// never trusted from persisted storage:
//   - [Outline] : Numbered, titled talk outline
//   - [Song] : Numbered, titled song
//
// 3. The [Date] value type: a pure calendar date compared without any time or
// timezone component, so that day arithmetic never shifts across zones.
//
// [AppState] is the aggregate root. It exclusively owns all contained
// collections; Schedule and Speaker are siblings joined only by SpeakerID.
package models
