// Package store persists [models.AppState] snapshots.
//
// The boundary format is a single JSON object with speakers, schedules and
// settings; outlines and songs are written for compatibility with older
// backups but are never trusted on read — the embedded catalog is substituted
// after every load and import.
//
// Two backends implement [Store]:
//   - [FileStore] : one JSON snapshot on disk, overwritten on each save
//   - [HistoryStore] : SQLite table keeping one row per save, with restore
//
// Read failures fall back to the seed state so the application always starts;
// write failures are reported to the caller, which logs and continues. Manual
// export is the accepted mitigation for that data-loss window.
package store
