package models

import (
	_ "embed"
	"encoding/json"
	"fmt"
)

//go:embed catalog.json
var catalogData []byte

// catalog is the canonical in-memory outline and song catalog.
//
// Outlines and songs are reference data supplied with the application, not
// user data: persisted snapshots may carry stale copies, so the store always
// substitutes this catalog after load and import.
type catalog struct {
	Outlines []Outline `json:"outlines"`
	Songs    []Song    `json:"songs"`
}

func loadCatalog() catalog {
	var c catalog
	if err := json.Unmarshal(catalogData, &c); err != nil {
		panic(fmt.Sprintf("failed to parse embedded catalog: %v", err))
	}
	return c
}

// CatalogOutlines returns a fresh copy of the canonical outline catalog.
func CatalogOutlines() []Outline {
	c := loadCatalog()
	return append([]Outline(nil), c.Outlines...)
}

// CatalogSongs returns a fresh copy of the canonical song catalog.
func CatalogSongs() []Song {
	c := loadCatalog()
	return append([]Song(nil), c.Songs...)
}

// ApplyCatalog replaces the outline and song collections of a state snapshot
// with the canonical catalog and returns the updated snapshot.
func ApplyCatalog(state AppState) AppState {
	state.Outlines = CatalogOutlines()
	state.Songs = CatalogSongs()
	return state
}
