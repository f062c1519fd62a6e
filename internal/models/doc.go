// Package models defines domain entities and persistence interfaces for the songbook catalog.
//
// The package contains two categories of types:
//
// 1. Entities: immutable value records with generated unique identifiers
//   - [Song] : one track (title, artist, album, duration in seconds)
//   - [Playlist] : a named, insertion-ordered collection of song references
//
// 2. Repository interfaces implemented by internal/repositories
//   - [SongRepository] : catalog persistence with upsert-by-id semantics
//   - [PlaylistRepository] : playlists plus (playlist, song) membership rows
//   - [FavoritesRepository] : the set of song ids marked as favorite
//
// Entities validate themselves via Validate; services decide when a
// validation failure is a rejected operation versus a skipped record.
package models
