// Package repositories implements persistence for the songbook catalog.
//
// Each SQLite repository issues parameterized statements against a single
// database file and maps rows back to internal/models entities.
//
// Key Implementations:
//   - [SongRepository] : catalog rows with INSERT OR REPLACE upsert semantics
//   - [PlaylistRepository] : playlists and (playlist, song) membership rows
//   - [FavoritesRepository] : the favorites membership set
//
// In-memory counterparts ([MemorySongRepository], [MemoryPlaylistRepository],
// [MemoryFavoritesRepository]) implement the same interfaces for tests and
// honor the same contracts, including upsert-by-id and idempotent membership.
//
// Repositories return errors rather than logging them; the service layer
// decides which failures are masked (read paths) and which are surfaced
// (write paths).
package repositories
