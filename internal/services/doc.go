// Package services layers query, validation and sorting logic over the repositories.
//
// Each service holds its repository interface(s) and a logger, both
// constructor-injected; no service carries state of its own.
//
//   - [DiscographyService] : catalog queries, sorted views, validated writes,
//     bulk text import and duplicate detection
//   - [PlaylistService] : playlist lifecycle and membership management
//   - [FavoritesService] : the favorites set, resolved against the catalog
//   - [ArtistService] : bulk per-artist delete and rename
//   - [StatsService] : aggregate counts and durations
//
// # Error Handling
//
// Read paths never fail outward: a storage error is logged and the caller
// receives an empty result, so browsing a broken store degrades to an
// empty catalog instead of a crash. Write paths and validation gates
// return explicit errors ([shared.ErrMissingTitle], [shared.ErrMissingName],
// [shared.ErrMissingID], wrapped storage errors) so callers can report
// failures instead of silently losing writes.
package services
