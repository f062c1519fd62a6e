package services

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/tmajor/songbook/internal/importer"
	"github.com/tmajor/songbook/internal/models"
	"github.com/tmajor/songbook/internal/shared"
)

// DiscographyService wraps the song repository with query conveniences,
// sorted views and a validation gate on writes.
type DiscographyService struct {
	repo   models.SongRepository
	logger *log.Logger
}

// NewDiscographyService creates a DiscographyService over the given repository.
func NewDiscographyService(repo models.SongRepository, logger *log.Logger) *DiscographyService {
	if logger == nil {
		logger = shared.NewLogger(nil)
	}
	return &DiscographyService{repo: repo, logger: logger}
}

// SetLogger swaps the service's logger, used when the TUI redirects
// logs to a file.
func (s *DiscographyService) SetLogger(l *log.Logger) {
	s.logger = l
}

// All returns the full catalog. Storage errors are logged and masked as
// an empty result; browsing never fails outward.
func (s *DiscographyService) All() []models.Song {
	songs, err := s.repo.FindAll()
	if err != nil {
		s.logger.Error("failed to load catalog", "error", err)
		return nil
	}
	return songs
}

// AddSong persists a song after validating it carries a title and a
// non-negative duration.
func (s *DiscographyService) AddSong(song models.Song) error {
	if err := song.Validate(); err != nil {
		s.logger.Warn("rejected song", "title", song.Title, "error", err)
		return err
	}

	if err := s.repo.Save(song); err != nil {
		return fmt.Errorf("failed to add song: %w", err)
	}

	s.logger.Info("song added", "title", song.Title, "id", song.ID)
	return nil
}

// UpdateSong fully replaces a song keyed by its unchanged id.
func (s *DiscographyService) UpdateSong(song models.Song) error {
	if song.ID == "" {
		s.logger.Warn("update failed: song id missing")
		return shared.ErrMissingID
	}
	if err := song.Validate(); err != nil {
		s.logger.Warn("update failed", "id", song.ID, "error", err)
		return err
	}

	if err := s.repo.Save(song); err != nil {
		return fmt.Errorf("failed to update song: %w", err)
	}

	s.logger.Info("song updated", "title", song.Title, "id", song.ID)
	return nil
}

// DeleteSong removes a song by id. Unknown ids are a quiet no-op.
func (s *DiscographyService) DeleteSong(id string) error {
	song, ok := s.SongByID(id)
	if !ok {
		return nil
	}

	if err := s.repo.DeleteByID(id); err != nil {
		return fmt.Errorf("failed to delete song: %w", err)
	}

	s.logger.Info("song deleted", "title", song.Title, "id", id)
	return nil
}

// SongByID looks up one song, reporting presence via the second return.
func (s *DiscographyService) SongByID(id string) (models.Song, bool) {
	song, err := s.repo.FindByID(id)
	if err != nil {
		return models.Song{}, false
	}
	return song, true
}

// TitleByID resolves a song id to its title, or "Unknown Song".
func (s *DiscographyService) TitleByID(id string) string {
	song, ok := s.SongByID(id)
	if !ok {
		return "Unknown Song"
	}
	return song.Title
}

// SongsByAlbum returns songs whose album matches case-insensitively.
func (s *DiscographyService) SongsByAlbum(album string) []models.Song {
	var out []models.Song
	for _, song := range s.All() {
		if strings.EqualFold(song.Album, album) {
			out = append(out, song)
		}
	}
	return out
}

// TotalDurationOfAlbum sums durations over an album, matched case-insensitively.
func (s *DiscographyService) TotalDurationOfAlbum(album string) int {
	total := 0
	for _, song := range s.SongsByAlbum(album) {
		total += song.Duration
	}
	return total
}

// AllSortedByAlbum returns the catalog ordered by album then title,
// both case-insensitively.
func (s *DiscographyService) AllSortedByAlbum() []models.Song {
	return sortByAlbumThenTitle(s.All())
}

// AllSortedByDuration returns the catalog ordered by ascending duration.
func (s *DiscographyService) AllSortedByDuration() []models.Song {
	songs := s.All()
	sort.SliceStable(songs, func(i, j int) bool {
		return songs[i].Duration < songs[j].Duration
	})
	return songs
}

// Artists returns each artist exactly once, case-insensitively
// deduplicated and sorted, excluding blanks. The first-seen casing wins.
func (s *DiscographyService) Artists() []string {
	seen := make(map[string]string)
	for _, song := range s.All() {
		if strings.TrimSpace(song.Artist) == "" {
			continue
		}
		key := strings.ToLower(song.Artist)
		if _, ok := seen[key]; !ok {
			seen[key] = song.Artist
		}
	}

	artists := make([]string, 0, len(seen))
	for _, artist := range seen {
		artists = append(artists, artist)
	}
	sort.SliceStable(artists, func(i, j int) bool {
		return strings.ToLower(artists[i]) < strings.ToLower(artists[j])
	})
	return artists
}

// SongsByArtist returns songs whose artist contains the pattern,
// case-insensitively.
func (s *DiscographyService) SongsByArtist(artist string) []models.Song {
	songs, err := s.repo.FindByArtist(artist)
	if err != nil {
		s.logger.Error("failed to search songs by artist", "artist", artist, "error", err)
		return nil
	}
	return songs
}

// SongsByArtistSortedByAlbum returns an artist's songs ordered by album then title.
func (s *DiscographyService) SongsByArtistSortedByAlbum(artist string) []models.Song {
	return sortByAlbumThenTitle(s.SongsByArtist(artist))
}

// SongsByArtistSortedByDuration returns an artist's songs ordered by ascending duration.
func (s *DiscographyService) SongsByArtistSortedByDuration(artist string) []models.Song {
	songs := s.SongsByArtist(artist)
	sort.SliceStable(songs, func(i, j int) bool {
		return songs[i].Duration < songs[j].Duration
	})
	return songs
}

// SongsAlphabetical returns an artist's songs ordered by title, case-insensitively.
func (s *DiscographyService) SongsAlphabetical(artist string) []models.Song {
	songs := s.SongsByArtist(artist)
	sort.SliceStable(songs, func(i, j int) bool {
		return strings.ToLower(songs[i].Title) < strings.ToLower(songs[j].Title)
	})
	return songs
}

// CleanupInvalid purges catalog rows lacking a usable title or artist.
// Run once at startup.
func (s *DiscographyService) CleanupInvalid() int {
	removed, err := s.repo.DeleteInvalid()
	if err != nil {
		s.logger.Error("failed to clean up invalid songs", "error", err)
		return 0
	}
	if removed > 0 {
		s.logger.Info("cleaned up invalid songs", "removed", removed)
	}
	return removed
}

// ImportLines parses free-text song lines and adds each candidate to the
// catalog, returning how many were actually accepted. Lines that parse
// to an empty title are rejected by the AddSong gate and not counted.
func (s *DiscographyService) ImportLines(lines []string) int {
	imported := 0
	for _, line := range lines {
		song, ok := importer.Parse(line)
		if !ok {
			continue
		}
		if err := s.AddSong(song); err != nil {
			s.logger.Warn("skipped import line", "line", line, "error", err)
			continue
		}
		imported++
	}
	return imported
}

// Duplicates returns every song that shares a normalized title|artist
// key with at least one other song, in catalog order.
func (s *DiscographyService) Duplicates() []models.Song {
	songs := s.All()

	counts := make(map[string]int)
	for _, song := range songs {
		counts[shared.NormalizeSongKey(song.Title, song.Artist)]++
	}

	var out []models.Song
	for _, song := range songs {
		if counts[shared.NormalizeSongKey(song.Title, song.Artist)] > 1 {
			out = append(out, song)
		}
	}
	return out
}

// MergeDuplicates keeps the first song of each duplicate group and
// deletes the rest, returning how many were removed. Playlist and
// favorite references to removed ids are left to the usual
// filter-on-read tolerance.
func (s *DiscographyService) MergeDuplicates() int {
	seen := make(map[string]bool)
	removed := 0

	for _, song := range s.All() {
		key := shared.NormalizeSongKey(song.Title, song.Artist)
		if !seen[key] {
			seen[key] = true
			continue
		}
		if err := s.repo.DeleteByID(song.ID); err != nil {
			s.logger.Error("failed to delete duplicate", "id", song.ID, "error", err)
			continue
		}
		s.logger.Info("merged duplicate", "title", song.Title, "artist", song.Artist, "id", song.ID)
		removed++
	}

	return removed
}

// sortByAlbumThenTitle orders songs by album then title, case-insensitively.
func sortByAlbumThenTitle(songs []models.Song) []models.Song {
	sort.SliceStable(songs, func(i, j int) bool {
		ai, aj := strings.ToLower(songs[i].Album), strings.ToLower(songs[j].Album)
		if ai != aj {
			return ai < aj
		}
		return strings.ToLower(songs[i].Title) < strings.ToLower(songs[j].Title)
	})
	return songs
}
