package services

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/tmajor/songbook/internal/models"
	"github.com/tmajor/songbook/internal/shared"
)

// PlaylistService manages playlist lifecycle and membership.
type PlaylistService struct {
	repo   models.PlaylistRepository
	logger *log.Logger
}

// NewPlaylistService creates a PlaylistService over the given repository.
func NewPlaylistService(repo models.PlaylistRepository, logger *log.Logger) *PlaylistService {
	if logger == nil {
		logger = shared.NewLogger(nil)
	}
	return &PlaylistService{repo: repo, logger: logger}
}

// SetLogger swaps the service's logger.
func (s *PlaylistService) SetLogger(l *log.Logger) {
	s.logger = l
}

// All returns every playlist. Storage errors degrade to an empty list.
func (s *PlaylistService) All() []models.Playlist {
	playlists, err := s.repo.FindAll()
	if err != nil {
		s.logger.Error("failed to load playlists", "error", err)
		return nil
	}
	return playlists
}

// Create persists a playlist after validating its name is non-blank.
func (s *PlaylistService) Create(playlist models.Playlist) error {
	if err := playlist.Validate(); err != nil {
		s.logger.Warn("aborted attempt to create playlist without name")
		return err
	}

	if err := s.repo.Create(playlist); err != nil {
		return fmt.Errorf("failed to create playlist: %w", err)
	}

	s.logger.Info("playlist created", "name", playlist.Name, "id", playlist.ID)
	return nil
}

// Delete removes a playlist and its memberships. Unknown ids are
// reported via [shared.ErrPlaylistNotFound].
func (s *PlaylistService) Delete(id string) error {
	if !s.exists(id) {
		s.logger.Warn("deletion unsuccessful: playlist does not exist", "id", id)
		return fmt.Errorf("%w: %s", shared.ErrPlaylistNotFound, id)
	}

	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete playlist: %w", err)
	}

	s.logger.Info("playlist deleted", "id", id)
	return nil
}

// Rename replaces a playlist's name, keyed by its unchanged id.
func (s *PlaylistService) Rename(playlist models.Playlist) error {
	if playlist.ID == "" {
		s.logger.Warn("rename failed: playlist id missing")
		return shared.ErrMissingID
	}
	if err := playlist.Validate(); err != nil {
		s.logger.Warn("rename failed", "id", playlist.ID, "error", err)
		return err
	}

	if err := s.repo.Update(playlist); err != nil {
		return fmt.Errorf("failed to rename playlist: %w", err)
	}

	s.logger.Info("playlist renamed", "id", playlist.ID, "name", playlist.Name)
	return nil
}

// AddSong records a membership and reports whether it was newly added.
// A pair that already exists leaves the playlist untouched and returns
// false, which is the caller's only "already present" signal.
func (s *PlaylistService) AddSong(playlistID, songID string) (bool, error) {
	if playlistID == "" || songID == "" {
		s.logger.Warn("cannot add song to playlist: missing id")
		return false, shared.ErrMissingID
	}

	present, err := s.repo.Contains(playlistID, songID)
	if err != nil {
		return false, fmt.Errorf("failed to check playlist membership: %w", err)
	}
	if present {
		s.logger.Info("song already in playlist", "song", songID, "playlist", playlistID)
		return false, nil
	}

	if err := s.repo.AddSong(playlistID, songID); err != nil {
		return false, fmt.Errorf("failed to add song to playlist: %w", err)
	}

	s.logger.Info("song added to playlist", "song", songID, "playlist", playlistID)
	return true, nil
}

// RemoveSong removes a membership. Missing ids are a quiet no-op.
func (s *PlaylistService) RemoveSong(playlistID, songID string) error {
	if playlistID == "" || songID == "" {
		return nil
	}

	if err := s.repo.RemoveSong(playlistID, songID); err != nil {
		return fmt.Errorf("failed to remove song from playlist: %w", err)
	}

	s.logger.Info("song removed from playlist", "song", songID, "playlist", playlistID)
	return nil
}

// Songs resolves a playlist's members to full song entities. An empty
// playlist id yields an empty result rather than an error.
func (s *PlaylistService) Songs(playlistID string) []models.Song {
	if playlistID == "" {
		return nil
	}

	songs, err := s.repo.Songs(playlistID)
	if err != nil {
		s.logger.Error("failed to load playlist songs", "playlist", playlistID, "error", err)
		return nil
	}
	return songs
}

func (s *PlaylistService) exists(id string) bool {
	for _, playlist := range s.All() {
		if playlist.ID == id {
			return true
		}
	}
	return false
}
