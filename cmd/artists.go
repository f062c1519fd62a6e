package main

import (
	"context"
	"fmt"

	"github.com/tmajor/songbook/internal/formatter"
	"github.com/tmajor/songbook/internal/models"
	"github.com/urfave/cli/v3"
)

// ArtistsList lists the distinct artists in the catalog.
func (r *Runner) ArtistsList(ctx context.Context, cmd *cli.Command) error {
	artists := r.disco.Artists()

	if len(artists) == 0 {
		return r.writePlain("No artists found\n")
	}

	r.writePlainHeader(fmt.Sprintf("Artists (%d)", len(artists)))
	for _, artist := range artists {
		r.writePlain("%s\n", artist)
	}
	return nil
}

// ArtistsSongs lists the songs matching an artist name.
func (r *Runner) ArtistsSongs(ctx context.Context, cmd *cli.Command) error {
	name := cmd.String("name")

	var songs []models.Song
	switch cmd.String("sort") {
	case "album":
		songs = r.disco.SongsByArtistSortedByAlbum(name)
	case "duration":
		songs = r.disco.SongsByArtistSortedByDuration(name)
	case "title":
		songs = r.disco.SongsAlphabetical(name)
	default:
		songs = r.disco.SongsByArtist(name)
	}

	if cmd.Bool("json") {
		return r.writeJSON(songs, true)
	}

	if len(songs) == 0 {
		return r.writePlain("No songs found for '%s'\n", name)
	}

	r.writePlainHeader(fmt.Sprintf("Songs by %s (%d)", name, len(songs)))
	for _, song := range songs {
		r.writePlain("%s\n  id: %s\n", formatter.SongLine(song), song.ID)
	}
	return nil
}

// ArtistsDelete removes every song by the named artist.
func (r *Runner) ArtistsDelete(ctx context.Context, cmd *cli.Command) error {
	name := cmd.String("name")

	removed, err := r.artists.Delete(name)
	if err != nil {
		return fmt.Errorf("failed to delete artist: %w", err)
	}

	return r.writePlain("✓ Removed %d songs by '%s'\n", removed, name)
}

// ArtistsRename re-attributes an artist's songs to a new name.
func (r *Runner) ArtistsRename(ctx context.Context, cmd *cli.Command) error {
	from := cmd.String("from")
	to := cmd.String("to")

	updated, err := r.artists.Rename(from, to)
	if err != nil {
		return fmt.Errorf("failed to rename artist: %w", err)
	}

	return r.writePlain("✓ Updated %d songs: '%s' → '%s'\n", updated, from, to)
}
