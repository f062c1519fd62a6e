package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/tmajor/songbook/internal/formatter"
	"github.com/tmajor/songbook/internal/models"
	"github.com/tmajor/songbook/internal/shared"
	"github.com/urfave/cli/v3"
)

// SongsList lists the catalog, optionally filtered by artist and sorted.
func (r *Runner) SongsList(ctx context.Context, cmd *cli.Command) error {
	artist := cmd.String("artist")
	sortOrder := cmd.String("sort")

	var songs []models.Song
	switch {
	case artist != "" && sortOrder == "album":
		songs = r.disco.SongsByArtistSortedByAlbum(artist)
	case artist != "" && sortOrder == "duration":
		songs = r.disco.SongsByArtistSortedByDuration(artist)
	case artist != "" && sortOrder == "title":
		songs = r.disco.SongsAlphabetical(artist)
	case artist != "":
		songs = r.disco.SongsByArtist(artist)
	case sortOrder == "album":
		songs = r.disco.AllSortedByAlbum()
	case sortOrder == "duration":
		songs = r.disco.AllSortedByDuration()
	default:
		songs = r.disco.All()
	}

	if cmd.Bool("json") {
		return r.writeJSON(songs, cmd.Bool("pretty"))
	}

	if len(songs) == 0 {
		return r.writePlain("No songs found\n")
	}

	r.writePlainHeader(fmt.Sprintf("Songs (%d)", len(songs)))
	for _, song := range songs {
		r.writePlain("%s\n  id: %s\n", formatter.SongLine(song), song.ID)
	}
	return nil
}

// SongsAdd adds one song to the catalog.
func (r *Runner) SongsAdd(ctx context.Context, cmd *cli.Command) error {
	song := models.NewSong(
		cmd.String("title"),
		cmd.String("artist"),
		cmd.String("album"),
		int(cmd.Int("duration")),
	)

	if err := r.disco.AddSong(song); err != nil {
		return fmt.Errorf("failed to add song: %w", err)
	}

	return r.writePlain("✓ Added '%s' (id: %s)\n", song.Title, song.ID)
}

// SongsUpdate fully replaces a song's fields, keyed by id.
func (r *Runner) SongsUpdate(ctx context.Context, cmd *cli.Command) error {
	song := models.Song{
		ID:       cmd.String("id"),
		Title:    cmd.String("title"),
		Artist:   cmd.String("artist"),
		Album:    cmd.String("album"),
		Duration: int(cmd.Int("duration")),
	}

	if err := r.disco.UpdateSong(song); err != nil {
		return fmt.Errorf("failed to update song: %w", err)
	}

	return r.writePlain("✓ Updated '%s'\n", song.Title)
}

// SongsDelete removes a song from the catalog.
func (r *Runner) SongsDelete(ctx context.Context, cmd *cli.Command) error {
	id := cmd.String("id")
	title := r.disco.TitleByID(id)

	if err := r.disco.DeleteSong(id); err != nil {
		return fmt.Errorf("failed to delete song: %w", err)
	}

	return r.writePlain("✓ Deleted '%s'\n", title)
}

// SongsImport parses a text file line by line and adds the recognized songs.
func (r *Runner) SongsImport(ctx context.Context, cmd *cli.Command) error {
	path := cmd.String("file")
	if path == "" {
		return fmt.Errorf("%w: --file", shared.ErrMissingArgument)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read import file: %w", err)
	}
	if strings.TrimSpace(string(data)) == "" {
		return fmt.Errorf("%w: import file %s is empty", shared.ErrInvalidInput, path)
	}

	lines := strings.Split(string(data), "\n")
	added := r.disco.ImportLines(lines)

	r.logger.Info("import finished", "file", path, "added", added)
	return r.writePlainln("✓ Imported %d songs from %s", added, path)
}

// SongsGet shows one song by id.
func (r *Runner) SongsGet(ctx context.Context, cmd *cli.Command) error {
	id := cmd.String("id")

	song, ok := r.disco.SongByID(id)
	if !ok {
		return fmt.Errorf("%w: %s", shared.ErrSongNotFound, id)
	}

	if cmd.Bool("json") {
		return r.writeJSON(song, true)
	}

	return r.writePlain("%s\n  id: %s\n", formatter.SongLine(song), song.ID)
}

// SongsExport writes the full catalog to a CSV file.
func (r *Runner) SongsExport(ctx context.Context, cmd *cli.Command) error {
	path := cmd.String("output")

	data, err := formatter.SongsToCSV(r.disco.All())
	if err != nil {
		return fmt.Errorf("failed to generate CSV: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write CSV file: %w", err)
	}

	return r.writePlain("✓ Exported catalog to %s\n", path)
}

// SongsDuplicates lists duplicate songs and optionally merges them.
func (r *Runner) SongsDuplicates(ctx context.Context, cmd *cli.Command) error {
	if cmd.Bool("merge") {
		merged := r.disco.MergeDuplicates()
		return r.writePlain("✓ Merged %d duplicate songs\n", merged)
	}

	dupes := r.disco.Duplicates()

	if cmd.Bool("json") {
		return r.writeJSON(dupes, true)
	}

	if len(dupes) == 0 {
		return r.writePlain("No duplicates found\n")
	}

	r.writePlainHeader(fmt.Sprintf("Duplicates (%d)", len(dupes)))
	for _, song := range dupes {
		r.writePlain("%s\n  id: %s\n", formatter.SongLine(song), song.ID)
	}
	return nil
}
