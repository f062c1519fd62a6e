package main

import (
	"context"
	"fmt"

	"github.com/tmajor/songbook/internal/formatter"
	"github.com/tmajor/songbook/internal/models"
	"github.com/tmajor/songbook/internal/shared"
	"github.com/urfave/cli/v3"
)

// PlaylistsList lists every playlist with its song count.
func (r *Runner) PlaylistsList(ctx context.Context, cmd *cli.Command) error {
	playlists := r.playlists.All()

	if cmd.Bool("json") {
		return r.writeJSON(playlists, true)
	}

	if len(playlists) == 0 {
		return r.writePlain("No playlists found\n")
	}

	r.writePlainHeader(fmt.Sprintf("Playlists (%d)", len(playlists)))
	for _, pl := range playlists {
		count := len(r.playlists.Songs(pl.ID))
		r.writePlain("%s (%d songs)\n  id: %s\n", pl.Name, count, pl.ID)
	}
	return nil
}

// PlaylistsCreate creates a new, empty playlist.
func (r *Runner) PlaylistsCreate(ctx context.Context, cmd *cli.Command) error {
	playlist := models.NewPlaylist(cmd.String("name"))

	if err := r.playlists.Create(playlist); err != nil {
		return fmt.Errorf("failed to create playlist: %w", err)
	}

	return r.writePlain("✓ Created '%s' (id: %s)\n", playlist.Name, playlist.ID)
}

// PlaylistsRename renames an existing playlist.
func (r *Runner) PlaylistsRename(ctx context.Context, cmd *cli.Command) error {
	playlist := models.Playlist{
		ID:   cmd.String("id"),
		Name: cmd.String("name"),
	}

	if err := r.playlists.Rename(playlist); err != nil {
		return fmt.Errorf("failed to rename playlist: %w", err)
	}

	return r.writePlain("✓ Renamed playlist to '%s'\n", playlist.Name)
}

// PlaylistsDelete deletes a playlist along with its membership rows.
func (r *Runner) PlaylistsDelete(ctx context.Context, cmd *cli.Command) error {
	id := cmd.String("id")

	if err := r.playlists.Delete(id); err != nil {
		return fmt.Errorf("failed to delete playlist: %w", err)
	}

	return r.writePlain("✓ Deleted playlist\n")
}

// PlaylistsAddSong adds a song to a playlist, reporting when it is already there.
func (r *Runner) PlaylistsAddSong(ctx context.Context, cmd *cli.Command) error {
	playlistID := cmd.String("id")
	songID := cmd.String("song")

	added, err := r.playlists.AddSong(playlistID, songID)
	if err != nil {
		return fmt.Errorf("failed to add song to playlist: %w", err)
	}

	title := r.disco.TitleByID(songID)
	if !added {
		return r.writePlain("'%s' is already in the playlist\n", title)
	}
	return r.writePlain("✓ Added '%s' to playlist\n", title)
}

// PlaylistsRemoveSong removes a song from a playlist.
func (r *Runner) PlaylistsRemoveSong(ctx context.Context, cmd *cli.Command) error {
	if err := r.playlists.RemoveSong(cmd.String("id"), cmd.String("song")); err != nil {
		return fmt.Errorf("failed to remove song from playlist: %w", err)
	}

	return r.writePlain("✓ Removed song from playlist\n")
}

// PlaylistsSongs lists the songs inside one playlist.
func (r *Runner) PlaylistsSongs(ctx context.Context, cmd *cli.Command) error {
	songs := r.playlists.Songs(cmd.String("id"))

	if cmd.Bool("json") {
		return r.writeJSON(songs, true)
	}

	if len(songs) == 0 {
		return r.writePlain("Playlist is empty\n")
	}

	r.writePlainHeader(fmt.Sprintf("Songs (%d)", len(songs)))
	for i, song := range songs {
		r.writePlain("%d. %s\n", i+1, formatter.SongLine(song))
	}
	return nil
}

// PlaylistsExport exports a playlist to CSV, Markdown or plain text files.
func (r *Runner) PlaylistsExport(ctx context.Context, cmd *cli.Command) error {
	id := cmd.String("id")
	format := cmd.String("format")
	output := cmd.String("output")

	playlist, ok := r.findPlaylist(id)
	if !ok {
		return fmt.Errorf("%w: %s", shared.ErrPlaylistNotFound, id)
	}

	export := &models.PlaylistExport{
		Playlist: playlist,
		Songs:    r.playlists.Songs(id),
	}

	switch format {
	case "csv":
		result, err := formatter.WriteCSVExport(export, output)
		if err != nil {
			return fmt.Errorf("failed to export playlist: %w", err)
		}
		r.writePlain("✓ Exported to %s\n", result.SongsFile)
		r.writePlain("  Metadata: %s\n", result.MetadataFile)
	case "markdown", "md":
		file, err := formatter.WriteMarkdownExport(export, output)
		if err != nil {
			return fmt.Errorf("failed to export playlist: %w", err)
		}
		r.writePlain("✓ Exported to %s\n", file)
	case "text", "txt":
		file, err := formatter.WriteTextExport(export, output)
		if err != nil {
			return fmt.Errorf("failed to export playlist: %w", err)
		}
		r.writePlain("✓ Exported to %s\n", file)
	default:
		return fmt.Errorf("%w: unknown format %q", shared.ErrInvalidFlag, format)
	}

	return nil
}

func (r *Runner) findPlaylist(id string) (models.Playlist, bool) {
	for _, pl := range r.playlists.All() {
		if pl.ID == id {
			return pl, true
		}
	}
	return models.Playlist{}, false
}
