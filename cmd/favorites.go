package main

import (
	"context"
	"fmt"

	"github.com/tmajor/songbook/internal/formatter"
	"github.com/tmajor/songbook/internal/models"
	"github.com/urfave/cli/v3"
)

// FavoritesList lists the favorite songs in the requested order.
func (r *Runner) FavoritesList(ctx context.Context, cmd *cli.Command) error {
	var songs []models.Song
	switch cmd.String("sort") {
	case "artist":
		songs = r.favorites.SortedByArtist()
	case "duration":
		songs = r.favorites.SortedByDuration()
	case "title":
		songs = r.favorites.SortedAlphabetically()
	default:
		songs = r.favorites.All()
	}

	if cmd.Bool("json") {
		return r.writeJSON(songs, true)
	}

	if len(songs) == 0 {
		return r.writePlain("No favorites yet\n")
	}

	r.writePlainHeader(fmt.Sprintf("Favorites (%d)", len(songs)))
	for _, song := range songs {
		r.writePlain("★ %s\n", formatter.SongLine(song))
	}
	return nil
}

// FavoritesAdd marks a song as favorite.
func (r *Runner) FavoritesAdd(ctx context.Context, cmd *cli.Command) error {
	id := cmd.String("id")

	added, err := r.favorites.Add(id)
	if err != nil {
		return fmt.Errorf("failed to add favorite: %w", err)
	}

	title := r.disco.TitleByID(id)
	if !added {
		return r.writePlain("'%s' is already a favorite\n", title)
	}
	return r.writePlain("★ Added '%s' to favorites\n", title)
}

// FavoritesRemove unmarks a favorite song.
func (r *Runner) FavoritesRemove(ctx context.Context, cmd *cli.Command) error {
	id := cmd.String("id")

	removed, err := r.favorites.Remove(id)
	if err != nil {
		return fmt.Errorf("failed to remove favorite: %w", err)
	}

	title := r.disco.TitleByID(id)
	if !removed {
		return r.writePlain("'%s' is not a favorite\n", title)
	}
	return r.writePlain("✓ Removed '%s' from favorites\n", title)
}

// FavoritesToggle flips a song's favorite state.
func (r *Runner) FavoritesToggle(ctx context.Context, cmd *cli.Command) error {
	id := cmd.String("id")

	fav, err := r.favorites.Toggle(id)
	if err != nil {
		return fmt.Errorf("failed to toggle favorite: %w", err)
	}

	title := r.disco.TitleByID(id)
	if fav {
		return r.writePlain("★ '%s' is now a favorite\n", title)
	}
	return r.writePlain("✓ '%s' is no longer a favorite\n", title)
}
