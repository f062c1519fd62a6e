package main

import (
	"context"
	"errors"
	"os"

	"github.com/charmbracelet/log"
	"github.com/tmajor/songbook/internal/repositories"
	"github.com/tmajor/songbook/internal/services"
	"github.com/tmajor/songbook/internal/shared"
	"github.com/urfave/cli/v3"
)

func main() {
	logger := shared.NewLogger(nil)

	config := shared.DefaultConfig()
	if loadedConfig, err := shared.LoadConfig(defaultConfigPath); err == nil {
		config = loadedConfig
	} else if !errors.Is(err, shared.ErrMissingConfig) {
		logger.Warn("ignoring unreadable config", "path", defaultConfigPath, "error", err)
	}

	if level, err := log.ParseLevel(config.Log.Level); err == nil {
		shared.SetLogLevel(logger, level)
	}

	dbPath, err := config.DatabasePath()
	if err != nil {
		logger.Fatalf("failed to resolve database path: %v", err)
	}

	db, err := shared.NewDatabase(dbPath)
	if err != nil {
		logger.Fatalf("failed to open database: %v", err)
	}
	defer db.Close()

	shared.ConfigureDatabase(db, config.Database.MaxOpenConns, config.Database.MaxIdleConns)

	if err := shared.RunMigrations(db); err != nil {
		logger.Fatalf("failed to run migrations: %v", err)
	}

	songRepo := repositories.NewSongRepository(db)
	playlistRepo := repositories.NewPlaylistRepository(db)
	favoritesRepo := repositories.NewFavoritesRepository(db)

	disco := services.NewDiscographyService(songRepo, logger)
	playlists := services.NewPlaylistService(playlistRepo, logger)
	favorites := services.NewFavoritesService(favoritesRepo, disco, logger)
	artists := services.NewArtistService(songRepo, logger)
	stats := services.NewStatsService(disco, favorites, logger)

	// Startup hygiene: drop rows with a blank title or artist.
	if removed := disco.CleanupInvalid(); removed > 0 {
		logger.Warn("removed invalid catalog rows", "count", removed)
	}

	runner := NewRunner(RunnerOpts{
		Config:     config,
		ConfigPath: defaultConfigPath,
		Disco:      disco,
		Playlists:  playlists,
		Favorites:  favorites,
		Artists:    artists,
		Stats:      stats,
		Logger:     logger,
	})

	app := &cli.Command{
		Name:     "songbook",
		Usage:    "Manage a local music library: songs, playlists, favorites & stats",
		Version:  "0.1.0",
		Commands: runner.register(),
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		logger.Fatalf("application error: %v", err)
	}
}
