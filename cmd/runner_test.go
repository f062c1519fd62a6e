package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/tmajor/songbook/internal/models"
	"github.com/tmajor/songbook/internal/repositories"
	"github.com/tmajor/songbook/internal/services"
	"github.com/tmajor/songbook/internal/shared"
	tu "github.com/tmajor/songbook/internal/testing"
	"github.com/urfave/cli/v3"
)

func newTestRunner(output *bytes.Buffer) (*Runner, *services.DiscographyService) {
	songs := repositories.NewMemorySongRepository()
	logger := shared.NewLogger(&bytes.Buffer{})

	disco := services.NewDiscographyService(songs, logger)
	playlists := services.NewPlaylistService(repositories.NewMemoryPlaylistRepository(songs), logger)
	favorites := services.NewFavoritesService(repositories.NewMemoryFavoritesRepository(), disco, logger)
	artists := services.NewArtistService(songs, logger)
	stats := services.NewStatsService(disco, favorites, logger)

	runner := NewRunner(RunnerOpts{
		Disco:     disco,
		Playlists: playlists,
		Favorites: favorites,
		Artists:   artists,
		Stats:     stats,
		Logger:    logger,
		Output:    output,
	})
	return runner, disco
}

func runCommand(t *testing.T, runner *Runner, args ...string) error {
	t.Helper()

	app := &cli.Command{
		Name:     "songbook",
		Commands: runner.register(),
	}
	return app.Run(context.Background(), append([]string{"songbook"}, args...))
}

func TestRunner(t *testing.T) {
	t.Run("NewRunner", func(t *testing.T) {
		t.Run("with all dependencies provided", func(t *testing.T) {
			config := shared.DefaultConfig()
			logger := shared.NewLogger(nil)
			output := &bytes.Buffer{}

			runner := NewRunner(RunnerOpts{
				Config: config,
				Logger: logger,
				Output: output,
			})

			if runner.config != config {
				t.Error("expected config to be set")
			}
			if runner.logger != logger {
				t.Error("expected logger to be set")
			}
			if runner.output != output {
				t.Error("expected output to be set")
			}
		})

		t.Run("with nil config uses defaults", func(t *testing.T) {
			runner := NewRunner(RunnerOpts{Config: nil})

			if runner.config == nil {
				t.Error("expected default config to be set")
			}
		})

		t.Run("with nil logger uses default", func(t *testing.T) {
			runner := NewRunner(RunnerOpts{Logger: nil})

			if runner.logger == nil {
				t.Error("expected default logger to be set")
			}
		})

		t.Run("with nil output uses stdout", func(t *testing.T) {
			runner := NewRunner(RunnerOpts{Output: nil})

			if runner.output != os.Stdout {
				t.Error("expected output to default to os.Stdout")
			}
		})

		t.Run("with empty config path uses the default", func(t *testing.T) {
			runner := NewRunner(RunnerOpts{})

			if runner.configPath != defaultConfigPath {
				t.Errorf("expected config path %q, got %q", defaultConfigPath, runner.configPath)
			}
		})

		t.Run("with explicit config path", func(t *testing.T) {
			runner := NewRunner(RunnerOpts{ConfigPath: "/etc/songbook.toml"})

			if runner.configPath != "/etc/songbook.toml" {
				t.Errorf("expected explicit config path to win, got %q", runner.configPath)
			}
		})
	})

	t.Run("writeJSON", func(t *testing.T) {
		t.Run("writes compact JSON successfully", func(t *testing.T) {
			output := &bytes.Buffer{}
			runner := NewRunner(RunnerOpts{Output: output})

			data := map[string]string{"key": "value"}
			if err := runner.writeJSON(data, false); err != nil {
				t.Fatalf("expected no error, got %v", err)
			}

			result := output.String()
			expected := `{"key":"value"}` + "\n"
			if result != expected {
				t.Errorf("expected %q, got %q", expected, result)
			}
		})

		t.Run("handles marshal error with non-serializable data", func(t *testing.T) {
			runner := NewRunner(RunnerOpts{Output: &bytes.Buffer{}})

			// channels cannot be marshaled to JSON
			err := runner.writeJSON(make(chan int), false)

			if err == nil {
				t.Fatal("expected error for non-serializable data")
			}
			if !strings.Contains(err.Error(), "failed to marshal JSON") {
				t.Errorf("expected marshal error, got %v", err)
			}
		})

		t.Run("handles write failure", func(t *testing.T) {
			runner := NewRunner(RunnerOpts{Output: &tu.FWriter{}})

			err := runner.writeJSON(map[string]string{"key": "value"}, false)

			if err == nil {
				t.Fatal("expected error from failing writer")
			}
			if !strings.Contains(err.Error(), "failed to write output") {
				t.Errorf("expected write error, got %v", err)
			}
		})

		t.Run("handles newline write failure", func(t *testing.T) {
			limitedWriter := tu.NewLimitedWriter(1, 0, &bytes.Buffer{})
			runner := NewRunner(RunnerOpts{Output: &limitedWriter})

			err := runner.writeJSON(map[string]string{"key": "value"}, false)

			if err == nil {
				t.Fatal("expected error writing newline")
			}
			if !strings.Contains(err.Error(), "failed to write newline") {
				t.Errorf("expected newline write error, got %v", err)
			}
		})
	})

	t.Run("writePlain", func(t *testing.T) {
		t.Run("writes plain text successfully", func(t *testing.T) {
			output := &bytes.Buffer{}
			runner := NewRunner(RunnerOpts{Output: output})

			if err := runner.writePlain("hello %s", "world"); err != nil {
				t.Fatalf("expected no error, got %v", err)
			}

			if result := output.String(); result != "hello world" {
				t.Errorf("expected 'hello world', got %q", result)
			}
		})

		t.Run("handles write failure", func(t *testing.T) {
			runner := NewRunner(RunnerOpts{Output: &tu.FWriter{}})

			err := runner.writePlain("test")

			if err == nil {
				t.Fatal("expected error from failing writer")
			}
			if !strings.Contains(err.Error(), "failed to write output") {
				t.Errorf("expected write error, got %v", err)
			}
		})
	})

	t.Run("writePlainln", func(t *testing.T) {
		t.Run("wraps the line in blank lines", func(t *testing.T) {
			output := &bytes.Buffer{}
			runner := NewRunner(RunnerOpts{Output: output})

			if err := runner.writePlainln("hello %s", "world"); err != nil {
				t.Fatalf("expected no error, got %v", err)
			}

			if result := output.String(); result != "\nhello world\n" {
				t.Errorf("expected wrapped line, got %q", result)
			}
		})

		t.Run("handles write failure", func(t *testing.T) {
			runner := NewRunner(RunnerOpts{Output: &tu.FWriter{}})

			if err := runner.writePlainln("test"); err == nil {
				t.Fatal("expected error from failing writer")
			}
		})
	})

	t.Run("register", func(t *testing.T) {
		output := &bytes.Buffer{}
		runner, _ := newTestRunner(output)
		commands := runner.register()

		if len(commands) == 0 {
			t.Error("expected at least one command to be registered")
		}

		for i, cmd := range commands {
			if cmd == nil {
				t.Errorf("command at index %d is nil", i)
			}
		}
	})
}

func TestCommands(t *testing.T) {
	t.Run("songs add and list", func(t *testing.T) {
		output := &bytes.Buffer{}
		runner, disco := newTestRunner(output)

		err := runCommand(t, runner, "songs", "add",
			"--title", "Style",
			"--artist", "Taylor Swift",
			"--album", "1989",
			"--duration", "231",
		)
		if err != nil {
			t.Fatalf("songs add failed: %v", err)
		}
		if got := len(disco.All()); got != 1 {
			t.Fatalf("expected 1 song in catalog, got %d", got)
		}

		output.Reset()
		if err := runCommand(t, runner, "songs", "list"); err != nil {
			t.Fatalf("songs list failed: %v", err)
		}
		if !strings.Contains(output.String(), "Style - Taylor Swift (1989) [3:51]") {
			t.Errorf("listing missing song line, got: %s", output.String())
		}
	})

	t.Run("songs list as json", func(t *testing.T) {
		output := &bytes.Buffer{}
		runner, disco := newTestRunner(output)

		if err := disco.AddSong(models.NewSong("Style", "Taylor Swift", "1989", 231)); err != nil {
			t.Fatalf("AddSong failed: %v", err)
		}

		if err := runCommand(t, runner, "songs", "list", "--json"); err != nil {
			t.Fatalf("songs list failed: %v", err)
		}
		if !strings.Contains(output.String(), `"title":"Style"`) {
			t.Errorf("expected JSON output, got: %s", output.String())
		}
	})

	t.Run("playlists create and add song", func(t *testing.T) {
		output := &bytes.Buffer{}
		runner, disco := newTestRunner(output)

		song := models.NewSong("Style", "Taylor Swift", "1989", 231)
		if err := disco.AddSong(song); err != nil {
			t.Fatalf("AddSong failed: %v", err)
		}

		if err := runCommand(t, runner, "playlists", "create", "--name", "Road Trip"); err != nil {
			t.Fatalf("playlists create failed: %v", err)
		}

		playlists := runner.playlists.All()
		if len(playlists) != 1 {
			t.Fatalf("expected 1 playlist, got %d", len(playlists))
		}

		if err := runCommand(t, runner, "playlists", "add-song", "--id", playlists[0].ID, "--song", song.ID); err != nil {
			t.Fatalf("playlists add-song failed: %v", err)
		}
		if got := len(runner.playlists.Songs(playlists[0].ID)); got != 1 {
			t.Errorf("expected 1 song in playlist, got %d", got)
		}
	})

	t.Run("favorites toggle", func(t *testing.T) {
		output := &bytes.Buffer{}
		runner, disco := newTestRunner(output)

		song := models.NewSong("Style", "Taylor Swift", "1989", 231)
		if err := disco.AddSong(song); err != nil {
			t.Fatalf("AddSong failed: %v", err)
		}

		if err := runCommand(t, runner, "favorites", "toggle", "--id", song.ID); err != nil {
			t.Fatalf("favorites toggle failed: %v", err)
		}
		if !runner.favorites.IsFavorite(song.ID) {
			t.Error("expected song to be favorite after toggle")
		}

		if err := runCommand(t, runner, "favorites", "toggle", "--id", song.ID); err != nil {
			t.Fatalf("favorites toggle failed: %v", err)
		}
		if runner.favorites.IsFavorite(song.ID) {
			t.Error("expected song to not be favorite after second toggle")
		}
	})

	t.Run("songs import from file", func(t *testing.T) {
		output := &bytes.Buffer{}
		runner, disco := newTestRunner(output)

		dir := t.TempDir()
		path := dir + "/songs.txt"
		lines := "Shake It Off - Taylor Swift, 1989, 3:39\nBeliever, Imagine Dragons, Evolve, 3:24\n"
		if err := os.WriteFile(path, []byte(lines), 0644); err != nil {
			t.Fatalf("failed to write import file: %v", err)
		}

		if err := runCommand(t, runner, "songs", "import", "--file", path); err != nil {
			t.Fatalf("songs import failed: %v", err)
		}
		if got := len(disco.All()); got != 2 {
			t.Errorf("expected 2 imported songs, got %d", got)
		}
		if !strings.Contains(output.String(), "Imported 2 songs") {
			t.Errorf("unexpected import output: %s", output.String())
		}
	})

	t.Run("songs import without a file flag", func(t *testing.T) {
		runner, _ := newTestRunner(&bytes.Buffer{})

		err := runCommand(t, runner, "songs", "import")
		if !errors.Is(err, shared.ErrMissingArgument) {
			t.Errorf("expected ErrMissingArgument, got %v", err)
		}
	})

	t.Run("songs import of a blank file", func(t *testing.T) {
		runner, disco := newTestRunner(&bytes.Buffer{})

		path := t.TempDir() + "/empty.txt"
		if err := os.WriteFile(path, []byte("\n  \n"), 0644); err != nil {
			t.Fatalf("failed to write import file: %v", err)
		}

		err := runCommand(t, runner, "songs", "import", "--file", path)
		if !errors.Is(err, shared.ErrInvalidInput) {
			t.Errorf("expected ErrInvalidInput, got %v", err)
		}
		if got := len(disco.All()); got != 0 {
			t.Errorf("expected no imported songs, got %d", got)
		}
	})

	t.Run("stats output", func(t *testing.T) {
		output := &bytes.Buffer{}
		runner, disco := newTestRunner(output)

		if err := disco.AddSong(models.NewSong("Style", "Taylor Swift", "1989", 231)); err != nil {
			t.Fatalf("AddSong failed: %v", err)
		}

		if err := runCommand(t, runner, "stats"); err != nil {
			t.Fatalf("stats failed: %v", err)
		}
		if !strings.Contains(output.String(), "Songs: 1") {
			t.Errorf("stats output missing song count, got: %s", output.String())
		}
	})
}
