// Package importer parses free-text song lines into catalog entries.
//
// Lines look like "Shake It Off - Taylor Swift, 1989, 3:39": an optional
// trailing duration token preceded by title/artist/album text joined by
// whatever separator the source file happened to use. The parsing rules
// are heuristic but fixed; tools that produce these files rely on them.
package importer

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/tmajor/songbook/internal/models"
)

// durationPattern matches a trailing "mm:ss" token or a bare 2-4 digit
// second count, optionally preceded by a separator character.
var durationPattern = regexp.MustCompile(`(?:\s+|\s*[,.-]\s*)(\d{1,2}:\d{2}|\d{2,4})\s*$`)

// dotSeparator matches " . " used as a field separator (whitespace around
// a literal dot), as opposed to dots inside titles.
var dotSeparator = regexp.MustCompile(`\s\.\s`)

// Parse turns one import line into a candidate [models.Song].
//
// The trailing duration token is detected and stripped first; the rest is
// split on the first separator TYPE with at least one occurrence, checked
// in fixed priority order: comma, dash, pipe, " . ". Parts map
// positionally to title, artist (default "Unknown Artist") and album
// (default empty). With no separator the whole text is the title.
//
// Returns ok=false only for blank lines. A line that parses to an empty
// title is still returned; the service layer rejects it on add.
func Parse(line string) (models.Song, bool) {
	cleanLine := strings.TrimSpace(line)
	if cleanLine == "" {
		return models.Song{}, false
	}

	duration := 0
	textPart := cleanLine

	if loc := durationPattern.FindStringSubmatchIndex(cleanLine); loc != nil {
		duration = parseDuration(cleanLine[loc[2]:loc[3]])
		textPart = strings.TrimSpace(cleanLine[:loc[0]])
	}

	parts := splitFields(textPart)
	if parts == nil {
		return models.NewSong(textPart, "Unknown Artist", "", duration), true
	}

	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}

	// Mixed-separator lines like "Title - Artist, Album" win the comma
	// split but leave the title/artist boundary inside the first field;
	// a padded dash there marks that boundary.
	if len(parts) == 2 && strings.Contains(parts[0], " - ") {
		titleArtist := strings.SplitN(parts[0], " - ", 2)
		parts = []string{
			strings.TrimSpace(titleArtist[0]),
			strings.TrimSpace(titleArtist[1]),
			parts[1],
		}
	}

	title := "Unknown Title"
	if len(parts) > 0 {
		title = parts[0]
	}

	artist := "Unknown Artist"
	if len(parts) > 1 {
		artist = parts[1]
	}

	album := ""
	if len(parts) > 2 {
		album = parts[2]
	}

	return models.NewSong(title, artist, album, duration), true
}

// ParseLines parses every non-blank line, returning the candidate songs.
func ParseLines(lines []string) []models.Song {
	var songs []models.Song
	for _, line := range lines {
		if song, ok := Parse(line); ok {
			songs = append(songs, song)
		}
	}
	return songs
}

// splitFields splits the text on the winning separator type, or returns
// nil when no separator occurs. Ties between separator types are broken
// by the fixed priority order, not by position in the string.
func splitFields(text string) []string {
	switch {
	case strings.Count(text, ",") >= 1:
		return strings.Split(text, ",")
	case strings.Count(text, "-") >= 1:
		return strings.Split(text, "-")
	case strings.Count(text, "|") >= 1:
		return strings.Split(text, "|")
	case dotSeparator.MatchString(text):
		return dotSeparator.Split(text, -1)
	default:
		return nil
	}
}

// parseDuration converts a detected duration token to seconds: "mm:ss"
// becomes min*60+sec, bare digits are taken as seconds already.
func parseDuration(token string) int {
	if !strings.Contains(token, ":") {
		seconds, err := strconv.Atoi(token)
		if err != nil {
			return 0
		}
		return seconds
	}

	parts := strings.Split(token, ":")
	if len(parts) != 2 {
		return 0
	}

	min, errMin := strconv.Atoi(parts[0])
	sec, errSec := strconv.Atoi(parts[1])
	if errMin != nil || errSec != nil {
		return 0
	}

	return min*60 + sec
}
