package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/tmajor/songbook/internal/formatter"
	"github.com/tmajor/songbook/internal/models"
	"github.com/tmajor/songbook/internal/services"
)

// ViewState represents the current view in the TUI.
type ViewState int

const (
	LibraryView ViewState = iota
	PlaylistListView
	PlaylistSongsView
	FavoritesView
	StatsView
)

// Model represents the TUI application state.
type Model struct {
	view   ViewState
	disco  *services.DiscographyService
	plists *services.PlaylistService
	favs   *services.FavoritesService
	stats  *services.StatsService

	libraryList      list.Model
	playlistList     list.Model
	playlistSongs    list.Model
	favoritesList    list.Model
	selectedPlaylist models.Playlist
	statsReport      models.LibraryStats

	err  error
	help help.Model
	keys keyMap
}

// NewModel creates a new TUI model with the provided services.
func NewModel(disco *services.DiscographyService, plists *services.PlaylistService, favs *services.FavoritesService, stats *services.StatsService) *Model {
	return &Model{
		view:          LibraryView,
		disco:         disco,
		plists:        plists,
		favs:          favs,
		stats:         stats,
		libraryList:   newListView("Library"),
		playlistList:  newListView("Playlists"),
		playlistSongs: newListView(""),
		favoritesList: newListView("Favorites"),
		help:          help.New(),
		keys:          newKeyMap(),
	}
}

// newListView builds an empty list so resize messages arriving before
// the first load have a real delegate to size against.
func newListView(title string) list.Model {
	l := list.New(nil, list.NewDefaultDelegate(), 0, 0)
	l.Title = title
	return l
}

// Init loads the library as the initial view.
func (m *Model) Init() tea.Cmd {
	return m.loadLibrary()
}

// Update handles incoming messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		for _, l := range []*list.Model{&m.libraryList, &m.playlistList, &m.playlistSongs, &m.favoritesList} {
			l.SetSize(msg.Width-4, msg.Height-8)
		}
		return m, nil

	case tea.KeyMsg:
		if cmd, handled := m.handleViewSwitch(msg); handled {
			return m, cmd
		}
		switch m.view {
		case LibraryView:
			return m.handleLibraryKeys(msg)
		case PlaylistListView:
			return m.handlePlaylistListKeys(msg)
		case PlaylistSongsView:
			return m.handlePlaylistSongsKeys(msg)
		case FavoritesView:
			return m.handleFavoritesKeys(msg)
		case StatsView:
			return m.handleStatsKeys(msg)
		}

	case libraryLoadedMsg:
		items := make([]list.Item, len(msg.songs))
		for i, song := range msg.songs {
			items[i] = songItem{song: song, favorite: msg.favorites[song.ID]}
		}
		return m, m.libraryList.SetItems(items)

	case playlistsLoadedMsg:
		items := make([]list.Item, len(msg.playlists))
		for i, pl := range msg.playlists {
			items[i] = playlistItem{playlist: pl, songCount: msg.counts[pl.ID]}
		}
		return m, m.playlistList.SetItems(items)

	case playlistSongsLoadedMsg:
		m.selectedPlaylist = msg.playlist
		items := make([]list.Item, len(msg.songs))
		for i, song := range msg.songs {
			items[i] = songItem{song: song, favorite: m.favs.IsFavorite(song.ID)}
		}
		m.playlistSongs.Title = fmt.Sprintf("Songs in '%s'", msg.playlist.Name)
		m.view = PlaylistSongsView
		return m, m.playlistSongs.SetItems(items)

	case favoritesLoadedMsg:
		items := make([]list.Item, len(msg.songs))
		for i, song := range msg.songs {
			items[i] = songItem{song: song, favorite: true}
		}
		return m, m.favoritesList.SetItems(items)

	case statsLoadedMsg:
		m.statsReport = msg.stats
		return m, nil

	case favoriteToggledMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		// Reload whichever song listing is showing so the star updates.
		switch m.view {
		case FavoritesView:
			return m, m.loadFavorites()
		case PlaylistSongsView:
			return m, m.loadPlaylistSongs(m.selectedPlaylist)
		default:
			return m, m.loadLibrary()
		}
	}

	return m.updateLists(msg)
}

// View renders the UI based on the current view state.
func (m *Model) View() string {
	if m.err != nil {
		return styles.err.Render(fmt.Sprintf("Error: %v\n\nPress q to quit", m.err))
	}

	switch m.view {
	case LibraryView:
		return m.renderSongList(m.libraryList)
	case PlaylistListView:
		return m.renderPlaylistList()
	case PlaylistSongsView:
		return m.renderSongList(m.playlistSongs)
	case FavoritesView:
		return m.renderSongList(m.favoritesList)
	case StatsView:
		return m.renderStats()
	default:
		return ""
	}
}

// handleViewSwitch handles the global view-switch keys, reporting whether
// the key was consumed.
func (m *Model) handleViewSwitch(msg tea.KeyMsg) (tea.Cmd, bool) {
	switch msg.String() {
	case "1":
		m.view = LibraryView
		return m.loadLibrary(), true
	case "2":
		m.view = PlaylistListView
		return m.loadPlaylists(), true
	case "3":
		m.view = FavoritesView
		return m.loadFavorites(), true
	case "4":
		m.view = StatsView
		return m.loadStats(), true
	}
	return nil, false
}

func (m *Model) handleLibraryKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "f":
		return m, m.toggleSelected(m.libraryList)
	}

	var cmd tea.Cmd
	m.libraryList, cmd = m.libraryList.Update(msg)
	return m, cmd
}

func (m *Model) handlePlaylistListKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "enter":
		selected := m.playlistList.SelectedItem()
		if selected != nil {
			if pl, ok := selected.(playlistItem); ok {
				return m, m.loadPlaylistSongs(pl.playlist)
			}
		}
	}

	var cmd tea.Cmd
	m.playlistList, cmd = m.playlistList.Update(msg)
	return m, cmd
}

func (m *Model) handlePlaylistSongsKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.view = PlaylistListView
		return m, m.loadPlaylists()
	case "f":
		return m, m.toggleSelected(m.playlistSongs)
	}

	var cmd tea.Cmd
	m.playlistSongs, cmd = m.playlistSongs.Update(msg)
	return m, cmd
}

func (m *Model) handleFavoritesKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "f":
		return m, m.toggleSelected(m.favoritesList)
	}

	var cmd tea.Cmd
	m.favoritesList, cmd = m.favoritesList.Update(msg)
	return m, cmd
}

func (m *Model) handleStatsKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.view = LibraryView
		return m, m.loadLibrary()
	}
	return m, nil
}

func (m *Model) updateLists(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.view {
	case LibraryView:
		m.libraryList, cmd = m.libraryList.Update(msg)
	case PlaylistListView:
		m.playlistList, cmd = m.playlistList.Update(msg)
	case PlaylistSongsView:
		m.playlistSongs, cmd = m.playlistSongs.Update(msg)
	case FavoritesView:
		m.favoritesList, cmd = m.favoritesList.Update(msg)
	}
	return m, cmd
}

func (m *Model) toggleSelected(l list.Model) tea.Cmd {
	selected := l.SelectedItem()
	item, ok := selected.(songItem)
	if !ok {
		return nil
	}

	return func() tea.Msg {
		fav, err := m.favs.Toggle(item.song.ID)
		return favoriteToggledMsg{songID: item.song.ID, favorite: fav, err: err}
	}
}

func (m *Model) loadLibrary() tea.Cmd {
	return func() tea.Msg {
		songs := m.disco.AllSortedByAlbum()
		favorites := make(map[string]bool)
		for _, id := range m.favs.AllIDs() {
			favorites[id] = true
		}
		return libraryLoadedMsg{songs: songs, favorites: favorites}
	}
}

func (m *Model) loadPlaylists() tea.Cmd {
	return func() tea.Msg {
		playlists := m.plists.All()
		counts := make(map[string]int, len(playlists))
		for _, pl := range playlists {
			counts[pl.ID] = len(m.plists.Songs(pl.ID))
		}
		return playlistsLoadedMsg{playlists: playlists, counts: counts}
	}
}

func (m *Model) loadPlaylistSongs(playlist models.Playlist) tea.Cmd {
	return func() tea.Msg {
		return playlistSongsLoadedMsg{playlist: playlist, songs: m.plists.Songs(playlist.ID)}
	}
}

func (m *Model) loadFavorites() tea.Cmd {
	return func() tea.Msg {
		return favoritesLoadedMsg{songs: m.favs.SortedAlphabetically()}
	}
}

func (m *Model) loadStats() tea.Cmd {
	return func() tea.Msg {
		return statsLoadedMsg{stats: m.stats.Report()}
	}
}

func (m *Model) renderSongList(l list.Model) string {
	helpKeys := []key.Binding{m.keys.favorite, m.keys.back, m.keys.quit}
	helpView := m.help.ShortHelpView(helpKeys)
	return fmt.Sprintf("%s\n\n%s", l.View(), helpView)
}

func (m *Model) renderPlaylistList() string {
	helpKeys := []key.Binding{m.keys.enter, m.keys.quit}
	helpView := m.help.ShortHelpView(helpKeys)
	return fmt.Sprintf("%s\n\n%s", m.playlistList.View(), helpView)
}

func (m *Model) renderStats() string {
	title := styles.title.Render("Library Statistics")
	body := formatter.RenderStats(m.statsReport)

	helpKeys := []key.Binding{m.keys.back, m.keys.quit}
	helpView := m.help.ShortHelpView(helpKeys)

	return fmt.Sprintf("%s\n%s\n%s", title, body, helpView)
}
