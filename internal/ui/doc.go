// Package ui implements an interactive terminal interface using bubbletea's Elm architecture.
//
// The TUI provides a multi-view workflow for browsing the catalog:
//  1. [LibraryView] : Browse every song in the catalog
//  2. [PlaylistListView] : Browse playlists
//  3. [PlaylistSongsView] : View songs inside a selected playlist
//  4. [FavoritesView] : Browse favorite songs
//  5. [StatsView] : Display aggregate library statistics
//
// The (view) [Model] implements bubbletea/Elm's standard Init/Update/View pattern, receiving typed messages from commands.
//
// Keyboard navigation uses vim-style bindings (j/k, enter, esc, q) plus single-key view switches, with contextual help displayed via charmbracelet/bubbles/help.
package ui
