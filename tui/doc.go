// Package tui renders the game in a terminal and maps key presses to engine
// commands using tcell.
//
// The package is a pure collaborator of the engine: it reads snapshots and
// delivers discrete commands, never touching engine internals. MapKey owns
// the key bindings (arrows, WASD, HJKL, r to restart, q/Escape/Ctrl-C to
// quit), Draw paints one frame from a snapshot, and App ties both to a
// tcell.Screen in a synchronous event loop.
package tui
