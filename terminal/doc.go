// Package terminal is the renderer's terminal collaborator: size queries,
// resize notification, cursor control and frame presentation.
//
// Two backends implement the same Terminal interface:
//   - ansi: direct ANSI sequences to stdout, SIGWINCH resize detection,
//     no terminfo/termcap. Target environments are Linux, macOS and BSDs
//     with xterm-compatible terminals.
//   - tcell: a tcell.Screen, portable, with key-driven quit (q, Esc, Ctrl-C).
//
// Asynchronous conditions (stop requests, resizes) are never delivered as
// callbacks into rendering code; backends raise them on a shared Flags
// value that the frame loop polls at its checkpoints.
package terminal
