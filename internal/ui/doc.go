// Package ui provides composition primitives for Bubble Tea programs that stack
// modal views over a host screen.
//
// Core abstractions:
//   - View: a self-contained Elm-style model (Init/Update/View)
//   - OverlayStack: ordered stack of modal views keyed by id; the topmost receives input
//   - FocusManager: rotates focus across the controls of a view
//   - Place/Overlay: ANSI-aware compositing of a block over a background
//   - KeybindRegistry/KeyHandler: leader-key bindings with a transient help bar
package ui
