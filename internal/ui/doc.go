// Package ui is the Bubble Tea front end: it draws the controller's panes,
// maps keys to controller commands through a leader-key registry, and hosts
// the open-file prompt and key help modals.
//
// The model never mutates layout or pads directly; every edit and structural
// change goes through controller.Dispatch.
package ui
