// SPDX-License-Identifier: EPL-2.0

// Package tui is the terminal front end: a Plot that renders engine
// snapshots as text and a bubbletea Model that turns keys into viewport
// and amplitude changes.
package tui
