// Package sideaxes attaches auxiliary views to the edges of an existing
// view and keeps them synchronized with it.
//
// A side view shares one border with its parent: a view attached to the
// south edge of a parent sits directly below it, has the same width and
// mirrors the parent's horizontal limits, scale and direction. Tick
// strips, labels and range annotations can then be drawn into the side
// view without duplicating any axis state by hand.
//
// Placement
//
// NewSideView converts a requested side, gap and size into an absolute
// rectangle in the figure's normalized coordinate system. Gap and size
// are interpreted in a caller chosen measurement unit; if the size is
// omitted the side view fills the remaining space between the parent and
// the figure edge. The dimension along the shared edge always equals the
// parent's, so the two borders match exactly.
//
// Linking
//
// Unless linking is disabled the new view is kept synchronized with the
// parent for as long as both exist: whenever a limit, scale, direction
// or the rotation of the parent changes, the corresponding state is
// recomputed and pushed onto the child. Which semantic axis (x, y or z)
// is shared between the two views is resolved from their rotations on
// every pass, so a view rotated by a quarter or half turn stays in sync,
// with reversed ranges where the net orientation flips. Updates flow
// strictly from parent to child, never back.
package sideaxes
