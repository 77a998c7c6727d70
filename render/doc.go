// Package render defines the rendering boundary spec.md §6 leaves outside
// this module's scope — segmentation of an arbitrary image into a grid, and
// turning a solved path into a picture, are both named as "neither is
// specified here" collaborators.
//
// Segmenter and PathRenderer fix that boundary as Go interfaces so a caller
// can plug in whatever image-segmentation or graphics-rendering package it
// already owns. ASCII is the one concrete PathRenderer this module ships:
// a terminal-friendly rendering used by the CLI and by tests that want a
// human-readable view of a hampath.Result.
package render
