// Package render turns a solved or partially solved grid.Grid into a
// terminal-displayable string, mapping each palette color's RGB triple
// to the nearest ANSI terminal color by perceptual (Lab) distance.
//
// Grounded on the pack's lixenwraith-vi-fighter editor, which carries
// github.com/lucasb-eyer/go-colorful for its own heatmap renderer; this
// package reuses the same library for the same reason — RGB Euclidean
// distance picks visually wrong matches near perceptual boundaries,
// Lab distance doesn't. Output is written through github.com/fatih/color
// (the same ANSI color library eng618-parable-bloom's CLI depends on)
// so 256-color terminals and NO_COLOR/non-tty detection are handled the
// way the rest of the pack's CLIs already handle them, not reimplemented.
package render
