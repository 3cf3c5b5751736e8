// Package render draws static snapshots of a tsp.Graph and a solved tour.
//
// It is the non-interactive stand-in for a canvas collaborator: cities are
// plotted as glyphs with their names, existing edges as light lines, and
// the solved tour (closing edge included) as a heavy polyline on top. The
// output is a *plot.Plot that Save writes to PNG, SVG or PDF depending on
// the file extension.
//
// The package never mutates the graph and holds no state between calls;
// All solver semantics stay in package tsp — render only consumes a Result.
package render
