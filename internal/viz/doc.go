// Package viz provides terminal plots and a live solver view.
//
// Static plots render sampled expansions and coefficient decay with
// asciigraph. The live view is a Bubble Tea program fed with solver
// iterations over a channel, showing the Newton residual history while the
// solve runs and the solution curve once it finishes.
package viz
