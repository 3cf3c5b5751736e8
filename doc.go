// Package solvkit is a small computational workbench for two classic
// engineering problems: DC resistive circuits and the Travelling Salesman
// Problem.
//
// 🚀 What is solvkit?
//
//	A deterministic, caller-owned computation core that brings together:
//		• linsolve  — dense Gaussian elimination with partial pivoting
//		• circuit   — nodal analysis of resistor / voltage-source networks
//		• tsp       — Nearest-Neighbor, Genetic and Held–Karp tour solvers
//		              over a weighted city graph
//		• render    — static PNG/SVG snapshots of a city map and its tour
//		• matrix    — the shared dense float64 matrix primitive
//
// ✨ Why choose solvkit?
//
//   - Predictable – every solver is a pure synchronous function over its
//     own input snapshot; no globals, no hidden state between calls
//   - Honest errors – sentinel errors matched with errors.Is; a solver
//     never panics on user input and never swallows a failure
//   - Bounded – circuit nodes ≤ 20, components ≤ 50, cities ≤ 50; the
//     exact TSP solver transparently degrades to the greedy heuristic
//     above its 2ⁿ feasibility bound
//
// Quick tour:
//
//	c := circuit.New()
//	a, _ := c.AddNode()             // ground (id 0 by default)
//	b, _ := c.AddNode()
//	_ = c.AddVoltageSource(b, a, 10)
//	res, err := c.Solve()           // res.Voltages, res.Branches
//
//	g := tsp.NewGraph(tsp.WithAutoConnect())
//	g.AddCity(0, 0)
//	g.AddCity(3, 4)
//	out, err := tsp.Solve(g, tsp.Options{Algo: tsp.DynamicProgramming})
//
// All packages are independent leaves except circuit → linsolve → matrix;
// nothing in solvkit performs I/O or retains state across invocations.
package solvkit
