package circuit

import (
	"fmt"

	"github.com/katalvlaran/solvkit/linsolve"
	"github.com/katalvlaran/solvkit/matrix"
)

// Solve assembles the nodal system for the current circuit, solves it, and
// derives branch currents.
//
// Preconditions (checked in order):
//   - ground node exists                 → ErrGroundNotFound
//   - ≥ 2 existing nodes, ≥ 1 component  → ErrInsufficientCircuit
//   - ≥ 1 existing non-ground node       → ErrNoFreeNode
//
// A singular assembled system (isolated nodes, a zero-ohm resistor stamped
// as +Inf, duplicate forcing rows, ...) is reported as ErrUnsolvableCircuit
// wrapping linsolve.ErrSingular.
//
// Complexity: O(f³) for f free nodes (f ≤ MaxNodes−1), dominated by
// elimination; assembly itself is O(components).
func (c *Circuit) Solve() (Result, error) {
	// --- 1. Structural preconditions ---
	if !c.HasNode(c.ground) {
		return Result{}, ErrGroundNotFound
	}
	if c.nodeCount < 2 || len(c.components) == 0 {
		return Result{}, ErrInsufficientCircuit
	}

	// Stable node→row mapping over existing non-ground nodes, ascending id.
	rowOf := make(map[int]int, c.nodeCount-1)
	free := make([]int, 0, c.nodeCount-1)
	for id := 0; id < MaxNodes; id++ {
		if c.exists[id] && id != c.ground {
			rowOf[id] = len(free)
			free = append(free, id)
		}
	}
	n := len(free)
	if n == 0 {
		return Result{}, ErrNoFreeNode
	}

	// --- 2. Assemble G and I ---
	g, err := matrix.NewSquare(n)
	if err != nil {
		return Result{}, err
	}
	rhs := make([]float64, n)

	for _, comp := range c.components {
		switch comp.Type {
		case Resistor:
			if err = stampResistor(g, rowOf, comp.Node1, comp.Node2, 1.0/comp.Value); err != nil {
				return Result{}, err
			}

		case VoltageSource:
			if err = c.stampVoltageSource(g, rhs, rowOf, comp); err != nil {
				return Result{}, err
			}

		case CurrentSource:
			// Reserved type: never stamped.
		}
	}

	// --- 3. Solve the linear system ---
	v, err := linsolve.Solve(g, rhs)
	if err != nil {
		return Result{}, fmt.Errorf("%w: %w", ErrUnsolvableCircuit, err)
	}

	// --- 4. Full per-node voltage map (ground = 0) ---
	voltages := make(map[int]float64, c.nodeCount)
	voltages[c.ground] = 0
	for i, id := range free {
		voltages[id] = v[i]
	}

	// --- 5. Derive branch currents and dissipated power ---
	branches := make([]Branch, len(c.components))
	for i, comp := range c.components {
		b := Branch{Component: comp}
		if comp.Type == Resistor {
			// Signed: positive current flows Node1→Node2.
			b.Current = (voltages[comp.Node1] - voltages[comp.Node2]) / comp.Value
			b.Power = b.Current * b.Current * comp.Value
		}
		// Voltage-source current stays 0: a dependent variable plain nodal
		// analysis does not solve.
		branches[i] = b
	}

	return Result{Voltages: voltages, Branches: branches}, nil
}

// stampResistor adds conductance to the diagonal of each free endpoint and
// subtracts it from the joining off-diagonals. Terms involving a ground
// endpoint are skipped: the ground row/column is implicitly eliminated.
func stampResistor(g *matrix.Dense, rowOf map[int]int, n1, n2 int, conductance float64) error {
	i1, ok1 := rowOf[n1]
	i2, ok2 := rowOf[n2]

	if ok1 {
		if err := g.AddAt(i1, i1, conductance); err != nil {
			return err
		}
		if ok2 {
			if err := g.AddAt(i1, i2, -conductance); err != nil {
				return err
			}
		}
	}
	if ok2 {
		if err := g.AddAt(i2, i2, conductance); err != nil {
			return err
		}
		if ok1 {
			if err := g.AddAt(i2, i1, -conductance); err != nil {
				return err
			}
		}
	}

	return nil
}

// stampVoltageSource handles the two ideal-source cases.
//
// Grounded terminal: overwrite the non-ground node's row with an identity
// row and force its potential to ±value (sign depends on which terminal is
// ground; the positive terminal is Node1).
//
// Floating between two free nodes: Norton equivalent — internalResistance
// stamped like a resistor plus value/internalResistance injected at the
// positive row and extracted at the negative row.
func (c *Circuit) stampVoltageSource(g *matrix.Dense, rhs []float64, rowOf map[int]int, comp Component) error {
	switch {
	case comp.Node1 == c.ground:
		// V(n1) − V(n2) = value with V(n1) = 0  ⇒  V(n2) = −value.
		idx, ok := rowOf[comp.Node2]
		if !ok {
			return nil // both terminals grounded: nothing to force
		}
		if err := g.ZeroRow(idx); err != nil {
			return err
		}
		if err := g.Set(idx, idx, 1); err != nil {
			return err
		}
		rhs[idx] = -comp.Value

	case comp.Node2 == c.ground:
		// V(n1) − 0 = value  ⇒  V(n1) = +value.
		idx, ok := rowOf[comp.Node1]
		if !ok {
			return nil
		}
		if err := g.ZeroRow(idx); err != nil {
			return err
		}
		if err := g.Set(idx, idx, 1); err != nil {
			return err
		}
		rhs[idx] = comp.Value

	default:
		i1, ok1 := rowOf[comp.Node1]
		i2, ok2 := rowOf[comp.Node2]
		if !ok1 || !ok2 {
			return nil // endpoints exist and are non-ground here, so both rows resolve
		}

		injected := comp.Value / internalResistance
		if err := stampResistor(g, rowOf, comp.Node1, comp.Node2, 1.0/internalResistance); err != nil {
			return err
		}
		// Current into the positive terminal, out of the negative one.
		rhs[i1] += injected
		rhs[i2] -= injected
	}

	return nil
}
