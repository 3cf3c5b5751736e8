package circuit

import "errors"

// Bounds of the circuit universe. Node ids are stable within
// [0, MaxNodes); the component list never exceeds MaxComponents.
const (
	MaxNodes      = 20
	MaxComponents = 50
)

// internalResistance models an ideal voltage source floating between two
// non-ground nodes as a Norton equivalent. The constant trades a sub-1%
// voltage error for solvability by a constant linear system.
const internalResistance = 0.01

// ComponentType is the closed set of supported two-terminal components.
type ComponentType uint8

const (
	// Resistor is a linear resistance in ohms.
	Resistor ComponentType = iota

	// VoltageSource is an ideal DC source in volts, positive terminal Node1.
	VoltageSource

	// CurrentSource is reserved: it is declared for completeness but no
	// solver stamps it. Adding one is rejected at the boundary.
	CurrentSource
)

// String implements fmt.Stringer for diagnostics.
func (t ComponentType) String() string {
	switch t {
	case Resistor:
		return "resistor"
	case VoltageSource:
		return "voltage-source"
	case CurrentSource:
		return "current-source"
	default:
		return "unknown"
	}
}

// Component is one two-terminal element of the circuit.
// Value is ohms for a Resistor and volts for a VoltageSource; for sources
// Node1 is the positive terminal.
type Component struct {
	Node1 int
	Node2 int
	Type  ComponentType
	Value float64
}

// Branch is the solved state of one component, in insertion order.
type Branch struct {
	Component Component

	// Current is signed positive flowing Node1→Node2. Reported as 0 for
	// voltage sources (dependent variable not solved by nodal analysis).
	Current float64

	// Power is the dissipated power Current²·R for resistors, 0 otherwise.
	Power float64
}

// Result is the outcome of one Solve call; it is freshly allocated and
// detached from the Circuit that produced it.
type Result struct {
	// Voltages maps every existing node id to its potential relative to
	// ground (ground itself maps to 0).
	Voltages map[int]float64

	// Branches holds per-component solved state, parallel to the order in
	// which components were added.
	Branches []Branch
}

// Sentinel errors for circuit construction and solving.
var (
	// ErrTooManyNodes indicates the node arena is full (MaxNodes).
	ErrTooManyNodes = errors.New("circuit: node limit reached")

	// ErrTooManyComponents indicates the component list is full (MaxComponents).
	ErrTooManyComponents = errors.New("circuit: component limit reached")

	// ErrNodeNotFound indicates an operation referenced a non-existent node id.
	ErrNodeNotFound = errors.New("circuit: node not found")

	// ErrSelfLoop indicates a component whose endpoints are the same node.
	ErrSelfLoop = errors.New("circuit: component endpoints must differ")

	// ErrInsufficientCircuit indicates fewer than 2 nodes or no components.
	ErrInsufficientCircuit = errors.New("circuit: need at least 2 nodes and 1 component")

	// ErrNoFreeNode indicates every existing node is the ground node.
	ErrNoFreeNode = errors.New("circuit: need at least one non-ground node")

	// ErrGroundNotFound indicates the configured ground node does not exist
	// at solve time.
	ErrGroundNotFound = errors.New("circuit: ground node does not exist")

	// ErrUnsolvableCircuit indicates the assembled system is singular
	// (isolated node, floating sources with no path to ground, ...).
	// It wraps linsolve.ErrSingular.
	ErrUnsolvableCircuit = errors.New("circuit: cannot solve circuit, check connections and ground path")
)
