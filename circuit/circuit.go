package circuit

// Circuit is a caller-owned circuit description. The zero value is not
// ready for use; construct one with New. A Circuit is not safe for
// concurrent mutation; Solve takes a snapshot and allocates its own
// buffers, so a solved Result never aliases the Circuit.
type Circuit struct {
	exists     [MaxNodes]bool // tombstone arena: ids stay stable across deletes
	nodeCount  int
	components []Component
	ground     int // reference node, 0 V; defaults to 0
}

// New returns an empty Circuit with ground node 0.
func New() *Circuit {
	return &Circuit{components: make([]Component, 0, MaxComponents)}
}

// AddNode allocates the lowest free node id and returns it.
// Returns ErrTooManyNodes when the arena is full.
// Complexity: O(MaxNodes).
func (c *Circuit) AddNode() (int, error) {
	for id := 0; id < MaxNodes; id++ {
		if !c.exists[id] {
			c.exists[id] = true
			c.nodeCount++
			return id, nil
		}
	}
	return 0, ErrTooManyNodes
}

// RemoveNode tombstones the node and eagerly prunes every component
// incident to it. The id may be reused by a later AddNode.
// Complexity: O(components).
func (c *Circuit) RemoveNode(id int) error {
	if !c.HasNode(id) {
		return ErrNodeNotFound
	}
	c.exists[id] = false
	c.nodeCount--

	// Prune in place, keeping insertion order of the survivors.
	kept := c.components[:0]
	for _, comp := range c.components {
		if comp.Node1 == id || comp.Node2 == id {
			continue
		}
		kept = append(kept, comp)
	}
	c.components = kept

	return nil
}

// HasNode reports whether a node id currently exists.
func (c *Circuit) HasNode(id int) bool {
	return id >= 0 && id < MaxNodes && c.exists[id]
}

// NodeCount returns the number of existing nodes.
func (c *Circuit) NodeCount() int { return c.nodeCount }

// Nodes returns the existing node ids in ascending order.
func (c *Circuit) Nodes() []int {
	out := make([]int, 0, c.nodeCount)
	for id := 0; id < MaxNodes; id++ {
		if c.exists[id] {
			out = append(out, id)
		}
	}
	return out
}

// Components returns a copy of the component list in insertion order.
func (c *Circuit) Components() []Component {
	out := make([]Component, len(c.components))
	copy(out, c.components)
	return out
}

// AddResistor adds a resistance of the given ohms between n1 and n2.
// A zero value is accepted here: it surfaces later through the solver's
// singularity path rather than boundary validation.
func (c *Circuit) AddResistor(n1, n2 int, ohms float64) error {
	return c.addComponent(Component{Node1: n1, Node2: n2, Type: Resistor, Value: ohms})
}

// AddVoltageSource adds an ideal DC source of the given volts with its
// positive terminal at n1.
func (c *Circuit) AddVoltageSource(n1, n2 int, volts float64) error {
	return c.addComponent(Component{Node1: n1, Node2: n2, Type: VoltageSource, Value: volts})
}

// addComponent validates endpoints and bounds shared by all adders.
func (c *Circuit) addComponent(comp Component) error {
	if len(c.components) >= MaxComponents {
		return ErrTooManyComponents
	}
	if !c.HasNode(comp.Node1) || !c.HasNode(comp.Node2) {
		return ErrNodeNotFound
	}
	if comp.Node1 == comp.Node2 {
		return ErrSelfLoop
	}
	c.components = append(c.components, comp)

	return nil
}

// SetGround designates the 0 V reference node. The node must exist now;
// deleting it later is caught again at solve time.
func (c *Circuit) SetGround(id int) error {
	if !c.HasNode(id) {
		return ErrNodeNotFound
	}
	c.ground = id

	return nil
}

// Ground returns the current reference node id.
func (c *Circuit) Ground() int { return c.ground }
