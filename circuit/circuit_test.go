package circuit_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/solvkit/circuit"
)

func TestAddNode_StableLowestFreeID(t *testing.T) {
	c := circuit.New()

	a, err := c.AddNode()
	require.NoError(t, err)
	require.Equal(t, 0, a)

	b, err := c.AddNode()
	require.NoError(t, err)
	require.Equal(t, 1, b)

	// tombstone id 0; id 1 keeps its identity
	require.NoError(t, c.RemoveNode(a))
	require.False(t, c.HasNode(a))
	require.True(t, c.HasNode(b))

	// the freed slot is reused first
	again, err := c.AddNode()
	require.NoError(t, err)
	require.Equal(t, 0, again)
}

func TestAddNode_Limit(t *testing.T) {
	c := circuit.New()
	for i := 0; i < circuit.MaxNodes; i++ {
		_, err := c.AddNode()
		require.NoError(t, err)
	}
	_, err := c.AddNode()
	require.ErrorIs(t, err, circuit.ErrTooManyNodes)
}

func TestRemoveNode_CascadesComponents(t *testing.T) {
	c := circuit.New()
	n0, _ := c.AddNode()
	n1, _ := c.AddNode()
	n2, _ := c.AddNode()

	require.NoError(t, c.AddResistor(n0, n1, 10))
	require.NoError(t, c.AddResistor(n1, n2, 20))
	require.NoError(t, c.AddResistor(n0, n2, 30))

	require.NoError(t, c.RemoveNode(n1))

	comps := c.Components()
	require.Len(t, comps, 1)
	require.Equal(t, n0, comps[0].Node1)
	require.Equal(t, n2, comps[0].Node2)

	require.ErrorIs(t, c.RemoveNode(n1), circuit.ErrNodeNotFound)
}

func TestAddComponent_Validation(t *testing.T) {
	c := circuit.New()
	n0, _ := c.AddNode()
	n1, _ := c.AddNode()

	require.ErrorIs(t, c.AddResistor(n0, 17, 10), circuit.ErrNodeNotFound)
	require.ErrorIs(t, c.AddVoltageSource(-1, n1, 5), circuit.ErrNodeNotFound)
	require.ErrorIs(t, c.AddResistor(n0, n0, 10), circuit.ErrSelfLoop)

	for i := 0; i < circuit.MaxComponents; i++ {
		require.NoError(t, c.AddResistor(n0, n1, 10))
	}
	require.ErrorIs(t, c.AddResistor(n0, n1, 10), circuit.ErrTooManyComponents)
}

func TestSetGround(t *testing.T) {
	c := circuit.New()
	require.Equal(t, 0, c.Ground())

	n0, _ := c.AddNode()
	n1, _ := c.AddNode()
	require.NoError(t, c.SetGround(n1))
	require.Equal(t, n1, c.Ground())

	require.ErrorIs(t, c.SetGround(9), circuit.ErrNodeNotFound)

	// deleting the ground node is caught at solve time
	require.NoError(t, c.AddResistor(n0, n1, 10))
	require.NoError(t, c.RemoveNode(n1))
	_, err := c.Solve()
	require.ErrorIs(t, err, circuit.ErrGroundNotFound)
}

func TestNodes_Ascending(t *testing.T) {
	c := circuit.New()
	for i := 0; i < 4; i++ {
		_, err := c.AddNode()
		require.NoError(t, err)
	}
	require.NoError(t, c.RemoveNode(2))
	require.Equal(t, []int{0, 1, 3}, c.Nodes())
	require.Equal(t, 3, c.NodeCount())
}
