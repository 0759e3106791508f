// Package core_test verifies thread-safety of core.Graph under concurrent
// mutation and enumeration.
package core_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edgewalk/edgewalk/core"
)

// TestConcurrentAddEdge ensures that concurrent AddEdge calls on a
// multigraph are safe and every edge lands.
func TestConcurrentAddEdge(t *testing.T) {
	g := core.NewGraph(core.WithMultiEdges())
	const num = 200
	var wg sync.WaitGroup
	wg.Add(num)

	for i := 0; i < num; i++ {
		go func(id int) {
			defer wg.Done()
			_, err := g.AddEdge("X", fmt.Sprintf("V%d", id))
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	assert.Equal(t, num, g.EdgeCount())
	out, err := g.OutEdges("X")
	require.NoError(t, err)
	assert.Len(t, out, num)
}

// TestConcurrentReadWhileWrite interleaves enumeration with mutation;
// the race detector is the real assertion here.
func TestConcurrentReadWhileWrite(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true), core.WithMultiEdges())
	_, err := g.AddEdge("A", "B")
	require.NoError(t, err)

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i < 100; i++ {
			_, _ = g.AddEdge("A", fmt.Sprintf("N%d", i))
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < 100; i++ {
			_, _ = g.OutEdges("A")
			_ = g.Vertices()
			_ = g.Edges()
		}
	}()
	wg.Wait()

	assert.Equal(t, 101, g.EdgeCount())
}
