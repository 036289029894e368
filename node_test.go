package txlog_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNodeString(t *testing.T) {
	lg := logOf("first", "middle", "last")

	require.Equal(t, fmt.Sprint(lg.Head()), "Node(first, prev: false, next: true)")
	require.Equal(t, fmt.Sprint(lg.Head().Next()), "Node(middle, prev: true, next: true)")
	require.Equal(t, fmt.Sprint(lg.Tail()), "Node(last, prev: true, next: false)")
}

func TestNodeStringDetached(t *testing.T) {
	lg := logOf("gone", "stays")
	old := lg.Head()
	lg.Pop()

	// Popping moves the value out of the node, so a detached node
	// prints empty with both links cleared.
	require.Equal(t, old.String(), "Node(, prev: false, next: false)")
}
