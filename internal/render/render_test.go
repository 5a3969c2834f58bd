package render

import (
	"testing"

	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bst_code/tree"
)

func TestLeveledList(t *testing.T) {
	tr := tree.FromValues(tree.InPlace, 5, 7, 9, 2, 6)
	assert.Equal(t, pterm.LeveledList{
		{Level: 0, Text: "5"},
		{Level: 1, Text: "L 2"},
		{Level: 1, Text: "R 7"},
		{Level: 2, Text: "L 6"},
		{Level: 2, Text: "R 9"},
	}, LeveledList(tr))
}

func TestLeveledListChain(t *testing.T) {
	tr := tree.FromValues(tree.Persistent, "a", "b", "c")
	assert.Equal(t, pterm.LeveledList{
		{Level: 0, Text: "a"},
		{Level: 1, Text: "R b"},
		{Level: 2, Text: "R c"},
	}, LeveledList(tr))
}

func TestLeveledListEmpty(t *testing.T) {
	assert.Equal(t, pterm.LeveledList{{Level: 0, Text: emptyLabel}}, LeveledList(tree.Empty[int]()))
}

func TestSprint(t *testing.T) {
	pterm.DisableStyling()
	defer pterm.EnableStyling()

	out, err := Sprint(tree.FromValues(tree.InPlace, 2, 1, 3))
	require.NoError(t, err)
	for _, label := range []string{"2", "L 1", "R 3"} {
		assert.Contains(t, out, label)
	}
}
