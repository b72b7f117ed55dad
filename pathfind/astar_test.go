package pathfind

import (
	"math/rand"
	"testing"

	"github.com/milk9111/tilechase/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type cellSet map[common.Cell]bool

func (s cellSet) blocked(c common.Cell) bool { return s[c] }

// bfsLength returns the number of cells on a shortest four-connected path,
// or 0 when the goal is unreachable. Blocked cells other than the goal are
// impassable, matching the goal exemption.
func bfsLength(start, goal common.Cell, cols, rows int, blocked cellSet) int {
	dist := map[common.Cell]int{start: 1}
	queue := []common.Cell{start}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if cur == goal {
			return dist[cur]
		}
		for _, d := range offsets {
			next := cur.Add(d[0], d[1])
			if next.X < 0 || next.Y < 0 || next.X >= cols || next.Y >= rows {
				continue
			}
			if blocked[next] && next != goal {
				continue
			}
			if _, seen := dist[next]; seen {
				continue
			}
			dist[next] = dist[cur] + 1
			queue = append(queue, next)
		}
	}
	return 0
}

func assertContiguous(t *testing.T, path []Node, blocked cellSet, goal common.Cell) {
	t.Helper()
	for i := 1; i < len(path); i++ {
		require.Equal(t, 1, path[i-1].Cell.Manhattan(path[i].Cell), "step %d is not a cardinal move", i)
		if path[i].Cell != goal {
			require.False(t, blocked[path[i].Cell], "path crosses blocked cell %v", path[i].Cell)
		}
	}
}

func TestFindDetourAroundObstacle(t *testing.T) {
	blocked := cellSet{{X: 2, Y: 2}: true}
	path := Find(common.Cell{X: 0, Y: 2}, common.Cell{X: 4, Y: 2}, 5, 5, blocked.blocked)

	require.Len(t, path, 7)
	assert.Equal(t, common.Cell{X: 0, Y: 2}, path[0].Cell)
	assert.Equal(t, common.Cell{X: 4, Y: 2}, path[6].Cell)
	assertContiguous(t, path, blocked, common.Cell{X: 4, Y: 2})
	assert.Equal(t, 6, path[6].G)
	assert.Equal(t, 0, path[6].H)
}

func TestFindStraightLine(t *testing.T) {
	path := Find(common.Cell{X: 0, Y: 0}, common.Cell{X: 4, Y: 0}, 5, 5, nil)
	require.Len(t, path, 5)
	for i, n := range path {
		assert.Equal(t, common.Cell{X: i, Y: 0}, n.Cell)
		assert.Equal(t, i, n.G)
	}
}

func TestFindStartIsGoal(t *testing.T) {
	path := Find(common.Cell{X: 1, Y: 1}, common.Cell{X: 1, Y: 1}, 3, 3, nil)
	require.Len(t, path, 1)
	assert.Equal(t, common.Cell{X: 1, Y: 1}, path[0].Cell)
}

func TestFindEnclosedGoalTerminatesEmpty(t *testing.T) {
	goal := common.Cell{X: 3, Y: 3}
	blocked := cellSet{}
	// ring of blocked cells around the goal; none of them is the goal so
	// the exemption never opens the ring.
	for dx := -1; dx <= 1; dx++ {
		for dy := -1; dy <= 1; dy++ {
			if dx == 0 && dy == 0 {
				continue
			}
			blocked[goal.Add(dx, dy)] = true
		}
	}
	f := NewFinder(7, 7)
	path := f.Find(common.Cell{X: 0, Y: 0}, goal, blocked.blocked)

	require.NotNil(t, path)
	assert.Empty(t, path)
	assert.False(t, f.Stats().Found)
	assert.LessOrEqual(t, f.Stats().Expanded, 49)
}

func TestFindGoalInBlockedSet(t *testing.T) {
	goal := common.Cell{X: 3, Y: 0}
	blocked := cellSet{goal: true}

	path := Find(common.Cell{X: 0, Y: 0}, goal, 4, 1, blocked.blocked)
	require.Len(t, path, 4)
	assert.Equal(t, goal, path[3].Cell)

	strict := NewFinder(4, 1)
	strict.GoalExempt = false
	assert.Empty(t, strict.Find(common.Cell{X: 0, Y: 0}, goal, blocked.blocked))
}

func TestFindStartCellNotChecked(t *testing.T) {
	start := common.Cell{X: 0, Y: 0}
	blocked := cellSet{start: true}
	path := Find(start, common.Cell{X: 2, Y: 0}, 3, 1, blocked.blocked)
	assert.Len(t, path, 3)
}

func TestFindOutOfBounds(t *testing.T) {
	tests := []struct {
		name        string
		start, goal common.Cell
	}{
		{"goal_outside", common.Cell{X: 0, Y: 0}, common.Cell{X: 5, Y: 0}},
		{"start_outside", common.Cell{X: -1, Y: 0}, common.Cell{X: 2, Y: 2}},
		{"negative_goal", common.Cell{X: 0, Y: 0}, common.Cell{X: 0, Y: -3}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Empty(t, Find(tc.start, tc.goal, 5, 5, nil))
		})
	}
}

func TestFindMatchesBFSOnRandomGrids(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	const cols, rows = 8, 6
	for trial := 0; trial < 200; trial++ {
		blocked := cellSet{}
		for i := 0; i < cols*rows/4; i++ {
			blocked[common.Cell{X: rng.Intn(cols), Y: rng.Intn(rows)}] = true
		}
		start := common.Cell{X: rng.Intn(cols), Y: rng.Intn(rows)}
		goal := common.Cell{X: rng.Intn(cols), Y: rng.Intn(rows)}
		delete(blocked, start)

		want := bfsLength(start, goal, cols, rows, blocked)
		path := Find(start, goal, cols, rows, blocked.blocked)
		if want == 0 {
			assert.Empty(t, path, "trial %d: %v -> %v should be unreachable", trial, start, goal)
			continue
		}
		require.Len(t, path, want, "trial %d: %v -> %v", trial, start, goal)
		assert.Equal(t, start, path[0].Cell)
		assert.Equal(t, goal, path[len(path)-1].Cell)
		assertContiguous(t, path, blocked, goal)
	}
}

func TestFindIsDeterministic(t *testing.T) {
	blocked := cellSet{{X: 2, Y: 1}: true, {X: 2, Y: 2}: true, {X: 2, Y: 3}: true}
	first := Find(common.Cell{X: 0, Y: 2}, common.Cell{X: 4, Y: 2}, 5, 5, blocked.blocked)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Find(common.Cell{X: 0, Y: 2}, common.Cell{X: 4, Y: 2}, 5, 5, blocked.blocked))
	}
}

func TestFindMaxExpanded(t *testing.T) {
	f := NewFinder(50, 50)
	f.MaxExpanded = 5
	path := f.Find(common.Cell{X: 0, Y: 0}, common.Cell{X: 49, Y: 49}, nil)
	assert.Empty(t, path)
	assert.Equal(t, 5, f.Stats().Expanded)
}
