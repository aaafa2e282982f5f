package session

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/gridpath/pkg/grid"
	"github.com/matzehuels/gridpath/pkg/observability"
)

func newController(t *testing.T, opts Options) *Controller {
	t.Helper()
	opts.Logger = log.New(io.Discard)
	return New(opts)
}

func count(v grid.View, s grid.CellState) int {
	n := 0
	for i := 0; i < v.Size()*v.Size(); i++ {
		if v.State(i) == s {
			n++
		}
	}
	return n
}

func TestNewDefaults(t *testing.T) {
	c := newController(t, Options{})
	assert.Equal(t, grid.DefaultSize, c.Size())
	assert.Equal(t, grid.DefaultSize, c.View().Size())
	assert.Equal(t, grid.ModeObstacle, c.Mode())
	assert.Equal(t, ClearOnEdit, c.Policy())

	lo, hi := c.Bounds()
	assert.Equal(t, grid.MinSize, lo)
	assert.Equal(t, grid.MaxSize, hi)
	assert.Nil(t, c.LastReport())
}

func TestNewClampsDefaultSize(t *testing.T) {
	c := newController(t, Options{DefaultSize: 80, MinSize: 5, MaxSize: 30})
	assert.Equal(t, 30, c.View().Size())
}

func TestSetSizeClamps(t *testing.T) {
	c := newController(t, Options{})
	c.SetSize(2)
	assert.Equal(t, grid.MinSize, c.Size())
	c.SetSize(500)
	assert.Equal(t, grid.MaxSize, c.Size())
}

func TestResizeClearsPlacements(t *testing.T) {
	ctx := context.Background()
	c := newController(t, Options{})
	require.True(t, c.PlaceAt(0, 0, grid.ModeStart))
	require.True(t, c.PlaceAt(19, 19, grid.ModeEnd))
	require.True(t, c.PlaceAt(3, 3, grid.ModeObstacle))

	c.SetSize(10)
	// The slider only takes effect on the next cycle.
	assert.Equal(t, 20, c.View().Size())

	rep, err := c.Update(ctx)
	require.NoError(t, err)
	assert.Nil(t, rep)

	snap := c.Snapshot()
	assert.Equal(t, 10, snap.Size())
	assert.Equal(t, 100, count(c.View(), grid.Empty))
	_, ok := snap.Start()
	assert.False(t, ok)
	_, ok = snap.End()
	assert.False(t, ok)
}

func TestRunRequiresEndpoints(t *testing.T) {
	observability.Reset()
	defer observability.Reset()
	hooks := &recordingHooks{}
	observability.SetEngineHooks(hooks)

	ctx := context.Background()
	c := newController(t, Options{DefaultSize: 5})
	c.PlaceAt(0, 0, grid.ModeStart)
	c.RequestRun()

	rep, err := c.Update(ctx)
	require.NoError(t, err)
	assert.Nil(t, rep)
	assert.False(t, c.Pending())
	assert.Equal(t, 0, c.Runs())
	assert.Equal(t, 0, count(c.View(), grid.Visited))
	assert.Equal(t, []string{"end not set"}, hooks.skipped)
}

func TestRunCorners(t *testing.T) {
	observability.Reset()
	defer observability.Reset()
	hooks := &recordingHooks{}
	observability.SetEngineHooks(hooks)

	ctx := context.Background()
	c := newController(t, Options{DefaultSize: 5})
	c.PlaceAt(0, 0, grid.ModeStart)
	c.PlaceAt(4, 4, grid.ModeEnd)
	c.RequestRun()

	rep, err := c.Update(ctx)
	require.NoError(t, err)
	require.NotNil(t, rep)

	assert.NotEmpty(t, rep.ID)
	assert.Equal(t, 5, rep.Size)
	assert.Equal(t, 0, rep.Start)
	assert.Equal(t, 24, rep.End)
	assert.Equal(t, 8, rep.Result.Hops)
	assert.Equal(t, 7, count(c.View(), grid.Path))
	assert.Equal(t, 1, c.Runs())
	assert.Same(t, rep, c.LastReport())

	assert.Equal(t, 1, hooks.started)
	require.Len(t, hooks.completed, 1)
	assert.Equal(t, rep.ID, hooks.completed[0].ID)
	assert.True(t, hooks.completed[0].Reached)
}

func TestRunIsEdgeTriggered(t *testing.T) {
	ctx := context.Background()
	c := newController(t, Options{DefaultSize: 5})
	c.PlaceAt(0, 0, grid.ModeStart)
	c.PlaceAt(0, 4, grid.ModeEnd)

	c.RequestRun()
	c.RequestRun()
	rep, err := c.Update(ctx)
	require.NoError(t, err)
	require.NotNil(t, rep)

	rep, err = c.Update(ctx)
	require.NoError(t, err)
	assert.Nil(t, rep)
	assert.Equal(t, 1, c.Runs())
}

func TestRunTwiceIdentical(t *testing.T) {
	ctx := context.Background()
	c := newController(t, Options{DefaultSize: 9})
	c.PlaceAt(1, 1, grid.ModeStart)
	c.PlaceAt(7, 6, grid.ModeEnd)
	for r := 0; r < 6; r++ {
		c.PlaceAt(r, 4, grid.ModeObstacle)
	}

	c.RequestRun()
	first, err := c.Update(ctx)
	require.NoError(t, err)
	snap := c.Snapshot()

	c.RequestRun()
	second, err := c.Update(ctx)
	require.NoError(t, err)

	assert.Equal(t, snap, c.Snapshot())
	assert.Equal(t, first.Result, second.Result)
	assert.NotEqual(t, first.ID, second.ID)
}

func TestClearOnEdit(t *testing.T) {
	ctx := context.Background()
	c := newController(t, Options{DefaultSize: 5, Policy: ClearOnEdit})
	c.PlaceAt(0, 0, grid.ModeStart)
	c.PlaceAt(4, 4, grid.ModeEnd)
	c.RequestRun()
	_, err := c.Update(ctx)
	require.NoError(t, err)
	require.Positive(t, count(c.View(), grid.Visited))

	require.True(t, c.PlaceAt(2, 0, grid.ModeObstacle))
	assert.Equal(t, 0, count(c.View(), grid.Visited))
	assert.Equal(t, 0, count(c.View(), grid.Path))
}

func TestClearOnRunKeepsTrail(t *testing.T) {
	ctx := context.Background()
	c := newController(t, Options{DefaultSize: 5, Policy: ClearOnRun})
	c.PlaceAt(0, 0, grid.ModeStart)
	c.PlaceAt(4, 4, grid.ModeEnd)
	c.RequestRun()
	_, err := c.Update(ctx)
	require.NoError(t, err)
	visited := count(c.View(), grid.Visited)
	require.Positive(t, visited)

	// An obstacle somewhere off the trail leaves the marks alone.
	require.True(t, c.PlaceAt(4, 0, grid.ModeObstacle))
	assert.Positive(t, count(c.View(), grid.Visited))
	assert.Positive(t, count(c.View(), grid.Path))

	// The next run starts from a clean board.
	c.SetMode(grid.ModeEnd)
	require.True(t, c.Place(0, 1))
	c.RequestRun()
	rep, err := c.Update(ctx)
	require.NoError(t, err)
	require.NotNil(t, rep)
	assert.Equal(t, 1, rep.Result.Hops)
	assert.Equal(t, 0, count(c.View(), grid.Path))
}

func TestPlaceEndOnStartRejected(t *testing.T) {
	c := newController(t, Options{DefaultSize: 5})
	c.PlaceAt(1, 1, grid.ModeStart)
	before := c.Snapshot()

	assert.False(t, c.PlaceAt(1, 1, grid.ModeEnd))
	assert.Equal(t, before, c.Snapshot())
}

func TestPlaceOutsideGridIgnored(t *testing.T) {
	c := newController(t, Options{DefaultSize: 5})
	assert.False(t, c.PlaceAt(5, 5, grid.ModeObstacle))
	assert.False(t, c.Place(-1, 0))
}

func TestReset(t *testing.T) {
	ctx := context.Background()
	c := newController(t, Options{DefaultSize: 5})
	c.PlaceAt(0, 0, grid.ModeStart)
	c.PlaceAt(4, 4, grid.ModeEnd)
	c.RequestRun()
	_, err := c.Update(ctx)
	require.NoError(t, err)

	c.Reset()
	assert.Equal(t, 25, count(c.View(), grid.Empty))
	assert.Nil(t, c.LastReport())
	assert.Equal(t, 5, c.View().Size())
}

func TestClearMarks(t *testing.T) {
	ctx := context.Background()
	c := newController(t, Options{DefaultSize: 5, Policy: ClearOnRun})
	c.PlaceAt(0, 0, grid.ModeStart)
	c.PlaceAt(0, 4, grid.ModeEnd)
	c.RequestRun()
	_, err := c.Update(ctx)
	require.NoError(t, err)

	assert.Positive(t, c.ClearMarks())
	assert.Equal(t, 0, count(c.View(), grid.Visited))
}

func TestLoad(t *testing.T) {
	src := grid.New(6)
	src.PlaceAt(0, 0, grid.ModeStart)
	src.PlaceAt(5, 5, grid.ModeEnd)
	src.PlaceAt(2, 2, grid.ModeObstacle)
	src.Mark(7, grid.Visited)

	c := newController(t, Options{})
	c.SetSize(40)
	c.RequestRun()
	require.NoError(t, c.Load(src))

	assert.Equal(t, 6, c.Size())
	assert.False(t, c.Pending())
	assert.Equal(t, 1, count(c.View(), grid.Obstacle))
	assert.Equal(t, 0, count(c.View(), grid.Visited))

	// Loading counts as the current size; the next cycle keeps it.
	_, err := c.Update(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 6, c.View().Size())
	assert.True(t, c.Snapshot().Ready())

	assert.Error(t, c.Load(grid.New(3)))
}

func TestParseClearPolicy(t *testing.T) {
	tests := []struct {
		in      string
		want    ClearPolicy
		wantErr bool
	}{
		{"", ClearOnEdit, false},
		{"edit", ClearOnEdit, false},
		{"RUN", ClearOnRun, false},
		{"never", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseClearPolicy(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, got, mustParse(t, got.String()))
		})
	}
}

func mustParse(t *testing.T, s string) ClearPolicy {
	t.Helper()
	p, err := ParseClearPolicy(s)
	require.NoError(t, err)
	return p
}

type recordingHooks struct {
	started   int
	completed []observability.RunStats
	skipped   []string
}

func (h *recordingHooks) OnRunStart(context.Context, int) { h.started++ }

func (h *recordingHooks) OnRunComplete(_ context.Context, s observability.RunStats, _ time.Duration) {
	h.completed = append(h.completed, s)
}

func (h *recordingHooks) OnRunSkipped(_ context.Context, reason string) {
	h.skipped = append(h.skipped, reason)
}
