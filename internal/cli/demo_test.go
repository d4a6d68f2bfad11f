package cli

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/openmarquee/marquee/internal/core/engine"
	"github.com/openmarquee/marquee/internal/core/font"
	"github.com/openmarquee/marquee/internal/core/page"
)

type stepClock struct{ now time.Time }

func (c *stepClock) Now() time.Time { return c.now }

func TestDemoPageBuildsAndRenders(t *testing.T) {
	t.Parallel()

	spec, err := page.Parse([]byte(demoPage))
	require.NoError(t, err)

	db := engine.NewVarStore()
	dbp := engine.NewVarStore()
	clock := &stepClock{now: time.Unix(1_700_000_000, 0)}
	ctrl, err := engine.NewController(engine.Options{
		PanelWidth:  100,
		PanelHeight: 16,
		Clock:       clock,
	}, db, dbp)
	require.NoError(t, err)

	seedDemoVars(db)
	dbp.CopyFrom(db)
	require.NoError(t, page.Build(spec, map[string]*font.Pack{"default": font.Face5x8()}, ctrl))
	require.Len(t, ctrl.Sequences(), 3)

	img := ctrl.Next()
	require.NotNil(t, img, "the pouring sequence is active at start")
	require.Equal(t, 101, img.Width())
	require.Equal(t, 17, img.Height())

	lit := 0
	for y := 0; y < img.Height(); y++ {
		for x := 0; x < img.Width(); x++ {
			lit += img.At(x, y)
		}
	}
	require.Positive(t, lit, "the info canvas draws something")
}

func TestDemoEventsApplyInOrder(t *testing.T) {
	t.Parallel()

	db := engine.NewVarStore()
	seedDemoVars(db)
	start := time.Unix(1_700_000_000, 0)

	demoTick(db, start, start.Add(5*time.Second))
	v, _ := db.Get("name")
	require.Equal(t, "Rye IPA", v.String())

	demoTick(db, start, start.Add(12*time.Second))
	v, _ = db.Get("name")
	require.Equal(t, "Belgian Ale", v.String())

	demoTick(db, start, start.Add(61*time.Second))
	v, _ = db.Get("state")
	require.Equal(t, "stop", v.String())

	v, _ = db.Get("elapsed_formatted")
	require.Equal(t, "01:01", v.String())
}
