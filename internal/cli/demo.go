package cli

import (
	"fmt"
	"time"

	"github.com/openmarquee/marquee/internal/core/engine"
)

// demoPage is the built-in beer-tap page used when no page file is given.
// It exercises text binding, scrolling, progress, and conditional
// sequences against the scripted variable feed below.
const demoPage = `{
	"fonts": {"default": {"file": "builtin"}},
	"widgets": {
		"name": {"type": "text", "format": "{0}", "variables": ["name"], "font": "default", "varwidth": true},
		"abv": {"type": "text", "format": "{0}", "variables": ["abv"], "font": "default", "varwidth": true},
		"description": {"type": "text", "format": "{0}", "variables": ["description"], "font": "default", "varwidth": true,
			"effect": {"type": "scroll", "direction": "left", "distance": 1, "gap": 20, "hesitate": "onloop", "hesitatetime": 2, "threshold": 100}},
		"remaining": {"type": "text", "format": "{0}", "variables": ["remaining"], "font": "default", "varwidth": true},
		"level": {"type": "progressbar", "value": "weight", "rangeval": [0, 800], "size": [100, 6], "style": "square"},
		"clock": {"type": "text", "format": "{0}", "variables": ["time_formatted"], "font": "default", "just": "center", "size": [100, 8]},
		"tempalert": {"type": "text", "format": "High temp {0}", "variables": ["system_temp_formatted"], "font": "default", "just": "center", "size": [100, 8]},
		"divider": {"type": "line", "point": [99, 0]}
	},
	"canvases": {
		"info": {"size": [100, 16], "widgets": [
			{"name": "name", "x": 0, "y": 0},
			{"name": "abv", "x": 0, "y": 8}
		]},
		"story": {"size": [100, 16], "widgets": [
			{"name": "description", "x": 0, "y": 4}
		]},
		"supply": {"size": [100, 16], "widgets": [
			{"name": "remaining", "x": 0, "y": 0},
			{"name": "level", "x": 0, "y": 10}
		]},
		"idle": {"size": [100, 16], "widgets": [
			{"name": "clock", "x": 0, "y": 4},
			{"name": "divider", "x": 0, "y": 14}
		]},
		"alert": {"size": [100, 16], "widgets": [
			{"name": "tempalert", "x": 0, "y": 4}
		]}
	},
	"sequences": [
		{"name": "pouring", "conditional": "db.state == 'play'", "canvases": [
			{"name": "info", "duration": 8},
			{"name": "story", "duration": 8},
			{"name": "supply", "duration": 4}
		]},
		{"name": "idle", "conditional": "db.state == 'stop'", "canvases": [
			{"name": "idle", "duration": 10}
		]},
		{"name": "overheat", "conditional": "db.system_tempc > 85", "coolingperiod": 30, "minimum": 5, "canvases": [
			{"name": "alert", "duration": 5}
		]}
	]
}`

// demoEvent mutates one variable once the demo has run for its offset.
type demoEvent struct {
	after time.Duration
	name  string
	value engine.Value
}

var demoEvents = []demoEvent{
	{10 * time.Second, "name", engine.Text("Belgian Ale")},
	{10 * time.Second, "abv", engine.Text("8.4 ABV")},
	{10 * time.Second, "description", engine.Text("A heavy belgian ale with lots of malt.  IBU 32")},
	{15 * time.Second, "remaining", engine.Text("390 oz remaining")},
	{15 * time.Second, "weight", engine.Int(390)},
	{30 * time.Second, "weight", engine.Int(50)},
	{30 * time.Second, "remaining", engine.Text("50 oz remaining")},
	{45 * time.Second, "system_tempc", engine.Float(91.0)},
	{55 * time.Second, "system_tempc", engine.Float(78.0)},
	{60 * time.Second, "state", engine.Text("stop")},
	{70 * time.Second, "state", engine.Text("play")},
}

// seedDemoVars fills the store with the demo's opening state.
func seedDemoVars(store *engine.VarStore) {
	store.SetText("name", "Rye IPA")
	store.SetText("abv", "7.2 ABV")
	store.SetText("description", "Malty and bitter with an IBU of 68")
	store.SetText("remaining", "423 oz remaining")
	store.SetInt("weight", 423)
	store.SetText("state", "play")
	store.SetFloat("system_tempc", 81.0)
	store.SetText("system_temp_formatted", "81°C")
	store.SetText("time_formatted", "--:--")
}

// demoTick advances the scripted feed: the clock variables track the tick
// time and every due event is applied.
func demoTick(store *engine.VarStore, start, now time.Time) {
	elapsed := now.Sub(start)
	store.SetText("elapsed_formatted", formatElapsed(elapsed))
	store.SetText("time_formatted", now.Format("15:04:05"))

	for _, e := range demoEvents {
		if elapsed >= e.after {
			store.Set(e.name, e.value)
		}
	}
	if v, ok := store.Get("system_tempc"); ok {
		store.SetText("system_temp_formatted", v.String()+"°C")
	}
}

func formatElapsed(d time.Duration) string {
	d = d.Round(time.Second)
	return fmt.Sprintf("%02d:%02d", int(d.Minutes()), int(d.Seconds())%60)
}
