package system

import (
	"go-ant-colony/internal/component"
	"go-ant-colony/internal/defs"
	"go-ant-colony/internal/entity"
	"go-ant-colony/internal/event"
	"go-ant-colony/internal/utils"
)

// newTestWorld returns a world whose random source makes every chance roll
// fail unless draws are scripted.
func newTestWorld() (*entity.World, *utils.ScriptedSource) {
	src := utils.NewScriptedSource()
	return entity.NewWorld(src), src
}

// recorder collects every dispatched event of the given types.
type recorder struct {
	events []event.Event
}

func (r *recorder) OnEvent(e event.Event) {
	r.events = append(r.events, e)
}

func (r *recorder) count(t event.EventType) int {
	n := 0
	for _, e := range r.events {
		if e.Type == t {
			n++
		}
	}
	return n
}

func newRecordingDispatcher(types ...event.EventType) (*event.Dispatcher, *recorder) {
	d := event.NewDispatcher()
	r := &recorder{}
	for _, t := range types {
		d.Subscribe(t, r)
	}
	return d, r
}

func addEnemy(w *entity.World, r defs.Rarity, x, y float64) *component.Enemy {
	e := component.NewEnemy(w.NewEntity(), r, x, y)
	w.Enemies = append(w.Enemies, e)
	return e
}
