package event

import "testing"

func TestDispatcher_DeliversInOrderToMatchingType(t *testing.T) {
	d := NewDispatcher()
	var got []string
	d.SubscribeFunc(Message, func(e Event) { got = append(got, "a:"+e.Data.(string)) })
	d.SubscribeFunc(Message, func(e Event) { got = append(got, "b:"+e.Data.(string)) })
	d.SubscribeFunc(LevelUp, func(e Event) { t.Fatal("LevelUp listener received a Message") })

	d.Message("hello")

	if len(got) != 2 || got[0] != "a:hello" || got[1] != "b:hello" {
		t.Fatalf("got %v", got)
	}
}

func TestDispatcher_NilIsNoop(t *testing.T) {
	var d *Dispatcher
	d.Dispatch(Event{Type: Message, Data: "ignored"})
}
