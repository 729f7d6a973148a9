package terminal

import (
	"time"

	"github.com/tinymachines/wopr/pkg/protocol"
)

// TickInterval is the reveal cadence: one character per tick.
const TickInterval = 30 * time.Millisecond

// Typewriter reveals wopr messages one character at a time. At most one
// reveal is in flight; messages arriving mid-reveal queue in arrival
// order so they cannot interleave on screen. Non-wopr kinds pass
// through whole, without animation. Input stays disabled for as long as
// the typewriter is active.
type Typewriter struct {
	Current protocol.Message
	Shown   int
	Active  bool
	Queue   []protocol.Message
}

func NewTypewriter() Typewriter {
	return Typewriter{}
}

// Enqueue hands a message to the typewriter. If idle it starts revealing
// immediately; otherwise the message waits its turn.
func (tw Typewriter) Enqueue(msg protocol.Message) Typewriter {
	if !tw.Active {
		return Typewriter{
			Current: msg,
			Shown:   0,
			Active:  true,
			Queue:   tw.Queue,
		}
	}

	queue := make([]protocol.Message, len(tw.Queue), len(tw.Queue)+1)
	copy(queue, tw.Queue)
	return Typewriter{
		Current: tw.Current,
		Shown:   tw.Shown,
		Active:  true,
		Queue:   append(queue, msg),
	}
}

// Tick advances the reveal by one character. When the current message
// completes it returns the finished message (done=true) and starts on
// the next queued one, staying active until the queue drains.
func (tw Typewriter) Tick() (next Typewriter, finished protocol.Message, done bool) {
	if !tw.Active {
		return tw, protocol.Message{}, false
	}

	runes := []rune(tw.Current.Text)
	shown := tw.Shown + 1
	// Only the machine's lines animate; anything else queued behind a
	// reveal completes on its first tick.
	if tw.Current.IsWopr() && shown < len(runes) {
		return Typewriter{
			Current: tw.Current,
			Shown:   shown,
			Active:  true,
			Queue:   tw.Queue,
		}, protocol.Message{}, false
	}

	// Current message fully revealed.
	finished = tw.Current
	if len(tw.Queue) == 0 {
		return Typewriter{}, finished, true
	}
	return Typewriter{
		Current: tw.Queue[0],
		Shown:   0,
		Active:  true,
		Queue:   tw.Queue[1:],
	}, finished, true
}

// Visible returns the partial text revealed so far.
func (tw Typewriter) Visible() string {
	if !tw.Active {
		return ""
	}
	runes := []rune(tw.Current.Text)
	if tw.Shown > len(runes) {
		return tw.Current.Text
	}
	return string(runes[:tw.Shown])
}

// InputEnabled reports whether the user may submit a command.
func (tw Typewriter) InputEnabled() bool {
	return !tw.Active
}
