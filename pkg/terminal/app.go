package terminal

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/tinymachines/wopr/pkg/logger"
	"github.com/tinymachines/wopr/pkg/protocol"
)

// App is the full-screen terminal front end. It owns the screen, the
// relay socket, and the reveal pipeline, and runs until the user quits.
type App struct {
	screen tcell.Screen
	socket *Socket

	transcript Transcript
	typewriter Typewriter
	input      InputField
	cursor     Cursor

	disconnected bool
}

func NewApp(socket *Socket) *App {
	return &App{
		socket:     socket,
		transcript: NewTranscript(),
		typewriter: NewTypewriter(),
		input:      NewInputField(),
		cursor:     NewCursor(),
	}
}

// Run connects to the relay and drives the event loop until quit.
func (a *App) Run() error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to initialize screen: %w", err)
	}
	a.screen = screen
	defer screen.Fini()

	screen.SetStyle(StyleDefault)
	screen.Clear()

	if err := a.socket.Connect(); err != nil {
		return err
	}
	defer a.socket.Close()

	events := make(chan tcell.Event, 8)
	quit := make(chan struct{})
	go screen.ChannelEvents(events, quit)
	defer close(quit)

	revealTicker := time.NewTicker(TickInterval)
	defer revealTicker.Stop()
	blinkTicker := time.NewTicker(CursorBlinkInterval)
	defer blinkTicker.Stop()

	a.draw()

	messages := a.socket.Messages()
	for {
		select {
		case msg, ok := <-messages:
			if !ok {
				// Nil out the closed channel so the select stops spinning.
				messages = nil
				a.disconnected = true
				a.draw()
				continue
			}
			// Only wopr lines animate. Other kinds render whole, but
			// still queue behind an active reveal to keep receipt order.
			if msg.IsWopr() || a.typewriter.Active {
				a.typewriter = a.typewriter.Enqueue(msg)
			} else {
				a.transcript = a.transcript.Append(msg)
			}
			a.draw()

		case <-revealTicker.C:
			if !a.typewriter.Active {
				continue
			}
			next, finished, done := a.typewriter.Tick()
			a.typewriter = next
			if done {
				a.transcript = a.transcript.Append(finished)
			}
			a.draw()

		case <-blinkTicker.C:
			a.cursor = a.cursor.Toggle()
			a.draw()

		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if a.handleKey(ev) {
					return nil
				}
				a.draw()
			case *tcell.EventResize:
				screen.Sync()
				a.draw()
			}
		}
	}
}

// handleKey processes one keystroke. Returns true when the app should
// exit.
func (a *App) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyCtrlC, tcell.KeyEscape:
		return true

	case tcell.KeyEnter:
		a.submit()

	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if a.inputEnabled() {
			a.input = a.input.DeleteBackward()
		}

	case tcell.KeyRune:
		if a.inputEnabled() {
			a.input = a.input.InsertRune(ev.Rune())
		}
	}
	return false
}

// inputEnabled gates typing: nothing goes in while a reveal is running
// or after the channel has dropped.
func (a *App) inputEnabled() bool {
	return a.typewriter.InputEnabled() && !a.disconnected
}

func (a *App) submit() {
	if !a.inputEnabled() || a.input.IsEmpty() {
		return
	}
	command := a.input.Content
	a.input = a.input.Clear()

	// Echo immediately; the reveal effect is for the machine's side only.
	a.transcript = a.transcript.Append(protocol.NewUserMessage("> " + command))

	if err := a.socket.SendCommand(command); err != nil {
		logger.Error("failed to send command: %v", err)
		a.transcript = a.transcript.Append(protocol.NewErrorMessage("CONNECTION TERMINATED"))
		a.disconnected = true
	}
}

func (a *App) draw() {
	a.screen.Clear()
	width, height := a.screen.Size()
	if width == 0 || height == 0 {
		a.screen.Show()
		return
	}

	// One row reserved for the prompt; the transcript gets the rest,
	// bottom-anchored so the newest lines stay on screen.
	lines := a.transcript.Lines()
	if a.typewriter.Active {
		lines = append(lines, Line{Text: a.typewriter.Visible(), Type: a.typewriter.Current.Type})
	}

	visible := height - 1
	if len(lines) > visible {
		lines = lines[len(lines)-visible:]
	}

	for row, line := range lines {
		a.drawText(0, row, line.Text, StyleFor(line.Type))
	}

	a.drawPrompt(height - 1)
	a.screen.Show()
}

func (a *App) drawPrompt(row int) {
	if a.disconnected {
		return
	}

	col := a.drawText(0, row, "> ", StylePrompt)
	col = a.drawText(col, row, a.input.Content, StyleUserText)
	if a.inputEnabled() {
		a.drawText(col, row, a.cursor.Glyph(), StyleCursor)
	}
}

func (a *App) drawText(x, y int, text string, style tcell.Style) int {
	width, _ := a.screen.Size()
	col := x
	for _, r := range text {
		if col >= width {
			break
		}
		a.screen.SetContent(col, y, r, nil, style)
		col++
	}
	return col
}
