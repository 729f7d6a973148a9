package wopr

import (
	"math/rand"
	"strings"
	"time"

	"github.com/tinymachines/wopr/pkg/protocol"
)

// Mode describes what the session should do with a classified command.
type Mode int

const (
	// ModeCanned emits Messages immediately.
	ModeCanned Mode = iota
	// ModeDelayed emits Messages immediately, then Followup after Delay.
	ModeDelayed
	// ModeTerminate emits Messages, then closes the connection after Delay.
	ModeTerminate
	// ModeInference forwards Prompt to the inference gateway.
	ModeInference
)

// Result is the classification of one line of user input.
type Result struct {
	Mode     Mode
	Messages []protocol.Message
	Followup protocol.Message
	Delay    time.Duration
	Prompt   string
}

// Fixed pacing for the two scripted delays. These are part of the
// behavioral contract, not presentation tuning.
const (
	SimulationDelay = 2000 * time.Millisecond
	LogoutDelay     = 1000 * time.Millisecond
)

// Classify maps one line of input to a scripted response or to an
// inference pass-through. Matching happens on the trimmed, lower-cased
// text; the inference prompt keeps the original text untouched.
// Classification is stateless: every command is judged on its own.
func Classify(input string) Result {
	normalized := strings.ToLower(strings.TrimSpace(input))

	switch normalized {
	case "help", "list games":
		return Result{
			Mode:     ModeCanned,
			Messages: []protocol.Message{{Text: helpText, Type: protocol.TypeSystem}},
		}
	case "joshua":
		return Result{
			Mode:     ModeCanned,
			Messages: []protocol.Message{{Text: joshuaText, Type: protocol.TypeWopr}},
		}
	case "status":
		return Result{
			Mode:     ModeCanned,
			Messages: []protocol.Message{{Text: statusText, Type: protocol.TypeSystem}},
		}
	case "run simulation":
		return Result{
			Mode:     ModeDelayed,
			Messages: []protocol.Message{{Text: simulationStartText, Type: protocol.TypeSystem}},
			Followup: protocol.Message{Text: simulationResultText, Type: protocol.TypeWopr},
			Delay:    SimulationDelay,
		}
	case "logout", "exit":
		return Result{
			Mode:     ModeTerminate,
			Messages: []protocol.Message{{Text: farewellText, Type: protocol.TypeSystem}},
			Delay:    LogoutDelay,
		}
	}

	// Substring, not exact: "let's play global thermonuclear war" counts.
	if strings.Contains(normalized, "global thermonuclear war") {
		return Result{
			Mode:     ModeCanned,
			Messages: []protocol.Message{{Text: chessText, Type: protocol.TypeWopr}},
		}
	}

	return Result{
		Mode:   ModeInference,
		Prompt: input,
	}
}

// Fallback returns one of the canned non-answers, chosen uniformly.
func Fallback() string {
	return FallbackResponses[rand.Intn(len(FallbackResponses))]
}
