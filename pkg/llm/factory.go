package llm

import (
	"fmt"
	"time"

	"github.com/tinymachines/wopr/pkg/ollama"
	"github.com/tinymachines/wopr/pkg/wopr"
)

// ClientType selects which gateway implementation talks to the model.
type ClientType string

const (
	ClientTypeNative    ClientType = "native"
	ClientTypeLangChain ClientType = "langchain"
)

// ClientConfig holds what the factory needs to build a gateway.
type ClientConfig struct {
	BaseURL    string
	Model      string
	Timeout    time.Duration
	ClientType ClientType
}

// NewGateway builds the configured gateway implementation. The native
// client is the default; the langchain client is kept for parity with
// deployments that already route through it.
func NewGateway(cfg ClientConfig) (wopr.Gateway, error) {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = ollama.DefaultTimeout
	}

	switch cfg.ClientType {
	case ClientTypeNative, "":
		return ollama.NewClientWithTimeout(cfg.BaseURL, cfg.Model, timeout), nil
	case ClientTypeLangChain:
		return NewLangChainGateway(cfg.BaseURL, cfg.Model, timeout)
	default:
		return nil, fmt.Errorf("unknown gateway client type: %q", cfg.ClientType)
	}
}
