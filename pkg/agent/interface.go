package agent

import "context"

// IAgent is the analysis agent that extracts planning data from a document
// and advises on it. Implementations are safe for concurrent use.
type IAgent interface {
	// Run submits a document and returns the normalized response.
	Run(ctx context.Context, req RunRequest) (*Result, error)
}

// New creates an agent client with the given configuration.
func New(cfg Config) (IAgent, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return newAgentImpl(cfg), nil
}
