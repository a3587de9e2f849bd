package llm

import (
	"context"
	"sync"

	"github.com/phonekart/phonekart-agent/internal/domain"
)

// MockLLM is a scripted provider for tests: it returns Reply, or Err when set,
// and records what it was asked.
type MockLLM struct {
	Reply string
	Err   error

	mu          sync.Mutex
	calls       int
	lastSystem  string
	lastHistory []domain.ConversationTurn
}

func NewMockLLM(reply string) *MockLLM {
	return &MockLLM{Reply: reply}
}

func (m *MockLLM) GenerateReply(
	_ context.Context,
	system string,
	history []domain.ConversationTurn,
	_ string,
) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.calls++
	m.lastSystem = system
	m.lastHistory = history

	if m.Err != nil {
		return "", m.Err
	}
	return m.Reply, nil
}

func (m *MockLLM) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

func (m *MockLLM) LastSystem() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lastSystem
}

func (m *MockLLM) LastHistory() []domain.ConversationTurn {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lastHistory
}
