// Package chatbot relays user queries to a chat model and holds the most
// recent reply until it is read.
package chatbot

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"vibewealth/internal/metrics"

	"github.com/sirupsen/logrus"
)

var (
	ErrEmptyQuery     = errors.New("query must not be empty")
	ErrNoPendingReply = errors.New("no pending reply")
	ErrProviderFailed = errors.New("chat provider failed")
)

type Service struct {
	provider Provider
	log      logrus.FieldLogger

	mu      sync.Mutex
	pending string
	ready   bool
}

func NewService(provider Provider, log logrus.FieldLogger) *Service {
	return &Service{provider: provider, log: log}
}

// SendQuery forwards query to the provider and stores the reply as pending,
// replacing any unread reply. It returns the trimmed query.
func (s *Service) SendQuery(ctx context.Context, query string) (string, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		metrics.ChatbotQueries.WithLabelValues("rejected").Inc()
		return "", ErrEmptyQuery
	}
	reply, err := s.provider.Reply(ctx, query)
	if err != nil {
		metrics.ChatbotQueries.WithLabelValues("failed").Inc()
		s.log.WithError(err).Warn("chat provider")
		return "", fmt.Errorf("%w: %w", ErrProviderFailed, err)
	}
	metrics.ChatbotQueries.WithLabelValues("ok").Inc()

	s.mu.Lock()
	s.pending, s.ready = reply, true
	s.mu.Unlock()
	return query, nil
}

// ReadReply returns the pending reply and clears it.
func (s *Service) ReadReply() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.ready {
		return "", ErrNoPendingReply
	}
	reply := s.pending
	s.pending, s.ready = "", false
	return reply, nil
}
