package chat

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	leadRepo "framelight/database/repository/lead"
	"framelight/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memMessageStore is an in-memory MessageRepository for orchestrator tests.
type memMessageStore struct {
	mu         sync.Mutex
	messages   map[string][]models.Message
	seq        int
	failAppend bool
	failList   bool
}

func newMemMessageStore() *memMessageStore {
	return &memMessageStore{messages: make(map[string][]models.Message)}
}

func (s *memMessageStore) Append(_ context.Context, sessionID, role, content string) (*models.Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failAppend {
		return nil, errors.New("datastore unreachable")
	}
	s.seq++
	msg := models.Message{
		ID:        fmt.Sprintf("m%d", s.seq),
		SessionID: sessionID,
		Role:      role,
		Content:   content,
		CreatedAt: time.Now().UTC(),
	}
	s.messages[sessionID] = append(s.messages[sessionID], msg)
	return &msg, nil
}

func (s *memMessageStore) ListBySession(_ context.Context, sessionID string) ([]models.Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failList {
		return nil, errors.New("datastore unreachable")
	}
	out := make([]models.Message, len(s.messages[sessionID]))
	copy(out, s.messages[sessionID])
	return out, nil
}

// memLeadStore mirrors the Mongo lead store's merge semantics in memory,
// including its single-record-per-session guarantee.
type memLeadStore struct {
	mu    sync.Mutex
	leads map[string]*models.Lead
	fail  bool
}

func newMemLeadStore() *memLeadStore {
	return &memLeadStore{leads: make(map[string]*models.Lead)}
}

func (s *memLeadStore) FindBySession(_ context.Context, sessionID string) (*models.Lead, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if lead, ok := s.leads[sessionID]; ok {
		copied := *lead
		return &copied, nil
	}
	return nil, nil
}

func (s *memLeadStore) Upsert(_ context.Context, sessionID string, fields models.LeadFields) (*models.Lead, models.LeadEvent, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fail {
		return nil, models.LeadUnchanged, errors.New("datastore unreachable")
	}

	existing := s.leads[sessionID]
	changes := leadRepo.FieldChanges(existing, fields)
	if len(changes) == 0 {
		if existing == nil {
			return nil, models.LeadUnchanged, nil
		}
		copied := *existing
		return &copied, models.LeadUnchanged, nil
	}

	now := time.Now().UTC()
	if existing == nil {
		lead := &models.Lead{SessionID: sessionID, Status: models.LeadStatusNew, CreatedAt: now, UpdatedAt: now}
		leadRepo.ApplyChanges(lead, changes)
		s.leads[sessionID] = lead
		copied := *lead
		return &copied, models.LeadCreated, nil
	}

	leadRepo.ApplyChanges(existing, changes)
	existing.Status = models.LeadStatusUpdated
	existing.UpdatedAt = now
	copied := *existing
	return &copied, models.LeadUpdated, nil
}

func (s *memLeadStore) List(_ context.Context) ([]models.Lead, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []models.Lead{}
	for _, lead := range s.leads {
		out = append(out, *lead)
	}
	return out, nil
}

type fakeResponder struct {
	reply string
	err   error
}

func (f *fakeResponder) Reply(_ context.Context, _ []models.Message) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return f.reply, nil
}

type recordingNotifier struct {
	mu     sync.Mutex
	events []models.LeadEvent
}

func (n *recordingNotifier) LeadCaptured(_ context.Context, _ models.Lead, event models.LeadEvent) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.events = append(n.events, event)
}

func newTestService(messages *memMessageStore, leads *memLeadStore, responder *fakeResponder, notifier LeadNotifier) *DefaultChatService {
	return &DefaultChatService{
		Messages:  messages,
		Leads:     leads,
		Responder: responder,
		Extractor: NewLeadExtractor(),
		Notifier:  notifier,
	}
}

func TestHandleTurnCreatesThenUpdatesLead(t *testing.T) {
	ctx := context.Background()
	messages := newMemMessageStore()
	leads := newMemLeadStore()
	notifier := &recordingNotifier{}
	svc := newTestService(messages, leads, &fakeResponder{reply: "Wonderful, tell me more!"}, notifier)

	out, err := svc.HandleTurn(ctx, models.ChatRequest{
		SessionID: "s1",
		Message:   "My email is a@b.com and I want a wedding shoot",
	})
	require.NoError(t, err)
	assert.Equal(t, "Wonderful, tell me more!", out.Response)
	assert.Equal(t, models.LeadCreated, out.LeadEvent)

	out, err = svc.HandleTurn(ctx, models.ChatRequest{
		SessionID: "s1",
		Message:   "also call me at 555-1234",
	})
	require.NoError(t, err)
	assert.Equal(t, models.LeadUpdated, out.LeadEvent)

	lead, err := leads.FindBySession(ctx, "s1")
	require.NoError(t, err)
	require.NotNil(t, lead)
	assert.Equal(t, "a@b.com", lead.Email)
	assert.Equal(t, "5551234", lead.Phone)
	assert.Equal(t, "wedding", lead.ShootType)

	history, err := svc.History(ctx, "s1")
	require.NoError(t, err)
	require.Len(t, history, 4)
	wantRoles := []string{models.RoleUser, models.RoleAssistant, models.RoleUser, models.RoleAssistant}
	for i, msg := range history {
		assert.Equal(t, wantRoles[i], msg.Role)
	}

	assert.Equal(t, []models.LeadEvent{models.LeadCreated, models.LeadUpdated}, notifier.events)
}

func TestHandleTurnNoSignalLeavesLeadUntouched(t *testing.T) {
	ctx := context.Background()
	leads := newMemLeadStore()
	svc := newTestService(newMemMessageStore(), leads, &fakeResponder{reply: "We open at nine."}, nil)

	out, err := svc.HandleTurn(ctx, models.ChatRequest{SessionID: "s1", Message: "What time do you open?"})
	require.NoError(t, err)
	assert.Equal(t, models.LeadUnchanged, out.LeadEvent)

	lead, err := leads.FindBySession(ctx, "s1")
	require.NoError(t, err)
	assert.Nil(t, lead)
}

func TestHandleTurnIdenticalFieldsUnchanged(t *testing.T) {
	ctx := context.Background()
	messages := newMemMessageStore()
	leads := newMemLeadStore()
	svc := newTestService(messages, leads, &fakeResponder{reply: "Got it."}, nil)

	out, err := svc.HandleTurn(ctx, models.ChatRequest{SessionID: "s1", Message: "email me at a@b.com"})
	require.NoError(t, err)
	assert.Equal(t, models.LeadCreated, out.LeadEvent)

	out, err = svc.HandleTurn(ctx, models.ChatRequest{SessionID: "s1", Message: "again, it's a@b.com"})
	require.NoError(t, err)
	assert.Equal(t, models.LeadUnchanged, out.LeadEvent)
}

func TestHandleTurnValidation(t *testing.T) {
	ctx := context.Background()
	messages := newMemMessageStore()
	svc := newTestService(messages, newMemLeadStore(), &fakeResponder{reply: "hi"}, nil)

	_, err := svc.HandleTurn(ctx, models.ChatRequest{Message: "hi"})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)

	_, err = svc.HandleTurn(ctx, models.ChatRequest{SessionID: "s1", Message: "   "})
	require.ErrorAs(t, err, &verr)

	// Nothing was persisted for either rejected request.
	history, err := messages.ListBySession(ctx, "s1")
	require.NoError(t, err)
	assert.Empty(t, history)
}

func TestHandleTurnResponderFailureKeepsUserMessage(t *testing.T) {
	ctx := context.Background()
	messages := newMemMessageStore()
	svc := newTestService(messages, newMemLeadStore(), &fakeResponder{err: errors.New("model overloaded")}, nil)

	_, err := svc.HandleTurn(ctx, models.ChatRequest{SessionID: "s1", Message: "hello there"})
	var uerr *UpstreamError
	require.ErrorAs(t, err, &uerr)

	// No rollback: the user's message stays in the log and the next turn
	// rebuilds context from it.
	history, err := messages.ListBySession(ctx, "s1")
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, models.RoleUser, history[0].Role)
}

func TestHandleTurnStorageFailure(t *testing.T) {
	ctx := context.Background()
	messages := newMemMessageStore()
	messages.failAppend = true
	svc := newTestService(messages, newMemLeadStore(), &fakeResponder{reply: "hi"}, nil)

	_, err := svc.HandleTurn(ctx, models.ChatRequest{SessionID: "s1", Message: "hello"})
	var serr *StorageError
	require.ErrorAs(t, err, &serr)
}

func TestConcurrentUpsertsProduceSingleLead(t *testing.T) {
	ctx := context.Background()
	leads := newMemLeadStore()

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		_, _, err := leads.Upsert(ctx, "s1", models.LeadFields{Name: "X"})
		assert.NoError(t, err)
	}()
	go func() {
		defer wg.Done()
		_, _, err := leads.Upsert(ctx, "s1", models.LeadFields{Phone: "5551234"})
		assert.NoError(t, err)
	}()
	wg.Wait()

	all, err := leads.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.True(t, all[0].Name == "X" || all[0].Phone == "5551234")
}
