package assistant

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"infinity8/gateway"
	"infinity8/models"
)

type fakeAgentAPI struct {
	statusErr error
	lastReq   models.ChatRequest
}

func (f *fakeAgentAPI) Chat(ctx context.Context, req models.ChatRequest) (*models.ChatResponse, error) {
	f.lastReq = req
	history := append(req.ConversationHistory,
		models.ChatMessage{Role: "user", Content: req.Message},
		models.ChatMessage{Role: "assistant", Content: "Sure, I can help with that."},
	)
	return &models.ChatResponse{Response: "Sure, I can help with that.", ConversationHistory: history}, nil
}

func (f *fakeAgentAPI) Status(ctx context.Context) (*models.AgentStatus, error) {
	if f.statusErr != nil {
		return nil, f.statusErr
	}
	return &models.AgentStatus{Status: "online", Message: "ready"}, nil
}

// fakeContextStore keeps conversations in a map and counts accesses.
type fakeContextStore struct {
	histories map[string][]models.ChatMessage
	loads     int
	saves     int
}

func newFakeContextStore() *fakeContextStore {
	return &fakeContextStore{histories: make(map[string][]models.ChatMessage)}
}

func (f *fakeContextStore) Load(ctx context.Context, conversationKey string) ([]models.ChatMessage, error) {
	f.loads++
	history, ok := f.histories[conversationKey]
	if !ok {
		return nil, ErrNoContext
	}
	return history, nil
}

func (f *fakeContextStore) Save(ctx context.Context, conversationKey string, history []models.ChatMessage) error {
	f.saves++
	f.histories[conversationKey] = history
	return nil
}

func (f *fakeContextStore) Delete(ctx context.Context, conversationKey string) error {
	delete(f.histories, conversationKey)
	return nil
}

func historyOfLength(n int) []models.ChatMessage {
	history := make([]models.ChatMessage, 0, n)
	for i := 0; i < n; i++ {
		role := "user"
		if i%2 == 1 {
			role = "assistant"
		}
		history = append(history, models.ChatMessage{Role: role, Content: fmt.Sprintf("turn %d", i)})
	}
	return history
}

func TestChatForwardsClientHistoryUnchanged(t *testing.T) {
	api := &fakeAgentAPI{}
	svc := NewService(api, nil)

	req := models.ChatRequest{
		Message: "book me a desk tomorrow",
		ConversationHistory: []models.ChatMessage{
			{Role: "user", Content: "hi"},
			{Role: "assistant", Content: "hello"},
		},
	}
	resp, err := svc.Chat(context.Background(), "user:9", req)
	if err != nil {
		t.Fatalf("Chat failed: %v", err)
	}
	if len(api.lastReq.ConversationHistory) != 2 {
		t.Fatalf("forwarded history = %v", api.lastReq.ConversationHistory)
	}
	if resp.Response == "" {
		t.Fatal("empty assistant response")
	}
}

func TestChatReplaysStoredHistoryWhenClientSendsNone(t *testing.T) {
	api := &fakeAgentAPI{}
	store := newFakeContextStore()
	store.histories["user:9"] = []models.ChatMessage{
		{Role: "user", Content: "hi"},
		{Role: "assistant", Content: "hello"},
	}
	svc := NewService(api, store)

	if _, err := svc.Chat(context.Background(), "user:9", models.ChatRequest{Message: "any desks free?"}); err != nil {
		t.Fatalf("Chat failed: %v", err)
	}
	if len(api.lastReq.ConversationHistory) != 2 || api.lastReq.ConversationHistory[0].Content != "hi" {
		t.Fatalf("forwarded history = %v, want the stored conversation", api.lastReq.ConversationHistory)
	}
}

func TestChatTrimsStoredHistoryToRecentTurns(t *testing.T) {
	api := &fakeAgentAPI{}
	store := newFakeContextStore()
	svc := NewService(api, store)

	req := models.ChatRequest{
		Message:             "one more thing",
		ConversationHistory: historyOfLength(25),
	}
	resp, err := svc.Chat(context.Background(), "user:9", req)
	if err != nil {
		t.Fatalf("Chat failed: %v", err)
	}
	if len(resp.ConversationHistory) != 27 {
		t.Fatalf("response history length = %d", len(resp.ConversationHistory))
	}

	saved := store.histories["user:9"]
	if len(saved) != keepHistoryTurns {
		t.Fatalf("stored history length = %d, want %d", len(saved), keepHistoryTurns)
	}
	// The trim keeps the tail: the last stored turn is the newest one.
	if saved[len(saved)-1].Content != resp.ConversationHistory[len(resp.ConversationHistory)-1].Content {
		t.Fatalf("stored history does not end with the newest turn: %v", saved[len(saved)-1])
	}
	if saved[0].Content == resp.ConversationHistory[0].Content {
		t.Fatal("stored history kept the oldest turn, trim must drop the head")
	}
}

func TestChatWithoutConversationKeyNeverTouchesStore(t *testing.T) {
	api := &fakeAgentAPI{}
	store := newFakeContextStore()
	store.histories[""] = []models.ChatMessage{{Role: "user", Content: "someone else's conversation"}}
	svc := NewService(api, store)

	resp, err := svc.Chat(context.Background(), "", models.ChatRequest{Message: "hello"})
	if err != nil {
		t.Fatalf("Chat failed: %v", err)
	}
	if store.loads != 0 || store.saves != 0 {
		t.Fatalf("keyless chat must not touch the store, loads=%d saves=%d", store.loads, store.saves)
	}
	if len(api.lastReq.ConversationHistory) != 0 {
		t.Fatalf("keyless chat forwarded history %v, must start fresh", api.lastReq.ConversationHistory)
	}
	if resp.Response == "" {
		t.Fatal("empty assistant response")
	}
}

func TestResetWithoutConversationKeyIsNoOp(t *testing.T) {
	store := newFakeContextStore()
	store.histories[""] = []models.ChatMessage{{Role: "user", Content: "x"}}
	svc := NewService(&fakeAgentAPI{}, store)

	if err := svc.Reset(context.Background(), ""); err != nil {
		t.Fatalf("Reset failed: %v", err)
	}
	if _, ok := store.histories[""]; !ok {
		t.Fatal("keyless reset must not delete store entries")
	}
}

func TestStatusDegradesToUnavailableOnTransportFailure(t *testing.T) {
	api := &fakeAgentAPI{statusErr: &gateway.TransportError{Err: errors.New("connection refused")}}
	svc := NewService(api, nil)

	status := svc.Status(context.Background())
	if status.Status != "unavailable" {
		t.Fatalf("status = %s, want unavailable", status.Status)
	}
	if status.Message == "" {
		t.Fatal("unavailable status needs a user-facing message")
	}
}

func TestStatusPassesThroughWhenAgentHealthy(t *testing.T) {
	svc := NewService(&fakeAgentAPI{}, nil)
	status := svc.Status(context.Background())
	if status.Status != "online" {
		t.Fatalf("status = %s", status.Status)
	}
}
