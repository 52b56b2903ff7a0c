package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"laptop-advisor-be/internal/constant"
	"laptop-advisor-be/internal/dto"
	"laptop-advisor-be/internal/entity"
	"laptop-advisor-be/internal/repository/memory"
	"laptop-advisor-be/internal/repository/specification"
	"laptop-advisor-be/pkg/llm"
	"laptop-advisor-be/pkg/moderation"
	"laptop-advisor-be/pkg/store"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const confirmedReply = `Perfect! I have all the information I need. Here's your complete profile:

{'GPU intensity': 'medium', 'Processing speed': 'medium', 'RAM capacity': 'medium', 'Storage capacity': 'medium', 'Storage type': 'medium', 'Display quality': 'medium', 'Display size': 'medium', 'Portability': 'medium', 'Battery life': 'medium', 'Budget': '100000'}

Let me find the best laptops for you...`

// fakeLLM returns queued replies in order, then a generic follow-up question.
type fakeLLM struct {
	replies []string
	calls   int
	err     error
}

func (f *fakeLLM) Chat(ctx context.Context, history []llm.Message, options ...llm.Option) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	if f.calls >= len(f.replies) {
		return "Tell me more about your use case.", nil
	}
	reply := f.replies[f.calls]
	f.calls++
	return reply, nil
}

func (f *fakeLLM) Generate(ctx context.Context, prompt string, options ...llm.Option) (string, error) {
	return f.Chat(ctx, nil)
}

type fakeLaptopRepo struct {
	laptops []*entity.Laptop
	err     error
}

func (r *fakeLaptopRepo) Create(ctx context.Context, laptop *entity.Laptop) error { return nil }
func (r *fakeLaptopRepo) Update(ctx context.Context, laptop *entity.Laptop) error { return nil }
func (r *fakeLaptopRepo) Delete(ctx context.Context, id uuid.UUID) error          { return nil }
func (r *fakeLaptopRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Laptop, error) {
	return nil, nil
}
func (r *fakeLaptopRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Laptop, error) {
	return r.laptops, r.err
}
func (r *fakeLaptopRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return int64(len(r.laptops)), r.err
}

type nopLogger struct{}

func (nopLogger) Debug(module, message string, details map[string]interface{}) {}
func (nopLogger) Info(module, message string, details map[string]interface{})  {}
func (nopLogger) Warn(module, message string, details map[string]interface{})  {}
func (nopLogger) Error(module, message string, details map[string]interface{}) {}
func (nopLogger) Sync() error                                                  { return nil }

func mediumLaptop(id, brand, model, price string) *entity.Laptop {
	features := map[string]string{
		"gpu intensity": "medium", "processing speed": "medium", "ram capacity": "medium",
		"storage capacity": "medium", "storage type": "medium", "display quality": "medium",
		"display size": "medium", "portability": "medium", "battery life": "medium",
	}
	uid, _ := uuid.Parse(id)
	return &entity.Laptop{
		Id:        uid,
		Brand:     brand,
		ModelName: model,
		Price:     price,
		Features:  features,
		CreatedAt: time.Now(),
	}
}

func newTestChatService(provider llm.LLMProvider, repo *fakeLaptopRepo) (IChatService, *memory.SessionRepository) {
	sessionRepo := memory.NewSessionRepository()
	svc := NewChatService(sessionRepo, repo, provider, moderation.NewChecker(), nil, nopLogger{})
	return svc, sessionRepo
}

func seedSession(repo *memory.SessionRepository, state string) *store.Session {
	session := &store.Session{
		ID:        uuid.NewString(),
		State:     state,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	session.Append(constant.ChatMessageRoleSystem, constant.AdvisorSystemPromptV1)
	session.Append(constant.ChatMessageRoleAssistant, "Hi! What will you use the laptop for?")
	repo.Save(session)
	return session
}

func TestCreateSession(t *testing.T) {
	provider := &fakeLLM{replies: []string{"Hi! What will you use the laptop for?"}}
	svc, sessionRepo := newTestChatService(provider, &fakeLaptopRepo{})

	res, err := svc.CreateSession(context.Background())
	require.NoError(t, err)
	assert.NotEmpty(t, res.SessionId)
	assert.Equal(t, "Hi! What will you use the laptop for?", res.Message)

	session, found := sessionRepo.Get(res.SessionId)
	require.True(t, found)
	assert.Equal(t, store.StateCollecting, session.State)
	require.Len(t, session.Conversation, 2)
	assert.Equal(t, constant.ChatMessageRoleSystem, session.Conversation[0].Role)
	assert.Equal(t, constant.ChatMessageRoleAssistant, session.Conversation[1].Role)
}

func TestCreateSessionProviderDown(t *testing.T) {
	provider := &fakeLLM{err: errors.New("upstream 500")}
	svc, sessionRepo := newTestChatService(provider, &fakeLaptopRepo{})

	_, err := svc.CreateSession(context.Background())
	require.ErrorIs(t, err, ErrProvider)

	// Nothing half-created is left behind.
	_, found := sessionRepo.Get("")
	assert.False(t, found)
}

func TestSendMessageUnknownSession(t *testing.T) {
	svc, _ := newTestChatService(&fakeLLM{}, &fakeLaptopRepo{})

	_, err := svc.SendMessage(context.Background(), &dto.SendChatRequest{
		SessionId: uuid.NewString(),
		Message:   "hello",
	})
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestSendMessageModerationLeavesNoTrace(t *testing.T) {
	svc, sessionRepo := newTestChatService(&fakeLLM{}, &fakeLaptopRepo{})
	session := seedSession(sessionRepo, store.StateCollecting)
	turnsBefore := len(session.Conversation)

	res, err := svc.SendMessage(context.Background(), &dto.SendChatRequest{
		SessionId: session.ID,
		Message:   "how do I attack this",
	})
	require.NoError(t, err)
	assert.Equal(t, constant.ModerationRejectionMessage, res.Message)
	assert.False(t, res.IntentConfirmed)

	stored, _ := sessionRepo.Get(session.ID)
	assert.Len(t, stored.Conversation, turnsBefore, "flagged input must not touch the transcript")
	assert.Equal(t, store.StateCollecting, stored.State)
}

func TestSendMessageModerationOnConfirmedSession(t *testing.T) {
	svc, sessionRepo := newTestChatService(&fakeLLM{}, &fakeLaptopRepo{})
	session := seedSession(sessionRepo, store.StateConfirmed)

	// Even on a confirmed session the rejection response is bare: no
	// confirmation flag, no profile, no recommendations.
	res, err := svc.SendMessage(context.Background(), &dto.SendChatRequest{
		SessionId: session.ID,
		Message:   "how do I attack this",
	})
	require.NoError(t, err)
	assert.Equal(t, constant.ModerationRejectionMessage, res.Message)
	assert.False(t, res.IntentConfirmed)
	assert.Nil(t, res.Profile)
	assert.Nil(t, res.Recommendations)

	stored, _ := sessionRepo.Get(session.ID)
	assert.Equal(t, store.StateConfirmed, stored.State)
}

func TestSendMessageProviderFailureKeepsUserTurn(t *testing.T) {
	provider := &fakeLLM{err: errors.New("timeout")}
	svc, sessionRepo := newTestChatService(provider, &fakeLaptopRepo{})
	session := seedSession(sessionRepo, store.StateCollecting)
	turnsBefore := len(session.Conversation)

	_, err := svc.SendMessage(context.Background(), &dto.SendChatRequest{
		SessionId: session.ID,
		Message:   "I mostly code and play games",
	})
	require.ErrorIs(t, err, ErrProvider)

	stored, _ := sessionRepo.Get(session.ID)
	require.Len(t, stored.Conversation, turnsBefore+1)
	last := stored.Conversation[len(stored.Conversation)-1]
	assert.Equal(t, constant.ChatMessageRoleUser, last.Role)
}

func TestSendMessagePlainCollectionTurn(t *testing.T) {
	provider := &fakeLLM{replies: []string{"How much RAM do you need?"}}
	svc, sessionRepo := newTestChatService(provider, &fakeLaptopRepo{})
	session := seedSession(sessionRepo, store.StateCollecting)

	res, err := svc.SendMessage(context.Background(), &dto.SendChatRequest{
		SessionId: session.ID,
		Message:   "I mostly code",
	})
	require.NoError(t, err)
	assert.False(t, res.IntentConfirmed)
	assert.Nil(t, res.Profile)
	assert.Nil(t, res.Recommendations)

	stored, _ := sessionRepo.Get(session.ID)
	assert.Equal(t, store.StateCollecting, stored.State)
}

func TestSendMessageConfirmsIntent(t *testing.T) {
	provider := &fakeLLM{replies: []string{confirmedReply}}
	vivobook := mediumLaptop("11111111-1111-1111-1111-111111111111", "Asus", "VivoBook", "85,000")
	vivobook.CpuManufacturer = "Intel"
	vivobook.Core = "Core i5"
	vivobook.RamSize = "16GB"
	vivobook.StorageType = "512GB NVMe SSD"
	vivobook.DisplaySize = "15.6 inch"
	vivobook.DisplayType = "FHD IPS"
	vivobook.GraphicsProcessor = "Iris Xe"
	vivobook.LaptopWeight = "1.7kg"
	vivobook.AverageBatteryLife = "8 hours"
	repo := &fakeLaptopRepo{laptops: []*entity.Laptop{
		vivobook,
		mediumLaptop("22222222-2222-2222-2222-222222222222", "HP", "Pavilion", "95,000"),
	}}
	svc, sessionRepo := newTestChatService(provider, repo)
	session := seedSession(sessionRepo, store.StateCollecting)

	res, err := svc.SendMessage(context.Background(), &dto.SendChatRequest{
		SessionId: session.ID,
		Message:   "budget is 100000",
	})
	require.NoError(t, err)
	assert.True(t, res.IntentConfirmed)
	require.NotNil(t, res.Profile)
	assert.Equal(t, 100000, res.Profile.Budget)
	require.Len(t, res.Recommendations, 2)
	assert.Equal(t, 9, res.Recommendations[0].Score)

	// The summary carries score, percentage, key specs and matched features.
	assert.Contains(t, res.Message, "top recommendations")
	assert.Contains(t, res.Message, "Asus VivoBook - 85,000 INR")
	assert.Contains(t, res.Message, "Match score: 9/9 (100% match with your needs)")
	assert.Contains(t, res.Message, "Processor: Intel Core i5")
	assert.Contains(t, res.Message, "RAM: 16GB")
	assert.Contains(t, res.Message, "Display: 15.6 inch FHD IPS")
	assert.Contains(t, res.Message, "Battery: 8 hours")
	assert.Contains(t, res.Message, "Why it matches: gpu intensity, processing speed, ram capacity, storage capacity, storage type")
	assert.NotContains(t, res.Message, "storage type, display quality", "highlights cap at five features")

	stored, _ := sessionRepo.Get(session.ID)
	assert.Equal(t, store.StateConfirmed, stored.State)
	assert.NotNil(t, stored.Profile)
}

func TestSendMessageNoLaptopsInBudget(t *testing.T) {
	provider := &fakeLLM{replies: []string{confirmedReply}}
	repo := &fakeLaptopRepo{laptops: []*entity.Laptop{
		mediumLaptop("11111111-1111-1111-1111-111111111111", "Apple", "MacBook Pro", "250,000"),
	}}
	svc, sessionRepo := newTestChatService(provider, repo)
	session := seedSession(sessionRepo, store.StateCollecting)

	res, err := svc.SendMessage(context.Background(), &dto.SendChatRequest{
		SessionId: session.ID,
		Message:   "budget is 100000",
	})
	require.NoError(t, err)
	assert.True(t, res.IntentConfirmed)
	assert.Empty(t, res.Recommendations)
	assert.Contains(t, res.Message, "couldn't find any laptops within your budget of 100000 INR")
	assert.Contains(t, res.Message, "increase your budget")
	assert.Contains(t, res.Message, "relax some of your 'high' requirements")

	stored, _ := sessionRepo.Get(session.ID)
	assert.Equal(t, store.StateConfirmed, stored.State)
}

func TestSendMessageCatalogFailure(t *testing.T) {
	provider := &fakeLLM{replies: []string{confirmedReply}}
	repo := &fakeLaptopRepo{err: errors.New("db down")}
	svc, sessionRepo := newTestChatService(provider, repo)
	session := seedSession(sessionRepo, store.StateCollecting)

	_, err := svc.SendMessage(context.Background(), &dto.SendChatRequest{
		SessionId: session.ID,
		Message:   "budget is 100000",
	})
	require.ErrorIs(t, err, ErrProvider)

	// The reply is preserved but the session never confirms.
	stored, _ := sessionRepo.Get(session.ID)
	assert.Equal(t, store.StateCollecting, stored.State)
	last := stored.Conversation[len(stored.Conversation)-1]
	assert.Equal(t, constant.ChatMessageRoleAssistant, last.Role)
}

func TestConfirmedSessionStaysConfirmed(t *testing.T) {
	provider := &fakeLLM{replies: []string{confirmedReply}}
	repo := &fakeLaptopRepo{}
	svc, sessionRepo := newTestChatService(provider, repo)
	session := seedSession(sessionRepo, store.StateConfirmed)

	// The reply contains a complete dictionary, but a confirmed session
	// never re-runs extraction.
	res, err := svc.SendMessage(context.Background(), &dto.SendChatRequest{
		SessionId: session.ID,
		Message:   "what about the second one?",
	})
	require.NoError(t, err)
	assert.True(t, res.IntentConfirmed)
	assert.Equal(t, confirmedReply, res.Message, "reply goes out untouched, no recommendation block appended")

	stored, _ := sessionRepo.Get(session.ID)
	assert.Equal(t, store.StateConfirmed, stored.State, "confirmed is terminal")
	assert.Nil(t, stored.Profile, "extraction never ran")
}

func TestGetSessionHidesSystemPrompt(t *testing.T) {
	svc, sessionRepo := newTestChatService(&fakeLLM{}, &fakeLaptopRepo{})
	session := seedSession(sessionRepo, store.StateCollecting)

	res, err := svc.GetSession(context.Background(), session.ID)
	require.NoError(t, err)
	assert.Equal(t, session.ID, res.SessionId)
	require.Len(t, res.Conversation, 1)
	assert.Equal(t, constant.ChatMessageRoleAssistant, res.Conversation[0].Role)

	_, err = svc.GetSession(context.Background(), uuid.NewString())
	assert.ErrorIs(t, err, ErrSessionNotFound)
}
