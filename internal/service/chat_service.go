package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"laptop-advisor-be/internal/constant"
	"laptop-advisor-be/internal/dto"
	"laptop-advisor-be/internal/entity"
	"laptop-advisor-be/internal/mapper"
	"laptop-advisor-be/internal/repository/contract"
	"laptop-advisor-be/internal/repository/memory"
	"laptop-advisor-be/pkg/events"
	"laptop-advisor-be/pkg/llm"
	"laptop-advisor-be/pkg/moderation"
	pktNats "laptop-advisor-be/pkg/nats"
	"laptop-advisor-be/pkg/recommend"
	"laptop-advisor-be/pkg/store"

	"laptop-advisor-be/internal/pkg/logger"

	"github.com/google/uuid"
)

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrLaptopNotFound  = errors.New("laptop not found")
	ErrProvider        = errors.New("llm provider unavailable")
)

type IChatService interface {
	CreateSession(ctx context.Context) (*dto.CreateSessionResponse, error)
	SendMessage(ctx context.Context, req *dto.SendChatRequest) (*dto.SendChatResponse, error)
	GetSession(ctx context.Context, sessionID string) (*dto.GetSessionResponse, error)
}

type chatService struct {
	sessionRepo    *memory.SessionRepository
	laptopRepo     contract.LaptopRepository
	llmProvider    llm.LLMProvider
	moderator      *moderation.Checker
	eventPublisher *pktNats.Publisher
	mapper         *mapper.LaptopMapper
	logger         logger.ILogger
}

func NewChatService(
	sessionRepo *memory.SessionRepository,
	laptopRepo contract.LaptopRepository,
	llmProvider llm.LLMProvider,
	moderator *moderation.Checker,
	eventPublisher *pktNats.Publisher,
	log logger.ILogger,
) IChatService {
	return &chatService{
		sessionRepo:    sessionRepo,
		laptopRepo:     laptopRepo,
		llmProvider:    llmProvider,
		moderator:      moderator,
		eventPublisher: eventPublisher,
		mapper:         mapper.NewLaptopMapper(),
		logger:         log,
	}
}

// CreateSession starts a new advisory conversation. The session only becomes
// visible once the opening assistant message exists, so a provider outage here
// fails the whole call and nothing is stored.
func (c *chatService) CreateSession(ctx context.Context) (*dto.CreateSessionResponse, error) {
	now := time.Now()
	session := &store.Session{
		ID:        uuid.NewString(),
		State:     store.StateCreated,
		CreatedAt: now,
		UpdatedAt: now,
	}
	session.Append(constant.ChatMessageRoleSystem, constant.AdvisorSystemPromptV1)

	greeting, err := c.complete(ctx, session.Conversation)
	if err != nil {
		c.logger.Error("chat", "opening completion failed", map[string]interface{}{
			"session_id": session.ID,
			"error":      err.Error(),
		})
		return nil, ErrProvider
	}

	session.Append(constant.ChatMessageRoleAssistant, greeting)
	session.State = store.StateCollecting
	c.sessionRepo.Save(session)

	c.logger.Info("chat", "session created", map[string]interface{}{
		"session_id": session.ID,
	})

	return &dto.CreateSessionResponse{
		SessionId: session.ID,
		Message:   greeting,
	}, nil
}

// SendMessage runs one conversation turn: moderation gate, LLM completion,
// and, while the session is still collecting, the profile probe that may
// confirm the intent and attach recommendations.
func (c *chatService) SendMessage(ctx context.Context, req *dto.SendChatRequest) (*dto.SendChatResponse, error) {
	mu := c.sessionRepo.Lock(req.SessionId)
	mu.Lock()
	defer mu.Unlock()

	session, found := c.sessionRepo.Get(req.SessionId)
	if !found {
		return nil, ErrSessionNotFound
	}

	// Flagged input leaves no trace: no history mutation, no state change,
	// and the response never carries the confirmation payload.
	if c.moderator.IsFlagged(req.Message) {
		c.logger.Warn("chat", "message flagged by moderation", map[string]interface{}{
			"session_id": session.ID,
		})
		return &dto.SendChatResponse{
			SessionId: session.ID,
			Message:   constant.ModerationRejectionMessage,
		}, nil
	}

	session.Append(constant.ChatMessageRoleUser, req.Message)

	reply, err := c.complete(ctx, session.Conversation)
	if err != nil {
		c.logger.Error("chat", "completion failed", map[string]interface{}{
			"session_id": session.ID,
			"error":      err.Error(),
		})
		// Keep the user turn so a retry continues the conversation.
		c.sessionRepo.Save(session)
		return nil, ErrProvider
	}

	if session.State != store.StateConfirmed && recommend.ProfileReady(reply) {
		confirmedReply, err := c.confirmIntent(ctx, session, reply)
		if err != nil {
			session.Append(constant.ChatMessageRoleAssistant, reply)
			c.sessionRepo.Save(session)
			return nil, err
		}
		reply = confirmedReply
	}

	session.Append(constant.ChatMessageRoleAssistant, reply)
	c.sessionRepo.Save(session)

	return c.buildResponse(session, reply), nil
}

func (c *chatService) GetSession(ctx context.Context, sessionID string) (*dto.GetSessionResponse, error) {
	mu := c.sessionRepo.Lock(sessionID)
	mu.Lock()
	defer mu.Unlock()

	session, found := c.sessionRepo.Get(sessionID)
	if !found {
		return nil, ErrSessionNotFound
	}

	conversation := make([]store.Message, 0, len(session.Conversation))
	for _, msg := range session.Conversation {
		if msg.Role == constant.ChatMessageRoleSystem {
			continue
		}
		conversation = append(conversation, msg)
	}

	return &dto.GetSessionResponse{
		SessionId:       session.ID,
		State:           session.State,
		Conversation:    conversation,
		Profile:         session.Profile,
		Recommendations: session.Recommendations,
		CreatedAt:       session.CreatedAt,
		UpdatedAt:       session.UpdatedAt,
	}, nil
}

// confirmIntent runs after the probe spots a complete flat dictionary in the
// assistant reply. Extraction failure is soft: the session keeps collecting
// and the raw reply goes out untouched.
func (c *chatService) confirmIntent(ctx context.Context, session *store.Session, reply string) (string, error) {
	profile, ok := recommend.ExtractProfile(reply)
	if !ok {
		c.logger.Warn("chat", "probe passed but extraction failed, staying in collection", map[string]interface{}{
			"session_id": session.ID,
		})
		return reply, nil
	}

	laptops, err := c.laptopRepo.FindAll(ctx)
	if err != nil {
		c.logger.Error("chat", "catalog fetch failed", map[string]interface{}{
			"session_id": session.ID,
			"error":      err.Error(),
		})
		return "", ErrProvider
	}

	catalog := make([]recommend.CatalogLaptop, len(laptops))
	byID := make(map[string]*entity.Laptop, len(laptops))
	for i, laptop := range laptops {
		catalog[i] = c.mapper.ToCatalog(laptop)
		byID[laptop.Id.String()] = laptop
	}

	recommendations := recommend.Match(profile, catalog)

	session.Profile = profile
	session.Recommendations = recommendations
	session.State = store.StateConfirmed

	c.publishConfirmed(ctx, session)

	return buildRecommendationReply(reply, profile, recommendations, byID), nil
}

func (c *chatService) publishConfirmed(ctx context.Context, session *store.Session) {
	if c.eventPublisher == nil {
		return
	}
	evt := events.BaseEvent{
		Type: "RECOMMENDATION_CONFIRMED",
		Data: map[string]interface{}{
			"session_id":           session.ID,
			"budget":               session.Profile.Budget,
			"recommendation_count": len(session.Recommendations),
		},
		OccurredAt: time.Now(),
	}
	if err := c.eventPublisher.Publish(ctx, evt); err != nil {
		c.logger.Warn("chat", "failed to publish RECOMMENDATION_CONFIRMED event", map[string]interface{}{
			"session_id": session.ID,
			"error":      err.Error(),
		})
	}
}

func (c *chatService) complete(ctx context.Context, conversation []store.Message) (string, error) {
	history := make([]llm.Message, len(conversation))
	for i, msg := range conversation {
		history[i] = llm.Message{Role: msg.Role, Content: msg.Content}
	}
	return c.llmProvider.Chat(ctx, history,
		llm.WithTemperature(0.1),
		llm.WithMaxTokens(3000),
	)
}

func (c *chatService) buildResponse(session *store.Session, message string) *dto.SendChatResponse {
	res := &dto.SendChatResponse{
		SessionId:       session.ID,
		Message:         message,
		IntentConfirmed: session.State == store.StateConfirmed,
	}
	if res.IntentConfirmed {
		res.Profile = session.Profile
		res.Recommendations = session.Recommendations
	}
	return res
}

// buildRecommendationReply appends the ranked picks (or the no-match notice)
// to the assistant's confirmation message. Each pick carries its match
// percentage, the key specs from the catalog row, and the features it
// satisfies, so the summary stands on its own without the detail cards.
func buildRecommendationReply(reply string, profile *recommend.Profile, recommendations []recommend.ScoredLaptop, byID map[string]*entity.Laptop) string {
	var b strings.Builder
	b.WriteString(reply)
	b.WriteString("\n\n")

	if len(recommendations) == 0 {
		fmt.Fprintf(&b, "Unfortunately, I couldn't find any laptops within your budget of %d INR.", profile.Budget)
		b.WriteString(" You may want to increase your budget, or relax some of your 'high' requirements to 'medium' and try again.")
		return b.String()
	}

	b.WriteString("Here are my top recommendations for you:\n")
	for i, rec := range recommendations {
		percentage := rec.Score * 100 / 9
		fmt.Fprintf(&b, "\n%d. %s %s - %s INR\n", i+1, rec.Brand, rec.Model, rec.Price)
		fmt.Fprintf(&b, "   Match score: %d/9 (%d%% match with your needs)\n", rec.Score, percentage)

		if laptop, ok := byID[rec.ID]; ok {
			if specs := keySpecs(laptop); len(specs) > 0 {
				fmt.Fprintf(&b, "   Key specs: %s\n", strings.Join(specs, "; "))
			}
		}

		if matched := satisfiedFeatures(rec); len(matched) > 0 {
			fmt.Fprintf(&b, "   Why it matches: %s\n", strings.Join(matched, ", "))
		}
	}
	b.WriteString("\nLet me know if you'd like more details about any of these!")
	return b.String()
}

func keySpecs(laptop *entity.Laptop) []string {
	var specs []string
	appendSpec := func(label, value string) {
		if value = strings.TrimSpace(value); value != "" {
			specs = append(specs, label+": "+value)
		}
	}
	appendSpec("Processor", strings.TrimSpace(laptop.CpuManufacturer+" "+laptop.Core))
	appendSpec("RAM", laptop.RamSize)
	appendSpec("Storage", laptop.StorageType)
	appendSpec("Display", strings.TrimSpace(laptop.DisplaySize+" "+laptop.DisplayType))
	appendSpec("Graphics", laptop.GraphicsProcessor)
	appendSpec("Weight", laptop.LaptopWeight)
	appendSpec("Battery", laptop.AverageBatteryLife)
	return specs
}

// satisfiedFeatures lists up to five matched features in the canonical key
// order so the summary is deterministic.
func satisfiedFeatures(rec recommend.ScoredLaptop) []string {
	var matched []string
	for _, key := range recommend.FeatureKeys {
		if detail, ok := rec.Details[key]; ok && detail.Satisfied {
			matched = append(matched, key)
			if len(matched) == 5 {
				break
			}
		}
	}
	return matched
}
