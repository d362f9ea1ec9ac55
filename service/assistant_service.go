package service

import (
	"context"
	"fmt"
	"math/rand"
	"strings"

	"github.com/rs/zerolog"

	"outfit-assistant/models"
	"outfit-assistant/utils"
)

const (
	emptyMessageReply = "Please say or type something."
	errorHTML         = "<b>Error occurred.</b>"
)

var greetingReplies = []string{
	"Hello! I'm your fashion assistant. Tell me about your event and preferences, and I'll suggest outfits.",
	"Hi there! Looking for some outfit ideas? You can tell me your event, location, date, and skin tone.",
}

// Recommendation is the outcome of one outfit request
type Recommendation struct {
	Context models.ChatContext
	Board   models.OutfitBoard
	Reply   string
	HTML    string
	Err     error
}

// AssistantService answers chat messages with outfit suggestions
// Implements AssistantServiceInterface
type AssistantService struct {
	classifier  SeasonClassifierInterface
	geolocation GeolocationServiceInterface
	matcher     OutfitMatcherInterface
	composer    *ResponseComposer
}

// NewAssistantService creates a new AssistantService. geolocation may be nil.
func NewAssistantService(
	classifier SeasonClassifierInterface,
	geolocation GeolocationServiceInterface,
	matcher OutfitMatcherInterface,
	composer *ResponseComposer,
) *AssistantService {
	return &AssistantService{
		classifier:  classifier,
		geolocation: geolocation,
		matcher:     matcher,
		composer:    composer,
	}
}

// Ensure AssistantService implements AssistantServiceInterface
var _ AssistantServiceInterface = (*AssistantService)(nil)

// Recommend resolves city and season for intent, matches outfits and composes the answer.
// It never fails: unexpected errors and panics become an error reply.
func (s *AssistantService) Recommend(ctx context.Context, intent models.ChatIntent, clientIP string) (rec *Recommendation) {
	logger := zerolog.Ctx(ctx)

	defer func() {
		if r := recover(); r != nil {
			err := fmt.Errorf("%v", r)
			logger.Error().Err(err).Msg("❌ Main error")
			rec = errorRecommendation(err)
		}
	}()

	city := strings.TrimSpace(intent.City)
	if city == "" {
		city = LookupCityOrEmpty(ctx, s.geolocation, clientIP)
	}

	season := s.classifier.ClassifyOrDefault(ctx, city, intent.Date)
	chatCtx := models.ChatContext{
		Event:  intent.Event,
		Season: season,
		Gender: intent.Gender,
		Skin:   intent.Skin,
		City:   city,
	}

	matches := s.matcher.FindOutfits(ctx, models.FilterQuery{
		Event:  intent.Event,
		Season: season,
		Gender: intent.Gender,
		Skin:   intent.Skin,
	})

	board, reply := s.composer.Compose(matches, chatCtx)
	html, err := s.composer.RenderHTML(board)
	if err != nil {
		logger.Error().Err(err).Msg("❌ Main error")
		return errorRecommendation(err)
	}

	logger.Info().
		Str("event", chatCtx.Event).
		Str("season", chatCtx.Season).
		Str("city", chatCtx.City).
		Int("outfits", len(board.Blocks)).
		Msg("✓ Outfit recommendation composed")

	return &Recommendation{
		Context: chatCtx,
		Board:   board,
		Reply:   reply,
		HTML:    html,
	}
}

func errorRecommendation(err error) *Recommendation {
	return &Recommendation{
		Reply: fmt.Sprintf("Error in chatbot: %v", err),
		HTML:  errorHTML,
		Err:   err,
	}
}

// Reply answers a raw chat message. Plain greetings get a canned reply with no
// outfits; anything else is parsed and recommended on. Fashion tips are appended last.
func (s *AssistantService) Reply(ctx context.Context, message, clientIP string) models.ChatResponse {
	message = strings.TrimSpace(message)
	if message == "" {
		return models.ChatResponse{Reply: emptyMessageReply}
	}

	var resp models.ChatResponse
	if utils.IsGreeting(message) {
		resp.Reply = greetingReplies[rand.Intn(len(greetingReplies))]
	} else {
		rec := s.Recommend(ctx, utils.ParseUserInput(message), clientIP)
		resp = models.ChatResponse{Reply: rec.Reply, HTML: rec.HTML}
	}

	if tips := utils.FashionTips(message); tips != "" {
		resp.Reply = resp.Reply + "\n" + tips
	}

	return resp
}
