package chatbot

import (
	"context"

	"github.com/rs/zerolog/log"

	"parking-backend/internal/infrastructure/llm"
)

// Service answers parking questions. It is a stateless value: intent
// classification and dispatch are pure functions of the query, so one
// instance is safely shared across requests.
type Service struct {
	dispatcher *Dispatcher
	generator  llm.Generator
}

func NewService(dispatcher *Dispatcher, generator llm.Generator) *Service {
	return &Service{
		dispatcher: dispatcher,
		generator:  generator,
	}
}

// Respond answers a free-text query. It never returns an error: the chat
// surface has no structured error channel, so every internal failure
// degrades to a user-visible text explanation.
func (s *Service) Respond(ctx context.Context, query string) string {
	intent, param := Classify(query)

	// Templated intents need no data and no model.
	switch intent {
	case IntentGreeting:
		return greetingReply
	case IntentHelp:
		return helpReply
	case IntentHowTo:
		return howToReply(query)
	case IntentSearch:
		if param == "" {
			return searchParamMissingReply
		}
	case IntentUnit:
		if param == "" {
			return unitParamMissingReply
		}
	}

	toolContext, err := s.dispatch(ctx, intent, param)
	if err != nil {
		log.Error().Err(err).Str("intent", string(intent)).Msg("Chat tool dispatch failed")
		return apologeticReply
	}

	if !s.generator.Available() {
		return unavailableReply
	}

	answer, err := s.generator.Generate(ctx, buildPrompt(toolContext, query))
	if err != nil {
		log.Error().Err(err).Str("intent", string(intent)).Msg("Generative call failed")
		return apologeticReply
	}
	return answer
}

func (s *Service) dispatch(ctx context.Context, intent Intent, param string) (string, error) {
	switch intent {
	case IntentStats:
		return s.dispatcher.StatsContext(ctx)
	case IntentSummary:
		return s.dispatcher.SummaryContext(ctx)
	case IntentSearch:
		return s.dispatcher.SearchContext(ctx, param)
	case IntentUnit:
		return s.dispatcher.UnitContext(ctx, param)
	case IntentList:
		return s.dispatcher.ListContext(ctx)
	default:
		// General chit-chat gets a pointer back to what the assistant
		// actually knows about.
		return generalContext, nil
	}
}
