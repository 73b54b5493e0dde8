package chatbot

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

// stubGenerator records the prompt it was handed and replies with a
// canned answer.
type stubGenerator struct {
	available bool
	reply     string
	err       error
	gotPrompt string
}

func (s *stubGenerator) Generate(_ context.Context, prompt string) (string, error) {
	s.gotPrompt = prompt
	if s.err != nil {
		return "", s.err
	}
	return s.reply, nil
}

func (s *stubGenerator) Available() bool { return s.available }

func newChatService(visitors *fakeVisitorService, gen *stubGenerator) *Service {
	return NewService(NewDispatcher(visitors, testParking), gen)
}

func TestRespond_TemplatedIntentsNeedNoModel(t *testing.T) {
	// No credential configured: templated intents still answer.
	svc := newChatService(&fakeVisitorService{}, &stubGenerator{available: false})
	ctx := context.Background()

	assert.Equal(t, greetingReply, svc.Respond(ctx, "hello"))
	assert.Equal(t, helpReply, svc.Respond(ctx, "help"))
	assert.Equal(t, howToSearchReply, svc.Respond(ctx, "how can I search for a visitor?"))
	assert.Equal(t, howToUnitReply, svc.Respond(ctx, "how do I view visitors by unit?"))
	assert.Equal(t, howToGeneralReply, svc.Respond(ctx, "how do I use this?"))
}

func TestRespond_MissingParameters(t *testing.T) {
	svc := newChatService(&fakeVisitorService{}, &stubGenerator{available: true})
	ctx := context.Background()

	assert.Equal(t, searchParamMissingReply, svc.Respond(ctx, "search for the visitor"))
	assert.Equal(t, unitParamMissingReply, svc.Respond(ctx, "visitors for the unit"))
}

func TestRespond_UnavailableModelDegrades(t *testing.T) {
	svc := newChatService(
		&fakeVisitorService{stats: statsOf(3, 2, 102)},
		&stubGenerator{available: false},
	)

	out := svc.Respond(context.Background(), "how many visitors are parked?")
	assert.Equal(t, unavailableReply, out)
}

func TestRespond_FeedsToolContextToModel(t *testing.T) {
	gen := &stubGenerator{available: true, reply: "There are three visitors parked."}
	svc := newChatService(&fakeVisitorService{stats: statsOf(3, 2, 102)}, gen)

	out := svc.Respond(context.Background(), "how many visitors are parked?")
	assert.Equal(t, "There are three visitors parked.", out)

	// The prompt carries both the rendered data and the raw question.
	assert.Contains(t, gen.gotPrompt, "Active visitors: 3")
	assert.Contains(t, gen.gotPrompt, "how many visitors are parked?")
	assert.Contains(t, gen.gotPrompt, "never truncate")
}

func TestRespond_DispatchFailureApologizes(t *testing.T) {
	svc := newChatService(
		&fakeVisitorService{statsErr: errors.New("connection refused")},
		&stubGenerator{available: true},
	)

	out := svc.Respond(context.Background(), "how many visitors are parked?")
	assert.Equal(t, apologeticReply, out)
}

func TestRespond_GenerateFailureApologizes(t *testing.T) {
	svc := newChatService(
		&fakeVisitorService{stats: statsOf(3, 2, 102)},
		&stubGenerator{available: true, err: errors.New("timeout")},
	)

	out := svc.Respond(context.Background(), "how many visitors are parked?")
	assert.Equal(t, apologeticReply, out)
}
