package chat

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/agritech/cropscan-api/internal/llm"
	"github.com/agritech/cropscan-api/internal/logx"
)

const timeoutReply = "[Error] AI took too long to respond."

// Turn is one entry of the caller-supplied conversation history. The service
// holds no session state; the full history is replayed on every request.
type Turn struct {
	Sender string `json:"sender"`
	Text   string `json:"text"`
}

// Orchestrator answers freeform farming questions. With a remote model it
// relays the conversation to Gemini under a timeout; without one it falls back
// to a keyword-matched knowledge base. Reply never fails: every error becomes
// a best-effort response body.
type Orchestrator struct {
	gen     llm.Generator // nil selects the fallback path
	timeout time.Duration
}

func New(gen llm.Generator, timeout time.Duration) *Orchestrator {
	return &Orchestrator{gen: gen, timeout: timeout}
}

// Active reports whether the remote model is configured.
func (o *Orchestrator) Active() bool {
	return o.gen != nil
}

// Reply produces an answer to message in the requested language.
func (o *Orchestrator) Reply(ctx context.Context, message string, history []Turn, lang string) string {
	if lang == "" {
		lang = "en"
	}
	if o.gen == nil {
		return fallbackReply(message, lang)
	}

	turns := make([]llm.Turn, 0, len(history))
	for _, h := range history {
		role := "model"
		if h.Sender == "user" {
			role = "user"
		}
		turns = append(turns, llm.Turn{Role: role, Text: h.Text})
	}

	prompt := fmt.Sprintf("%s\n\nUser Question: %s", systemInstruction(lang), message)

	callCtx, cancel := context.WithTimeout(ctx, o.timeout)
	defer cancel()

	reply, err := o.gen.Chat(callCtx, turns, prompt)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			logx.Warn().Dur("timeout", o.timeout).Msg("chat model timed out")
			return timeoutReply
		}
		logx.Error().Err(err).Msg("chat model call failed")
		return fmt.Sprintf("[Gemini Error] %v", err)
	}
	return reply
}

func systemInstruction(lang string) string {
	return fmt.Sprintf(`You are 'AgriTech bot', a helpful farming expert from Maharashtra/India.
MANDATORY: You MUST respond ONLY in the %s language.
Even if the user asks in English, translate your answer to %s.
Goal: Provide specific, practical advice for crops, soil, pests, and weather.
Keep it professional and concise (max 3 sentences).
Current language set to: %s`, lang, lang, lang)
}
