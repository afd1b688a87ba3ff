package event

import (
	"log/slog"
	"sync"

	"github.com/abadojack/whatlanggo"
)

// LanguageHandler detects the language users write their prompts in.
// Only the language code is kept, the prompt itself is dropped with the event.
type LanguageHandler struct {
	log       *slog.Logger
	mu        sync.Mutex
	languages map[string]int
}

func NewLanguageHandler(log *slog.Logger) *LanguageHandler {
	return &LanguageHandler{log: log, languages: make(map[string]int)}
}

func (h *LanguageHandler) Handle(e Event) {
	var requestID, prompt string
	switch payload := e.Payload.(type) {
	case ConversationStarted:
		requestID, prompt = payload.RequestID, payload.Prompt
	case FollowUpAnswered:
		requestID, prompt = payload.RequestID, payload.Prompt
	default:
		return
	}

	lang := DetectLanguage(prompt)
	h.mu.Lock()
	h.languages[lang]++
	h.mu.Unlock()

	h.log.Debug("telemetry: prompt language", "request_id", requestID, "lang", lang)
}

// Languages returns how many prompts were seen per language code.
func (h *LanguageHandler) Languages() map[string]int {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make(map[string]int, len(h.languages))
	for k, v := range h.languages {
		out[k] = v
	}
	return out
}

// DetectLanguage returns the ISO 639-1 code of the text, or "und" when detection is unreliable.
func DetectLanguage(text string) string {
	info := whatlanggo.Detect(text)
	if !info.IsReliable() {
		return "und"
	}
	return info.Lang.Iso6391()
}
