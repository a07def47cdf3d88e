package flash

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
)

// CookieName carries queued notices across exactly one redirect.
const CookieName = "mm_flash"

const (
	CategoryNotice  = "notice"
	CategorySuccess = "success"
	CategoryError   = "error"
)

// Message is a one-shot user-facing notice.
type Message struct {
	Category string `json:"category"`
	Text     string `json:"text"`
}

// Add queues a notice for the next rendered page. Existing queued messages
// are preserved so multiple middlewares/handlers can each contribute.
func Add(w http.ResponseWriter, r *http.Request, category, text string) {
	messages := append(peek(r), Message{Category: category, Text: text})
	write(w, messages)
}

// Consume returns all queued messages and clears the queue. Rendering a page
// is the single consumption point; messages never survive a second request.
func Consume(w http.ResponseWriter, r *http.Request) []Message {
	messages := peek(r)
	if len(messages) > 0 {
		clear(w)
	}
	return messages
}

func peek(r *http.Request) []Message {
	cookie, err := r.Cookie(CookieName)
	if err != nil || cookie.Value == "" {
		return nil
	}
	raw, err := base64.URLEncoding.DecodeString(cookie.Value)
	if err != nil {
		return nil
	}
	var messages []Message
	if err := json.Unmarshal(raw, &messages); err != nil {
		return nil
	}
	return messages
}

func write(w http.ResponseWriter, messages []Message) {
	raw, err := json.Marshal(messages)
	if err != nil {
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    base64.URLEncoding.EncodeToString(raw),
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
