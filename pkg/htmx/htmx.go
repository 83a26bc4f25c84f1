package htmx

import (
	"encoding/json"
	"net/http"
)

const (
	HeaderRequest    = "HX-Request"
	HeaderTarget     = "HX-Target"
	HeaderCurrentURL = "HX-Current-URL"
	HeaderPushURL    = "HX-Push-Url"
	HeaderReplaceURL = "HX-Replace-Url"
	HeaderRedirect   = "HX-Redirect"
	HeaderTrigger    = "HX-Trigger"
)

func IsHxRequest(r *http.Request) bool {
	return r.Header.Get(HeaderRequest) == "true"
}

// Target returns the id of the element htmx will swap.
func Target(r *http.Request) string {
	return r.Header.Get(HeaderTarget)
}

func CurrentUrl(r *http.Request) string {
	return r.Header.Get(HeaderCurrentURL)
}

func PushUrl(w http.ResponseWriter, url string) {
	w.Header().Set(HeaderPushURL, url)
}

func ReplaceUrl(w http.ResponseWriter, url string) {
	w.Header().Set(HeaderReplaceURL, url)
}

func Redirect(w http.ResponseWriter, url string) {
	w.Header().Set(HeaderRedirect, url)
}

// SetTrigger emits a client-side event with a JSON payload.
func SetTrigger(w http.ResponseWriter, event string, payload any) {
	body, err := json.Marshal(map[string]any{event: payload})
	if err != nil {
		return
	}
	w.Header().Set(HeaderTrigger, string(body))
}

func ToastSuccess(w http.ResponseWriter, message string) {
	SetTrigger(w, "toast", map[string]string{"variant": "success", "message": message})
}

func ToastError(w http.ResponseWriter, message string) {
	SetTrigger(w, "toast", map[string]string{"variant": "error", "message": message})
}
