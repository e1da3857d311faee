package httpapi

import (
	"net/http"
)

func NewRouter(api *API) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/quote", api.HandleQuote)
	mux.HandleFunc("/api/check", api.HandleCheck)
	mux.HandleFunc("/api/reset", api.HandleReset)
	mux.HandleFunc("/api/score", api.HandleScore)

	return withRequestLogging(mux, api.cfg.MaxLogBytes)
}
