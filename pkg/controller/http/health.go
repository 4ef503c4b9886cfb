package http

import "net/http"

type healthResponse struct {
	Status           string `json:"status"`
	Message          string `json:"message"`
	GeminiConfigured bool   `json:"gemini_configured"`
	GCPConfigured    bool   `json:"gcp_configured"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(r.Context(), w, http.StatusOK, healthResponse{
		Status:           "healthy",
		Message:          "lexiscan is running",
		GeminiConfigured: s.health.GeminiConfigured,
		GCPConfigured:    s.health.GCPConfigured,
	})
}
