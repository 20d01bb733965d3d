package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func (s *Server) MyProgress(w http.ResponseWriter, r *http.Request) {
	summary, err := s.Progress.Summary(r.Context(), CurrentUserID(r))
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	WriteJSON(w, http.StatusOK, summary)
}

func (s *Server) UpdateMyProgress(w http.ResponseWriter, r *http.Request) {
	var req ProgressRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	progress, err := s.Progress.Update(r.Context(), CurrentUserID(r), chi.URLParam(r, "lessonId"), req.Status, req.Percentage)
	if err != nil {
		if mapServiceError(w, err) {
			return
		}
		WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	WriteJSON(w, http.StatusOK, toProgressDTO(progress))
}
