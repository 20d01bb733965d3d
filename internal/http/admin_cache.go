package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func (s *Server) CacheStats(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, s.Cache.Stats())
}

func (s *Server) ClearCache(w http.ResponseWriter, r *http.Request) {
	if err := s.Cache.ClearCache(); err != nil {
		s.Log.Error("cache clear failed", "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	s.Log.Info("admin cache clear", "user_id", CurrentUserID(r))
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) InvalidateLesson(w http.ResponseWriter, r *http.Request) {
	lessonID := chi.URLParam(r, "lessonId")
	if err := s.Cache.InvalidateCache(lessonID); err != nil {
		if mapServiceError(w, err) {
			return
		}
		s.Log.Error("cache invalidation failed", "lesson_id", lessonID, "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
