package httpapi

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"goldenhand-backend/internal/lessons"
	"goldenhand-backend/internal/models"
)

type HealthResponse struct {
	Status string             `json:"status"`
	Agents bool               `json:"agentsReady"`
	Cache  lessons.CacheStats `json:"cache"`
}

type ResolveLessonResponse struct {
	Lesson  *lessons.CachedLessonView `json:"lesson"`
	Created bool                      `json:"created"`
}

func (s *Server) Health(w http.ResponseWriter, r *http.Request) {
	if err := s.Store.DB().PingContext(r.Context()); err != nil {
		WriteError(w, http.StatusServiceUnavailable, "Database unavailable")
		return
	}
	WriteJSON(w, http.StatusOK, HealthResponse{
		Status: "ok",
		Agents: s.Integrator.AgentInfo().Initialized,
		Cache:  s.Cache.Stats(),
	})
}

func (s *Server) ListSubjects(w http.ResponseWriter, r *http.Request) {
	grade := 0
	if raw := r.URL.Query().Get("grade"); raw != "" {
		parsed, ok := parseGrade(raw)
		if !ok {
			WriteError(w, http.StatusBadRequest, "Invalid grade")
			return
		}
		grade = parsed
	}
	subjects, err := s.Store.SubjectsByGrade(r.Context(), grade)
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	items := make([]SubjectDTO, 0, len(subjects))
	for _, subject := range subjects {
		items = append(items, toSubjectDTO(subject))
	}
	WriteJSON(w, http.StatusOK, ListResponse[SubjectDTO]{Items: items})
}

func (s *Server) ListTopics(w http.ResponseWriter, r *http.Request) {
	subjectID := chi.URLParam(r, "subjectId")
	if _, err := s.Store.SubjectByID(r.Context(), subjectID); err != nil {
		if mapServiceError(w, err) {
			return
		}
		WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	topics, err := s.Store.TopicsBySubject(r.Context(), subjectID)
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	items := make([]TopicDTO, 0, len(topics))
	for _, topic := range topics {
		items = append(items, toTopicDTO(topic))
	}
	WriteJSON(w, http.StatusOK, ListResponse[TopicDTO]{Items: items})
}

func (s *Server) ListTopicLessons(w http.ResponseWriter, r *http.Request) {
	topicID := chi.URLParam(r, "topicId")
	if _, err := s.Store.TopicByID(r.Context(), topicID); err != nil {
		if mapServiceError(w, err) {
			return
		}
		WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	rows, err := s.Store.LessonsByTopic(r.Context(), topicID)
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	writeLessonList(w, rows)
}

func writeLessonList(w http.ResponseWriter, rows []models.Lesson) {
	items := make([]LessonSummaryDTO, 0, len(rows))
	for _, lesson := range rows {
		items = append(items, toLessonSummaryDTO(lesson))
	}
	WriteJSON(w, http.StatusOK, ListResponse[LessonSummaryDTO]{Items: items})
}

func (s *Server) LessonDetail(w http.ResponseWriter, r *http.Request) {
	view, err := s.Cache.GetLessonWithDetails(r.Context(), chi.URLParam(r, "lessonId"))
	if err != nil {
		s.Log.Error("lesson detail failed", "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if view == nil {
		WriteError(w, http.StatusNotFound, "Lesson not found")
		return
	}
	WriteJSON(w, http.StatusOK, view)
}

func (s *Server) GenerateLesson(w http.ResponseWriter, r *http.Request) {
	var req GenerateLessonRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	record, err := s.Generator.CreateLesson(r.Context(), strings.TrimSpace(req.Subject), strings.TrimSpace(req.Topic), req.GradeLevel, req.Difficulty)
	if err != nil {
		if mapServiceError(w, err) {
			return
		}
		s.Log.Error("lesson generation failed", "subject", req.Subject, "topic", req.Topic, "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	view, err := s.Cache.GetLessonWithDetails(r.Context(), record.Lesson.ID)
	if err != nil || view == nil {
		WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	WriteJSON(w, http.StatusCreated, view)
}

// ResolveLesson returns the latest lesson for the topic and difficulty,
// generating one only when none exists.
func (s *Server) ResolveLesson(w http.ResponseWriter, r *http.Request) {
	var req GenerateLessonRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	lesson, created, err := s.Generator.GetOrGenerateLesson(r.Context(), strings.TrimSpace(req.Subject), strings.TrimSpace(req.Topic), req.GradeLevel, req.Difficulty)
	if err != nil {
		if mapServiceError(w, err) {
			return
		}
		WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	view, err := s.Cache.GetLessonWithDetails(r.Context(), lesson.ID)
	if err != nil || view == nil {
		WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	WriteJSON(w, status, ResolveLessonResponse{Lesson: view, Created: created})
}

func (s *Server) GenerateCurriculum(w http.ResponseWriter, r *http.Request) {
	var req GenerateCurriculumRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	report, err := s.Generator.GenerateAndSaveCurriculum(r.Context(), strings.TrimSpace(req.Subject), req.GradeLevels)
	if err != nil {
		if mapServiceError(w, err) {
			return
		}
		s.Log.Error("curriculum generation failed", "subject", req.Subject, "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	WriteJSON(w, http.StatusCreated, report)
}
