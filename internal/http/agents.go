package httpapi

import (
	"net/http"
	"strings"

	"goldenhand-backend/internal/agents"
)

type ResourcesResponse struct {
	Items []agents.Resource `json:"items"`
}

func (s *Server) AgentOverview(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, s.Integrator.AgentInfo())
}

func (s *Server) LearningPath(w http.ResponseWriter, r *http.Request) {
	var req LearningPathRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	path := s.Integrator.GenerateLearningPath(req.StudentID, req.GradeLevel, req.Subjects, req.PriorKnowledge)
	WriteJSON(w, http.StatusOK, path)
}

func (s *Server) AgentContent(w http.ResponseWriter, r *http.Request) {
	var req ContentRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	content, err := s.Integrator.GenerateContent(req.Subject, req.Topic, req.ContentType, req.Difficulty, req.GradeLevel)
	if err != nil {
		if mapServiceError(w, err) {
			return
		}
		WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	WriteJSON(w, http.StatusOK, content)
}

func (s *Server) AgentAnswer(w http.ResponseWriter, r *http.Request) {
	var req AnswerRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	answer, err := s.Integrator.AnswerQuestion(req.Question, strings.TrimSpace(req.Subject), req.Context)
	if err != nil {
		if mapServiceError(w, err) {
			return
		}
		WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	WriteJSON(w, http.StatusOK, answer)
}

func (s *Server) AgentPerformance(w http.ResponseWriter, r *http.Request) {
	var req PerformanceRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	feedback, err := s.Integrator.AnalyzePerformance(req.StudentID, req.Subject, req.Results)
	if err != nil {
		if mapServiceError(w, err) {
			return
		}
		WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	WriteJSON(w, http.StatusOK, feedback)
}

func (s *Server) AgentResources(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	subject := strings.TrimSpace(query.Get("subject"))
	topic := strings.TrimSpace(query.Get("topic"))
	if subject == "" || topic == "" {
		WriteError(w, http.StatusBadRequest, "subject and topic are required")
		return
	}
	items, err := s.Integrator.SuggestResources(subject, topic, query.Get("learningStyle"), query.Get("difficulty"))
	if err != nil {
		if mapServiceError(w, err) {
			return
		}
		WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	WriteJSON(w, http.StatusOK, ResourcesResponse{Items: items})
}

func (s *Server) AgentEntrepreneurship(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	subject := strings.TrimSpace(query.Get("subject"))
	topic := strings.TrimSpace(query.Get("topic"))
	if subject == "" || topic == "" {
		WriteError(w, http.StatusBadRequest, "subject and topic are required")
		return
	}
	grade, ok := parseGrade(query.Get("grade"))
	if !ok {
		WriteError(w, http.StatusBadRequest, "Invalid grade")
		return
	}
	connection, err := s.Integrator.EntrepreneurshipConnection(subject, topic, grade)
	if err != nil {
		if mapServiceError(w, err) {
			return
		}
		WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	WriteJSON(w, http.StatusOK, connection)
}
