package httpapi

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"goldenhand-backend/internal/agents"
	"goldenhand-backend/internal/config"
	"goldenhand-backend/internal/lessons"
	"goldenhand-backend/internal/platform/logger"
	"goldenhand-backend/internal/services"
	"goldenhand-backend/internal/store"
)

type Server struct {
	Config     config.Config
	Store      *store.Store
	Tokens     services.TokenService
	Events     *services.EventHub
	Integrator *agents.Integrator
	Generator  *lessons.Generator
	Cache      *lessons.CacheManager
	Progress   *lessons.ProgressTracker
	Log        *logger.Logger
}

// NewServer wires the lesson pipeline over st. Generation and cache events
// go to hub.
func NewServer(st *store.Store, cfg config.Config, hub *services.EventHub, log *logger.Logger) (*Server, error) {
	if log == nil {
		log = logger.Nop()
	}
	tokens := services.TokenService{
		Secret:    []byte(cfg.JWTSecret),
		Issuer:    cfg.JWTIssuer,
		AccessTTL: time.Duration(cfg.AccessTTLSeconds) * time.Second,
	}
	integrator := agents.NewIntegrator(agents.NewFactory(agents.NewDefaultRegistry()))
	if !integrator.Initialize() {
		log.Warn("agent integrator started without every baseline agent")
	}
	cache, err := lessons.NewCacheManager(st, cfg.LessonCacheDir, cfg.LessonCacheExpiry, log.With("component", "cache"))
	if err != nil {
		return nil, err
	}
	generator := lessons.NewGenerator(integrator, st, log.With("component", "generator"))
	generator.Cache = cache
	if hub != nil {
		cache.Events = hub
		generator.Events = hub
	}
	return &Server{
		Config:     cfg,
		Store:      st,
		Tokens:     tokens,
		Events:     hub,
		Integrator: integrator,
		Generator:  generator,
		Cache:      cache,
		Progress:   lessons.NewProgressTracker(st),
		Log:        log,
	}, nil
}

func (s *Server) Router(ctx context.Context) http.Handler {
	r := chi.NewRouter()
	r.Use(RequestLogger(s.Log))
	if len(s.Config.CorsOrigins) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   s.Config.CorsOrigins,
			AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
			AllowCredentials: false,
			MaxAge:           300,
		}))
	}

	r.Route("/api", func(api chi.Router) {
		api.Get("/health", s.Health)
		api.Get("/subjects", s.ListSubjects)
		api.Get("/subjects/{subjectId}/topics", s.ListTopics)
		api.Get("/topics/{topicId}/lessons", s.ListTopicLessons)

		api.Route("/lessons", func(lessonsRouter chi.Router) {
			lessonsRouter.Post("/generate", s.GenerateLesson)
			lessonsRouter.Post("/resolve", s.ResolveLesson)
			lessonsRouter.Get("/{lessonId}", s.LessonDetail)
		})

		api.With(WithAuth(s.Tokens), RequireAnyRole("TEACHER", "ADMIN")).
			Post("/curriculum/generate", s.GenerateCurriculum)

		api.Route("/agents", func(agentsRouter chi.Router) {
			agentsRouter.Get("/", s.AgentOverview)
			agentsRouter.Post("/learning-path", s.LearningPath)
			agentsRouter.Post("/content", s.AgentContent)
			agentsRouter.Post("/answer", s.AgentAnswer)
			agentsRouter.Post("/performance", s.AgentPerformance)
			agentsRouter.Get("/resources", s.AgentResources)
			agentsRouter.Get("/entrepreneurship", s.AgentEntrepreneurship)
		})

		api.Route("/me", func(me chi.Router) {
			me.Use(WithAuth(s.Tokens))
			me.Get("/progress", s.MyProgress)
			me.Put("/progress/{lessonId}", s.UpdateMyProgress)
		})

		api.Route("/admin", func(admin chi.Router) {
			admin.Use(WithAuth(s.Tokens))
			admin.Use(RequireRole("ADMIN"))
			admin.Get("/cache/stats", s.CacheStats)
			admin.Delete("/cache", s.ClearCache)
			admin.Delete("/cache/lessons/{lessonId}", s.InvalidateLesson)
		})
	})

	r.Get("/ws/events", s.EventsSocket(ctx))
	return r
}
