package agents

import "strings"

const (
	MathAgentID    = "math_agent"
	ScienceAgentID = "science_agent"
	TechAgentID    = "tech_agent"
)

var subjectAgentIDs = map[string]string{
	"mathematics":            MathAgentID,
	"math":                   MathAgentID,
	"maths":                  MathAgentID,
	"algebra":                MathAgentID,
	"calculus":               MathAgentID,
	"geometry":               MathAgentID,
	"science":                ScienceAgentID,
	"natural science":        ScienceAgentID,
	"physical science":       ScienceAgentID,
	"life science":           ScienceAgentID,
	"biology":                ScienceAgentID,
	"chemistry":              ScienceAgentID,
	"physics":                ScienceAgentID,
	"technology":             TechAgentID,
	"computer science":       TechAgentID,
	"computing":              TechAgentID,
	"information technology": TechAgentID,
	"digital literacy":       TechAgentID,
	"programming":            TechAgentID,
	"coding":                 TechAgentID,
	"web development":        TechAgentID,
	"app development":        TechAgentID,
}

// AgentIDForSubject resolves a subject name or synonym, case-insensitively.
func AgentIDForSubject(subject string) (string, bool) {
	id, ok := subjectAgentIDs[strings.ToLower(strings.TrimSpace(subject))]
	return id, ok
}

// RegisterDefaults registers the three subject agents under their standard ids.
func RegisterDefaults(r *Registry) {
	r.Register(MathAgentID, NewMathematicsAgent)
	r.Register(ScienceAgentID, NewScienceAgent)
	r.Register(TechAgentID, NewTechnologyAgent)
}

func NewDefaultRegistry() *Registry {
	r := NewRegistry()
	RegisterDefaults(r)
	return r
}

// NamedAgent pairs an instance with the id it was registered under.
type NamedAgent struct {
	ID    string
	Agent Agent
}

// Factory hands out initialized agents from a Registry.
type Factory struct {
	registry *Registry
}

func NewFactory(registry *Registry) *Factory {
	return &Factory{registry: registry}
}

func (f *Factory) Registry() *Registry {
	return f.registry
}

// Create returns the initialized singleton for id.
func (f *Factory) Create(id string) (Agent, bool) {
	agent, ok := f.registry.Instance(id)
	if !ok {
		return nil, false
	}
	agent.Initialize()
	return agent, true
}

// ForSubject resolves a subject name through the synonym table. Unknown
// subjects yield false.
func (f *Factory) ForSubject(subject string) (Agent, bool) {
	id, ok := AgentIDForSubject(subject)
	if !ok {
		return nil, false
	}
	return f.Create(id)
}

// CreateAll initializes every registered agent, in registration order.
func (f *Factory) CreateAll() []NamedAgent {
	ids := f.registry.IDs()
	out := make([]NamedAgent, 0, len(ids))
	for _, id := range ids {
		if agent, ok := f.Create(id); ok {
			out = append(out, NamedAgent{ID: id, Agent: agent})
		}
	}
	return out
}
