package agents

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryRejectsDuplicates(t *testing.T) {
	r := NewRegistry()
	require.True(t, r.Register("math_agent", NewMathematicsAgent))
	assert.False(t, r.Register("math_agent", NewScienceAgent))

	agent, ok := r.Instance("math_agent")
	require.True(t, ok)
	assert.Equal(t, "Mathematics Navigator", agent.Info().Name)
}

func TestRegistrySingletonPerID(t *testing.T) {
	r := NewDefaultRegistry()

	first, ok := r.Instance(ScienceAgentID)
	require.True(t, ok)
	second, _ := r.Instance(ScienceAgentID)
	assert.Same(t, first, second)

	require.True(t, r.Unregister(ScienceAgentID))
	_, ok = r.Instance(ScienceAgentID)
	assert.False(t, ok)
	assert.False(t, r.Unregister(ScienceAgentID))

	require.True(t, r.Register(ScienceAgentID, NewScienceAgent))
	third, ok := r.Instance(ScienceAgentID)
	require.True(t, ok)
	assert.NotSame(t, first, third)
}

func TestRegistryIDsKeepOrder(t *testing.T) {
	r := NewDefaultRegistry()
	assert.Equal(t, []string{MathAgentID, ScienceAgentID, TechAgentID}, r.IDs())

	r.Unregister(ScienceAgentID)
	r.Register(ScienceAgentID, NewScienceAgent)
	assert.Equal(t, []string{MathAgentID, TechAgentID, ScienceAgentID}, r.IDs())
}

func TestRegistryInfo(t *testing.T) {
	r := NewDefaultRegistry()

	info, ok := r.Info(TechAgentID)
	require.True(t, ok)
	assert.Equal(t, "Technology Architect", info.Name)
	assert.Equal(t, "TechnologyAgent", info.Type)
	assert.False(t, info.Initialized)

	_, ok = r.Info("history_agent")
	assert.False(t, ok)
}

func TestFactorySubjectSynonyms(t *testing.T) {
	f := NewFactory(NewDefaultRegistry())

	for _, subject := range []string{"Mathematics", "math", "MATHS", "algebra", "Calculus", "geometry"} {
		agent, ok := f.ForSubject(subject)
		require.True(t, ok, subject)
		assert.Equal(t, "Mathematics Navigator", agent.Info().Name, subject)
	}
	for _, subject := range []string{"science", "Biology", "chemistry", "physics"} {
		agent, ok := f.ForSubject(subject)
		require.True(t, ok, subject)
		assert.Equal(t, "Science Illuminator", agent.Info().Name, subject)
	}
	for _, subject := range []string{"Technology", "computer science", "Programming", "coding", "web development", "App Development"} {
		agent, ok := f.ForSubject(subject)
		require.True(t, ok, subject)
		assert.Equal(t, "Technology Architect", agent.Info().Name, subject)
	}

	_, ok := f.ForSubject("history")
	assert.False(t, ok)
}

func TestFactoryInitializesAgents(t *testing.T) {
	f := NewFactory(NewDefaultRegistry())

	agent, ok := f.Create(MathAgentID)
	require.True(t, ok)
	assert.True(t, agent.Info().Initialized)

	all := f.CreateAll()
	require.Len(t, all, 3)
	assert.Equal(t, MathAgentID, all[0].ID)
	assert.Same(t, agent, all[0].Agent)
}
