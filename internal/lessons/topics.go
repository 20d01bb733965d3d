package lessons

import (
	_ "embed"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed topics.yaml
var topicsYAML []byte

type topicFamily struct {
	Name    string           `yaml:"name"`
	Aliases []string         `yaml:"aliases"`
	Grades  map[int][]string `yaml:"grades"`
	Default []string         `yaml:"default"`
}

// TopicTable is the static subject/grade curriculum used when an agent has
// no topics for a grade.
type TopicTable struct {
	Families []topicFamily `yaml:"families"`
	Generic  []string      `yaml:"generic"`
}

// LoadTopicTable parses a table in the embedded YAML layout.
func LoadTopicTable(raw []byte) (*TopicTable, error) {
	var table TopicTable
	if err := yaml.Unmarshal(raw, &table); err != nil {
		return nil, err
	}
	return &table, nil
}

// DefaultTopicTable returns the embedded table. It panics if the embedded
// file is malformed.
func DefaultTopicTable() *TopicTable {
	table, err := LoadTopicTable(topicsYAML)
	if err != nil {
		panic("lessons: embedded topics.yaml: " + err.Error())
	}
	return table
}

// Topics returns the fallback topics for a subject and grade. Subjects
// outside every family get the generic placeholders.
func (t *TopicTable) Topics(subject string, grade int) []string {
	key := strings.ToLower(strings.TrimSpace(subject))
	for _, family := range t.Families {
		for _, alias := range family.Aliases {
			if alias != key {
				continue
			}
			if topics, ok := family.Grades[grade]; ok {
				return append([]string(nil), topics...)
			}
			return append([]string(nil), family.Default...)
		}
	}
	return append([]string(nil), t.Generic...)
}
