package fixtures

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadScenariosSortedByName(t *testing.T) {
	scenarios, err := LoadScenarios("../../testdata/scenarios")
	assert.NoError(t, err)
	assert.True(t, len(scenarios) >= 4)

	for i := 1; i < len(scenarios); i++ {
		assert.Less(t, scenarios[i-1].Name, scenarios[i].Name)
	}
}

func TestLoadScenarioBasicOutIn(t *testing.T) {
	s, err := LoadScenario("../../testdata/scenarios/0001-basic-out-in")
	assert.NoError(t, err)
	assert.Equal(t, []string{`out ("hello","world")`, `in (_,_)`}, s.Ops)
	assert.Equal(t, `("hello","world")`, s.Expect)
	assert.False(t, s.IsError)
}

func TestLoadScenarioErrorFlag(t *testing.T) {
	s, err := LoadScenario("../../testdata/scenarios/0006-undefined-out-rejected")
	assert.NoError(t, err)
	assert.True(t, s.IsError)
}
