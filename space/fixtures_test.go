package space

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/linda-space/tuplespace/internal/fixtures"
	"github.com/linda-space/tuplespace/internal/literal"
)

// TestScenarioCorpus replays every fixture under testdata/scenarios
// against a fresh Space: each "ops" line is a verb (out/in/rd) and a
// tuple literal, in order. The final op's outcome is checked against
// "expect" ("none" for a failed probe, an empty string alongside an
// "error" marker file for a rejected out, or a tuple literal otherwise).
func TestScenarioCorpus(t *testing.T) {
	scenarios, err := fixtures.LoadScenarios("../testdata/scenarios")
	assert.NoError(t, err)
	assert.NotEmpty(t, scenarios)

	for _, sc := range scenarios {
		sc := sc
		t.Run(sc.Name, func(t *testing.T) {
			sp := newSpace()
			var lastErr error
			var lastTup string
			var lastOK bool

			for _, line := range sc.Ops {
				verb, arg, ok := strings.Cut(line, " ")
				assert.True(t, ok, "malformed op line %q", line)
				tup, err := literal.Parse(arg)
				assert.NoError(t, err, "parsing operand of %q", line)

				switch verb {
				case "out":
					lastErr = sp.TupleOut(tup)
					lastTup, lastOK = "", false
				case "in":
					m := sp.TupleIn(tup)
					got, delivered, werr := m.Wait(withTimeout(t))
					lastErr, lastOK = werr, delivered
					if delivered {
						lastTup = got.String()
					}
				case "rd":
					m := sp.TupleRd(tup)
					got, delivered, werr := m.Wait(withTimeout(t))
					lastErr, lastOK = werr, delivered
					if delivered {
						lastTup = got.String()
					}
				default:
					t.Fatalf("unknown op verb %q", verb)
				}
			}

			if sc.IsError {
				assert.Error(t, lastErr)
				return
			}
			if sc.Expect == "none" {
				assert.False(t, lastOK)
				return
			}
			assert.NoError(t, lastErr)
			assert.True(t, lastOK)
			assert.Equal(t, sc.Expect, lastTup)
		})
	}
}
