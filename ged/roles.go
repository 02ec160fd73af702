package ged

import "fmt"

// RoleSelector decides which side of a (test, train) pair is the source.
// The source must not have more nodes than the target.
type RoleSelector interface {
	// TestIsSource reports whether test is the source graph.
	TestIsSource(test, train Entry) bool

	// Symmetric reports whether the choice depends only on the two entries'
	// contents and not on which collection each came from. Only symmetric
	// selectors allow pair caching.
	Symmetric() bool
}

// TieRule resolves equal node counts in SmallerSource.
type TieRule int

const (
	// TieFingerprint prefers fewer edges, then the lower Entry.Fingerprint,
	// then the test side. Symmetric.
	TieFingerprint TieRule = iota

	// TieTest always makes the test graph the source on equal node counts.
	TieTest
)

// String implements fmt.Stringer.
func (t TieRule) String() string {
	switch t {
	case TieFingerprint:
		return "fingerprint"
	case TieTest:
		return "test"
	default:
		return fmt.Sprintf("TieRule(%d)", int(t))
	}
}

// ParseTieRule maps a config name to a TieRule.
func ParseTieRule(s string) (TieRule, error) {
	switch s {
	case "", "fingerprint":
		return TieFingerprint, nil
	case "test":
		return TieTest, nil
	default:
		return 0, fmt.Errorf("ParseTieRule(%q): unknown tie rule", s)
	}
}

// SmallerSource makes the graph with fewer nodes the source.
type SmallerSource struct {
	Tie TieRule
}

// TestIsSource implements RoleSelector.
func (s SmallerSource) TestIsSource(test, train Entry) bool {
	nt, nr := test.Graph.Order(), train.Graph.Order()
	if nt != nr {
		return nt < nr
	}
	if s.Tie == TieTest {
		return true
	}
	if et, er := test.Graph.Size(), train.Graph.Size(); et != er {
		return et < er
	}

	return test.Fingerprint() <= train.Fingerprint()
}

// Symmetric implements RoleSelector.
func (s SmallerSource) Symmetric() bool { return s.Tie == TieFingerprint }
