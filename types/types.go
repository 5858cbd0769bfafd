package types

import (
	"fmt"
	"time"
)

// TestStatus represents the possible states of a group run
type TestStatus string

const (
	TestStatusPass TestStatus = "pass"
	TestStatusFail TestStatus = "fail"
)

// GroupResult captures the outcome of running a single Test262 group.
// Counts come straight from the group's TRX file; a group whose TRX
// file is missing or unreadable carries all-zero counts.
type GroupResult struct {
	Group    string
	Passed   int
	Failed   int
	Skipped  int
	Duration time.Duration // Wall-clock time of the external runner invocation
}

// Total returns the number of tests the group executed.
func (g GroupResult) Total() int {
	return g.Passed + g.Failed + g.Skipped
}

// Status classifies the group. A group passes only when every test it
// ran passed and it ran at least one test; an empty group (total 0)
// is never a pass.
func (g GroupResult) Status() TestStatus {
	if g.Failed == 0 && g.Passed > 0 && g.Passed == g.Total() {
		return TestStatusPass
	}
	return TestStatusFail
}

// Summary renders the line pasted back into the tracking document:
// "✅ <group>" for a fully-passed group, "<passed>/<total> <group>"
// otherwise.
func (g GroupResult) Summary() string {
	if g.Status() == TestStatusPass {
		return fmt.Sprintf("✅ %s", g.Group)
	}
	return fmt.Sprintf("%d/%d %s", g.Passed, g.Total(), g.Group)
}

// RunStats aggregates test counts across all groups in a report run.
type RunStats struct {
	Groups  int
	Passed  int
	Failed  int
	Skipped int
}

// Add folds one group's counts into the run totals.
func (s *RunStats) Add(g GroupResult) {
	s.Groups++
	s.Passed += g.Passed
	s.Failed += g.Failed
	s.Skipped += g.Skipped
}

// Total returns the number of tests executed across all groups.
func (s RunStats) Total() int {
	return s.Passed + s.Failed + s.Skipped
}

// Status classifies the whole run with the same law applied to groups.
func (s RunStats) Status() TestStatus {
	if s.Failed == 0 && s.Passed > 0 && s.Passed == s.Total() {
		return TestStatusPass
	}
	return TestStatusFail
}

func (s RunStats) String() string {
	return fmt.Sprintf("%d groups: %d/%d passed (%d failed, %d skipped)",
		s.Groups, s.Passed, s.Total(), s.Failed, s.Skipped)
}
