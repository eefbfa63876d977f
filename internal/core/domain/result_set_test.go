// internal/core/domain/result_set_test.go
package domain

import (
	"strings"
	"testing"
	"time"

	"netsweep/internal/testutil"
)

func TestNewResultSet(t *testing.T) {
	rs := NewResultSet("10.0.0")

	testutil.AssertTrue(t, strings.HasPrefix(rs.ID, "scan-"), "scan ID format")
	testutil.AssertEqual(t, rs.Prefix, Prefix("10.0.0"), "prefix")
	testutil.AssertTrue(t, rs.IsEmpty(), "new set is empty")
	testutil.AssertFalse(t, rs.Metadata.StartTime.IsZero(), "start time set")
}

func TestResultSet_Add(t *testing.T) {
	rs := NewResultSet("10.0.0")

	testutil.AssertTrue(t, rs.Add(alive("10.0.0.5", time.Millisecond)), "first reachable outcome is added")
	testutil.AssertFalse(t, rs.Add(silent("10.0.0.6")), "unreachable outcome is dropped")
	testutil.AssertFalse(t, rs.Add(alive("10.0.0.5", 2*time.Millisecond)), "duplicate address is dropped")
	testutil.AssertTrue(t, rs.Add(alive("10.0.0.1", time.Millisecond)), "second reachable outcome is added")

	testutil.AssertEqual(t, rs.Len(), 2, "entries")
	testutil.AssertTrue(t, rs.Contains("10.0.0.5"), "contains .5")
	testutil.AssertFalse(t, rs.Contains("10.0.0.6"), "does not contain .6")

	addrs := rs.Addresses()
	testutil.AssertEqual(t, addrs[0], Address("10.0.0.5"), "completion order kept")
	testutil.AssertEqual(t, addrs[1], Address("10.0.0.1"), "completion order kept")
}

func TestResultSet_Add_ZeroValue(t *testing.T) {
	var rs ResultSet

	rs.Add(alive("10.0.0.1", 0))
	testutil.AssertFalse(t, rs.Add(alive("10.0.0.1", 0)), "zero-value set still deduplicates")
	testutil.AssertEqual(t, rs.Len(), 1, "entries")
}

func TestResultSet_Record(t *testing.T) {
	rs := NewResultSet("10.0.0")

	rs.Record(alive("10.0.0.1", time.Millisecond))
	rs.Record(silent("10.0.0.2"))
	rs.Record(failed("10.0.0.3"))

	stats := rs.Stats()
	testutil.AssertEqual(t, stats.Probed, 3, "probed counter")
	testutil.AssertEqual(t, stats.Failed, 1, "failed counter")
	testutil.AssertEqual(t, stats.Alive, 1, "alive counter")
	testutil.AssertFalse(t, rs.Contains("10.0.0.3"), "failed probe is not a responder")
}

func TestResultSet_Finalize(t *testing.T) {
	rs := NewResultSet("10.0.0")
	rs.Metadata.StartTime = time.Now().Add(-1500 * time.Millisecond)

	rs.Finalize()

	testutil.AssertFalse(t, rs.Metadata.EndTime.IsZero(), "end time set")
	testutil.AssertTrue(t, rs.Metadata.Duration >= 1500*time.Millisecond, "duration covers the scan")
	testutil.AssertContains(t, rs.Summary(), "10.0.0.0/24", "summary mentions block")
}

func TestProbeOutcome(t *testing.T) {
	o := NewOutcome("10.0.0.9", false, 5*time.Millisecond)
	testutil.AssertEqual(t, o.RTT, time.Duration(0), "unreachable outcome has no RTT")

	f := FailedOutcome("10.0.0.9", ErrScanCanceled)
	testutil.AssertFalse(t, f.Reachable, "failed outcome is unreachable")
	testutil.AssertErrorIs(t, f.Err, ErrScanCanceled, "error kept")

	testutil.AssertEqual(t, alive("10.0.0.1", 0).FormattedTimestamp(), "2026-03-14 09:26:53", "timestamp layout")
}
