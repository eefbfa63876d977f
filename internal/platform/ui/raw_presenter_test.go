package ui

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"netsweep/internal/testutil"
)

func newTestRawPresenter(format LogFormat) (*RawPresenter, *bytes.Buffer) {
	var buf bytes.Buffer
	r := NewRawPresenter(format, &buf)
	r.now = func() time.Time { return time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC) }
	return r, &buf
}

func TestRawPresenter_Text(t *testing.T) {
	r, buf := newTestRawPresenter(LogFormatText)

	r.Start(ScanInfo{Subnet: "192.168.1.0/24", Addresses: 256, Workers: 64, Timeout: time.Second, Strategy: "parallel", Prober: "icmp"})
	r.HostAlive(HostInfo{Address: "192.168.1.10", RTT: 3 * time.Millisecond})
	r.Warning("raw socket unavailable")
	r.Finish(ScanStats{TotalDuration: 1500 * time.Millisecond, Alive: 1, Probed: 256})

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	testutil.AssertLen(t, lines, 4, "one line per call")

	testutil.AssertEqual(t, lines[0],
		"2026-03-14T09:26:53Z INFO  scan_started addresses=256 prober=icmp strategy=parallel subnet=192.168.1.0/24 timeout=1s workers=64",
		"start line with sorted keys")
	testutil.AssertEqual(t, lines[1], "2026-03-14T09:26:53Z INFO  host_alive address=192.168.1.10 rtt=3ms", "host line")
	testutil.AssertContains(t, lines[2], "WARN  raw socket unavailable", "warning line")
	testutil.AssertContains(t, lines[3], "alive=1 canceled=false duration=1.5s failed=0 probed=256", "completion line")
}

func TestRawPresenter_JSON(t *testing.T) {
	r, buf := newTestRawPresenter(LogFormatJSON)

	r.HostAlive(HostInfo{Address: "10.0.0.7", RTT: 12 * time.Millisecond})

	var entry struct {
		Timestamp string                 `json:"timestamp"`
		Level     string                 `json:"level"`
		Message   string                 `json:"message"`
		Data      map[string]interface{} `json:"data"`
	}
	testutil.AssertNoError(t, json.Unmarshal(buf.Bytes(), &entry), "line should be valid JSON")

	testutil.AssertEqual(t, entry.Level, "INFO", "level")
	testutil.AssertEqual(t, entry.Message, "host_alive", "message")
	testutil.AssertEqual(t, entry.Data["address"], "10.0.0.7", "address field")
	testutil.AssertEqual(t, entry.Data["rtt_ms"], float64(12), "durations exported in ms")
}

func TestRawPresenter_ProgressIsThrottled(t *testing.T) {
	r, buf := newTestRawPresenter(LogFormatText)

	for done := 1; done <= 256; done++ {
		r.Progress(done, 256)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	testutil.AssertLen(t, lines, progressSteps, "one line per step")
	testutil.AssertContains(t, lines[len(lines)-1], "done=256", "last line reports completion")
	testutil.AssertContains(t, lines[len(lines)-1], "percentage=100.0", "last line at 100%")
}

func TestRawPresenter_ProgressSmallTotal(t *testing.T) {
	r, buf := newTestRawPresenter(LogFormatText)

	r.Progress(1, 3)
	r.Progress(2, 3)
	r.Progress(3, 3)
	r.Progress(0, 0)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	testutil.AssertLen(t, lines, 3, "every probe reported when total < steps")
}

func TestFormatValue(t *testing.T) {
	r := NewRawPresenter(LogFormatText, &bytes.Buffer{})

	testutil.AssertEqual(t, r.formatValue("plain"), "plain", "plain string")
	testutil.AssertEqual(t, r.formatValue("with space"), `"with space"`, "quoted string")
	testutil.AssertEqual(t, r.formatValue(250*time.Millisecond), "250ms", "duration")
	testutil.AssertEqual(t, r.formatValue(12.345), "12.3", "float")
	testutil.AssertEqual(t, r.formatValue(true), "true", "bool")
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		input   string
		want    UIMode
		wantErr bool
	}{
		{"", UIModePretty, false},
		{"pretty", UIModePretty, false},
		{"RAW", UIModeRaw, false},
		{" json ", UIModeJSON, false},
		{"quiet", UIModeQuiet, false},
		{"fancy", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseMode(tt.input)
			if tt.wantErr {
				testutil.AssertError(t, err, "ParseMode should fail")
				return
			}
			testutil.AssertNoError(t, err, "ParseMode")
			testutil.AssertEqual(t, got, tt.want, "mode")
		})
	}
}

func TestNewPresenter(t *testing.T) {
	var buf bytes.Buffer

	_, isNoop := NewPresenter(UIModeQuiet, &buf).(*NoopPresenter)
	testutil.AssertTrue(t, isNoop, "quiet mode uses noop presenter")

	raw, isRaw := NewPresenter(UIModeJSON, &buf).(*RawPresenter)
	testutil.AssertTrue(t, isRaw, "json mode uses raw presenter")
	testutil.AssertEqual(t, raw.format, LogFormatJSON, "json format")

	_, isPTerm := NewPresenter(UIModePretty, &buf).(*PTermPresenter)
	testutil.AssertTrue(t, isPTerm, "pretty mode uses pterm presenter")
}

func TestFormatRTT(t *testing.T) {
	testutil.AssertEqual(t, formatRTT(450*time.Microsecond), "0.45ms", "sub-millisecond")
	testutil.AssertEqual(t, formatRTT(12300*time.Microsecond), "12.3ms", "milliseconds")
	testutil.AssertEqual(t, formatRTT(2*time.Second), "2.0s", "seconds")
	testutil.AssertEqual(t, formatDuration(90*time.Second), "1m30s", "minutes")
}
