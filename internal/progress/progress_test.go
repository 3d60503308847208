package progress

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
	"testing"
)

// percents parses the leading percent value of each emitted line.
func percents(t *testing.T, out string) []int {
	t.Helper()
	var vals []int
	for _, line := range strings.Split(strings.TrimSpace(out), "\n") {
		if line == "" {
			continue
		}
		num := strings.TrimSuffix(strings.Fields(line)[0], "%")
		n, err := strconv.Atoi(num)
		if err != nil {
			t.Fatalf("line %q has no leading percent: %v", line, err)
		}
		vals = append(vals, n)
	}
	return vals
}

func TestFlushStrictlyIncreasing(t *testing.T) {
	var buf bytes.Buffer
	rep := New(30, "compute stuff", WithWriter(&buf))

	for i := 0; i < 30; i++ {
		rep.Flush(i)
	}

	vals := percents(t, buf.String())
	if len(vals) == 0 {
		t.Fatal("no progress lines emitted")
	}
	for i := 1; i < len(vals); i++ {
		if vals[i] <= vals[i-1] {
			t.Errorf("percent sequence not strictly increasing: %v", vals)
			break
		}
	}
	if vals[0] != 0 {
		t.Errorf("first emitted percent = %d, want 0", vals[0])
	}
}

func TestFinishedAlwaysEmits100(t *testing.T) {
	var buf bytes.Buffer
	rep := New(1000, "slow", WithWriter(&buf))

	rep.Flush(10) // 1%
	rep.Finished()

	out := buf.String()
	if !strings.Contains(out, "100% slow") {
		t.Errorf("Finished must emit 100%% line: %q", out)
	}
}

func TestRegressingStepDoesNotRetrigger(t *testing.T) {
	var buf bytes.Buffer
	rep := New(100, "", WithWriter(&buf))

	rep.Flush(50) // 50%
	before := buf.Len()
	rep.Flush(10) // 10%, below the advanced threshold
	if buf.Len() != before {
		t.Errorf("regressed step re-triggered output: %q", buf.String())
	}

	rep.Flush(60) // past the threshold again
	if !strings.Contains(buf.String(), "60%") {
		t.Errorf("step past the threshold should still report: %q", buf.String())
	}
}

func TestThresholdAdvancesPastEmittedPercent(t *testing.T) {
	var buf bytes.Buffer
	rep := New(100, "", WithWriter(&buf))

	rep.Flush(50)
	rep.Flush(50)
	rep.Flush(20)
	rep.Flush(1)

	if got := buf.String(); got != "50% \n" {
		t.Errorf("only the first 50%% line should be emitted, got %q", got)
	}
}

func TestSkipPercent(t *testing.T) {
	var buf bytes.Buffer
	rep := New(100, "load", WithSkip(25), WithWriter(&buf))

	for i := 0; i <= 99; i++ {
		rep.Flush(i)
	}

	vals := percents(t, buf.String())
	expected := []int{0, 25, 50, 75}
	if fmt.Sprint(vals) != fmt.Sprint(expected) {
		t.Errorf("percent sequence = %v, want %v", vals, expected)
	}
}

func TestDisplayDisabled(t *testing.T) {
	var buf bytes.Buffer
	rep := New(10, "quiet", WithWriter(&buf), WithDisplay(false))

	rep.Flush(5)
	rep.Finished()

	if buf.Len() != 0 {
		t.Errorf("disabled reporter emitted output: %q", buf.String())
	}
}

func TestLeadText(t *testing.T) {
	var buf bytes.Buffer
	rep := New(10, "work", WithLeadText("  * "), WithWriter(&buf))

	rep.Finished()

	if got := buf.String(); got != "  * 100% work\n" {
		t.Errorf("unexpected line: %q", got)
	}
}
