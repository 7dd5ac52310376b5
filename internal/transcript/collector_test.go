package transcript

import (
	"testing"
	"time"

	"github.com/WojtekL7/claude-voice-assistant/internal/logger"
)

func newTestCollector(t *testing.T, opts ...CollectorOption) (*Collector, chan string) {
	t.Helper()
	emitted := make(chan string, 4)
	base := []CollectorOption{WithQuietPeriod(30 * time.Millisecond)}
	c := NewCollector(func(s string) { emitted <- s }, logger.New(logger.LevelOff, nil), append(base, opts...)...)
	return c, emitted
}

func waitEmit(t *testing.T, emitted chan string) string {
	t.Helper()
	select {
	case s := <-emitted:
		return s
	case <-time.After(2 * time.Second):
		t.Fatal("collector never emitted")
		return ""
	}
}

func assertQuiet(t *testing.T, emitted chan string) {
	t.Helper()
	select {
	case s := <-emitted:
		t.Fatalf("unexpected emission: %q", s)
	case <-time.After(150 * time.Millisecond):
	}
}

func TestCollectorFiresAfterQuiet(t *testing.T) {
	c, emitted := newTestCollector(t)

	c.Append("pierwsza linia odpowiedzi asystenta")
	c.Append("druga linia odpowiedzi")

	got := waitEmit(t, emitted)
	want := "pierwsza linia odpowiedzi asystenta\ndruga linia odpowiedzi"
	if got != want {
		t.Fatalf("emitted %q, want %q", got, want)
	}
}

func TestCollectorSkipsShortFragments(t *testing.T) {
	c, emitted := newTestCollector(t)

	c.Append("OK.")
	assertQuiet(t, emitted)
}

func TestCollectorAppendResetsTimer(t *testing.T) {
	c, emitted := newTestCollector(t, WithQuietPeriod(60*time.Millisecond))

	c.Append("pierwsza część dłuższej odpowiedzi")
	time.Sleep(30 * time.Millisecond)
	c.Append("dokończenie tej samej odpowiedzi")

	got := waitEmit(t, emitted)
	want := "pierwsza część dłuższej odpowiedzi\ndokończenie tej samej odpowiedzi"
	if got != want {
		t.Fatalf("emitted %q, want %q", got, want)
	}
	assertQuiet(t, emitted)
}

func TestCollectorCleansBeforeEmitting(t *testing.T) {
	c, emitted := newTestCollector(t)

	c.Append("\x1b[1modpowiedź z kodami sterującymi terminala\x1b[0m")

	if got := waitEmit(t, emitted); got != "odpowiedź z kodami sterującymi terminala" {
		t.Fatalf("emitted %q", got)
	}
}

func TestCollectorFlushIgnoresThreshold(t *testing.T) {
	c, emitted := newTestCollector(t, WithQuietPeriod(time.Hour))

	c.Append("OK.")
	c.Flush()

	if got := waitEmit(t, emitted); got != "OK." {
		t.Fatalf("emitted %q", got)
	}
}

func TestCollectorStopDiscardsBuffer(t *testing.T) {
	c, emitted := newTestCollector(t)

	c.Append("ta odpowiedź nigdy nie powinna zostać przeczytana")
	c.Stop()
	assertQuiet(t, emitted)

	c.Flush()
	assertQuiet(t, emitted)
}
