package itinerary

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"strings"
	"testing"

	"tripgen/internal/ai"
)

// scriptedCompleter is a test double for ai.Completer that replays canned
// responses in call order and records every request it served.
type scriptedCompleter struct {
	script []scriptStep
	calls  []ai.CompletionRequest
}

type scriptStep struct {
	text string
	err  error
}

func (s *scriptedCompleter) Complete(_ context.Context, req ai.CompletionRequest) (string, error) {
	i := len(s.calls)
	s.calls = append(s.calls, req)
	if i >= len(s.script) {
		return "", errors.New("scriptedCompleter: unexpected extra call")
	}
	return s.script[i].text, s.script[i].err
}

func newTestService(t *testing.T, steps ...scriptStep) (*Service, *scriptedCompleter) {
	t.Helper()
	stub := &scriptedCompleter{script: steps}
	svc := NewService(stub)
	svc.rawDir = t.TempDir()
	return svc, stub
}

// modelOutput renders a well-formed model response with the given number of
// itinerary days.
func modelOutput(t *testing.T, days int) string {
	t.Helper()
	res := Result{
		Places: []Place{{
			Name:        "Burj Khalifa",
			Coordinates: Coordinates{Lat: 25.1972, Lng: 55.2744},
		}},
		Hotels:         []Hotel{{Name: "Atlantis The Palm", Amenities: []string{"Pool"}}},
		Transportation: []string{"Metro"},
		Costs:          []string{"Accommodation: ₹58000"},
	}
	for i := 0; i < days; i++ {
		res.Itinerary = append(res.Itinerary, Day{Day: i + 1, Activities: []string{"Morning: explore"}})
	}
	b, err := json.Marshal(res)
	if err != nil {
		t.Fatal(err)
	}
	return string(b)
}

func threeDayRequest() Request {
	return Request{
		Destination: "Dubai",
		Travelers:   2,
		StartDate:   "2024-01-01",
		EndDate:     "2024-01-03",
		Preferences: "sightseeing",
	}
}

func TestGenerate_CleanSingleChunk(t *testing.T) {
	svc, stub := newTestService(t, scriptStep{text: modelOutput(t, 3)})

	res := svc.Generate(context.Background(), threeDayRequest())

	if res.Source != "" || res.Warning != "" || res.Error != "" {
		t.Errorf("clean result must carry no markers, got source=%q warning=%q error=%q", res.Source, res.Warning, res.Error)
	}
	if len(res.Itinerary) != 3 {
		t.Fatalf("expected 3 days, got %d", len(res.Itinerary))
	}
	for i, d := range res.Itinerary {
		if d.Day != i+1 {
			t.Errorf("day %d numbered %d", i, d.Day)
		}
	}
	if len(stub.calls) != 1 {
		t.Fatalf("expected exactly one completion call, got %d", len(stub.calls))
	}
}

func TestGenerate_FixedCallParameters(t *testing.T) {
	svc, stub := newTestService(t, scriptStep{text: modelOutput(t, 3)})
	svc.Generate(context.Background(), threeDayRequest())

	call := stub.calls[0]
	if call.Temperature != 0.2 {
		t.Errorf("temperature = %v, want 0.2", call.Temperature)
	}
	if call.MaxOutputTokens != 2000 {
		t.Errorf("max output tokens = %d, want 2000", call.MaxOutputTokens)
	}
	if call.System != systemPrompt {
		t.Errorf("unexpected system prompt: %q", call.System)
	}
	if !strings.Contains(call.Prompt, "EXACTLY 3 objects") {
		t.Error("prompt missing exact-count directive for a 3-day range")
	}
}

func TestGenerate_CountMismatchRetrySucceeds(t *testing.T) {
	svc, stub := newTestService(t,
		scriptStep{text: modelOutput(t, 2)},
		scriptStep{text: modelOutput(t, 3)},
	)

	res := svc.Generate(context.Background(), threeDayRequest())

	if res.Source != "" || res.Warning != "" {
		t.Errorf("successful retry must yield a clean result, got source=%q warning=%q", res.Source, res.Warning)
	}
	if len(res.Itinerary) != 3 {
		t.Errorf("expected 3 days after retry, got %d", len(res.Itinerary))
	}
	if len(stub.calls) != 2 {
		t.Fatalf("expected 2 calls, got %d", len(stub.calls))
	}
	if !strings.Contains(stub.calls[1].Prompt, "You returned 2 days but required 3") {
		t.Error("retry prompt must state the wrong count received")
	}
}

func TestGenerate_CountMismatchPersists(t *testing.T) {
	svc, stub := newTestService(t,
		scriptStep{text: modelOutput(t, 2)},
		scriptStep{text: modelOutput(t, 2)},
	)

	res := svc.Generate(context.Background(), threeDayRequest())

	if res.Source != SourcePartial {
		t.Errorf("source = %q, want %q", res.Source, SourcePartial)
	}
	if !strings.Contains(res.Warning, "2 days but 3 were requested") {
		t.Errorf("warning should name the mismatch, got %q", res.Warning)
	}
	// No padding or truncation: the retry's length stands.
	if len(res.Itinerary) != 2 {
		t.Errorf("itinerary length = %d, want the retry's 2", len(res.Itinerary))
	}
	if len(stub.calls) != 2 {
		t.Fatalf("exactly one retry allowed, got %d calls", len(stub.calls))
	}
}

func TestGenerate_MultiChunkMerge(t *testing.T) {
	svc, stub := newTestService(t,
		scriptStep{text: modelOutput(t, 7)},
		scriptStep{text: modelOutput(t, 3)},
	)

	req := threeDayRequest()
	req.EndDate = "2024-01-10"
	res := svc.Generate(context.Background(), req)

	if len(stub.calls) != 2 {
		t.Fatalf("10-day range should make 2 calls, got %d", len(stub.calls))
	}
	if !strings.Contains(stub.calls[0].Prompt, "EXACTLY 7 objects") {
		t.Error("first chunk should request 7 days")
	}
	if !strings.Contains(stub.calls[1].Prompt, "EXACTLY 3 objects") {
		t.Error("second chunk should request 3 days")
	}
	if len(res.Itinerary) != 10 {
		t.Fatalf("expected 10 merged days, got %d", len(res.Itinerary))
	}
	for i, d := range res.Itinerary {
		if d.Day != i+1 {
			t.Errorf("merged day %d numbered %d", i, d.Day)
		}
	}
	// Both chunks reported "Metro"; the merged set holds it once.
	if len(res.Transportation) != 1 {
		t.Errorf("transportation should be deduplicated, got %v", res.Transportation)
	}
	if len(res.Places) != 2 {
		t.Errorf("places concatenate across chunks, got %d", len(res.Places))
	}
	if res.Source != "" || res.Warning != "" {
		t.Errorf("clean chunks must merge cleanly, got source=%q warning=%q", res.Source, res.Warning)
	}
}

func TestGenerate_ProseWrappedJSON(t *testing.T) {
	wrapped := "Sure! Here you go: " + modelOutput(t, 3) + " Hope that helps!"
	svc, _ := newTestService(t, scriptStep{text: wrapped})

	res := svc.Generate(context.Background(), threeDayRequest())

	if res.Source != "" {
		t.Errorf("prose-wrapped JSON should parse cleanly, got source=%q", res.Source)
	}
	if len(res.Itinerary) != 3 {
		t.Errorf("expected 3 days, got %d", len(res.Itinerary))
	}
}

func TestGenerate_CodeFencedJSON(t *testing.T) {
	fenced := "```json\n" + modelOutput(t, 3) + "\n```"
	svc, _ := newTestService(t, scriptStep{text: fenced})

	res := svc.Generate(context.Background(), threeDayRequest())
	if res.Source != "" || len(res.Itinerary) != 3 {
		t.Errorf("code-fenced JSON should parse, got source=%q days=%d", res.Source, len(res.Itinerary))
	}
}

func TestGenerate_GarbageTwiceFallsBack(t *testing.T) {
	svc, stub := newTestService(t,
		scriptStep{text: "I cannot help with that."},
		scriptStep{text: "Still not JSON, sorry."},
	)

	res := svc.Generate(context.Background(), threeDayRequest())

	if res.Source != SourceFallback {
		t.Fatalf("source = %q, want %q", res.Source, SourceFallback)
	}
	if res.Error == "" {
		t.Error("fallback must carry an error marker")
	}
	if len(res.Itinerary) != 3 {
		t.Fatalf("expected 3 filler days, got %d", len(res.Itinerary))
	}
	for i, d := range res.Itinerary {
		for j, a := range d.Activities {
			if a != fillerPool[j%len(fillerPool)] {
				t.Errorf("day %d activity %d = %q, want round-robin filler", i+1, j, a)
			}
		}
	}
	if len(stub.calls) != 2 {
		t.Fatalf("expected one retry before falling back, got %d calls", len(stub.calls))
	}

	// Both raw outputs were preserved as diagnostic artifacts.
	entries, err := os.ReadDir(svc.rawDir)
	if err != nil {
		t.Fatal(err)
	}
	var first, retry bool
	for _, e := range entries {
		if strings.Contains(e.Name(), "invalid_json_retry") {
			retry = true
		} else if strings.Contains(e.Name(), "invalid_json") {
			first = true
		}
	}
	if !first || !retry {
		t.Errorf("expected invalid_json and invalid_json_retry dumps, found %v", entries)
	}
}

func TestGenerate_GarbageThenValidRecovers(t *testing.T) {
	svc, _ := newTestService(t,
		scriptStep{text: "no json here"},
		scriptStep{text: modelOutput(t, 3)},
	)

	res := svc.Generate(context.Background(), threeDayRequest())
	if res.Source != "" {
		t.Errorf("retry that parses cleanly should win, got source=%q", res.Source)
	}
	if len(res.Itinerary) != 3 {
		t.Errorf("expected 3 days, got %d", len(res.Itinerary))
	}
}

func TestGenerate_TransportFailure(t *testing.T) {
	svc, _ := newTestService(t, scriptStep{err: errors.New("connection refused")})

	res := svc.Generate(context.Background(), threeDayRequest())

	if res.Source != SourceError {
		t.Fatalf("source = %q, want %q", res.Source, SourceError)
	}
	if !strings.Contains(res.Error, "connection refused") {
		t.Errorf("error should carry the failure description, got %q", res.Error)
	}
	if len(res.Places) != 0 || len(res.Hotels) != 0 || len(res.Transportation) != 0 || len(res.Costs) != 0 {
		t.Error("transport failure must yield empty lists")
	}
	if len(res.Itinerary) != 3 {
		t.Errorf("expected one generic activity day per requested day, got %d days", len(res.Itinerary))
	}
}

func TestGenerate_UnparseableDatesOmitCountDirective(t *testing.T) {
	svc, stub := newTestService(t, scriptStep{text: modelOutput(t, 4)})

	req := threeDayRequest()
	req.StartDate = "someday"
	res := svc.Generate(context.Background(), req)

	if len(stub.calls) != 1 {
		t.Fatalf("expected a single call, got %d", len(stub.calls))
	}
	if strings.Contains(stub.calls[0].Prompt, "EXACTLY") {
		t.Error("unknown day count must omit the exact-count directive")
	}
	// Whatever length the model returned stands; no count validation applies.
	if res.Source != "" || len(res.Itinerary) != 4 {
		t.Errorf("got source=%q days=%d", res.Source, len(res.Itinerary))
	}
}

func TestGenerate_InvertedRangeTreatedAsOneDay(t *testing.T) {
	svc, stub := newTestService(t, scriptStep{text: modelOutput(t, 1)})

	req := threeDayRequest()
	req.StartDate = "2024-01-10"
	req.EndDate = "2024-01-01"
	res := svc.Generate(context.Background(), req)

	if !strings.Contains(stub.calls[0].Prompt, "EXACTLY 1 objects") {
		t.Error("inverted range should be coerced to a 1-day request")
	}
	if res.Source != "" || len(res.Itinerary) != 1 {
		t.Errorf("got source=%q days=%d", res.Source, len(res.Itinerary))
	}
}

func TestExtractJSON(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"already json", `{"a":1}`, `{"a":1}`},
		{"leading prose", `Here: {"a":1}`, `{"a":1}`},
		{"trailing prose", `{"a":1} done`, `{"a":1}`},
		{"surrounding whitespace", "  {\"a\":1}\n", `{"a":1}`},
		{"no braces", "nothing here", "nothing here"},
		{"nested braces kept", `x {"a":{"b":2}} y`, `{"a":{"b":2}}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := extractJSON(tt.in); got != tt.want {
				t.Errorf("extractJSON(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
