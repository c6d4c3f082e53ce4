// README: Chunked generation pipeline; degrades to fallback/error results, never panics or errors out.
package itinerary

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"tripgen/internal/ai"
)

const (
	// Fixed for every model call, generation and retry alike.
	genTemperature = 0.2
	genMaxTokens   = 2000

	// Every outbound call carries a bounded timeout so a stalled provider
	// surfaces as an error result instead of hanging the request.
	defaultCallTimeout = 60 * time.Second
)

// Service drives itinerary generation against a Completer. Each call owns
// its accumulation state, so one Service is safe for concurrent requests.
type Service struct {
	completer   ai.Completer
	callTimeout time.Duration
	rawDir      string
}

// NewService creates a generation Service backed by the given completer.
func NewService(completer ai.Completer) *Service {
	return &Service{
		completer:   completer,
		callTimeout: defaultCallTimeout,
		rawDir:      ".",
	}
}

// Generate is the sole entry point for callers. Ranges longer than
// MaxChunkDays are split into sub-ranges, generated strictly in calendar
// order and merged with continuous day numbering; shorter ranges run the
// single-chunk path directly. Worst case this makes 2*ceil(N/7) model calls.
func (s *Service) Generate(ctx context.Context, req Request) Result {
	start, errS := ParseDate(req.StartDate)
	end, errE := ParseDate(req.EndDate)
	if errS != nil || errE != nil {
		// Day count unknown: generate one chunk without the exact-count
		// directive rather than failing the request.
		return s.generateChunk(ctx, req, 0)
	}

	days := DayCount(start, end)
	if days <= MaxChunkDays {
		return s.generateChunk(ctx, req, days)
	}

	ranges := splitRange(DateRange{Start: start, End: end})
	results := make([]Result, 0, len(ranges))
	for _, r := range ranges {
		sub := req
		sub.StartDate = r.Start.Format("2006-01-02")
		sub.EndDate = r.End.Format("2006-01-02")
		results = append(results, s.generateChunk(ctx, sub, r.Days()))
	}
	return mergeChunks(results)
}

// generateChunk runs one generation round for a sub-range of at most
// MaxChunkDays days, with a single bounded retry. days == 0 means the count
// is unknown and no count validation applies.
//
// Outcome mapping: clean parse with matching count -> plain result;
// count mismatch after retry -> "partial" with warning; unparseable JSON
// after retry -> fixed fallback; completion call failure -> "error" result.
func (s *Service) generateChunk(ctx context.Context, req Request, days int) Result {
	base := buildPrompt(req, days)

	text, err := s.complete(ctx, base)
	if err != nil {
		return errorResult(err, days)
	}

	res, perr := decodeResult(text)
	if perr != nil {
		// First attempt unparseable: dump it, spend the retry on the
		// unchanged prompt.
		s.dumpRaw("invalid_json", text)
		retry, rerr := s.complete(ctx, base)
		if rerr != nil {
			return errorResult(rerr, days)
		}
		res, perr = decodeResult(retry)
		if perr != nil {
			s.dumpRaw("invalid_json_retry", retry)
			return fallbackResult(days)
		}
		if days > 0 && len(res.Itinerary) != days {
			res.Warning = countWarning(len(res.Itinerary), days, true)
			res.Source = SourcePartial
		}
		return res
	}

	if days == 0 || len(res.Itinerary) == days {
		return res
	}

	// Day-count mismatch: exactly one retry with an amended prompt. No
	// truncation or padding happens here; a persistent mismatch is only
	// surfaced through the warning.
	got := len(res.Itinerary)
	retry, rerr := s.complete(ctx, retryPrompt(base, got, days))
	if rerr != nil {
		return errorResult(rerr, days)
	}
	res2, perr2 := decodeResult(retry)
	if perr2 != nil {
		s.dumpRaw("invalid_json_retry", retry)
		return fallbackResult(days)
	}
	if len(res2.Itinerary) == days {
		return res2
	}
	res2.Warning = countWarning(len(res2.Itinerary), days, true)
	res2.Source = SourcePartial
	return res2
}

func countWarning(got, want int, afterRetry bool) string {
	if afterRetry {
		return fmt.Sprintf("After retry, model returned %d days but %d were requested.", got, want)
	}
	return fmt.Sprintf("Model returned %d days but %d were requested.", got, want)
}

// complete performs one model call with the fixed generation parameters.
func (s *Service) complete(ctx context.Context, prompt string) (string, error) {
	cctx, cancel := context.WithTimeout(ctx, s.callTimeout)
	defer cancel()
	return s.completer.Complete(cctx, ai.CompletionRequest{
		System:          systemPrompt,
		Prompt:          prompt,
		Temperature:     genTemperature,
		MaxOutputTokens: genMaxTokens,
	})
}

// extractJSON slices the text to its outermost {...} span so that JSON
// wrapped in prose or code fences still parses. Best-effort: when no brace
// pair exists the text is returned untouched and parsing fails downstream.
func extractJSON(raw string) string {
	text := strings.TrimSpace(raw)
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start == -1 || end < start {
		return text
	}
	return text[start : end+1]
}

func decodeResult(raw string) (Result, error) {
	var res Result
	if err := json.Unmarshal([]byte(extractJSON(raw)), &res); err != nil {
		return Result{}, err
	}
	return res, nil
}

// dumpRaw persists offending model output to a timestamped file for offline
// debugging. Write failures are logged, never escalated.
func (s *Service) dumpRaw(label, content string) {
	name := fmt.Sprintf("itinerary_raw_%s_%d.json", label, time.Now().Unix())
	path := filepath.Join(s.rawDir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		log.Printf("itinerary: failed to write raw model output: %v", err)
		return
	}
	log.Printf("itinerary: raw model output saved to %s", path)
}
