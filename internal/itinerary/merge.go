// README: Fold of per-chunk results into one itinerary with continuous day numbering.
package itinerary

import (
	"fmt"
	"strings"
)

// mergeChunks folds chunk results, in chunk order, into a single Result.
// Chunk-local day numbers are discarded and reassigned sequentially from 1.
// Transportation is unioned as a set (first occurrence wins the position);
// places, hotels and costs are concatenated without deduplication.
//
// When chunks carry warnings the merged warning prefixes each one with its
// 1-based chunk index, and the merged source is the last contributing
// chunk's source ("most recent anomaly wins").
func mergeChunks(chunks []Result) Result {
	merged := Result{
		Places:         []Place{},
		Hotels:         []Hotel{},
		Transportation: []string{},
		Costs:          []string{},
		Itinerary:      []Day{},
	}

	seenTransport := make(map[string]bool)
	var warnings []string
	var source string
	day := 1

	for i, c := range chunks {
		for _, d := range c.Itinerary {
			d.Day = day
			merged.Itinerary = append(merged.Itinerary, d)
			day++
		}
		merged.Places = append(merged.Places, c.Places...)
		merged.Hotels = append(merged.Hotels, c.Hotels...)
		merged.Costs = append(merged.Costs, c.Costs...)
		for _, t := range c.Transportation {
			if seenTransport[t] {
				continue
			}
			seenTransport[t] = true
			merged.Transportation = append(merged.Transportation, t)
		}
		if c.Warning != "" {
			warnings = append(warnings, fmt.Sprintf("Chunk %d: %s", i+1, c.Warning))
			if c.Source != "" {
				source = c.Source
			}
		}
	}

	if len(warnings) > 0 {
		merged.Warning = strings.Join(warnings, " ")
		merged.Source = source
	}
	return merged
}
