package audio

import (
	"fmt"
	"math"
	"strings"
)

// Filter is one node of an ffmpeg filter chain.
type Filter struct {
	Name string
	Args []string
}

func (f Filter) render() string {
	if len(f.Args) == 0 {
		return f.Name
	}
	return f.Name + "=" + strings.Join(f.Args, ":")
}

// Chain is a linear filter sequence from input labels to an output
// label. Labels are empty for simple (-af) graphs, where ffmpeg wires
// the source and sink implicitly.
type Chain struct {
	Inputs  []string
	Filters []Filter
	Output  string
}

func (c Chain) render() string {
	var b strings.Builder
	for _, in := range c.Inputs {
		b.WriteString("[" + in + "]")
	}
	parts := make([]string, len(c.Filters))
	for i, f := range c.Filters {
		parts[i] = f.render()
	}
	b.WriteString(strings.Join(parts, ","))
	if c.Output != "" {
		b.WriteString("[" + c.Output + "]")
	}
	return b.String()
}

// Graph is a filter graph as data, rendered on demand to a
// -filter_complex (or -af) expression.
type Graph struct {
	Chains []Chain
}

// Render produces the ffmpeg filter expression.
func (g Graph) Render() string {
	parts := make([]string, len(g.Chains))
	for i, c := range g.Chains {
		parts[i] = c.render()
	}
	return strings.Join(parts, ";")
}

// Adelay prepends offsetMS of silence on all channels.
func Adelay(offsetMS int) Filter {
	return Filter{Name: "adelay", Args: []string{fmt.Sprintf("delays=%d", offsetMS), "all=1"}}
}

// Aformat constrains sample format and channel layout.
func Aformat(sampleFmt, channelLayout string) Filter {
	return Filter{Name: "aformat", Args: []string{
		"sample_fmts=" + sampleFmt,
		"channel_layouts=" + channelLayout,
	}}
}

// Aresample converts to the given sample rate.
func Aresample(rate int) Filter {
	return Filter{Name: "aresample", Args: []string{fmt.Sprintf("%d", rate)}}
}

// Amix mixes n inputs without normalizing, so per-track levels are
// preserved instead of being divided by the track count.
func Amix(n int) Filter {
	return Filter{Name: "amix", Args: []string{fmt.Sprintf("inputs=%d", n), "normalize=0"}}
}

// OffsetMS converts a second offset to whole milliseconds for adelay.
func OffsetMS(offsetSeconds float64) int {
	return int(math.Round(offsetSeconds * 1000))
}

// PadGraph builds the track-padding graph: adelay at the input sample
// rate, then s16 stereo, for a simple -af expression.
func PadGraph(offsetMS int) Graph {
	return Graph{Chains: []Chain{{
		Filters: []Filter{
			Adelay(offsetMS),
			Aformat("s16", "stereo"),
		},
	}}}
}

// MixGraph builds the n-input mixdown graph. Each input is optionally
// delayed, then resampled and reformatted to (s32, stereo, rate) before
// a non-normalizing amix; the mixed label is "mix". offsets may be nil
// when inputs are already aligned (pre-padded tracks).
func MixGraph(n int, offsets []float64, rate int) Graph {
	var g Graph
	labels := make([]string, n)
	for i := 0; i < n; i++ {
		var filters []Filter
		if i < len(offsets) {
			if ms := OffsetMS(offsets[i]); ms > 0 {
				filters = append(filters, Adelay(ms))
			}
		}
		filters = append(filters, Aresample(rate), Aformat("s32", "stereo"))
		labels[i] = fmt.Sprintf("a%d", i)
		g.Chains = append(g.Chains, Chain{
			Inputs:  []string{fmt.Sprintf("%d:a", i)},
			Filters: filters,
			Output:  labels[i],
		})
	}
	g.Chains = append(g.Chains, Chain{
		Inputs:  labels,
		Filters: []Filter{Amix(n), Aformat("s32", "stereo")},
		Output:  "mix",
	})
	return g
}
