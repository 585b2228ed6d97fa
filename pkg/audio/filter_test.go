package audio

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterRender(t *testing.T) {
	assert.Equal(t, "anull", Filter{Name: "anull"}.render())
	assert.Equal(t, "adelay=delays=2500:all=1", Adelay(2500).render())
	assert.Equal(t, "aformat=sample_fmts=s16:channel_layouts=stereo", Aformat("s16", "stereo").render())
	assert.Equal(t, "aresample=44100", Aresample(44100).render())
	assert.Equal(t, "amix=inputs=3:normalize=0", Amix(3).render())
}

func TestChainRender(t *testing.T) {
	chain := Chain{
		Inputs:  []string{"0:a"},
		Filters: []Filter{Aresample(48000), Aformat("s32", "stereo")},
		Output:  "a0",
	}
	assert.Equal(t, "[0:a]aresample=48000,aformat=sample_fmts=s32:channel_layouts=stereo[a0]", chain.render())
}

func TestPadGraph(t *testing.T) {
	assert.Equal(t,
		"adelay=delays=1500:all=1,aformat=sample_fmts=s16:channel_layouts=stereo",
		PadGraph(1500).Render())
}

func TestMixGraph(t *testing.T) {
	t.Run("two aligned inputs", func(t *testing.T) {
		want := "[0:a]aresample=48000,aformat=sample_fmts=s32:channel_layouts=stereo[a0];" +
			"[1:a]aresample=48000,aformat=sample_fmts=s32:channel_layouts=stereo[a1];" +
			"[a0][a1]amix=inputs=2:normalize=0,aformat=sample_fmts=s32:channel_layouts=stereo[mix]"
		assert.Equal(t, want, MixGraph(2, nil, 48000).Render())
	})

	t.Run("offsets delay only late tracks", func(t *testing.T) {
		got := MixGraph(2, []float64{0, 2.5}, 44100).Render()
		want := "[0:a]aresample=44100,aformat=sample_fmts=s32:channel_layouts=stereo[a0];" +
			"[1:a]adelay=delays=2500:all=1,aresample=44100,aformat=sample_fmts=s32:channel_layouts=stereo[a1];" +
			"[a0][a1]amix=inputs=2:normalize=0,aformat=sample_fmts=s32:channel_layouts=stereo[mix]"
		assert.Equal(t, want, got)
	})

	t.Run("single input still mixes", func(t *testing.T) {
		want := "[0:a]aresample=48000,aformat=sample_fmts=s32:channel_layouts=stereo[a0];" +
			"[a0]amix=inputs=1:normalize=0,aformat=sample_fmts=s32:channel_layouts=stereo[mix]"
		assert.Equal(t, want, MixGraph(1, nil, 48000).Render())
	})
}

func TestOffsetMS(t *testing.T) {
	assert.Equal(t, 1500, OffsetMS(1.5))
	assert.Equal(t, 42, OffsetMS(0.0421))
	assert.Equal(t, 2000, OffsetMS(2.0004))
	assert.Equal(t, 0, OffsetMS(0))
}
