package tmux

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"framepad/internal/layout"
)

func TestChecksum_KnownLayout(t *testing.T) {
	// Layout reported by tmux for a window split into two side-by-side panes.
	assert.Equal(t, "bb62", Checksum("159x48,0,0{79x48,0,0,79x48,80,0}"))
}

func TestLayout(t *testing.T) {
	tests := []struct {
		name  string
		build func(*layout.Tree) error
		want  string
	}{
		{
			name:  "single pane",
			build: func(*layout.Tree) error { return nil },
			want:  "b25d,80x24,0,0,0",
		},
		{
			name:  "side by side",
			build: func(tr *layout.Tree) error { return tr.Split(0, layout.Horizontal) },
			want:  "89f5,80x24,0,0{39x24,0,0,0,40x24,40,0,1}",
		},
		{
			name:  "stacked",
			build: func(tr *layout.Tree) error { return tr.Split(0, layout.Vertical) },
			want:  "9295,80x24,0,0[80x11,0,0,0,80x12,0,12,1]",
		},
		{
			name: "nested",
			build: func(tr *layout.Tree) error {
				if err := tr.Split(0, layout.Horizontal); err != nil {
					return err
				}
				return tr.Split(0, layout.Vertical)
			},
			want: "9245,80x24,0,0{39x24,0,0[39x11,0,0,0,39x12,0,12,1],40x24,40,0,2}",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := layout.New()
			require.NoError(t, tt.build(tr))
			assert.Equal(t, tt.want, Layout(tr, 80, 24))
		})
	}
}

func TestLayout_ChecksumCoversBody(t *testing.T) {
	tr := layout.New()
	require.NoError(t, tr.Split(0, layout.Horizontal))
	require.NoError(t, tr.Resize(0, 0.2))

	got := Layout(tr, 120, 40)
	require.Greater(t, len(got), 5)
	assert.Equal(t, Checksum(got[5:]), got[:4])
	assert.Equal(t, byte(','), got[4])
}

func TestWindowPaneCount(t *testing.T) {
	if !InTmux() {
		t.Skip("Skipping tmux test: not running inside tmux")
	}
	n, err := WindowPaneCount()
	require.NoError(t, err)
	assert.GreaterOrEqual(t, n, 1)
}
