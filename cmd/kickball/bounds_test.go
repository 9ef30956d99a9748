package main

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestDescribeBounds(t *testing.T) {
	tests := []struct {
		name string
		opts boundsOptions
		want []string
	}{
		{
			name: "default terminal",
			opts: boundsOptions{Width: 80, Height: 24, HUDRows: 1, UnitsX: 4, UnitsY: 2},
			want: []string{
				"screen   80x23 cells",
				"bounds   min (-10.00, -5.75)  max (10.00, 5.75)",
				"size     20.00 x 11.50 units",
			},
		},
		{
			name: "padding grows the field",
			opts: boundsOptions{Width: 80, Height: 24, HUDRows: 1, UnitsX: 4, UnitsY: 2, Padding: 0.5},
			want: []string{"bounds   min (-10.50, -6.25)  max (10.50, 6.25)"},
		},
		{
			name: "negative padding without inset is dropped",
			opts: boundsOptions{Width: 80, Height: 24, HUDRows: 1, UnitsX: 4, UnitsY: 2, Padding: -1},
			want: []string{"padding  0\n", "max (10.00, 5.75)"},
		},
		{
			name: "inset",
			opts: boundsOptions{Width: 80, Height: 24, HUDRows: 1, UnitsX: 4, UnitsY: 2, Padding: -1, AllowInset: true},
			want: []string{"padding  -1\n", "max (9.00, 4.75)"},
		},
		{
			name: "footprint",
			opts: boundsOptions{Width: 80, Height: 24, HUDRows: 1, UnitsX: 4, UnitsY: 2, Half: 0.5},
			want: []string{"centers  min (-9.50, -5.25)  max (9.50, 5.25)"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			describeBounds(&buf, tt.opts, log.New(io.Discard))
			out := buf.String()
			for _, w := range tt.want {
				if !strings.Contains(out, w) {
					t.Errorf("output missing %q:\n%s", w, out)
				}
			}
		})
	}
}
