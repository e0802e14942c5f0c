package layout

import "testing"

func TestResolve(t *testing.T) {
	tests := []struct {
		name    string
		width   int
		height  int
		wantCol int
		wantRow int
	}{
		{"defaults on zero input", 0, 0, 6, 3},
		{"text block defaults", 6, 200, 6, 3},
		{"full width", 12, 200, 12, 3},
		{"width above grid clamps to 12", 20, 200, 12, 3},
		{"width below grid clamps to 1", -3, 200, 1, 3},
		{"exact row multiple", 4, 160, 4, 2},
		{"one pixel over rounds up", 4, 161, 4, 3},
		{"minimum height is one row", 4, 50, 4, 1},
		{"height caps at eight rows", 4, 2000, 4, 8},
		{"max legal height", 4, 640, 4, 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Resolve(tt.width, tt.height)
			if got.ColSpan != tt.wantCol || got.RowSpan != tt.wantRow {
				t.Errorf("Resolve(%d, %d) = {%d, %d}, want {%d, %d}",
					tt.width, tt.height, got.ColSpan, got.RowSpan, tt.wantCol, tt.wantRow)
			}
		})
	}
}

func TestClampWidth(t *testing.T) {
	tests := []struct {
		in   int
		want int
	}{
		{0, 6},
		{-1, 6},
		{1, 1},
		{12, 12},
		{13, 12},
		{7, 7},
	}
	for _, tt := range tests {
		if got := ClampWidth(tt.in); got != tt.want {
			t.Errorf("ClampWidth(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestClampHeight(t *testing.T) {
	tests := []struct {
		in   int
		want int
	}{
		{0, 200},
		{-10, 200},
		{10, 50},
		{50, 50},
		{640, 640},
		{9999, 640},
		{333, 333},
	}
	for _, tt := range tests {
		if got := ClampHeight(tt.in); got != tt.want {
			t.Errorf("ClampHeight(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
