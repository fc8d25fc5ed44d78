package core

import "testing"

func TestParseAxis(t *testing.T) {
	tests := []struct {
		input   string
		want    Axis
		wantErr bool
	}{
		{"horizontal", AxisHorizontal, false},
		{"x", AxisHorizontal, false},
		{"vertical", AxisVertical, false},
		{"y", AxisVertical, false},
		{"diagonal", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseAxis(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Expected error=%v, got %v", tt.wantErr, err)
			}
			if err == nil && got != tt.want {
				t.Errorf("Expected axis %v, got %v", tt.want, got)
			}
		})
	}
}

func TestAxisMeasure(t *testing.T) {
	r := Rect{X: 10, Y: 20, Width: 100, Height: 50}

	if got := AxisHorizontal.MeasureSize(r); got != 100 {
		t.Errorf("Expected horizontal size 100, got %v", got)
	}
	if got := AxisVertical.MeasureSize(r); got != 50 {
		t.Errorf("Expected vertical size 50, got %v", got)
	}
	if got := AxisHorizontal.MeasureStart(r); got != 10 {
		t.Errorf("Expected horizontal start 10, got %v", got)
	}
	if got := AxisVertical.MeasureEnd(r); got != 70 {
		t.Errorf("Expected vertical end 70, got %v", got)
	}
	if got := AxisVertical.MeasurePoint(3, 7); got != 7 {
		t.Errorf("Expected vertical point 7, got %v", got)
	}
}
