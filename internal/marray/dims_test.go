package marray

import "testing"

func TestDimsRank(t *testing.T) {
	tests := []struct {
		dims Dims
		rank int
	}{
		{Dims{}, 0},
		{Dims{5}, 1},
		{Dims{2, 3}, 2},
		{Dims{2, 3, 4}, 3},
	}

	for _, tt := range tests {
		if got := tt.dims.Rank(); got != tt.rank {
			t.Errorf("Dims%v.Rank() = %d, want %d", tt.dims, got, tt.rank)
		}
	}
}

func TestDimsOuter(t *testing.T) {
	tests := []struct {
		dims  Dims
		outer int
	}{
		{Dims{}, 0}, // Scalar view
		{Dims{5}, 5},
		{Dims{2, 3}, 2},
		{Dims{7, 3, 4}, 7},
	}

	for _, tt := range tests {
		if got := tt.dims.Outer(); got != tt.outer {
			t.Errorf("Dims%v.Outer() = %d, want %d", tt.dims, got, tt.outer)
		}
	}
}

func TestDimsCount(t *testing.T) {
	tests := []struct {
		dims  Dims
		count int
	}{
		{Dims{}, 1}, // Scalar view holds one element
		{Dims{5}, 5},
		{Dims{2, 3}, 6},
		{Dims{2, 3, 4}, 24},
		{Dims{1, 1, 1}, 1},
	}

	for _, tt := range tests {
		if got := tt.dims.Count(); got != tt.count {
			t.Errorf("Dims%v.Count() = %d, want %d", tt.dims, got, tt.count)
		}
	}
}

func TestDimsValidate(t *testing.T) {
	valid := []Dims{
		{1},
		{3, 4},
		{2, 3, 4},
	}
	for _, d := range valid {
		if err := d.Validate(); err != nil {
			t.Errorf("Dims%v.Validate() failed: %v", d, err)
		}
	}

	invalid := []Dims{
		{0},
		{3, 0},
		{-1},
		{3, -4},
	}
	for _, d := range invalid {
		if err := d.Validate(); err == nil {
			t.Errorf("Dims%v.Validate() should have failed", d)
		}
	}
}

func TestDimsEqual(t *testing.T) {
	tests := []struct {
		a, b  Dims
		equal bool
	}{
		{Dims{2, 3}, Dims{2, 3}, true},
		{Dims{2, 3}, Dims{3, 2}, false},
		{Dims{2, 3}, Dims{2, 3, 1}, false},
		{Dims{}, Dims{}, true},
		{Dims{5}, Dims{5}, true},
	}

	for _, tt := range tests {
		if got := tt.a.Equal(tt.b); got != tt.equal {
			t.Errorf("Dims%v.Equal(%v) = %v, want %v", tt.a, tt.b, got, tt.equal)
		}
	}
}

func TestDimsClone(t *testing.T) {
	d := Dims{2, 3, 4}
	clone := d.Clone()

	if !d.Equal(clone) {
		t.Fatalf("clone %v differs from original %v", clone, d)
	}

	clone[0] = 99
	if d[0] != 2 {
		t.Errorf("mutating the clone changed the original: %v", d)
	}
}

func TestDimsStrides(t *testing.T) {
	tests := []struct {
		dims    Dims
		strides []int
	}{
		{Dims{5}, []int{1}},
		{Dims{2, 3}, []int{3, 1}},
		{Dims{2, 3, 4}, []int{12, 4, 1}},
	}

	for _, tt := range tests {
		got := tt.dims.Strides()
		if len(got) != len(tt.strides) {
			t.Errorf("Dims%v.Strides() = %v, want %v", tt.dims, got, tt.strides)
			continue
		}
		for i := range got {
			if got[i] != tt.strides[i] {
				t.Errorf("Dims%v.Strides() = %v, want %v", tt.dims, got, tt.strides)
				break
			}
		}
	}
}

func TestDimsString(t *testing.T) {
	tests := []struct {
		dims Dims
		str  string
	}{
		{Dims{}, "()"},
		{Dims{5}, "(5)"},
		{Dims{2, 3}, "(2, 3)"},
	}

	for _, tt := range tests {
		if got := tt.dims.String(); got != tt.str {
			t.Errorf("Dims%v.String() = %q, want %q", tt.dims, got, tt.str)
		}
	}
}
