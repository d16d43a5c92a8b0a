package colour

import (
	"errors"
	"reflect"
	"testing"
)

func TestGridResolution(t *testing.T) {
	tests := []struct {
		name  string
		count int
		want  int
	}{
		{name: "zero", count: 0, want: 1},
		{name: "one", count: 1, want: 1},
		{name: "two", count: 2, want: 2},
		{name: "perfect cube 8", count: 8, want: 2},
		{name: "just above cube", count: 9, want: 3},
		{name: "perfect cube 27", count: 27, want: 3},
		{name: "just above 27", count: 28, want: 4},
		{name: "100", count: 100, want: 5},
		{name: "perfect cube 125", count: 125, want: 5},
		{name: "just above 125", count: 126, want: 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GridResolution(tt.count); got != tt.want {
				t.Errorf("GridResolution(%d) = %d, want %d", tt.count, got, tt.want)
			}
		})
	}
}

func TestSampleGridSingleColour(t *testing.T) {
	palette, err := SampleGrid(1)
	if err != nil {
		t.Fatalf("SampleGrid(1) returned error: %v", err)
	}

	want := []RGB{{R: 128, G: 128, B: 128}}
	if got := palette.ToRGBSlice(); !reflect.DeepEqual(got, want) {
		t.Errorf("SampleGrid(1) = %v, want %v", got, want)
	}
}

func TestSampleGridEightColours(t *testing.T) {
	palette, err := SampleGrid(8)
	if err != nil {
		t.Fatalf("SampleGrid(8) returned error: %v", err)
	}

	// Resolution 2 puts channel midpoints at 64 and 192; enumeration is
	// red-major with blue varying fastest.
	want := []RGB{
		{R: 64, G: 64, B: 64},
		{R: 64, G: 64, B: 192},
		{R: 64, G: 192, B: 64},
		{R: 64, G: 192, B: 192},
		{R: 192, G: 64, B: 64},
		{R: 192, G: 64, B: 192},
		{R: 192, G: 192, B: 64},
		{R: 192, G: 192, B: 192},
	}
	if got := palette.ToRGBSlice(); !reflect.DeepEqual(got, want) {
		t.Errorf("SampleGrid(8) = %v, want %v", got, want)
	}
}

func TestSampleGridTruncation(t *testing.T) {
	// A non-cube count overshoots the grid and is cut positionally, so
	// the result is a prefix of the next cube's enumeration.
	five, err := SampleGrid(5)
	if err != nil {
		t.Fatalf("SampleGrid(5) returned error: %v", err)
	}

	eight, err := SampleGrid(8)
	if err != nil {
		t.Fatalf("SampleGrid(8) returned error: %v", err)
	}

	if !reflect.DeepEqual(five.ToRGBSlice(), eight.ToRGBSlice()[:5]) {
		t.Errorf("SampleGrid(5) = %v, want first five of SampleGrid(8) = %v",
			five.ToRGBSlice(), eight.ToRGBSlice()[:5])
	}
}

func TestSampleGridLength(t *testing.T) {
	counts := []int{1, 2, 3, 7, 8, 9, 26, 27, 28, 64, 100, 333}

	for _, count := range counts {
		palette, err := SampleGrid(count)
		if err != nil {
			t.Fatalf("SampleGrid(%d) returned error: %v", count, err)
		}
		if palette.Len() != count {
			t.Errorf("SampleGrid(%d).Len() = %d, want %d", count, palette.Len(), count)
		}
	}
}

func TestSampleGridResolutionThree(t *testing.T) {
	palette, err := SampleGrid(27)
	if err != nil {
		t.Fatalf("SampleGrid(27) returned error: %v", err)
	}

	// Resolution 3: block width 256/3, midpoints round to 43, 128 and 213.
	rgbs := palette.ToRGBSlice()
	if want := (RGB{R: 43, G: 43, B: 43}); rgbs[0] != want {
		t.Errorf("first colour = %v, want %v", rgbs[0], want)
	}
	if want := (RGB{R: 213, G: 213, B: 213}); rgbs[26] != want {
		t.Errorf("last colour = %v, want %v", rgbs[26], want)
	}
}

func TestSampleGridZero(t *testing.T) {
	palette, err := SampleGrid(0)
	if err != nil {
		t.Fatalf("SampleGrid(0) returned error: %v", err)
	}
	if palette.Len() != 0 {
		t.Errorf("SampleGrid(0).Len() = %d, want 0", palette.Len())
	}
}

func TestSampleGridNegative(t *testing.T) {
	for _, count := range []int{-1, -5, -1000} {
		palette, err := SampleGrid(count)
		if err == nil {
			t.Fatalf("SampleGrid(%d) did not return an error", count)
		}
		if !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("SampleGrid(%d) error = %v, want ErrInvalidArgument", count, err)
		}
		if palette != nil {
			t.Errorf("SampleGrid(%d) returned non-nil palette on error", count)
		}
	}
}

func TestSampleGridDeterministic(t *testing.T) {
	for _, count := range []int{1, 8, 17, 100} {
		first, err := SampleGrid(count)
		if err != nil {
			t.Fatalf("SampleGrid(%d) returned error: %v", count, err)
		}
		second, err := SampleGrid(count)
		if err != nil {
			t.Fatalf("SampleGrid(%d) returned error: %v", count, err)
		}
		if !reflect.DeepEqual(first.ToRGBSlice(), second.ToRGBSlice()) {
			t.Errorf("SampleGrid(%d) is not deterministic", count)
		}
	}
}

func TestChannelMidpointsClamp(t *testing.T) {
	// At resolution 256 the final midpoint lands on 255.5 and would round
	// to 256; the clamp keeps it in byte range.
	mids := channelMidpoints(256)
	if len(mids) != 256 {
		t.Fatalf("len(channelMidpoints(256)) = %d, want 256", len(mids))
	}
	if mids[0] != 1 {
		t.Errorf("first midpoint = %d, want 1", mids[0])
	}
	if mids[255] != 255 {
		t.Errorf("last midpoint = %d, want 255", mids[255])
	}
}
