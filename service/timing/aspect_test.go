package timing

import "testing"

func TestDetectAspect(t *testing.T) {
	tests := []struct {
		h, v  int
		name  string
		vSync int
	}{
		{640, 480, "4:3", 4},
		{1920, 1080, "16:9", 5},
		{1280, 720, "16:9", 5},
		{1920, 1200, "16:10", 6},
		{1280, 1024, "5:4", 7},
		{1280, 768, "15:9", 7},
		{2560, 1080, "64:27", 10},
		{1366, 768, "Unknown", 10},
		{1000, 1000, "Unknown", 10},
	}
	for _, tc := range tests {
		a := DetectAspect(tc.h, tc.v)
		if a.Name != tc.name || a.VSync != tc.vSync {
			t.Errorf("%dx%d: expected %s/%d, got %s/%d", tc.h, tc.v, tc.name, tc.vSync, a.Name, a.VSync)
		}
	}
}
