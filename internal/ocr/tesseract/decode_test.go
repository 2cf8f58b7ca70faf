package tesseract

import (
	"errors"
	"testing"
)

func TestIsDecodeFailure(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"pix not set after pixReadMem", errors.New("PixImage is not set, use SetImage or SetImageFromBytes before Text or HOCRText"), true},
		{"leptonica read", errors.New("Error in pixReadMem: Unknown format: no pix returned"), true},
		{"read image", errors.New("failed to read image"), true},
		{"missing language data", errors.New("failed to initialize TessAPI with code -1"), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isDecodeFailure(tt.err); got != tt.want {
				t.Fatalf("isDecodeFailure(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}
