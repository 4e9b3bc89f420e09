package preset

import (
	"fmt"
	"testing"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/matzehuels/slidertrack/pkg/errors"
)

func TestFindError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want errors.Code
	}{
		{"no documents", mongo.ErrNoDocuments, errors.ErrCodePresetNotFound},
		{"wrapped no documents", fmt.Errorf("decode: %w", mongo.ErrNoDocuments), errors.ErrCodePresetNotFound},
		{"other failure", mongo.ErrClientDisconnected, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := findError("half", tt.err)
			if code := errors.GetCode(got); code != tt.want {
				t.Errorf("findError() code = %q, want %q (err %v)", code, tt.want, got)
			}
		})
	}
}
