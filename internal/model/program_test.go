package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProgressVolunteers(t *testing.T) {
	tests := []struct {
		name      string
		required  uint
		committed uint
		want      int
	}{
		{"partial fill", 10, 4, 40},
		{"no target means zero", 0, 7, 0},
		{"exact fill", 5, 5, 100},
		{"over-committed capped", 5, 9, 100},
		{"empty program", 10, 0, 0},
		{"rounds down", 3, 1, 33},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &Program{VolunteersRequired: tt.required, VolunteersCommitted: tt.committed}
			assert.Equal(t, tt.want, p.ProgressVolunteers())
		})
	}
}
