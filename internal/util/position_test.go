package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOffsetPosition(t *testing.T) {
	source := []byte("module A\n  X = 1\nend\n")
	tests := []struct {
		name   string
		offset int
		want   Position
	}{
		{name: "start of file", offset: 0, want: Position{Line: 1, Column: 1}},
		{name: "middle of first line", offset: 7, want: Position{Line: 1, Column: 8}},
		{name: "start of second line", offset: 9, want: Position{Line: 2, Column: 1}},
		{name: "constant on second line", offset: 11, want: Position{Line: 2, Column: 3}},
		{name: "end of file", offset: len(source), want: Position{Line: 4, Column: 1}},
		{name: "negative offset", offset: -1, want: Position{}},
		{name: "past the end", offset: len(source) + 1, want: Position{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := OffsetPosition(source, tt.offset)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.want.Line > 0, got.IsValid())
		})
	}
	assert.Equal(t, "2:3", Position{Line: 2, Column: 3}.String())
}
