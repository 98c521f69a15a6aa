package models

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRangeString(t *testing.T) {
	tests := []struct {
		r        Range
		expected string
	}{
		{Single(0), "0"},
		{Range{Lo: 2, Hi: 4}, "2-4"},
		{Range{Lo: 10, Hi: 10}, "10"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, tt.r.String())
	}
}

func TestSpecString(t *testing.T) {
	s := Spec{{0, 2}, {5, 5}, {7, 9}}
	assert.Equal(t, "0-2,5,7-9", s.String())
	assert.Equal(t, "", Spec(nil).String())
}

func TestSpecClamp(t *testing.T) {
	tests := []struct {
		spec     Spec
		n        int
		expected Spec
	}{
		{Spec{{0, 2}, {5, 5}}, 10, Spec{{0, 2}, {5, 5}}},
		{Spec{{0, 2}, {5, 5}}, 2, Spec{{0, 1}}},
		{Spec{{1, 4}}, 3, Spec{{1, 2}}},
		{Spec{{4, 4}}, 3, nil},
		{Spec{{0, 0}}, 0, nil},
		{nil, 5, nil},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, tt.spec.Clamp(tt.n), "%v.Clamp(%d)", tt.spec, tt.n)
	}
}

func TestSpecClampMaxIntBound(t *testing.T) {
	s := Spec{{0, math.MaxInt}}
	assert.Equal(t, Spec{{0, 2}}, s.Clamp(3))
	assert.Equal(t, 3, s.FirstMissing(3))

	s = Spec{{math.MaxInt, math.MaxInt}}
	assert.Nil(t, s.Clamp(3))
	assert.Equal(t, math.MaxInt, s.FirstMissing(3))
}

func TestSpecFirstMissing(t *testing.T) {
	tests := []struct {
		spec     Spec
		n        int
		expected int
	}{
		{Spec{{0, 2}}, 3, -1},
		{Spec{{1, 4}}, 3, 3},
		{Spec{{0, 0}, {5, 6}}, 3, 5},
		{Spec{{4, 4}}, 3, 4},
		{Spec{{0, 0}}, 0, 0},
		{nil, 0, -1},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, tt.spec.FirstMissing(tt.n), "%v.FirstMissing(%d)", tt.spec, tt.n)
	}
}
