package named

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/axial-ml/axial/internal/buffer"
)

func TestAxisSetValidate(t *testing.T) {
	tests := []struct {
		name    string
		axes    AxisSet
		wantErr error
	}{
		{"valid", AxisSet{{"x", 3}, {"y", 2}}, nil},
		{"empty set", AxisSet{}, nil},
		{"zero extent", AxisSet{{"x", 0}}, nil},
		{"empty name", AxisSet{{"", 3}}, ErrInvalidParameter},
		{"negative extent", AxisSet{{"x", -1}}, ErrInvalidParameter},
		{"duplicate name", AxisSet{{"x", 3}, {"x", 2}}, ErrAxisMismatch},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.axes.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestAxisSetAccessors(t *testing.T) {
	axes := AxisSet{{"time", 10}, {"lat", 4}, {"lon", 8}}

	assert.Equal(t, 3, axes.Rank())
	assert.Equal(t, []string{"time", "lat", "lon"}, axes.Names())
	assert.Equal(t, buffer.Shape{10, 4, 8}, axes.Extents())

	assert.True(t, axes.Has("lat"))
	assert.False(t, axes.Has("depth"))

	extent, ok := axes.Get("lon")
	assert.True(t, ok)
	assert.Equal(t, 8, extent)
	_, ok = axes.Get("depth")
	assert.False(t, ok)

	assert.Equal(t, 1, axes.Index("lat"))
	assert.Equal(t, -1, axes.Index("depth"))
}

func TestAxisSetClone(t *testing.T) {
	axes := AxisSet{{"x", 3}}
	clone := axes.Clone()
	clone[0].Extent = 99

	assert.Equal(t, 3, axes[0].Extent)
}

func TestAxisSetEquality(t *testing.T) {
	a := AxisSet{{"x", 3}, {"y", 2}}
	b := AxisSet{{"y", 2}, {"x", 3}}

	assert.True(t, a.Equal(b), "order must not matter")
	assert.False(t, a.EqualOrdered(b), "order must matter")
	assert.True(t, a.EqualOrdered(a.Clone()))

	assert.False(t, a.Equal(AxisSet{{"x", 3}, {"y", 5}}), "extent differs")
	assert.False(t, a.Equal(AxisSet{{"x", 3}, {"z", 2}}), "name differs")
	assert.False(t, a.Equal(AxisSet{{"x", 3}}), "rank differs")
}

func TestAxisSetString(t *testing.T) {
	assert.Equal(t, "{x:3, y:2}", AxisSet{{"x", 3}, {"y", 2}}.String())
	assert.Equal(t, "{}", AxisSet{}.String())
}
