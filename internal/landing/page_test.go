package landing

import (
	"math"
	"testing"

	"github.com/nfrund/oncampus/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestPage_ClampsProgress(t *testing.T) {
	p := New(domain.RoleStudent)
	assert.Equal(t, 0.0, p.Progress())

	p.SetScrollProgress(-0.5)
	assert.Equal(t, 0.0, p.Progress())

	p.SetScrollProgress(3)
	assert.Equal(t, 1.0, p.Progress())

	p.SetScrollProgress(math.NaN())
	assert.Equal(t, 0.0, p.Progress())
}

func TestPage_Thresholds(t *testing.T) {
	tests := []struct {
		progress   float64
		emphasised bool
		inverted   bool
	}{
		{0, false, false},
		{0.3, false, false},
		{0.35, true, false},
		{0.4, true, false},
		{0.41, true, true},
	}
	for _, tt := range tests {
		p := New(domain.RoleEmployer)
		p.SetScrollProgress(tt.progress)
		assert.Equal(t, tt.emphasised, p.Emphasised(), "progress %v", tt.progress)
		assert.Equal(t, tt.inverted, p.Inverted(), "progress %v", tt.progress)
	}
}

func TestPage_Background(t *testing.T) {
	p := New(domain.RoleEmployer)
	assert.Equal(t, "#1b1f3b", p.Background())

	p.SetScrollProgress(0.3)
	assert.Equal(t, "#2a2f4f", p.Background())

	p.SetScrollProgress(0.9)
	assert.Equal(t, "#ffffff", p.Background())

	u := New(domain.RoleUniversity)
	assert.Equal(t, "#eef2ff", u.Background())
}
