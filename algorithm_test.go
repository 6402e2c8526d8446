package kmeans

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAssignment(t *testing.T) {
	tests := []struct {
		in   string
		want Assignment
	}{
		{"", AssignmentAuto},
		{"auto", AssignmentAuto},
		{"serial", AssignmentSerial},
		{"parallel", AssignmentParallel},
	}
	for _, tt := range tests {
		got, err := ParseAssignment(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got)
	}

	_, err := ParseAssignment("Parallel")
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestSelectAssignment(t *testing.T) {
	base := Config{Assignment: AssignmentAuto, Workers: 4, ParallelThreshold: 1000}

	tests := []struct {
		name       string
		mutate     func(*Config)
		n, k, dims int
		want       Assignment
	}{
		{"auto small input", nil, 10, 2, 2, AssignmentSerial},
		{"auto at threshold", nil, 100, 5, 2, AssignmentParallel},
		{"auto single worker", func(c *Config) { c.Workers = 1 }, 10000, 5, 2, AssignmentSerial},
		{"auto single instance", func(c *Config) { c.ParallelThreshold = 1 }, 1, 1, 2, AssignmentSerial},
		{"forced serial", func(c *Config) { c.Assignment = AssignmentSerial }, 10000, 5, 2, AssignmentSerial},
		{"forced parallel", func(c *Config) { c.Assignment = AssignmentParallel }, 2, 1, 1, AssignmentParallel},
		{"forced parallel one worker", func(c *Config) {
			c.Assignment = AssignmentParallel
			c.Workers = 1
		}, 10000, 5, 2, AssignmentSerial},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base
			if tt.mutate != nil {
				tt.mutate(&cfg)
			}
			assert.Equal(t, tt.want, selectAssignment(cfg, tt.n, tt.k, tt.dims))
		})
	}
}
