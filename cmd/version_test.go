package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionCommand(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{
			name: "full",
			args: []string{"version"},
			want: "cronparse v1.2.3\nCommit: abc123\nBuilt: 2026-10-19\n",
		},
		{
			name: "short",
			args: []string{"version", "--short"},
			want: "v1.2.3\n",
		},
		{
			name: "short alias",
			args: []string{"version", "-s"},
			want: "v1.2.3\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, stderr, err := run(t, tt.args...)
			require.NoError(t, err)
			assert.Empty(t, stderr)
			assert.Equal(t, tt.want, stdout)
		})
	}
}
