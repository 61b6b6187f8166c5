package tailship

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPromptVersion(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Version
		prompts int
	}{
		{name: "v3 first try", input: "v3\n", want: VersionV3, prompts: 1},
		{name: "v4 first try", input: "v4\n", want: VersionV4, prompts: 1},
		{name: "case and whitespace", input: "  V4 \n", want: VersionV4, prompts: 1},
		{name: "retries on invalid input", input: "v2\nlatest\nv3\n", want: VersionV3, prompts: 3},
		{name: "accepts final line without newline", input: "v4", want: VersionV4, prompts: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out strings.Builder
			got, err := PromptVersion(strings.NewReader(tt.input), &out)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.prompts, strings.Count(out.String(), "[v3/v4]"))
		})
	}
}

func TestPromptVersion_EOFWithoutSelection(t *testing.T) {
	var out strings.Builder
	_, err := PromptVersion(strings.NewReader("nope\n"), &out)
	require.ErrorIs(t, err, ErrNoVersionSelected)
}
