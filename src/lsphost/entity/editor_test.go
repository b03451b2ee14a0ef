package entity

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEditorContextMarshalJSON(t *testing.T) {
	tests := []struct {
		name     string
		ctx      EditorContext
		expected string
	}{
		{
			name: "all defined",
			ctx: EditorContext{
				CurrentFilePath: "/tmp/a.ps1",
				CursorPosition:  Some(Position{Line: 2, Character: 5}),
				SelectionRange:  Some(Range{Start: Position{Line: 1}, End: Position{Line: 2, Character: 5}}),
			},
			expected: `{"currentFilePath":"/tmp/a.ps1","cursorPosition":{"line":2,"character":5},"selectionRange":{"start":{"line":1,"character":0},"end":{"line":2,"character":5}}}`,
		},
		{
			name: "absent selection is null",
			ctx: EditorContext{
				CurrentFilePath: "/tmp/a.ps1",
				CursorPosition:  Some(Position{}),
				SelectionRange:  Null[Range](),
			},
			expected: `{"currentFilePath":"/tmp/a.ps1","cursorPosition":{"line":0,"character":0},"selectionRange":null}`,
		},
		{
			name:     "undefined values are omitted",
			ctx:      EditorContext{},
			expected: `{}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := json.Marshal(tt.ctx)
			require.NoError(t, err)
			assert.JSONEq(t, tt.expected, string(out))
		})
	}
}

func TestEditorOperationResponseWire(t *testing.T) {
	out, err := json.Marshal([]EditorOperationResponse{EditorOperationUnsupported, EditorOperationCompleted})
	require.NoError(t, err)
	assert.Equal(t, "[0,1]", string(out))
}
