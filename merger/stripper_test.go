package merger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStripConditionals(t *testing.T) {
	tests := []struct {
		name string
		doc  any
		want any
	}{
		{
			name: "conditional object member removed",
			doc: map[string]any{
				"keep": map[string]any{"type": "string"},
				"drop": map[string]any{"if": map[string]any{}, "then": map[string]any{}},
			},
			want: map[string]any{
				"keep": map[string]any{"type": "string"},
			},
		},
		{
			name: "conditional array element removed",
			doc: []any{
				map[string]any{"required": []any{"id"}},
				map[string]any{"if": map[string]any{}, "then": map[string]any{}},
			},
			want: []any{
				map[string]any{"required": []any{"id"}},
			},
		},
		{
			name: "if alone survives",
			doc: map[string]any{
				"node": map[string]any{"if": map[string]any{}},
			},
			want: map[string]any{
				"node": map[string]any{"if": map[string]any{}},
			},
		},
		{
			name: "then alone survives",
			doc: map[string]any{
				"node": map[string]any{"then": map[string]any{}},
			},
			want: map[string]any{
				"node": map[string]any{"then": map[string]any{}},
			},
		},
		{
			name: "nested conditional removed",
			doc: map[string]any{
				"properties": map[string]any{
					"status": map[string]any{"type": "string"},
					"unlock": map[string]any{
						"if":   map[string]any{"x": 1},
						"then": map[string]any{"y": 2},
					},
				},
			},
			want: map[string]any{
				"properties": map[string]any{
					"status": map[string]any{"type": "string"},
				},
			},
		},
		{
			name: "conditional inside kept sibling removed",
			doc: map[string]any{
				"allOf": []any{
					map[string]any{
						"anyOf": []any{
							map[string]any{"if": true, "then": false},
							map[string]any{"type": "integer"},
						},
					},
				},
			},
			want: map[string]any{
				"allOf": []any{
					map[string]any{
						"anyOf": []any{
							map[string]any{"type": "integer"},
						},
					},
				},
			},
		},
		{
			name: "conditional root is kept",
			doc:  map[string]any{"if": map[string]any{}, "then": map[string]any{}},
			want: map[string]any{"if": map[string]any{}, "then": map[string]any{}},
		},
		{
			name: "scalars pass through",
			doc:  "a string",
			want: "a string",
		},
		{
			name: "boolean schema passes through",
			doc:  true,
			want: true,
		},
		{
			name: "nil passes through",
			doc:  nil,
			want: nil,
		},
		{
			name: "conditional values of if keys still count",
			doc: map[string]any{
				"drop": map[string]any{"if": "anything", "then": 42},
			},
			want: map[string]any{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StripConditionals(tt.doc))
		})
	}
}

func TestStripConditionalsIdempotent(t *testing.T) {
	doc := map[string]any{
		"properties": map[string]any{
			"a": map[string]any{"if": 1, "then": 2},
			"b": map[string]any{"type": "string"},
		},
	}

	once := StripConditionals(doc)
	twice := StripConditionals(once)
	assert.Equal(t, once, twice)
}

func TestStripConditionalsDoesNotMutateInput(t *testing.T) {
	doc := map[string]any{
		"keep": map[string]any{"type": "string"},
		"drop": map[string]any{"if": 1, "then": 2},
	}

	got := StripConditionals(doc)

	require.Contains(t, doc, "drop", "input must be left intact")
	stripped, ok := got.(map[string]any)
	require.True(t, ok)
	assert.NotContains(t, stripped, "drop")
}
