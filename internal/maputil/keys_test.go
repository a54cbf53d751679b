package maputil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSortedKeys(t *testing.T) {
	tests := []struct {
		name     string
		input    map[string]bool
		expected []string
	}{
		{
			name:     "sorted keys",
			input:    map[string]bool{"percent": true, "DropSchema": true, "EnemySchema": true},
			expected: []string{"DropSchema", "EnemySchema", "percent"},
		},
		{
			name:     "single key",
			input:    map[string]bool{"RoomSchema": true},
			expected: []string{"RoomSchema"},
		},
		{
			name:     "empty map",
			input:    map[string]bool{},
			expected: []string{},
		},
		{
			name:     "nil map",
			input:    nil,
			expected: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SortedKeys(tt.input)
			assert.Equal(t, tt.expected, got, "SortedKeys(%v)", tt.input)
		})
	}
}

func TestSortedKeys_DefinitionValues(t *testing.T) {
	input := map[string]any{
		"weaponProperties": map[string]any{"type": "object"},
		"damage":           map[string]any{"type": "integer"},
		"flags":            map[string]any{"type": "array"},
	}
	got := SortedKeys(input)
	expected := []string{"damage", "flags", "weaponProperties"}
	assert.Equal(t, expected, got, "SortedKeys(%v)", input)
}

func TestSortedKeys_PointerValues(t *testing.T) {
	type schemaFile struct{ name string }
	input := map[string]*schemaFile{
		"m3-weapon.schema.json": {name: "WeaponSchema"},
		"m3-drop.schema.json":   {name: "DropSchema"},
	}
	got := SortedKeys(input)
	expected := []string{"m3-drop.schema.json", "m3-weapon.schema.json"}
	assert.Equal(t, expected, got, "SortedKeys(pointer map)")
}
