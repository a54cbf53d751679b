package corpus

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConventionMatch(t *testing.T) {
	conv := DefaultConvention()

	tests := []struct {
		name     string
		filename string
		wantBase string
		wantOK   bool
	}{
		{name: "simple base", filename: "m3-items.schema.json", wantBase: "items", wantOK: true},
		{name: "hyphenated base", filename: "m3-room-state.schema.json", wantBase: "room-state", wantOK: true},
		{name: "empty base", filename: "m3-.schema.json", wantBase: "", wantOK: true},
		{name: "missing prefix", filename: "room.schema.json", wantOK: false},
		{name: "missing suffix", filename: "m3-room.json", wantOK: false},
		{name: "prefix only", filename: "m3-room", wantOK: false},
		{name: "case sensitive prefix", filename: "M3-room.schema.json", wantOK: false},
		{name: "unrelated file", filename: "README.md", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			base, ok := conv.Match(tt.filename)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.wantBase, base)
			}
		})
	}
}

func TestConventionTypeName(t *testing.T) {
	conv := DefaultConvention()

	tests := []struct {
		name     string
		filename string
		want     string
		wantOK   bool
	}{
		{name: "single segment", filename: "m3-items.schema.json", want: "ItemsSchema", wantOK: true},
		{name: "two segments", filename: "m3-room-state.schema.json", want: "RoomStateSchema", wantOK: true},
		{name: "repeated hyphen collapses", filename: "m3-foo--bar.schema.json", want: "FooBarSchema", wantOK: true},
		{name: "three segments", filename: "m3-weapon-damage-table.schema.json", want: "WeaponDamageTableSchema", wantOK: true},
		{name: "underscore preserved", filename: "m3-tech_notes.schema.json", want: "Tech_notesSchema", wantOK: true},
		{name: "non-matching filename", filename: "helpers.json", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := conv.TypeName(tt.filename)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestConventionCustom(t *testing.T) {
	conv := Convention{FilePrefix: "api-", FileSuffix: ".yaml", NameSuffix: "Model"}

	got, ok := conv.TypeName("api-user-profile.yaml")
	assert.True(t, ok)
	assert.Equal(t, "UserProfileModel", got)

	_, ok = conv.TypeName("m3-user.schema.json")
	assert.False(t, ok)
}

func TestNameTableLookup(t *testing.T) {
	table := NameTable{
		"m3-room.schema.json": "RoomSchema",
		"m3-item.schema.json": "ItemSchema",
	}

	name, ok := table.Lookup("m3-room.schema.json")
	assert.True(t, ok)
	assert.Equal(t, "RoomSchema", name)

	_, ok = table.Lookup("m3-missing.schema.json")
	assert.False(t, ok)
}
