// Copyright 2026 Erraggy
// SPDX-License-Identifier: MIT

package pathutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefinitionRef(t *testing.T) {
	assert.Equal(t, "#/definitions/RoomSchema", DefinitionRef("RoomSchema"))
	assert.Equal(t, "#/definitions/", DefinitionRef(""))
}
