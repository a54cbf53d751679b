// Copyright 2026 Erraggy
// SPDX-License-Identifier: MIT

package pathutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPointerBuilder(t *testing.T) {
	t.Run("empty builder", func(t *testing.T) {
		p := Get()
		defer Put(p)
		assert.Equal(t, "", p.String())
	})

	t.Run("single token", func(t *testing.T) {
		p := Get()
		defer Put(p)
		p.Push("definitions")
		assert.Equal(t, "/definitions", p.String())
	})

	t.Run("nested tokens", func(t *testing.T) {
		p := Get()
		defer Put(p)
		p.Push("definitions")
		p.Push("Room")
		p.Push("properties")
		p.Push("id")
		assert.Equal(t, "/definitions/Room/properties/id", p.String())
	})

	t.Run("array index", func(t *testing.T) {
		p := Get()
		defer Put(p)
		p.Push("allOf")
		p.PushIndex(0)
		assert.Equal(t, "/allOf/0", p.String())
	})

	t.Run("pop rewinds", func(t *testing.T) {
		p := Get()
		defer Put(p)
		p.Push("definitions")
		p.Push("Room")
		p.Pop()
		p.Push("Item")
		assert.Equal(t, "/definitions/Item", p.String())
	})

	t.Run("pop on empty is a no-op", func(t *testing.T) {
		p := Get()
		defer Put(p)
		p.Pop()
		assert.Equal(t, "", p.String())
	})

	t.Run("escapes rfc6901 special characters", func(t *testing.T) {
		p := Get()
		defer Put(p)
		p.Push("a/b")
		p.Push("c~d")
		assert.Equal(t, "/a~1b/c~0d", p.String())
	})

	t.Run("reset clears state", func(t *testing.T) {
		p := Get()
		defer Put(p)
		p.Push("definitions")
		p.Reset()
		assert.Equal(t, "", p.String())
		p.Push("properties")
		assert.Equal(t, "/properties", p.String())
	})
}

func TestPoolReuse(t *testing.T) {
	p := Get()
	p.Push("definitions")
	Put(p)

	q := Get()
	defer Put(q)
	// A pooled builder must come back reset.
	assert.Equal(t, "", q.String())
}
