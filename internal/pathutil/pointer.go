// Copyright 2026 Erraggy
// SPDX-License-Identifier: MIT

package pathutil

import (
	"strconv"
	"strings"
	"sync"
)

// PointerBuilder provides efficient incremental JSON Pointer construction.
// Uses push/pop semantics to avoid allocations during traversal.
// The full string is only materialized when String() is called.
type PointerBuilder struct {
	tokens []string
	length int // Pre-calculated length for String() allocation
}

// Push adds a reference token to the pointer. The token is escaped per
// RFC 6901 when materialized.
func (p *PointerBuilder) Push(token string) {
	p.tokens = append(p.tokens, token)
	p.length += len(token) + 1 // "/" separator plus worst-case unescaped token
}

// PushIndex adds an array index token: "0", "1", etc.
func (p *PointerBuilder) PushIndex(i int) {
	p.Push(strconv.Itoa(i))
}

// Pop removes the last token.
func (p *PointerBuilder) Pop() {
	if len(p.tokens) == 0 {
		return
	}
	last := p.tokens[len(p.tokens)-1]
	p.tokens = p.tokens[:len(p.tokens)-1]
	p.length -= len(last) + 1
}

// Reset clears the builder for reuse.
func (p *PointerBuilder) Reset() {
	p.tokens = p.tokens[:0]
	p.length = 0
}

// String materializes the pointer, e.g. "/definitions/Room/properties/id".
// An empty builder yields "" (the whole-document pointer).
func (p *PointerBuilder) String() string {
	if len(p.tokens) == 0 {
		return ""
	}
	var b strings.Builder
	b.Grow(p.length)
	for _, token := range p.tokens {
		b.WriteByte('/')
		b.WriteString(escapeToken(token))
	}
	return b.String()
}

// escapeToken applies RFC 6901 escaping: "~" -> "~0", "/" -> "~1".
// The fast path avoids allocation for tokens without special characters.
func escapeToken(token string) string {
	if !strings.ContainsAny(token, "~/") {
		return token
	}
	token = strings.ReplaceAll(token, "~", "~0")
	return strings.ReplaceAll(token, "/", "~1")
}

const (
	defaultPointerCap = 8  // Most pointers are <8 tokens deep
	maxPointerCap     = 64 // Don't pool excessively deep pointers
)

var pointerBuilderPool = sync.Pool{
	New: func() any {
		return &PointerBuilder{
			tokens: make([]string, 0, defaultPointerCap),
		}
	},
}

// Get retrieves a PointerBuilder from the pool, reset and ready to use.
func Get() *PointerBuilder {
	p := pointerBuilderPool.Get().(*PointerBuilder)
	p.Reset()
	return p
}

// Put returns a PointerBuilder to the pool if not oversized.
func Put(p *PointerBuilder) {
	if p == nil || cap(p.tokens) > maxPointerCap {
		return // Let GC collect oversized builders
	}
	pointerBuilderPool.Put(p)
}
