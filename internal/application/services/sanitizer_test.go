package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTextSanitizer_Sanitize(t *testing.T) {
	s := NewTextSanitizer()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "plain text passes through",
			in:   "hello",
			want: "hello",
		},
		{
			name: "script tag removed",
			in:   `before<script>alert("xss")</script>after`,
			want: "beforeafter",
		},
		{
			name: "formatting tags preserved",
			in:   "<b>bold</b> and <em>emphasis</em>",
			want: "<b>bold</b> and <em>emphasis</em>",
		},
		{
			name: "block tags preserved",
			in:   "<p>para</p><blockquote>quote</blockquote>",
			want: "<p>para</p><blockquote>quote</blockquote>",
		},
		{
			name: "attributes stripped",
			in:   `<p style="color:red" onclick="evil()">text</p>`,
			want: "<p>text</p>",
		},
		{
			name: "links removed but text kept",
			in:   `<a href="https://example.com">link</a>`,
			want: "link",
		},
		{
			name: "script inside formatting removed",
			in:   "<strong>ok<script>bad()</script></strong>",
			want: "<strong>ok</strong>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, s.Sanitize(tt.in))
		})
	}
}
