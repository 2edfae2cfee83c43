package sanitize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStrictSanitizer(t *testing.T) {
	s := NewTextSanitizer()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "plain text", in: "hello there", want: "hello there"},
		{name: "trims", in: "  hi  ", want: "hi"},
		{name: "strips tags", in: "<b>bold</b> move", want: "bold move"},
		{name: "drops script", in: "<script>alert(1)</script>hi", want: "hi"},
		{name: "escapes comparison", in: "a < b & c", want: "a &lt; b &amp; c"},
		{name: "encoded markup stays encoded", in: "&lt;script&gt;alert(1)&lt;/script&gt;", want: "&lt;script&gt;alert(1)&lt;/script&gt;"},
		{name: "markup only", in: "<img src=x onerror=alert(1)>", want: ""},
		{name: "whitespace only", in: "   \n\t", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, s.Sanitize(tt.in))
		})
	}
}

func TestStrictSanitizer_NeverEmitsTags(t *testing.T) {
	s := NewTextSanitizer()

	for _, in := range []string{
		"&lt;img src=x onerror=alert(1)&gt;",
		"&#60;b&#62;bold&#60;/b&#62;",
		"<scr<script>ipt>alert(1)</script>",
	} {
		out := s.Sanitize(in)
		assert.NotContains(t, out, "<", "input %q", in)
		assert.NotContains(t, out, ">", "input %q", in)
	}
}
