package macterm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppleString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		desc string
		give string
		want string
	}{
		{desc: "empty", give: "", want: `""`},
		{desc: "plain", give: "work", want: `"work"`},
		{desc: "quotes", give: `say "hi"`, want: `"say \"hi\""`},
		{desc: "backslash", give: `C:\src`, want: `"C:\\src"`},
		{desc: "single quotes", give: `cd '/my dir'`, want: `"cd '/my dir'"`},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.desc, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, appleString(tt.give))
		})
	}
}
