package cookiex

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValue(t *testing.T) {
	tests := []struct {
		name   string
		raw    string
		cookie string
		want   string
		wantOK bool
	}{
		{
			name:   "middle of several cookies",
			raw:    "a=1; csrftoken=XYZ; b=2",
			cookie: "csrftoken",
			want:   "XYZ",
			wantOK: true,
		},
		{
			name:   "no matching cookie",
			raw:    "a=1; b=2",
			cookie: "csrftoken",
			wantOK: false,
		},
		{
			name:   "empty header",
			raw:    "",
			cookie: "csrftoken",
			wantOK: false,
		},
		{
			name:   "percent-decoded value",
			raw:    "token=ab%2Fcd%20ef",
			cookie: "token",
			want:   "ab/cd ef",
			wantOK: true,
		},
		{
			name:   "value containing equals sign",
			raw:    "sig=a=b=c",
			cookie: "sig",
			want:   "a=b=c",
			wantOK: true,
		},
		{
			name:   "whitespace around pairs",
			raw:    "  a=1 ;  csrftoken=XYZ ",
			cookie: "csrftoken",
			want:   "XYZ",
			wantOK: true,
		},
		{
			name:   "name is a prefix of another cookie",
			raw:    "csrftoken2=NO; csrftoken=YES",
			cookie: "csrftoken",
			want:   "YES",
			wantOK: true,
		},
		{
			name:   "undecodable value returned raw",
			raw:    "t=%zz",
			cookie: "t",
			want:   "%zz",
			wantOK: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Value(tt.raw, tt.cookie)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
