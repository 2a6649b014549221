package server

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExtractSessionID(t *testing.T) {
	tests := []struct {
		name      string
		header    string
		wantID    string
		wantFound bool
	}{
		{
			name:      "session id among other cookies",
			header:    "other=1; session_id=abc123; foo=bar",
			wantID:    "abc123",
			wantFound: true,
		},
		{
			name:      "session id alone",
			header:    "session_id=abc123",
			wantID:    "abc123",
			wantFound: true,
		},
		{
			name:      "whitespace around pairs",
			header:    "a=1 ;  session_id=xyz ;b=2",
			wantID:    "xyz",
			wantFound: true,
		},
		{
			name:      "first match wins on duplicates",
			header:    "session_id=first; session_id=second",
			wantID:    "first",
			wantFound: true,
		},
		{
			name:      "malformed pair skipped",
			header:    "garbage; session_id=abc123",
			wantID:    "abc123",
			wantFound: true,
		},
		{
			name:   "no session id pair",
			header: "foo=bar; baz=qux",
		},
		{
			name:   "empty header",
			header: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, found := extractSessionID(tt.header)
			require.Equal(t, tt.wantFound, found)
			require.Equal(t, tt.wantID, id)
		})
	}
}
