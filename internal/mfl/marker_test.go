package mfl

import "testing"

func TestExtractUserID(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		wantID    string
		wantFound bool
	}{
		{
			name:      "marker alone",
			body:      `MFL_USER_ID="abc123">OK`,
			wantID:    "abc123",
			wantFound: true,
		},
		{
			name:      "marker embedded in html",
			body:      `<html><body><status MFL_USER_ID="abc123">OK</status></body></html>`,
			wantID:    "abc123",
			wantFound: true,
		},
		{
			name:      "first match wins",
			body:      `MFL_USER_ID="first">OK ... MFL_USER_ID="second">OK`,
			wantID:    "first",
			wantFound: true,
		},
		{
			name:      "empty marker value still counts as found",
			body:      `MFL_USER_ID="">OK`,
			wantID:    "",
			wantFound: true,
		},
		{
			name:      "marker without OK suffix",
			body:      `MFL_USER_ID="abc123">NO`,
			wantFound: false,
		},
		{
			name:      "no marker at all",
			body:      `<error>invalid password</error>`,
			wantFound: false,
		},
		{
			name:      "empty body",
			body:      "",
			wantFound: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, found := extractUserID(tt.body)
			if found != tt.wantFound {
				t.Fatalf("extractUserID() found = %v, want %v", found, tt.wantFound)
			}
			if id != tt.wantID {
				t.Errorf("extractUserID() id = %q, want %q", id, tt.wantID)
			}
		})
	}
}
