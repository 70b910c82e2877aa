package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBearerTokenSchemeIsCaseInsensitive(t *testing.T) {
	tests := []struct {
		name   string
		header string
		want   string
	}{
		// Angular client küçük harfle gönderir: "bearer " + token
		{"lowercase scheme", "bearer abc123", "abc123"},
		{"canonical scheme", "Bearer abc123", "abc123"},
		{"mixed case scheme", "BEARER abc123", "abc123"},
		{"wrong scheme", "Basic abc123", ""},
		{"no scheme", "abc123", ""},
		{"empty header", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/auth/currentUser", nil)
			if tt.header != "" {
				r.Header.Set("Authorization", tt.header)
			}
			require.Equal(t, tt.want, BearerToken(r))
		})
	}
}
