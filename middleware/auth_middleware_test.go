package middleware

import (
	"context"
	"net/http/httptest"
	"testing"

	"voidslab-service/models"
)

func TestBearerToken(t *testing.T) {
	cases := []struct {
		name   string
		header string
		want   string
	}{
		{"missing header", "", ""},
		{"well-formed", "Bearer abc.def.ghi", "abc.def.ghi"},
		{"wrong scheme", "Basic abc", ""},
		{"bare token without scheme", "abc.def.ghi", ""},
		{"extra whitespace", "Bearer   abc  ", "abc"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", "/api/me", nil)
			if tc.header != "" {
				r.Header.Set("Authorization", tc.header)
			}
			if got := bearerToken(r); got != tc.want {
				t.Fatalf("bearerToken(%q) = %q, want %q", tc.header, got, tc.want)
			}
		})
	}
}

func TestUserFromContext(t *testing.T) {
	if _, ok := UserFromContext(context.Background()); ok {
		t.Fatalf("expected no user on a bare context")
	}

	u := &models.User{ID: 7, Email: "a@x.com"}
	ctx := withUserContext(context.Background(), u)
	got, ok := UserFromContext(ctx)
	if !ok || got.ID != 7 {
		t.Fatalf("expected attached user, got %+v ok=%v", got, ok)
	}
}
