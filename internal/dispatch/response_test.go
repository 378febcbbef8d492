package dispatch

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/suryansh-23/revoker/internal/tokentype"
	"github.com/suryansh-23/revoker/internal/types"
)

func TestResponseErrors(t *testing.T) {
	cases := []struct {
		name string
		res  Result
		err  error
		want string
	}{
		{"empty", Result{}, ErrEmptyToken, "Token is required"},
		{"unrecognized", Result{Kind: KindUnrecognized}, nil, "Token doesn't match any supported type"},
		{"invalid", Result{Kind: KindInvalid}, nil, "Token is invalid or already revoked"},
		{"cancelled", Result{Attempts: []types.TypeID{"a"}}, context.Canceled, "Revocation was interrupted"},
		{"missing companion", Result{Attempts: []types.TypeID{types.TypeSlackXoxc}}, &CompanionError{TokenType: types.TypeSlackXoxc, Err: tokentype.ErrMissingCookie}, tokentype.ErrMissingCookie.Error()},
	}
	for _, tc := range cases {
		got := Response(tc.res, tc.err)
		if diff := cmp.Diff(Payload{Error: tc.want}, got); diff != "" {
			t.Fatalf("%s: payload mismatch (-want +got):\n%s", tc.name, diff)
		}
	}
}

func TestResponseSuccess(t *testing.T) {
	res := Result{
		Kind:     KindRevoked,
		Winner:   tokentype.Info{ID: types.TypeSlackXoxc, Name: "scraped Slack client token"},
		Redacted: "xoxc-12**-*-*-****abcd",
		Outcome: tokentype.Outcome{
			Success:    true,
			Status:     types.StatusActionNeeded,
			OwnerEmail: "h@example.com",
		},
	}
	got := Response(res, nil)
	want := Payload{
		Success:       true,
		Status:        types.StatusActionNeeded,
		TokenType:     "scraped Slack client token",
		RedactedToken: "xoxc-12**-*-*-****abcd",
		OwnerEmail:    "h@example.com",
		ActionNeeded:  "Manual intervention required to complete revocation",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("payload mismatch (-want +got):\n%s", diff)
	}
}

func TestResponseOmitsEmptyFields(t *testing.T) {
	res := Result{
		Kind:    KindRevoked,
		Winner:  tokentype.Info{ID: types.TypeHCBOAuth, Name: "HCB V4 API token"},
		Outcome: tokentype.Outcome{Success: true, Status: types.StatusComplete},
	}
	data, err := json.Marshal(Response(res, nil))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := `{"success":true,"status":"complete","token_type":"HCB V4 API token"}`
	if string(data) != want {
		t.Fatalf("json = %s", data)
	}
}
