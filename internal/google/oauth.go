package google

import (
	"context"
	"strings"

	"golang.org/x/oauth2"
	drive "google.golang.org/api/drive/v3"
)

// Fixed Google OAuth endpoints. They are deliberately not configurable: this
// client only ever talks to the public Google accounts service.
const (
	AuthEndpoint  = "https://accounts.google.com/o/oauth2/v2/auth"
	TokenEndpoint = "https://oauth2.googleapis.com/token"
)

// Scopes requested during authorization: write access to files created by
// the application plus read-only access to the rest of the Drive.
var Scopes = []string{
	drive.DriveFileScope,
	drive.DriveReadonlyScope,
}

// Credentials is the OAuth material handed back to the caller after a code
// exchange. The caller owns persistence; nothing in this package stores it.
type Credentials struct {
	ClientID     string `json:"clientId"`
	ClientSecret string `json:"clientSecret"`
	AccessToken  string `json:"accessToken,omitempty"`
	RefreshToken string `json:"refreshToken,omitempty"`

	// ExpiresAt is the access token expiry in unix seconds, computed from
	// the token endpoint's expires_in at exchange time.
	ExpiresAt int64 `json:"expiresAt,omitempty"`
}

// AuthURL builds the authorization URL the user must visit to grant access.
// Parameter order is fixed and every value is percent-encoded per RFC 3986.
func AuthURL(clientID, redirectURI string) string {
	params := [][2]string{
		{"client_id", clientID},
		{"redirect_uri", redirectURI},
		{"response_type", "code"},
		{"scope", strings.Join(Scopes, " ")},
		{"access_type", "offline"},
		{"prompt", "consent"},
	}

	var b strings.Builder
	b.WriteString(AuthEndpoint)
	for i, p := range params {
		if i == 0 {
			b.WriteByte('?')
		} else {
			b.WriteByte('&')
		}
		b.WriteString(p[0])
		b.WriteByte('=')
		b.WriteString(PercentEncode(p[1]))
	}
	return b.String()
}

// Config returns the oauth2 configuration for the authorization-code flow
// with the given client credentials.
func Config(clientID, clientSecret, redirectURI string) *oauth2.Config {
	return &oauth2.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		RedirectURL:  redirectURI,
		Scopes:       Scopes,
		Endpoint: oauth2.Endpoint{
			AuthURL:  AuthEndpoint,
			TokenURL: TokenEndpoint,
		},
	}
}

// ExchangeCode trades an authorization code for tokens and combines them with
// the caller-supplied client id and secret into a Credentials value.
// A non-2xx token response surfaces as *oauth2.RetrieveError carrying the
// response body.
func ExchangeCode(ctx context.Context, code, clientID, clientSecret, redirectURI string) (*Credentials, error) {
	return exchange(ctx, Config(clientID, clientSecret, redirectURI), code)
}

func exchange(ctx context.Context, conf *oauth2.Config, code string) (*Credentials, error) {
	tok, err := conf.Exchange(ctx, code)
	if err != nil {
		return nil, err
	}

	creds := &Credentials{
		ClientID:     conf.ClientID,
		ClientSecret: conf.ClientSecret,
		AccessToken:  tok.AccessToken,
		RefreshToken: tok.RefreshToken,
	}
	if !tok.Expiry.IsZero() {
		creds.ExpiresAt = tok.Expiry.Unix()
	}
	return creds, nil
}
