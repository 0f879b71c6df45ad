package identity

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"remotesync/internal/lib"

	"github.com/golang-jwt/jwt/v5"
)

var ErrUnauthenticated = errors.New("could not verify identity token")

// User is a verified profile resolved from the identity provider.
type User struct {
	ID        string
	FirstName string
	LastName  string
	Email     string
	AvatarURL string
}

func (u *User) FullName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}

// Client talks to a Clerk-compatible identity provider. Every request is
// re-verified; no session state is kept locally.
type Client struct {
	baseURL   string
	secretKey string
	jwtSecret string
	http      *http.Client
}

func New(baseURL, secretKey, jwtSecret string) *Client {
	return &Client{
		baseURL:   strings.TrimRight(baseURL, "/"),
		secretKey: secretKey,
		jwtSecret: jwtSecret,
		http:      &http.Client{Timeout: 10 * time.Second},
	}
}

type clerkUser struct {
	ID             string `json:"id"`
	FirstName      string `json:"first_name"`
	LastName       string `json:"last_name"`
	ImageURL       string `json:"image_url"`
	PrimaryEmailID string `json:"primary_email_address_id"`
	EmailAddresses []struct {
		ID           string `json:"id"`
		EmailAddress string `json:"email_address"`
	} `json:"email_addresses"`
}

// Verify resolves a bearer token into a user profile. With a configured
// jwt_secret the token is checked locally (dev mode); otherwise it is sent
// to the provider's introspection endpoint and the profile is fetched.
func (c *Client) Verify(ctx context.Context, token string) (*User, error) {
	if c.jwtSecret != "" {
		return c.verifyLocal(token)
	}

	sub, err := c.introspect(ctx, token)
	if err != nil {
		return nil, err
	}

	return c.fetchUser(ctx, sub)
}

func (c *Client) verifyLocal(tokenString string) (*User, error) {
	parsed, err := jwt.Parse(tokenString, func(t *jwt.Token) (any, error) {
		return []byte(c.jwtSecret), nil
	})
	if err != nil || !parsed.Valid {
		return nil, ErrUnauthenticated
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrUnauthenticated
	}

	sub, _ := claims["sub"].(string)
	email, _ := claims["email"].(string)
	if sub == "" || email == "" {
		return nil, ErrUnauthenticated
	}

	name, _ := claims["name"].(string)
	first, last, _ := strings.Cut(name, " ")

	return &User{ID: sub, FirstName: first, LastName: last, Email: email}, nil
}

func (c *Client) introspect(ctx context.Context, token string) (string, error) {
	const op = "identity.introspect"

	body, _ := json.Marshal(map[string]string{"token": token})
	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/v1/tokens/verify", bytes.NewReader(body))
	if err != nil {
		return "", lib.Err(op, err)
	}
	req.Header.Set("Authorization", "Bearer "+c.secretKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", ErrUnauthenticated
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", ErrUnauthenticated
	}

	var claims struct {
		Subject string `json:"sub"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&claims); err != nil || claims.Subject == "" {
		return "", ErrUnauthenticated
	}

	return claims.Subject, nil
}

func (c *Client) fetchUser(ctx context.Context, userID string) (*User, error) {
	const op = "identity.fetchUser"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		c.baseURL+"/v1/users/"+url.PathEscape(userID), nil)
	if err != nil {
		return nil, lib.Err(op, err)
	}
	req.Header.Set("Authorization", "Bearer "+c.secretKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, ErrUnauthenticated
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, ErrUnauthenticated
	}

	var cu clerkUser
	if err := json.NewDecoder(resp.Body).Decode(&cu); err != nil {
		return nil, ErrUnauthenticated
	}

	user, err := toUser(cu)
	if err != nil {
		// missing primary email counts as an authentication failure
		return nil, ErrUnauthenticated
	}

	return user, nil
}

// Users fetches profiles for a set of user ids with a single multi-id query.
func (c *Client) Users(ctx context.Context, userIDs []string) ([]*User, error) {
	const op = "identity.Users"

	if len(userIDs) == 0 {
		return []*User{}, nil
	}

	q := url.Values{}
	for _, id := range userIDs {
		q.Add("user_id", id)
	}
	q.Set("limit", fmt.Sprintf("%d", len(userIDs)))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		c.baseURL+"/v1/users?"+q.Encode(), nil)
	if err != nil {
		return nil, lib.Err(op, err)
	}
	req.Header.Set("Authorization", "Bearer "+c.secretKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, lib.Err(op, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, lib.Err(op, fmt.Errorf("identity provider returned status %d", resp.StatusCode))
	}

	var raw []clerkUser
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, lib.Err(op, err)
	}

	users := make([]*User, 0, len(raw))
	for _, cu := range raw {
		user, err := toUser(cu)
		if err != nil {
			continue
		}
		users = append(users, user)
	}

	return users, nil
}

// UserByEmail resolves an email address to a profile, used for
// reply-by-email ingestion.
func (c *Client) UserByEmail(ctx context.Context, email string) (*User, error) {
	const op = "identity.UserByEmail"

	q := url.Values{}
	q.Add("email_address", email)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		c.baseURL+"/v1/users?"+q.Encode(), nil)
	if err != nil {
		return nil, lib.Err(op, err)
	}
	req.Header.Set("Authorization", "Bearer "+c.secretKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, lib.Err(op, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, lib.Err(op, fmt.Errorf("identity provider returned status %d", resp.StatusCode))
	}

	var raw []clerkUser
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, lib.Err(op, err)
	}

	if len(raw) == 0 {
		return nil, ErrUnauthenticated
	}

	return toUser(raw[0])
}

func toUser(cu clerkUser) (*User, error) {
	var email string
	for _, e := range cu.EmailAddresses {
		if e.ID == cu.PrimaryEmailID {
			email = e.EmailAddress
			break
		}
	}
	if email == "" {
		return nil, errors.New("primary email not found for user")
	}

	return &User{
		ID:        cu.ID,
		FirstName: cu.FirstName,
		LastName:  cu.LastName,
		Email:     email,
		AvatarURL: cu.ImageURL,
	}, nil
}
