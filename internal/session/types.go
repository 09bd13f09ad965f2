package session

import (
	"net/http"
	"strings"
	"time"
)

// CookieRecord is the persisted form of one cookie.
type CookieRecord struct {
	Domain   string `json:"domain"`
	Name     string `json:"name"`
	Value    string `json:"value"`
	Path     string `json:"path"`
	Secure   bool   `json:"secure"`
	HttpOnly bool   `json:"http_only"`
	// Expiry is a unix timestamp in seconds, nil for cookies that expire with
	// the browser session.
	Expiry *int64 `json:"expiry"`
}

type ServiceSession struct {
	Cookies []CookieRecord `json:"cookies"`
}

// Store is the whole session file, keyed by service name.
type Store struct {
	Services map[string]ServiceSession `json:"services"`
}

func NewStore() Store {
	return Store{Services: map[string]ServiceSession{}}
}

// the jar reports cookies without an expiry as expiring at the end of time
const sessionCookieYear = 9999

func recordFromCookie(c *http.Cookie) CookieRecord {
	record := CookieRecord{
		Domain:   strings.TrimPrefix(c.Domain, "."),
		Name:     c.Name,
		Value:    c.Value,
		Path:     c.Path,
		Secure:   c.Secure,
		HttpOnly: c.HttpOnly,
	}
	if !c.Expires.IsZero() && c.Expires.Year() < sessionCookieYear {
		expiry := c.Expires.Unix()
		record.Expiry = &expiry
	}
	return record
}

// cookie returns the record as a host-only cookie along with the url it
// should be set for.
func (r CookieRecord) cookie() (*http.Cookie, string) {
	scheme := "http"
	if r.Secure {
		scheme = "https"
	}
	path := r.Path
	if path == "" {
		path = "/"
	}

	c := &http.Cookie{
		Name:     r.Name,
		Value:    r.Value,
		Path:     path,
		Secure:   r.Secure,
		HttpOnly: r.HttpOnly,
	}
	if r.Expiry != nil {
		c.Expires = time.Unix(*r.Expiry, 0)
	}
	return c, scheme + "://" + r.Domain + path
}

// EarliestExpiry returns the soonest expiry among the cookies of the
// session, ok is false if every cookie is a session cookie.
func (s ServiceSession) EarliestExpiry() (earliest time.Time, ok bool) {
	for _, c := range s.Cookies {
		if c.Expiry == nil {
			continue
		}
		t := time.Unix(*c.Expiry, 0)
		if !ok || t.Before(earliest) {
			earliest = t
			ok = true
		}
	}
	return earliest, ok
}
