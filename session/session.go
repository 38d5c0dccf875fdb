// Package session binds a logged-in user id to a browser session and carries
// one-shot flash messages between a redirect and the next page.
package session

import (
	"crypto/sha256"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-contrib/sessions/redis"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/crypto/hkdf"
)

// Name is the session cookie name
const Name = "session"

const (
	userIDKey  = "user_id"
	maxAgeDays = 30
)

// Config selects and configures the session backend
type Config struct {
	Secret        string
	RedisAddr     string // Empty selects the cookie store
	RedisPassword string
	Secure        bool
}

// DeriveKeys expands secret into a 32-byte authentication key and a 32-byte
// encryption key
func DeriveKeys(secret string) (authKey, encKey []byte, err error) {
	r := hkdf.New(sha256.New, []byte(secret), []byte("filedrop-session"), nil)
	authKey = make([]byte, 32)
	encKey = make([]byte, 32)
	if _, err = io.ReadFull(r, authKey); err != nil {
		return nil, nil, err
	}
	if _, err = io.ReadFull(r, encKey); err != nil {
		return nil, nil, err
	}
	return authKey, encKey, nil
}

// NewStore creates the session store. An empty secret gets a random one,
// which invalidates all sessions on restart.
func NewStore(cfg Config) (sessions.Store, error) {
	secret := cfg.Secret
	if secret == "" {
		secret = uuid.New().String()
	}
	authKey, encKey, err := DeriveKeys(secret)
	if err != nil {
		return nil, fmt.Errorf("failed to derive session keys: %w", err)
	}

	var store sessions.Store
	if cfg.RedisAddr != "" {
		store, err = redis.NewStore(10, "tcp", cfg.RedisAddr, "", cfg.RedisPassword, authKey, encKey)
		if err != nil {
			return nil, fmt.Errorf("failed to create redis session store: %w", err)
		}
	} else {
		store = cookie.NewStore(authKey, encKey)
	}

	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   maxAgeDays * 24 * 60 * 60,
		HttpOnly: true,
		Secure:   cfg.Secure,
		SameSite: http.SameSiteLaxMode,
	})
	return store, nil
}

// Middleware installs the session store on a gin engine. A session cookie
// the store cannot decode (signed with another key, tampered) is dropped
// and expired so the request continues anonymously.
func Middleware(store sessions.Store) gin.HandlerFunc {
	inner := sessions.Sessions(Name, store)
	return func(c *gin.Context) {
		if _, err := c.Request.Cookie(Name); err == nil {
			// Probe on a clone; the store caches its result on the request
			if _, err := store.Get(c.Request.Clone(c.Request.Context()), Name); err != nil {
				dropCookie(c.Request, Name)
				http.SetCookie(c.Writer, &http.Cookie{
					Name:     Name,
					Path:     "/",
					MaxAge:   -1,
					HttpOnly: true,
				})
			}
		}
		inner(c)
	}
}

// dropCookie removes every cookie called name from the request
func dropCookie(r *http.Request, name string) {
	cookies := r.Cookies()
	r.Header.Del("Cookie")
	for _, ck := range cookies {
		if ck.Name != name {
			r.AddCookie(ck)
		}
	}
}

// UserID returns the user id bound to the request's session, or 0
func UserID(c *gin.Context) int64 {
	switch v := sessions.Default(c).Get(userIDKey).(type) {
	case int64:
		return v
	case int:
		return int64(v)
	default:
		return 0
	}
}

// Login binds userID to the session
func Login(c *gin.Context, userID int64) error {
	s := sessions.Default(c)
	s.Set(userIDKey, userID)
	return s.Save()
}

// Logout drops the identity from the session. Pending flashes are kept so
// the logout message survives the redirect.
func Logout(c *gin.Context) error {
	s := sessions.Default(c)
	s.Delete(userIDKey)
	return s.Save()
}

// Flash queues a message for the next page
func Flash(c *gin.Context, message string) error {
	s := sessions.Default(c)
	s.AddFlash(message)
	return s.Save()
}

// Flashes pops all queued messages. The messages are returned even when
// saving the emptied queue fails.
func Flashes(c *gin.Context) ([]string, error) {
	s := sessions.Default(c)
	raw := s.Flashes()
	if len(raw) == 0 {
		return []string{}, nil
	}
	messages := make([]string, 0, len(raw))
	for _, m := range raw {
		if str, ok := m.(string); ok {
			messages = append(messages, str)
		}
	}
	return messages, s.Save()
}
