package httpserver

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/Jetixia-Updates/Butcher-sub004/internal/domain"
)

const basketCookie = "basket"

// The basket lives in an HMAC-signed cookie: a tampered or unsigned
// value reads as an empty basket.
func (s *Server) readBasket(r *http.Request) domain.Basket {
	c, err := r.Cookie(basketCookie)
	if err != nil {
		return domain.Basket{}
	}
	parts := strings.SplitN(c.Value, ".", 2)
	if len(parts) != 2 {
		return domain.Basket{}
	}
	sig, _ := base64.RawURLEncoding.DecodeString(parts[0])
	payload, _ := base64.RawURLEncoding.DecodeString(parts[1])
	h := hmac.New(sha256.New, s.basketSecret)
	h.Write(payload)
	if !hmac.Equal(sig, h.Sum(nil)) {
		return domain.Basket{}
	}
	var b domain.Basket
	_ = json.Unmarshal(payload, &b)
	return b
}

func (s *Server) writeBasket(w http.ResponseWriter, b domain.Basket) {
	payload, _ := json.Marshal(b)
	h := hmac.New(sha256.New, s.basketSecret)
	h.Write(payload)
	sig := base64.RawURLEncoding.EncodeToString(h.Sum(nil))
	val := sig + "." + base64.RawURLEncoding.EncodeToString(payload)
	http.SetCookie(w, &http.Cookie{Name: basketCookie, Value: val, Path: "/", MaxAge: 60 * 60 * 24 * 7, HttpOnly: true})
}
