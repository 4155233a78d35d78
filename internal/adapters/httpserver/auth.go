package httpserver

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"
)

func (s *Server) issueAdminToken(user string, dur time.Duration) (string, time.Time) {
	exp := time.Now().Add(dur)
	payload := user + "|" + strconv.FormatInt(exp.Unix(), 10)
	h := hmac.New(sha256.New, s.adminSecret)
	h.Write([]byte(payload))
	sig := base64.RawURLEncoding.EncodeToString(h.Sum(nil))
	return base64.RawURLEncoding.EncodeToString([]byte(payload)) + "." + sig, exp
}

func (s *Server) verifyAdminToken(tok string) (string, error) {
	parts := strings.SplitN(tok, ".", 2)
	if len(parts) != 2 {
		return "", errors.New("malformed token")
	}
	payload, err := base64.RawURLEncoding.DecodeString(parts[0])
	if err != nil {
		return "", err
	}
	h := hmac.New(sha256.New, s.adminSecret)
	h.Write(payload)
	want := base64.RawURLEncoding.EncodeToString(h.Sum(nil))
	if !secureCompare(parts[1], want) {
		return "", errors.New("bad signature")
	}
	fields := strings.SplitN(string(payload), "|", 2)
	if len(fields) != 2 {
		return "", errors.New("malformed payload")
	}
	exp, err := strconv.ParseInt(fields[1], 10, 64)
	if err != nil {
		return "", err
	}
	if time.Now().Unix() > exp {
		return "", errors.New("token expired")
	}
	return fields[0], nil
}

func (s *Server) requireAdmin(w http.ResponseWriter, r *http.Request) bool {
	auth := r.Header.Get("Authorization")
	if strings.HasPrefix(strings.ToLower(auth), "bearer ") {
		if _, err := s.verifyAdminToken(strings.TrimSpace(auth[7:])); err == nil {
			return true
		}
	}
	respondErr(w, http.StatusUnauthorized, "unauthorized")
	return false
}

func (s *Server) admin(h http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !s.requireAdmin(w, r) {
			return
		}
		h(w, r)
	}
}

func secureCompare(a, b string) bool {
	if len(a) != len(b) {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}
