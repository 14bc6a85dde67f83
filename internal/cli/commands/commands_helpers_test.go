package commands

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"HBnB/internal/cli/model"
	"HBnB/internal/config"

	"github.com/go-chi/chi/v5"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

// fakeAPI имитирует HBnB API: логин, места, отзывы.
type fakeAPI struct {
	mu      sync.Mutex
	token   string
	places  map[string]model.Place
	reviews map[string][]model.Review
	posted  []model.NewReview
	calls   map[string]int
}

func signToken(t *testing.T, sub string) string {
	t.Helper()
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": sub}).SignedString([]byte("server-secret"))
	require.NoError(t, err)
	return s
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func newFakeAPI(t *testing.T) (*fakeAPI, *httptest.Server) {
	t.Helper()
	f := &fakeAPI{
		token: signToken(t, "user-1"),
		places: map[string]model.Place{
			"p1": {ID: "p1", Title: "Cabin", Price: 80, Owner: &model.User{FirstName: "Ann", LastName: "Lee"}, Amenities: model.Amenities{"wifi"}},
			"p2": {ID: "p2", Title: "Loft", Price: 220},
		},
		reviews: map[string][]model.Review{
			"p1": {{ID: "r0", Text: "Cozy", Rating: 4, User: &model.User{FirstName: "Bo"}}},
		},
		calls: map[string]int{},
	}

	r := chi.NewRouter()
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			f.mu.Lock()
			f.calls[req.Method+" "+req.URL.Path]++
			f.mu.Unlock()
			next.ServeHTTP(w, req)
		})
	})
	r.Post("/api/v1/auth/login", func(w http.ResponseWriter, req *http.Request) {
		var in model.LoginRequest
		if err := json.NewDecoder(req.Body).Decode(&in); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"message": "Email and password are required"})
			return
		}
		if in.Email != "ann@example.com" || in.Password != "secret" {
			writeJSON(w, http.StatusUnauthorized, map[string]string{"message": "Invalid credentials"})
			return
		}
		writeJSON(w, http.StatusOK, model.LoginResponse{AccessToken: f.currentToken()})
	})
	r.Route("/api/v1/places", func(r chi.Router) {
		r.Get("/", func(w http.ResponseWriter, req *http.Request) {
			list := []model.Place{f.places["p1"], f.places["p2"]}
			writeJSON(w, http.StatusOK, list)
		})
		r.Get("/{id}", func(w http.ResponseWriter, req *http.Request) {
			p, ok := f.places[chi.URLParam(req, "id")]
			if !ok {
				writeJSON(w, http.StatusNotFound, map[string]string{"message": "Place not found"})
				return
			}
			writeJSON(w, http.StatusOK, p)
		})
	})
	r.Route("/api/v1/reviews", func(r chi.Router) {
		r.Get("/places/{id}/reviews", func(w http.ResponseWriter, req *http.Request) {
			list := f.reviews[chi.URLParam(req, "id")]
			if list == nil {
				list = []model.Review{}
			}
			writeJSON(w, http.StatusOK, list)
		})
		r.Post("/", func(w http.ResponseWriter, req *http.Request) {
			if req.Header.Get("Authorization") != "Bearer "+f.currentToken() {
				writeJSON(w, http.StatusUnauthorized, map[string]string{"msg": "Token has expired"})
				return
			}
			var in model.NewReview
			if err := json.NewDecoder(req.Body).Decode(&in); err != nil {
				writeJSON(w, http.StatusBadRequest, map[string]string{"message": "Invalid input data"})
				return
			}
			f.mu.Lock()
			f.posted = append(f.posted, in)
			f.mu.Unlock()
			writeJSON(w, http.StatusCreated, model.Review{ID: "r-new", Text: in.Text, Rating: in.Rating})
		})
	})

	ts := httptest.NewServer(r)
	t.Cleanup(ts.Close)
	return f, ts
}

func (f *fakeAPI) currentToken() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.token
}

// rotateToken делает ранее выданный токен недействительным.
func (f *fakeAPI) rotateToken(t *testing.T, sub string) {
	tok := signToken(t, sub)
	f.mu.Lock()
	f.token = tok
	f.mu.Unlock()
}

func (f *fakeAPI) callCount(key string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[key]
}

// testConfig возвращает конфиг, указывающий на apiURL, с токеном в temp‑каталоге.
func testConfig(t *testing.T, apiURL string) *config.Config {
	t.Helper()
	dir := t.TempDir()
	return &config.Config{
		APIURL:       apiURL,
		AuthPath:     config.DefaultAuthPath,
		PlacesPath:   config.DefaultPlacesPath,
		ReviewsPath:  config.DefaultReviewsPath,
		TokenTTL:     3600,
		TokenBackend: config.BackendFile,
		TokenFile:    filepath.Join(dir, "token.json"),
		TokenDBPath:  filepath.Join(dir, "session.sqlite"),
		HTTPTimeout:  5 * time.Second,
	}
}

// перехват вывода на время теста
func withStdoutCapture(t *testing.T, fn func()) string {
	t.Helper()
	old := Out
	var buf bytes.Buffer
	Out = &buf
	defer func() { Out = old }()
	fn()
	return buf.String()
}
