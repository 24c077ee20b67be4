package api

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fitzone/fitzone-be/internal/auth"
	"github.com/fitzone/fitzone-be/internal/database"
	"github.com/fitzone/fitzone-be/internal/services"
	"github.com/fitzone/fitzone-be/internal/uploads"
	"github.com/fitzone/fitzone-be/internal/web"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testApp struct {
	router *chi.Mux
	db     *sql.DB
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()

	db, err := database.New(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, database.Migrate(db))
	require.NoError(t, database.Seed(db))

	store, err := uploads.NewStore(t.TempDir())
	require.NoError(t, err)

	renderer, err := web.NewRenderer()
	require.NoError(t, err)

	sessions := auth.NewSessions("test-secret", false)
	router := NewRouter(
		renderer, sessions, store,
		services.NewUserService(db),
		services.NewProgressService(db),
		services.NewContentService(db),
		services.NewContactService(db),
	)
	return &testApp{router: router, db: db}
}

// postForm submits an urlencoded form, optionally with a session cookie.
func (a *testApp) postForm(path string, form url.Values, session *http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if session != nil {
		req.AddCookie(session)
	}
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w
}

func (a *testApp) get(path string, session *http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if session != nil {
		req.AddCookie(session)
	}
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w
}

// register creates a user and returns their session cookie from a login.
func (a *testApp) register(t *testing.T, name, email, password string) *http.Cookie {
	t.Helper()

	w := a.postForm("/register", url.Values{"name": {name}, "email": {email}, "password": {password}}, nil)
	require.Equal(t, http.StatusSeeOther, w.Code)
	require.Equal(t, "/login", w.Result().Header.Get("Location"))

	w = a.postForm("/login", url.Values{"email": {email}, "password": {password}}, nil)
	require.Equal(t, http.StatusSeeOther, w.Code)
	require.Equal(t, "/profile", w.Result().Header.Get("Location"))

	for _, cookie := range w.Result().Cookies() {
		if cookie.Name == "session" && cookie.Value != "" {
			return cookie
		}
	}
	t.Fatal("login response did not set a session cookie")
	return nil
}

func (a *testApp) count(t *testing.T, table string) int {
	t.Helper()

	var count int
	require.NoError(t, a.db.QueryRow("SELECT COUNT(*) FROM "+table).Scan(&count))
	return count
}

func TestPublicPages(t *testing.T) {
	app := newTestApp(t)

	for _, path := range []string{"/", "/workouts", "/nutrition", "/calculators", "/blog", "/contact", "/register", "/login"} {
		w := app.get(path, nil)
		assert.Equal(t, http.StatusOK, w.Code, "GET %s", path)
	}
}

func TestRegisterLoginProfileFlow(t *testing.T) {
	app := newTestApp(t)

	session := app.register(t, "Ann", "ann@example.com", "secret")

	w := app.get("/profile", session)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Ann")
}

func TestRegisterDuplicateEmail(t *testing.T) {
	app := newTestApp(t)

	app.register(t, "Ann", "ann@example.com", "secret")

	w := app.postForm("/register", url.Values{"name": {"Imposter"}, "email": {"ann@example.com"}, "password": {"other"}}, nil)
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/register", w.Result().Header.Get("Location"))
	assert.Equal(t, 1, app.count(t, "users"))
}

func TestLoginWrongPassword(t *testing.T) {
	app := newTestApp(t)

	app.register(t, "Ann", "ann@example.com", "secret")

	w := app.postForm("/login", url.Values{"email": {"ann@example.com"}, "password": {"wrong"}}, nil)
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/login", w.Result().Header.Get("Location"))

	for _, cookie := range w.Result().Cookies() {
		assert.NotEqual(t, "session", cookie.Name, "no session may be created on failed login")
	}
}

func TestProfileRedirectsWhenLoggedOut(t *testing.T) {
	app := newTestApp(t)

	w := app.get("/profile", nil)
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/login", w.Result().Header.Get("Location"))
}

func TestAddProgressRequiresLogin(t *testing.T) {
	app := newTestApp(t)

	w := app.postForm("/add_progress", url.Values{"date": {"2026-01-01"}, "weight": {"80"}}, nil)
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/login", w.Result().Header.Get("Location"))
	assert.Equal(t, 0, app.count(t, "progress"))
}

func TestAddProgressAndListNewestFirst(t *testing.T) {
	app := newTestApp(t)
	session := app.register(t, "Ann", "ann@example.com", "secret")

	for _, entry := range [][2]string{{"2026-01-01", "80"}, {"2026-02-01", "79"}} {
		w := app.postForm("/add_progress", url.Values{"date": {entry[0]}, "weight": {entry[1]}, "note": {""}}, session)
		require.Equal(t, http.StatusSeeOther, w.Code)
	}
	assert.Equal(t, 2, app.count(t, "progress"))

	w := app.get("/profile", session)
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Less(t, strings.Index(body, "2026-02-01"), strings.Index(body, "2026-01-01"), "newest entry should render first")
}

func TestContactValidation(t *testing.T) {
	app := newTestApp(t)

	w := app.postForm("/contact", url.Values{"name": {"Bob"}, "email": {"bob@example.com"}, "message": {"   "}}, nil)
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/contact", w.Result().Header.Get("Location"))
	assert.Equal(t, 0, app.count(t, "contacts"))

	w = app.postForm("/contact", url.Values{"name": {"Bob"}, "email": {"bob@example.com"}, "message": {"hello"}}, nil)
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, 1, app.count(t, "contacts"))
}

func TestUpdateProfileFields(t *testing.T) {
	app := newTestApp(t)
	session := app.register(t, "Ann", "ann@example.com", "secret")

	w := app.postForm("/profile", url.Values{"weight": {"72"}, "height": {"170"}, "goal": {"bulk"}}, session)
	require.Equal(t, http.StatusSeeOther, w.Code)

	var weight, height, goal string
	require.NoError(t, app.db.QueryRow("SELECT weight, height, goal FROM users WHERE email = ?", "ann@example.com").Scan(&weight, &height, &goal))
	assert.Equal(t, "72", weight)
	assert.Equal(t, "170", height)
	assert.Equal(t, "bulk", goal)
}

// postAvatar submits the profile form as multipart with an attached file.
func (a *testApp) postAvatar(t *testing.T, session *http.Cookie, filename string, content []byte) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	require.NoError(t, mw.WriteField("weight", "72"))
	require.NoError(t, mw.WriteField("height", "170"))
	require.NoError(t, mw.WriteField("goal", "maintain"))
	part, err := mw.CreateFormFile("avatar", filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/profile", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.AddCookie(session)
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w
}

func TestAvatarUpload(t *testing.T) {
	app := newTestApp(t)
	session := app.register(t, "Ann", "ann@example.com", "secret")

	w := app.postAvatar(t, session, "photo.PNG", []byte("fake png bytes"))
	require.Equal(t, http.StatusSeeOther, w.Code)
	require.Equal(t, "/profile", w.Result().Header.Get("Location"))

	var avatar string
	require.NoError(t, app.db.QueryRow("SELECT avatar FROM users WHERE email = ?", "ann@example.com").Scan(&avatar))
	require.NotEmpty(t, avatar)
	assert.NotEqual(t, "photo.PNG", avatar)
	assert.True(t, strings.HasSuffix(avatar, ".png"))

	served := app.get("/uploads/"+avatar, nil)
	require.Equal(t, http.StatusOK, served.Code)
	assert.Equal(t, "fake png bytes", served.Body.String())
}

func TestAvatarUploadRejectsBadExtension(t *testing.T) {
	app := newTestApp(t)
	session := app.register(t, "Ann", "ann@example.com", "secret")

	w := app.postAvatar(t, session, "photo.exe", []byte("MZ"))
	require.Equal(t, http.StatusSeeOther, w.Code)

	var avatar sql.NullString
	require.NoError(t, app.db.QueryRow("SELECT avatar FROM users WHERE email = ?", "ann@example.com").Scan(&avatar))
	assert.Empty(t, avatar.String)
}

func TestServeUploadNotFound(t *testing.T) {
	app := newTestApp(t)

	w := app.get("/uploads/nope.png", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCalcEndpoint(t *testing.T) {
	app := newTestApp(t)

	post := func(payload string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/api/calc", strings.NewReader(payload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		app.router.ServeHTTP(w, req)
		return w
	}

	w := post(`{"height": 170, "weight": 70, "age": 30, "sex": "male", "activity": 1.55}`)
	require.Equal(t, http.StatusOK, w.Code)
	var result struct {
		BMR  int `json:"bmr"`
		TDEE int `json:"tdee"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.Equal(t, 1618, result.BMR)
	assert.Equal(t, 2507, result.TDEE)

	// Omitted sex and activity default to male and 1.55
	w = post(`{"height": 170, "weight": 70, "age": 30}`)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.Equal(t, 1618, result.BMR)
	assert.Equal(t, 2507, result.TDEE)

	// Numeric strings are accepted
	w = post(`{"height": "170", "weight": "70", "age": "30", "sex": "female", "activity": "1.2"}`)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.Equal(t, 1452, result.BMR)
	assert.Equal(t, 1742, result.TDEE)

	// A present but non-string sex is not the male branch
	w = post(`{"height": 170, "weight": 70, "age": 30, "sex": 5, "activity": 1.2}`)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.Equal(t, 1452, result.BMR)
	assert.Equal(t, 1742, result.TDEE)

	for _, payload := range []string{
		`{"weight": 70, "age": 30}`,
		`{"height": "tall", "weight": 70, "age": 30}`,
		`not json`,
	} {
		w = post(payload)
		assert.Equal(t, http.StatusBadRequest, w.Code, "payload: %s", payload)
		var errResp map[string]string
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &errResp))
		assert.NotEmpty(t, errResp["error"])
	}
}

func TestLogoutIsIdempotent(t *testing.T) {
	app := newTestApp(t)

	// Logged out already: still redirects home without error
	w := app.get("/logout", nil)
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/", w.Result().Header.Get("Location"))

	session := app.register(t, "Ann", "ann@example.com", "secret")
	w = app.get("/logout", session)
	assert.Equal(t, http.StatusSeeOther, w.Code)

	// The response must expire the session cookie
	expired := false
	for _, cookie := range w.Result().Cookies() {
		if cookie.Name == "session" && cookie.MaxAge < 0 {
			expired = true
		}
	}
	assert.True(t, expired, "logout must clear the session cookie")
}
