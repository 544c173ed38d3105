package web

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/redmonkez12/community-feed/internal/auth"
	"github.com/redmonkez12/community-feed/internal/feed"
	"github.com/redmonkez12/community-feed/internal/flash"
	"github.com/redmonkez12/community-feed/internal/httputil"
	"github.com/redmonkez12/community-feed/internal/logging"
	"github.com/redmonkez12/community-feed/internal/user"
)

// Handler contains the HTTP handlers for all pages and API endpoints
type Handler struct {
	users           *user.Directory
	tokens          auth.TokenService
	renderer        *Renderer
	logger          *logging.Logger
	isProduction    bool
	sessionLifetime time.Duration
}

func NewHandler(users *user.Directory, tokens auth.TokenService, renderer *Renderer, logger *logging.Logger, isProduction bool, sessionLifetime time.Duration) *Handler {
	return &Handler{
		users:           users,
		tokens:          tokens,
		renderer:        renderer,
		logger:          logger,
		isProduction:    isProduction,
		sessionLifetime: sessionLifetime,
	}
}

// basePage carries the fields base.html needs on every page
type basePage struct {
	Title    string
	Active   string
	LoggedIn bool
	Flash    string
}

type registerPage struct {
	basePage
	Name  string
	Email string
}

type loginPage struct {
	basePage
	Email string
}

type homePage struct {
	basePage
	Categories []string
	Feeds      []feed.Item
}

type feedsPage struct {
	basePage
	Categories     []string
	Feeds          []feed.Item
	ActiveCategory string
	Query          string
}

type profilePage struct {
	basePage
	User *user.User
}

// base builds the shared page data, consuming any pending flash notice
func (h *Handler) base(w http.ResponseWriter, r *http.Request, title, active string) basePage {
	return basePage{
		Title:    title,
		Active:   active,
		LoggedIn: h.loggedIn(r),
		Flash:    flash.Pop(w, r),
	}
}

// loggedIn reports whether the request carries a live session claim for an
// existing user. Used only to pick the nav variant on public pages; the
// session gate is what protects routes.
func (h *Handler) loggedIn(r *http.Request) bool {
	if _, ok := auth.GetIdentityFromContext(r.Context()); ok {
		return true
	}

	token, err := auth.GetSessionFromCookie(r)
	if err != nil {
		return false
	}
	claims, err := h.tokens.VerifyToken(token)
	if err != nil {
		return false
	}
	return h.users.Exists(claims.Email)
}

func (h *Handler) render(w http.ResponseWriter, r *http.Request, page string, data any) {
	if err := h.renderer.Render(w, page, data); err != nil {
		logging.GetLoggerFromContext(r.Context()).Error("failed to render page", "page", page, "error", err.Error())
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}

// Welcome renders the public landing page
func (h *Handler) Welcome(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, "welcome", h.base(w, r, "Welcome", "welcome"))
}

// RegisterForm renders the registration form
func (h *Handler) RegisterForm(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, "register", registerPage{basePage: h.base(w, r, "Register", "register")})
}

// Register handles a registration submission.
// Blank fields re-render the form with the input preserved; a duplicate
// email redirects toward login instead of overwriting the account.
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	logger := logging.GetLoggerFromContext(r.Context())

	name := r.FormValue("name")
	email := r.FormValue("email")
	password := r.FormValue("password")

	newUser, err := h.users.Register(name, email, password)
	if err != nil {
		if errors.Is(err, user.ErrInvalidInput) {
			logger.Warn("registration failed: validation error")
			page := registerPage{
				basePage: h.base(w, r, "Register", "register"),
				Name:     strings.TrimSpace(name),
				Email:    user.NormalizeEmail(email),
			}
			page.Flash = "Please fill in name, email, and password."
			h.render(w, r, "register", page)
			return
		}
		if errors.Is(err, user.ErrDuplicateEmail) {
			logger.Warn("registration failed: email already exists")
			flash.Set(w, "Account already exists. Try logging in.")
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}
		logger.Error("registration failed: internal error", "error", err.Error())
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	logger.Info("user registered", "user_id", newUser.ID, "email", newUser.Email)

	flash.Set(w, "Registration successful. You can log in now.")
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

// LoginForm renders the login form
func (h *Handler) LoginForm(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, "login", loginPage{basePage: h.base(w, r, "Login", "login")})
}

// Login authenticates a user and establishes the session claim.
// The claim's lifetime is fixed here; nothing later extends it. A failed
// login re-renders with one generic notice that never reveals whether the
// email exists.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	logger := logging.GetLoggerFromContext(r.Context())

	email := r.FormValue("email")
	password := r.FormValue("password")

	u, err := h.users.Authenticate(email, password)
	if err != nil {
		logger.Warn("login failed: invalid credentials")
		page := loginPage{
			basePage: h.base(w, r, "Login", "login"),
			Email:    user.NormalizeEmail(email),
		}
		page.Flash = "Invalid credentials."
		h.render(w, r, "login", page)
		return
	}

	token, err := h.tokens.CreateToken(u.Email, h.sessionLifetime)
	if err != nil {
		logger.Error("login failed: could not create session token", "error", err.Error())
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	logger.Info("user logged in", "user_id", u.ID, "email", u.Email)

	auth.SetSessionCookie(w, token, h.isProduction, h.sessionLifetime)
	flash.Set(w, "Welcome back!")
	http.Redirect(w, r, "/home", http.StatusSeeOther)
}

// Logout destroys the session claim unconditionally.
// The "are you sure" confirmation happens in the browser before this route
// is ever reached.
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	auth.ClearSessionCookie(w, h.isProduction)
	flash.Set(w, "You have been logged out.")
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// Home renders the authenticated landing page with the full catalog and
// both filter forms
func (h *Handler) Home(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, "home", homePage{
		basePage:   h.base(w, r, "Community Feed", "feed"),
		Categories: feed.Categories(),
		Feeds:      feed.Catalog(),
	})
}

// Feeds is the server-evaluated filter path
func (h *Handler) Feeds(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")
	query := r.URL.Query().Get("q")

	h.render(w, r, "feeds", feedsPage{
		basePage:       h.base(w, r, "Filtered Feed", "feed"),
		Categories:     feed.Categories(),
		Feeds:          feed.Filter(feed.Catalog(), category, query),
		ActiveCategory: category,
		Query:          query,
	})
}

// FeedsAPI returns the same filter result as JSON. It calls the same
// Filter function as the page handler, so the two server paths cannot
// diverge.
func (h *Handler) FeedsAPI(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")
	query := r.URL.Query().Get("q")

	httputil.RespondJSON(w, feed.Filter(feed.Catalog(), category, query), http.StatusOK)
}

// ProfileForm renders the profile editor with the current record.
// Nothing is written until the save submission; navigating away leaves the
// record untouched.
func (h *Handler) ProfileForm(w http.ResponseWriter, r *http.Request) {
	logger := logging.GetLoggerFromContext(r.Context())

	email, _ := auth.GetIdentityFromContext(r.Context())
	u, err := h.users.GetByEmail(email)
	if err != nil {
		// The gate resolved this identity moments ago; a miss here means
		// the record vanished mid-request.
		logger.Error("profile load failed", "email", email, "error", err.Error())
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	h.render(w, r, "profile", profilePage{
		basePage: h.base(w, r, "Your Profile", "profile"),
		User:     u,
	})
}

// UpdateProfile applies a profile save submission.
//
// Field handling preserves the observable asymmetry: a blank name keeps
// the old one, a blank bio clears it while an absent bio keeps it, and the
// privacy flag is recomputed from checkbox presence every time.
func (h *Handler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	logger := logging.GetLoggerFromContext(r.Context())

	email, _ := auth.GetIdentityFromContext(r.Context())

	if err := r.ParseForm(); err != nil {
		logger.Warn("invalid profile form", "error", err.Error())
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}

	upd := user.ProfileUpdate{
		EmailPrivate: r.PostForm.Get("email_private") != "",
	}
	if values, ok := r.PostForm["name"]; ok {
		upd.Name = &values[0]
	}
	if values, ok := r.PostForm["bio"]; ok {
		upd.Bio = &values[0]
	}

	u, err := h.users.Update(email, upd)
	if err != nil {
		logger.Error("profile update failed", "email", email, "error", err.Error())
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	logger.Info("profile updated", "user_id", u.ID)

	flash.Set(w, "Profile updated.")
	http.Redirect(w, r, "/profile", http.StatusSeeOther)
}

// Ping is the unauthenticated liveness probe the frontend uses to measure
// round-trip latency
func (h *Handler) Ping(w http.ResponseWriter, r *http.Request) {
	httputil.RespondJSON(w, map[string]bool{"ok": true}, http.StatusOK)
}
