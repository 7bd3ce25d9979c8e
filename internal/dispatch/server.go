package dispatch

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/udisondev/gi2go/internal/db"
	"github.com/udisondev/gi2go/internal/model"
)

// Accounts abstracts account storage for the dispatch endpoints.
// Implemented by db.DB; tests supply fakes.
type Accounts interface {
	GetAccount(ctx context.Context, login string) (*model.Account, error)
	CreateAccount(ctx context.Context, login, passwordHash, ip string) error
	UpdateLastLogin(ctx context.Context, login, ip string) error
}

// Players abstracts player storage. A player row is created lazily on the
// account's first successful login.
type Players interface {
	LoadByAccount(ctx context.Context, login string) (*model.Player, error)
	Create(ctx context.Context, login, name string) (*model.Player, error)
}

// Server is the HTTP login/token endpoint the client hits before opening
// a game connection. Verifies credentials, hands out session tokens.
//
// Phase 1.3: Dispatch.
type Server struct {
	accounts           Accounts
	players            Players
	sessions           *SessionManager
	addr               string
	autoCreateAccounts bool
}

// NewServer creates a dispatch server.
func NewServer(accounts Accounts, players Players, sessions *SessionManager, bindAddress string, port int, autoCreate bool) *Server {
	return &Server{
		accounts:           accounts,
		players:            players,
		sessions:           sessions,
		addr:               net.JoinHostPort(bindAddress, strconv.Itoa(port)),
		autoCreateAccounts: autoCreate,
	}
}

// Run serves until ctx is cancelled.
func (s *Server) Run(ctx context.Context) error {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /account/login", s.handleLogin)
	mux.HandleFunc("GET /account/verify", s.handleVerify)

	srv := &http.Server{
		Addr:              s.addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutting down dispatch server: %w", err)
		}
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("dispatch server: %w", err)
	}
}

type loginRequest struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string `json:"token"`
	UID   int64  `json:"uid"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Login == "" || req.Password == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request"})
		return
	}
	ip, _, _ := net.SplitHostPort(r.RemoteAddr)

	acc, err := s.accounts.GetAccount(r.Context(), req.Login)
	if err != nil {
		slog.Error("account lookup failed", "login", req.Login, "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
		return
	}

	if acc == nil {
		if !s.autoCreateAccounts {
			writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "unknown account"})
			return
		}
		hash, err := db.HashPassword(req.Password)
		if err != nil {
			slog.Error("hashing password failed", "login", req.Login, "error", err)
			writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
			return
		}
		if err := s.accounts.CreateAccount(r.Context(), req.Login, hash, ip); err != nil {
			slog.Error("account auto-create failed", "login", req.Login, "error", err)
			writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
			return
		}
	} else if !db.VerifyPassword(acc.PasswordHash, req.Password) {
		slog.Warn("wrong password", "login", req.Login, "ip", ip)
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "wrong credentials"})
		return
	}

	session, err := s.sessions.NewSession(req.Login)
	if err != nil {
		slog.Error("issuing session failed", "login", req.Login, "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
		return
	}

	if err := s.accounts.UpdateLastLogin(r.Context(), req.Login, ip); err != nil {
		slog.Warn("updating last login failed", "login", req.Login, "error", err)
	}

	player, err := s.players.LoadByAccount(r.Context(), req.Login)
	if err != nil {
		slog.Error("player lookup failed", "login", req.Login, "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
		return
	}
	if player == nil {
		player, err = s.players.Create(r.Context(), req.Login, req.Login)
		if err != nil {
			slog.Error("player create failed", "login", req.Login, "error", err)
			writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
			return
		}
	}

	slog.Info("account logged in", "login", req.Login, "uid", player.UID, "ip", ip)
	writeJSON(w, http.StatusOK, loginResponse{Token: session.Token, UID: player.UID})
}

func (s *Server) handleVerify(w http.ResponseWriter, r *http.Request) {
	token := r.URL.Query().Get("token")
	session, ok := s.sessions.Verify(token)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "invalid token"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"login": session.Login})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("encoding response", "error", err)
	}
}
