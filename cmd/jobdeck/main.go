package main

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/redaelm/jobdeck/internal/browser"
	"github.com/redaelm/jobdeck/internal/config"
	"github.com/redaelm/jobdeck/internal/session"
	"github.com/redaelm/jobdeck/internal/store"
	"github.com/redaelm/jobdeck/internal/tui"
	"github.com/redaelm/jobdeck/pkg/client"
)

// version is set at build time via -ldflags "-X main.version=..."
var version = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "version", "-v":
			fmt.Println("jobdeck " + version)
			return nil
		case "help", "--help", "-h":
			printHelp()
			return nil
		case "login":
			return runLogin(cfg)
		case "logout":
			return runLogout()
		}
	}

	sess, err := session.NewStore()
	if err != nil {
		return err
	}
	st, err := buildStore(cfg, sess)
	if err != nil {
		return err
	}

	// Anonymous users still get the TUI; published jobs are public.
	return runTUI(st)
}

// buildStore wires the client and state store around a session store and
// restores any persisted session, dropping it when the token has expired.
func buildStore(cfg *config.Config, sess *session.Store) (*store.Store, error) {
	c := client.New(cfg.APIURL, sess,
		client.WithHTTPClient(&http.Client{Timeout: cfg.HTTPTimeout}))
	st := store.New(c, sess, cfg.PageSize)
	if err := st.RestoreSession(); err != nil {
		return nil, fmt.Errorf("restore session: %w", err)
	}
	return st, nil
}

func runTUI(st *store.Store) error {
	p := tea.NewProgram(tui.NewApp(st, version), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui error: %w", err)
	}
	return nil
}

// runLogin authenticates through the browser: an ephemeral localhost server
// receives the Google identity token, which is exchanged for a session
// against the backend. A CSRF state value ties the callback to this process.
func runLogin(cfg *config.Config) error {
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		return fmt.Errorf("start callback listener: %w", err)
	}
	defer listener.Close() //nolint:errcheck

	port := listener.Addr().(*net.TCPAddr).Port
	credCh := make(chan string, 1)
	errCh := make(chan error, 1)

	stateBytes := make([]byte, 16)
	if _, err := rand.Read(stateBytes); err != nil {
		return fmt.Errorf("generate oauth state: %w", err)
	}
	expectedState := hex.EncodeToString(stateBytes)

	mux := http.NewServeMux()
	mux.HandleFunc("/callback", callbackHandler(expectedState, credCh, errCh))

	srv := &http.Server{Handler: mux}
	go func() {
		if srvErr := srv.Serve(listener); srvErr != nil && srvErr != http.ErrServerClosed {
			errCh <- srvErr
		}
	}()

	loginParams := url.Values{}
	loginParams.Set("cli_port", strconv.Itoa(port))
	loginParams.Set("state", expectedState)
	loginURL := cfg.BaseURL + "/auth/cli?" + loginParams.Encode()

	fmt.Println("Opening browser to authenticate...")
	if err := browser.Open(loginURL); err != nil {
		fmt.Printf("Could not open browser. Visit this URL manually:\n  %s\n", loginURL)
	}

	select {
	case idToken := <-credCh:
		shutCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		srv.Shutdown(shutCtx) //nolint:errcheck

		sess, err := session.NewStore()
		if err != nil {
			return err
		}
		st, err := buildStore(cfg, sess)
		if err != nil {
			return err
		}

		ctx, cancelLogin := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancelLogin()
		action := st.GoogleLogin(idToken)(ctx)
		st.Apply(action)
		if failed, ok := action.(store.LoginFailed); ok {
			return fmt.Errorf("login: %s", failed.Err)
		}

		user := st.State().Auth.User
		fmt.Printf("Signed in as %s <%s>\n\n", user.Name, user.Email)

		// Straight into the TUI after login.
		return runTUI(st)

	case srvErr := <-errCh:
		return fmt.Errorf("callback server error: %w", srvErr)

	case <-time.After(2 * time.Minute):
		return fmt.Errorf("login timed out, no callback received within 2 minutes")
	}
}

// callbackHandler verifies the CSRF state and forwards the identity token.
func callbackHandler(expectedState string, credCh chan<- string, errCh chan<- error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("state") != expectedState {
			http.Error(w, "invalid state", http.StatusForbidden)
			errCh <- fmt.Errorf("callback state mismatch (possible CSRF)")
			return
		}
		credential := r.URL.Query().Get("credential")
		if credential == "" {
			http.Error(w, "missing credential", http.StatusBadRequest)
			errCh <- fmt.Errorf("callback received without credential")
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		fmt.Fprint(w, callbackHTML) //nolint:errcheck
		credCh <- credential
	}
}

func runLogout() error {
	sess, err := session.NewStore()
	if err != nil {
		return err
	}
	if sess.Token() == "" {
		fmt.Println("Already signed out.")
		return nil
	}
	if err := sess.Clear(); err != nil {
		return err
	}
	printSignedOut()
	return nil
}

const callbackHTML = `<!DOCTYPE html>
<html>
<head><title>jobdeck</title></head>
<body style="background:#0d1117;color:#c0c4d0;font-family:monospace;display:flex;align-items:center;justify-content:center;height:100vh;margin:0">
<div style="text-align:center">
<h1 style="color:#60a5fa;letter-spacing:0.4em">JOBDECK</h1>
<p>Signed in. You can close this tab and return to your terminal.</p>
</div>
</body>
</html>`
