package google

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/exec"
	"runtime"
	"time"

	"golang.org/x/oauth2"
)

// AuthorizationFlow obtains a fresh token through user consent. The browser
// implementation blocks until the redirect arrives or the context expires;
// tests substitute a stub that returns a fixed token.
type AuthorizationFlow interface {
	Run(ctx context.Context, cfg *oauth2.Config) (*oauth2.Token, error)
}

// BrowserFlow implements AuthorizationFlow with the installed-app loopback
// pattern: it listens on an ephemeral localhost port, sends the user to the
// consent page, captures the authorization code on the redirect and exchanges
// it for a token.
type BrowserFlow struct {
	// Timeout bounds the wait for the user to complete consent.
	// Zero means the default of two minutes.
	Timeout time.Duration
}

// Run drives one interactive authorization. Consent denial, a CSRF state
// mismatch and timeout all surface as ErrAuth.
func (f *BrowserFlow) Run(ctx context.Context, cfg *oauth2.Config) (*oauth2.Token, error) {
	timeout := f.Timeout
	if timeout <= 0 {
		timeout = 2 * time.Minute
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	state, err := randomState()
	if err != nil {
		return nil, fmt.Errorf("%w: generate state: %v", ErrAuth, err)
	}

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		return nil, fmt.Errorf("%w: open redirect listener: %v", ErrAuth, err)
	}
	defer ln.Close()

	port := ln.Addr().(*net.TCPAddr).Port
	flowCfg := *cfg
	flowCfg.RedirectURL = fmt.Sprintf("http://127.0.0.1:%d/oauth2/callback", port)

	codeCh := make(chan string, 1)
	errCh := make(chan error, 1)

	srv := &http.Server{
		Handler: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			handleCallback(w, r, state, codeCh, errCh)
		}),
	}

	go func() {
		<-ctx.Done()
		_ = srv.Close()
	}()

	go func() {
		if serveErr := srv.Serve(ln); serveErr != nil && !errors.Is(serveErr, http.ErrServerClosed) {
			select {
			case errCh <- serveErr:
			default:
			}
		}
	}()

	authURL := flowCfg.AuthCodeURL(state, oauth2.AccessTypeOffline)
	fmt.Fprintln(os.Stderr, "Opening browser for authorization…")
	fmt.Fprintln(os.Stderr, "If the browser doesn't open, visit this URL:")
	fmt.Fprintln(os.Stderr, authURL)
	_ = openBrowser(authURL)

	select {
	case code := <-codeCh:
		_ = srv.Close()
		tok, exchangeErr := flowCfg.Exchange(ctx, code)
		if exchangeErr != nil {
			return nil, fmt.Errorf("%w: exchange auth code: %v", ErrAuth, exchangeErr)
		}
		return tok, nil
	case flowErr := <-errCh:
		_ = srv.Close()
		return nil, fmt.Errorf("%w: %v", ErrAuth, flowErr)
	case <-ctx.Done():
		_ = srv.Close()
		return nil, fmt.Errorf("%w: %v", ErrAuth, ctx.Err())
	}
}

// handleCallback processes the provider redirect. It reports the outcome on
// exactly one of codeCh or errCh and writes a minimal page telling the user
// to close the window.
func handleCallback(w http.ResponseWriter, r *http.Request, state string, codeCh chan<- string, errCh chan<- error) {
	if r.URL.Path != "/oauth2/callback" {
		http.NotFound(w, r)
		return
	}

	q := r.URL.Query()
	if q.Get("error") != "" {
		select {
		case errCh <- fmt.Errorf("authorization error: %s", q.Get("error")):
		default:
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("Authorization cancelled. You can close this window."))
		return
	}
	if q.Get("state") != state {
		select {
		case errCh <- errors.New("state mismatch"):
		default:
		}
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte("State mismatch. You can close this window."))
		return
	}
	code := q.Get("code")
	if code == "" {
		select {
		case errCh <- errors.New("missing code"):
		default:
		}
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte("Missing code. You can close this window."))
		return
	}

	select {
	case codeCh <- code:
	default:
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("Success! You can close this window."))
}

func randomState() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}

func openBrowser(u string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", u)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", u)
	default:
		cmd = exec.Command("xdg-open", u)
	}
	return cmd.Start()
}
