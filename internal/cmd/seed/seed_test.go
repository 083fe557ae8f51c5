package seed

import (
	"bytes"
	"context"
	"crypto/ed25519"
	"encoding/base64"
	"flag"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/louisbranch/clearance/internal/services/web/integration/auth"
	"github.com/louisbranch/clearance/internal/services/web/platform/sessioncookie"
	"github.com/louisbranch/clearance/internal/services/web/storage/sqlite"
)

func cookieValue(t *testing.T, output string) string {
	t.Helper()
	for _, line := range strings.Split(output, "\n") {
		if value, ok := strings.CutPrefix(line, "cookie "+sessioncookie.Name+"="); ok {
			return value
		}
	}
	t.Fatalf("no cookie line in %q", output)
	return ""
}

func requestWithCookie(value string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	req.AddCookie(&http.Cookie{Name: sessioncookie.Name, Value: value})
	return req
}

func TestParseConfigDefaults(t *testing.T) {
	t.Parallel()

	fs := flag.NewFlagSet("seed", flag.ContinueOnError)
	cfg, err := ParseConfigFromEnviron(fs, nil, map[string]string{})
	if err != nil {
		t.Fatalf("ParseConfigFromEnviron() error = %v", err)
	}
	if cfg.SessionMode != "store" {
		t.Fatalf("SessionMode = %q, want %q", cfg.SessionMode, "store")
	}
	if cfg.TTL != 168*time.Hour {
		t.Fatalf("TTL = %v, want 168h", cfg.TTL)
	}
	if cfg.Email != "broker@example.com" {
		t.Fatalf("Email = %q", cfg.Email)
	}
}

func TestParseConfigFlagsOverrideEnviron(t *testing.T) {
	t.Parallel()

	fs := flag.NewFlagSet("seed", flag.ContinueOnError)
	cfg, err := ParseConfigFromEnviron(fs, []string{"-email", "flag@example.com"}, map[string]string{
		"CLEARANCE_SEED_EMAIL": "env@example.com",
		"CLEARANCE_SEED_NAME":  "Env Name",
	})
	if err != nil {
		t.Fatalf("ParseConfigFromEnviron() error = %v", err)
	}
	if cfg.Email != "flag@example.com" {
		t.Fatalf("Email = %q, want %q", cfg.Email, "flag@example.com")
	}
	if cfg.DisplayName != "Env Name" {
		t.Fatalf("DisplayName = %q, want %q", cfg.DisplayName, "Env Name")
	}
}

func TestSeedStoreSessionResolves(t *testing.T) {
	t.Parallel()
	dbPath := filepath.Join(t.TempDir(), "seed.db")

	var out bytes.Buffer
	err := seed(context.Background(), Config{
		DBPath:      dbPath,
		SessionMode: "store",
		UserID:      "user-1",
		Email:       "broker@example.com",
		DisplayName: "Broker",
		TTL:         time.Hour,
	}, &out)
	if err != nil {
		t.Fatalf("seed() error = %v", err)
	}
	if !strings.Contains(out.String(), "user user-1 broker@example.com") {
		t.Fatalf("output = %q", out.String())
	}

	store, err := sqlite.Open(dbPath)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer store.Close()
	provider := auth.NewStoreProvider(auth.StoreConfig{Sessions: store, Users: store})
	status := provider.Resolve(requestWithCookie(cookieValue(t, out.String())))
	user, ok := status.User()
	if !ok {
		t.Fatalf("status = %s, want present", status.State)
	}
	if user.DisplayName != "Broker" {
		t.Fatalf("DisplayName = %q, want %q", user.DisplayName, "Broker")
	}
}

func TestSeedTokenWithGeneratedKey(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	err := seed(context.Background(), Config{
		SessionMode: "token",
		Issuer:      "iss",
		Audience:    "aud",
		UserID:      "user-1",
		Email:       "broker@example.com",
		TTL:         time.Hour,
	}, &out)
	if err != nil {
		t.Fatalf("seed() error = %v", err)
	}

	var publicKey string
	for _, line := range strings.Split(out.String(), "\n") {
		if value, ok := strings.CutPrefix(line, "public_key "); ok {
			publicKey = value
		}
	}
	if publicKey == "" {
		t.Fatalf("expected public_key line in %q", out.String())
	}
	tokenCfg, err := auth.NewTokenConfig("iss", "aud", publicKey, nil)
	if err != nil {
		t.Fatalf("NewTokenConfig() error = %v", err)
	}
	identity, err := auth.ValidateToken(cookieValue(t, out.String()), tokenCfg)
	if err != nil {
		t.Fatalf("ValidateToken() error = %v", err)
	}
	if identity.Subject != "user-1" || identity.Email != "broker@example.com" {
		t.Fatalf("identity = %+v", identity)
	}
}

func TestSeedTokenWithConfiguredSeedKey(t *testing.T) {
	t.Parallel()

	seedBytes := bytes.Repeat([]byte{7}, ed25519.SeedSize)
	var out bytes.Buffer
	err := seed(context.Background(), Config{
		SessionMode: "token",
		Issuer:      "iss",
		Audience:    "aud",
		PrivateKey:  base64.StdEncoding.EncodeToString(seedBytes),
		Email:       "broker@example.com",
	}, &out)
	if err != nil {
		t.Fatalf("seed() error = %v", err)
	}
	if strings.Contains(out.String(), "public_key") {
		t.Fatalf("configured key should not print a public key: %q", out.String())
	}
	public := ed25519.NewKeyFromSeed(seedBytes).Public().(ed25519.PublicKey)
	tokenCfg, err := auth.NewTokenConfig("iss", "aud", base64.RawStdEncoding.EncodeToString(public), nil)
	if err != nil {
		t.Fatalf("NewTokenConfig() error = %v", err)
	}
	if _, err := auth.ValidateToken(cookieValue(t, out.String()), tokenCfg); err != nil {
		t.Fatalf("ValidateToken() error = %v", err)
	}
}

func TestSeedRejectsBadInput(t *testing.T) {
	t.Parallel()

	tests := map[string]Config{
		"unknown mode":    {SessionMode: "magic", Email: "a@b.com"},
		"short key":       {SessionMode: "token", Email: "a@b.com", PrivateKey: base64.StdEncoding.EncodeToString([]byte("short"))},
		"token no email":  {SessionMode: "token"},
		"store no dbpath": {SessionMode: "store", Email: "a@b.com"},
	}
	for name, cfg := range tests {
		if err := seed(context.Background(), cfg, nil); err == nil {
			t.Fatalf("%s: expected error", name)
		}
	}
}
