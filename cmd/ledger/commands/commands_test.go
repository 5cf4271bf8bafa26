package commands

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

// runCLI executes the CLI against a temp home and returns its output.
func runCLI(t *testing.T, home, stdin string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	full := append([]string{"--home", home, "--log-level", "error"}, args...)
	err := Run(full, strings.NewReader(stdin), &out)
	return out.String(), err
}

func mustRun(t *testing.T, home string, args ...string) string {
	t.Helper()
	out, err := runCLI(t, home, "", args...)
	if err != nil {
		t.Fatalf("ledger %s: %v\n%s", strings.Join(args, " "), err, out)
	}
	return out
}

func TestCLI_Flow(t *testing.T) {
	home := t.TempDir()

	out := mustRun(t, home, "signup", "alice", "-p", "secret1")
	if !strings.Contains(out, "Account created successfully") {
		t.Fatalf("signup output: %q", out)
	}

	if _, err := runCLI(t, home, "", "signup", "alice", "-p", "other1"); !errors.Is(err, errSignupRejected) {
		t.Fatalf("duplicate signup err = %v", err)
	}

	out = mustRun(t, home, "login", "alice", "-p", "secret1")
	if !strings.Contains(out, "Balance: 0") {
		t.Fatalf("login output: %q", out)
	}

	out = mustRun(t, home, "deposit", "100.0", "-u", "alice", "-p", "secret1")
	if !strings.Contains(out, "Balance: 100") {
		t.Fatalf("deposit output: %q", out)
	}

	if _, err := runCLI(t, home, "", "withdraw", "150", "-u", "alice", "-p", "secret1"); !errors.Is(err, errWithdrawRejected) {
		t.Fatalf("overdraw err = %v", err)
	}

	out = mustRun(t, home, "withdraw", "40", "-u", "alice", "-p", "secret1")
	if !strings.Contains(out, "Balance: 60") {
		t.Fatalf("withdraw output: %q", out)
	}

	out = mustRun(t, home, "balance", "-u", "alice", "-p", "secret1")
	if !strings.Contains(out, "Balance: 60") {
		t.Fatalf("balance output: %q", out)
	}
}

func TestCLI_InputValidation(t *testing.T) {
	home := t.TempDir()
	mustRun(t, home, "signup", "alice", "-p", "secret1")

	tests := []struct {
		name string
		args []string
		want error
	}{
		{"short password", []string{"signup", "bob", "-p", "12345"}, errShortPassword},
		{"empty password", []string{"signup", "bob", "-p", "   "}, errEmptyCredentials},
		{"wrong password", []string{"login", "alice", "-p", "secret2"}, errInvalidLogin},
		{"unknown user", []string{"balance", "-u", "bob", "-p", "secret1"}, errInvalidLogin},
		{"zero amount", []string{"deposit", "0", "-u", "alice", "-p", "secret1"}, errAmountNotPositive},
		{"negative amount", []string{"withdraw", "-u", "alice", "-p", "secret1", "--", "-5"}, errAmountNotPositive},
		{"not a number", []string{"deposit", "ten", "-u", "alice", "-p", "secret1"}, errInvalidAmount},
		{"blank amount", []string{"deposit", " ", "-u", "alice", "-p", "secret1"}, errAmountEmpty},
		{"exponent amount", []string{"deposit", "1e1000000000", "-u", "alice", "-p", "secret1"}, errInvalidAmount},
		{"small exponent amount", []string{"deposit", "1E-3", "-u", "alice", "-p", "secret1"}, errInvalidAmount},
		{"too many decimals", []string{"deposit", "0." + strings.Repeat("0", 40) + "1", "-u", "alice", "-p", "secret1"}, errInvalidAmount},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := runCLI(t, home, "", tt.args...)
			if !errors.Is(err, tt.want) {
				t.Fatalf("err = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestCLI_Session(t *testing.T) {
	home := t.TempDir()
	mustRun(t, home, "signup", "alice", "-p", "secret1")

	script := strings.Join([]string{
		"deposit 100",
		"withdraw 150",
		"withdraw 40",
		"deposit abc",
		"dance",
		"balance",
		"logout",
		"deposit 1000",
	}, "\n")

	out, err := runCLI(t, home, script, "session", "-u", "alice", "-p", "secret1")
	if err != nil {
		t.Fatalf("session: %v\n%s", err, out)
	}
	for _, want := range []string{
		"Logged in as alice",
		"Balance: 100",
		errWithdrawRejected.Error(),
		"Balance: 60",
		errInvalidAmount.Error(),
		`unknown command "dance"`,
		"Logged out.",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("session output missing %q:\n%s", want, out)
		}
	}

	// Input after logout is ignored.
	out = mustRun(t, home, "balance", "-u", "alice", "-p", "secret1")
	if !strings.Contains(out, "Balance: 60") {
		t.Fatalf("balance output: %q", out)
	}
}

func TestCLI_SQLiteBackend(t *testing.T) {
	home := t.TempDir()
	mustRun(t, home, "--backend", "sqlite", "signup", "alice", "-p", "secret1")
	mustRun(t, home, "--backend", "sqlite", "deposit", "12.5", "-u", "alice", "-p", "secret1")

	out := mustRun(t, home, "--backend", "sqlite", "balance", "-u", "alice", "-p", "secret1")
	if !strings.Contains(out, "Balance: 12.5") {
		t.Fatalf("balance output: %q", out)
	}
}
