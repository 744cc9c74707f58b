package cli

import (
	"bufio"
	"context"
	"strings"
	"testing"
)

type fakeExec struct {
	loggedIn bool

	calls []string
}

func (f *fakeExec) isLoggedIn(ctx context.Context) bool { return f.loggedIn }
func (f *fakeExec) Register(ctx context.Context) error {
	f.calls = append(f.calls, "register")
	return nil
}
func (f *fakeExec) Login(ctx context.Context) error {
	f.calls = append(f.calls, "login")
	f.loggedIn = true
	return nil
}
func (f *fakeExec) Google(ctx context.Context) error {
	f.calls = append(f.calls, "google")
	return nil
}
func (f *fakeExec) List(ctx context.Context) error { f.calls = append(f.calls, "list"); return nil }
func (f *fakeExec) Add(ctx context.Context) error  { f.calls = append(f.calls, "add"); return nil }
func (f *fakeExec) Delete(ctx context.Context) error {
	f.calls = append(f.calls, "delete")
	return nil
}
func (f *fakeExec) Toggle(ctx context.Context) error {
	f.calls = append(f.calls, "toggle")
	return nil
}
func (f *fakeExec) WhoAmI(ctx context.Context) error {
	f.calls = append(f.calls, "whoami")
	return nil
}
func (f *fakeExec) Logout(ctx context.Context) error {
	f.calls = append(f.calls, "logout")
	f.loggedIn = false
	return nil
}

func silencePrintln(t *testing.T) {
	t.Helper()
	origPrint := printlnFn
	printlnFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn = origPrint })
}

func TestRunREPL_LoginFlowAndCommands(t *testing.T) {
	silencePrintln(t)

	input := strings.NewReader(strings.Join([]string{
		"help",
		"login",
		"help",
		"list",
		"add",
		"delete",
		"toggle",
		"whoami",
		"foobar",
		"logout",
		"exit",
	}, "\n"))

	exec := &fakeExec{loggedIn: false}
	sc := bufio.NewScanner(input)

	runREPL(context.Background(), exec, func() string { return "status" }, sc)

	wantOrder := []string{"login", "list", "add", "delete", "toggle", "whoami", "logout"}
	if len(exec.calls) != len(wantOrder) {
		t.Fatalf("unexpected calls: %+v", exec.calls)
	}
	for i, want := range wantOrder {
		if exec.calls[i] != want {
			t.Fatalf("call %d: got %q, want %q (all: %v)", i, exec.calls[i], want, exec.calls)
		}
	}
}

func TestRunREPL_ShortListAliasAndQuit(t *testing.T) {
	silencePrintln(t)

	input := strings.NewReader("l\nquit\nlist\n")
	exec := &fakeExec{loggedIn: true}
	sc := bufio.NewScanner(input)

	runREPL(context.Background(), exec, func() string { return "s" }, sc)

	if len(exec.calls) != 1 || exec.calls[0] != "list" {
		t.Fatalf("unexpected calls: %v", exec.calls)
	}
}

func TestRunREPL_BlankLinesIgnored(t *testing.T) {
	silencePrintln(t)

	input := strings.NewReader("\n\n   \nexit\n")
	exec := &fakeExec{}
	sc := bufio.NewScanner(input)

	runREPL(context.Background(), exec, func() string { return "" }, sc)

	if len(exec.calls) != 0 {
		t.Fatalf("unexpected calls: %v", exec.calls)
	}
}
