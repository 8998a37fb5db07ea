//go:build e2e

package e2e_test

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/rogpeppe/go-internal/testscript"
)

var binDir string

func TestMain(m *testing.M) {
	dir, err := os.MkdirTemp("", "iconkit-e2e-*")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	binDir = dir

	code := 1
	if err := buildBinary(filepath.Join(binDir, "iconkit")); err != nil {
		fmt.Fprintln(os.Stderr, err)
	} else {
		code = m.Run()
	}

	_ = os.RemoveAll(binDir)
	os.Exit(code)
}

func buildBinary(out string) error {
	//nolint:gosec // static arguments
	cmd := exec.Command("go", "build", "-o", out, "./cmd/iconkit")
	cmd.Dir = ".."
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("build iconkit: %w", err)
	}
	return nil
}

func TestScripts(t *testing.T) {
	testscript.Run(t, testscript.Params{
		Dir:   "testdata",
		Setup: setup,
	})
}

// setup isolates each script from the developer's session: no host bridge
// socket is reachable and no user config is picked up.
func setup(env *testscript.Env) error {
	env.Setenv("NO_COLOR", "1")
	env.Setenv("PATH", binDir+string(os.PathListSeparator)+env.Getenv("PATH"))

	for name, dir := range map[string]string{
		"HOME":            ".home",
		"XDG_RUNTIME_DIR": ".run",
	} {
		path := filepath.Join(env.WorkDir, dir)
		if err := os.MkdirAll(path, 0o700); err != nil {
			return err
		}
		env.Setenv(name, path)
	}
	return nil
}
