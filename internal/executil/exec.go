package executil

import (
	"bytes"
	"os/exec"
)

type Result struct {
	Stdout string
	Stderr string
	Code   int
}

// Run executes bin with args directly (no shell), capturing both streams to
// completion. A non-zero exit status is reported through Result.Code; the
// returned error is reserved for failing to locate or start the binary.
func Run(bin string, args []string) (Result, error) {
	path, err := exec.LookPath(bin)
	if err != nil {
		return Result{}, err
	}
	cmd := exec.Command(path, args...)
	var out, errb bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &errb
	err = cmd.Run()
	code := 0
	if err != nil {
		e, ok := err.(*exec.ExitError)
		if !ok {
			return Result{}, err
		}
		code = e.ExitCode()
	}
	return Result{Stdout: out.String(), Stderr: errb.String(), Code: code}, nil
}
