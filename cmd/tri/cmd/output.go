package cmd

import (
	"errors"
	"io"
	"os"
	"path/filepath"

	mdwerror "github.com/msto63/triangle/foundation/core/error"
)

// stdoutPath selects stdout as output
const stdoutPath = "-"

// openInput opens an input file with a coded error on failure
func openInput(path string) (*os.File, error) {
	f, err := os.Open(path)
	if err != nil {
		code := mdwerror.CodeIO
		if errors.Is(err, os.ErrNotExist) {
			code = mdwerror.CodeNotFound
		}
		return nil, mdwerror.Wrap(err, "cannot open input").
			WithCode(code).
			WithOperation("cli.openInput").
			WithDetail("path", path)
	}
	return f, nil
}

// writeOutput runs fn against a temporary file next to path and renames
// it into place once fn succeeded. On failure the temporary file is
// removed and path is left untouched.
func writeOutput(path string, stdout io.Writer, fn func(w io.Writer) error) (err error) {
	if path == stdoutPath {
		return fn(stdout)
	}

	ioErr := func(cause error, message string) error {
		return mdwerror.Wrap(cause, message).
			WithCode(mdwerror.CodeIO).
			WithOperation("cli.writeOutput").
			WithDetail("path", path)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return ioErr(err, "cannot create output")
	}
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	if err = fn(tmp); err != nil {
		return err
	}
	if err = tmp.Close(); err != nil {
		return ioErr(err, "cannot write output")
	}
	if err = os.Chmod(tmp.Name(), 0o644); err != nil {
		return ioErr(err, "cannot write output")
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return ioErr(err, "cannot write output")
	}
	return nil
}
