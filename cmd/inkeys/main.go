// Command inkeys is a small interactive demo of the in-keys library. By
// default it decodes keys from the terminal and prints them until Escape is
// pressed; it can also prompt for a visible or hidden line.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/alexflint/go-arg"
	"github.com/sirupsen/logrus"

	"github.com/Sapiet1/in-keys/pkg/key"
	"github.com/Sapiet1/in-keys/pkg/logutil"
	"github.com/Sapiet1/in-keys/pkg/term"
)

type args struct {
	Line    bool          `arg:"-l,--line" help:"read one line instead of keys"`
	Secret  bool          `arg:"-s,--secret" help:"read one line without echoing it"`
	Timeout time.Duration `arg:"-t,--timeout" help:"give up after waiting this long for input"`
	LogFile string        `arg:"--log" help:"write debug logs to this file"`
}

func (args) Description() string {
	return "inkeys decodes terminal input into logical keys and lines."
}

func main() {
	var args args
	arg.MustParse(&args)

	if err := logutil.SetOutputFile(args.LogFile); err != nil {
		logrus.WithError(err).Fatal("cannot open log file")
	}

	rd, err := term.Stdin()
	if errors.Is(err, term.ErrNotAttended) {
		logrus.Fatal("stdin is not an interactive terminal")
	} else if err != nil {
		logrus.WithError(err).Fatal("cannot read from stdin")
	}
	out := term.NewWriter(os.Stdout)

	switch {
	case args.Secret:
		readLine(rd, out, args.Timeout, true)
	case args.Line:
		readLine(rd, out, args.Timeout, false)
	default:
		readKeys(rd, out, args.Timeout)
	}
}

func readKeys(rd *term.Reader, out *term.Writer, timeout time.Duration) {
	if rows, cols, ok := term.Size(os.Stdout); ok {
		out.PrintLine(fmt.Sprintf("terminal is %d rows by %d columns", rows, cols))
	}
	out.PrintLine("press keys; Escape quits")

	for {
		k, err := readKey(rd, timeout)
		switch {
		case errors.Is(err, errExpired):
			out.PrintLine("no key pressed in time")
			return
		case errors.Is(err, term.ErrInterrupted) || errors.Is(err, io.EOF):
			out.PrintLine("bye")
			return
		case err != nil:
			logrus.WithError(err).Fatal("cannot read key")
		}
		out.PrintLine(k.String())
		if k == key.Escape {
			return
		}
	}
}

var errExpired = errors.New("wait expired")

func readKey(rd *term.Reader, timeout time.Duration) (key.Key, error) {
	if timeout <= 0 {
		return rd.ReadKey()
	}
	k, ok, err := rd.ReadKeyTimeout(timeout)
	if err == nil && !ok {
		return k, errExpired
	}
	return k, err
}

func readLine(rd *term.Reader, out *term.Writer, timeout time.Duration, secret bool) {
	read := rd.ReadLine
	if secret {
		out.Print("secret: ")
		read = rd.ReadLineHidden
	} else {
		out.Print("> ")
	}

	var line string
	var err error
	if timeout > 0 {
		var ok bool
		if secret {
			line, ok, err = rd.ReadLineHiddenTimeout(timeout)
		} else {
			line, ok, err = rd.ReadLineTimeout(timeout)
		}
		if err == nil && !ok {
			out.PrintLine("")
			out.PrintLine("no input in time")
			return
		}
	} else {
		line, err = read()
	}
	if errors.Is(err, term.ErrInterrupted) || errors.Is(err, io.EOF) {
		out.PrintLine("")
		return
	}
	if err != nil {
		logrus.WithError(err).Fatal("cannot read line")
	}
	if secret {
		out.PrintLine("")
		out.PrintLine(fmt.Sprintf("read %d characters", len([]rune(line))))
	} else {
		out.PrintLine(fmt.Sprintf("read %q", line))
	}
}
