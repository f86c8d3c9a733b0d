/*
Package gfio provides io functionality, including to/from stdin/stdout,
transparent gzip (de)compression, and helpful error messages when used in
combination with bad filepaths from commandline options
*/
package gfio

import (
	"bufio"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	gzip "github.com/klauspost/pgzip"
	"github.com/spf13/pflag"
)

func flagString(flag pflag.Flag) string {
	switch len(flag.Shorthand) {
	case 0:
		return "--" + flag.Name
	default:
		return "-" + flag.Shorthand + " / --" + flag.Name
	}
}

func parseErr(err error, flagString string) error {
	switch x := err.(type) {
	case *fs.PathError:
		return errors.New(x.Op + " " + flagString + " " + x.Path + ": " + x.Err.Error())
	default:
		return err
	}
}

// multiCloser closes every closer in order, returning the first error
type multiCloser struct {
	closers []io.Closer
}

func (m multiCloser) Close() error {
	var err error
	for _, c := range m.closers {
		if cerr := c.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	return err
}

type readCloser struct {
	io.Reader
	multiCloser
}

type writeCloser struct {
	io.Writer
	multiCloser
}

// isGzip peeks at the first two bytes for the gzip magic number
func isGzip(r *bufio.Reader) bool {
	sig, err := r.Peek(2)
	return err == nil && sig[0] == 0x1f && sig[1] == 0x8b
}

// OpenIn opens the file named by flag for reading, or stdin if its value is
// "stdin". Gzipped input is decompressed.
func OpenIn(flag pflag.Flag) (io.ReadCloser, error) {
	var f *os.File
	var err error

	inFile := flag.Value.String()

	if inFile != "stdin" {
		if f, err = os.Open(inFile); err != nil {
			return nil, parseErr(err, flagString(flag))
		}
	} else {
		f = os.Stdin
	}

	br := bufio.NewReader(f)
	if isGzip(br) || strings.HasSuffix(inFile, ".gz") {
		gr, err := gzip.NewReader(br)
		if err != nil {
			f.Close()
			return nil, errors.New(flagString(flag) + " " + inFile + ": " + err.Error())
		}
		return readCloser{Reader: gr, multiCloser: multiCloser{[]io.Closer{gr, f}}}, nil
	}

	return readCloser{Reader: br, multiCloser: multiCloser{[]io.Closer{f}}}, nil
}

// OpenOut creates (or truncates) the file named by flag for writing, or uses
// stdout if its value is "stdout". Paths ending in ".gz" are gzip compressed.
func OpenOut(flag pflag.Flag) (io.WriteCloser, error) {
	var f *os.File
	var err error

	outFile := flag.Value.String()

	if outFile != "stdout" {
		f, err = os.Create(outFile)
		if err != nil {
			return nil, parseErr(err, flagString(flag))
		}
	} else {
		f = os.Stdout
	}

	if strings.HasSuffix(outFile, ".gz") {
		gw := gzip.NewWriter(f)
		return writeCloser{Writer: gw, multiCloser: multiCloser{[]io.Closer{gw, f}}}, nil
	}

	return f, nil
}

// OpenAppend opens the file named by flag for appending, creating it if needed
func OpenAppend(flag pflag.Flag) (*os.File, error) {
	f, err := os.OpenFile(flag.Value.String(), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, parseErr(err, flagString(flag))
	}
	return f, nil
}

// AppendLine appends line plus a newline to the file at path in a single
// write, so that concurrent processes appending to the same file never
// interleave partial lines
func AppendLine(path string, line string) error {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	_, err = f.Write([]byte(line + "\n"))
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return err
}

// SiblingPath returns the path of a file called name in the same directory as path
func SiblingPath(path string, name string) string {
	return filepath.Join(filepath.Dir(path), name)
}

// BaseName is the file name of path without its directory or extension
func BaseName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
