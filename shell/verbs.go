package shell

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/brettbedarf/ysh"
	"github.com/brettbedarf/ysh/filesystem"
	"github.com/brettbedarf/ysh/internal/util"
)

// exitStatusBadArg is the status set by `exit` when its argument is not a number
const exitStatusBadArg = 127

// Cat prints the words of each named file, space-joined.
func Cat(s *Session, words []string) error {
	var errs []error
	for _, p := range words[1:] {
		n, err := s.Tree.Resolve(p)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		content, err := n.ReadFile()
		if err != nil {
			errs = append(errs, ysh.NewPathError(p, err))
			continue
		}
		if _, err := fmt.Fprintln(s.Out, strings.Join(content, " ")); err != nil {
			return err
		}
	}
	return errors.Join(errs...)
}

// Cd changes the current directory; no argument goes to root.
func Cd(s *Session, words []string) error {
	if len(words) < 2 {
		s.Tree.Reset()
		return nil
	}
	return s.Tree.Chdir(words[1])
}

// Echo prints its arguments space-joined.
func Echo(s *Session, words []string) error {
	if len(words) < 2 {
		return nil
	}
	_, err := fmt.Fprintln(s.Out, strings.Join(words[1:], " "))
	return err
}

// Exit records the exit status and asks the REPL to stop. A non-numeric
// argument sets status 127; no argument keeps the current status.
func Exit(s *Session, words []string) error {
	if len(words) > 1 {
		status, err := strconv.Atoi(words[1])
		if err != nil {
			status = exitStatusBadArg
		}
		s.ExitStatus = status
	}
	return &ysh.ExitRequest{Status: s.ExitStatus}
}

// Ls lists the current directory, or each named directory in turn.
func Ls(s *Session, words []string) error {
	if len(words) < 2 {
		return filesystem.WriteListing(s.Out, s.Tree.Pwd(), s.Tree.Cwd())
	}
	var errs []error
	for _, p := range words[1:] {
		err := s.Tree.Within(p, func(dir *filesystem.Inode) error {
			return filesystem.WriteListing(s.Out, listingHeader(s, p), dir)
		})
		if err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Lsr lists the current directory, or each named directory, and every
// directory below it.
func Lsr(s *Session, words []string) error {
	targets := words[1:]
	if len(targets) == 0 {
		targets = []string{""}
	}
	var errs []error
	for _, p := range targets {
		target := p
		if target == "" {
			target = filesystem.CurDir
		}
		err := s.Tree.Within(target, func(dir *filesystem.Inode) error {
			return filesystem.WriteRecursiveListing(s.Out, listingHeader(s, p), dir)
		})
		if err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// listingHeader is "." when the user asked for "." and the current location
// otherwise.
func listingHeader(s *Session, arg string) string {
	if arg == filesystem.CurDir {
		return filesystem.CurDir
	}
	return s.Tree.Pwd()
}

// Make creates or overwrites a file with the remaining words.
func Make(s *Session, words []string) error {
	if len(words) < 2 {
		return nil
	}
	content := words[2:]
	return s.Tree.WithParent(words[1], func(parent *filesystem.Inode, leaf string) error {
		f, err := parent.MakeFile(leaf)
		if err != nil {
			return err
		}
		return f.WriteFile(content)
	})
}

// Mkdir creates each named directory; the parent must exist.
func Mkdir(s *Session, words []string) error {
	var errs []error
	for _, p := range words[1:] {
		err := s.Tree.WithParent(p, func(parent *filesystem.Inode, leaf string) error {
			_, err := s.Tree.MakeDir(parent, leaf)
			return err
		})
		if err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Prompt sets the prompt to the arguments followed by a space.
func Prompt(s *Session, words []string) error {
	if len(words) < 2 {
		return nil
	}
	s.Prompt = strings.Join(words[1:], " ") + " "
	return nil
}

// Pwd prints the current location.
func Pwd(s *Session, _ []string) error {
	_, err := fmt.Fprintln(s.Out, s.Tree.Pwd())
	return err
}

// Rm removes each named file or empty directory. A directory that still has
// entries is left alone without an error.
func Rm(s *Session, words []string) error {
	logger := util.GetLogger("Rm")

	var errs []error
	for _, p := range words[1:] {
		err := s.Tree.WithParent(p, func(parent *filesystem.Inode, leaf string) error {
			if filesystem.IsReserved(leaf) {
				return ysh.NewPathError(leaf, ysh.ErrReservedEntry)
			}
			target, err := parent.Lookup(leaf)
			if err != nil {
				if errors.Is(err, ysh.ErrNotFound) {
					return &ysh.PathError{Name: leaf, Msg: "Is not a file or directory", Err: ysh.ErrNotFound}
				}
				return err
			}
			if target.IsDir() && target.Size() > 2 {
				logger.Debug().Str("path", p).Int("size", target.Size()).Msg("Skipping non-empty directory")
				return nil
			}
			return parent.Remove(leaf)
		})
		if err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Rmr removes each named file, or directory together with everything below it.
func Rmr(s *Session, words []string) error {
	var errs []error
	for _, p := range words[1:] {
		if err := s.Tree.RemoveTree(p); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
