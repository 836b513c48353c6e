package filesystem

import (
	"fmt"
	"io"
)

// FormatEntry renders one listing line: inode number, size and name, with
// "/" after directory names other than "." and "..".
func FormatEntry(e Dirent) string {
	suffix := ""
	if e.Inode.IsDir() && !IsReserved(e.Name) {
		suffix = "/"
	}
	return fmt.Sprintf("%6d  %6d  %s%s", e.Inode.ID(), e.Inode.Size(), e.Name, suffix)
}

// WriteListing writes the header line followed by every entry of dir.
func WriteListing(w io.Writer, header string, dir *Inode) error {
	d, err := dir.Dir()
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "%s:\n", header); err != nil {
		return err
	}
	for _, e := range d.Entries() {
		if _, err := fmt.Fprintln(w, FormatEntry(e)); err != nil {
			return err
		}
	}
	return nil
}

// WriteRecursiveListing lists dir under header and then every subdirectory
// under a header holding its path relative to dir ("/b", "/b/c", ...).
func WriteRecursiveListing(w io.Writer, header string, dir *Inode) error {
	return WalkDirs(dir, "", func(d *Inode, relpath string) error {
		if relpath == "" {
			return WriteListing(w, header, d)
		}
		return WriteListing(w, relpath, d)
	})
}
