package fs

import "os"

// writeInPlace truncates and rewrites path through its existing name.
// Symlinks are followed and the file keeps its mode, owner and links. The
// file must already exist and be writable by the caller.
func writeInPlace(path string, data []byte) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_TRUNC, 0)
	if err != nil {
		return err
	}
	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Sync(); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
