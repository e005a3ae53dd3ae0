package main

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/bodgit/sevenzip"
	"github.com/nwaples/rardecode"
	"github.com/pkg/errors"
)

// BookOptions controls how an archive is turned into pages
type BookOptions struct {
	SortMethod int  // one of the Sort* constants; SortSimple by default
	ImagesOnly bool // drop entries without a known image extension
}

// archiveReader is the per-format access to an opened container
type archiveReader interface {
	// Names lists the non-directory entries in stored order
	Names() []string
	// ReadEntry returns the full contents of the named entry
	ReadEntry(name string) ([]byte, error)
	Close() error
}

// Book is an opened archive whose entries are the pages of a comic.
// Entry order is fixed at open; index i always names the same entry.
type Book struct {
	path    string
	archive archiveReader
	entries []string
}

// OpenBook opens the archive at path and indexes its entries
func OpenBook(path string, opts BookOptions) (*Book, error) {
	archive, err := openArchive(path)
	if err != nil {
		return nil, newViewerError(ErrArchiveOpen, path, err)
	}

	var names []string
	for _, name := range archive.Names() {
		if opts.ImagesOnly && !isSupportedExt(name) {
			debugLog("Skipping non-image entry %s", name)
			continue
		}
		names = append(names, name)
	}

	b := &Book{
		path:    path,
		archive: archive,
		entries: GetSortStrategy(opts.SortMethod).Sort(names),
	}
	debugLog("Opened %s: %d pages (%s order)", path, len(b.entries), getSortMethodName(opts.SortMethod))
	return b, nil
}

func openArchive(path string) (archiveReader, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".7z", ".cb7":
		return openSevenZip(path)
	case ".rar", ".cbr":
		return openRar(path)
	default:
		// .zip, .cbz and anything else are treated as zip
		return openZip(path)
	}
}

// Path returns the archive path the book was opened from
func (b *Book) Path() string {
	return b.path
}

// PageCount returns the number of pages, constant after open
func (b *Book) PageCount() int {
	return len(b.entries)
}

// EntryName returns the entry backing page index
func (b *Book) EntryName(index int) (string, bool) {
	if index < 0 || index >= len(b.entries) {
		return "", false
	}
	return b.entries[index], true
}

// Decode reads and decodes the page at index. Nothing is cached: every call
// reads the entry again and the caller owns the returned resource.
func (b *Book) Decode(index int) (*ImageResource, error) {
	name, ok := b.EntryName(index)
	if !ok {
		return nil, newViewerError(ErrPageDecode, fmt.Sprintf("#%d", index),
			errors.Errorf("page index %d out of range [0, %d)", index, len(b.entries)))
	}

	data, err := b.archive.ReadEntry(name)
	if err != nil {
		return nil, newViewerError(ErrPageDecode, name, errors.Wrap(err, "reading entry"))
	}

	img, err := decodeImage(data, name)
	if err != nil {
		return nil, newViewerError(ErrPageDecode, name, err)
	}
	return newImageResource(name, img), nil
}

// Close releases the archive handle
func (b *Book) Close() error {
	return b.archive.Close()
}

// zip

type zipArchive struct {
	r     *zip.ReadCloser
	files map[string]*zip.File
	names []string
}

func openZip(path string) (*zipArchive, error) {
	r, err := zip.OpenReader(path)
	if err != nil {
		return nil, errors.Wrap(err, "opening zip archive")
	}

	a := &zipArchive{r: r, files: make(map[string]*zip.File)}
	for _, f := range r.File {
		if f.FileInfo().IsDir() {
			continue
		}
		if _, dup := a.files[f.Name]; dup {
			continue
		}
		a.files[f.Name] = f
		a.names = append(a.names, f.Name)
	}
	return a, nil
}

func (a *zipArchive) Names() []string {
	return a.names
}

func (a *zipArchive) ReadEntry(name string) ([]byte, error) {
	f, ok := a.files[name]
	if !ok {
		return nil, errors.Errorf("entry %s not found", name)
	}
	rc, err := f.Open()
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return io.ReadAll(rc)
}

func (a *zipArchive) Close() error {
	return a.r.Close()
}

// 7z

type sevenZipArchive struct {
	r     *sevenzip.ReadCloser
	files map[string]*sevenzip.File
	names []string
}

func openSevenZip(path string) (*sevenZipArchive, error) {
	r, err := sevenzip.OpenReader(path)
	if err != nil {
		return nil, errors.Wrap(err, "opening 7z archive")
	}

	a := &sevenZipArchive{r: r, files: make(map[string]*sevenzip.File)}
	for _, f := range r.File {
		if f.FileInfo().IsDir() {
			continue
		}
		if _, dup := a.files[f.Name]; dup {
			continue
		}
		a.files[f.Name] = f
		a.names = append(a.names, f.Name)
	}
	return a, nil
}

func (a *sevenZipArchive) Names() []string {
	return a.names
}

func (a *sevenZipArchive) ReadEntry(name string) ([]byte, error) {
	f, ok := a.files[name]
	if !ok {
		return nil, errors.Errorf("entry %s not found", name)
	}
	rc, err := f.Open()
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return io.ReadAll(rc)
}

func (a *sevenZipArchive) Close() error {
	return a.r.Close()
}

// rar has no central directory, so every read scans from the start

type rarArchive struct {
	f     *os.File
	names []string
}

func openRar(path string) (*rarArchive, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "opening rar archive")
	}

	a := &rarArchive{f: f}
	seen := make(map[string]bool)
	err = a.scan(func(header *rardecode.FileHeader, _ io.Reader) (bool, error) {
		if !header.IsDir && !seen[header.Name] {
			seen[header.Name] = true
			a.names = append(a.names, header.Name)
		}
		return false, nil
	})
	if err != nil {
		f.Close()
		return nil, errors.Wrap(err, "reading rar archive")
	}
	return a, nil
}

// scan walks the archive from the start until visit returns true
func (a *rarArchive) scan(visit func(*rardecode.FileHeader, io.Reader) (bool, error)) error {
	if _, err := a.f.Seek(0, io.SeekStart); err != nil {
		return err
	}
	r, err := rardecode.NewReader(a.f, "")
	if err != nil {
		return err
	}
	for {
		header, err := r.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		done, err := visit(header, r)
		if err != nil || done {
			return err
		}
	}
}

func (a *rarArchive) Names() []string {
	return a.names
}

func (a *rarArchive) ReadEntry(name string) ([]byte, error) {
	var data []byte
	found := false
	err := a.scan(func(header *rardecode.FileHeader, r io.Reader) (bool, error) {
		if header.IsDir || header.Name != name {
			return false, nil
		}
		found = true
		var err error
		data, err = io.ReadAll(r)
		return true, err
	})
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, errors.Errorf("entry %s not found", name)
	}
	return data, nil
}

func (a *rarArchive) Close() error {
	return a.f.Close()
}
