// Package pager implements the fixed-size page cache that mediates every
// access to the backing database file. Pages are 4096 bytes, born blank
// the first time GetPage sees a page number at or beyond the pager's
// current page count, and only hit disk when flushed.
package pager

import (
	"io"
	"os"

	"simpledb/errs"
)

const (
	// PageSize is the unit of I/O and of caching. Every page holds
	// exactly one B+ tree node.
	PageSize = 4096

	// TableMaxPages bounds how many pages a single table may ever
	// reference. There is no free list and no compaction, so this is
	// also the hard ceiling on database size.
	TableMaxPages = 100
)

// Page is one 4096-byte slot of the cache.
type Page struct {
	Data [PageSize]byte
}

// Pager owns every page buffer exclusively; everything above it
// identifies pages by number, never by pointer.
type Pager struct {
	file     *os.File
	numPages uint32
	slots    [TableMaxPages]*Page
}

// Open opens path for read/write, creating it with user-rw permissions if
// it does not exist. The file length must be a whole multiple of
// PageSize or the database is considered corrupt.
func Open(path string) (*Pager, error) {
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE, 0600)
	if err != nil {
		return nil, errs.Wrap(errs.KindIOError, "open database file", err)
	}

	fi, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, errs.Wrap(errs.KindIOError, "stat database file", err)
	}

	length := fi.Size()
	if length%PageSize != 0 {
		f.Close()
		return nil, errs.New(errs.KindCorruptFile,
			"db file should contain a whole number of pages")
	}

	return &Pager{
		file:     f,
		numPages: uint32(length / PageSize),
	}, nil
}

// NumPages is one plus the largest page number ever materialized.
func (p *Pager) NumPages() uint32 { return p.numPages }

// GetPage returns the page buffer for pageNum, loading it from disk on
// first touch if it already exists there, or handing back a freshly
// zeroed page otherwise. The returned pointer is only valid for the
// pager's lifetime; callers must not retain it across a Close.
func (p *Pager) GetPage(pageNum uint32) (*Page, error) {
	if pageNum >= TableMaxPages {
		return nil, errs.New(errs.KindPageOutOfBounds,
			"page number out of bounds")
	}

	if p.slots[pageNum] == nil {
		page := &Page{}

		if pageNum < p.numPages {
			if _, err := p.file.Seek(int64(pageNum)*PageSize, io.SeekStart); err != nil {
				return nil, errs.Wrap(errs.KindIOError, "seek page", err)
			}
			if _, err := io.ReadFull(p.file, page.Data[:]); err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
				return nil, errs.Wrap(errs.KindIOError, "read page", err)
			}
			// A short read just leaves the remainder of the
			// zeroed buffer in place.
		}

		p.slots[pageNum] = page

		if pageNum >= p.numPages {
			p.numPages = pageNum + 1
		}
	}

	return p.slots[pageNum], nil
}

// GetUnusedPageNum hands out the next page number. Allocation is
// strictly append-only; there is no free list to reuse a page from.
func (p *Pager) GetUnusedPageNum() uint32 {
	return p.numPages
}

// Flush writes the page's full 4096 bytes to its slot in the file.
func (p *Pager) Flush(pageNum uint32) error {
	if p.slots[pageNum] == nil {
		return errs.New(errs.KindIOError, "tried to flush an empty page slot")
	}

	if _, err := p.file.Seek(int64(pageNum)*PageSize, io.SeekStart); err != nil {
		return errs.Wrap(errs.KindIOError, "seek page for flush", err)
	}
	if _, err := p.file.Write(p.slots[pageNum].Data[:]); err != nil {
		return errs.Wrap(errs.KindIOError, "write page", err)
	}
	return nil
}

// Close flushes every cached page and releases the file descriptor. Pages
// that were never touched this session are never loaded just to be
// flushed back unchanged.
func (p *Pager) Close() error {
	for i := uint32(0); i < p.numPages; i++ {
		if p.slots[i] == nil {
			continue
		}
		if err := p.Flush(i); err != nil {
			return err
		}
		p.slots[i] = nil
	}

	if err := p.file.Close(); err != nil {
		return errs.Wrap(errs.KindIOError, "close database file", err)
	}
	return nil
}
