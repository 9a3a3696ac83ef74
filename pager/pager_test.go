package pager

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"simpledb/errs"
)

func tempDBPath(t *testing.T) string {
	t.Helper()
	f, err := os.CreateTemp("", "pager-*.db")
	require.NoError(t, err)
	path := f.Name()
	require.NoError(t, f.Close())
	t.Cleanup(func() { os.Remove(path) })
	return path
}

func TestOpenEmptyFile(t *testing.T) {
	p, err := Open(tempDBPath(t))
	require.NoError(t, err)
	defer p.Close()

	require.EqualValues(t, 0, p.NumPages())
}

func TestOpenRejectsPartialPage(t *testing.T) {
	path := tempDBPath(t)
	require.NoError(t, os.WriteFile(path, make([]byte, PageSize+10), 0600))

	_, err := Open(path)
	require.Error(t, err)
	require.True(t, errs.Is(err, errs.KindCorruptFile))
}

func TestGetPageOutOfBounds(t *testing.T) {
	p, err := Open(tempDBPath(t))
	require.NoError(t, err)
	defer p.Close()

	_, err = p.GetPage(TableMaxPages)
	require.Error(t, err)
	require.True(t, errs.Is(err, errs.KindPageOutOfBounds))
}

func TestGetPageGrowsNumPagesAndZeroesNewPage(t *testing.T) {
	p, err := Open(tempDBPath(t))
	require.NoError(t, err)
	defer p.Close()

	page, err := p.GetPage(0)
	require.NoError(t, err)
	require.EqualValues(t, 1, p.NumPages())
	for _, b := range page.Data {
		require.Zero(t, b)
	}

	page3, err := p.GetPage(3)
	require.NoError(t, err)
	require.EqualValues(t, 4, p.NumPages())
	page3.Data[0] = 0x42
}

func TestGetUnusedPageNumIsAppendOnly(t *testing.T) {
	p, err := Open(tempDBPath(t))
	require.NoError(t, err)
	defer p.Close()

	require.EqualValues(t, 0, p.GetUnusedPageNum())
	_, err = p.GetPage(0)
	require.NoError(t, err)
	require.EqualValues(t, 1, p.GetUnusedPageNum())
}

func TestFlushThenReopenPersistsPageBytes(t *testing.T) {
	path := tempDBPath(t)

	p, err := Open(path)
	require.NoError(t, err)
	page, err := p.GetPage(0)
	require.NoError(t, err)
	page.Data[0] = 0xAB
	page.Data[PageSize-1] = 0xCD
	require.NoError(t, p.Close())

	p2, err := Open(path)
	require.NoError(t, err)
	defer p2.Close()
	require.EqualValues(t, 1, p2.NumPages())

	reloaded, err := p2.GetPage(0)
	require.NoError(t, err)
	require.EqualValues(t, 0xAB, reloaded.Data[0])
	require.EqualValues(t, 0xCD, reloaded.Data[PageSize-1])
}

func TestFlushEmptySlotFails(t *testing.T) {
	p, err := Open(tempDBPath(t))
	require.NoError(t, err)
	defer p.Close()

	err = p.Flush(5)
	require.Error(t, err)
}

func TestCloseOnlyFlushesTouchedPages(t *testing.T) {
	path := tempDBPath(t)

	p, err := Open(path)
	require.NoError(t, err)
	_, err = p.GetPage(2)
	require.NoError(t, err)
	require.NoError(t, p.Close())

	info, err := os.Stat(path)
	require.NoError(t, err)
	require.EqualValues(t, 3*PageSize, info.Size())
}
