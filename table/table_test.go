package table

import (
	"fmt"
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"simpledb/errs"
)

func tempDBPath(t *testing.T) string {
	t.Helper()
	f, err := os.CreateTemp("", "table-*.db")
	require.NoError(t, err)
	path := f.Name()
	require.NoError(t, f.Close())
	t.Cleanup(func() { os.Remove(path) })
	return path
}

func mustInsert(t *testing.T, tb *Table, id uint32, username, email string) {
	t.Helper()
	row, err := NewRow(id, username, email)
	require.NoError(t, err)
	require.NoError(t, ExecuteInsert(tb, row))
}

func selectAll(t *testing.T, tb *Table) []string {
	t.Helper()
	var lines []string
	require.NoError(t, ExecuteSelect(tb, func(line string) { lines = append(lines, line) }))
	return lines
}

// S1
func TestInsertThenSelectSingleRow(t *testing.T) {
	tb, err := OpenTable(tempDBPath(t))
	require.NoError(t, err)
	defer tb.Close()

	mustInsert(t, tb, 1, "user1", "person1@example.com")
	require.Equal(t, []string{"1 user1 person1@example.com"}, selectAll(t, tb))
}

// S2
func TestInsertFifteenRowsSplitsRootIntoInternal(t *testing.T) {
	tb, err := OpenTable(tempDBPath(t))
	require.NoError(t, err)
	defer tb.Close()

	for k := uint32(1); k <= 15; k++ {
		mustInsert(t, tb, k, fmt.Sprintf("user%d", k), fmt.Sprintf("person%d@example.com", k))
	}

	lines := selectAll(t, tb)
	require.Len(t, lines, 15)
	for k := 1; k <= 15; k++ {
		require.Equal(t, fmt.Sprintf("%d user%d person%d@example.com", k, k, k), lines[k-1])
	}

	root, err := tb.pager.GetPage(tb.RootPageNum())
	require.NoError(t, err)
	require.Equal(t, NodeInternal, nodeType(root))
}

// S3
func TestDuplicateKeyRejected(t *testing.T) {
	tb, err := OpenTable(tempDBPath(t))
	require.NoError(t, err)
	defer tb.Close()

	mustInsert(t, tb, 1, "a", "a@x")

	row, err := NewRow(1, "b", "b@x")
	require.NoError(t, err)
	err = ExecuteInsert(tb, row)
	require.Error(t, err)
	require.True(t, errs.Is(err, errs.KindDuplicateKey))

	require.Equal(t, []string{"1 a a@x"}, selectAll(t, tb))
}

// S4
func TestOutOfOrderInsertsSortedOnSelect(t *testing.T) {
	tb, err := OpenTable(tempDBPath(t))
	require.NoError(t, err)
	defer tb.Close()

	mustInsert(t, tb, 3, "c", "c@x")
	mustInsert(t, tb, 1, "a", "a@x")
	mustInsert(t, tb, 2, "b", "b@x")

	require.Equal(t, []string{"1 a a@x", "2 b b@x", "3 c c@x"}, selectAll(t, tb))
}

// S5
func TestStringLengthBoundary(t *testing.T) {
	username32 := make([]byte, 32)
	for i := range username32 {
		username32[i] = 'a'
	}
	email255 := make([]byte, 255)
	for i := range email255 {
		email255[i] = 'b'
	}

	_, err := NewRow(1, string(username32), string(email255))
	require.NoError(t, err)

	_, err = NewRow(2, string(username32)+"x", string(email255))
	require.Error(t, err)
	require.True(t, errs.Is(err, errs.KindStringTooLong))

	_, err = NewRow(3, string(username32), string(email255)+"x")
	require.Error(t, err)
	require.True(t, errs.Is(err, errs.KindStringTooLong))
}

// S6
func TestPersistenceAcrossReopen(t *testing.T) {
	path := tempDBPath(t)

	tb, err := OpenTable(path)
	require.NoError(t, err)
	mustInsert(t, tb, 1, "user1", "person1@example.com")
	require.NoError(t, tb.Close())

	tb2, err := OpenTable(path)
	require.NoError(t, err)
	defer tb2.Close()

	require.Equal(t, []string{"1 user1 person1@example.com"}, selectAll(t, tb2))
}

// S7
func TestPrintTreeSmallCase(t *testing.T) {
	tb, err := OpenTable(tempDBPath(t))
	require.NoError(t, err)
	defer tb.Close()

	mustInsert(t, tb, 3, "c", "c@x")
	mustInsert(t, tb, 1, "a", "a@x")
	mustInsert(t, tb, 2, "b", "b@x")

	var lines []string
	require.NoError(t, PrintTree(tb, tb.RootPageNum(), 0, func(line string) { lines = append(lines, line) }))

	require.Equal(t, []string{
		"- leaf (size 3)",
		"  - 1",
		"  - 2",
		"  - 3",
	}, lines)
}

// Property 1 & 7 combined: keys strictly ascending through a bigger tree.
func TestKeysStrictlyAscendingAfterManyInserts(t *testing.T) {
	tb, err := OpenTable(tempDBPath(t))
	require.NoError(t, err)
	defer tb.Close()

	for k := uint32(30); k > 0; k-- {
		mustInsert(t, tb, k, fmt.Sprintf("user%d", k), fmt.Sprintf("p%d@x", k))
	}

	lines := selectAll(t, tb)
	require.Len(t, lines, 30)
	for i := 1; i <= 30; i++ {
		require.Equal(t, fmt.Sprintf("%d user%d p%d@x", i, i, i), lines[i-1])
	}
}

// Property 4: exactly one node is the root, and it's at RootPageNum.
func TestExactlyOneRootNode(t *testing.T) {
	tb, err := OpenTable(tempDBPath(t))
	require.NoError(t, err)
	defer tb.Close()

	for k := uint32(1); k <= 20; k++ {
		mustInsert(t, tb, k, fmt.Sprintf("user%d", k), fmt.Sprintf("p%d@x", k))
	}

	rootCount := 0
	for i := uint32(0); i < tb.pager.NumPages(); i++ {
		page, err := tb.pager.GetPage(i)
		require.NoError(t, err)
		if isRoot(page) {
			rootCount++
			require.Equal(t, tb.RootPageNum(), i)
		}
	}
	require.Equal(t, 1, rootCount)
}
