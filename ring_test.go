package ringbuf

import (
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// captureSink records every diagnostic for later assertions.
type captureSink struct {
	msgs  []string
	attrs [][]slog.Attr
}

func (c *captureSink) Warn(msg string, attrs ...slog.Attr) {
	c.msgs = append(c.msgs, msg)
	c.attrs = append(c.attrs, attrs)
}

// helper to create a buffer with a capturing sink
func newTestBuffer(t *testing.T, capacity int, opts Options) (*Buffer[int], *captureSink) {
	t.Helper()
	sink := &captureSink{}
	opts.Sink = sink
	b, err := NewWithOptions[int](capacity, opts)
	require.NoError(t, err, "failed to create buffer")
	return b, sink
}

func overwriteOptions() Options {
	opts := DefaultOptions()
	opts.Overwrite = true
	return opts
}

func TestNewRejectsInvalidCapacity(t *testing.T) {
	for _, c := range []int{0, -1, -100} {
		b, err := New[int](c)
		assert.Nil(t, b)
		assert.ErrorIs(t, err, ErrInvalidCapacity, "capacity %d", c)
	}
}

func TestNewBufferIsEmpty(t *testing.T) {
	b, err := New[string](4)
	require.NoError(t, err)

	assert.Equal(t, 4, b.Cap())
	assert.Equal(t, 0, b.Len())
	assert.True(t, b.IsEmpty())
	assert.False(t, b.IsFull())
	assert.Empty(t, b.ToSlice())
	assert.Equal(t, DefaultOptions(), b.Options())
}

func TestWriteWithinCapacityKeepsOrder(t *testing.T) {
	b, _ := newTestBuffer(t, 5, DefaultOptions())

	for n := 1; n <= 5; n++ {
		b.Write(n * 10)
		assert.Equal(t, n, b.Len())
	}
	assert.Equal(t, []int{10, 20, 30, 40, 50}, b.ToSlice())
	assert.True(t, b.IsFull())
}

func TestWriteFullRejectsAndWarns(t *testing.T) {
	b, sink := newTestBuffer(t, 3, DefaultOptions())
	b.WriteAll(1, 2, 3)

	b.Write(4)

	assert.Equal(t, []int{1, 2, 3}, b.ToSlice())
	assert.Equal(t, 3, b.Len())
	require.Len(t, sink.msgs, 1)
	assert.Equal(t, MsgFullRejected, sink.msgs[0])
	assert.Equal(t, []slog.Attr{slog.Int("capacity", 3), slog.Int("size", 3)}, sink.attrs[0])
}

func TestWriteFullRejectsSilently(t *testing.T) {
	opts := DefaultOptions()
	opts.WarnOnFull = false
	b, sink := newTestBuffer(t, 2, opts)

	b.WriteAll(1, 2, 3, 4)

	assert.Equal(t, []int{1, 2}, b.ToSlice())
	assert.Empty(t, sink.msgs)
	assert.Equal(t, uint64(2), b.GetStats().Rejected)
}

func TestWriteOverwriteReplacesAtWriteCursor(t *testing.T) {
	b, sink := newTestBuffer(t, 3, overwriteOptions())
	b.WriteAll(1, 2, 3, 4)

	assert.Equal(t, 3, b.Len())
	assert.Equal(t, []int{4, 2, 3}, b.ToSlice())

	v, ok := b.Read()
	require.True(t, ok)
	assert.Equal(t, 4, v)

	v, ok = b.Read()
	require.True(t, ok)
	assert.Equal(t, 2, v)

	// WarnOnFull has no effect once overwrite is on
	assert.Empty(t, sink.msgs)
}

func TestWriteOverwriteNotifiesOnLap(t *testing.T) {
	opts := overwriteOptions()
	opts.NotifyOnOverwrite = true
	b, sink := newTestBuffer(t, 3, opts)

	b.WriteAll(1, 2)
	assert.Empty(t, sink.msgs)

	// third write wraps the write cursor to slot 0
	b.Write(3)
	require.Len(t, sink.msgs, 1)
	assert.Equal(t, MsgOverwrite, sink.msgs[0])

	b.WriteAll(4, 5)
	assert.Len(t, sink.msgs, 1)

	b.Write(6)
	assert.Len(t, sink.msgs, 2)
	assert.Equal(t, []int{4, 5, 6}, b.ToSlice())
}

func TestNotifyOnOverwriteIgnoredWithoutOverwrite(t *testing.T) {
	opts := DefaultOptions()
	opts.WarnOnFull = false
	opts.NotifyOnOverwrite = true
	b, sink := newTestBuffer(t, 2, opts)

	b.WriteAll(1, 2, 3, 4, 5)
	assert.Empty(t, sink.msgs)
}

func TestReadRotatesWithoutRemoving(t *testing.T) {
	b, _ := newTestBuffer(t, 3, DefaultOptions())
	b.WriteAll(1, 2, 3)

	var got []int
	for i := 0; i < 7; i++ {
		v, ok := b.Read()
		require.True(t, ok)
		got = append(got, v)
	}

	assert.Equal(t, []int{1, 2, 3, 1, 2, 3, 1}, got)
	assert.Equal(t, 3, b.Len())
}

func TestReadEmpty(t *testing.T) {
	b, _ := newTestBuffer(t, 3, DefaultOptions())

	v, ok := b.Read()
	assert.False(t, ok)
	assert.Zero(t, v)
	assert.Equal(t, 0, b.ReadCursor())
}

func TestReadPastLiveSlotsReportsEmptySlot(t *testing.T) {
	b, _ := newTestBuffer(t, 3, DefaultOptions())
	b.WriteAll(7, 8)

	_, _ = b.Read()
	_, _ = b.Read()
	v, ok := b.Read()

	assert.False(t, ok)
	assert.Zero(t, v)
	assert.Equal(t, 2, b.Len())
}

func TestDumpConsumesOldest(t *testing.T) {
	b, _ := newTestBuffer(t, 3, DefaultOptions())
	b.WriteAll(1, 2, 3)

	for want := 1; want <= 3; want++ {
		v, ok := b.Dump()
		require.True(t, ok)
		assert.Equal(t, want, v)
	}
	assert.Equal(t, 0, b.Len())
	assert.True(t, b.IsEmpty())

	v, ok := b.Dump()
	assert.False(t, ok)
	assert.Zero(t, v)
	assert.Equal(t, 0, b.Len())
}

func TestDumpEmptyLeavesSize(t *testing.T) {
	b, _ := newTestBuffer(t, 3, DefaultOptions())

	_, ok := b.Dump()
	assert.False(t, ok)
	assert.Equal(t, 0, b.Len())
	assert.Equal(t, 0, b.ReadCursor())
}

func TestDumpOnRotatedEmptySlotKeepsLen(t *testing.T) {
	b, sink := newTestBuffer(t, 3, DefaultOptions())
	b.WriteAll(1, 2)
	_, _ = b.Read()
	_, _ = b.Read() // read cursor now on the unwritten slot 2

	v, ok := b.Dump()
	assert.False(t, ok)
	assert.Zero(t, v)
	assert.Equal(t, 2, b.Len())
	assert.Equal(t, 0, b.ReadCursor())
	assert.Equal(t, uint64(0), b.GetStats().Dumps)

	b.WriteAll(3, 4)

	assert.Equal(t, 3, b.Len())
	assert.Equal(t, []int{1, 2, 3}, b.ToSlice())
	require.Len(t, sink.msgs, 1)
	assert.Equal(t, MsgFullRejected, sink.msgs[0])
}

func TestDumpFreesSlotForWrite(t *testing.T) {
	b, sink := newTestBuffer(t, 3, DefaultOptions())
	b.WriteAll(1, 2, 3)

	v, ok := b.Dump()
	require.True(t, ok)
	assert.Equal(t, 1, v)

	b.Write(4)
	assert.Empty(t, sink.msgs)
	assert.Equal(t, []int{2, 3, 4}, b.ToSlice())
}

func TestZeroValuesAreStored(t *testing.T) {
	b, err := New[*int](2)
	require.NoError(t, err)

	b.Write(nil)
	assert.Equal(t, 1, b.Len())

	v, ok := b.Dump()
	assert.True(t, ok)
	assert.Nil(t, v)
}

func TestClearResets(t *testing.T) {
	cases := []struct {
		name  string
		opts  Options
		write []int
	}{
		{"empty", DefaultOptions(), nil},
		{"partial", DefaultOptions(), []int{1}},
		{"full", DefaultOptions(), []int{1, 2, 3}},
		{"lapped", overwriteOptions(), []int{1, 2, 3, 4, 5}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b, _ := newTestBuffer(t, 3, tc.opts)
			b.WriteAll(tc.write...)

			b.Clear()

			assert.Equal(t, 0, b.Len())
			assert.True(t, b.IsEmpty())
			assert.False(t, b.IsFull())
			assert.Equal(t, 3, b.Cap())
			assert.Equal(t, 0, b.ReadCursor())
			assert.Equal(t, 0, b.WriteCursor())
			assert.Empty(t, b.ToSlice())
		})
	}
}

func TestDrainClearsAfterCopy(t *testing.T) {
	b, _ := newTestBuffer(t, 4, DefaultOptions())
	b.WriteAll(5, 6, 7)

	got := b.Drain()

	assert.Equal(t, []int{5, 6, 7}, got)
	assert.True(t, b.IsEmpty())
}

func TestToSliceIsACopy(t *testing.T) {
	b, _ := newTestBuffer(t, 3, DefaultOptions())
	b.WriteAll(1, 2, 3)

	s := b.ToSlice()
	s[0] = 99

	assert.Equal(t, []int{1, 2, 3}, b.ToSlice())
}

func TestFromMatchesWriteAll(t *testing.T) {
	inputs := [][]int{
		nil,
		{1},
		{1, 2, 3},
		{1, 2, 3, 4, 5, 6, 7},
	}
	for _, opts := range []Options{DefaultOptions(), overwriteOptions()} {
		for _, in := range inputs {
			opts.Sink = NopSink

			from, err := From(in, 3, opts)
			require.NoError(t, err)

			fresh, err := NewWithOptions[int](3, opts)
			require.NoError(t, err)
			fresh.WriteAll(in...)

			assert.Equal(t, fresh.ToSlice(), from.ToSlice(), "opts=%s in=%v", opts, in)
			assert.Equal(t, fresh.Len(), from.Len())
		}
	}
}

func TestFromInvalidCapacity(t *testing.T) {
	_, err := From([]int{1}, 0, DefaultOptions())
	assert.True(t, errors.Is(err, ErrInvalidCapacity))
}
