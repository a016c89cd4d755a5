package poly

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func testCodec[T any](t *testing.T, tc *testContext[T]) {

	f := tc.field

	// dense polynomial with a stale slot above its degree
	stale := tc.sample(t, 5)
	stale.Sub(NewMonomial(f, tc.rep, stale.Leading(), 5))
	require.Less(t, stale.Degree(), 5)

	for _, p := range []*Polynomial[T]{NewZero[T](f, tc.rep), tc.sample(t, 0), tc.sample(t, 7), stale} {

		data, err := p.MarshalBinary()
		require.NoError(t, err)
		require.Len(t, data, p.BinarySize())

		for _, rep := range representations {
			q := NewZero[T](f, rep)
			require.NoError(t, q.UnmarshalBinary(data))
			require.Equal(t, tc.rep, q.Representation())
			require.True(t, p.Equal(q))
		}

		buf := new(bytes.Buffer)
		n, err := p.WriteTo(buf)
		require.NoError(t, err)
		require.Equal(t, int64(p.BinarySize()), n)
		require.Equal(t, data, buf.Bytes())

		q := NewZero[T](f, tc.rep)
		m, err := q.ReadFrom(buf)
		require.NoError(t, err)
		require.Equal(t, n, m)
		require.True(t, p.Equal(q))
	}
}
