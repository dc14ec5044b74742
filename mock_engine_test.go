package bitcursor

import (
	"github.com/RoaringBitmap/roaring/v2"
	"github.com/stretchr/testify/mock"

	"github.com/hupe1980/bitcursor/internal/native"
)

type mockEngine struct {
	mock.Mock
}

func (m *mockEngine) CreateIterator(rb *roaring.Bitmap) native.Iterator {
	args := m.Called(rb)
	return args.Get(0).(native.Iterator)
}

func (m *mockEngine) Build(values []uint32) *roaring.Bitmap {
	args := m.Called(values)
	return args.Get(0).(*roaring.Bitmap)
}

func (m *mockEngine) Release(rb *roaring.Bitmap) {
	m.Called(rb)
}

type mockIterator struct {
	mock.Mock
}

func (m *mockIterator) CurrentValue() (uint32, bool) {
	args := m.Called()
	return args.Get(0).(uint32), args.Bool(1)
}

func (m *mockIterator) Advance() bool {
	return m.Called().Bool(0)
}

func (m *mockIterator) ReadBatch(buf []uint32) int {
	return m.Called(buf).Int(0)
}

func (m *mockIterator) Free() {
	m.Called()
}

// newMockSet returns an empty set whose cursors all use it.
func newMockSet(it *mockIterator, opts ...Option) (*Set, *mockEngine) {
	eng := new(mockEngine)
	eng.On("Build", mock.Anything).Return(roaring.New())
	eng.On("CreateIterator", mock.Anything).Return(it)
	eng.On("Release", mock.Anything).Return()

	return New(append(opts, withEngine(eng))...), eng
}
