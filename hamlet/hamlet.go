// Package hamlet gives tests a "must be / wont be" vocabulary on top of
// testify assertions. Both sides of the specification report failures
// through the same testing.T.
package hamlet

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type (
	Specification interface {
		Nil(actual interface{}) bool
		True(actual bool) bool
		Equal(expected, actual interface{}) bool
		Empty(actual interface{}) bool
		Contains(container, element interface{}) bool
		Length(expected int, actual interface{}) bool
		Panic(fn func()) bool
	}

	mustBe struct {
		t *testing.T
	}

	wontBe struct {
		t *testing.T
	}
)

func Specifications(t *testing.T) (Specification, Specification) {
	return &mustBe{t}, &wontBe{t}
}

func (it *mustBe) Nil(actual interface{}) bool {
	it.t.Helper()
	return assert.Nil(it.t, actual)
}

func (it *mustBe) True(actual bool) bool {
	it.t.Helper()
	return assert.True(it.t, actual)
}

func (it *mustBe) Equal(expected, actual interface{}) bool {
	it.t.Helper()
	return assert.Equal(it.t, expected, actual)
}

func (it *mustBe) Empty(actual interface{}) bool {
	it.t.Helper()
	return assert.Empty(it.t, actual)
}

func (it *mustBe) Contains(container, element interface{}) bool {
	it.t.Helper()
	return assert.Contains(it.t, container, element)
}

func (it *mustBe) Length(expected int, actual interface{}) bool {
	it.t.Helper()
	return assert.Len(it.t, actual, expected)
}

func (it *mustBe) Panic(fn func()) bool {
	it.t.Helper()
	return assert.Panics(it.t, fn)
}

func (it *wontBe) Nil(actual interface{}) bool {
	it.t.Helper()
	return assert.NotNil(it.t, actual)
}

func (it *wontBe) True(actual bool) bool {
	it.t.Helper()
	return assert.False(it.t, actual)
}

func (it *wontBe) Equal(expected, actual interface{}) bool {
	it.t.Helper()
	return assert.NotEqual(it.t, expected, actual)
}

func (it *wontBe) Empty(actual interface{}) bool {
	it.t.Helper()
	return assert.NotEmpty(it.t, actual)
}

func (it *wontBe) Contains(container, element interface{}) bool {
	it.t.Helper()
	return assert.NotContains(it.t, container, element)
}

func (it *wontBe) Length(expected int, actual interface{}) bool {
	it.t.Helper()
	return !assert.ObjectsAreEqual(expected, lengthOf(actual)) || assert.Fail(it.t, "unexpected length", "length should not be %d", expected)
}

func (it *wontBe) Panic(fn func()) bool {
	it.t.Helper()
	return assert.NotPanics(it.t, fn)
}
