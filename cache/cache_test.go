package cache

import (
	"errors"
	"testing"

	"github.com/matryer/is"
)

func TestLoadBuildsOnce(t *testing.T) {
	is := is.New(t)
	CreateGlobalObjectCache()
	calls := 0
	build := func(key string) (interface{}, error) {
		calls++
		return key + "!", nil
	}
	for i := 0; i < 3; i++ {
		obj, err := Load("honey", build)
		is.NoErr(err)
		is.Equal(obj.(string), "honey!")
	}
	is.Equal(calls, 1)

	_, err := Load("when", build)
	is.NoErr(err)
	is.Equal(calls, 2)
}

func TestFailedLoadIsNotCached(t *testing.T) {
	is := is.New(t)
	CreateGlobalObjectCache()
	boom := errors.New("boom")
	_, err := Load("bad", func(string) (interface{}, error) { return nil, boom })
	is.Equal(err, boom)

	obj, err := Load("bad", func(string) (interface{}, error) { return 7, nil })
	is.NoErr(err)
	is.Equal(obj.(int), 7)
}
