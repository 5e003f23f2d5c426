package cache

import (
	"errors"
	"fmt"
)

// key names definition
const (
	MovieListKey = "movies:all" // cached JSON of the full movie list
	MovieKey     = "movie:%d"   // cached JSON of a single movie, '%d' is movie id
)

func MakeMovieKey(movieID uint) string {
	return fmt.Sprintf("movie:%d", movieID)
}

// errors
var ErrCacheMiss = errors.New("cache miss")
