package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	redis "github.com/redis/go-redis/v9"

	"github.com/qs-lzh/movie-catalog/internal/model"
)

var ctx = context.Background()

const movieListTTL = 5 * time.Minute

type RedisCache struct {
	Client *redis.Client
}

func NewRedisCache(url string) (*RedisCache, error) {
	client := redis.NewClient(
		&redis.Options{
			Addr:     url,
			Password: "",
			DB:       0,
		},
	)
	redisCache := &RedisCache{Client: client}

	return redisCache, nil
}

func (r *RedisCache) Set(key string, value any, expiration time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return r.Client.Set(ctx, key, data, expiration).Err()
}

func (r *RedisCache) Get(key string, dest any) error {
	data, err := r.Client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return ErrCacheMiss
		}
		return err
	}
	return json.Unmarshal(data, dest)
}

/*
* movie list cache
 */

// GetMovieList returns the cached full movie list, ErrCacheMiss if absent.
func (r *RedisCache) GetMovieList() ([]model.Movie, error) {
	var movies []model.Movie
	if err := r.Get(MovieListKey, &movies); err != nil {
		return nil, err
	}
	return movies, nil
}

func (r *RedisCache) SetMovieList(movies []model.Movie) error {
	return r.Set(MovieListKey, movies, movieListTTL)
}

// InvalidateMovies drops the list cache and the single-movie entry, called
// after every create/update/delete so reads never serve stale data past TTL.
func (r *RedisCache) InvalidateMovies(movieID uint) error {
	keys := []string{MovieListKey}
	if movieID != 0 {
		keys = append(keys, MakeMovieKey(movieID))
	}
	return r.Client.Del(ctx, keys...).Err()
}
