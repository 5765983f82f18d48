package cluster

import (
	"context"
	"encoding/json"
	"time"

	"github.com/pkg/errors"
	redis "github.com/redis/go-redis/v9"
)

// DefaultJobTTL bounds how long a published job and its results live in Redis.
const DefaultJobTTL = time.Hour

// popTimeout is the BLPOP timeout between context checks.
const popTimeout = time.Second

// RedisTransport exchanges jobs and results through a Redis server.
type RedisTransport struct {
	rdb    *redis.Client
	ttl    time.Duration
	prefix string
}

// NewRedisTransport connects to the Redis server at url
// (redis://[user:pass@]host:port/db).
func NewRedisTransport(url string, ttl time.Duration) (*RedisTransport, error) {
	opt, err := redis.ParseURL(url)
	if err != nil {
		return nil, errors.Wrapf(err, "parse redis url")
	}

	return NewRedisTransportClient(redis.NewClient(opt), ttl), nil
}

// NewRedisTransportClient wraps an existing client. ttl ≤ 0 means DefaultJobTTL.
func NewRedisTransportClient(rdb *redis.Client, ttl time.Duration) *RedisTransport {
	if ttl <= 0 {
		ttl = DefaultJobTTL
	}

	return &RedisTransport{rdb: rdb, ttl: ttl, prefix: "cvrp:job:"}
}

// Name implements Transport.
func (r *RedisTransport) Name() string { return "redis" }

// Close releases the client.
func (r *RedisTransport) Close() error { return r.rdb.Close() }

// Ping checks the connection.
func (r *RedisTransport) Ping(ctx context.Context) error {
	return errors.Wrap(r.rdb.Ping(ctx).Err(), "redis ping")
}

func (r *RedisTransport) jobKey(id string) string    { return r.prefix + id }
func (r *RedisTransport) resultKey(id string) string { return r.prefix + id + ":results" }

// PublishJob implements Transport.
func (r *RedisTransport) PublishJob(ctx context.Context, job *Job) error {
	data, err := json.Marshal(job)
	if err != nil {
		return errors.Wrapf(err, "encode job %s", job.ID)
	}
	if err := r.rdb.Set(ctx, r.jobKey(job.ID), data, r.ttl).Err(); err != nil {
		return errors.Wrapf(err, "publish job %s", job.ID)
	}

	return nil
}

// FetchJob implements Transport.
func (r *RedisTransport) FetchJob(ctx context.Context, id string) (*Job, error) {
	data, err := r.rdb.Get(ctx, r.jobKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, errors.Wrapf(ErrJobNotFound, "job %s", id)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "fetch job %s", id)
	}

	var job Job
	if err := json.Unmarshal(data, &job); err != nil {
		return nil, errors.Wrapf(err, "decode job %s", id)
	}

	return &job, nil
}

// SendResult implements Transport.
func (r *RedisTransport) SendResult(ctx context.Context, res WorkerResult) error {
	data, err := json.Marshal(res)
	if err != nil {
		return errors.Wrapf(err, "encode result rank %d", res.Rank)
	}
	key := r.resultKey(res.JobID)
	_, err = r.rdb.TxPipelined(ctx, func(p redis.Pipeliner) error {
		p.RPush(ctx, key, data)
		p.Expire(ctx, key, r.ttl)

		return nil
	})

	return errors.Wrapf(err, "send result rank %d", res.Rank)
}

// CollectResults implements Transport. It pops with a short BLPOP timeout so
// that context cancellation is noticed promptly.
func (r *RedisTransport) CollectResults(ctx context.Context, jobID string, n int) ([]WorkerResult, error) {
	key := r.resultKey(jobID)
	out := make([]WorkerResult, 0, n)
	for len(out) < n {
		if err := ctx.Err(); err != nil {
			return out, errors.Wrapf(err, "collected %d of %d results", len(out), n)
		}
		vals, err := r.rdb.BLPop(ctx, popTimeout, key).Result()
		if errors.Is(err, redis.Nil) {
			continue
		}
		if err != nil {
			return out, errors.Wrapf(err, "collect results of job %s", jobID)
		}
		// vals = [key, value]
		var res WorkerResult
		if err := json.Unmarshal([]byte(vals[1]), &res); err != nil {
			return out, errors.Wrapf(err, "decode result of job %s", jobID)
		}
		out = append(out, res)
	}

	return out, nil
}
