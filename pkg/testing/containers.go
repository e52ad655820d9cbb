// Package testing holds helpers for tests that run against real
// redis and postgres instances started in docker.
package testing

import (
	"context"
	"database/sql"
	"fmt"
	"net"
	"time"

	"github.com/go-redis/redis/v8"
	_ "github.com/lib/pq"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
)

const (
	PostgresUser     = "postgres"
	PostgresPassword = "postgres"
	PostgresDBName   = "fitgenius"
)

// Containers keeps the docker pool and the teardown funcs of everything
// started through it.
type Containers struct {
	pool     *dockertest.Pool
	teardown []func()
}

func NewContainers() (*Containers, error) {
	// uses a sensible default on windows (tcp/http) and linux/osx (socket)
	pool, err := dockertest.NewPool("")
	if err != nil {
		return nil, fmt.Errorf("could not create new dockertest pool: %w", err)
	}
	if err = pool.Client.Ping(); err != nil {
		return nil, fmt.Errorf("could not ping dockertest pool: %w", err)
	}
	pool.MaxWait = 60 * time.Second

	return &Containers{pool: pool}, nil
}

// StartRedis runs a redis container and returns its mapped host port.
func (c *Containers) StartRedis(ctx context.Context) (string, error) {
	redisResource, err := c.pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "redis",
		Tag:        "7.2",
	}, func(config *docker.HostConfig) {
		config.AutoRemove = true
		config.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		return "", fmt.Errorf("run redis: %w", err)
	}
	c.teardown = append(c.teardown, func() {
		redisResource.Close()
	})

	redisPort := redisResource.GetPort("6379/tcp")
	if err := c.pool.Retry(func() error {
		rdb := redis.NewClient(&redis.Options{Addr: net.JoinHostPort("localhost", redisPort)})
		defer rdb.Close()
		return rdb.Ping(ctx).Err()
	}); err != nil {
		return "", fmt.Errorf("wait for redis: %w", err)
	}

	return redisPort, nil
}

// StartPostgres runs a postgres container, executes initSQL on it
// and returns its mapped host port.
func (c *Containers) StartPostgres(initSQL string) (string, error) {
	pgResource, err := c.pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "16",
		Env: []string{
			"POSTGRES_USER=" + PostgresUser,
			"POSTGRES_PASSWORD=" + PostgresPassword,
			"POSTGRES_DB=" + PostgresDBName,
		},
	}, func(config *docker.HostConfig) {
		config.AutoRemove = true
		config.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		return "", fmt.Errorf("dockerpool run postgres: %w", err)
	}
	c.teardown = append(c.teardown, func() {
		pgResource.Close()
	})

	pgPort := pgResource.GetPort("5432/tcp")
	dsn := fmt.Sprintf("postgres://%s:%s@localhost:%s/%s?sslmode=disable", PostgresUser, PostgresPassword, pgPort, PostgresDBName)

	var db *sql.DB
	if err := c.pool.Retry(func() error {
		db, err = sql.Open("postgres", dsn)
		if err != nil {
			return err
		}
		return db.Ping()
	}); err != nil {
		return "", fmt.Errorf("wait for postgres: %w", err)
	}
	defer db.Close()

	if _, err := db.Exec(initSQL); err != nil {
		return "", fmt.Errorf("run init script: %w", err)
	}

	return pgPort, nil
}

// Cleanup removes all started containers.
func (c *Containers) Cleanup() {
	for _, teardown := range c.teardown {
		teardown()
	}
	c.teardown = nil
}
