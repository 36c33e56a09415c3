// Package testutil provides shared helpers for integration tests. Redis
// tests run against a real server when one is reachable and skip otherwise;
// CI can force them on with TEST_REQUIRE_REDIS.
package testutil

import (
	"context"
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
)

// TestingTB is the subset of testing.TB the helpers need. Defined locally so
// non-test tooling can drive the same setup.
type TestingTB interface {
	Helper()
	Cleanup(func())
	Skip(args ...any)
	Skipf(format string, args ...any)
	Fatal(args ...any)
	Fatalf(format string, args ...any)
	Logf(format string, args ...any)
}

var _ TestingTB = (testing.TB)(nil)

// GetTestRedisAddr resolves the redis address for tests: REDIS_ADDR wins,
// then the conventional docker-compose and localhost addresses are probed.
func GetTestRedisAddr() string {
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		return addr
	}
	for _, addr := range []string{"redis:6379", "localhost:6379"} {
		conn, err := net.DialTimeout("tcp", addr, 500*time.Millisecond)
		if err == nil {
			conn.Close()
			return addr
		}
	}
	// Unreachable default; callers skip when the ping fails.
	return "localhost:56379"
}

// selectTestRedisDB reserves a logical database so parallel test packages do
// not flush each other. The reservation is a lock key in DB 0 released via
// Cleanup; TEST_REDIS_DB overrides the scan.
func selectTestRedisDB(tb TestingTB, addr string) int {
	tb.Helper()

	if override := os.Getenv("TEST_REDIS_DB"); override != "" {
		db, err := strconv.Atoi(override)
		if err != nil {
			tb.Fatalf("invalid TEST_REDIS_DB %q: %v", override, err)
		}
		return db
	}

	locker := redis.NewClient(&redis.Options{Addr: addr})
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	for db := 1; db <= 15; db++ {
		key := fmt.Sprintf("libraryui:testutil:db_lock:%d", db)
		ok, err := locker.SetNX(ctx, key, os.Getpid(), 30*time.Minute).Result()
		if err != nil {
			locker.Close()
			tb.Fatalf("reserve redis test db: %v", err)
		}
		if ok {
			tb.Cleanup(func() {
				cctx, ccancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer ccancel()
				locker.Del(cctx, key)
				locker.Close()
			})
			return db
		}
	}

	locker.Close()
	tb.Fatal("no free redis test database (1-15) to reserve")
	return 0
}

// SetupTestRedis returns a client on a reserved, flushed test database. When
// redis is unreachable the test skips unless TEST_REQUIRE_REDIS or
// TEST_REQUIRE_INFRA demands it.
func SetupTestRedis(tb TestingTB) redis.UniversalClient {
	tb.Helper()

	addr := GetTestRedisAddr()
	probe := redis.NewClient(&redis.Options{Addr: addr})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	pingErr := probe.Ping(ctx).Err()
	probe.Close()

	if pingErr != nil {
		if envBool("TEST_REQUIRE_REDIS") || envBool("TEST_REQUIRE_INFRA") {
			tb.Fatalf("redis required but unreachable at %s: %v", addr, pingErr)
		}
		tb.Skipf("redis unavailable at %s: %v", addr, pingErr)
	}

	db := selectTestRedisDB(tb, addr)
	client := redis.NewClient(&redis.Options{Addr: addr, DB: db})

	fctx, fcancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer fcancel()
	if err := client.FlushDB(fctx).Err(); err != nil {
		tb.Fatalf("flush redis test db %d: %v", db, err)
	}

	tb.Cleanup(func() {
		cctx, ccancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer ccancel()
		client.FlushDB(cctx)
		client.Close()
	})

	tb.Logf("redis test database: %s/%d", addr, db)
	return client
}

func envBool(name string) bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv(name)))
	return v == "1" || v == "true" || v == "yes"
}

// Pointer helpers for building literals in table tests.

// StringPtr returns a pointer to s.
func StringPtr(s string) *string { return &s }

// BoolPtr returns a pointer to b.
func BoolPtr(b bool) *bool { return &b }

// IntPtr returns a pointer to i.
func IntPtr(i int) *int { return &i }

// TimePtr returns a pointer to t.
func TimePtr(t time.Time) *time.Time { return &t }
