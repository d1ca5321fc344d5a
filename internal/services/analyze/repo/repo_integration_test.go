//go:build integration_pg
// +build integration_pg

package repo

import (
	"context"
	"fmt"
	"testing"
	"time"

	"sktmorph/internal/core/analysis"
	"sktmorph/internal/platform/store/pg"

	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func startPostgres(t *testing.T) string {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Minute)
	t.Cleanup(cancel)

	c, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{
		ContainerRequest: tc.ContainerRequest{
			Image:        "postgres:16-alpine",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     "postgres",
				"POSTGRES_PASSWORD": "postgres",
				"POSTGRES_DB":       "postgres",
			},
			WaitingFor: wait.ForAll(
				wait.ForListeningPort("5432/tcp"),
				wait.ForLog("database system is ready to accept connections"),
			).WithDeadline(2 * time.Minute),
		},
		Started: true,
	})
	if err != nil {
		t.Fatalf("failed to start postgres container: %v", err)
	}
	t.Cleanup(func() { _ = c.Terminate(context.Background()) })

	host, err := c.Host(ctx)
	if err != nil {
		t.Fatalf("failed to get container host: %v", err)
	}
	mapped, err := c.MappedPort(ctx, "5432/tcp")
	if err != nil {
		t.Fatalf("failed to get mapped port: %v", err)
	}
	return fmt.Sprintf("postgres://postgres:postgres@%s:%s/postgres?sslmode=disable", host, mapped.Port())
}

func TestCache_RoundTrip_Integration(t *testing.T) {
	dsn := startPostgres(t)

	ctx, cancel := context.WithTimeout(context.Background(), 90*time.Second)
	defer cancel()

	db, err := pg.Open(ctx, pg.Config{URL: dsn, MaxConns: 2, PingAttempts: 10}, nil, nil)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer db.Close()

	c := NewPG(db)
	if err := c.EnsureSchema(ctx); err != nil {
		t.Fatalf("schema: %v", err)
	}
	// twice is fine
	if err := c.EnsureSchema(ctx); err != nil {
		t.Fatalf("schema again: %v", err)
	}

	if _, ok, err := c.Get(ctx, "absent"); err != nil || ok {
		t.Fatalf("miss = %v %v", ok, err)
	}

	s := sample()
	if err := c.Put(ctx, "k1", s); err != nil {
		t.Fatalf("put: %v", err)
	}
	s.Error = "1:-;2:-"
	if err := c.Put(ctx, "k1", s); err != nil {
		t.Fatalf("upsert: %v", err)
	}

	got, ok, err := c.Get(ctx, "k1")
	if err != nil || !ok {
		t.Fatalf("get = %v %v", ok, err)
	}
	if got.Error != "1:-;2:-" || got.Status != analysis.StatusSuccess || got.Segmentation[0] != "rAma" {
		t.Fatalf("got %#v", got)
	}
}
