//go:build integration

package lock

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"doc_ingest/internal/domain"
)

type RedisLockIntegrationSuite struct {
	suite.Suite
	ctx       context.Context
	container testcontainers.Container
	locker    *RedisLocker
}

func (s *RedisLockIntegrationSuite) SetupSuite() {
	s.ctx = context.Background()
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))

	container, err := testcontainers.GenericContainer(s.ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForLog("Ready to accept connections").WithStartupTimeout(30 * time.Second),
		},
		Started: true,
	})
	s.Require().NoError(err)
	s.container = container

	host, err := container.Host(s.ctx)
	s.Require().NoError(err)
	port, err := container.MappedPort(s.ctx, "6379")
	s.Require().NoError(err)

	s.locker, err = NewRedisLocker(s.ctx, Config{
		Addr: fmt.Sprintf("%s:%s", host, port.Port()),
		TTL:  2 * time.Second,
	}, logger)
	s.Require().NoError(err)
}

func (s *RedisLockIntegrationSuite) TearDownSuite() {
	if s.locker != nil {
		_ = s.locker.Close()
	}
	if s.container != nil {
		_ = s.container.Terminate(s.ctx)
	}
}

func TestRedisLockIntegrationSuite(t *testing.T) {
	suite.Run(t, new(RedisLockIntegrationSuite))
}

func (s *RedisLockIntegrationSuite) TestAcquire_Exclusive() {
	release, err := s.locker.Acquire(s.ctx, "run:sales_invoice")
	s.Require().NoError(err)

	_, err = s.locker.Acquire(s.ctx, "run:sales_invoice")
	s.ErrorIs(err, domain.ErrRunInProgress)

	other, err := s.locker.Acquire(s.ctx, "run:contract")
	s.Require().NoError(err)
	other()

	release()

	again, err := s.locker.Acquire(s.ctx, "run:sales_invoice")
	s.Require().NoError(err)
	again()
}

func (s *RedisLockIntegrationSuite) TestAcquire_RefreshedWhileHeld() {
	release, err := s.locker.Acquire(s.ctx, "run:refresh")
	s.Require().NoError(err)
	defer release()

	time.Sleep(3 * time.Second)

	_, err = s.locker.Acquire(s.ctx, "run:refresh")
	s.ErrorIs(err, domain.ErrRunInProgress)
}
