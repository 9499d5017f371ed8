//go:build integration

package repository_test

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"

	"runes-gateway/internal/infra"
	"runes-gateway/internal/infra/db"
	"runes-gateway/internal/infra/repository"
	"runes-gateway/internal/pkg/config"
	"runes-gateway/internal/usecase/readmodel"

	"github.com/docker/go-connections/nat"
	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

var (
	postgresContainerOnce sync.Once
	postgresTestContainer testcontainers.Container

	testUser     = "test"
	testPassword = "testpass"
)

type containerInfo struct {
	Host string
	Port nat.Port
}

func startPostgreSQLContainerOnce(t *testing.T) {
	postgresContainerOnce.Do(func() {
		req := testcontainers.ContainerRequest{
			Image:        "postgres:17",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     testUser,
				"POSTGRES_PASSWORD": testPassword,
				"POSTGRES_DB":       "postgres",
			},
			Tmpfs: map[string]string{
				"/var/lib/postgresql/data": "rw,size=256m",
			},
			Cmd: []string{
				"postgres",
				"-c", "fsync=off",
				"-c", "synchronous_commit=off",
				"-c", "full_page_writes=off",
			},
			WaitingFor: wait.ForSQL("5432/tcp", "pgx", func(host string, port nat.Port) string {
				return fmt.Sprintf("postgres://%s:%s@%s:%s/postgres?sslmode=disable",
					testUser, testPassword, host, port.Port())
			}).WithStartupTimeout(60 * time.Second),
			Labels: map[string]string{"purpose": "repository-integration-tests"},
		}

		ctx, cancel := context.WithTimeout(context.Background(), 180*time.Second)
		defer cancel()

		var err error
		postgresTestContainer, err = testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
			ContainerRequest: req,
			Started:          true,
		})
		require.NoError(t, err, "failed to start PostgreSQL container")

		t.Cleanup(func() {
			if postgresTestContainer != nil {
				termCtx, termCancel := context.WithTimeout(context.Background(), 10*time.Second)
				defer termCancel()
				if err := postgresTestContainer.Terminate(termCtx); err != nil {
					slog.Warn("failed to terminate PostgreSQL container", "error", err.Error())
				}
			}
		})
	})
}

func getContainerHostPort(c testcontainers.Container, port string) (containerInfo, error) {
	ctx := context.Background()
	mappedPort, err := c.MappedPort(ctx, nat.Port(port))
	if err != nil {
		return containerInfo{}, err
	}
	host, err := c.Host(ctx)
	if err != nil {
		return containerInfo{}, err
	}
	return containerInfo{Host: host, Port: mappedPort}, nil
}

// setupTestDatabase creates an isolated database per test, applies the
// embedded migrations, and returns a connected pool.
func setupTestDatabase(t *testing.T) *pgxpool.Pool {
	t.Helper()

	startPostgreSQLContainerOnce(t)

	info, err := getContainerHostPort(postgresTestContainer, "5432/tcp")
	require.NoError(t, err, "failed to resolve PostgreSQL container address")

	dbName := "testdb_" + strings.ReplaceAll(uuid.New().String(), "-", "")

	adminDSN := fmt.Sprintf("postgres://%s:%s@%s:%s/postgres?sslmode=disable",
		testUser, testPassword, info.Host, info.Port.Port())

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	adminPool, err := pgxpool.New(ctx, adminDSN)
	require.NoError(t, err, "failed to open admin connection")
	defer adminPool.Close()

	var createErr error
	for attempt := range 5 {
		if attempt > 0 {
			time.Sleep(time.Duration(500+attempt*500) * time.Millisecond)
		}
		_, createErr = adminPool.Exec(ctx, "CREATE DATABASE "+dbName)
		if createErr == nil {
			break
		}
	}
	require.NoError(t, createErr, "failed to create test database")

	t.Cleanup(func() {
		cleanupCtx, cleanupCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cleanupCancel()

		cleanupPool, err := pgxpool.New(cleanupCtx, adminDSN)
		if err != nil {
			slog.Warn("failed to open cleanup connection", "database", dbName, "error", err.Error())
			return
		}
		defer cleanupPool.Close()

		if _, err := cleanupPool.Exec(cleanupCtx, "DROP DATABASE IF EXISTS "+dbName); err != nil {
			slog.Warn("failed to drop test database", "database", dbName, "error", err.Error())
		}
	})

	dbConfig := config.DBConfig{
		Host:     info.Host,
		Port:     info.Port.Port(),
		User:     testUser,
		Password: testPassword,
		DBName:   dbName,
		SSLMode:  "disable",
		TimeZone: "UTC",
	}

	pool, cleanup, err := db.Connect(dbConfig)
	require.NoError(t, err, "failed to connect to test database")
	t.Cleanup(cleanup)

	migrateCtx, migrateCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer migrateCancel()
	require.NoError(t, db.Migrate(migrateCtx, dbConfig, slog.Default()), "failed to apply migrations")

	return pool
}

type RepositoryIntegrationTestSuite struct {
	suite.Suite
	pool *pgxpool.Pool
}

func TestRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(RepositoryIntegrationTestSuite))
}

func (s *RepositoryIntegrationTestSuite) SetupTest() {
	s.pool = setupTestDatabase(s.T())
}

func (s *RepositoryIntegrationTestSuite) TestTokenRepository_UpsertAndGet() {
	repo := repository.NewTokenRepository(s.pool)
	ctx := context.Background()

	const wallet = "bc1pintegrationwallet"

	_, err := repo.Get(ctx, wallet)
	s.Require().Error(err)
	s.True(infra.IsKind(err, infra.KindNotFound))

	exp := time.Now().Add(time.Hour).UTC().Truncate(time.Microsecond)
	err = repo.Upsert(ctx, &readmodel.LiquidiumTokenRM{
		WalletAddress:   wallet,
		OrdinalsAddress: "bc1pordinals",
		PaymentAddress:  "bc1qpayment",
		JWT:             "token-one",
		ExpiresAt:       &exp,
	})
	s.Require().NoError(err)

	got, err := repo.Get(ctx, wallet)
	s.Require().NoError(err)
	s.Equal("token-one", got.JWT)
	s.Equal("bc1pordinals", got.OrdinalsAddress)
	s.Require().NotNil(got.ExpiresAt)
	s.True(got.ExpiresAt.Equal(exp))
	s.False(got.LastUsedAt.IsZero())

	// Re-submitting for the same wallet replaces the stored token.
	err = repo.Upsert(ctx, &readmodel.LiquidiumTokenRM{
		WalletAddress:   wallet,
		OrdinalsAddress: "bc1pordinals2",
		PaymentAddress:  "",
		JWT:             "token-two",
		ExpiresAt:       nil,
	})
	s.Require().NoError(err)

	got, err = repo.Get(ctx, wallet)
	s.Require().NoError(err)
	s.Equal("token-two", got.JWT)
	s.Equal("bc1pordinals2", got.OrdinalsAddress)
	s.Nil(got.ExpiresAt)
}

func (s *RepositoryIntegrationTestSuite) TestTokenRepository_TouchLastUsed() {
	repo := repository.NewTokenRepository(s.pool)
	ctx := context.Background()

	const wallet = "bc1ptouchwallet"
	s.Require().NoError(repo.Upsert(ctx, &readmodel.LiquidiumTokenRM{
		WalletAddress:   wallet,
		OrdinalsAddress: "bc1pordinals",
		JWT:             "token",
	}))

	before, err := repo.Get(ctx, wallet)
	s.Require().NoError(err)

	time.Sleep(50 * time.Millisecond)
	s.Require().NoError(repo.TouchLastUsed(ctx, wallet))

	after, err := repo.Get(ctx, wallet)
	s.Require().NoError(err)
	s.True(after.LastUsedAt.After(before.LastUsedAt))

	// Touching an unknown wallet is a no-op, not an error.
	s.NoError(repo.TouchLastUsed(ctx, "bc1pnobody"))
}

func (s *RepositoryIntegrationTestSuite) TestRuneRepository_Lookups() {
	repo := repository.NewRuneRepository(s.pool)
	ctx := context.Background()

	etching := "abc123"
	supply := "21000000"
	rec := &readmodel.RuneRM{
		ID:            "840000:28",
		Name:          "DOGGOTOTHEMOON",
		FormattedName: "DOG•GO•TO•THE•MOON",
		SpacedName:    "DOG•GO•TO•THE•MOON",
		Symbol:        "🐕",
		Decimals:      5,
		EtchingTxID:   &etching,
		CurrentSupply: &supply,
	}
	s.Require().NoError(repo.Save(ctx, rec))

	byName, err := repo.FindByName(ctx, "doggotothemoon")
	s.Require().NoError(err, "name lookup should be case-insensitive")
	s.Equal("840000:28", byName.ID)
	s.Equal(5, byName.Decimals)
	s.Require().NotNil(byName.EtchingTxID)
	s.Equal(etching, *byName.EtchingTxID)

	byID, err := repo.FindByID(ctx, "840000:28")
	s.Require().NoError(err)
	s.Equal("DOGGOTOTHEMOON", byID.Name)

	byPrefix, err := repo.FindByIDPrefix(ctx, "840000")
	s.Require().NoError(err)
	s.Equal("840000:28", byPrefix.ID)

	// The prefix must match a whole block number, not a substring.
	_, err = repo.FindByIDPrefix(ctx, "84000")
	s.Require().Error(err)
	s.True(infra.IsKind(err, infra.KindNotFound))

	_, err = repo.FindByName(ctx, "UNKNOWNRUNE")
	s.Require().Error(err)
	s.True(infra.IsKind(err, infra.KindNotFound))
}

func (s *RepositoryIntegrationTestSuite) TestRuneRepository_SaveRefreshesMarketFields() {
	repo := repository.NewRuneRepository(s.pool)
	ctx := context.Background()

	marketCap := int64(1000)
	s.Require().NoError(repo.Save(ctx, &readmodel.RuneRM{
		ID:        "845000:1",
		Name:      "EXAMPLERUNE",
		MarketCap: &marketCap,
	}))

	newCap := int64(2500)
	price := 0.42
	s.Require().NoError(repo.Save(ctx, &readmodel.RuneRM{
		ID:          "845000:1",
		Name:        "EXAMPLERUNE",
		MarketCap:   &newCap,
		PriceInSats: &price,
	}))

	got, err := repo.FindByID(ctx, "845000:1")
	s.Require().NoError(err)
	s.Require().NotNil(got.MarketCap)
	s.Equal(int64(2500), *got.MarketCap)
	s.Require().NotNil(got.PriceInSats)
	s.InDelta(0.42, *got.PriceInSats, 1e-9)
	s.True(got.UpdatedAt.After(got.CreatedAt) || got.UpdatedAt.Equal(got.CreatedAt))
}

func (s *RepositoryIntegrationTestSuite) TestBorrowRangeRepository_UpsertAndGet() {
	repo := repository.NewBorrowRangeRepository(s.pool)
	ctx := context.Background()

	_, err := repo.Get(ctx, "840000:28")
	s.Require().Error(err)
	s.True(infra.IsKind(err, infra.KindNotFound))

	days := 14
	s.Require().NoError(repo.Upsert(ctx, &readmodel.BorrowRangeRM{
		RuneID:       "840000:28",
		MinAmount:    "50",
		MaxAmount:    "18446744073709551615",
		LoanTermDays: &days,
	}))

	got, err := repo.Get(ctx, "840000:28")
	s.Require().NoError(err)
	s.Equal("50", got.MinAmount)
	s.Equal("18446744073709551615", got.MaxAmount)
	s.Require().NotNil(got.LoanTermDays)
	s.Equal(14, *got.LoanTermDays)
	first := got.UpdatedAt

	time.Sleep(50 * time.Millisecond)
	s.Require().NoError(repo.Upsert(ctx, &readmodel.BorrowRangeRM{
		RuneID:    "840000:28",
		MinAmount: "100",
		MaxAmount: "5000",
	}))

	got, err = repo.Get(ctx, "840000:28")
	s.Require().NoError(err)
	s.Equal("100", got.MinAmount)
	s.Nil(got.LoanTermDays)
	s.True(got.UpdatedAt.After(first), "refresh should advance updated_at")
}

func (s *RepositoryIntegrationTestSuite) TestPopularRunesRepository_Lifecycle() {
	repo := repository.NewPopularRunesRepository(s.pool)
	ctx := context.Background()

	_, err := repo.Latest(ctx)
	s.Require().Error(err)
	s.True(infra.IsKind(err, infra.KindNotFound))

	for i := range 7 {
		payload := json.RawMessage(fmt.Sprintf(`[{"rune":"RUNE%d"}]`, i))
		s.Require().NoError(repo.Insert(ctx, payload))
		time.Sleep(10 * time.Millisecond)
	}

	latest, err := repo.Latest(ctx)
	s.Require().NoError(err)
	s.JSONEq(`[{"rune":"RUNE6"}]`, string(latest.RunesData))
	s.Require().NotNil(latest.LastRefreshAttempt)

	pruned, err := repo.Prune(ctx, 5)
	s.Require().NoError(err)
	s.Equal(int64(2), pruned)

	var remaining int
	s.Require().NoError(s.pool.QueryRow(ctx, "SELECT count(*) FROM popular_runes_cache").Scan(&remaining))
	s.Equal(5, remaining)

	// Pruning keeps the newest rows.
	latest, err = repo.Latest(ctx)
	s.Require().NoError(err)
	s.JSONEq(`[{"rune":"RUNE6"}]`, string(latest.RunesData))

	before := *latest.LastRefreshAttempt
	time.Sleep(50 * time.Millisecond)
	s.Require().NoError(repo.MarkRefreshAttempt(ctx))

	latest, err = repo.Latest(ctx)
	s.Require().NoError(err)
	s.Require().NotNil(latest.LastRefreshAttempt)
	s.True(latest.LastRefreshAttempt.After(before))
	s.JSONEq(`[{"rune":"RUNE6"}]`, string(latest.RunesData), "marking an attempt must not replace the data")
}
