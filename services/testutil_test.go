package services

import (
	"context"
	"fmt"
	"net"
	"testing"
	"time"

	"github.com/teamtartariatech-developers/SwiftIn-Backend-sub000/tenant"

	sqle "github.com/dolthub/go-mysql-server"
	"github.com/dolthub/go-mysql-server/memory"
	"github.com/dolthub/go-mysql-server/server"
	"github.com/dolthub/go-mysql-server/sql"
	"github.com/stretchr/testify/require"

	gormmysql "gorm.io/driver/mysql"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// newTenantContext provisions one hotel on a temporary in-memory MySQL server
// and returns its resolved tenant context.
func newTenantContext(t *testing.T, code string) *tenant.Context {
	t.Helper()

	provider := memory.NewDBProvider()
	engine := sqle.NewDefault(provider)

	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	port := l.Addr().(*net.TCPAddr).Port
	require.NoError(t, l.Close())

	cfg := server.Config{
		Protocol: "tcp",
		Address:  fmt.Sprintf("127.0.0.1:%d", port),
	}
	s, err := server.NewServer(cfg, engine, sql.NewContext, memory.NewSessionBuilder(provider), nil)
	require.NoError(t, err)

	go func() {
		_ = s.Start()
	}()
	t.Cleanup(func() {
		_ = s.Close()
	})

	deadline := time.Now().Add(5 * time.Second)
	for {
		conn, err := net.DialTimeout("tcp", cfg.Address, 100*time.Millisecond)
		if err == nil {
			conn.Close()
			break
		}
		if time.Now().After(deadline) {
			t.Fatalf("test MySQL server failed to start on %s", cfg.Address)
		}
		time.Sleep(50 * time.Millisecond)
	}

	dsnFor := func(name string) string {
		return fmt.Sprintf("root:@tcp(127.0.0.1:%d)/%s?charset=utf8mb4&parseTime=True&loc=Local", port, name)
	}
	primary, err := gorm.Open(gormmysql.Open(dsnFor("")), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	reg := tenant.NewRegistry(tenant.Options{
		Primary:         primary,
		DSNFor:          dsnFor,
		SystemDatabases: []string{"information_schema", "mysql", "performance_schema", "sys"},
		NameMaxLen:      48,
	})

	tc, err := reg.Provision(context.Background(), code, code+" Hotel")
	require.NoError(t, err)
	return tc
}
