package tenant

import (
	"fmt"
	"net"
	"testing"
	"time"

	"github.com/teamtartariatech-developers/SwiftIn-Backend-sub000/models"

	sqle "github.com/dolthub/go-mysql-server"
	"github.com/dolthub/go-mysql-server/memory"
	"github.com/dolthub/go-mysql-server/server"
	"github.com/dolthub/go-mysql-server/sql"
	"github.com/stretchr/testify/require"

	gormmysql "gorm.io/driver/mysql"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// startTestServer runs a temporary in-memory MySQL server seeded with the
// given databases and returns its port. The server is closed when the test
// finishes.
func startTestServer(t *testing.T, databases ...string) int {
	t.Helper()

	dbs := make([]sql.Database, 0, len(databases))
	for _, name := range databases {
		dbs = append(dbs, memory.NewDatabase(name))
	}
	provider := memory.NewDBProvider(dbs...)
	engine := sqle.NewDefault(provider)

	port := freePort(t)
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

	// Poll server readiness with timeout to prevent indefinite blocking
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		conn, err := net.DialTimeout("tcp", fmt.Sprintf("127.0.0.1:%d", port), 100*time.Millisecond)
		if err == nil {
			conn.Close()
			return port
		}
		time.Sleep(50 * time.Millisecond)
	}
	t.Fatalf("test MySQL server failed to start on port %d", port)
	return 0
}

func freePort(t *testing.T) int {
	t.Helper()
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer l.Close()
	return l.Addr().(*net.TCPAddr).Port
}

func testDSN(port int) func(string) string {
	return func(name string) string {
		return fmt.Sprintf("root:@tcp(127.0.0.1:%d)/%s?charset=utf8mb4&parseTime=True&loc=Local", port, name)
	}
}

// newTestRegistry builds a registry over the test server with the standard
// reserved-name exclusions.
func newTestRegistry(t *testing.T, port int) *Registry {
	t.Helper()

	dsnFor := testDSN(port)
	primary, err := gorm.Open(gormmysql.Open(dsnFor("")), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	return NewRegistry(Options{
		Primary:         primary,
		DSNFor:          dsnFor,
		SystemDatabases: []string{"information_schema", "mysql", "performance_schema", "sys"},
		NameMaxLen:      48,
	})
}

// seedProperty creates a database out-of-band and plants a property record in
// it, simulating a tenant whose database name was not derived from its code.
func seedProperty(t *testing.T, reg *Registry, dbName, code string, metadata models.JSONMap) {
	t.Helper()

	stmt := fmt.Sprintf("CREATE DATABASE IF NOT EXISTS %s", quoteIdent(dbName))
	require.NoError(t, reg.primary.Exec(stmt).Error)

	db, err := gorm.Open(gormmysql.Open(reg.dsnFor(dbName)), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Property{}))

	if metadata == nil {
		metadata = models.JSONMap{}
	}
	prop := models.Property{
		Code:     code,
		Name:     code + " Hotel",
		Status:   "active",
		Metadata: metadata,
	}
	require.NoError(t, db.Create(&prop).Error)
}
