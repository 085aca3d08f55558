//go:build e2e

package integration

import (
	"context"
	"os"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"ormfilter/orm"
)

type Suite struct {
	suite.Suite
	driver  string
	dsnEnv  string
	dsn     string
	dialect orm.Dialect
	// createTable 按照方言建表
	createTable string
	db          *orm.DB
}

// dsnFromEnv 先读 .env，环境变量优先
func dsnFromEnv(key, fallback string) string {
	_ = godotenv.Load(".env")
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// SetupSuite 所有 suite 执行前的钩子
func (s *Suite) SetupSuite() {
	db, err := orm.Open(s.driver, dsnFromEnv(s.dsnEnv, s.dsn), orm.DBWithDialect(s.dialect))
	require.NoError(s.T(), err)
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()
	require.NoError(s.T(), db.Wait(ctx))
	s.db = db
	res := orm.RawQuery[SimpleStruct](s.db, s.createTable).Exec(context.Background())
	require.NoError(s.T(), res.Err())
}

func (s *Suite) TearDownSuite() {
	if s.db != nil {
		_ = s.db.Close()
	}
}
