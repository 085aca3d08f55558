//go:build e2e

package integration

import (
	"database/sql"
)

type SimpleStruct struct {
	Id        int64
	Name      string
	Age       int64
	Status    string
	Nickname  sql.NullString
	DeletedAt sql.NullInt64 `orm:"soft_delete=true"`
}

func NewSimpleStruct(id int64) *SimpleStruct {
	return &SimpleStruct{
		Id:       id,
		Name:     "Tom",
		Age:      18,
		Status:   "active",
		Nickname: sql.NullString{String: "Tommy", Valid: true},
	}
}

const (
	mysqlCreateTable = "CREATE TABLE IF NOT EXISTS `simple_struct` (" +
		"`id` BIGINT PRIMARY KEY, `name` VARCHAR(64) NOT NULL, `age` BIGINT NOT NULL, " +
		"`status` VARCHAR(16) NOT NULL, `nickname` VARCHAR(64), `deleted_at` BIGINT)"
	postgresCreateTable = `CREATE TABLE IF NOT EXISTS "simple_struct" (` +
		`"id" BIGINT PRIMARY KEY, "name" VARCHAR(64) NOT NULL, "age" BIGINT NOT NULL, ` +
		`"status" VARCHAR(16) NOT NULL, "nickname" VARCHAR(64), "deleted_at" BIGINT)`
)
