package testdata

import (
	"database/sql"
)

type User struct {
	Id       int64
	Name     string `orm:"column=user_name"`
	Age      *int
	NickName *sql.NullString
	Picture  []byte
	password string
}

type UserDetail struct {
	User
	Address string `json:"address" orm:"column=addr"`
}

type Status int

func (u User) Check() bool {
	type local struct {
		Name string
	}
	return local{Name: u.Name}.Name != ""
}
