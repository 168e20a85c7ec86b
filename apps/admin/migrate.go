package main

import (
	"errors"

	"github.com/gaia-edu/gaia/storage/database"
)

var migrateFunc = database.Migrate // mockable

func (cli *commandLine) migrate(command string, args ...string) error {
	if cli.db == nil {
		return errors.New("migrate requires a configured database engine")
	}
	return migrateFunc(cli.db, command, args...)
}
