package main

import (
	"database/sql"
	"log"
	"os"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"

	"github.com/gaia-edu/gaia/core"
	"github.com/gaia-edu/gaia/core/account"
	emailsvc "github.com/gaia-edu/gaia/services/email"
	"github.com/gaia-edu/gaia/storage/database"
	inmemdb "github.com/gaia-edu/gaia/storage/database/inmem"
	sqlxrepos "github.com/gaia-edu/gaia/storage/database/sqlx"
)

var logger *log.Logger

func main() {
	defer os.Exit(0)

	logger = log.New(os.Stdout, "ADMIN : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile)

	conf := core.NewConfig()

	validate := validator.New()
	translator := newTranslator()
	core.InitValidators(validate, translator)
	account.InitValidators(validate, translator)

	// set up the account store
	var db *sql.DB
	var acctRepo account.Repository
	if conf.Database.Engine == "" {
		mem, err := inmemdb.Open()
		errAndDie(err)
		acctRepo = inmemdb.NewAccountRepository(mem)
	} else {
		var err error
		db, err = database.Open(conf)
		errAndDie(err)
		defer func() { _ = db.Close() }()
		errAndDie(database.Ping(db))
		acctRepo = sqlxrepos.NewAccountRepository(db)
	}

	// start CLI
	cli := commandLine{
		db:       db,
		acctSvc:  account.NewService(acctRepo, emailsvc.NewConsoleService(conf), conf),
		validate: validate,
	}
	if err := cli.run(os.Args); err != nil {
		if err != errHelp {
			logger.Printf("\nerror: %s\n", err)
		}
		os.Exit(1)
	}
}

func errAndDie(err error) {
	if err != nil {
		logger.Fatal(err)
	}
}

func newTranslator() ut.Translator {
	locale := en.New()
	uni := ut.New(locale, locale)
	translator, _ := uni.GetTranslator("en")
	return translator
}
