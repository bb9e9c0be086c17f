package config

import (
	"github.com/go-pg/pg/v10"
)

type Config struct {
	Database pg.Options
	App      App
	Auth     Auth
}

type App struct {
	Host string
	Port int
	// BodyLimit caps request bodies, echo notation ("10M").
	BodyLimit string
	// LogQueries logs every SQL statement at debug level.
	LogQueries bool
}

type Auth struct {
	// Secret signs login tokens (HS256). Required.
	Secret     string
	BcryptCost int
}
