package api

import (
	"github.com/MCKesav/PaletteLive-website/datastore"
)

type Config struct {
	HTTPPort           string
	DatabaseType       string
	DatabaseUser       string
	DatabasePassword   string
	DatabaseName       string
	SSLMode            string
	JwtSecret          string
	JwtAccessDuration  int // seconds
	JwtRefreshDuration int // seconds
	JwtDomain          string
	AllowedOrigins     []string
	DevMode            bool
}

type Application struct {
	Config      Config
	UserRepo    datastore.UserRepository
	PaletteRepo datastore.PaletteRepository
	PresetRepo  datastore.PresetRepository
	ShareRepo   datastore.ShareRepository
}
