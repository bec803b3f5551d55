package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env"
)

type config struct {
	Production     bool          `env:"PRODUCTION" envDefault:"false"`
	Port           string        `env:"PORT" envDefault:"80"`
	PlannerURL     string        `env:"PLANNER_URL,required"`
	PlannerAPIKey  string        `env:"PLANNER_API_KEY" envDefault:""`
	PlannerTimeout time.Duration `env:"PLANNER_TIMEOUT" envDefault:"30s"`
}

var conf config

func init() {
	if err := env.Parse(&conf); err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
}

func Production() bool {
	return conf.Production
}

func Port() string {
	return conf.Port
}

func PlannerURL() string {
	return conf.PlannerURL
}

func PlannerAPIKey() string {
	return conf.PlannerAPIKey
}

func PlannerTimeout() time.Duration {
	return conf.PlannerTimeout
}
