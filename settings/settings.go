// Package settings loads the deployment settings of the rsc tool.
//
// The persisted supplies document and the recalculation engine both exist in
// two historical flavors (strict vs lenient schema, scaled vs direct
// required-quantity formula). A deployment picks one of each; settings are
// where that choice is recorded. They come from the environment or a local
// .env file, and command line flags may override them per invocation.
package settings

import (
	"reflect"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/etnz/restock"
)

// Settings holds the deployment-wide choices of the tool.
type Settings struct {
	// SuppliesFile is the path of the persisted supplies configuration.
	SuppliesFile string `mapstructure:"supplies_file"`
	// Strategy selects how the store treats the on-disk document.
	Strategy restock.Strategy `mapstructure:"store_strategy"`
	// Mode selects the required-quantity convention of the engine.
	Mode restock.CalcMode `mapstructure:"calc_mode"`
	// DebounceMS is the quiet period of interactive recomputation, in
	// milliseconds.
	DebounceMS int `mapstructure:"debounce_ms"`
	// LogLevel is the logrus diagnostic level. User-facing status goes
	// through the message log, never through here.
	LogLevel logrus.Level `mapstructure:"log_level"`
}

func setDefaults() {
	viper.SetDefault("SUPPLIES_FILE", "supplies.json")
	viper.SetDefault("STORE_STRATEGY", restock.StrategyStrict.String())
	viper.SetDefault("CALC_MODE", restock.ModeScaled.String())
	viper.SetDefault("DEBOUNCE_MS", 150)
	viper.SetDefault("LOG_LEVEL", "warning")
}

// Load reads the settings from the environment, after loading a .env file
// from the working directory when one exists. Invalid enum values are
// errors: a deployment must name a real strategy and calculation mode, the
// tool does not guess.
func Load() (*Settings, error) {
	if err := godotenv.Load(); err == nil {
		logrus.Debug("loaded settings from .env file")
	}

	setDefaults()
	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()
	if err := viper.ReadInConfig(); err != nil {
		logrus.WithError(err).Debug("no readable .env file, using environment and defaults")
	}

	s := &Settings{}
	err := viper.Unmarshal(s, viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.TextUnmarshallerHookFunc(),
		decodeEnums,
		mapstructure.StringToTimeDurationHookFunc(),
	)))
	if err != nil {
		return nil, errors.Wrap(err, "could not decode settings")
	}
	if s.DebounceMS < 0 {
		return nil, errors.Errorf("invalid DEBOUNCE_MS %d: must not be negative", s.DebounceMS)
	}
	return s, nil
}

// QuietPeriod returns the debounce quiet period as a duration.
func (s *Settings) QuietPeriod() time.Duration {
	return time.Duration(s.DebounceMS) * time.Millisecond
}

// decodeEnums is the mapstructure hook converting the textual store strategy
// and calculation mode settings into their typed forms.
func decodeEnums(from, to reflect.Type, data any) (any, error) {
	if from.Kind() != reflect.String {
		return data, nil
	}
	str := data.(string)
	switch to {
	case reflect.TypeOf(restock.StrategyStrict):
		return restock.ParseStrategy(str)
	case reflect.TypeOf(restock.ModeScaled):
		return restock.ParseCalcMode(str)
	}
	return data, nil
}
