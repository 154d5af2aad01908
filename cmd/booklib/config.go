package main

import (
	"strings"

	"github.com/spf13/viper"
)

// defaultDataFile is where the catalog lives when nothing else says
// otherwise, matching the tool's historical behavior.
const defaultDataFile = "books_data.json"

// resolveDataFile determines the catalog file path. Precedence:
// 1. the --file flag
// 2. the BOOKLIB_FILE environment variable
// 3. the "file" key of a booklib config file (./booklib.{json,yaml},
//    $HOME/.booklib/booklib.{json,yaml})
// 4. books_data.json in the current directory
func resolveDataFile() string {
	if dataFile != "" {
		return dataFile
	}

	v := viper.New()
	v.SetConfigName("booklib")
	v.AddConfigPath(".")
	v.AddConfigPath("$HOME/.booklib")

	v.AutomaticEnv()
	v.SetEnvPrefix("BOOKLIB")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))

	v.SetDefault("file", defaultDataFile)

	// Missing config file is fine; the default carries.
	_ = v.ReadInConfig()

	return v.GetString("file")
}
