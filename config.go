package projectile

import (
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

var (
	cfgLoaded   = false
	extraBodies []CelestialBody
)

// loadExtraBodies reads the optional [bodies] table of $TRAJ_CONFIG/traj.toml
// and returns the extra celestial bodies it defines. The file is read once.
// Without TRAJ_CONFIG set, the builtin table is all there is. Entries with a
// non-numeric or non-positive gravity are skipped.
func loadExtraBodies() []CelestialBody {
	if cfgLoaded {
		return extraBodies
	}
	cfgLoaded = true
	confPath := os.Getenv("TRAJ_CONFIG")
	if confPath == "" {
		return nil
	}
	viper.SetConfigName("traj")
	viper.AddConfigPath(confPath)
	if err := viper.ReadInConfig(); err != nil {
		panic(fmt.Errorf("%s/traj.toml not found", confPath))
	}
	defined := viper.GetStringMapString("bodies")
	names := make([]string, 0, len(defined))
	for name := range defined {
		names = append(names, name)
	}
	sort.Strings(names) // viper map order is random
	for _, name := range names {
		g, err := strconv.ParseFloat(strings.TrimSpace(defined[name]), 64)
		if err != nil || g <= 0 {
			continue
		}
		extraBodies = append(extraBodies, CelestialBody{Name: titleCase(name), G: g})
	}
	return extraBodies
}

// titleCase upper-cases the first letter; viper lower-cases all keys.
func titleCase(name string) string {
	if name == "" {
		return name
	}
	return strings.ToUpper(name[:1]) + name[1:]
}
