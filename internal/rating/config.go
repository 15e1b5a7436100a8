package rating

import (
	"errors"
	"fmt"
	"sort"
)

type Gender string

const (
	Male   Gender = "male"
	Female Gender = "female"
)

type Threshold struct {
	Label string  `toml:"label"`
	Value float64 `toml:"value"`
}

type Config struct {
	DecayBase     float64     `toml:"decay_base"`
	DecayMax      int         `toml:"decay_max"`
	Thresholds    []Threshold `toml:"thresholds"`
	FallbackLabel string      `toml:"fallback_label"`
	// Per gender threshold tables; used instead of Thresholds once the
	// gender is known.
	GenderThresholds map[string][]Threshold `toml:"gender_thresholds"`
	// Rank range [min, max] per class and gender, e.g. male.R5 = [7501, 12000].
	ClassBoundaries map[string]map[string][]int `toml:"class_boundaries"`
}

// Validate checks the config and sorts every threshold table descending.
func (c *Config) Validate() error {
	var err error
	if c.DecayBase < 0 || c.DecayBase > 1 {
		err = errors.Join(err, fmt.Errorf("decay_base %v out of [0, 1]", c.DecayBase))
	}
	if c.DecayMax < 0 {
		err = errors.Join(err, fmt.Errorf("decay_max %d is negative", c.DecayMax))
	}
	if len(c.Thresholds) == 0 {
		err = errors.Join(err, errors.New("no thresholds configured"))
	}
	if c.FallbackLabel == "" {
		err = errors.Join(err, errors.New("empty fallback_label"))
	}
	for gender := range c.GenderThresholds {
		if !knownGender(gender) {
			err = errors.Join(err, fmt.Errorf("gender_thresholds: unknown gender %q", gender))
		}
	}
	for gender, classes := range c.ClassBoundaries {
		if !knownGender(gender) {
			err = errors.Join(err, fmt.Errorf("class_boundaries: unknown gender %q", gender))
		}
		for class, b := range classes {
			if len(b) != 2 || b[0] > b[1] {
				err = errors.Join(err, fmt.Errorf("class_boundaries.%s.%s: want [min, max], got %v", gender, class, b))
			}
		}
	}
	if err != nil {
		return err
	}
	sortThresholds(c.Thresholds)
	for _, t := range c.GenderThresholds {
		sortThresholds(t)
	}
	return nil
}

func knownGender(g string) bool {
	return Gender(g) == Male || Gender(g) == Female
}

func sortThresholds(t []Threshold) {
	sort.SliceStable(t, func(i, j int) bool {
		return t[i].Value > t[j].Value
	})
}
