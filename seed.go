package posy

import (
	"fmt"
	"math/rand"
	"os/exec"
	"strconv"
	"strings"
	"time"
)

// Seed hold the primary seed used for random numbers
type Seed struct {
	intSeed int64
}

// Jan 1, 2020 (to make filenames a little smaller)
const epoch2020 = 1577836800

// Init initializes the seed
// `hexSeed` is either the empty string or a hex value
func Init(hexSeed string) (Seed, error) {
	s := Seed{intSeed: time.Now().UnixNano() - epoch2020*int64(time.Second)}
	if hexSeed != "" {
		err := s.SetSeed(hexSeed)
		return s, err
	}
	return s, nil
}

// GetSeed returns the rand initialization seed
func (s Seed) GetSeed() int64 {
	return s.intSeed
}

// SetSeed sets the seed given the file seed part of filename
func (s *Seed) SetSeed(hexSeed string) error {
	v, err := strconv.ParseInt(strings.TrimPrefix(hexSeed, "0x"), 16, 64)
	if err != nil {
		return fmt.Errorf("bad seed %q: %w", hexSeed, err)
	}
	s.intSeed = v
	return nil
}

// Hex is the seed as written in filenames.
func (s Seed) Hex() string {
	return strconv.FormatInt(s.intSeed, 16)
}

// Rand returns a generator seeded with s. Each call starts the same sequence.
func (s Seed) Rand() *rand.Rand {
	return rand.New(rand.NewSource(s.intSeed))
}

// Next returns a fresh seed derived from s, for regenerating.
func (s Seed) Next() Seed {
	return Seed{intSeed: s.Rand().Int63()}
}

// GetFilename returns a string to use for this file
func (s Seed) GetFilename(prefix, ext string) string {
	return fmt.Sprintf("%s%s-%x%s", prefix, getGitHash(), s.intSeed, ext)
}

func getGitHash() string {
	cmdOut, err := exec.Command("git", "rev-parse", "--verify", "HEAD").Output()
	if err != nil {
		return ""
	}
	hash := strings.TrimSpace(string(cmdOut))
	if len(hash) > 7 {
		hash = hash[:7]
	}
	return hash
}
