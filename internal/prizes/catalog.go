package prizes

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"sync"
	"time"

	"github.com/2beens/workoutweek/internal/weekdates"

	log "github.com/sirupsen/logrus"
)

var ErrPrizeNotFound = errors.New("prize not found")

// Catalog maps ISO year-week keys to prizes. Seeded at startup and
// effectively read-only afterwards; the lock is there for registrations
// done past startup.
type Catalog struct {
	mu     sync.RWMutex
	prizes map[string]Prize
}

func NewCatalog() *Catalog {
	return &Catalog{
		prizes: make(map[string]Prize),
	}
}

// NewCatalogFromCSV seeds a catalog from semicolon-separated records:
// YEAR;WEEK;NAME;DESCRIPTION;IMAGE (image may be empty).
func NewCatalogFromCSV(prizesCsvReader *csv.Reader) (*Catalog, error) {
	catalog := NewCatalog()

	log.Println("reading prizes CSV ...")

	prizesCsvReader.Comma = ';'
	count := 0
	for {
		record, err := prizesCsvReader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		if len(record) != 5 {
			return nil, fmt.Errorf("record [%s] does not have 5 elements", record)
		}

		year, err := strconv.Atoi(record[0])
		if err != nil {
			return nil, fmt.Errorf("record [%s], invalid year: %w", record, err)
		}
		week, err := strconv.Atoi(record[1])
		if err != nil {
			return nil, fmt.Errorf("record [%s], invalid week: %w", record, err)
		}

		prize := NewPrize(record[2], record[3], record[4])
		if err := catalog.Register(year, week, prize); err != nil {
			return nil, fmt.Errorf("record [%s]: %w", record, err)
		}
		count++
	}

	log.Printf("prizes CSV read, %d prizes registered", count)

	return catalog, nil
}

// Register sets the prize for the given ISO year and week. Last write wins.
func (c *Catalog) Register(year, week int, prize Prize) error {
	if week < 1 || week > 53 {
		return weekdates.ErrInvalidWeek
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.prizes[fmt.Sprintf("%d-%02d", year, week)] = prize
	return nil
}

// RegisterRange sets the same prize for numWeeks consecutive ISO weeks,
// starting with the week containing start.
func (c *Catalog) RegisterRange(start time.Time, numWeeks int, prize Prize) error {
	current := start
	for i := 0; i < numWeeks; i++ {
		isoYear, isoWeek := current.ISOWeek()
		if err := c.Register(isoYear, isoWeek, prize); err != nil {
			return err
		}
		current = current.AddDate(0, 0, 7)
	}
	return nil
}

// Lookup returns the prize for the ISO week containing t.
// A missing prize is a normal outcome, signalled with ErrPrizeNotFound.
func (c *Catalog) Lookup(t time.Time) (Prize, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	prize, ok := c.prizes[weekdates.ISOWeekKey(t)]
	if !ok {
		return Prize{}, ErrPrizeNotFound
	}
	return prize, nil
}

// All returns a copy of the whole catalog, keyed by year-week.
func (c *Catalog) All() map[string]Prize {
	c.mu.RLock()
	defer c.mu.RUnlock()

	all := make(map[string]Prize, len(c.prizes))
	for key, prize := range c.prizes {
		all[key] = prize
	}
	return all
}
