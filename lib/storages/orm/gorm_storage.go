package orm

import (
	"strings"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/samber/lo"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"

	"github.com/pescuma/cities/lib/consoles"
	"github.com/pescuma/cities/lib/storages"
)

type gormStorage struct {
	mutex   sync.RWMutex
	db      *gorm.DB
	console consoles.Console

	sqlConfigs map[string]*sqlConfig
}

func NewGormStorage(d gorm.Dialector, console consoles.Console) (storages.Storage, error) {
	l := logger.New(
		gormWriter{console},
		logger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		},
	)

	db, err := gorm.Open(d, &gorm.Config{
		Logger: l,
	})
	if err != nil {
		return nil, errors.Wrap(err, "error opening database")
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	// Every :memory: connection is a new database.
	sqlDB.SetMaxOpenConns(1)

	err = db.AutoMigrate(&sqlConfig{})
	if err != nil {
		return nil, errors.Wrap(err, "error creating tables")
	}

	return &gormStorage{
		db:      db,
		console: console,
	}, nil
}

func (s *gormStorage) Close() error {
	db, err := s.db.DB()
	if err != nil {
		return err
	}

	return db.Close()
}

func createCache[T sqlTable](rows []T) map[string]T {
	return lo.Associate(rows, func(i T) (string, T) {
		return i.CacheKey(), i
	})
}

func (s *gormStorage) loadConfigs() error {
	if s.sqlConfigs != nil {
		return nil
	}

	s.console.Debugf("Loading config...\n")

	var sqlConfigs []*sqlConfig
	err := s.db.Find(&sqlConfigs).Error
	if err != nil {
		return errors.Wrap(err, "error loading config")
	}

	s.sqlConfigs = createCache(sqlConfigs)
	return nil
}

func (s *gormStorage) Get(key string) (string, bool, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	err := s.loadConfigs()
	if err != nil {
		return "", false, err
	}

	sc, ok := s.sqlConfigs[key]
	if !ok {
		return "", false, nil
	}

	return sc.Value, true, nil
}

func (s *gormStorage) Set(key string, value string) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	err := s.loadConfigs()
	if err != nil {
		return err
	}

	sc := newSqlConfig(key, value)
	if !prepareChange(s.sqlConfigs, sc) {
		return nil
	}

	now := time.Now().Local()
	db := s.db.Session(&gorm.Session{
		NowFunc: func() time.Time { return now },
	})

	err = db.Clauses(clause.OnConflict{UpdateAll: true}).Create(sc).Error
	if err != nil {
		return errors.Wrapf(err, "error writing config %v", key)
	}

	addList(s.sqlConfigs, []*sqlConfig{sc})

	return nil
}

// prepareChange reports if n differs from the cached row, keeping the original
// creation time when it does not.
func prepareChange(cache map[string]*sqlConfig, n *sqlConfig) bool {
	o, ok := cache[n.CacheKey()]
	if !ok {
		return true
	}

	if o.Value == n.Value {
		return false
	}

	n.CreatedAt = o.CreatedAt
	return true
}

func addList[T sqlTable](target map[string]T, toAdd []T) {
	for _, v := range toAdd {
		target[v.CacheKey()] = v
	}
}

type gormWriter struct {
	console consoles.Console
}

func (w gormWriter) Printf(format string, a ...any) {
	if !strings.HasSuffix(format, "\n") {
		format += "\n"
	}

	w.console.Printf(format, a...)
}
