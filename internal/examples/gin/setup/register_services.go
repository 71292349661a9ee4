package setup

import (
	"database/sql"

	"github.com/sirupsen/logrus"
	"github.com/vialkit/vial"
	"github.com/vialkit/vial/internal/examples/gin/infra"
	"github.com/vialkit/vial/internal/examples/gin/logging"
	"github.com/vialkit/vial/internal/examples/gin/storage"
)

// RegisterServices registers the application services. The handlers and the
// query builder are deliberately not here: their exported fields let the
// container autowire them on demand.
func RegisterServices(c *vial.Container) {

	vial.Instance(c, infra.LoadConfig())

	vial.Singleton(c, func(c *vial.Container) (*logrus.Logger, error) {
		config, err := vial.Resolve[infra.Config](c)
		if err != nil {
			return nil, err
		}
		logger := logrus.New()
		if config.Debug {
			logger.SetLevel(logrus.DebugLevel)
		}
		return logger, nil
	})

	vial.Singleton(c, func(c *vial.Container) (logging.Logger, error) {
		base, err := vial.Resolve[*logrus.Logger](c)
		if err != nil {
			return nil, err
		}
		return logging.Wrap(logrus.NewEntry(base)), nil
	})

	vial.Singleton(c, func(c *vial.Container) (*sql.DB, error) {
		config, err := vial.Resolve[infra.Config](c)
		if err != nil {
			return nil, err
		}
		return infra.NewDB(config)
	})

	vial.Singleton(c, func(c *vial.Container) (storage.Connection, error) {
		db, err := vial.Resolve[*sql.DB](c)
		if err != nil {
			return nil, err
		}
		return &infra.SQLiteConnection{DB: db}, nil
	})
}
